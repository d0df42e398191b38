package cmd

import (
	"context"
	"fmt"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/config"
	"github.com/gravitrone/wordroom/internal/storage"
	"github.com/gravitrone/wordroom/internal/vocab"
)

// Options holds the root command's persistent flags.
type Options struct {
	DataFile string
	Backend  string
}

// Session is the resolved config and vocabulary storage for one command.
type Session struct {
	Config  *config.Config
	Backend storage.Backend
	Store   *vocab.Store
}

// Open resolves the config and the storage backend. The store starts empty;
// call Load to read the saved vocabulary.
func (o *Options) Open() (*Session, error) {
	cfg, err := config.LoadWithFlags(o.DataFile, o.Backend)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	backend, err := storage.Open(cfg.Backend, cfg.DataFile)
	if err != nil {
		return nil, err
	}
	return &Session{Config: cfg, Backend: backend, Store: vocab.New()}, nil
}

// Load reads the saved vocabulary into the store.
func (s *Session) Load(ctx context.Context) error {
	if err := storage.LoadInto(ctx, s.Backend, s.Store); err != nil {
		return fmt.Errorf("load %s: %w", s.Config.DataFile, err)
	}
	return nil
}

// Save writes the store back.
func (s *Session) Save(ctx context.Context) error {
	if err := s.Backend.Save(ctx, s.Store.Entries()); err != nil {
		return fmt.Errorf("save %s: %w", s.Config.DataFile, err)
	}
	return nil
}

// Client returns a Wordnik client for the configured key and URL.
func (s *Session) Client() *api.Client {
	if s.Config.APIURL != "" {
		return api.NewClient(s.Config.APIURL, s.Config.APIKey)
	}
	return api.NewDefaultClient(s.Config.APIKey)
}
