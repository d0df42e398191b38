package coordinator

import (
	"context"

	"github.com/gravitrone/wordroom/internal/api"
)

// Fetch is a pending definition lookup. Run blocks and is meant to be called
// off the interaction loop; the result goes back through ApplyFetch.
type Fetch struct {
	Word       string
	Generation uint64

	ctx      context.Context
	provider Provider
}

// FetchResult carries a finished lookup and the generation it was issued in.
type FetchResult struct {
	Word       string
	Generation uint64
	Definition *api.Definition
	Err        error
}

// Found reports whether the lookup produced a definition.
func (r FetchResult) Found() bool {
	return r.Err == nil && r.Definition != nil && r.Definition.Found
}

// Run performs the lookup.
func (f *Fetch) Run() FetchResult {
	res := FetchResult{Word: f.Word, Generation: f.Generation}
	if err := f.ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	res.Definition, res.Err = f.provider.Define(f.ctx, f.Word)
	return res
}
