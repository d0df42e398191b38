package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "wn_testkey")
	return srv, client
}

func TestDefineParsesSenses(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/word.json/serendipity/definitions", r.URL.Path)
		assert.Equal(t, "wn_testkey", r.URL.Query().Get("api_key"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"word":            "serendipity",
				"text":            "The faculty of making <xref>fortunate</xref> discoveries &amp; finds.",
				"partOfSpeech":    "noun",
				"attributionText": "from The American Heritage Dictionary",
			},
			{"word": "serendipity", "text": "   "},
			{"word": "serendipity", "text": "Good luck.", "partOfSpeech": ""},
		})
	})

	def, err := client.Define(context.Background(), " serendipity ")
	require.NoError(t, err)
	assert.True(t, def.Found)
	assert.Equal(t, "serendipity", def.Word)
	require.Len(t, def.Senses, 2)
	assert.Equal(t, Sense{PartOfSpeech: "noun", Text: "The faculty of making fortunate discoveries & finds."}, def.Senses[0])
	assert.Equal(t, "Good luck.", def.Senses[1].Text)
	assert.Equal(t, "from The American Heritage Dictionary", def.Attribution)
}

func TestDefineEscapesWordInPath(t *testing.T) {
	var gotPath string
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	})

	def, err := client.Define(context.Background(), "ice cream")
	require.NoError(t, err)
	assert.False(t, def.Found)
	assert.Equal(t, "/word.json/ice%20cream/definitions", gotPath)
}

func TestDefineNotFoundIsNotAnError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"statusCode":404,"error":"Not Found","message":"Not Found"}`))
	})

	def, err := client.Define(context.Background(), "qwzx")
	require.NoError(t, err)
	assert.False(t, def.Found)
	assert.Empty(t, def.Senses)
}

func TestDefineServerErrorUsesMessage(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"statusCode":401,"error":"Unauthorized","message":"Invalid authentication credentials"}`))
	})

	_, err := client.Define(context.Background(), "word")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid authentication credentials")
}

func TestDefineServerErrorWithoutJSON(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := client.Define(context.Background(), "word")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502: upstream down")
}

func TestDefineMissingKey(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	_, err := client.Define(context.Background(), "word")
	assert.ErrorIs(t, err, ErrMissingKey)

	client.SetAPIKey("key")
	assert.True(t, client.HasKey())
}

func TestDefineHonorsContextCancel(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Define(ctx, "word")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefineBadJSON(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := client.Define(context.Background(), "word")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestNewDefaultClientUsesDefaultBaseURL(t *testing.T) {
	var gotURL string
	client := NewDefaultClient("wn_testkey", time.Second)
	client.httpClient.Transport = roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[]`)),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.Define(context.Background(), "word")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotURL, DefaultBaseURL))
}

func TestWordURL(t *testing.T) {
	assert.Equal(t, "https://wordnik.com/words/serendipity", WordURL("serendipity"))
	assert.Equal(t, "https://wordnik.com/words/ice%20cream", WordURL(" ice cream "))
	assert.Equal(t, "https://wordnik.com/words/a%2Fb", WordURL("a/b"))
	assert.Equal(t, SiteURL, WordURL("  "))
}

func TestDefinitionMarkdown(t *testing.T) {
	def := &Definition{
		Word:        "cat",
		Found:       true,
		Senses:      []Sense{{PartOfSpeech: "noun", Text: "A small feline."}, {Text: "A jazz musician."}},
		Attribution: "from Wiktionary",
	}
	md := def.Markdown()
	assert.Contains(t, md, "# cat")
	assert.Contains(t, md, "1. *noun* A small feline.")
	assert.Contains(t, md, "2. A jazz musician.")
	assert.Contains(t, md, "_from Wiktionary_")

	missing := (&Definition{Word: "qwzx"}).Markdown()
	assert.Contains(t, missing, "No definition found for **qwzx**.")

	var nilDef *Definition
	assert.Equal(t, "", nilDef.Markdown())
}

func TestDefineTransportErrorHidesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, "wn_secret_123")

	_, err := client.Define(context.Background(), "apple")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "wn_secret_123")
	assert.NotContains(t, err.Error(), "api_key")
	assert.Contains(t, err.Error(), "/word.json/apple/definitions")
}

func TestDefineCanceledContextStillWrapped(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Define(ctx, "apple")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "wn_testkey")
}
