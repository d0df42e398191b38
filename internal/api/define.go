package api

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const defaultSenseLimit = 10

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// Define looks up a word. A word the provider does not know is returned as a
// Definition with Found unset, not as an error.
func (c *Client) Define(ctx context.Context, word string) (*Definition, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("define: word must be non-empty")
	}
	if !c.HasKey() {
		return nil, ErrMissingKey
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(defaultSenseLimit))
	params.Set("includeRelated", "false")
	params.Set("useCanonical", "false")
	params.Set("includeTags", "false")

	data, status, err := c.get(ctx, "/word.json/"+url.PathEscape(word)+"/definitions", params)
	if status == http.StatusNotFound {
		return &Definition{Word: word}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", word, err)
	}

	items, err := decodeList[wordnikDefinition](data)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", word, err)
	}
	return buildDefinition(word, items), nil
}

func buildDefinition(word string, items []wordnikDefinition) *Definition {
	def := &Definition{Word: word}
	for _, item := range items {
		text := cleanMarkup(item.Text)
		if text == "" {
			continue
		}
		def.Senses = append(def.Senses, Sense{
			PartOfSpeech: strings.TrimSpace(item.PartOfSpeech),
			Text:         text,
		})
		if def.Attribution == "" {
			def.Attribution = strings.TrimSpace(item.AttributionText)
		}
	}
	def.Found = len(def.Senses) > 0
	return def
}

func cleanMarkup(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}

// Markdown renders the definition as a markdown document.
func (d *Definition) Markdown() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Word)
	if !d.Found {
		fmt.Fprintf(&b, "No definition found for **%s**.\n", d.Word)
		return b.String()
	}
	for i, sense := range d.Senses {
		fmt.Fprintf(&b, "%d. ", i+1)
		if sense.PartOfSpeech != "" {
			fmt.Fprintf(&b, "*%s* ", sense.PartOfSpeech)
		}
		b.WriteString(sense.Text)
		b.WriteString("\n")
	}
	if d.Attribution != "" {
		fmt.Fprintf(&b, "\n_%s_\n", d.Attribution)
	}
	return b.String()
}
