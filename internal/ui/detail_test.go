package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/vocab"
)

func TestDetailPaneRegularShowAndPlaceholder(t *testing.T) {
	d := newDetailPane(vocab.New(), "", true)
	assert.Nil(t, d.top())
	assert.Contains(t, d.view(60, 10, ""), "Select a word")

	d.ShowWord("apple")
	require.NotNil(t, d.top())
	assert.Equal(t, "apple", d.top().word)
	assert.True(t, d.top().loading)
	assert.Contains(t, d.view(60, 10, ""), "Looking up apple")

	d.ShowPlaceholder()
	assert.Nil(t, d.top())
}

func TestDetailPaneCompactStack(t *testing.T) {
	d := newDetailPane(vocab.New(), "", false)
	d.PushWord("apple")
	d.PushWord("apply")
	assert.Equal(t, 2, d.depth())
	assert.Equal(t, "apply", d.top().word)
	assert.Contains(t, d.view(60, 10, ""), "2 deep")

	d.PopWord()
	assert.Equal(t, "apple", d.top().word)
	d.PopWord()
	d.PopWord()
	assert.Equal(t, 0, d.depth())
}

func TestDetailPanePushDropsRegularScreen(t *testing.T) {
	d := newDetailPane(vocab.New(), "", false)
	d.ShowWord("apple")
	d.PushWord("apple")
	d.PopWord()

	assert.Nil(t, d.top())
	assert.Contains(t, d.view(60, 10, ""), "Select a word")
}

func TestDetailPaneShowDefinitionTargetsFrontWord(t *testing.T) {
	d := newDetailPane(vocab.New(), "", true)
	d.ShowWord("apple")

	d.ShowDefinition("pear", api.Definition{Word: "pear", Found: true}, nil)
	assert.Nil(t, d.top().def)
	assert.True(t, d.top().loading)

	d.ShowDefinition("apple", api.Definition{
		Word:   "apple",
		Found:  true,
		Senses: []api.Sense{{PartOfSpeech: "noun", Text: "A round fruit."}},
	}, nil)
	require.NotNil(t, d.top().def)
	assert.False(t, d.top().loading)
	assert.Contains(t, d.view(60, 20, ""), "round")
}

func TestDetailPaneSuggestions(t *testing.T) {
	d := newDetailPane(vocab.New(), "", true)
	d.ShowWord("appel")
	d.ShowDefinition("appel", api.Definition{Word: "appel"}, []string{"apple", "apply"})

	out := d.view(60, 20, "")
	assert.Contains(t, out, "No definition found for appel.")
	assert.Contains(t, out, "apply")

	w, ok := d.suggestion(1)
	require.True(t, ok)
	assert.Equal(t, "apply", w)
	_, ok = d.suggestion(2)
	assert.False(t, ok)

	d.toggleNotes()
	_, ok = d.suggestion(0)
	assert.False(t, ok)
}

func TestDetailPaneOpensInNotesModeWhenAnnotated(t *testing.T) {
	store := vocab.New()
	_, err := store.SetNotes("apple", "line one\n  indented")
	require.NoError(t, err)
	d := newDetailPane(store, "", true)

	d.ShowWord("apple")
	assert.True(t, d.top().showNotes)
	out := d.view(60, 10, "")
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "  indented")

	d.ShowWord("pear")
	assert.False(t, d.top().showNotes)
}

func TestDetailPaneWithoutLookups(t *testing.T) {
	d := newDetailPane(vocab.New(), "", false)
	d.ShowWord("apple")
	assert.False(t, d.top().loading)
	assert.Contains(t, d.view(60, 10, ""), "No lookup configured")
}

func TestDetailPaneEditorReplacesBody(t *testing.T) {
	d := newDetailPane(vocab.New(), "", true)
	d.ShowWord("apple")

	out := d.view(60, 10, "EDITOR")
	assert.Contains(t, out, "EDITOR")
	assert.NotContains(t, out, "Looking up")
}

func TestDetailPaneScrollClampsAtTop(t *testing.T) {
	store := vocab.New()
	_, err := store.SetNotes("apple", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10")
	require.NoError(t, err)
	d := newDetailPane(store, "", false)
	d.ShowWord("apple")
	_ = d.view(40, 5, "")

	d.scroll(-3)
	assert.Equal(t, 0, d.top().body.YOffset)
	d.scroll(2)
	assert.Equal(t, 2, d.top().body.YOffset)
}
