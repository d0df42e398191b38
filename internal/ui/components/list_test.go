package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestListSetItemsResetsPosition(t *testing.T) {
	l := NewList(2)
	l.SetItems(words(5))
	l.SetCursor(4)

	l.SetItems([]string{"apple"})
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Offset)
	assert.Equal(t, []string{"apple"}, l.Visible())
}

func TestListMovesAndScrolls(t *testing.T) {
	l := NewList(3)
	l.SetItems(words(5))

	steps := []struct {
		move   func()
		cursor int
		offset int
	}{
		{l.Down, 1, 0},
		{l.Down, 2, 0},
		{l.Down, 3, 1},
		{l.Down, 4, 2},
		{l.Down, 4, 2},
		{l.Up, 3, 2},
		{l.Up, 2, 2},
		{l.Up, 1, 1},
		{l.Up, 0, 0},
		{l.Up, 0, 0},
	}
	for i, s := range steps {
		s.move()
		assert.Equal(t, s.cursor, l.Cursor, "step %d cursor", i)
		assert.Equal(t, s.offset, l.Offset, "step %d offset", i)
	}
}

func TestListVisibleWindow(t *testing.T) {
	l := NewList(3)
	assert.Nil(t, l.Visible())

	l.SetItems(words(2))
	assert.Equal(t, []string{"a", "b"}, l.Visible())

	l.SetItems(words(6))
	l.SetCursor(4)
	assert.Equal(t, []string{"c", "d", "e"}, l.Visible())
	assert.Equal(t, 4, l.Selected())
	assert.True(t, l.IsSelected(l.RelToAbs(2)))
	assert.False(t, l.IsSelected(l.RelToAbs(0)))
}

func TestListReplaceKeepsCursorInRange(t *testing.T) {
	l := NewList(2)
	l.SetItems(words(5))
	l.SetCursor(3)

	l.Replace(words(6))
	assert.Equal(t, 3, l.Cursor)

	l.Replace(words(2))
	assert.Equal(t, 1, l.Cursor)
	assert.Equal(t, 0, l.Offset)

	l.Replace(nil)
	assert.Equal(t, 0, l.Cursor)
	assert.Empty(t, l.Visible())
}

func TestListSetCursorClamps(t *testing.T) {
	l := NewList(2)
	l.SetItems(words(4))

	l.SetCursor(-3)
	assert.Equal(t, 0, l.Cursor)

	l.SetCursor(10)
	assert.Equal(t, 3, l.Cursor)
	assert.Equal(t, 2, l.Offset)

	l.PageSize = 0
	l.SetCursor(2)
	assert.Equal(t, 0, l.Offset)
}
