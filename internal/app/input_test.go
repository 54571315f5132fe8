package app

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestShortcuts(t *testing.T) {
	assert.Equal(t, shortcutDelete, shortcuts[rl.KeyDelete])
	assert.Equal(t, shortcutExit, shortcuts[rl.KeyEscape])
	assert.Equal(t, shortcutDraw, shortcuts[rl.KeyD])
	assert.Equal(t, shortcutHeightUp, shortcuts[rl.KeyKpAdd])
	assert.Equal(t, shortcutHeightDown, shortcuts[rl.KeyMinus])
}

func TestBackspaceDoesNotDelete(t *testing.T) {
	_, ok := shortcuts[rl.KeyBackspace]
	assert.False(t, ok, "backspace must not be bound")
	assert.Equal(t, shortcutNone, shortcuts[rl.KeyBackspace])
}
