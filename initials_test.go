package navdir_test

import (
	"testing"

	"github.com/fwojciec/navdir"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words take first letters", "visual studio code", "VS"},
		{"single word takes first two characters", "github", "GI"},
		{"decorative symbols are stripped", "🔥 hot news", "HN"},
		{"symbols inside name are stripped", "Git⭐Hub👍", "GI"},
		{"symbol-only separator leaves one word", "⭐⭐ gitee 💯", "GI"},
		{"multibyte names use runes", "知乎", "知乎"},
		{"multibyte words", "百度 翻译", "百翻"},
		{"one character name", "x", "X"},
		{"empty name", "", ""},
		{"only symbols", "🔥💯", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, navdir.Initials(tt.in))
		})
	}
}

func TestCategoryIcon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "⭐", navdir.CategoryIcon(0))
	assert.Equal(t, "🤖", navdir.CategoryIcon(1))
	assert.Equal(t, "📌", navdir.CategoryIcon(11))
	assert.Equal(t, "⭐", navdir.CategoryIcon(12))
}
