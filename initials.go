package navdir

import (
	"strings"
	"unicode"
)

// decorativeSymbols are stripped from site names before computing initials.
const decorativeSymbols = "👍⭐🔥💯"

// categoryIcons decorate the category list in display order.
var categoryIcons = []string{"⭐", "🤖", "💻", "🔌", "🌐", "☁️", "📦", "⚡", "🛠️", "📚", "👥", "📌"}

// Initials returns the two-letter badge shown when a site icon fails to load.
// With two or more words it takes the first letter of the first two words,
// otherwise the first two characters of the cleaned name, uppercased.
func Initials(name string) string {
	cleaned := strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(decorativeSymbols, r) {
			return -1
		}
		return r
	}, name))

	words := strings.FieldsFunc(cleaned, unicode.IsSpace)
	if len(words) >= 2 {
		return strings.ToUpper(firstRunes(words[0], 1) + firstRunes(words[1], 1))
	}
	return strings.ToUpper(firstRunes(cleaned, 2))
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// CategoryIcon returns the decorative icon for the category at index i.
func CategoryIcon(i int) string {
	if i < 0 {
		i = -i
	}
	return categoryIcons[i%len(categoryIcons)]
}
