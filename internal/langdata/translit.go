package langdata

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bundled transliteration scheme ids.
const (
	SchemeCyrillicLatin = "cyrillic-latin"
	SchemeGreekLatin    = "greek-latin"
)

// Schemes returns the bundled scheme ids, sorted.
func Schemes() []string {
	ids := make([]string, 0, len(schemes))
	for id := range schemes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasScheme reports whether the scheme is bundled.
func HasScheme(id string) bool {
	_, ok := schemes[id]
	return ok
}

// SchemeForScript returns the default scheme transliterating the given
// ISO 15924 script, if any.
func SchemeForScript(script string) (string, bool) {
	switch script {
	case "Cyrl":
		return SchemeCyrillicLatin, true
	case "Grek":
		return SchemeGreekLatin, true
	}
	return "", false
}

// Transliterate renders word in the scheme's target script. The word
// is NFC-normalised first so the tables only need composed forms.
// Runes without a mapping (digits, hyphens) pass through unchanged,
// and a capitalised source letter capitalises its replacement.
func Transliterate(scheme, word string) (string, bool) {
	table, ok := schemes[scheme]
	if !ok {
		return "", false
	}

	var b strings.Builder
	for _, r := range Normalize(word) {
		mapped, ok := table[unicode.ToLower(r)]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if mapped != "" && unicode.IsUpper(r) {
			first, size := utf8.DecodeRuneInString(mapped)
			mapped = string(unicode.ToUpper(first)) + mapped[size:]
		}
		b.WriteString(mapped)
	}
	return b.String(), true
}

// schemes maps lowercase source runes to their Latin renderings.
// Hard and soft signs drop; digraph sources ("щ") expand.
var schemes = map[string]map[rune]string{
	SchemeCyrillicLatin: {
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
		'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
		'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
		'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
		'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
		'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
		'э': "e", 'ю': "yu", 'я': "ya",
	},
	SchemeGreekLatin: {
		'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e",
		'ζ': "z", 'η': "i", 'θ': "th", 'ι': "i", 'κ': "k",
		'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
		'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t",
		'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",
		'ά': "a", 'έ': "e", 'ή': "i", 'ί': "i", 'ό': "o",
		'ύ': "y", 'ώ': "o", 'ϊ': "i", 'ϋ': "y", 'ΐ': "i",
		'ΰ': "y",
	},
}
