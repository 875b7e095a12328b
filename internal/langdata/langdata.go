// Package langdata bundles the static language datasets the builtin
// extensions draw on: frequency ranks, part-of-speech lexica,
// glossaries and transliteration schemes. Datasets are small curated
// tables compiled into the binary; there is no runtime download.
package langdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// supported lists the languages with bundled datasets, in matcher
// priority order. English stays first so ambiguous tags steer there.
var supported = []language.Tag{
	language.English,
	language.Russian,
	language.Greek,
}

// codes holds the dataset code for each supported tag, same order.
var codes = []string{"en", "ru", "el"}

var langTags = map[string]language.Tag{
	"en": language.English,
	"ru": language.Russian,
	"el": language.Greek,
}

var matcher = language.NewMatcher(supported)

// Supported returns the language tags with bundled datasets.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// MatchLang maps a BCP 47 tag to the dataset code serving it ("en",
// "ru", "el"). Regional and script variants match their base language
// ("ru-RU", "el-Grek"). Returns false for an empty, unparseable or
// unrelated tag.
func MatchLang(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return codes[index], true
}

// Normalize returns the NFC form of s. Tree text arrives in whatever
// form its producer used; the lookup tables hold composed characters.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Fold lowercases s with the casing rules of the dataset language.
// Casers are stateful and not safe to share, so one is created per
// call.
func Fold(code, s string) string {
	tag, ok := langTags[code]
	if !ok {
		return strings.ToLower(s)
	}
	return cases.Lower(tag).String(s)
}

// lookupKey is the canonical table key for a word: NFC, lowercased by
// the dataset language.
func lookupKey(code, word string) string {
	return Fold(code, Normalize(word))
}

// DetectScript guesses the ISO 15924 script of a word from its first
// scripted letter. Only the scripts relevant to the bundled schemes
// are reported.
func DetectScript(word string) (string, bool) {
	for _, r := range word {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			return "Cyrl", true
		case unicode.Is(unicode.Greek, r):
			return "Grek", true
		case unicode.Is(unicode.Latin, r):
			return "Latn", true
		}
	}
	return "", false
}
