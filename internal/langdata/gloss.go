package langdata

// HasGlossary reports whether a glossary exists for the language pair.
func HasGlossary(from, to string) bool {
	_, ok := glossaries[from+"-"+to]
	return ok
}

// Gloss translates word from one dataset language into another.
func Gloss(from, to, word string) (string, bool) {
	table, ok := glossaries[from+"-"+to]
	if !ok {
		return "", false
	}
	gloss, ok := table[lookupKey(from, word)]
	return gloss, ok
}

// glossaries holds small bilingual tables keyed "<from>-<to>".
// English is the pivot: every bundled pair targets it.
var glossaries = map[string]map[string]string{
	"ru-en": {
		"привет":   "hello",
		"мир":      "world",
		"слово":    "word",
		"дом":      "house",
		"вода":     "water",
		"день":     "day",
		"ночь":     "night",
		"книга":    "book",
		"друг":     "friend",
		"жизнь":    "life",
		"время":    "time",
		"человек":  "person",
		"рука":     "hand",
		"город":    "city",
		"язык":     "language",
		"хорошо":   "well",
		"новый":    "new",
		"большой":  "big",
		"знать":    "to know",
		"говорить": "to speak",
		"идти":     "to go",
		"видеть":   "to see",
		"работа":   "work",
	},
	"el-en": {
		"γεια":     "hello",
		"κόσμος":   "world",
		"λόγος":    "word",
		"σπίτι":    "house",
		"νερό":     "water",
		"μέρα":     "day",
		"νύχτα":    "night",
		"βιβλίο":   "book",
		"φίλος":    "friend",
		"ζωή":      "life",
		"χρόνος":   "time",
		"άνθρωπος": "person",
		"χέρι":     "hand",
		"πόλη":     "city",
		"γλώσσα":   "language",
		"καλά":     "well",
		"νέος":     "new",
		"μεγάλος":  "big",
		"ξέρω":     "to know",
		"μιλώ":     "to speak",
		"πηγαίνω":  "to go",
		"βλέπω":    "to see",
		"δουλειά":  "work",
	},
}
