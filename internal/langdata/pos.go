package langdata

// Universal POS tags used by the lexica (the UD tag set).
const (
	POSNoun = "NOUN"
	POSVerb = "VERB"
	POSAdj  = "ADJ"
	POSAdv  = "ADV"
	POSPron = "PRON"
	POSAdp  = "ADP"
	POSConj = "CCONJ"
	POSPart = "PART"
	POSNum  = "NUM"
	POSIntj = "INTJ"
	POSDet  = "DET"
)

// PartOfSpeech looks up the word's part of speech in the dataset
// language. Ambiguous words carry their most common reading.
func PartOfSpeech(code, word string) (string, bool) {
	table, ok := posLexicon[code]
	if !ok {
		return "", false
	}
	pos, ok := table[lookupKey(code, word)]
	return pos, ok
}

var posLexicon = map[string]map[string]string{
	"en": {
		"the": POSDet, "a": POSDet, "and": POSConj, "not": POSPart,
		"i": POSPron, "he": POSPron, "she": POSPron, "in": POSAdp,
		"on": POSAdp, "one": POSNum, "two": POSNum, "hello": POSIntj,
		"world": POSNoun, "water": POSNoun, "house": POSNoun,
		"day": POSNoun, "time": POSNoun, "friend": POSNoun,
		"language": POSNoun, "dog": POSNoun, "book": POSNoun,
		"be": POSVerb, "have": POSVerb, "go": POSVerb, "know": POSVerb,
		"see": POSVerb, "say": POSVerb, "run": POSVerb,
		"good": POSAdj, "new": POSAdj, "big": POSAdj, "quick": POSAdj,
		"very": POSAdv, "quickly": POSAdv, "well": POSAdv,
	},
	"ru": {
		"и": POSConj, "а": POSConj, "но": POSConj, "не": POSPart,
		"я": POSPron, "он": POSPron, "она": POSPron, "мы": POSPron,
		"в": POSAdp, "на": POSAdp, "с": POSAdp, "один": POSNum,
		"два": POSNum, "привет": POSIntj,
		"мир": POSNoun, "вода": POSNoun, "дом": POSNoun,
		"день": POSNoun, "время": POSNoun, "друг": POSNoun,
		"язык": POSNoun, "слово": POSNoun, "книга": POSNoun,
		"жизнь": POSNoun, "рука": POSNoun, "город": POSNoun,
		"быть": POSVerb, "мочь": POSVerb, "знать": POSVerb,
		"говорить": POSVerb, "сказать": POSVerb, "идти": POSVerb,
		"новый": POSAdj, "большой": POSAdj, "хороший": POSAdj,
		"хорошо": POSAdv, "очень": POSAdv,
	},
	"el": {
		"και": POSConj, "αλλά": POSConj, "δεν": POSPart,
		"εγώ": POSPron, "αυτό": POSPron, "σε": POSAdp,
		"από": POSAdp, "με": POSAdp, "ένα": POSNum, "γεια": POSIntj,
		"κόσμος": POSNoun, "νερό": POSNoun, "σπίτι": POSNoun,
		"μέρα": POSNoun, "ζωή": POSNoun, "φίλος": POSNoun,
		"γλώσσα": POSNoun, "λόγος": POSNoun, "βιβλίο": POSNoun,
		"πόλη": POSNoun, "χέρι": POSNoun, "άνθρωπος": POSNoun,
		"είναι": POSVerb, "ξέρω": POSVerb, "μιλώ": POSVerb,
		"πηγαίνω": POSVerb, "βλέπω": POSVerb, "τρέχω": POSVerb,
		"νέος": POSAdj, "μεγάλος": POSAdj, "μικρός": POSAdj,
		"καλά": POSAdv, "πολύ": POSAdv, "τώρα": POSAdv,
	},
}
