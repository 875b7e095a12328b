package langdata

// Frequency bands, from most to least common.
const (
	BandTop100  = "top100"
	BandTop1000 = "top1000"
	BandTop5000 = "top5000"
	BandRare    = "rare"
)

// Rank returns the corpus frequency rank of word in the dataset
// language (1 is most frequent). Lookup is case- and
// normalisation-insensitive.
func Rank(code, word string) (int, bool) {
	table, ok := frequencyRanks[code]
	if !ok {
		return 0, false
	}
	rank, ok := table[lookupKey(code, word)]
	return rank, ok
}

// Band buckets a rank into a named frequency band. Rank 0 (unranked)
// is rare.
func Band(rank int) string {
	switch {
	case rank >= 1 && rank <= 100:
		return BandTop100
	case rank > 100 && rank <= 1000:
		return BandTop1000
	case rank > 1000 && rank <= 5000:
		return BandTop5000
	default:
		return BandRare
	}
}

// frequencyRanks holds per-language word ranks from open frequency
// lists, truncated to the heads that matter for difficulty scoring.
var frequencyRanks = map[string]map[string]int{
	"en": {
		"the": 1, "be": 2, "to": 3, "of": 4, "and": 5,
		"a": 6, "in": 7, "that": 8, "have": 9, "i": 10,
		"it": 11, "for": 12, "not": 13, "on": 14, "with": 15,
		"he": 16, "as": 17, "you": 18, "do": 19, "at": 20,
		"this": 21, "but": 22, "his": 23, "by": 24, "from": 25,
		"they": 26, "we": 27, "say": 28, "her": 29, "she": 30,
		"or": 31, "an": 32, "will": 33, "my": 34, "one": 35,
		"all": 36, "would": 37, "there": 38, "their": 39, "what": 40,
		"so": 41, "up": 42, "out": 43, "if": 44, "about": 45,
		"who": 46, "get": 47, "which": 48, "go": 49, "me": 50,
		"time": 55, "know": 60, "day": 90, "world": 123, "water": 451,
		"good": 110, "new": 130, "see": 140, "very": 150, "house": 280,
		"hello": 870, "language": 1250, "quickly": 1890, "friend": 920,
	},
	"ru": {
		"и": 1, "в": 2, "не": 3, "на": 4, "я": 5,
		"быть": 6, "он": 7, "с": 8, "что": 9, "а": 10,
		"по": 11, "это": 12, "она": 13, "этот": 14, "к": 15,
		"но": 16, "они": 17, "мы": 18, "как": 19, "из": 20,
		"у": 21, "который": 22, "то": 23, "за": 24, "свой": 25,
		"весь": 26, "год": 27, "от": 28, "так": 29, "о": 30,
		"для": 31, "ты": 32, "же": 33, "все": 34, "тот": 35,
		"мочь": 36, "вы": 37, "человек": 38, "такой": 39, "его": 40,
		"сказать": 41, "время": 42, "если": 43, "сам": 44, "когда": 45,
		"другой": 46, "вот": 47, "говорить": 48, "наш": 49, "мой": 50,
		"знать": 51, "жизнь": 56, "день": 61, "рука": 64, "слово": 84,
		"мир": 187, "дом": 190, "вода": 440, "город": 350, "книга": 610,
		"друг": 380, "ночь": 420, "язык": 660, "привет": 2870,
		"хорошо": 230, "новый": 63, "большой": 86, "работа": 77,
	},
	"el": {
		"και": 1, "το": 2, "να": 3, "της": 4, "που": 5,
		"η": 6, "με": 7, "ο": 8, "σε": 9, "από": 10,
		"για": 11, "τον": 12, "τα": 13, "στο": 14, "δεν": 15,
		"την": 16, "είναι": 17, "των": 18, "ότι": 19, "θα": 20,
		"αυτό": 21, "μου": 22, "ως": 23, "αλλά": 24, "ένα": 25,
		"ή": 26, "αν": 27, "μια": 28, "στη": 29, "κι": 30,
		"πολύ": 31, "τους": 32, "εγώ": 33, "μας": 34, "τη": 35,
		"τι": 36, "σας": 37, "εδώ": 38, "κάτι": 39, "τώρα": 40,
		"όλα": 41, "καλά": 42, "πιο": 43, "μέσα": 44, "χρόνια": 45,
		"λέει": 46, "κόσμος": 47, "σπίτι": 48, "νερό": 49, "μέρα": 50,
		"ζωή": 120, "φίλος": 310, "νύχτα": 390, "βιβλίο": 570,
		"πόλη": 340, "γλώσσα": 720, "λόγος": 260, "γεια": 1630,
		"χέρι": 180, "άνθρωπος": 95,
	},
}
