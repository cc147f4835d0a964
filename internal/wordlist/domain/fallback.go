package domain

// fallbackWords is the built-in word list used when no corpus, stored list, or
// custom words are available. Common English words suitable for passphrases.
var fallbackWords = []string{
	"able", "about", "above", "across", "after", "again", "against", "all", "almost", "alone",
	"along", "already", "also", "although", "always", "among", "another", "any", "anyone", "anything",
	"anywhere", "are", "area", "around", "back", "based", "became", "because", "become", "been",
	"before", "began", "being", "below", "between", "both", "bring", "but", "came", "can",
	"come", "could", "did", "different", "down", "during", "each", "early", "even", "every",
	"example", "far", "few", "find", "first", "for", "found", "from", "get", "give",
	"good", "great", "group", "hand", "hard", "has", "have", "hear", "help", "here",
	"high", "home", "how", "however", "include", "into", "its", "just", "know", "large",
	"last", "later", "learn", "left", "level", "life", "line", "list", "live", "local",
	"long", "look", "made", "make", "man", "many", "may", "member", "might", "most",
	"move", "much", "must", "name", "need", "never", "new", "next", "not", "now",
	"number", "off", "old", "once", "only", "open", "other", "over", "own", "part",
	"people", "place", "point", "present", "program", "put", "right", "run", "said", "same",
	"school", "see", "seem", "several", "should", "show", "small", "some", "something", "still",
	"such", "system", "take", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "thing", "think", "this", "those", "through", "time", "today", "together",
	"too", "turn", "two", "under", "until", "use", "used", "using", "very", "want",
	"water", "way", "well", "were", "what", "when", "where", "which", "while", "who",
	"will", "with", "within", "without", "work", "world", "would", "write", "year", "years",
}

// FallbackWords returns a copy of the built-in fallback word list.
func FallbackWords() []string {
	words := make([]string, len(fallbackWords))
	copy(words, fallbackWords)
	return words
}
