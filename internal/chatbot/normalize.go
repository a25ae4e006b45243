package chatbot

import "strings"

// minTokenLen is the inclusive cutoff below which tokens are discarded.
const minTokenLen = 3

// stopWords are common function words excluded from keyword matching.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "i": true, "you": true, "it": true, "he": true,
	"she": true, "we": true, "they": true, "is": true, "are": true,
	"was": true, "were": true, "have": true, "has": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true,
}

// Normalize lowercases the input, splits it on whitespace and returns the
// set of tokens that survive stop-word and short-token filtering. The set is
// only ever used for membership tests; duplicates and order are irrelevant.
// Punctuation and diacritics are left untouched on purpose, matching the
// keyword tables.
func Normalize(text string) map[string]bool {
	tokens := map[string]bool{}
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if len(tok) < minTokenLen || stopWords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

// meaningfulWordCount reports how many tokens survive normalization.
// Validation uses it to reject inputs that are all filler.
func meaningfulWordCount(text string) int {
	return len(Normalize(text))
}

// wordCount counts raw whitespace-separated words before any filtering.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
