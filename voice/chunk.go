package voice

import (
	"strings"
	"unicode/utf8"
)

// longest text the translate endpoint speaks in one request
const maxChunkLen = 100

// text is cut after any of these, the mark stays with what precedes it
const chunkPunctuation = "?!？！.,¡()[]¿…‥،;:—。，、：\n"

// splitText breaks text into chunks of at most max runes. Cuts prefer
// punctuation, then whitespace; words longer than max are cut anywhere.
func splitText(text string, max int) []string {
	var tokens []string
	start := 0
	for i, r := range text {
		if strings.ContainsRune(chunkPunctuation, r) {
			end := i + utf8.RuneLen(r)
			tokens = append(tokens, text[start:end])
			start = end
		}
	}
	tokens = append(tokens, text[start:])

	var chunks []string
	current := ""
	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			chunks = append(chunks, s)
		}
		current = ""
	}

	for _, token := range tokens {
		for _, piece := range fitToken(token, max) {
			if utf8.RuneCountInString(current)+utf8.RuneCountInString(piece) > max {
				flush()
			}
			current += piece
		}
	}
	flush()

	return chunks
}

// fitToken splits a token on whitespace so no piece exceeds max runes
func fitToken(token string, max int) []string {
	if utf8.RuneCountInString(token) <= max {
		return []string{token}
	}

	var pieces []string
	for _, word := range strings.Fields(token) {
		word = " " + word
		for utf8.RuneCountInString(word) > max {
			r := []rune(word)
			pieces = append(pieces, string(r[:max]))
			word = string(r[max:])
		}
		pieces = append(pieces, word)
	}
	return pieces
}
