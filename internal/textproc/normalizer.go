package textproc

import (
	"strings"
	"unicode"
)

// asciiPunctuation is the ASCII punctuation set removed before tokenization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer maps raw text onto a normalized token string.
//
// Steps, in order:
//  1. lowercase
//  2. delete ASCII punctuation (no whitespace inserted: "state-of-the-art" -> "stateoftheart")
//  3. split into words with the Unicode word tokenizer
//  4. drop English stopwords
//  5. drop tokens that are not purely letters/digits
//  6. join with single spaces
type Normalizer struct {
	res *Resources
}

// NewNormalizer creates a Normalizer over loaded resources.
func NewNormalizer(res *Resources) *Normalizer {
	return &Normalizer{res: res}
}

// Normalize returns the normalized form of text, or "" when nothing survives.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}

// Tokens returns the surviving tokens of text in order.
func (n *Normalizer) Tokens(text string) []string {
	if text == "" {
		return nil
	}
	text = stripPunctuation(strings.ToLower(text))

	stream := n.res.stopper.Filter(n.res.tokenizer.Tokenize([]byte(text)))
	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		term := string(tok.Term)
		if !isAlnum(term) {
			continue
		}
		tokens = append(tokens, term)
	}
	return tokens
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
