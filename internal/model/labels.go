package model

import (
	"regexp"
	"strings"
)

var wordSeparatorPattern = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler converts a field name into a human-friendly label. It splits
// on underscores, dashes and camelCase boundaries, keeping acronym runs
// together ("publisherURL" becomes "Publisher Url", "ISBNCode" becomes
// "Isbn Code").
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	for _, chunk := range wordSeparatorPattern.Split(name, -1) {
		words = append(words, camelWords(chunk)...)
	}

	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// camelWords splits a separator-free chunk at camelCase transitions: lower to
// upper, letter to digit, digit to letter, and the final capital of an
// acronym run when a lowercase letter follows it.
func camelWords(chunk string) []string {
	runes := []rune(chunk)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		split := false
		switch {
		case isLower(prev) && isUpper(cur):
			split = true
		case isLetter(prev) && isDigit(cur):
			split = true
		case isDigit(prev) && isLetter(cur):
			split = true
		case isUpper(prev) && isUpper(cur) && i+1 < len(runes) && isLower(runes[i+1]):
			split = true
		}
		if split {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
