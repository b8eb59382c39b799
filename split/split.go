// Package split finds top-level tokens of JSON object and array literals
// without parsing nested content. Malformed input yields an empty or partial
// result, never an error.
package split

import (
	"strings"
	"unicode"
)

// KeyPolicy controls whitespace handling in object keys
type KeyPolicy int

const (
	//KeepKeyWhitespace keeps whitespace inside quoted keys
	KeepKeyWhitespace KeyPolicy = iota
	//StripKeyWhitespace removes every whitespace from a key
	StripKeyWhitespace
)

// Token represents a top-level object field
type Token struct {
	Key string
	Raw string
}

// Fields splits object literal into top-level key/value tokens
func Fields(literal string, policy KeyPolicy) []Token {
	content, ok := unwrap(literal, '{', '}')
	if !ok || strings.TrimSpace(content) == "" {
		return nil
	}
	chunks := topLevel(content)
	result := make([]Token, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		colon := keyDelimiter(chunk)
		if colon <= 0 {
			continue
		}
		key := chunk[:colon]
		if policy == StripKeyWhitespace {
			key = stripWhitespace(key)
		} else {
			key = strings.TrimSpace(key)
		}
		key = strings.TrimPrefix(key, `"`)
		key = strings.TrimSuffix(key, `"`)
		result = append(result, Token{Key: key, Raw: strings.TrimSpace(chunk[colon+1:])})
	}
	return result
}

// Lookup indexes tokens by key, later duplicates win
func Lookup(tokens []Token) map[string]string {
	result := make(map[string]string, len(tokens))
	for _, token := range tokens {
		result[token.Key] = token.Raw
	}
	return result
}

// Elements splits array literal into top-level element tokens, an empty array yields an empty, non nil slice
func Elements(literal string) []string {
	content, ok := unwrap(literal, '[', ']')
	if !ok {
		return nil
	}
	if strings.TrimSpace(content) == "" {
		return []string{}
	}
	chunks := topLevel(content)
	for i, chunk := range chunks {
		chunks[i] = strings.TrimSpace(chunk)
	}
	return chunks
}

// IsObject returns true if trimmed literal is wrapped with {}
func IsObject(literal string) bool {
	_, ok := unwrap(literal, '{', '}')
	return ok
}

// IsArray returns true if trimmed literal is wrapped with []
func IsArray(literal string) bool {
	_, ok := unwrap(literal, '[', ']')
	return ok
}

func unwrap(literal string, open, close byte) (string, bool) {
	literal = strings.TrimSpace(literal)
	if len(literal) < 2 || literal[0] != open || literal[len(literal)-1] != close {
		return "", false
	}
	return literal[1 : len(literal)-1], true
}

// topLevel splits content on commas outside of quotes, braces and brackets
func topLevel(content string) []string {
	var result []string
	var s scanner
	start := 0
	for i := 0; i < len(content); i++ {
		if s.next(content, i) && content[i] == ',' {
			result = append(result, content[start:i])
			start = i + 1
		}
	}
	return append(result, content[start:])
}

// keyDelimiter returns index of the first top-level ':' or -1
func keyDelimiter(field string) int {
	var s scanner
	for i := 0; i < len(field); i++ {
		if s.next(field, i) && field[i] == ':' {
			return i
		}
	}
	return -1
}

type scanner struct {
	braces   int
	brackets int
	inQuotes bool
}

// next consumes character at i, it returns true when the character sits at depth zero outside quotes
func (s *scanner) next(text string, i int) bool {
	c := text[i]
	if c == '"' && !isEscaped(text, i) {
		s.inQuotes = !s.inQuotes
		return false
	}
	if s.inQuotes {
		return false
	}
	switch c {
	case '{':
		s.braces++
	case '}':
		s.braces--
	case '[':
		s.brackets++
	case ']':
		s.brackets--
	}
	return s.braces == 0 && s.brackets == 0
}

// isEscaped returns true when the quote at i follows an odd run of backslashes
func isEscaped(text string, i int) bool {
	run := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		run++
	}
	return run%2 == 1
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
