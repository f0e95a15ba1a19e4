// Package token splits source text into whitespace separated tokens,
// honoring comment, string and char quoting.
package token

import "strings"

type state uint8

const (
	plain state = iota
	comment
	stringLit
	charLit
)

// Tokenize scans src left to right. Outside quoting, space, tab, CR and LF end
// the current token. A token starting with "(" opens a comment, discarded
// through the next ")". A token starting with `."` opens a string literal and
// one starting with "'" opens a char literal; both keep their whitespace and
// delimiters and end at the closing quote. Tokenize never fails: unterminated
// quoting runs to the end of src, where any pending token is trimmed and kept.
func Tokenize(src string) []string {
	var (
		tokens  []string
		buf     strings.Builder
		st      state
		escaped bool
	)

	flush := func(trim bool) {
		s := buf.String()
		buf.Reset()
		if trim {
			s = strings.TrimSpace(s)
		}
		if s != "" {
			tokens = append(tokens, s)
		}
	}

	for _, r := range src {
		switch st {
		case comment:
			if r == ')' {
				st = plain
			}
			continue

		case stringLit:
			buf.WriteRune(r)
			if r == '"' {
				st = plain
				flush(false)
			}
			continue

		case charLit:
			buf.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '\'':
				st = plain
				flush(false)
			}
			continue
		}

		switch {
		case isSpace(r):
			flush(true)
		case r == '(' && buf.Len() == 0:
			st = comment
		case r == '\'' && buf.Len() == 0:
			buf.WriteRune(r)
			st = charLit
		case r == '"' && buf.String() == ".":
			buf.WriteRune(r)
			st = stringLit
		default:
			buf.WriteRune(r)
		}
	}
	flush(true)

	return tokens
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
