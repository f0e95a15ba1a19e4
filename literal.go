package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jcorbin/goforth/internal/runeio"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	hexPattern     = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

func isStringLiteral(token string) bool {
	return len(token) >= 3 && strings.HasPrefix(token, `."`) && strings.HasSuffix(token, `"`)
}

// isLiteral reports whether token has the shape of a literal that may appear
// inside a definition body: a decimal integer, a string or char literal, or a
// number in the current mode.
func (e *Engine) isLiteral(token string) bool {
	switch {
	case decimalPattern.MatchString(token),
		isStringLiteral(token),
		runeio.IsCharLiteral(token):
		return true
	case e.mode == modeHex:
		return hexPattern.MatchString(token)
	case e.mode == modeFraction:
		return floatPattern.MatchString(token)
	}
	return false
}

// literal handles token if it is a number literal of the current mode, or a
// string literal, returning false otherwise.
func (e *Engine) literal(token string) (bool, error) {
	switch e.mode {
	case modeDecimal:
		if decimalPattern.MatchString(token) {
			v, err := strconv.ParseInt(token, 10, 32)
			if err != nil {
				return true, literalError{integerLiteral, token}
			}
			return true, e.stack.PushInt(int32(v))
		}

	case modeHex:
		if hexPattern.MatchString(token) {
			v, err := strconv.ParseUint(token, 16, 32)
			if err != nil {
				return true, literalError{hexLiteral, token}
			}
			return true, e.stack.PushInt(int32(uint32(v)))
		}

	case modeFraction:
		if floatPattern.MatchString(token) {
			v, err := strconv.ParseFloat(token, 32)
			if err != nil {
				return true, literalError{floatLiteral, token}
			}
			return true, e.stack.PushFloat(float32(v))
		}

	case modeChar:
		if runeio.IsCharLiteral(token) {
			r, err := runeio.ParseChar(token)
			if err != nil {
				return true, literalError{charLiteral, token}
			}
			return true, e.stack.PushInt(int32(r))
		}
	}

	if isStringLiteral(token) {
		return true, runeio.WriteString(e.out, token[2:len(token)-1])
	}

	return false, nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
