// Package runeio handles char literals and rune output for char mode.
package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00}, {"<SOH>", 0x01}, {"<STX>", 0x02}, {"<ETX>", 0x03},
	{"<EOT>", 0x04}, {"<ENQ>", 0x05}, {"<ACK>", 0x06}, {"<BEL>", 0x07},
	{"<BS>", 0x08}, {"<HT>", 0x09}, {"<NL>", 0x0A}, {"<VT>", 0x0B},
	{"<NP>", 0x0C}, {"<CR>", 0x0D}, {"<SO>", 0x0E}, {"<SI>", 0x0F},
	{"<DLE>", 0x10}, {"<DC1>", 0x11}, {"<DC2>", 0x12}, {"<DC3>", 0x13},
	{"<DC4>", 0x14}, {"<NAK>", 0x15}, {"<SYN>", 0x16}, {"<ETB>", 0x17},
	{"<CAN>", 0x18}, {"<EM>", 0x19}, {"<SUB>", 0x1A}, {"<ESC>", 0x1B},
	{"<FS>", 0x1C}, {"<GS>", 0x1D}, {"<RS>", 0x1E}, {"<US>", 0x1F},
}

// PseudoCtls provides the typical mnemonics for space and delete.
var PseudoCtls = [2]ControlRune{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

// ControlWords maps control mnemonics, in either case, and caret forms like
// ^[ to runes.
var ControlWords = buildControlWords(C0Ctls[:], PseudoCtls[:])

func buildControlWords(tables ...[]ControlRune) map[string]rune {
	words := make(map[string]rune)
	for _, table := range tables {
		for _, ctl := range table {
			words[strings.ToUpper(ctl.N)] = ctl.R
			words[strings.ToLower(ctl.N)] = ctl.R
			if caret := CaretForm(ctl.R); caret != "" {
				words[caret] = ctl.R
			}
		}
	}
	return words
}

// CaretForm computes the ^-escaped printable form of a C0 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}

// ErrInvalidChar is returned by ParseChar for malformed literals.
var ErrInvalidChar = errors.New(`char literal must be 'X', an escape like '\n', '<NAME>' or '^X'`)

// IsCharLiteral reports whether token has the quoted shape of a char literal.
func IsCharLiteral(token string) bool {
	return len(token) >= 3 && token[0] == '\'' && token[len(token)-1] == '\''
}

// ParseChar decodes a quoted char literal: a single rune, a Go escape
// sequence, or a control mnemonic, between single quotes.
func ParseChar(token string) (rune, error) {
	if !IsCharLiteral(token) {
		return 0, ErrInvalidChar
	}
	body := token[1 : len(token)-1]

	if r, defined := ControlWords[body]; defined {
		return r, nil
	}

	value, _, tail, err := strconv.UnquoteChar(body, '\'')
	if err != nil {
		return 0, ErrInvalidChar
	}
	if tail != "" {
		return 0, ErrInvalidChar
	}
	return value, nil
}
