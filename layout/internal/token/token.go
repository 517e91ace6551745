package token

import (
	"unicode"
)

type Type int

const (
	LBracket Type = iota
	RBracket
	LBrace
	RBrace
	Colon
	Bang
	Sep
	Ident
	Number
	Illegal
)

func (t Type) String() string {
	switch t {
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Colon:
		return "':'"
	case Bang:
		return "'!'"
	case Sep:
		return "separator"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case Illegal:
		return "illegal character"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

var punct = map[rune]Type{
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	':': Colon,
	'!': Bang,
	',': Sep,
	';': Sep,
}

func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '#' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		if typ, ok := punct[r]; ok {
			tokens = append(tokens, Token{string(r), typ, line})
			continue
		}

		// Decimal or 0x-prefixed hex
		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) || c == 'x' || c == 'X' || c == '_' ||
					(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line})
			i--
			continue
		}

		if unicode.IsLetter(r) || r == '_' {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.' || c == '-' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}

		tokens = append(tokens, Token{string(r), Illegal, line})
	}

	return tokens
}
