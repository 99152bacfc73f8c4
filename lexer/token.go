// Package lexer turns lambda source text into a flat token stream.
package lexer

import "fmt"

// Kind identifies the syntactic category of a Token. Defined as a string
// so debugging output and error messages can print it directly.
type Kind string

const (
	Name      Kind = "name"
	Dec       Kind = "dec"
	LParen    Kind = "lp"
	RParen    Kind = "rp"
	LBrace    Kind = "lbr"
	RBrace    Kind = "rbr"
	Comma     Kind = "comma"
	Colon     Kind = "col"
	Op        Kind = "op"
	Backtick  Kind = "backtick"
	String1   Kind = "string1"
	String2   Kind = "string2"
	If        Kind = "if"
	Then      Kind = "then"
	Else      Kind = "else"
	Dot       Kind = "dot"
	Semicolon Kind = "semicolon"
	Ws        Kind = "ws"
	EOF       Kind = "eof"
	Invalid   Kind = "invalid"
)

// keywords lists the words that lex as their own Kind rather than Name.
// Order is irrelevant; lookupKeyword consults this map after a maximal
// munch of identifier characters, so "iffy" still lexes as a Name.
var keywords = map[string]Kind{
	"if":   If,
	"then": Then,
	"else": Else,
}

func lookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Token is one lexical unit: its kind, its exact source text, and the byte
// offset of its first byte. Concatenating Text fields in order reproduces
// the original source modulo skipped ws tokens that the caller discarded.
type Token struct {
	Kind       Kind
	Text       string
	ByteOffset int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.ByteOffset)
}

// IsOperand reports whether a token of this kind can start an atomic
// expression. Neither the lexer nor the expression parser calls it.
func (k Kind) IsOperand() bool {
	switch k {
	case Name, Dec, String1, String2, LParen, LBrace, If, Colon:
		return true
	default:
		return false
	}
}
