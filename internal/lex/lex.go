// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package lex tokenizes the small text formats that materials are built
// from: GDT files, state maps, technique sets and techniques.
package lex

import (
	"bytes"
	"fmt"
)

type Kind uint8

const (
	EOF Kind = iota
	Ident
	String
	Punct
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Punct:
		return "punctuation"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

type Token struct {
	Kind Kind
	// Text holds the token's text. For strings, the quotes are removed.
	Text string
	Line int
}

func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case String:
		return fmt.Sprintf("%q", t.Text)
	default:
		return fmt.Sprintf("'%s'", t.Text)
	}
}

// Lexer splits a source into tokens. Identifiers are runs of letters,
// digits, underscores, dots, dollar signs and minus signs, which covers
// technique names and numbers alike. Both // and /* */ comments are skipped.
type Lexer struct {
	name string
	src  []byte
	off  int
	line int

	peeked *Token
}

func New(name string, src []byte) *Lexer {
	return &Lexer{name: name, src: src, line: 1}
}

// Errorf returns an error annotated with the position of tok.
func (l *Lexer) Errorf(tok Token, f string, v ...any) error {
	v = append(v[:len(v):len(v)], l.name, tok.Line)
	return fmt.Errorf(f+" (at %s:%d)", v...)
}

var twoCharPuncts = [...]string{"==", "!=", "&&", "||"}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '$' || c == '-'
}

func (l *Lexer) skip() error {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == '\n':
			l.line++
			l.off++
		case c == ' ' || c == '\t' || c == '\r':
			l.off++
		case bytes.HasPrefix(l.src[l.off:], []byte("//")):
			end := bytes.IndexByte(l.src[l.off:], '\n')
			if end == -1 {
				l.off = len(l.src)
			} else {
				l.off += end
			}
		case bytes.HasPrefix(l.src[l.off:], []byte("/*")):
			end := bytes.Index(l.src[l.off+2:], []byte("*/"))
			if end == -1 {
				return fmt.Errorf("unterminated comment (at %s:%d)", l.name, l.line)
			}
			l.line += bytes.Count(l.src[l.off:l.off+2+end], []byte("\n"))
			l.off += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}

	if err := l.skip(); err != nil {
		return Token{}, err
	}
	if l.off == len(l.src) {
		return Token{Kind: EOF, Line: l.line}, nil
	}

	c := l.src[l.off]
	switch {
	case c == '"':
		end := bytes.IndexAny(l.src[l.off+1:], "\"\n")
		if end == -1 || l.src[l.off+1+end] == '\n' {
			return Token{}, fmt.Errorf("unterminated string (at %s:%d)", l.name, l.line)
		}
		tok := Token{Kind: String, Text: string(l.src[l.off+1 : l.off+1+end]), Line: l.line}
		l.off += end + 2
		return tok, nil

	case isIdent(c):
		start := l.off
		for l.off < len(l.src) && isIdent(l.src[l.off]) {
			l.off++
		}
		return Token{Kind: Ident, Text: string(l.src[start:l.off]), Line: l.line}, nil

	default:
		for _, p := range twoCharPuncts {
			if bytes.HasPrefix(l.src[l.off:], []byte(p)) {
				l.off += 2
				return Token{Kind: Punct, Text: p, Line: l.line}, nil
			}
		}
		l.off++
		return Token{Kind: Punct, Text: string(c), Line: l.line}, nil
	}
}

// Expect consumes the next token and fails unless it is the punctuation p.
func (l *Lexer) Expect(p string) (Token, error) {
	tok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	if !tok.Is(Punct, p) {
		return Token{}, l.Errorf(tok, "expected '%s', got %s", p, tok)
	}
	return tok, nil
}

// Name consumes an identifier or a string.
func (l *Lexer) Name() (Token, error) {
	tok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != Ident && tok.Kind != String {
		return Token{}, l.Errorf(tok, "expected name, got %s", tok)
	}
	return tok, nil
}

// Accept consumes the next token if it is the punctuation p.
func (l *Lexer) Accept(p string) (bool, error) {
	tok, err := l.Peek()
	if err != nil {
		return false, err
	}
	if tok.Is(Punct, p) {
		l.peeked = nil
		return true, nil
	}
	return false, nil
}
