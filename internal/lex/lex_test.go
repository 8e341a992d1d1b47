// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package lex

import (
	"strings"
	"testing"
)

func TestLexer(t *testing.T) {
	src := `// leading comment
depthWrite
{
	/* block
	   comment */
	blendFunc == Disable && alphaTest != GE128:
		"lit sun";
	$identitynormalmap 1.5
}`
	want := []Token{
		{Ident, "depthWrite", 2},
		{Punct, "{", 3},
		{Ident, "blendFunc", 6},
		{Punct, "==", 6},
		{Ident, "Disable", 6},
		{Punct, "&&", 6},
		{Ident, "alphaTest", 6},
		{Punct, "!=", 6},
		{Ident, "GE128", 6},
		{Punct, ":", 6},
		{String, "lit sun", 7},
		{Punct, ";", 7},
		{Ident, "$identitynormalmap", 8},
		{Ident, "1.5", 8},
		{Punct, "}", 9},
		{EOF, "", 9},
	}

	l := New("test.sm", []byte(src))
	for i, w := range want {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("token %d: %s", i, err)
		}
		if tok != w {
			t.Fatalf("token %d: got %#v, want %#v", i, tok, w)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"unterminated`, "unterminated string (at x:1)"},
		{"\"broken\nstring\"", "unterminated string (at x:1)"},
		{"a\n/* never closed", "unterminated comment (at x:2)"},
	}
	for _, tt := range tests {
		l := New("x", []byte(tt.src))
		var err error
		for err == nil {
			var tok Token
			tok, err = l.Next()
			if tok.Kind == EOF && err == nil {
				break
			}
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: got error %v, want %q", tt.src, err, tt.want)
		}
	}
}

func TestPeekAccept(t *testing.T) {
	l := New("x", []byte("{ name }"))
	if ok, err := l.Accept("{"); !ok || err != nil {
		t.Fatalf("Accept({) = %t, %v", ok, err)
	}
	if ok, _ := l.Accept("}"); ok {
		t.Fatal("accepted '}' before name")
	}
	tok, err := l.Name()
	if err != nil || tok.Text != "name" {
		t.Fatalf("Name() = %v, %v", tok, err)
	}
	if _, err := l.Expect("}"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Expect(";"); err == nil {
		t.Fatal("expected error at end of file")
	}
}
