package types

import "testing"

func TestPriority(t *testing.T) {
	if !(EQUAL.Priority() < ADD.Priority() &&
		ADD.Priority() == MINUS.Priority() &&
		MINUS.Priority() < MUL.Priority() &&
		MUL.Priority() == DIV.Priority()) {
		t.Error("priorities out of order")
	}

	for _, k := range []TokenKind{NUMBER, STRING, SYMBOL, BOOL, COMMA, LPAREN, RPAREN, VAR, EOL, EOF} {
		if k.Priority() != 0 || k.IsOperator() {
			t.Errorf("%s should not be an operator", k)
		}
	}
	if EQUAL.IsOperator() {
		t.Error("EQUAL must not take part in folding")
	}
}

func TestKindString(t *testing.T) {
	if MUL.String() != "MUL" || EOL.String() != "EOL" {
		t.Errorf("got %s %s", MUL, EOL)
	}
	if got := TokenKind(99).String(); got != "TokenKind(99)" {
		t.Errorf("got %s", got)
	}
}

func TestTokenLiteral(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: NUMBER, Text: "1.5"}, "1.5"},
		{Token{Kind: STRING, Text: `"x"`}, `"x"`},
		{Token{Kind: DIV}, "/"},
		{Token{Kind: VAR}, "var"},
		{Token{Kind: EOF}, ""},
	}
	for _, tt := range tests {
		if got := tt.tok.Literal(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.tok, got, tt.want)
		}
	}
}
