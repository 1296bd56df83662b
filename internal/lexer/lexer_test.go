package lexer

import (
	"testing"

	"github.com/mcgru/srclangc/internal/token"
)

func TestNextTokenCoversClosedSet(t *testing.T) {
	input := `var x = 1 + 2.5
func add(a, b)
  return a + b
end
print(a.b)
x += 1
x -= 1
x++
x--
"hello"
true false`

	want := []token.Kind{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.PLUS, token.NUMBER,
		token.FUNC, token.IDENTIFIER, token.LEFT_PAREN, token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.RIGHT_PAREN,
		token.RETURN, token.IDENTIFIER, token.PLUS, token.IDENTIFIER,
		token.END,
		token.PRINT, token.LEFT_PAREN, token.IDENTIFIER, token.DOT, token.IDENTIFIER, token.RIGHT_PAREN,
		token.IDENTIFIER, token.PLUS_EQUAL, token.NUMBER,
		token.IDENTIFIER, token.MINUS_EQUAL, token.NUMBER,
		token.IDENTIFIER, token.PLUS_PLUS,
		token.IDENTIFIER, token.MINUS_MINUS,
		token.STRING,
		token.TRUE, token.FALSE,
		token.EOF,
	}

	l := New(input)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: got kind %s (lexeme %q), want %s", i, tok.Kind, tok.Lexeme, k)
		}
	}
}

func TestNextTokenDecodesLiterals(t *testing.T) {
	l := New(`42 "abc"`)

	num := l.NextToken()
	if num.Kind != token.NUMBER || num.Literal.(float64) != 42 {
		t.Fatalf("number literal: got %+v", num)
	}

	str := l.NextToken()
	if str.Kind != token.STRING || str.Literal.(string) != "abc" {
		t.Fatalf("string literal: got %+v", str)
	}
}

func TestTokenizeAlwaysEndsInEOF(t *testing.T) {
	tokens := Tokenize("var x")
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("Tokenize did not end in EOF: %+v", tokens)
	}
}
