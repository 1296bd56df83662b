// Package lexer is the token producer at the boundary between raw source
// text and the parser/AST/generator core. It exists so the pipeline and CLI
// have a real Token source and so tests can drive end-to-end scenarios from
// source text instead of hand-built token slices, scanning SrcLang's closed
// token set.
package lexer

import (
	"strconv"

	"github.com/mcgru/srclangc/internal/token"
)

// Lexer scans source text into a Token stream, one NextToken() call at a
// time.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token, advancing the scan position. Once the
// input is exhausted it returns an EOF token on every subsequent call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line := l.line
	var tok token.Token

	switch l.ch {
	case 0:
		tok = token.Token{Kind: token.EOF, Lexeme: "", Line: line}
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			tok = token.Token{Kind: token.PLUS_PLUS, Lexeme: "++", Line: line}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.PLUS_EQUAL, Lexeme: "+=", Line: line}
		} else {
			tok = token.Token{Kind: token.PLUS, Lexeme: "+", Line: line}
		}
	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			tok = token.Token{Kind: token.MINUS_MINUS, Lexeme: "--", Line: line}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.MINUS_EQUAL, Lexeme: "-=", Line: line}
		} else {
			tok = token.Token{Kind: token.MINUS, Lexeme: "-", Line: line}
		}
	case '*':
		tok = token.Token{Kind: token.MULTIPLY, Lexeme: "*", Line: line}
	case '/':
		tok = token.Token{Kind: token.DIVIDE, Lexeme: "/", Line: line}
	case '=':
		tok = token.Token{Kind: token.EQUAL, Lexeme: "=", Line: line}
	case '(':
		tok = token.Token{Kind: token.LEFT_PAREN, Lexeme: "(", Line: line}
	case ')':
		tok = token.Token{Kind: token.RIGHT_PAREN, Lexeme: ")", Line: line}
	case ',':
		tok = token.Token{Kind: token.COMMA, Lexeme: ",", Line: line}
	case '.':
		tok = token.Token{Kind: token.DOT, Lexeme: ".", Line: line}
	case '"':
		return l.readString(line)
	default:
		if isDigit(l.ch) {
			return l.readNumber(line)
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier(line)
		}
		tok = token.Token{Kind: token.EOF, Lexeme: string(l.ch), Line: line}
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readString(line int) token.Token {
	l.readChar() // consume opening quote
	start := l.position
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	value := l.input[start:l.position]
	l.readChar() // consume closing quote
	return token.Token{Kind: token.STRING, Lexeme: value, Literal: value, Line: line}
}

func (l *Lexer) readNumber(line int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: value, Line: line}
}

func (l *Lexer) readIdentifier(line int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

// Tokenize scans the entire input and returns the full token slice,
// including the trailing EOF token the parser requires.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
