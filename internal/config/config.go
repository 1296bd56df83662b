// Package config is the single source of truth for small fixed tables the
// generator and CLI need to agree on, centralizing them
// instead of scattering literals across packages.
package config

import "github.com/mcgru/srclangc/internal/token"

// ArithmeticOperators maps the four binary/unary arithmetic operator kinds
// to their target-language symbol.
var ArithmeticOperators = map[token.Kind]string{
	token.PLUS:     "+",
	token.MINUS:    "-",
	token.MULTIPLY: "*",
	token.DIVIDE:   "/",
}

// EventHandlerNames are the reserved function identifiers the generator
// rewrites into host-API calls instead of emitting as top-level functions.
var EventHandlerNames = map[string]bool{
	"_forever":        true,
	"_on_collision":   true,
	"_on_clone_start": true,
}

// SourceFileExtensions are the file extensions the CLI recognizes as
// SrcLang source when scanning a directory argument.
var SourceFileExtensions = []string{".src", ".sl"}
