package graph

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var sourceData string

// Sources returns the SDL files of the API.
func Sources() []*ast.Source {
	return []*ast.Source{
		{Name: "schema.graphqls", Input: sourceData, BuiltIn: false},
	}
}

// Schema parses and validates the API schema. It panics on an invalid SDL.
func Schema() *ast.Schema {
	return gqlparser.MustLoadSchema(Sources()...)
}
