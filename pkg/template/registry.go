// Package template holds the output templates tokens are rendered with.
//
// A Definition bundles one render function per token kind with a document
// wrapper. Definitions are registered once in a Registry and never mutated
// afterwards, so a Registry can be shared by concurrent renders.
package template

import (
	"sort"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/token"
)

// RenderFunc renders a single token. It may return several lines.
type RenderFunc func(token.Token) string

// Definition describes one output format.
type Definition struct {
	// Description is shown by the templates command.
	Description string
	// Indent prefixes every rendered line. Empty by default.
	Indent string
	// PostProcess rewrites the joined token lines. Identity when nil.
	PostProcess func(body string) string
	// Wrap turns the post-processed body into the final document. Identity when nil.
	Wrap func(body string) string
	// Tokens maps a kind to its renderer. Kinds without a renderer are skipped.
	Tokens map[token.Kind]RenderFunc
}

// Renderer returns the render function for kind, if any.
func (d Definition) Renderer(kind token.Kind) (RenderFunc, bool) {
	fn, ok := d.Tokens[kind]
	return fn, ok && fn != nil
}

// Kinds returns the kinds the definition renders, known kinds first in
// token.Kinds order, then any others sorted by name.
func (d Definition) Kinds() []token.Kind {
	kinds := make([]token.Kind, 0, len(d.Tokens))
	for _, k := range token.Kinds {
		if _, ok := d.Renderer(k); ok {
			kinds = append(kinds, k)
		}
	}

	var extra []token.Kind
	for k := range d.Tokens {
		if !k.Known() {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(kinds, extra...)
}

// ApplyPostProcess runs PostProcess, or returns body unchanged.
func (d Definition) ApplyPostProcess(body string) string {
	if d.PostProcess == nil {
		return body
	}
	return d.PostProcess(body)
}

// ApplyWrap runs Wrap, or returns body unchanged.
func (d Definition) ApplyWrap(body string) string {
	if d.Wrap == nil {
		return body
	}
	return d.Wrap(body)
}

// Registry maps template ids to definitions.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns a registry holding a copy of defs.
func NewRegistry(defs map[string]Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for id, def := range defs {
		tokens := make(map[token.Kind]RenderFunc, len(def.Tokens))
		for k, fn := range def.Tokens {
			tokens[k] = fn
		}
		def.Tokens = tokens
		r.defs[id] = def
	}
	return r
}

// Lookup returns the definition registered under id. An unknown id is a
// configuration error.
func (r *Registry) Lookup(id string) (Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return Definition{}, errdefs.TemplateNotFound(id)
	}
	return def, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.defs[id]
	return ok
}

// IDs returns the registered template ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// With returns a new registry holding r's definitions plus defs. Entries of
// defs replace entries of r with the same id.
func (r *Registry) With(defs map[string]Definition) *Registry {
	merged := make(map[string]Definition, len(r.defs)+len(defs))
	for id, def := range r.defs {
		merged[id] = def
	}
	for id, def := range defs {
		merged[id] = def
	}
	return NewRegistry(merged)
}

var builtin = NewRegistry(map[string]Definition{
	SCSS:       scss(),
	CSS:        css(),
	AndroidXML: androidStyles(),
	FontsXML:   androidFonts(),
	Swift:      swift(),
	ColorsJSON: colorsJSON(),
	TokensJSON: tokensJSON(),
	Markdown:   markdown(),
})

// Builtin returns the registry of built-in templates.
func Builtin() *Registry { return builtin }

// Built-in template ids.
const (
	SCSS       = "styles.scss"
	CSS        = "variables.css"
	AndroidXML = "styles.xml"
	FontsXML   = "fonts.xml"
	Swift      = "styles.swift"
	ColorsJSON = "colors.json"
	TokensJSON = "tokens.json"
	Markdown   = "tokens.md"
)
