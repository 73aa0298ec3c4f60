// Package render applies a template definition to a sequence of tokens.
package render

import (
	"path/filepath"
	"strings"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/template"
	"github.com/kataras/figma-tokens/pkg/token"
)

// Request describes one output artifact.
type Request struct {
	Path     string       `koanf:"path"`
	Name     string       `koanf:"name"`
	Template string       `koanf:"template"`
	Kinds    []token.Kind `koanf:"kinds"`
}

// Target returns the destination file path of the artifact.
func (r Request) Target() string {
	return filepath.Join(r.Path, r.Name)
}

// Validate reports a configuration error for incomplete requests.
func (r Request) Validate() error {
	if r.Name == "" {
		return errdefs.Configf("output for template %q has no name", r.Template)
	}
	if r.Template == "" {
		return errdefs.Configf("output %q has no template", r.Name)
	}
	return nil
}

// Renderer renders tokens with the templates of a registry.
type Renderer struct {
	registry *template.Registry
}

// New returns a Renderer over reg, or over the built-in templates when reg is nil.
func New(reg *template.Registry) *Renderer {
	if reg == nil {
		reg = template.Builtin()
	}
	return &Renderer{registry: reg}
}

// Registry returns the registry the renderer looks templates up in.
func (r *Renderer) Registry() *template.Registry { return r.registry }

// Render filters tokens to kinds (all when empty), renders every token whose
// kind has a renderer in the templateID definition and returns the wrapped
// document. An unknown templateID is a configuration error.
func (r *Renderer) Render(tokens []token.Token, templateID string, kinds []token.Kind) (string, error) {
	def, err := r.registry.Lookup(templateID)
	if err != nil {
		return "", err
	}
	return Apply(def, token.Filter(tokens, kinds)), nil
}

// RenderRequest renders the artifact described by req.
func (r *Renderer) RenderRequest(tokens []token.Token, req Request) (string, error) {
	return r.Render(tokens, req.Template, req.Kinds)
}

// Apply renders tokens with def. Tokens whose kind def has no renderer for
// are skipped.
func Apply(def template.Definition, tokens []token.Token) string {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		fn, ok := def.Renderer(t.Kind)
		if !ok {
			continue
		}
		for _, line := range strings.Split(fn(t), "\n") {
			lines = append(lines, def.Indent+line)
		}
	}

	body := strings.Join(lines, "\n")
	return def.ApplyWrap(def.ApplyPostProcess(body))
}

// Render is a convenience over the built-in templates.
func Render(tokens []token.Token, templateID string, kinds []token.Kind) (string, error) {
	return New(nil).Render(tokens, templateID, kinds)
}
