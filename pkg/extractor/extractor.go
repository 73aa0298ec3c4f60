// Package extractor finds token-bearing nodes in a Figma document tree and
// normalizes them into canonical tokens.
package extractor

import (
	"strings"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/logging"
	"github.com/kataras/figma-tokens/pkg/token"
)

const (
	// TokenMarker prefixes the name of every token-bearing node.
	TokenMarker = "$"
	// HiddenMarker prefixes the name of artboards excluded from extraction.
	HiddenMarker = "_"
)

// Extractor walks a Figma document tree and collects canonical tokens.
type Extractor struct {
	log logging.Logger
}

// New returns an Extractor reporting dropped nodes to log. A nil log is silent.
func New(log logging.Logger) *Extractor {
	return &Extractor{log: logging.OrNop(log)}
}

// ExtractFile extracts the tokens of a whole file response.
// A response without a document or without a page sequence is a configuration error.
func (e *Extractor) ExtractFile(fileResp *figma.FileResponse) ([]token.Token, error) {
	pages, ok := fileResp.Pages()
	if !ok {
		return nil, errdefs.Configf("document has no children")
	}
	return e.Extract(pages), nil
}

// Extract walks pages -> artboards -> groups and collects every token-bearing
// node below each group, in document pre-order.
//
// Artboards whose name starts with HiddenMarker are skipped, as are artboards
// without children. Only GROUP children of an artboard are considered groups;
// the group name selects the token kind of everything below it.
func (e *Extractor) Extract(pages []figma.Node) []token.Token {
	tokens := make([]token.Token, 0)

	for i := range pages {
		for j := range pages[i].Children {
			artboard := &pages[i].Children[j]
			if strings.HasPrefix(artboard.Name, HiddenMarker) || len(artboard.Children) == 0 {
				continue
			}

			for k := range artboard.Children {
				group := &artboard.Children[k]
				if group.Type != figma.NodeTypeGroup || len(group.Children) == 0 {
					continue
				}

				kind := token.Kind(group.Name)
				for l := range group.Children {
					tokens = e.walk(&group.Children[l], kind, tokens)
				}
			}
		}
	}

	return tokens
}

// walk appends the normalized token of node when it is token-bearing, and
// otherwise descends into its children.
func (e *Extractor) walk(node *figma.Node, kind token.Kind, tokens []token.Token) []token.Token {
	if IsTokenNode(node) {
		tok, err := Normalize(node, kind)
		if err != nil {
			if errdefs.IsUnsupportedKind(err) {
				e.log.Warnf("%s type is not supported", kind)
			} else {
				e.log.Warnf("skipping %s: %v", node.Name, err)
			}
			return tokens
		}
		return append(tokens, tok)
	}

	for i := range node.Children {
		tokens = e.walk(&node.Children[i], kind, tokens)
	}
	return tokens
}

// IsTokenNode reports whether the node name carries the token marker.
func IsTokenNode(node *figma.Node) bool {
	return strings.HasPrefix(node.Name, TokenMarker)
}

// Extract is a convenience for New(log).Extract(pages).
func Extract(pages []figma.Node, log logging.Logger) []token.Token {
	return New(log).Extract(pages)
}
