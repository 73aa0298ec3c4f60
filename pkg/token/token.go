// Package token defines the canonical design token produced by the extractor
// and consumed by templates.
package token

import (
	"strconv"
)

// Kind is the semantic category of a token, taken from the name of the
// group that encloses the token node.
type Kind string

// Known kinds. Templates may register renderers for other kinds too.
const (
	Colors     Kind = "Colors"
	Typography Kind = "Typography"
	Spacings   Kind = "Spacings"
	Shadows    Kind = "Shadows"
)

// Kinds lists the known kinds in a stable order.
var Kinds = []Kind{Colors, Typography, Spacings, Shadows}

// Known reports whether k is one of the kinds the normalizer understands.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Token is a named, typed design value. Exactly one payload is meaningful,
// selected by Kind:
//
//	Colors     -> Color
//	Typography -> Font
//	Spacings   -> Spacing
//	Shadows    -> Shadows
type Token struct {
	Name string
	Kind Kind

	Color   Color
	Font    Font
	Spacing float64
	Shadows []Shadow
}

// Font holds the typography payload. Sizes are in px.
type Font struct {
	Family        string  `json:"fontFamily"`
	Size          float64 `json:"fontSize"`
	Weight        int     `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing"`
}

// Offset is a shadow displacement in px.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shadow is one entry of a Shadows token.
type Shadow struct {
	Inner  bool    `json:"inner"`
	Offset Offset  `json:"offset"`
	Blur   float64 `json:"blur"`
	Color  Color   `json:"color"`
}

// Value returns the payload selected by the token kind, or nil for kinds
// without a payload.
func (t Token) Value() any {
	switch t.Kind {
	case Colors:
		return t.Color
	case Typography:
		return t.Font
	case Spacings:
		return t.Spacing
	case Shadows:
		return t.Shadows
	default:
		return nil
	}
}

// CountByKind returns the number of tokens per kind.
func CountByKind(tokens []Token) map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range tokens {
		counts[t.Kind]++
	}
	return counts
}

// Filter returns the tokens whose kind is in kinds, preserving order.
// An empty kinds set returns tokens unchanged.
func Filter(tokens []Token, kinds []Kind) []Token {
	if len(kinds) == 0 {
		return tokens
	}

	allowed := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}

	filtered := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := allowed[t.Kind]; ok {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FormatNumber prints v with the fewest digits that represent it, so 0 is
// "0" and 1.2 is "1.2".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
