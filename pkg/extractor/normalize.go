package extractor

import (
	"math"
	"strings"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/token"
)

// TokenName strips the token marker and surrounding whitespace from a node name.
func TokenName(nodeName string) string {
	return strings.TrimSpace(strings.TrimPrefix(nodeName, TokenMarker))
}

// Normalize converts a token-bearing node into a canonical token of the given kind.
//
// It returns an ErrUnsupportedKind error for kinds outside token.Kinds and an
// ErrMalformedNode error when the node lacks what its kind needs. It never panics
// on partial nodes.
func Normalize(node *figma.Node, kind token.Kind) (token.Token, error) {
	tok := token.Token{
		Name: TokenName(node.Name),
		Kind: kind,
	}

	switch kind {
	case token.Colors:
		if len(node.Fills) == 0 {
			// Some exported color layers carry no resolved fill.
			tok.Color = token.Transparent
			return tok, nil
		}
		fill := node.Fills[0]
		if fill.Color == nil {
			return tok, errdefs.Malformed(node.Name, "first fill has no color")
		}
		// Paint opacity scales the color's own alpha; a missing opacity is 1.
		alpha := fill.Color.A
		if fill.Opacity != nil {
			alpha *= *fill.Opacity
		}
		tok.Color = token.Color{R: fill.Color.R, G: fill.Color.G, B: fill.Color.B, A: alpha}

	case token.Typography:
		style := node.Style
		if style == nil {
			return tok, errdefs.Malformed(node.Name, "missing style")
		}
		tok.Font = token.Font{
			Family:        style.FontFamily,
			Size:          style.FontSize,
			Weight:        int(math.Round(style.FontWeight)),
			LineHeight:    style.LineHeightPx,
			LetterSpacing: roundLetterSpacing(style.LetterSpacing),
		}

	case token.Spacings:
		if node.AbsoluteBoundingBox == nil {
			return tok, errdefs.Malformed(node.Name, "missing absoluteBoundingBox")
		}
		tok.Spacing = node.AbsoluteBoundingBox.Height

	case token.Shadows:
		if len(node.Effects) == 0 {
			return tok, errdefs.Malformed(node.Name, "no effects")
		}
		tok.Shadows = make([]token.Shadow, 0, len(node.Effects))
		for _, effect := range node.Effects {
			tok.Shadows = append(tok.Shadows, normalizeShadow(effect))
		}

	default:
		return tok, errdefs.Unsupported(string(kind))
	}

	return tok, nil
}

func normalizeShadow(effect figma.Effect) token.Shadow {
	shadow := token.Shadow{
		Inner: effect.Type == figma.EffectInnerShadow,
		Blur:  effect.Radius,
	}
	if effect.Offset != nil {
		shadow.Offset = token.Offset{X: effect.Offset.X, Y: effect.Offset.Y}
	}
	if effect.Color != nil {
		shadow.Color = token.Color{R: effect.Color.R, G: effect.Color.G, B: effect.Color.B, A: effect.Color.A}
	}
	return shadow
}

// roundLetterSpacing rounds to one decimal, leaving an exact zero untouched.
func roundLetterSpacing(v float64) float64 {
	if v == 0 {
		return 0
	}
	r := math.Round(v*10) / 10
	if r == 0 {
		// avoid -0
		return 0
	}
	return r
}
