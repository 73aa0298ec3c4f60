package template

import (
	"fmt"
	"math"
	"strings"

	"github.com/kataras/figma-tokens/pkg/token"
)

var weightSuffixes = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

// WeightSuffix maps a 100-900 font weight to its PostScript style suffix.
// Weights are snapped to the nearest hundred. Weights outside 1-1000 (a
// style without a weight) get no suffix. Helvetica Neue has no "Regular"
// face, so its 400 weight has no suffix.
func WeightSuffix(family string, weight int) string {
	if weight < 1 || weight > 1000 {
		return ""
	}
	w := int(math.Round(float64(weight)/100)) * 100
	w = max(100, min(900, w))
	if w == 400 && family == "Helvetica Neue" {
		return ""
	}
	return weightSuffixes[w]
}

// PostScriptName derives the font name UIFont(name:) expects.
func PostScriptName(f token.Font) string {
	name := strings.ReplaceAll(f.Family, " ", "")
	if suffix := WeightSuffix(f.Family, f.Weight); suffix != "" {
		name += "-" + suffix
	}
	return name
}

func channel(v float64) string {
	return token.FormatNumber(round(math.Max(0, math.Min(1, v)), 3))
}

func swift() Definition {
	return Definition{
		Description: "Swift UIKit constants",
		Indent:      "    ",
		Wrap: func(body string) string {
			return "import UIKit\n\nenum DesignTokens {\n" + body + "\n}\n"
		},
		Tokens: map[token.Kind]RenderFunc{
			token.Colors: func(t token.Token) string {
				c := t.Color
				return fmt.Sprintf("static let %s = UIColor(red: %s, green: %s, blue: %s, alpha: %s)",
					lowerCamel(t.Name), channel(c.R), channel(c.G), channel(c.B), channel(c.A))
			},
			token.Spacings: func(t token.Token) string {
				return fmt.Sprintf("static let %s: CGFloat = %s", lowerCamel(t.Name), token.FormatNumber(t.Spacing))
			},
			token.Typography: func(t token.Token) string {
				n := lowerCamel(t.Name)
				return fmt.Sprintf("static let %s = UIFont(name: %q, size: %s)!\n", n, PostScriptName(t.Font), token.FormatNumber(t.Font.Size)) +
					fmt.Sprintf("static let %sLineHeight: CGFloat = %s\n", n, token.FormatNumber(t.Font.LineHeight)) +
					fmt.Sprintf("static let %sLetterSpacing: CGFloat = %s", n, token.FormatNumber(t.Font.LetterSpacing))
			},
		},
	}
}
