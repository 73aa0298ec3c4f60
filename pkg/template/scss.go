package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kataras/figma-tokens/pkg/token"
)

// cssVars renders declarations shared by the SCSS and CSS custom property
// templates; decl formats one "name: value" pair.
func cssVars(decl func(name, value string) string) map[token.Kind]RenderFunc {
	return map[token.Kind]RenderFunc{
		token.Colors: func(t token.Token) string {
			return decl(kebab(t.Name), t.Color.CSS())
		},
		token.Spacings: func(t token.Token) string {
			return decl(kebab(t.Name), px(t.Spacing))
		},
		token.Typography: func(t token.Token) string {
			n := kebab(t.Name)
			return strings.Join([]string{
				decl(n+"-font-family", strconv.Quote(t.Font.Family)),
				decl(n+"-font-size", px(t.Font.Size)),
				decl(n+"-font-weight", strconv.Itoa(t.Font.Weight)),
				decl(n+"-line-height", px(t.Font.LineHeight)),
				decl(n+"-letter-spacing", px(t.Font.LetterSpacing)),
			}, "\n")
		},
		token.Shadows: func(t token.Token) string {
			return decl(kebab(t.Name), boxShadow(t.Shadows))
		},
	}
}

// boxShadow renders a CSS box-shadow value list.
func boxShadow(shadows []token.Shadow) string {
	parts := make([]string, 0, len(shadows))
	for _, s := range shadows {
		v := fmt.Sprintf("%s %s %s %s", px(s.Offset.X), px(s.Offset.Y), px(s.Blur), s.Color.RGBString())
		if s.Inner {
			v = "inset " + v
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ", ")
}

func scss() Definition {
	return Definition{
		Description: "SCSS variables",
		Wrap:        func(body string) string { return body + "\n" },
		Tokens: cssVars(func(name, value string) string {
			return "$" + name + ": " + value + ";"
		}),
	}
}

func css() Definition {
	return Definition{
		Description: "CSS custom properties on :root",
		Indent:      "  ",
		Wrap:        func(body string) string { return ":root {\n" + body + "\n}\n" },
		Tokens: cssVars(func(name, value string) string {
			return "--" + name + ": " + value + ";"
		}),
	}
}
