package template

import (
	"fmt"
	"strings"

	"github.com/kataras/figma-tokens/pkg/token"
)

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func row(t token.Token, value string) string {
	return fmt.Sprintf("| %s | %s | %s |", cell(t.Name), t.Kind, value)
}

// markdown renders a table of every token, one row per token.
func markdown() Definition {
	return Definition{
		Description: "Markdown token reference",
		Wrap: func(body string) string {
			var sb strings.Builder
			sb.WriteString("# Design Tokens\n\n")
			sb.WriteString("This document lists the design tokens extracted from the Figma file.\n\n")
			sb.WriteString("| Name | Kind | Value |\n")
			sb.WriteString("| --- | --- | --- |\n")
			if body != "" {
				sb.WriteString(body)
				sb.WriteString("\n")
			}
			return sb.String()
		},
		Tokens: map[token.Kind]RenderFunc{
			token.Colors: func(t token.Token) string {
				return row(t, fmt.Sprintf("`%s`", t.Color.CSS()))
			},
			token.Spacings: func(t token.Token) string {
				return row(t, fmt.Sprintf("`%s`", px(t.Spacing)))
			},
			token.Typography: func(t token.Token) string {
				f := t.Font
				return row(t, fmt.Sprintf("%s %d, `%s` / `%s`, letter-spacing `%s`",
					cell(f.Family), f.Weight, px(f.Size), px(f.LineHeight), px(f.LetterSpacing)))
			},
			token.Shadows: func(t token.Token) string {
				return row(t, fmt.Sprintf("`%s`", boxShadow(t.Shadows)))
			},
		},
	}
}
