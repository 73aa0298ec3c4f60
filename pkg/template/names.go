package template

import (
	"math"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/kataras/figma-tokens/pkg/token"
)

func kebab(name string) string      { return strcase.ToKebab(name) }
func snake(name string) string      { return strcase.ToSnake(name) }
func lowerCamel(name string) string { return strcase.ToLowerCamel(name) }
func camel(name string) string      { return strcase.ToCamel(name) }

// px prints a pixel length; zero stays unitless.
func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return token.FormatNumber(v) + "px"
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// commaLines appends a comma to every line but the last.
func commaLines(body string) string {
	if body == "" {
		return body
	}
	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] += ","
	}
	return strings.Join(lines, "\n")
}
