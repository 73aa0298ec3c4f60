package template

import (
	"encoding/json"

	"github.com/kataras/figma-tokens/pkg/token"
)

func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `""`
	}
	return string(b)
}

// colorsJSON emits a JSON object of snake_case color names to #rrggbbaa.
// Entries are separated by commas with no trailing comma, so the output is
// always valid JSON.
func colorsJSON() Definition {
	return Definition{
		Description: "JSON object of hex8 colors",
		Indent:      "  ",
		PostProcess: commaLines,
		Wrap: func(body string) string {
			if body == "" {
				return "{}\n"
			}
			return "{\n" + body + "\n}\n"
		},
		Tokens: map[token.Kind]RenderFunc{
			token.Colors: func(t token.Token) string {
				return jsonString(snake(t.Name)) + ": " + jsonString(t.Color.Hex8())
			},
		},
	}
}

type jsonToken struct {
	Name  string     `json:"name"`
	Kind  token.Kind `json:"kind"`
	Value any        `json:"value"`
}

func dumpToken(t token.Token) string {
	return jsonString(jsonToken{Name: t.Name, Kind: t.Kind, Value: t.Value()})
}

// tokensJSON emits every token as one JSON object per line inside an array.
func tokensJSON() Definition {
	renderers := make(map[token.Kind]RenderFunc, len(token.Kinds))
	for _, k := range token.Kinds {
		renderers[k] = dumpToken
	}
	return Definition{
		Description: "JSON array of all tokens",
		Indent:      "  ",
		PostProcess: commaLines,
		Wrap: func(body string) string {
			if body == "" {
				return "[]\n"
			}
			return "[\n" + body + "\n]\n"
		},
		Tokens: renderers,
	}
}
