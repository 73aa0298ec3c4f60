package template

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/kataras/figma-tokens/pkg/token"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

func resources(body string) string {
	if body == "" {
		return xmlHeader + "\n<resources/>\n"
	}
	return xmlHeader + "\n<resources>\n" + body + "\n</resources>\n"
}

// xmlString serializes el on its own, nested children indented by four spaces.
func xmlString(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(el)
	doc.Indent(4)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func resource(tag, name, value string) string {
	el := etree.NewElement(tag)
	el.CreateAttr("name", name)
	el.SetText(value)
	return xmlString(el)
}

// Dimension resource names shared by styles.xml and fonts.xml.
func fontSizeDimen(t token.Token) string   { return snake(t.Name) + "_font_size" }
func lineHeightDimen(t token.Token) string { return snake(t.Name) + "_line_height" }

func androidStyles() Definition {
	return Definition{
		Description: "Android color and dimension resources",
		Indent:      "    ",
		Wrap:        resources,
		Tokens: map[token.Kind]RenderFunc{
			token.Colors: func(t token.Token) string {
				return resource("color", lowerCamel(t.Name), t.Color.ARGBHex())
			},
			token.Spacings: func(t token.Token) string {
				return resource("dimen", snake(t.Name), token.FormatNumber(t.Spacing)+"dp")
			},
			token.Typography: func(t token.Token) string {
				return resource("dimen", fontSizeDimen(t), token.FormatNumber(t.Font.Size)+"sp") + "\n" +
					resource("dimen", lineHeightDimen(t), token.FormatNumber(t.Font.LineHeight)+"sp")
			},
		},
	}
}

func androidFonts() Definition {
	return Definition{
		Description: "Android text appearance styles referencing styles.xml dimensions",
		Indent:      "    ",
		Wrap:        resources,
		Tokens: map[token.Kind]RenderFunc{
			token.Typography: func(t token.Token) string {
				style := etree.NewElement("style")
				style.CreateAttr("name", camel(t.Name))

				item := func(name, value string) {
					el := style.CreateElement("item")
					el.CreateAttr("name", name)
					el.SetText(value)
				}
				item("android:fontFamily", "@font/"+snake(t.Font.Family))
				item("android:textFontWeight", strconv.Itoa(t.Font.Weight))
				item("android:textSize", "@dimen/"+fontSizeDimen(t))
				item("android:lineHeight", "@dimen/"+lineHeightDimen(t))
				item("android:letterSpacing", token.FormatNumber(letterSpacingEm(t.Font)))

				return xmlString(style)
			},
		},
	}
}

// letterSpacingEm converts px letter spacing to the em units Android expects.
func letterSpacingEm(f token.Font) float64 {
	if f.Size == 0 || f.LetterSpacing == 0 {
		return 0
	}
	return round(f.LetterSpacing/f.Size, 3)
}
