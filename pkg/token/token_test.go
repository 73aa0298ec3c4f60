package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFormats(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		hex   string
		hex8  string
		argb  string
		rgb   string
		css   string
	}{
		{
			name:  "solid red",
			color: Color{R: 1, A: 1},
			hex:   "#ff0000",
			hex8:  "#ff0000ff",
			argb:  "#ffff0000",
			rgb:   "rgb(255, 0, 0)",
			css:   "#ff0000",
		},
		{
			name:  "half transparent blue",
			color: Color{B: 1, A: 0.5},
			hex:   "#0000ff",
			hex8:  "#0000ff80",
			argb:  "#800000ff",
			rgb:   "rgba(0, 0, 255, 0.5)",
			css:   "rgba(0, 0, 255, 0.5)",
		},
		{
			name:  "transparent white",
			color: Transparent,
			hex:   "#ffffff",
			hex8:  "#ffffff00",
			argb:  "#00ffffff",
			rgb:   "rgba(255, 255, 255, 0)",
			css:   "rgba(255, 255, 255, 0)",
		},
		{
			name:  "out of range channels are clamped",
			color: Color{R: 1.4, G: -0.2, B: 0.2, A: 2},
			hex:   "#ff0033",
			hex8:  "#ff0033ff",
			argb:  "#ffff0033",
			rgb:   "rgb(255, 0, 51)",
			css:   "#ff0033",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hex, tt.color.Hex())
			assert.Equal(t, tt.hex8, tt.color.Hex8())
			assert.Equal(t, tt.argb, tt.color.ARGBHex())
			assert.Equal(t, tt.rgb, tt.color.RGBString())
			assert.Equal(t, tt.css, tt.color.CSS())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "1.2", FormatNumber(1.2))
	assert.Equal(t, "16", FormatNumber(16))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
}

func TestFilter(t *testing.T) {
	tokens := []Token{
		{Name: "primary", Kind: Colors},
		{Name: "small", Kind: Spacings},
		{Name: "secondary", Kind: Colors},
		{Name: "card", Kind: Shadows},
	}

	assert.Equal(t, tokens, Filter(tokens, nil))

	got := Filter(tokens, []Kind{Colors, Shadows})
	names := make([]string, 0, len(got))
	for _, tok := range got {
		names = append(names, tok.Name)
	}
	assert.Equal(t, []string{"primary", "secondary", "card"}, names)

	assert.Empty(t, Filter(tokens, []Kind{Typography}))
}

func TestCountByKind(t *testing.T) {
	counts := CountByKind([]Token{
		{Kind: Colors}, {Kind: Colors}, {Kind: Spacings},
	})
	assert.Equal(t, 2, counts[Colors])
	assert.Equal(t, 1, counts[Spacings])
	assert.Zero(t, counts[Shadows])
}

func TestValue(t *testing.T) {
	assert.Equal(t, Color{R: 1, A: 1}, Token{Kind: Colors, Color: Color{R: 1, A: 1}}.Value())
	assert.Equal(t, 8.0, Token{Kind: Spacings, Spacing: 8}.Value())
	assert.Nil(t, Token{Kind: "Radii"}.Value())
}

func TestKnown(t *testing.T) {
	assert.True(t, Colors.Known())
	assert.False(t, Kind("colors").Known())
	assert.False(t, Kind("Radii").Known())
}
