package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FIGMA_TOKEN", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "figma-tokens version "+version+"\n", out)
}

func TestTemplates(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(template.Builtin().IDs()))
	assert.True(t, strings.HasPrefix(lines[0], template.ColorsJSON))
	assert.Contains(t, out, "[Colors, Typography, Spacings, Shadows]")
}

func TestBuildFromInput(t *testing.T) {
	input := fixture(t)
	t.Chdir(t.TempDir())

	out, err := execute(t, "build",
		"--input", input,
		"--output", "styles.scss=web/_tokens.scss",
		"--output", "colors.json",
		"--kinds", "Colors",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Colors: 3")
	assert.Contains(t, out, "⚠ Radii type is not supported\n")
	assert.NotContains(t, out, "Extracted 6 token(s)")
	assert.Contains(t, out, "✓ web/_tokens.scss (styles.scss)")

	scss, err := os.ReadFile(filepath.Join("web", "_tokens.scss"))
	require.NoError(t, err)
	assert.Equal(t, "$primary: #ff0000;\n$overlay: rgba(0, 0, 0, 0.5);\n$ghost: rgba(255, 255, 255, 0);\n", string(scss))

	colors, err := os.ReadFile("colors.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"primary": "#ff0000ff", "overlay": "#00000080", "ghost": "#ffffff00"}`, string(colors))
}

func TestBuildFromConfigFile(t *testing.T) {
	input := fixture(t)
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := "input: " + input + "\n" +
		"outputs:\n" +
		"  - template: styles.xml\n" +
		"    path: android/values\n" +
		"    name: tokens.xml\n"
	require.NoError(t, os.WriteFile("figma-tokens.yaml", []byte(cfg), 0o644))

	_, err := execute(t, "build")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join("android", "values", "tokens.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `<dimen name="small">8dp</dimen>`)
}

func TestBuildVerboseLogsToCommandOutput(t *testing.T) {
	input := fixture(t)
	t.Chdir(t.TempDir())

	out, err := execute(t, "build", "-v", "--input", input, "--output", "tokens.md")
	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 6 token(s)\n")
	assert.Contains(t, out, "⚠ skipping $broken: ")
}

func TestBuildKindsAppliesToConfigOutputs(t *testing.T) {
	input := fixture(t)
	t.Chdir(t.TempDir())

	cfg := "input: " + input + "\n" +
		"outputs:\n" +
		"  - template: styles.xml\n" +
		"    name: narrowed.xml\n" +
		"  - template: styles.xml\n" +
		"    name: spacings.xml\n" +
		"    kinds: [Spacings]\n"
	require.NoError(t, os.WriteFile("figma-tokens.yaml", []byte(cfg), 0o644))

	_, err := execute(t, "build", "--kinds", "Colors")
	require.NoError(t, err)

	narrowed, err := os.ReadFile("narrowed.xml")
	require.NoError(t, err)
	assert.Contains(t, string(narrowed), `<color name="primary">#ffff0000</color>`)
	assert.NotContains(t, string(narrowed), "<dimen")

	spacings, err := os.ReadFile("spacings.xml")
	require.NoError(t, err)
	assert.Contains(t, string(spacings), `<dimen name="small">8dp</dimen>`)
	assert.NotContains(t, string(spacings), "<color")
}

func TestBuildConfigErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{name: "no outputs", args: []string{"build", "--input", "file.json"}},
		{name: "missing credentials", args: []string{"build", "--output", "styles.scss"}},
		{name: "unknown template", args: []string{"build", "--token", "t", "--url", "AbC123", "--output", "styles.less"}},
		{name: "bad log format", args: []string{"build", "--input", "file.json", "--output", "styles.scss", "--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errdefs.IsConfig(err), err.Error())
		})
	}
}

// fixture returns the absolute path of the shared document fixture. It must
// run before the test changes directory.
func fixture(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "testdata", "file.json"))
	require.NoError(t, err)
	return p
}
