package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/logging"
	"github.com/kataras/figma-tokens/pkg/render"
	"github.com/kataras/figma-tokens/pkg/template"
	"github.com/kataras/figma-tokens/pkg/token"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

type buildFlags struct {
	configFile  string
	accessToken string
	figmaURL    string
	input       string
	outputs     []string
	kinds       string
	parallelism int
	timeout     time.Duration
	verbosity   int
	logFormat   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags buildFlags

	rootCmd := &cobra.Command{
		Use:   "figma-tokens",
		Short: "Extract design tokens from Figma files",
		Long: "Extracts colors, typography, spacings and shadows from a Figma file via the Figma API " +
			"and renders them as SCSS, CSS, Android XML, Swift, JSON or Markdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, &flags)
		},
	}

	buildCmd := &cobra.Command{
		Use:           "build",
		Short:         "Fetch the file and write every configured output",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, &flags)
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, buildCmd} {
		f := cmd.Flags()
		f.StringVarP(&flags.configFile, "config", "c", "", "Config file (.yaml, .yml or .toml), default: ./figma-tokens.yaml when present")
		f.StringVarP(&flags.accessToken, "token", "t", "", "Figma Personal Access Token (or FIGMA_TOKEN)")
		f.StringVarP(&flags.figmaURL, "url", "u", "", "Figma file URL or file key")
		f.StringVarP(&flags.input, "input", "i", "", "Saved file API response to read instead of fetching")
		f.StringArrayVarP(&flags.outputs, "output", "o", nil, "Output as template[=path], repeatable (e.g. styles.xml=res/values/tokens.xml)")
		f.StringVarP(&flags.kinds, "kinds", "k", "", "Comma-separated token kinds for outputs without their own kinds (default: all)")
		f.IntVarP(&flags.parallelism, "parallelism", "p", 0, "Maximum concurrent renders")
		f.DurationVar(&flags.timeout, "timeout", 0, "Fetch timeout (e.g. 2m)")
		f.CountVarP(&flags.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
		f.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json (default: colored output)")
	}

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in output templates",
		Run: func(cmd *cobra.Command, args []string) {
			printTemplates(cmd.OutOrStdout(), template.Builtin())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(buildCmd, templatesCmd, versionCmd)
	return rootCmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := newLogger(out, cmd.ErrOrStderr(), flags)
	if err != nil {
		return err
	}

	cyan.Fprintln(out, "\n🎨 Figma Design Tokens")
	cyan.Fprintln(out, "======================")
	cyan.Fprintln(out)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := figmatokens.OptionsFromConfig(cfg)
	opts.Logger = logger

	result, err := figmatokens.Run(ctx, opts)
	if result != nil {
		printSummary(out, result)
	}
	if err != nil {
		return err
	}

	green.Fprintf(out, "\n✨ Successfully wrote %d file(s)\n\n", len(result.Artifacts))
	return nil
}

// loadConfig reads the config file and environment, then applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, flags *buildFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("token") {
		cfg.Token = flags.accessToken
	}
	if changed("url") {
		cfg.File = flags.figmaURL
	}
	if changed("input") {
		cfg.Input = flags.input
	}
	if changed("parallelism") {
		cfg.Parallelism = flags.parallelism
	}
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}

	kinds := figmatokens.ParseKinds(flags.kinds)
	if len(flags.outputs) > 0 {
		outputs := make([]render.Request, 0, len(flags.outputs))
		for _, s := range flags.outputs {
			req, err := figmatokens.ParseOutput(s)
			if err != nil {
				return nil, err
			}
			req.Kinds = kinds
			outputs = append(outputs, req)
		}
		cfg.Outputs = outputs
	} else if len(kinds) > 0 {
		// --kinds narrows config file outputs that do not list their own kinds.
		for i := range cfg.Outputs {
			if len(cfg.Outputs[i].Kinds) == 0 {
				cfg.Outputs[i].Kinds = kinds
			}
		}
	}

	if len(cfg.Outputs) == 0 {
		return nil, errdefs.Configf("no outputs configured, pass --output or list outputs in the config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger selected by --log-format. The colored default
// writes to out, structured formats to w.
func newLogger(out, w io.Writer, flags *buildFlags) (logging.Logger, error) {
	switch strings.ToLower(flags.logFormat) {
	case "":
		return &cliLogger{out: out, verbosity: flags.verbosity}, nil
	case "text":
		return logging.NewConsole(w, flags.verbosity, color.NoColor), nil
	case "json":
		return logging.NewJSON(w, flags.verbosity), nil
	default:
		return nil, errdefs.Configf("unknown log format %q", flags.logFormat)
	}
}

func printSummary(w io.Writer, result *figmatokens.Result) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cyan.Fprintln(w, "\n📊 Extraction Summary:")
	counts := token.CountByKind(result.Tokens)
	for _, kind := range token.Kinds {
		fmt.Fprintf(w, "  • %s: %d\n", kind, counts[kind])
	}

	if len(result.Artifacts) == 0 {
		return
	}

	cyan.Fprintln(w, "\n💾 Outputs:")
	for _, art := range result.Artifacts {
		if art.Err != nil {
			red.Fprintf(w, "  ✗ %s (%s): %v\n", art.Target, art.Request.Template, art.Err)
			continue
		}
		green.Fprintf(w, "  ✓ %s (%s)\n", art.Target, art.Request.Template)
	}
}

func printTemplates(w io.Writer, reg *template.Registry) {
	for _, id := range reg.IDs() {
		def, err := reg.Lookup(id)
		if err != nil {
			continue
		}

		kinds := make([]string, 0, len(def.Kinds()))
		for _, k := range def.Kinds() {
			kinds = append(kinds, string(k))
		}

		fmt.Fprintf(w, "%-14s %-60s [%s]\n", id, def.Description, strings.Join(kinds, ", "))
	}
}

// cliLogger implements figmatokens.Logger with colored terminal output.
// Info messages need at least one -v.
type cliLogger struct {
	out       io.Writer
	verbosity int
}

func (l *cliLogger) Infof(format string, args ...any) {
	if l.verbosity < 1 {
		return
	}
	color.New(color.FgYellow).Fprintf(l.out, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
}
