package figmatokens

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/extractor"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/logging"
	"github.com/kataras/figma-tokens/pkg/render"
	"github.com/kataras/figma-tokens/pkg/sink"
	"github.com/kataras/figma-tokens/pkg/template"
	"github.com/kataras/figma-tokens/pkg/token"
)

// Logger receives progress messages. A nil Logger means silent operation.
type Logger = logging.Logger

// Options configures a token build.
type Options struct {
	AccessToken string
	FileURL     string // Figma file URL or file key
	Input       string // saved file API response; skips the fetch when set
	Outputs     []render.Request
	Registry    *template.Registry // nil = template.Builtin()
	Sink        sink.Sink          // nil = sink.FileSink{}
	Client      *figma.Client      // nil = figma.NewClient(AccessToken)
	Timeout     time.Duration      // fetch timeout, 0 = none
	Parallelism int                // concurrent renders, default 4
	Logger      Logger             // nil = no logging
}

// Artifact is the outcome of one output request.
type Artifact struct {
	Request render.Request
	Target  string
	Body    string
	Err     error // sink failure, nil on success
}

// Result contains the build output.
type Result struct {
	FileName  string // Figma file name
	Tokens    []token.Token
	Artifacts []Artifact
}

// OptionsFromConfig maps a loaded configuration onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		AccessToken: cfg.Token,
		FileURL:     cfg.File,
		Input:       cfg.Input,
		Outputs:     cfg.Outputs,
		Timeout:     cfg.Timeout,
		Parallelism: cfg.Parallelism,
	}
}

func (o *Options) log() Logger {
	return logging.OrNop(o.Logger)
}

func (o *Options) applyDefaults() {
	if o.Registry == nil {
		o.Registry = template.Builtin()
	}
	if o.Sink == nil {
		o.Sink = sink.FileSink{}
	}
	if o.Parallelism <= 0 {
		o.Parallelism = 4
	}
}

// validate fails fast on everything that would make the build pointless.
func (o *Options) validate() error {
	if o.Input == "" {
		if o.AccessToken == "" {
			return errdefs.Configf("access token has not been set")
		}
		if o.FileURL == "" {
			return errdefs.Configf("figma file has not been set")
		}
	}
	return validateOutputs(o.Registry, o.Outputs)
}

func validateOutputs(reg *template.Registry, outputs []render.Request) error {
	for _, out := range outputs {
		if err := out.Validate(); err != nil {
			return err
		}
		if _, err := reg.Lookup(out.Template); err != nil {
			return fmt.Errorf("output %s: %w", out.Target(), err)
		}
	}
	return nil
}

// Run fetches (or loads) the document, extracts its tokens and builds every
// output. Configuration errors are returned before any request is made.
//
// When some artifacts fail to be written the Result is still returned,
// together with an error aggregating the failures.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.log()

	fileResp, err := loadDocument(ctx, &opts)
	if err != nil {
		return nil, err
	}
	log.Infof("File: %s", fileResp.Name)

	log.Infof("Extracting design tokens...")
	tokens, err := extractor.New(log).ExtractFile(fileResp)
	if err != nil {
		return nil, err
	}
	log.Infof("Extracted %d token(s)", len(tokens))

	artifacts, err := Build(ctx, tokens, opts)
	return &Result{
		FileName:  fileResp.Name,
		Tokens:    tokens,
		Artifacts: artifacts,
	}, err
}

func loadDocument(ctx context.Context, opts *Options) (*figma.FileResponse, error) {
	log := opts.log()

	if opts.Input != "" {
		log.Infof("Loading file data from %s...", opts.Input)
		fileResp, err := figma.LoadFile(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("load file: %w", err)
		}
		return fileResp, nil
	}

	log.Infof("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("%w: extract file key: %v", errdefs.ErrConfig, err)
	}
	log.Infof("File key: %s", fileKey)

	client := opts.Client
	if client == nil {
		client = figma.NewClient(opts.AccessToken)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	log.Infof("Fetching file data from Figma...")
	fileResp, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	return fileResp, nil
}

// Build renders every output of opts from tokens and writes it to the sink.
// Renders run concurrently; tokens are only read.
//
// An unknown template aborts the build before anything is written. Sink
// failures are recorded on their Artifact and returned together after every
// artifact was attempted.
func Build(ctx context.Context, tokens []token.Token, opts Options) ([]Artifact, error) {
	opts.applyDefaults()
	if err := validateOutputs(opts.Registry, opts.Outputs); err != nil {
		return nil, err
	}
	log := opts.log()
	renderer := render.New(opts.Registry)

	artifacts := make([]Artifact, len(opts.Outputs))
	var (
		mu     sync.Mutex
		result *multierror.Error
	)

	g := new(errgroup.Group)
	g.SetLimit(opts.Parallelism)

	for i, req := range opts.Outputs {
		g.Go(func() error {
			target := req.Target()
			art := Artifact{Request: req, Target: target}

			body, err := renderer.RenderRequest(tokens, req)
			if err != nil {
				return err
			}
			art.Body = body

			log.Infof("Writing %s (%s)...", target, req.Template)
			if err := opts.Sink.Write(ctx, target, []byte(body)); err != nil {
				art.Err = err
				log.Errorf("Error writing file %s: %v", target, err)

				mu.Lock()
				result = multierror.Append(result, err)
				mu.Unlock()
			}

			artifacts[i] = art
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, result.ErrorOrNil()
}

// ParseKinds parses a comma-separated list of token kinds.
func ParseKinds(s string) []token.Kind {
	parts := strings.Split(s, ",")
	kinds := make([]token.Kind, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			kinds = append(kinds, token.Kind(trimmed))
		}
	}

	return kinds
}

// ParseOutput parses a "template[=path]" output flag. Without a path the
// artifact is named after the template in the working directory.
func ParseOutput(s string) (render.Request, error) {
	id, target, found := strings.Cut(strings.TrimSpace(s), "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return render.Request{}, errdefs.Configf("invalid output %q: missing template", s)
	}

	if !found || strings.TrimSpace(target) == "" {
		return render.Request{Name: id, Template: id}, nil
	}

	target = strings.TrimSpace(target)
	dir, name := splitTarget(target)
	return render.Request{Path: dir, Name: name, Template: id}, nil
}

func splitTarget(target string) (dir, name string) {
	i := strings.LastIndexAny(target, `/\`)
	if i < 0 {
		return "", target
	}
	return target[:i+1], target[i+1:]
}
