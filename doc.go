// Package figmatokens extracts design tokens (colors, typography, spacings
// and shadows) from a Figma file and renders them into stylesheets, Android
// resources, Swift constants and JSON via pluggable templates.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed token builds in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/kataras/figma-tokens" // package figmatokens
//
// # Document conventions
//
// Tokens are found by convention. Every page's direct children are artboards;
// artboards whose name starts with "_" are skipped. An artboard's GROUP
// children name the token kind ("Colors", "Typography", "Spacings",
// "Shadows") and every layer below a group whose name starts with "$" is a
// token:
//
//	Page 1
//	└── Base               (artboard)
//	    └── Colors         (GROUP, selects the kind)
//	        ├── $primary   (token "primary")
//	        └── Brand
//	            └── $accent
//
// # Quick start
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/Tokens",
//	    Outputs: []render.Request{
//	        {Path: "build/", Name: "_tokens.scss", Template: "styles.scss"},
//	        {Path: "build/android/", Name: "colors.xml", Template: "styles.xml", Kinds: []token.Kind{token.Colors}},
//	    },
//	})
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and diagnostics about dropped layers. A nil Logger silences all
// output. [logging.NewZerolog] adapts a zerolog logger.
//
// # Errors
//
// Missing credentials, unknown template ids and a document without pages are
// configuration errors ([errdefs.IsConfig]) and abort the run before anything
// is written. Layers that cannot be turned into tokens are logged and
// skipped. A failed write of one artifact does not stop the others; the
// failures are returned together once every artifact was attempted.
package figmatokens
