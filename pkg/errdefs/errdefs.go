// Package errdefs defines the error classes of the token pipeline.
//
// Configuration errors are fatal and surface to the caller. Unsupported kinds
// and malformed nodes are recovered by the extractor: the node is dropped and
// a diagnostic is logged.
package errdefs

import (
	"errors"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
)

var (
	// ErrConfig reports missing credentials, an unknown template or a
	// malformed top-level document.
	ErrConfig = fmt.Errorf("configuration error: %w", cerrdefs.ErrInvalidArgument)
	// ErrUnsupportedKind reports a group name the normalizer does not know.
	ErrUnsupportedKind = fmt.Errorf("unsupported token kind: %w", cerrdefs.ErrNotImplemented)
	// ErrMalformedNode reports a token node missing the fields its kind needs.
	ErrMalformedNode = fmt.Errorf("malformed token node: %w", cerrdefs.ErrInvalidArgument)
)

// Configf returns an ErrConfig carrying a formatted message.
func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// TemplateNotFound returns an ErrConfig for an unregistered template id.
// The result also matches errdefs.ErrNotFound.
func TemplateNotFound(id string) error {
	return fmt.Errorf("%w: template %q: %w", ErrConfig, id, cerrdefs.ErrNotFound)
}

// Unsupported returns an ErrUnsupportedKind for kind.
func Unsupported(kind string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
}

// Malformed returns an ErrMalformedNode for the named node.
func Malformed(node, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrMalformedNode, node, reason)
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool { return errors.Is(err, ErrConfig) }

// IsUnsupportedKind reports whether err is an unsupported kind error.
func IsUnsupportedKind(err error) bool { return errors.Is(err, ErrUnsupportedKind) }

// IsMalformedNode reports whether err is a malformed node error.
func IsMalformedNode(err error) bool { return errors.Is(err, ErrMalformedNode) }
