package docker

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"

	"github.com/bnema/dockenv/internal/domain"
)

// wrapErr tags an engine error with its domain kind, keeping the cause.
func wrapErr(err error, msg string) error {
	return wrapErrKind(err, msg, domain.ErrEngine)
}

// wrapErrKind is wrapErr with a caller-chosen kind for unclassified errors.
func wrapErrKind(err error, msg string, fallback error) error {
	kind := fallback
	switch {
	case cerrdefs.IsNotFound(err):
		kind = domain.ErrNotFound
	case cerrdefs.IsConflict(err):
		kind = domain.ErrConflict
	case cerrdefs.IsInvalidArgument(err):
		kind = domain.ErrInvalidArgument
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, err)
}
