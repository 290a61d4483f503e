package docker

import (
	"context"
	"io"

	"github.com/docker/docker/api/types/container"

	"github.com/bnema/dockenv/internal/domain"
)

// CopyToContainer extracts a tar stream into destPath inside the container.
// overwrite allows replacing a directory with a file of the same name.
func (r *Runtime) CopyToContainer(ctx context.Context, containerID, destPath string, overwrite bool, archive io.Reader) error {
	err := r.client.CopyToContainer(ctx, containerID, destPath, archive, container.CopyToContainerOptions{
		AllowOverwriteDirWithFile: overwrite,
	})
	if err != nil {
		return wrapErrKind(err, "failed to copy archive to container", domain.ErrIO)
	}

	r.log.Debug("archive extracted", "container", containerID, "dest", destPath)
	return nil
}
