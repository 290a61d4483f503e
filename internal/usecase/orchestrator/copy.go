package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/bnema/dockenv/internal/domain"
	"github.com/bnema/dockenv/pkg/archive"
)

// CopyToContainer packs sourcePath into a tar stream and extracts it under
// destinationPath in the container. Directories land in
// destinationPath/<base>, so the returned path is valid for both files and
// directories.
func (s *Service) CopyToContainer(ctx context.Context, handle domain.ContainerHandle, sourcePath, destinationPath string, overwrite bool) (string, error) {
	if sourcePath == "" || destinationPath == "" {
		return "", fmt.Errorf("copy source and destination are required: %w", domain.ErrInvalidArgument)
	}
	if handle.ID == "" {
		return "", fmt.Errorf("copy target container is required: %w", domain.ErrInvalidArgument)
	}

	log := s.log.With("action", "CopyToContainer", "container_name", handle.Name, "source", sourcePath, "dest", destinationPath)

	info, err := os.Stat(sourcePath)
	if err != nil {
		log.Error("copy source unavailable", "err", err)
		return "", fmt.Errorf("copy source %q: %w: %w", sourcePath, domain.ErrIO, err)
	}

	base := filepath.Base(filepath.Clean(sourcePath))
	var opts []archive.Option
	if info.IsDir() {
		opts = append(opts, archive.WithRoot(base))
	}

	arc, err := archive.Build(sourcePath, opts...)
	if err != nil {
		log.Error("failed to build archive", "err", err)
		return "", fmt.Errorf("build archive of %q: %w: %w", sourcePath, domain.ErrIO, err)
	}
	defer arc.Close()

	var size int64
	entries := arc.Entries()
	for _, e := range entries {
		size += e.Size
	}
	log.Debug("archive built", "entries", len(entries), "bytes", size)

	if err := s.engine.CopyToContainer(ctx, handle.ID, destinationPath, overwrite, arc); err != nil {
		log.Error("failed to copy archive", "err", err)
		return "", fmt.Errorf("copy %q to container %q: %w", sourcePath, handle.Name, err)
	}

	copied := path.Join(destinationPath, base)
	log.Info("copied to container", "path", copied)
	return copied, nil
}
