package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/dockenv/internal/domain"
)

// normalizeRef returns ref in its familiar form with :latest added when it
// carries neither tag nor digest.
func normalizeRef(ref string) (string, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w: %w", ref, domain.ErrInvalidArgument, err)
	}
	return reference.FamiliarString(reference.TagNameOnly(named)), nil
}

// ImageExists looks ref up among the local images.
func (r *Runtime) ImageExists(ctx context.Context, ref string) (bool, error) {
	normalized, err := normalizeRef(ref)
	if err != nil {
		return false, err
	}

	images, err := r.client.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", normalized)),
	})
	if err != nil {
		return false, wrapErr(err, "failed to list images")
	}

	return len(images) > 0, nil
}

// PullImage pulls ref. The progress stream is read to the end because the
// pull only completes once it is drained, and errors reported inside the
// stream fail the pull.
func (r *Runtime) PullImage(ctx context.Context, ref string) error {
	log := r.log.With("action", "PullImage", "image", ref)

	normalized, err := normalizeRef(ref)
	if err != nil {
		return err
	}

	log.Info("pulling image")
	reader, err := r.client.ImagePull(ctx, normalized, image.PullOptions{})
	if err != nil {
		return wrapErr(err, "failed to pull image")
	}
	defer reader.Close()

	dec := json.NewDecoder(reader)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read pull response: %w: %w", domain.ErrEngine, err)
		}
		if msg.Error != nil {
			return fmt.Errorf("failed to pull image %s: %w: %w", normalized, domain.ErrEngine, msg.Error)
		}
		if msg.Status != "" {
			log.Debug(msg.Status, "layer", msg.ID)
		}
	}

	log.Info("image pulled")
	return nil
}
