package docker

import (
	"context"

	"github.com/docker/docker/api/types/volume"

	"github.com/bnema/dockenv/internal/domain"
)

// ListVolumes lists all Docker volumes.
func (r *Runtime) ListVolumes(ctx context.Context) ([]*domain.VolumeInfo, error) {
	resp, err := r.client.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, wrapErr(err, "failed to list volumes")
	}

	result := make([]*domain.VolumeInfo, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		if v == nil {
			continue
		}
		result = append(result, &domain.VolumeInfo{
			Name:       v.Name,
			Driver:     v.Driver,
			Mountpoint: v.Mountpoint,
			Labels:     v.Labels,
		})
	}

	return result, nil
}

// CreateVolume creates a named volume and returns its name.
func (r *Runtime) CreateVolume(ctx context.Context, name string, labels map[string]string) (string, error) {
	vol, err := r.client.VolumeCreate(ctx, volume.CreateOptions{
		Name:   name,
		Labels: labels,
	})
	if err != nil {
		return "", wrapErr(err, "failed to create volume")
	}

	r.log.Debug("volume created", "volume", vol.Name)
	return vol.Name, nil
}

// RemoveVolume deletes a named volume on the engine.
func (r *Runtime) RemoveVolume(ctx context.Context, name string, force bool) error {
	if err := r.client.VolumeRemove(ctx, name, force); err != nil {
		return wrapErr(err, "failed to remove volume")
	}

	r.log.Debug("volume removed", "volume", name, "force", force)
	return nil
}
