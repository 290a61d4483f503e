package docker

import (
	"context"

	"github.com/docker/docker/api/types/network"

	"github.com/bnema/dockenv/internal/domain"
)

// ListNetworks lists all Docker networks.
func (r *Runtime) ListNetworks(ctx context.Context) ([]*domain.NetworkInfo, error) {
	networks, err := r.client.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, wrapErr(err, "failed to list networks")
	}

	result := make([]*domain.NetworkInfo, 0, len(networks))
	for _, net := range networks {
		result = append(result, &domain.NetworkInfo{
			ID:     net.ID,
			Name:   net.Name,
			Driver: net.Driver,
			Labels: net.Labels,
		})
	}

	return result, nil
}

// CreateNetwork creates a bridge network and returns its id.
func (r *Runtime) CreateNetwork(ctx context.Context, name string, labels map[string]string) (string, error) {
	resp, err := r.client.NetworkCreate(ctx, name, network.CreateOptions{
		Driver: "bridge",
		Labels: labels,
	})
	if err != nil {
		return "", wrapErr(err, "failed to create network")
	}

	if resp.Warning != "" {
		r.log.Warn("engine warning", "network", name, "warning", resp.Warning)
	}
	r.log.Debug("network created", "network", name, "id", resp.ID)
	return resp.ID, nil
}
