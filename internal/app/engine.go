package app

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// MinEngineVersion is the oldest Docker Engine release dockenv supports.
const MinEngineVersion = "20.10.0"

// EngineInfo describes the engine the kernel talks to.
type EngineInfo struct {
	Version   string
	Supported bool
}

// CheckEngine pings the engine and compares its version against
// MinEngineVersion. An old or unparsable version is logged, not rejected.
func (k *Kernel) CheckEngine(ctx context.Context) (*EngineInfo, error) {
	if err := k.engine.Ping(ctx); err != nil {
		return nil, fmt.Errorf("container engine unreachable: %w", err)
	}

	version, err := k.engine.Version(ctx)
	if err != nil {
		return nil, err
	}

	supported, err := engineSupported(version)
	if err != nil {
		k.log.Warn("unrecognized engine version", "version", version, "err", err)
		return &EngineInfo{Version: version, Supported: true}, nil
	}
	if !supported {
		k.log.Warn("engine is older than the supported minimum", "version", version, "minimum", MinEngineVersion)
	}

	return &EngineInfo{Version: version, Supported: supported}, nil
}

func engineSupported(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}
	return !v.LessThan(semver.MustParse(MinEngineVersion)), nil
}
