// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "modelgen version "+Version)
	assert.Contains(t, info, "commit: "+Commit)
	assert.Contains(t, info, "go: "+runtime.Version())
	assert.Equal(t, Version, Short())
}

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name                string
		version, commit, dt string
		want                [3]string
	}{
		{
			name:    "defaults are filled",
			version: "dev", commit: "none", dt: "unknown",
			want: [3]string{"v1.2.3", "0123456", "2026-01-02T03:04:05Z"},
		},
		{
			name:    "ldflags values win",
			version: "v9.0.0", commit: "abcdef0", dt: "2025-12-31",
			want: [3]string{"v9.0.0", "abcdef0", "2025-12-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, d := fromBuildInfo(info, tt.version, tt.commit, tt.dt)
			assert.Equal(t, tt.want, [3]string{v, c, d})
		})
	}
}

func TestFromBuildInfo_DevelBuild(t *testing.T) {
	info := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}

	v, c, d := fromBuildInfo(info, "dev", "none", "unknown")
	assert.Equal(t, "dev", v)
	assert.Equal(t, "none", c)
	assert.Equal(t, "unknown", d)
}
