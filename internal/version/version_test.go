package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.CUESDKVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:       "v1.2.3",
		GitCommit:     "abc1234",
		BuildDate:     "2026-01-01T00:00:00Z",
		GoVersion:     "go1.25.0",
		CUESDKVersion: "v0.15.4",
	}

	s := info.String()
	assert.Contains(t, s, "express-mod-cli version v1.2.3")
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "2026-01-01T00:00:00Z")
	assert.Contains(t, s, "go1.25.0")
	assert.Contains(t, s, "v0.15.4")
}

func TestDepVersion_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", depVersion("example.com/not/a/dependency"))
}
