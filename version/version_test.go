package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_UsesLinkerValues(t *testing.T) {
	defer func(v, c string) { Version, CommitHash = v, c }(Version, CommitHash)
	Version = "v1.2.3"
	CommitHash = "0123456789abcdef"

	info := Get()
	assert.Equal(t, "v1.2.3", info.GitVersion)
	assert.Equal(t, "0123456789abcdef", info.GitCommit)
	assert.Equal(t, "javagen", info.Name)
	assert.NotEmpty(t, info.GoVersion)
	assert.Equal(t, "0123456", Short())
}
