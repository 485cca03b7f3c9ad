package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	isolate(t)

	r := execute(t, "version")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "express-mod-cli version")
	assert.Contains(t, r.stdout, "Go:")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	isolate(t)

	r := execute(t, "version", "extra")

	assert.Error(t, r.err)
}
