package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutput(t *testing.T) {
	restoreVersion := runtimeVersion
	restoreGOOS := runtimeGOOS
	runtimeVersion = func() string { return "go1.22.0" }
	runtimeGOOS = func() string { return "testos" }
	defer func() {
		runtimeVersion = restoreVersion
		runtimeGOOS = restoreGOOS
	}()

	root := NewRootCommand()
	root.SetArgs([]string{"version"})

	var stdout bytes.Buffer
	root.SetOut(&stdout)

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "go1.22.0/testos")
}
