package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfUpdate_RefusesDevBuilds(t *testing.T) {
	saved := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = saved })

	for _, v := range []string{"dev", ""} {
		rootCmd.Version = v
		err := runSelfUpdate(nil, nil)
		require.Error(t, err, "version %q", v)
		assert.Contains(t, err.Error(), "cannot self-update a development version")
	}
}

func TestIsDevBuild(t *testing.T) {
	assert.True(t, isDevBuild("dev"))
	assert.True(t, isDevBuild(""))
	assert.False(t, isDevBuild("1.4.0"))
}

func TestSelfUpdate_Help(t *testing.T) {
	c := newSelfUpdateCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})

	require.NoError(t, c.Execute())
	assert.Contains(t, buf.String(), "Checks for the latest release")
	assert.Equal(t, "beverage-catalog/bevctl", githubRepoSlug)
}
