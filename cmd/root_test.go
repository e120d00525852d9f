package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig_Positionals(t *testing.T) {
	cfg, err := buildConfig(RootCmd, []string{"/src/app", "/tmp/out.md"})
	require.NoError(t, err)

	assert.Equal(t, "/src/app", cfg.CodebasePath)
	assert.Equal(t, "/tmp/out.md", cfg.OutputPath)
	assert.True(t, cfg.IncludeTOC)
	assert.True(t, cfg.IncludeFilePaths)
}

func TestBuildConfig_FlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "codedoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("include_toc: true\nignore_dirs: [generated]\n"), 0644))

	flagConfig = cfgPath
	flagIgnoreDirs = []string{"fixtures"}
	require.NoError(t, RootCmd.Flags().Set("toc", "false"))
	t.Cleanup(func() {
		flagConfig = ""
		flagIgnoreDirs = nil
		flagTOC = true
		RootCmd.Flags().Lookup("toc").Changed = false
	})

	cfg, err := buildConfig(RootCmd, []string{"/src/app", "/tmp/out.md"})
	require.NoError(t, err)

	assert.False(t, cfg.IncludeTOC, "explicit flag beats config file")
	assert.Contains(t, cfg.IgnoreDirs, "generated")
	assert.Contains(t, cfg.IgnoreDirs, "fixtures")
}
