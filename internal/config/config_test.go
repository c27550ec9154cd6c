package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccplag/ccsim/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.LibclangPath())
	assert.Equal(t, []string{"--std=c++14"}, cfg.CompileArgs())
	assert.Contains(t, cfg.SourceSuffixes(), ".cpp")
	assert.Equal(t, 1, cfg.Workers())
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("LIBCLANG", "/opt/llvm/lib/libclang.so")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/llvm/lib/libclang.so", cfg.LibclangPath())
}

func TestLoad_MissingConfigFileIsNotAnError(t *testing.T) {
	_, err := config.Load("/nonexistent/.ccsim.yaml")
	assert.NoError(t, err)
}

func TestConfig_Setters(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.SetWorkers(4)
	assert.Equal(t, 4, cfg.Workers())

	cfg.SetCompileArgs([]string{"-std=c++17", "-Wall"})
	assert.Equal(t, []string{"-std=c++17", "-Wall"}, cfg.CompileArgs())

	cfg.SetLibclangPath("/custom/libclang.so")
	assert.Equal(t, "/custom/libclang.so", cfg.LibclangPath())
}
