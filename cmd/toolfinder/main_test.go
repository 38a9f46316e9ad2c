package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/config"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestOpenRepositories_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}

	repos, closeRepos, err := openRepositories(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeRepos()
	assert.Nil(t, repos.DB)
	assert.NotNil(t, repos.Catalog)
	assert.NotNil(t, repos.Preference)
}
