package dircache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
metricsNamespace: nuxeo
directories:
  - name: users
    cacheTimeout: 300
    cacheMaxSize: 1000
    dedupFetches: true
  - name: groups
    cacheMaxSize: 100
    readOnly: true
  - name: vocabularies
`

func TestConfig(t *testing.T) {
	assert := assert.New(t)

	t.Run("parse", func(t *testing.T) {
		config, err := ParseConfig([]byte(testConfig))
		require.NoError(t, err)
		assert.Equal("nuxeo", config.MetricsNamespace)
		require.Len(t, config.Directories, 3)

		users := config.Directories[0]
		assert.Equal("users", users.Name)
		assert.Equal(5*time.Minute, users.Timeout())
		assert.Equal(1000, users.CacheMaxSize)
		assert.True(users.DedupFetches)
		assert.False(users.ReadOnly)

		groups := config.Directories[1]
		assert.Equal(time.Duration(0), groups.Timeout())
		assert.True(groups.ReadOnly)

		assert.Equal(0, config.Directories[2].CacheMaxSize)
	})

	t.Run("load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dircache.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfig), 0600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Len(config.Directories, 3)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(err, os.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name   string
			config string
			err    error
		}{
			{
				name:   "empty_name",
				config: "directories:\n  - cacheMaxSize: 10\n",
				err:    ErrDirectoryNameRequired,
			},
			{
				name:   "duplicate_name",
				config: "directories:\n  - name: users\n  - name: users\n",
				err:    ErrDuplicateDirectory,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseConfig([]byte(tc.config))
				assert.ErrorIs(err, tc.err)
			})
		}

		_, err := ParseConfig([]byte("directories: ["))
		assert.Error(err)
	})
}
