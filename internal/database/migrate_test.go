package database

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingVersions(t *testing.T) {
	t.Run("nothing applied returns all in order", func(t *testing.T) {
		pending, err := pendingVersions(map[string]bool{})
		require.NoError(t, err)
		require.NotEmpty(t, pending)
		assert.True(t, sort.StringsAreSorted(pending))
		for _, version := range pending {
			assert.True(t, strings.HasSuffix(version, ".sql"), version)
		}
	})

	t.Run("applied versions are skipped", func(t *testing.T) {
		all, err := pendingVersions(map[string]bool{})
		require.NoError(t, err)

		applied := map[string]bool{all[0]: true}
		pending, err := pendingVersions(applied)
		require.NoError(t, err)
		assert.Len(t, pending, len(all)-1)
		assert.NotContains(t, pending, all[0])
	})
}

func TestEmbeddedMigrationsReadable(t *testing.T) {
	pending, err := pendingVersions(map[string]bool{})
	require.NoError(t, err)

	for _, version := range pending {
		content, err := migrationsFS.ReadFile("migrations/" + version)
		require.NoError(t, err)
		assert.NotEmpty(t, content, version)
	}
}
