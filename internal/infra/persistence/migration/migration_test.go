package migration

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_ListsEmbeddedMigrations(t *testing.T) {
	src, err := NewSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	r, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "init", identifier)

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	for _, table := range []string{"users", "providers", "categories", "services"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, string(body), "ON DELETE CASCADE")
}

func TestNewSource_EveryUpHasDown(t *testing.T) {
	src, err := NewSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)

	for {
		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "version %d has no down migration", version)
		_ = down.Close()

		version, err = src.Next(version)
		if err != nil {
			break
		}
	}
}

func TestMigrateLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &migrateLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Printf("Start buffering %d/u %s\n", 1, "init")

	assert.False(t, l.Verbose())
	assert.Contains(t, buf.String(), "Start buffering 1/u init")
	assert.Contains(t, buf.String(), "component=migrate")
}
