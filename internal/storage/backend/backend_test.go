package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/brk3/momentum/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"bolt", "sqlite", "memory"} {
		t.Run(backend, func(t *testing.T) {
			s, err := Open(config.StorageConfig{Backend: backend, Path: filepath.Join(dir, backend+".db")})
			require.NoError(t, err)
			defer s.Close()

			habits, err := s.ListHabits(context.Background())
			require.NoError(t, err)
			assert.Empty(t, habits)
		})
	}

	_, err := Open(config.StorageConfig{Backend: "postgres"})
	assert.Error(t, err)
}
