package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLookupReadsFileBelowRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "network"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "network", "switch1"), []byte("lab-password\n"), 0o600))

	value, err := NewSource(root).Lookup(context.Background(), "network/switch1")
	require.NoError(t, err)
	assert.Equal(t, "lab-password", value)
}

func TestSourceLookupMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewSource(t.TempDir()).Lookup(context.Background(), "network/switch9")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "not found")
}

func TestSourceLookupRejectsEscapingReferences(t *testing.T) {
	t.Parallel()

	source := NewSource(t.TempDir())
	for _, ref := range []string{"", " ", ".", "../secret", "/etc/shadow"} {
		_, err := source.Lookup(context.Background(), ref)
		assert.Error(t, err, ref)
	}
}
