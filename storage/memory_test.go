package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var missing []string
	found, err := m.Load(ctx, "nothing", &missing)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, m.Save(ctx, "list", []string{"a", "b"}))

	var got []string
	found, err = m.Load(ctx, "list", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"a", "b"}, got)

	// Saves overwrite the whole blob.
	require.NoError(t, m.Save(ctx, "list", []string{"c"}))
	found, err = m.Load(ctx, "list", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"c"}, got)

	require.NoError(t, m.Delete(ctx, "list"))
	found, err = m.Load(ctx, "list", &got)
	require.NoError(t, err)
	require.False(t, found)
}
