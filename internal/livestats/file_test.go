package livestats

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "live", "stats.json")
	s := NewFileStore(path)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Chat: []ChatMessage{}}, got)

	_, err = s.Apply(ctx, Action{Action: StartStream, Streamer: "alice", Title: "gm"})
	require.NoError(t, err)
	_, err = s.Apply(ctx, Action{Action: Chat, Sender: "bob", Content: "hello"})
	require.NoError(t, err)

	// state survives new instance
	got, err = NewFileStore(path).Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsLive)
	assert.Equal(t, "alice", got.Streamer)
	require.NotNil(t, got.StartedAt)
	require.Len(t, got.Chat, 1)
	assert.Equal(t, "hello", got.Chat[0].Content)

	_, err = s.Apply(ctx, Action{Action: "dance"})
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestFile_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "stats.json"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Apply(ctx, Action{Action: View})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 50, got.Viewers)
}

func TestFile_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	got, err := NewFileStore(path).Apply(context.Background(), Action{Action: Like})
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)
}
