//go:build integration
// +build integration

package livestats

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

var rdb *redis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}
	port, err := c.MappedPort(ctx, "6379")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	rdb = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})

	code := m.Run()

	rdb.Close()
	c.Terminate(ctx)
	os.Exit(code)
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	s := NewRedisStore(rdb, "test")

	_, err := s.Ping(ctx)
	require.NoError(t, err)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Chat: []ChatMessage{}}, got)

	_, err = s.Apply(ctx, Action{Action: StartStream, Streamer: "alice", Title: "gm"})
	require.NoError(t, err)
	_, err = s.Apply(ctx, Action{Action: View})
	require.NoError(t, err)
	_, err = s.Apply(ctx, Action{Action: Like})
	require.NoError(t, err)

	for i := 0; i < entities.DefaultLiveChatCapacity+1; i++ {
		_, err = s.Apply(ctx, Action{Action: Chat, Sender: "bob", Content: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	got, err = s.Apply(ctx, Action{Action: EndStream})
	require.NoError(t, err)
	assert.False(t, got.IsLive)
	assert.Equal(t, "alice", got.Streamer)
	assert.Equal(t, "gm", got.Title)
	assert.NotNil(t, got.StartedAt)
	assert.EqualValues(t, 1, got.Viewers)
	assert.EqualValues(t, 1, got.Likes)
	require.Len(t, got.Chat, entities.DefaultLiveChatCapacity)
	assert.Equal(t, "1", got.Chat[0].Content)

	got, err = s.Apply(ctx, Action{Action: StartStream, Streamer: "carol"})
	require.NoError(t, err)
	assert.Zero(t, got.Viewers)
	assert.Empty(t, got.Chat)

	_, err = s.Apply(ctx, Action{Action: "dance"})
	require.ErrorIs(t, err, ErrUnknownAction)
}
