package livestats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

func TestAction_Validate(t *testing.T) {
	tt := []struct {
		name string
		a    Action
		err  error
	}{
		{name: "start", a: Action{Action: StartStream, Title: "hello"}},
		{name: "end", a: Action{Action: EndStream}},
		{name: "view", a: Action{Action: " view "}},
		{name: "like", a: Action{Action: Like}},
		{name: "chat", a: Action{Action: Chat, Sender: "bob", Content: "hi"}},
		{name: "empty_chat", a: Action{Action: Chat, Sender: "bob", Content: "  "}, err: ErrInvalidAction},
		{name: "long_chat", a: Action{Action: Chat, Content: strings.Repeat("a", entities.MaxMessageLength+1)}, err: ErrInvalidAction},
		{name: "unknown", a: Action{Action: "dance"}, err: ErrUnknownAction},
		{name: "missing", a: Action{}, err: ErrUnknownAction},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			err := tc.a.Validate()
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAction_Validate_Defaults(t *testing.T) {
	a := Action{Action: StartStream}
	require.NoError(t, a.Validate())
	assert.Equal(t, defaultStreamer, a.Streamer)

	a = Action{Action: Chat, Content: "hi"}
	require.NoError(t, a.Validate())
	assert.Equal(t, defaultStreamer, a.Sender)
}

func TestApply(t *testing.T) {
	now := time.Unix(100, 0).UTC()
	s := Stats{Viewers: 5, Likes: 3, Chat: []ChatMessage{{ID: "old"}}}

	apply(&s, Action{Action: StartStream, Streamer: "alice", Title: "gm"}, now)
	assert.True(t, s.IsLive)
	assert.Equal(t, "alice", s.Streamer)
	assert.Equal(t, &now, s.StartedAt)
	assert.Zero(t, s.Viewers)
	assert.Zero(t, s.Likes)
	assert.Empty(t, s.Chat)

	apply(&s, Action{Action: View}, now)
	apply(&s, Action{Action: View}, now)
	apply(&s, Action{Action: Like}, now)
	assert.EqualValues(t, 2, s.Viewers)
	assert.EqualValues(t, 1, s.Likes)

	for i := 0; i < entities.DefaultLiveChatCapacity+5; i++ {
		apply(&s, Action{Action: Chat, Sender: "bob", Content: fmt.Sprint(i)}, now)
	}
	require.Len(t, s.Chat, entities.DefaultLiveChatCapacity)
	assert.Equal(t, "5", s.Chat[0].Content)
	assert.Equal(t, fmt.Sprint(entities.DefaultLiveChatCapacity+4), s.Chat[len(s.Chat)-1].Content)
	assert.NotEmpty(t, s.Chat[0].ID)
	assert.NotEqual(t, s.Chat[0].ID, s.Chat[1].ID)

	apply(&s, Action{Action: EndStream}, now)
	assert.False(t, s.IsLive)
	assert.EqualValues(t, 2, s.Viewers)
}

type recorder []*Stats

func (r *recorder) Broadcast(s *Stats) {
	*r = append(*r, s)
}

func TestWithBroadcaster(t *testing.T) {
	var r recorder
	s := WithBroadcaster(NewFileStore(t.TempDir()+"/stats.json"), &r)

	got, err := s.Apply(context.Background(), Action{Action: Like})
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.Equal(t, got, r[0])

	_, err = s.Apply(context.Background(), Action{Action: "dance"})
	require.Error(t, err)
	assert.Len(t, r, 1)
}
