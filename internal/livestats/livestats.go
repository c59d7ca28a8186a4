// Package livestats contains state of the demo live stream: viewers, likes and chat.
package livestats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

//go:generate mockgen -destination=./mock/livestats.go -package=mock -source=livestats.go

var log = logrus.WithField("package", "livestats")

var (
	// ErrUnknownAction is returned when action name is not supported.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidAction is returned when action misses required fields.
	ErrInvalidAction = errors.New("invalid action")
)

// Action names.
const (
	StartStream = "start_stream"
	EndStream   = "end_stream"
	View        = "view"
	Like        = "like"
	Chat        = "chat"
)

const defaultStreamer = "Anonymous"

// ChatMessage ...
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is a snapshot of the stream.
type Stats struct {
	IsLive    bool          `json:"isLive"`
	Streamer  string        `json:"streamer"`
	Title     string        `json:"title"`
	StartedAt *time.Time    `json:"startedAt"`
	Viewers   uint64        `json:"viewers"`
	Likes     uint64        `json:"likes"`
	Chat      []ChatMessage `json:"chat"`
}

// Action is a mutation of stats.
type Action struct {
	Action   string `json:"action"`
	Streamer string `json:"streamer,omitempty"`
	Title    string `json:"title,omitempty"`
	Sender   string `json:"sender,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Store keeps stats.
type Store interface {
	// Get returns current stats.
	Get(ctx context.Context) (*Stats, error)
	// Apply mutates stats and returns new snapshot.
	Apply(ctx context.Context, a Action) (*Stats, error)
}

// Validate normalizes action and checks required fields.
func (a *Action) Validate() error {
	a.Action = strings.TrimSpace(a.Action)

	switch a.Action {
	case StartStream:
		if a.Streamer = strings.TrimSpace(a.Streamer); a.Streamer == "" {
			a.Streamer = defaultStreamer
		}
		a.Title = strings.TrimSpace(a.Title)
	case EndStream, View, Like:
	case Chat:
		if a.Sender = strings.TrimSpace(a.Sender); a.Sender == "" {
			a.Sender = defaultStreamer
		}
		a.Content = strings.TrimSpace(a.Content)
		if a.Content == "" {
			return fmt.Errorf("%w: content is required", ErrInvalidAction)
		}
		if len([]rune(a.Content)) > entities.MaxMessageLength {
			return fmt.Errorf("%w: content is too long", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Action)
	}

	return nil
}

// newChatMessage creates chat message of validated chat action.
func newChatMessage(a Action, now time.Time) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Sender:    a.Sender,
		Content:   a.Content,
		Timestamp: now,
	}
}

// apply mutates s with validated action.
func apply(s *Stats, a Action, now time.Time) {
	switch a.Action {
	case StartStream:
		*s = Stats{
			IsLive:    true,
			Streamer:  a.Streamer,
			Title:     a.Title,
			StartedAt: &now,
			Chat:      []ChatMessage{},
		}
	case EndStream:
		s.IsLive = false
	case View:
		s.Viewers++
	case Like:
		s.Likes++
	case Chat:
		s.Chat = append(s.Chat, newChatMessage(a, now))
		if len(s.Chat) > entities.DefaultLiveChatCapacity {
			s.Chat = s.Chat[len(s.Chat)-entities.DefaultLiveChatCapacity:]
		}
	}
}

// Broadcaster receives every new snapshot.
type Broadcaster interface {
	Broadcast(s *Stats)
}

type notifying struct {
	Store
	b Broadcaster
}

// WithBroadcaster returns store which passes every applied snapshot to b.
func WithBroadcaster(s Store, b Broadcaster) Store {
	return notifying{Store: s, b: b}
}

// Apply ...
func (n notifying) Apply(ctx context.Context, a Action) (*Stats, error) {
	s, err := n.Store.Apply(ctx, a)
	if err != nil {
		return nil, err
	}

	n.b.Broadcast(s)

	return s, nil
}
