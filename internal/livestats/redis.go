package livestats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

// RedisStore is a store shared by several gateway instances.
type RedisStore struct {
	c     redis.UniversalClient
	stats string
	chat  string
}

// NewRedisStore returns store which keeps stats in hash and chat in capped list under prefix.
func NewRedisStore(c redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		c:     c,
		stats: prefix + ":stats",
		chat:  prefix + ":chat",
	}
}

// Get ...
func (r *RedisStore) Get(ctx context.Context) (*Stats, error) {
	var (
		h    *redis.StringStringMapCmd
		list *redis.StringSliceCmd
	)

	if _, err := r.c.Pipelined(ctx, func(p redis.Pipeliner) error {
		h = p.HGetAll(ctx, r.stats)
		list = p.LRange(ctx, r.chat, 0, -1)
		return nil
	}); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	fields := h.Val()

	s := Stats{
		IsLive:   fields["isLive"] == "1",
		Streamer: fields["streamer"],
		Title:    fields["title"],
		Chat:     []ChatMessage{},
	}
	s.Viewers, _ = strconv.ParseUint(fields["viewers"], 10, 64)
	s.Likes, _ = strconv.ParseUint(fields["likes"], 10, 64)

	if v, err := strconv.ParseInt(fields["startedAt"], 10, 64); err == nil && v > 0 {
		t := time.Unix(v, 0).UTC()
		s.StartedAt = &t
	}

	for _, v := range list.Val() {
		var m ChatMessage
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			log.WithError(err).Warn("skipping corrupted chat message")
			continue
		}
		s.Chat = append(s.Chat, m)
	}

	return &s, nil
}

// Apply ...
func (r *RedisStore) Apply(ctx context.Context, a Action) (*Stats, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	_, err := r.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		switch a.Action {
		case StartStream:
			p.Del(ctx, r.stats, r.chat)
			p.HSet(ctx, r.stats,
				"isLive", "1",
				"streamer", a.Streamer,
				"title", a.Title,
				"startedAt", strconv.FormatInt(now.Unix(), 10),
				"viewers", "0",
				"likes", "0",
			)
		case EndStream:
			p.HSet(ctx, r.stats, "isLive", "0")
		case View:
			p.HIncrBy(ctx, r.stats, "viewers", 1)
		case Like:
			p.HIncrBy(ctx, r.stats, "likes", 1)
		case Chat:
			data, err := json.Marshal(newChatMessage(a, now))
			if err != nil {
				return err
			}
			p.RPush(ctx, r.chat, data)
			p.LTrim(ctx, r.chat, -entities.DefaultLiveChatCapacity, -1)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", a.Action, err)
	}

	return r.Get(ctx)
}

// Ping implements health.Pinger.
func (r *RedisStore) Ping(ctx context.Context) (interface{}, error) {
	return nil, r.c.Ping(ctx).Err()
}

// Name implements health.Pinger.
func (r *RedisStore) Name() string {
	return "redis"
}
