// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flash stores one-shot user notices ("Venue X was successfully added!")
for a browser session until the client reads them.

Messages are appended to a Redis list keyed by session id and expire after
[constants.FlashTTL]. Reading drains the list atomically, so a message is
delivered at most once.
*/
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
)

// Level classifies a message for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is a single flash notice.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Store is the Redis-backed flash message queue.
type Store struct {
	client redis.UniversalClient
}

// NewStore constructs a flash store on top of an existing Redis client.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

// Push appends a message to the session's queue and refreshes its TTL.
func (s *Store) Push(ctx context.Context, sessionID string, message Message) error {
	if sessionID == "" {
		return nil
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("flash: encode message: %w", err)
	}

	key := constants.RedisPrefixFlash + sessionID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, constants.FlashTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("flash: push: %w", err)
	}

	return nil
}

// Notify pushes a message for the session carried by ctx.
//
// A flash is never worth failing a request over: errors are logged with the
// request logger and dropped. A nil store is a no-op.
func (s *Store) Notify(ctx context.Context, level Level, text string) {
	if s == nil {
		return
	}

	if err := s.Push(ctx, ctxutil.GetSessionID(ctx), Message{Level: level, Text: text}); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "flash_push_failed", slog.String("error", err.Error()))
	}
}

// Drain returns every pending message for the session, oldest first, and clears the queue.
func (s *Store) Drain(ctx context.Context, sessionID string) ([]Message, error) {
	messages := make([]Message, 0)
	if sessionID == "" {
		return messages, nil
	}

	key := constants.RedisPrefixFlash + sessionID

	var rangeCmd *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flash: drain: %w", err)
	}

	for _, raw := range rangeCmd.Val() {
		var message Message
		if err := json.Unmarshal([]byte(raw), &message); err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}
