package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"homely/models"
	"homely/utils"
)

// SessionStore keeps schedule sessions in Redis so the selected date/time
// survives navigation between the scheduling steps. Pure UI-state glue; the
// engine itself never touches it.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSessionStore returns a session store with the given client and TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return utils.ScheduleSessionPrefix + sessionID
}

// Save writes the session, refreshing its TTL.
func (s *SessionStore) Save(ctx context.Context, session *models.ScheduleSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache schedule session: %w", err)
	}
	return nil
}

// Get loads a session by id.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.ScheduleSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read schedule session: %w", err)
	}

	var session models.ScheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse schedule session: %w", err)
	}
	return &session, nil
}

// Delete removes a session (after confirmation or cancellation).
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete schedule session: %w", err)
	}
	return nil
}
