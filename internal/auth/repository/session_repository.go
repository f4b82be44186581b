package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	authdomain "customers-backend/internal/auth/domain"

	"github.com/redis/go-redis/v9"
)

// sessionEntry is the JSON value stored per issued token in the session
// hash. Key layout: hash key = customer id, field = token.
type sessionEntry struct {
	Timestamp float64 `json:"timestamp"`
	Device    string  `json:"device"`
}

// sessionRepository implements SessionRecorder on a Redis hash.
type sessionRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionRepository creates a new instance of sessionRepository.
func NewSessionRepository(client *redis.Client) SessionRecorder {
	return &sessionRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *sessionRepository) Record(ctx context.Context, customerID, token, device string) error {
	entry := sessionEntry{
		Timestamp: float64(r.now().UnixNano()) / float64(time.Second),
		Device:    device,
	}

	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: marshal session entry: %v", authdomain.ErrUpstream, err)
	}

	if err := r.client.HSet(ctx, customerID, token, value).Err(); err != nil {
		return fmt.Errorf("%w: record session: %v", authdomain.ErrUpstream, err)
	}
	return nil
}
