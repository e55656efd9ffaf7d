package save

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

const redisKeyPrefix = "wraith:loadout:"

// RedisStore keeps loadouts as YAML strings under wraith:loadout:<profile>.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to redisURL and pings it. A zero ttl keeps
// loadouts forever.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("save: parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("save: connect to redis: %w", err)
	}

	logger.Info("Connected to Redis for loadout saves", "addr", opt.Addr)
	return &RedisStore{client: rdb, logger: logger, ttl: ttl}, nil
}

func (s *RedisStore) Save(ctx context.Context, l Loadout) error {
	if l.ProfileID == uuid.Nil {
		return ErrNoProfile
	}
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("save: marshal %s: %w", l.ProfileID, err)
	}
	key := redisKeyPrefix + l.ProfileID.String()
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("save: redis set %s: %w", key, err)
	}
	s.logger.Debug("Loadout saved", "key", key, "slots", len(l.Slots))
	return nil
}

func (s *RedisStore) Load(ctx context.Context, profile uuid.UUID) (Loadout, error) {
	key := redisKeyPrefix + profile.String()
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Loadout{}, fmt.Errorf("save: load %s: %w", profile, ErrNotFound)
	}
	if err != nil {
		s.logger.Error("Redis GET failed", "key", key, "error", err)
		return Loadout{}, fmt.Errorf("save: redis get %s: %w", key, err)
	}
	return decode(profile, data)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
