package save

import (
	"context"
	"log/slog"

	"github.com/milk9111/wraith/config"
)

// Open picks the Redis store when a URL is configured and the file store
// otherwise. The returned func releases the store.
func Open(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	if cfg.RedisURL == "" {
		return NewFileStore(cfg.SaveDir), func() {}, nil
	}
	rs, err := NewRedisStore(ctx, cfg.RedisURL, 0, slog.Default())
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}
