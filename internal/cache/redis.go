package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"quickAI/internal/config"
)

// NewRedisClient connects to Redis and returns nil when the server is not
// reachable, so callers can run without quota and rate limiting.
func NewRedisClient(cfg config.Redis, log *logrus.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis connection failed, continuing without cache")
		client.Close()
		return nil
	}

	log.WithField("addr", cfg.Addr).Info("redis connected")
	return client
}

// Pinger adapts a possibly absent Redis client to the health endpoint.
type Pinger struct {
	rdb *redis.Client
}

func NewPinger(rdb *redis.Client) *Pinger {
	return &Pinger{rdb: rdb}
}

func (p *Pinger) HealthCheck(ctx context.Context) error {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Ping(ctx).Err()
}
