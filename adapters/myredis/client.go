package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultTimeout bounds dialing and each command of the registry client.
	defaultTimeout = 3 * time.Second
	// defaultPoolSize is enough for one refresh loop, one heartbeat and the HTTP registry API.
	defaultPoolSize = 4
)

// Option adjusts the parsed options before the client is created.
type Option func(*redis.Options)

// ParseAddr accepts either host:port or a redis:// URL (redis://[user:pass@]host:port[/db]) and returns
// options with the registry defaults filled in where the address leaves them unset.
func ParseAddr(addr string) (*redis.Options, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis address is empty")
	}
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("cant parse redis url: %w", err)
		}
		opts = parsed
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = defaultTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = defaultTimeout
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = defaultPoolSize
	}
	return opts, nil
}

// Connect creates the registry client for addr and pings it within ctx. The client is closed again when the
// ping fails.
//
// Called from cmd/main when registry.type=redis.
func Connect(ctx context.Context, addr string, options ...Option) (redis.UniversalClient, error) {
	opts, err := ParseAddr(addr)
	if err != nil {
		return nil, err
	}
	for _, opt := range options {
		opt(opts)
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{opts.Addr},
		DB:           opts.DB,
		Username:     opts.Username,
		Password:     opts.Password,
		TLSConfig:    opts.TLSConfig,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		MaxRetries:   opts.MaxRetries,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}
