// Package kvstore fornece o armazém chave-valor usado para persistir a
// personalização do painel fora do banco relacional.
package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/portfolio-manager-api/internal/config"
)

// ErrKeyNotFound indica que a chave não existe no armazém.
var ErrKeyNotFound = errors.New("chave não encontrada")

// KeyValueStore é a interface injetada nos serviços que precisam de
// persistência chave-valor; mantém o núcleo testável sem Redis.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg config.Redis) (KeyValueStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value string) error {
	// Layouts de painel não expiram; a personalização vale até ser trocada.
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
