package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"pickles_back_end/internal/models"
)

// --- Panier ---

// RedisCartStore stocke le panier en JSON sous la clé cart:<session>
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	data, err := s.client.Get(ctx, CartChannel(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyCart(sessionID), nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("lecture panier %s: %w", sessionID, err)
	}
	return decodeCart(sessionID, data)
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	cart.SessionID = sessionID
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encodage panier: %w", err)
	}
	if err := s.client.Set(ctx, CartChannel(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("sauvegarde panier %s: %w", sessionID, err)
	}
	return nil
}

// Take utilise GETDEL : lecture et suppression atomiques
func (s *RedisCartStore) Take(ctx context.Context, sessionID string) (models.Cart, error) {
	data, err := s.client.GetDel(ctx, CartChannel(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyCart(sessionID), nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("vidage panier %s: %w", sessionID, err)
	}
	return decodeCart(sessionID, data)
}

func decodeCart(sessionID string, data []byte) (models.Cart, error) {
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("décodage panier %s: %w", sessionID, err)
	}
	cart.SessionID = sessionID
	if cart.Items == nil {
		cart.Items = []models.Item{}
	}
	return cart, nil
}

// --- Pub/Sub ---

type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, channel, payload string) error {
	return b.client.Publish(ctx, channel, payload).Err()
}

// Subscribe attend la confirmation de l'abonnement avant de rendre la main
func (b *RedisBroker) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("abonnement %s: %w", channel, err)
	}

	out := make(chan string, subscriptionBuffer)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- msg.Payload:
			default:
				log.Printf("⚠️ Abonné lent sur %s, message %q ignoré", channel, msg.Payload)
			}
		}
	}()

	return &redisSubscription{pubsub: pubsub, out: out}, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	out    chan string
}

func (s *redisSubscription) Messages() <-chan string {
	return s.out
}

func (s *redisSubscription) Close() error {
	return s.pubsub.Close()
}

// --- Rate limiting ---

type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr incrémente le compteur ; la fenêtre démarre au premier hit
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *RedisCounter) Get(ctx context.Context, key string) (int64, error) {
	val, err := c.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

func (c *RedisCounter) Reset(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
