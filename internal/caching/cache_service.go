package caching

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "seatbill"

// ChargeCache keeps computed monthly charges so repeated lookups skip the database.
//
// Charges are stored under the customer's current generation. Callers read the generation
// before loading seats and pass it to SetCharge; InvalidateCustomer bumps it, so a charge
// computed from data loaded before a write lands under a generation nobody reads anymore.
type ChargeCache interface {
	Generation(ctx context.Context, customerID uuid.UUID) (int64, error)
	GetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string) (int64, bool, error)
	SetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string, cents int64, ttl time.Duration) error
	InvalidateCustomer(ctx context.Context, customerID uuid.UUID) error
	Ping(ctx context.Context) error
}

type redisChargeCache struct {
	client *redis.Client
}

// NewRedisClient builds a client from an address that may carry a redis:// scheme.
func NewRedisClient(addr, password string, db int) *redis.Client {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsedAddr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return client
}

func NewRedisChargeCache(client *redis.Client) ChargeCache {
	return &redisChargeCache{client: client}
}

func chargeKey(customerID uuid.UUID, generation int64, month string) string {
	return fmt.Sprintf("%s:charge:%s:g%d:%s", keyPrefix, customerID.String(), generation, month)
}

func generationKey(customerID uuid.UUID) string {
	return fmt.Sprintf("%s:chargegen:%s", keyPrefix, customerID.String())
}

func (r *redisChargeCache) Generation(ctx context.Context, customerID uuid.UUID) (int64, error) {
	generation, err := r.client.Get(ctx, generationKey(customerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (r *redisChargeCache) GetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string) (int64, bool, error) {
	val, err := r.client.Get(ctx, chargeKey(customerID, generation, month)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil // cache miss
		}
		return 0, false, err
	}
	cents, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached charge %q: %w", val, err)
	}
	return cents, true, nil
}

func (r *redisChargeCache) SetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string, cents int64, ttl time.Duration) error {
	return r.client.Set(ctx, chargeKey(customerID, generation, month), strconv.FormatInt(cents, 10), ttl).Err()
}

// InvalidateCustomer moves the customer to a new generation, then drops the charges cached so far.
func (r *redisChargeCache) InvalidateCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := r.client.Incr(ctx, generationKey(customerID)).Err(); err != nil {
		return err
	}

	pattern := fmt.Sprintf("%s:charge:%s:*", keyPrefix, customerID.String())
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisChargeCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
