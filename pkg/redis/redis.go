package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"BlogGolang/internal/entity"
)

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

type IRedis interface {
	GetSession(ctx context.Context, sessionID string) (entity.User, error)
	SetSession(ctx context.Context, sessionID string, user entity.User, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *redisClient) GetSession(ctx context.Context, sessionID string) (entity.User, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.User{}, ErrSessionNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session %s: %v", sessionID, err))
		return entity.User{}, err
	}

	var user entity.User
	if err := jsoniter.Unmarshal([]byte(val), &user); err != nil {
		logrus.Error(fmt.Sprintf("Error decoding session %s: %v", sessionID, err))
		return entity.User{}, err
	}

	return user, nil
}

func (r *redisClient) SetSession(ctx context.Context, sessionID string, user entity.User, expiration time.Duration) error {
	payload, err := jsoniter.Marshal(user)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting session %s: %v", sessionID, err))
		return err
	}

	return nil
}

func (r *redisClient) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.client.Del(ctx, sessionKey(sessionID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session %s: %v", sessionID, err))
		return err
	}
	return nil
}
