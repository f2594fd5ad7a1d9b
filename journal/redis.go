package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "uno:journal:"

type Entry struct {
	GameName  string `json:"game_name"`
	Actor     string `json:"actor"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Redis pushes each line as a JSON entry onto the list <prefix><gameName>.
type Redis struct {
	client  redis.Cmdable
	prefix  string
	timeout time.Duration
}

func NewRedis(client redis.Cmdable, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis{client: client, prefix: prefix, timeout: 2 * time.Second}
}

// ConnectRedis opens a client and checks the server answers.
func ConnectRedis(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *Redis) Key(gameName string) string {
	return r.prefix + gameName
}

func (r *Redis) Record(actor, message, gameName string) error {
	data, err := json.Marshal(Entry{
		GameName:  gameName,
		Actor:     actor,
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshal journal entry: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.client.RPush(ctx, r.Key(gameName), data).Err(); err != nil {
		return fmt.Errorf("rpush journal entry to %s: %w", r.Key(gameName), err)
	}
	return nil
}
