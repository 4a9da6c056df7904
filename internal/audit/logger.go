package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisKey   = "audit:actions"
	maxEntries = 1000
)

type Logger struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Logger {
	return &Logger{rdb: rdb}
}

type record struct {
	At       time.Time `json:"at"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID uint      `json:"entityId,omitempty"`
	Role     string    `json:"role,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
}

// Log grava a ação em uma lista limitada no redis (as mais novas primeiro).
func (l *Logger) Log(
	action string,
	entity string,
	entityID uint,
	role string,
	metadata any,
) error {

	entry := record{
		At:       time.Now().UTC(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Role:     role,
		Metadata: metadata,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pipe := l.rdb.TxPipeline()
	pipe.LPush(ctx, redisKey, data)
	pipe.LTrim(ctx, redisKey, 0, maxEntries-1)
	_, err = pipe.Exec(ctx)
	return err
}
