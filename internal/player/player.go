// Package player implements the one-way playback-control channel to the
// page context. Commands are published on a per-tab Redis channel that
// the extension's content-script bridge subscribes to; no response or
// acknowledgment is ever consumed.
package player

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clipkeeper/clipkeeperd/internal/logger"
)

// CommandType discriminates playback commands.
type CommandType string

const (
	CommandPlay      CommandType = "PLAY"
	CommandDelete    CommandType = "DELETE"
	CommandDeleteAll CommandType = "DELETE_ALL"
)

// KeyPrefixTab is the prefix for per-tab command channels.
const KeyPrefixTab = "clipkeeper:tab:"

// Command is one playback-control message.
type Command struct {
	// ID correlates the dispatch with the bridge's logs.
	ID string `json:"id"`

	Type CommandType `json:"type"`

	// Value carries the target time for PLAY and DELETE; DELETE_ALL has none.
	Value *float64 `json:"value,omitempty"`
}

// NewCommand builds a command with a fresh correlation id.
func NewCommand(t CommandType, value *float64) Command {
	return Command{
		ID:    uuid.NewString(),
		Type:  t,
		Value: value,
	}
}

// TabChannel returns the Redis channel for a tab's page context.
func TabChannel(tabID string) string {
	return KeyPrefixTab + tabID
}

// Publisher dispatches playback commands to a page context.
type Publisher interface {
	Dispatch(ctx context.Context, tabID string, cmd Command) error
}

// RedisPublisher publishes commands over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisPublisher creates a publisher on the given client.
func NewRedisPublisher(client *redis.Client, log logger.Logger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		logger: log,
	}
}

// Dispatch publishes cmd on the tab's channel. Subscriber count is not
// checked: the channel is fire-and-forget by contract.
func (p *RedisPublisher) Dispatch(ctx context.Context, tabID string, cmd Command) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	if err := p.client.Publish(ctx, TabChannel(tabID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish command: %w", err)
	}

	p.logger.Debug("playback command dispatched",
		logger.String("tab", tabID),
		logger.String("command_id", cmd.ID),
		logger.String("type", string(cmd.Type)))
	return nil
}
