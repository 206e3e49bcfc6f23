package websocket

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannel is the Redis pub/sub channel shared by all API instances.
const DefaultChannel = "cms:entity-changes"

type envelope struct {
	Origin string          `json:"origin"`
	Event  json.RawMessage `json:"event"`
}

// Relay keeps hubs on several API instances in step through Redis pub/sub.
// Each instance skips the messages it published itself.
type Relay struct {
	client  *redis.Client
	channel string
	origin  string
	hub     *Hub
	log     *zap.Logger
}

func NewRelay(client *redis.Client, channel string, hub *Hub, log *zap.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Relay{client: client, channel: channel, origin: uuid.NewString(), hub: hub, log: log}
}

func (r *Relay) Publish(ctx context.Context, event []byte) error {
	data, err := json.Marshal(envelope{Origin: r.origin, Event: event})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, data).Err()
}

// Run subscribes and forwards peer events to local clients until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			r.handle(msg.Payload)
		}
	}
}

func (r *Relay) handle(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.log.Warn("dropping malformed relay message", zap.Error(err))
		return
	}
	if env.Origin == r.origin {
		return
	}
	r.hub.deliver(env.Event)
}
