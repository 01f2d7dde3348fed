package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

// EventSender pushes equipment events as cloud events to externally
// configured subscriber endpoints. The message bus reaches in-house
// consumers; this is the boundary to everyone else.
type EventSender interface {
	Send(ctx context.Context, equipmentID string, timestamp time.Time, message messaging.TopicMessage) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, s := range cfg.Notifications {
			e.subscribers[s.Type] = s.Subscribers
		}
	}

	return e
}

// Send delivers the message to every subscriber registered for its topic
// name. No subscribers is a no-op, a failed endpoint does not stop delivery
// to the others.
func (e *eventSender) Send(ctx context.Context, equipmentID string, timestamp time.Time, message messaging.TopicMessage) error {
	subscribers, ok := e.subscribers[message.TopicName()]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", equipmentID, timestamp.Unix()))
	event.SetTime(timestamp)
	event.SetSource("github.com/fabwise/equipment-mgmt")
	event.SetType(message.TopicName())

	err = event.SetData(cloudevents.ApplicationJSON, message)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
