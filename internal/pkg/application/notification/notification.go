package notification

import (
	"context"
	"time"

	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/fabwise/equipment-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

// Sender delivers one text message to one user. It is the boundary to the
// external messaging collaborator and is treated as an opaque, fallible unit
// of work per recipient.
type Sender interface {
	SendTextMessage(ctx context.Context, userID, text string) error
}

type SenderFunc func(ctx context.Context, userID, text string) error

func (f SenderFunc) SendTextMessage(ctx context.Context, userID, text string) error {
	return f(ctx, userID, text)
}

// NewMessagingSender publishes outbound user notifications on the message
// bus, where the messaging collaborator picks them up for delivery.
func NewMessagingSender(messenger messaging.MsgContext) Sender {
	return SenderFunc(func(ctx context.Context, userID, text string) error {
		return messenger.PublishOnTopic(ctx, &types.NotificationSend{
			UserID:    userID,
			Message:   text,
			Timestamp: time.Now().UTC(),
		})
	})
}

type Delivery struct {
	UserID string
	Err    error
}

// Directory provides the two membership sources the recipient computation
// draws from.
type Directory interface {
	GetSubscriptions(ctx context.Context, equipmentID string) ([]database.Subscription, error)
	GetResponsibleUsers(ctx context.Context, equipmentType string) ([]database.User, error)
}

//go:generate moq -rm -out notification_mock.go . Router

type Router interface {
	Notify(ctx context.Context, equipment database.Equipment, message, severity string) []Delivery
}

type router struct {
	repository Directory
	sender     Sender
}

func New(repository Directory, sender Sender) Router {
	return &router{
		repository: repository,
		sender:     sender,
	}
}

// Notify sends one message per recipient. The recipient set is the union of
// subscribers whose notification level matches the severity and the users
// responsible for the equipment type (administrators included), recomputed
// fresh on every call. Sends are independent and best effort: a failure is
// logged and the remaining recipients are still attempted. There is no retry
// here; a condition that persists produces a new alert on a later cycle.
func (r *router) Notify(ctx context.Context, equipment database.Equipment, message, severity string) []Delivery {
	logger := logging.GetLoggerFromContext(ctx).With().Str("equipmentID", equipment.EquipmentID).Logger()

	recipients := map[string]bool{}

	subscriptions, err := r.repository.GetSubscriptions(ctx, equipment.EquipmentID)
	if err != nil {
		logger.Error().Err(err).Msg("could not fetch subscriptions")
	}

	for _, s := range subscriptions {
		if levelMatches(s.NotificationLevel, severity) {
			recipients[s.UserID] = true
		}
	}

	responsible, err := r.repository.GetResponsibleUsers(ctx, equipment.Type)
	if err != nil {
		logger.Error().Err(err).Msg("could not fetch responsible users")
	}

	for _, u := range responsible {
		recipients[u.UserID] = true
	}

	if len(recipients) == 0 {
		logger.Warn().Msgf("no recipients for %s alert", severity)
		return nil
	}

	text := severityIndicator(severity) + " " + message

	deliveries := make([]Delivery, 0, len(recipients))

	for userID := range recipients {
		err := r.sender.SendTextMessage(ctx, userID, text)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to send notification to user %s", userID)
		} else {
			logger.Debug().Msgf("sent %s notification to user %s", severity, userID)
		}
		deliveries = append(deliveries, Delivery{UserID: userID, Err: err})
	}

	return deliveries
}

// levelMatches reports whether a subscription at the given notification level
// should receive an alert of the given severity. Emergency alerts reach every
// level, critical alerts reach all and critical, anything else reaches only
// subscribers at level all.
func levelMatches(level, severity string) bool {
	switch severity {
	case database.StatusEmergency:
		return level == database.NotificationLevelAll ||
			level == database.NotificationLevelCritical ||
			level == database.NotificationLevelEmergency
	case database.StatusCritical:
		return level == database.NotificationLevelAll ||
			level == database.NotificationLevelCritical
	default:
		return level == database.NotificationLevelAll
	}
}

func severityIndicator(severity string) string {
	switch severity {
	case database.StatusEmergency:
		return "🚨"
	case database.StatusCritical:
		return "🔴"
	default:
		return "⚠️"
	}
}
