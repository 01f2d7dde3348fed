package monitor

import (
	"context"
	"encoding/json"

	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/fabwise/equipment-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// MetricSampleTopicHandler persists metric samples published by the
// instrumentation layer. The samples feed the detection cycle; nothing is
// classified here.
func MetricSampleTopicHandler(messenger messaging.MsgContext, repository database.EquipmentRepository) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		metric := types.EquipmentMetric{}

		err := json.Unmarshal(msg.Body, &metric)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		if metric.EquipmentID == "" || metric.MetricType == "" {
			logger.Warn().Msgf("discarding incomplete metric sample from %s", msg.RoutingKey)
			return
		}

		err = repository.AddMetricSample(ctx, database.MetricSample{
			EquipmentID: metric.EquipmentID,
			MetricType:  metric.MetricType,
			Value:       metric.Value,
			Unit:        metric.Unit,
			Timestamp:   metric.Timestamp,
		})
		if err != nil {
			logger.Error().Err(err).Msgf("could not store metric sample for equipment %s", metric.EquipmentID)
		}
	}
}
