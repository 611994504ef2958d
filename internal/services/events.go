package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

//go:generate mockgen -source=events.go -destination=mock_events_test.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

var eventJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newRentalEvent(eventType string, rental *models.Rental, now time.Time) models.RentalEvent {
	return models.RentalEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RentalID:   rental.RentalID.String(),
		BookID:     rental.BookID.String(),
		UserID:     rental.UserID.String(),
		IssueDate:  rental.IssueDate,
		ReturnDate: rental.ReturnDate,
		TotalRent:  rental.TotalRent,
		Timestamp:  now.Unix(),
	}
}

// publishRentalEvent publishes a ledger transition to Kafka. Failures are logged only.
// The write is bounded by timeout because it runs while the request transaction holds its locks.
func publishRentalEvent(ctx context.Context, timeout time.Duration, writer KafkaWriter, event models.RentalEvent) {
	if writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := eventJSON.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rental event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RentalID),
		Value: data,
	}

	err = withTimeout(ctx, timeout, func(ctx context.Context) error {
		return writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		logger.Log.Errorw("Failed to publish rental event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Rental event published to Kafka", "event_id", event.EventID, "type", event.Type, "rental_id", event.RentalID)
	}
}
