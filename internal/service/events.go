package service

import (
	"context"
	"encoding/json"
	"time"

	"app/internal/pubsub"

	"github.com/rs/zerolog"
)

// EventEmitter publishes publish-state change events. Emission is advisory:
// the local mutation has already committed by the time an event goes out, so
// a publish failure is logged and never fails the request.
type EventEmitter struct {
	publisher pubsub.Publisher
	topic     string
	logger    zerolog.Logger
}

// NewEventEmitter creates an EventEmitter. A nil publisher disables emission,
// which keeps local setups without Pub/Sub credentials working.
func NewEventEmitter(publisher pubsub.Publisher, topic string, logger zerolog.Logger) *EventEmitter {
	return &EventEmitter{
		publisher: publisher,
		topic:     topic,
		logger:    logger.With().Str("service", "EventEmitter").Logger(),
	}
}

func (e *EventEmitter) Emit(ctx context.Context, eventType, courseID, sectionID, instructorID string) {
	if e == nil || e.publisher == nil {
		return
	}
	payload, err := json.Marshal(pubsub.Event{
		Type:         eventType,
		CourseID:     courseID,
		SectionID:    sectionID,
		InstructorID: instructorID,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		e.logger.Error().Err(err).Str("type", eventType).Msg("Failed to marshal event")
		return
	}
	if _, err := e.publisher.Publish(ctx, e.topic, payload); err != nil {
		e.logger.Warn().Err(err).Str("type", eventType).Str("course_id", courseID).
			Msg("Failed to publish event")
	}
}
