package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/closetshare/backend/internal/models"
	"github.com/go-redis/redis/v8"
)

const EventRentalBooked = "rental.booked"

type RentalEvent struct {
	Type       string      `json:"type"`
	BookingRef string      `json:"bookingRef"`
	ItemID     int64       `json:"itemId"`
	OwnerID    int64       `json:"ownerId"`
	RenterID   int64       `json:"renterId"`
	StartDate  models.Date `json:"startDate"`
	EndDate    models.Date `json:"endDate"`
	Credits    int64       `json:"credits"`
	OccurredAt time.Time   `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event RentalEvent) error
}

// RedisEventQueue appends events to a Redis list for downstream consumers
// (owner notifications, demand analytics).
type RedisEventQueue struct {
	redis *redis.Client
	queue string
}

func NewRedisEventQueue(rdb *redis.Client, queue string) *RedisEventQueue {
	return &RedisEventQueue{redis: rdb, queue: queue}
}

func (q *RedisEventQueue) Publish(ctx context.Context, event RentalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.redis.RPush(ctx, q.queue, data).Err()
}

func bookedEvent(booking *models.Booking, ownerID int64) RentalEvent {
	return RentalEvent{
		Type:       EventRentalBooked,
		BookingRef: booking.Reference,
		ItemID:     booking.ItemID,
		OwnerID:    ownerID,
		RenterID:   booking.RenterID,
		StartDate:  booking.StartDate,
		EndDate:    booking.EndDate,
		Credits:    booking.Credits,
		OccurredAt: booking.CreatedAt,
	}
}
