package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// Sink writes a notification to its two destinations: a persisted row
// the user can read later, and a pub/sub channel for clients connected
// right now.
type Sink struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewSink(db *gorm.DB, rdb *redis.Client) *Sink {
	return &Sink{db: db, rdb: rdb}
}

type wireEvent struct {
	ID      string    `json:"id"`
	Event   string    `json:"event"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Payload any       `json:"payload,omitempty"`
	SentAt  time.Time `json:"sentAt"`
}

func (s *Sink) Deliver(ev Event) error {
	var payloadJSON string
	if ev.Payload != nil {
		if b, err := json.Marshal(ev.Payload); err == nil {
			payloadJSON = string(b)
		}
	}

	row := models.Notification{
		UserID:  ev.UserID,
		Event:   ev.Event,
		Title:   ev.Title,
		Message: ev.Message,
		Payload: payloadJSON,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return err
	}

	if s.rdb == nil {
		return nil
	}

	msg, err := json.Marshal(wireEvent{
		ID:      uuid.NewString(),
		Event:   ev.Event,
		Title:   ev.Title,
		Message: ev.Message,
		Payload: ev.Payload,
		SentAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	channel := fmt.Sprintf("notifications:user:%d", ev.UserID)
	return s.rdb.Publish(ctx, channel, msg).Err()
}
