package model

import (
	"time"
)

type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	EventID   string    `json:"event_id" bson:"event_id" validate:"required,mongodb"`
	Email     string    `json:"email" bson:"email" validate:"required,basic_email,max=254"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

type BookingUpdate struct {
	EventID string `json:"event_id,omitempty" validate:"omitempty,mongodb"`
	Email   string `json:"email,omitempty" validate:"omitempty,basic_email,max=254"`
}
