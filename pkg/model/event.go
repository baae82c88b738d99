package model

import (
	"time"
)

const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

type Event struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title       string    `json:"title" bson:"title" validate:"required,max=200"`
	Slug        string    `json:"slug,omitempty" bson:"slug" validate:"omitempty,event_slug"`
	Description string    `json:"description" bson:"description" validate:"required,max=2000"`
	Overview    string    `json:"overview,omitempty" bson:"overview" validate:"omitempty,max=5000"`
	Image       string    `json:"image,omitempty" bson:"image" validate:"omitempty,max=500"`
	Venue       string    `json:"venue" bson:"venue" validate:"required,max=200"`
	Location    string    `json:"location" bson:"location" validate:"required,max=200"`
	Date        string    `json:"date" bson:"date" validate:"required,event_date"`
	Time        string    `json:"time" bson:"time" validate:"required,event_time"`
	Mode        string    `json:"mode" bson:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string    `json:"audience,omitempty" bson:"audience" validate:"omitempty,max=200"`
	Agenda      []string  `json:"agenda" bson:"agenda" validate:"required,min=1,dive,required"`
	Organizer   string    `json:"organizer" bson:"organizer" validate:"required,max=200"`
	Tags        []string  `json:"tags" bson:"tags" validate:"required,min=1,dive,required"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

type EventUpdate struct {
	Title       string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Overview    *string   `json:"overview,omitempty" validate:"omitempty,max=5000"`
	Image       *string   `json:"image,omitempty" validate:"omitempty,max=500"`
	Venue       string    `json:"venue,omitempty" validate:"omitempty,max=200"`
	Location    string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Date        string    `json:"date,omitempty" validate:"omitempty"`
	Time        string    `json:"time,omitempty" validate:"omitempty"`
	Mode        string    `json:"mode,omitempty" validate:"omitempty,oneof=online offline hybrid"`
	Audience    *string   `json:"audience,omitempty" validate:"omitempty,max=200"`
	Agenda      *[]string `json:"agenda,omitempty" validate:"omitempty,min=1,dive,required"`
	Organizer   string    `json:"organizer,omitempty" validate:"omitempty,max=200"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,min=1,dive,required"`
}

// EventChanges records which normalization-relevant fields differ from the
// last persisted state. The service computes it explicitly instead of
// relying on store-level dirty tracking.
type EventChanges struct {
	New   bool
	Title bool
	Date  bool
	Time  bool
}
