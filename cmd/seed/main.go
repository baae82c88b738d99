package main

import (
	"context"
	"log"
	"os"
	"time"

	bookingsrepo "eventbook/internal/bookings/repository"
	bookingssvc "eventbook/internal/bookings/service"
	bookingsval "eventbook/internal/bookings/validator"
	eventsrepo "eventbook/internal/events/repository"
	eventssvc "eventbook/internal/events/service"
	eventsval "eventbook/internal/events/validator"
	"eventbook/internal/notifications"
	"eventbook/pkg/config"
	"eventbook/pkg/kafka"
	kafka_config "eventbook/pkg/kafka/config"
	"eventbook/pkg/model"
	"eventbook/pkg/sanitizer"
)

const (
	JobName        = "seed"
	LifecycleTopic = "eventbook.lifecycle"
)

// Seeds a handful of events and bookings through the service layer, so
// every record goes through the same sanitization, slug generation and
// referential checks as production writes.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	notifier, closeProducer := buildNotifier(cfg)
	defer closeProducer()

	tokens := sanitizer.NewTokenGenerator()
	eventRepo := eventsrepo.NewMongoEventRepository(cfg)
	eventService := eventssvc.NewEventService(
		eventRepo,
		eventsval.NewEventValidator(cfg.Log),
		tokens,
		notifier,
		cfg,
	)
	bookingService := bookingssvc.NewBookingService(
		bookingsrepo.NewMongoBookingRepository(cfg),
		eventRepo,
		bookingsval.NewBookingValidator(cfg.Log),
		notifier,
		cfg,
	)

	events := []*model.Event{
		{
			Title:       "Go Meetup: Generics in Practice",
			Description: "Hands-on session on writing generic Go code.",
			Venue:       "Community Hall",
			Location:    "Tel Aviv",
			Date:        "2026-09-15",
			Time:        "18:30",
			Mode:        model.ModeOffline,
			Agenda:      []string{"Intro", "Live coding", "Q&A"},
			Organizer:   "Gophers IL",
			Tags:        []string{"go", "meetup"},
		},
		{
			Title:       "Distributed Systems Workshop",
			Description: "A full-day workshop on consensus and replication.",
			Venue:       "Online",
			Location:    "Remote",
			Date:        "2026-10-02",
			Time:        "9:00",
			Mode:        model.ModeOnline,
			Agenda:      []string{"Raft", "Replication lab"},
			Organizer:   "Systems Guild",
			Tags:        []string{"distributed-systems", "workshop"},
		},
	}

	for _, event := range events {
		if err := eventService.Create(ctx, event); err != nil {
			log.Fatalf("Seeding event %q failed: %v", event.Title, err)
		}

		booking := &model.Booking{
			EventID: event.ID,
			Email:   "seed@example.com",
		}
		if err := bookingService.Create(ctx, booking); err != nil {
			log.Fatalf("Seeding booking for %q failed: %v", event.Slug, err)
		}
	}

	cfg.Log.Info("Seed data written", "events", len(events))
}

// buildNotifier wires the Kafka producer when brokers are configured.
// Without KAFKA_BROKERS the seed runs silent: the nil notifier disables
// publishing without touching the service code paths.
func buildNotifier(cfg *config.Config) (*notifications.Notifier, func()) {
	if os.Getenv(kafka_config.EnvKafkaBrokers) == "" {
		cfg.Log.Info("KAFKA_BROKERS not set, lifecycle notifications disabled")
		return nil, func() {}
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, LifecycleTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	closer := func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Warn("Failed to close Kafka producer", "error", err)
		}
	}
	return notifications.New(producer, cfg.Log, JobName), closer
}
