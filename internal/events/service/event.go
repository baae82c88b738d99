package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	eventserrors "eventbook/internal/events/errors"
	"eventbook/internal/events/repository"
	"eventbook/internal/events/validator"
	"eventbook/internal/notifications"
	"eventbook/pkg/config"
	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/model"
	"eventbook/pkg/sanitizer"
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error)
	Update(ctx context.Context, id string, updates *model.EventUpdate) error
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.EventValidator
	tokens    *sanitizer.TokenGenerator
	notifier  *notifications.Notifier
	cfg       *config.Config
}

func NewEventService(
	repo repository.EventRepository,
	validator *validator.EventValidator,
	tokens *sanitizer.TokenGenerator,
	notifier *notifications.Notifier,
	cfg *config.Config,
) EventService {
	return &eventService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *eventService) Create(ctx context.Context, event *model.Event) error {
	s.sanitize(event)

	changes := model.EventChanges{New: true, Date: true, Time: true}
	if err := s.normalize(ctx, event, changes); err != nil {
		return err
	}

	if err := s.validate(event); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to create event", "error", err)
		return apperrors.Internal("Failed to create event", err)
	}

	s.notifier.EventCreated(ctx, event)

	s.cfg.Log.Info("Event created successfully",
		"id", event.ID,
		"slug", event.Slug,
		"date", event.Date,
	)
	return nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event ID cannot be empty")
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid event ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("Event slug cannot be empty")
	}

	event, err := s.repo.FindBySlug(ctx, slug, "")
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Event")
		}
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *eventService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error) {
	var count int64
	var events []*model.Event
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count events", "error", errCount)
			errCount = apperrors.Internal("Failed to count events", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		events, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list events", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve events", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return events, count, nil
}

func (s *eventService) Update(ctx context.Context, id string, updates *model.EventUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Event ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid event ID format")
		}
		return apperrors.Internal("Failed to check event existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Event update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeEventUpdates(existing, updates)
	s.sanitize(merged)

	changes := diffChanges(existing, merged)
	if err := s.normalize(ctx, merged, changes); err != nil {
		return err
	}

	if err := s.validate(merged); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		s.cfg.Log.Error("Failed to update event", "id", id, "error", err)
		return apperrors.Internal("Failed to update event", err)
	}

	s.notifier.EventUpdated(ctx, merged)

	s.cfg.Log.Info("Event updated successfully", "id", id, "slug", merged.Slug)
	return nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Event ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid event ID format")
		}
		return apperrors.Internal("Failed to delete event", err)
	}

	s.notifier.EventDeleted(ctx, id)

	s.cfg.Log.Info("Event deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *eventService) sanitize(e *model.Event) {
	e.Title = sanitizer.TrimAndNormalize(e.Title)
	e.Description = sanitizer.TrimAndNormalize(e.Description)
	e.Overview = sanitizer.TrimAndNormalize(e.Overview)
	e.Venue = sanitizer.TrimAndNormalize(e.Venue)
	e.Location = sanitizer.TrimAndNormalize(e.Location)
	e.Audience = sanitizer.TrimAndNormalize(e.Audience)
	e.Organizer = sanitizer.TrimAndNormalize(e.Organizer)
	e.Agenda = sanitizer.NormalizeAgenda(e.Agenda)
	e.Tags = sanitizer.NormalizeTags(e.Tags)
}

// normalize runs the pre-write normalization hooks driven by the explicit
// change flags: slug derivation when the record is new without a slug or
// the title changed, date and time canonicalization when those fields
// changed. Unchanged fields are left untouched, so a save with an
// unchanged title never alters an assigned slug.
func (s *eventService) normalize(ctx context.Context, event *model.Event, changes model.EventChanges) error {
	if (changes.New && event.Slug == "") || changes.Title {
		slug, err := s.ensureUniqueSlug(ctx, sanitizer.Slugify(event.Title), event.ID)
		if err != nil {
			return err
		}
		event.Slug = slug
	}

	if changes.Date {
		date, err := sanitizer.NormalizeDate(event.Date)
		if err != nil {
			s.cfg.Log.Warn("Event date normalization failed", "date", event.Date, "error", err)
			return apperrors.Validation(err.Error(), map[string]any{"field": "date", "value": event.Date})
		}
		event.Date = date
	}

	if changes.Time {
		t, err := sanitizer.NormalizeTime(event.Time)
		if err != nil {
			s.cfg.Log.Warn("Event time normalization failed", "time", event.Time, "error", err)
			return apperrors.Validation(err.Error(), map[string]any{"field": "time", "value": event.Time})
		}
		event.Time = t
	}

	return nil
}

// ensureUniqueSlug resolves a slug for base that no other event holds.
// The base is checked first, then up to SlugMaxAttempts random-suffix
// candidates. The final timestamp fallback is accepted without a check:
// the collision odds are astronomically low, and the unique index on the
// slug field backstops the race this check cannot close anyway.
func (s *eventService) ensureUniqueSlug(ctx context.Context, base string, excludeID string) (string, error) {
	taken, err := s.slugTaken(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for attempt := 0; attempt < s.cfg.SlugMaxAttempts; attempt++ {
		candidate := fmt.Sprintf("%s-%s", base, s.tokens.Token(s.cfg.SlugTokenLength))
		taken, err := s.slugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	stamp := sanitizer.TimestampToken(time.Now())
	return fmt.Sprintf("%s-%s%s", base, stamp, s.tokens.Token(s.cfg.SlugTokenLength)), nil
}

func (s *eventService) slugTaken(ctx context.Context, slug string, excludeID string) (bool, error) {
	_, err := s.repo.FindBySlug(ctx, slug, excludeID)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.Internal("Failed to check slug uniqueness", err)
	}
	return true, nil
}

func (s *eventService) mergeEventUpdates(existing *model.Event, updates *model.EventUpdate) *model.Event {
	merged := *existing

	if updates.Title != "" {
		merged.Title = updates.Title
	}
	if updates.Description != "" {
		merged.Description = updates.Description
	}
	if updates.Overview != nil {
		merged.Overview = *updates.Overview
	}
	if updates.Image != nil {
		merged.Image = *updates.Image
	}
	if updates.Venue != "" {
		merged.Venue = updates.Venue
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.Date != "" {
		merged.Date = updates.Date
	}
	if updates.Time != "" {
		merged.Time = updates.Time
	}
	if updates.Mode != "" {
		merged.Mode = updates.Mode
	}
	if updates.Audience != nil {
		merged.Audience = *updates.Audience
	}
	if updates.Agenda != nil {
		merged.Agenda = *updates.Agenda
	}
	if updates.Organizer != "" {
		merged.Organizer = updates.Organizer
	}
	if updates.Tags != nil {
		merged.Tags = *updates.Tags
	}

	return &merged
}

// diffChanges compares previous and merged state after sanitization, so a
// title edit that only shuffles whitespace does not trigger slug
// regeneration.
func diffChanges(existing, merged *model.Event) model.EventChanges {
	return model.EventChanges{
		Title: merged.Title != existing.Title,
		Date:  merged.Date != existing.Date,
		Time:  merged.Time != existing.Time,
	}
}

func (s *eventService) validate(event *model.Event) error {
	if err := s.validator.Validate(event); err != nil {
		s.cfg.Log.Warn("Event validation failed", "error", err)
		return apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
