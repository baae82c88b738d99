package service

import (
	"context"
	"regexp"
	"testing"

	eventserrors "eventbook/internal/events/errors"
	"eventbook/internal/events/validator"
	"eventbook/pkg/config"
	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/logger"
	"eventbook/pkg/model"
	"eventbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// ────────────────────────────────────────────────
// Mock repository for testing
// ────────────────────────────────────────────────

type mockEventRepository struct {
	createFunc     func(ctx context.Context, event *model.Event) error
	findByIDFunc   func(ctx context.Context, id string) (*model.Event, error)
	findBySlugFunc func(ctx context.Context, slug string, excludeID string) (*model.Event, error)
	updateFunc     func(ctx context.Context, id string, event *model.Event) (*mongo.UpdateResult, error)

	findBySlugCalls int
}

func (m *mockEventRepository) Create(ctx context.Context, event *model.Event) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, eventserrors.ErrNotFound
}

func (m *mockEventRepository) FindBySlug(ctx context.Context, slug string, excludeID string) (*model.Event, error) {
	m.findBySlugCalls++
	if m.findBySlugFunc != nil {
		return m.findBySlugFunc(ctx, slug, excludeID)
	}
	return nil, eventserrors.ErrNotFound
}

func (m *mockEventRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Event, error) {
	return []*model.Event{}, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, event *model.Event) (*mongo.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, event)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockEventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

// ────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "info",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
		SlugMaxAttempts: 3,
		SlugTokenLength: 6,
	}
}

func newTestService(repo *mockEventRepository, cfg *config.Config) EventService {
	return NewEventService(
		repo,
		validator.NewEventValidator(cfg.Log),
		sanitizer.NewSeededTokenGenerator(42),
		nil,
		cfg,
	)
}

func draftEvent() *model.Event {
	return &model.Event{
		Title:       "  My Event!!  ",
		Description: "An event worth attending",
		Venue:       "Hall A",
		Location:    "Haifa",
		Date:        "2026-10-01",
		Time:        "9:05",
		Mode:        model.ModeOnline,
		Agenda:      []string{"Opening"},
		Organizer:   "Org",
		Tags:        []string{"tech"},
	}
}

func storedEvent() *model.Event {
	return &model.Event{
		ID:          "507f1f77bcf86cd799439011",
		Title:       "My Event",
		Slug:        "my-event",
		Description: "An event worth attending",
		Venue:       "Hall A",
		Location:    "Haifa",
		Date:        "2026-10-01",
		Time:        "09:05",
		Mode:        model.ModeOnline,
		Agenda:      []string{"Opening"},
		Organizer:   "Org",
		Tags:        []string{"tech"},
	}
}

// ────────────────────────────────────────────────
// Tests for Create()
// ────────────────────────────────────────────────

func TestCreate_DerivesSlugAndNormalizes(t *testing.T) {
	var created *model.Event
	repo := &mockEventRepository{
		createFunc: func(ctx context.Context, event *model.Event) error {
			created = event
			return nil
		},
	}
	service := newTestService(repo, testConfig())

	event := draftEvent()
	if err := service.Create(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected repository Create to be called")
	}
	if created.Title != "My Event!!" {
		t.Errorf("expected trimmed title %q, got %q", "My Event!!", created.Title)
	}
	if created.Slug != "my-event" {
		t.Errorf("expected slug %q, got %q", "my-event", created.Slug)
	}
	if created.Time != "09:05" {
		t.Errorf("expected zero-padded time %q, got %q", "09:05", created.Time)
	}
}

func TestCreate_SlugCollisionAppendsToken(t *testing.T) {
	repo := &mockEventRepository{}
	repo.findBySlugFunc = func(ctx context.Context, slug string, excludeID string) (*model.Event, error) {
		if slug == "my-event" {
			return &model.Event{ID: "other", Slug: slug}, nil
		}
		return nil, eventserrors.ErrNotFound
	}

	var created *model.Event
	repo.createFunc = func(ctx context.Context, event *model.Event) error {
		created = event
		return nil
	}

	service := newTestService(repo, testConfig())
	if err := service.Create(context.Background(), draftEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := regexp.MustCompile(`^my-event-[0-9a-z]{6}$`)
	if !want.MatchString(created.Slug) {
		t.Errorf("expected slug matching %s, got %q", want, created.Slug)
	}
}

func TestCreate_SlugRetriesExhaustedFallsBackToTimestamp(t *testing.T) {
	cfg := testConfig()
	repo := &mockEventRepository{}
	// every candidate is reported taken, forcing the timestamp fallback
	repo.findBySlugFunc = func(ctx context.Context, slug string, excludeID string) (*model.Event, error) {
		return &model.Event{ID: "other", Slug: slug}, nil
	}

	var created *model.Event
	repo.createFunc = func(ctx context.Context, event *model.Event) error {
		created = event
		return nil
	}

	service := newTestService(repo, cfg)
	if err := service.Create(context.Background(), draftEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base check plus SlugMaxAttempts candidates, the fallback is unchecked
	if repo.findBySlugCalls != 1+cfg.SlugMaxAttempts {
		t.Errorf("expected %d uniqueness lookups, got %d", 1+cfg.SlugMaxAttempts, repo.findBySlugCalls)
	}

	want := regexp.MustCompile(`^my-event-[0-9a-z]+$`)
	if !want.MatchString(created.Slug) {
		t.Errorf("expected fallback slug matching %s, got %q", want, created.Slug)
	}
	if len(created.Slug) <= len("my-event-")+cfg.SlugTokenLength {
		t.Errorf("fallback slug %q should carry a timestamp before the token", created.Slug)
	}
}

func TestCreate_PunctuationOnlyTitleGetsFallbackSlug(t *testing.T) {
	var created *model.Event
	repo := &mockEventRepository{
		createFunc: func(ctx context.Context, event *model.Event) error {
			created = event
			return nil
		},
	}
	service := newTestService(repo, testConfig())

	event := draftEvent()
	event.Title = "!!!"
	if err := service.Create(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Slug != "untitled" {
		t.Errorf("expected slug %q, got %q", "untitled", created.Slug)
	}
}

func TestCreate_InvalidDateRejected(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"missing zero padding", "2026-3-5"},
		{"impossible day", "2026-02-30"},
		{"wrong separator", "2026/03/05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{
				createFunc: func(ctx context.Context, event *model.Event) error {
					t.Error("Create should not reach the repository")
					return nil
				},
			}
			service := newTestService(repo, testConfig())

			event := draftEvent()
			event.Date = tt.date
			err := service.Create(context.Background(), event)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreate_InvalidTimeRejected(t *testing.T) {
	tests := []struct {
		name string
		time string
	}{
		{"single digit minute", "9:5"},
		{"hour out of range", "24:00"},
		{"minute out of range", "10:60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(&mockEventRepository{}, testConfig())

			event := draftEvent()
			event.Time = tt.time
			err := service.Create(context.Background(), event)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

// ────────────────────────────────────────────────
// Tests for Update()
// ────────────────────────────────────────────────

func TestUpdate_UnchangedTitleKeepsSlug(t *testing.T) {
	existing := storedEvent()
	repo := &mockEventRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return existing, nil
		},
	}

	var updated *model.Event
	repo.updateFunc = func(ctx context.Context, id string, event *model.Event) (*mongo.UpdateResult, error) {
		updated = event
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}

	service := newTestService(repo, testConfig())

	// same title with extra whitespace sanitizes back to the stored value
	updates := &model.EventUpdate{Title: "  My Event ", Venue: "Hall B"}
	if err := service.Update(context.Background(), existing.ID, updates); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Slug != "my-event" {
		t.Errorf("slug should be untouched, got %q", updated.Slug)
	}
	if repo.findBySlugCalls != 0 {
		t.Errorf("expected no uniqueness lookups, got %d", repo.findBySlugCalls)
	}
	if updated.Venue != "Hall B" {
		t.Errorf("expected merged venue %q, got %q", "Hall B", updated.Venue)
	}
}

func TestUpdate_ChangedTitleRegeneratesSlug(t *testing.T) {
	existing := storedEvent()
	repo := &mockEventRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return existing, nil
		},
	}

	var updated *model.Event
	repo.updateFunc = func(ctx context.Context, id string, event *model.Event) (*mongo.UpdateResult, error) {
		updated = event
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}

	service := newTestService(repo, testConfig())

	updates := &model.EventUpdate{Title: "Winter Summit 2026"}
	if err := service.Update(context.Background(), existing.ID, updates); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Slug != "winter-summit-2026" {
		t.Errorf("expected regenerated slug %q, got %q", "winter-summit-2026", updated.Slug)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockEventRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return nil, eventserrors.ErrNotFound
		},
	}
	service := newTestService(repo, testConfig())

	err := service.Update(context.Background(), "507f1f77bcf86cd799439011", &model.EventUpdate{Title: "X"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestUpdate_InvalidDateRejected(t *testing.T) {
	existing := storedEvent()
	repo := &mockEventRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, id string, event *model.Event) (*mongo.UpdateResult, error) {
			t.Error("Update should not reach the repository")
			return nil, nil
		},
	}
	service := newTestService(repo, testConfig())

	err := service.Update(context.Background(), existing.ID, &model.EventUpdate{Date: "2026-13-01"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}
