package validator

import (
	"strings"
	"testing"

	"eventbook/pkg/logger"
	"eventbook/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestValidateBooking(t *testing.T) {
	validator := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		booking   *model.Booking
		wantError bool
	}{
		{
			name: "valid booking",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   "alice@example.com",
			},
			wantError: false,
		},
		{
			name: "missing event id",
			booking: &model.Booking{
				Email: "alice@example.com",
			},
			wantError: true,
		},
		{
			name: "event id not an object id",
			booking: &model.Booking{
				EventID: "abc123",
				Email:   "alice@example.com",
			},
			wantError: true,
		},
		{
			name: "missing email",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
			},
			wantError: true,
		},
		{
			name: "email without at sign",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   "alice.example.com",
			},
			wantError: true,
		},
		{
			name: "email with whitespace",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   "alice @example.com",
			},
			wantError: true,
		},
		{
			name: "email with empty local part",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   "@example.com",
			},
			wantError: true,
		},
		{
			name: "dotless domain accepted",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   "alice@localhost",
			},
			wantError: false,
		},
		{
			name: "email over length cap",
			booking: &model.Booking{
				EventID: "507f1f77bcf86cd799439011",
				Email:   strings.Repeat("a", 250) + "@x.io",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.booking)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateBookingUpdate(t *testing.T) {
	validator := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		update    *model.BookingUpdate
		wantError bool
	}{
		{
			name:      "empty update is valid",
			update:    &model.BookingUpdate{},
			wantError: false,
		},
		{
			name:      "email only",
			update:    &model.BookingUpdate{Email: "bob@example.com"},
			wantError: false,
		},
		{
			name:      "bad email",
			update:    &model.BookingUpdate{Email: "bob"},
			wantError: true,
		},
		{
			name:      "bad event id",
			update:    &model.BookingUpdate{EventID: "nope"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUpdate(tt.update)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateUpdate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
