package sanitizer

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "already normalized is unchanged",
			input: "2024-03-05",
			want:  "2024-03-05",
		},
		{
			name:  "leap day on leap year",
			input: "2024-02-29",
			want:  "2024-02-29",
		},
		{
			name:    "unpadded components rejected not corrected",
			input:   "2024-3-5",
			wantErr: ErrDateFormat,
		},
		{
			name:    "wrong separator",
			input:   "2024/03/05",
			wantErr: ErrDateFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrDateFormat,
		},
		{
			name:    "february 30th",
			input:   "2024-02-30",
			wantErr: ErrCalendarDate,
		},
		{
			name:    "leap day on non-leap year",
			input:   "2023-02-29",
			wantErr: ErrCalendarDate,
		},
		{
			name:    "day 31 in a 30-day month",
			input:   "2024-04-31",
			wantErr: ErrCalendarDate,
		},
		{
			name:    "month 13",
			input:   "2024-13-01",
			wantErr: ErrCalendarDate,
		},
		{
			name:    "day zero",
			input:   "2024-01-00",
			wantErr: ErrCalendarDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "canonical stays unchanged",
			input: "09:05",
			want:  "09:05",
		},
		{
			name:  "single digit hour is padded",
			input: "9:05",
			want:  "09:05",
		},
		{
			name:  "midnight",
			input: "0:00",
			want:  "00:00",
		},
		{
			name:  "end of day",
			input: "23:59",
			want:  "23:59",
		},
		{
			name:    "single digit minute rejected",
			input:   "9:5",
			wantErr: ErrTimeFormat,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: ErrTimeFormat,
		},
		{
			name:    "minute out of range",
			input:   "12:60",
			wantErr: ErrTimeFormat,
		},
		{
			name:    "12-hour suffix",
			input:   "9:05 PM",
			wantErr: ErrTimeFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeTime(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeTime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
