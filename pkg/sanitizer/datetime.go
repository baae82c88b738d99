package sanitizer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrDateFormat   = errors.New("date must be a string in YYYY-MM-DD format")
	ErrCalendarDate = errors.New("date is not a valid calendar date")
	ErrTimeFormat   = errors.New("time must be in 24-hour HH:MM format")
)

var (
	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeDate validates a YYYY-MM-DD date string and returns it in
// canonical zero-padded form. The pattern is strict: "2024-3-5" is a format
// error, not something to auto-correct. Calendar validity is checked by
// rebuilding the date in UTC and requiring the components to round-trip,
// which rejects overflows such as 2024-02-30.
func NormalizeDate(date string) (string, error) {
	if !reDate.MatchString(date) {
		return "", ErrDateFormat
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", ErrCalendarDate
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// NormalizeTime validates a 24-hour H:MM or HH:MM time string and returns
// it with the hour zero-padded. Minutes must already be two digits, so
// "9:5" is rejected while "9:05" normalizes to "09:05".
func NormalizeTime(value string) (string, error) {
	m := reTime.FindStringSubmatch(value)
	if m == nil {
		return "", ErrTimeFormat
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", ErrTimeFormat
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
