// Package sanitizer provides input normalization functions for event and
// booking data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. String helpers handle invalid input gracefully
// by returning empty strings or slices; the date and time normalizers return
// sentinel errors so callers can abort a save with a descriptive message.
//
// Normalization includes:
//   - Slugs: lowercase, URL-safe identifiers derived from titles - "Go Meetup 2026!" becomes "go-meetup-2026"
//   - Dates: canonical zero-padded YYYY-MM-DD, validated against the Gregorian calendar
//   - Times: canonical zero-padded 24-hour HH:MM
//   - Emails: trimmed and lowercased
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Slices: remove duplicates and empty values after normalization
package sanitizer
