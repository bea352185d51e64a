package domain

import (
	"regexp"
	"time"
)

// Provider represents a field-service provider that can be dispatched to a request.
type Provider struct {
	ID          int64
	Name        string
	Phone       string
	Lat         float64
	Lon         float64
	IsAvailable bool
	CreatedAt   time.Time
}

// PartialProviderUpdate carries optional fields to update a provider.
// A nil field means “do not change” that attribute.
type PartialProviderUpdate struct {
	ID          int64
	Name        *string
	Phone       *string
	Lat         *float64
	Lon         *float64
	IsAvailable *bool
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// ValidCoordinates reports whether lat/lon fall inside the WGS84 ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
