package timezone

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"visitpazar/config"
	"visitpazar/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation atomic.Pointer[time.Location]

	ErrUnsupportedFormat = errors.New("unsupported datetime format")
)

// layouts accepted by ParseFlexible, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	constant.DateTimeNoZone,
	constant.DateOnlyFormat,
}

// Init loads the configured application timezone, falling back to UTC.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Europe/Belgrade', 'UTC', 'America/New_York'")

		loc = time.UTC
	}

	appLocation.Store(loc)

	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// GetLocation returns the current application timezone location, UTC until Init runs.
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseFlexible accepts RFC 3339, a zone-less date-time or a plain date.
// Values without an offset are read in the application timezone.
func ParseFlexible(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
