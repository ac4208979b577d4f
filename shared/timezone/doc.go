// Package timezone provides timezone utilities for the application.
//
// Usage:
//
//	timezone.Init(cfg)                               // once at startup
//	now := timezone.Now()                            // current time in app timezone
//	formatted := timezone.Format(t, time.RFC3339)    // format in app timezone
//	t, err := timezone.ParseFlexible("2025-06-01")   // request datetimes
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
// Until Init runs every helper works in UTC.
package timezone
