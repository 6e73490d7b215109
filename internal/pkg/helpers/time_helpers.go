package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// academicYearStartMonth is the month a new academic year begins.
const academicYearStartMonth = time.September

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// AcademicYearOf returns the academic year ("2024-2025") containing t
func AcademicYearOf(t time.Time) string {
	start := t.Year()
	if t.Month() < academicYearStartMonth {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

// IsValidAcademicYear checks the "YYYY-YYYY" form with consecutive years
func IsValidAcademicYear(year string) bool {
	parts := strings.Split(year, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 4 {
		return false
	}
	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return second == first+1
}
