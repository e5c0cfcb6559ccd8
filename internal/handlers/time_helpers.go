package handlers

import (
	"time"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/config"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/timezone"
)

// All dates arrive as business-local wall clock strings and are parsed
// in the configured location.

func parseDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(cfg.Timezone),
	)
}

func parseDateTime(cfg *config.Config, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(cfg.Timezone),
	)
}
