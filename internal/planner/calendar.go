package planner

import (
	"fmt"
	"net/url"
	"strings"
)

const calendarRenderURL = "https://calendar.google.com/calendar/render"

// BuildCalendarURL formats event fields into a Google Calendar "render" deep
// link. Free-text fields are percent-encoded; the date tokens are inserted
// verbatim. Pure and deterministic.
func BuildCalendarURL(fields EventFields) string {
	endDate := fields.EndDate
	if endDate == "" {
		endDate = fields.StartDate
	}

	return fmt.Sprintf(
		"%s?action=TEMPLATE&text=%s&dates=%s/%s&details=%s&location=%s&sf=true&output=xml",
		calendarRenderURL,
		encodeComponent(fields.Title),
		fields.StartDate,
		endDate,
		encodeComponent(fields.Details),
		encodeComponent(fields.Location),
	)
}

// encodeComponent percent-encodes a query value with %20 for spaces, matching
// standard URI component encoding.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
