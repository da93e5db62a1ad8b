package planner

import (
	"context"
	"encoding/json"

	"github.com/mindease-app/mindease/internal/gemini"
	"github.com/mindease-app/mindease/internal/timeutil"
)

// Placeholder dates used when the model returns no usable date token
const (
	placeholderStartDate = "20240501T090000"
	placeholderEndDate   = "20240501T100000"

	placeholderTitle = "New Event"
)

// EventFields are the extracted calendar fields. Dates are compact
// YYYYMMDDTHHMMSS[Z] tokens inserted verbatim into the calendar URL.
type EventFields struct {
	Title     string `json:"title"`
	Details   string `json:"details"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ParseResult is the outcome of parsing the model's extraction output:
// either usable fields or the raw text that failed to parse. Callers handle
// both variants explicitly.
type ParseResult struct {
	fields    EventFields
	raw       string
	malformed bool
}

// Ok wraps successfully parsed fields
func Ok(fields EventFields) ParseResult {
	return ParseResult{fields: fields}
}

// Malformed wraps model output that could not be parsed
func Malformed(raw string) ParseResult {
	return ParseResult{raw: raw, malformed: true}
}

// Fields returns the parsed fields and whether they are usable
func (r ParseResult) Fields() (EventFields, bool) {
	return r.fields, !r.malformed
}

// RawText returns the unparseable model output for a malformed result
func (r ParseResult) RawText() string {
	return r.raw
}

// DefaultEventFields is the fallback field set when extraction yields nothing
// usable: a generic title carrying the original message as details.
func DefaultEventFields(message string) EventFields {
	return EventFields{
		Title:     placeholderTitle,
		Details:   message,
		StartDate: placeholderStartDate,
		EndDate:   placeholderEndDate,
	}
}

// ExtractEventFields asks the model for the calendar fields of a message.
// Malformed model output never raises: it comes back as a Malformed result.
// An error is returned only when the generation call itself fails.
func (s *Service) ExtractEventFields(ctx context.Context, message string) (ParseResult, error) {
	reply, err := s.gen.Generate(ctx, extractEventPrompt, message)
	if err != nil {
		return ParseResult{}, err
	}

	var fields EventFields
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(reply)), &fields); err != nil {
		return Malformed(reply), nil
	}

	if fields.Title == "" {
		fields.Title = placeholderTitle
	}
	// Dates pass through as the model produced them; placeholders are
	// substituted only when a token is absent or not in compact form.
	if !timeutil.IsCompactTime(fields.StartDate) {
		fields.StartDate = placeholderStartDate
	}
	if fields.EndDate != "" && !timeutil.IsCompactTime(fields.EndDate) {
		fields.EndDate = placeholderEndDate
	}
	if fields.EndDate == "" {
		fields.EndDate = fields.StartDate
	}

	return Ok(fields), nil
}
