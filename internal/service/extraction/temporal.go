package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// TimeHints are the raw temporal signals found in a capture: an explicitly
// stated date, an explicitly stated clock time, or a day-part word. Absent
// hints stay empty; the resolver never invents one.
type TimeHints struct {
	Date      string // "2006-01-02"
	ClockTime string // "15:04"
	DayPart   string // morning|noon|afternoon|evening|night
}

func (h TimeHints) empty() bool {
	return h.Date == "" && h.ClockTime == "" && h.DayPart == ""
}

// dayPartHours maps a day-part word to its conventional hour on the
// reference date. Resolutions through this table are always approximate.
var dayPartHours = map[string]int{
	"morning":   9,
	"noon":      12,
	"afternoon": 15,
	"evening":   19,
	"tonight":   20,
	"night":     21,
}

// ResolveTimestamp turns time hints plus a reference date into an absolute
// timestamp and precision tag. Policy, in priority order:
//
//  1. stated date + stated clock time  -> that instant, exact
//  2. stated date only                 -> midnight of that date, day
//  3. stated clock time only           -> that time on the reference date, exact
//  4. day part only                    -> conventional hour on the reference date, approximate
//  5. nothing resolvable               -> nil, unknown
//
// Under-extraction is preferred over guessing: an unparseable hint is
// treated as absent, never approximated.
func ResolveTimestamp(reference time.Time, hints TimeHints) (*time.Time, domain.TimestampPrecision) {
	loc := reference.Location()

	date, hasDate := parseDate(hints.Date, loc)
	clockH, clockM, hasClock := parseClock(hints.ClockTime)

	switch {
	case hasDate && hasClock:
		ts := time.Date(date.Year(), date.Month(), date.Day(), clockH, clockM, 0, 0, loc)
		return &ts, domain.PrecisionExact

	case hasDate:
		ts := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		return &ts, domain.PrecisionDay

	case hasClock:
		ts := time.Date(reference.Year(), reference.Month(), reference.Day(), clockH, clockM, 0, 0, loc)
		return &ts, domain.PrecisionExact
	}

	if hour, ok := dayPartHours[strings.ToLower(strings.TrimSpace(hints.DayPart))]; ok {
		ts := time.Date(reference.Year(), reference.Month(), reference.Day(), hour, 0, 0, 0, loc)
		return &ts, domain.PrecisionApproximate
	}

	return nil, domain.PrecisionUnknown
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

func parseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// descriptionRe matches clock times inside a free-text reference time
// description, e.g. "at 6pm", "around 6:45 pm", "18:30".
var descriptionRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

// ParseTimeDescription extracts TimeHints from a user-supplied free-text
// reference time description ("at 6pm", "yesterday evening", "2024-11-23").
// A user-supplied description takes priority over anything inferred from
// the narrative.
func ParseTimeDescription(s string) TimeHints {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeHints{}
	}

	var hints TimeHints
	lower := strings.ToLower(s)

	if _, ok := parseDate(datePattern.FindString(s), time.UTC); ok {
		hints.Date = datePattern.FindString(s)
	}

	for part := range dayPartHours {
		if strings.Contains(lower, part) {
			hints.DayPart = part
			break
		}
	}

	if m := descriptionRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem := strings.ToLower(m[3])
		// A bare number with no meridiem and no minutes is too ambiguous
		// to call a clock time ("3 incidents" must not become 03:00).
		if meridiem == "" && m[2] == "" {
			return hints
		}
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		if hour <= 23 && minute <= 59 {
			hints.ClockTime = twoDigit(hour) + ":" + twoDigit(minute)
		}
	}

	return hints
}

var datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
