package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// table is a bidirectional label/code lookup. Values missing from the
// table pass through unchanged in both directions so that new backend
// codes render as-is instead of breaking the client.
type table struct {
	codes  map[string]string // label -> code
	labels map[string]string // code -> label
}

func newTable(pairs ...[2]string) *table {
	t := &table{
		codes:  make(map[string]string, len(pairs)),
		labels: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		t.codes[p[0]] = p[1]
		t.labels[p[1]] = p[0]
	}
	return t
}

func (t *table) code(label string) string {
	if c, ok := t.codes[label]; ok {
		return c
	}
	return label
}

func (t *table) label(code string) string {
	if l, ok := t.labels[code]; ok {
		return l
	}
	return code
}

var days = newTable(
	[2]string{"Mon", "M"},
	[2]string{"Tue", "T"},
	[2]string{"Wed", "W"},
	[2]string{"Thu", "R"},
	[2]string{"Fri", "F"},
	[2]string{"Sat", "S"},
	[2]string{"Sun", "U"},
)

// DayCode maps a weekday name to its single letter backend code.
func DayCode(day string) string { return days.code(day) }

// DayName maps a single letter day code back to the weekday name.
func DayName(code string) string { return days.label(code) }

// DaysToken concatenates the day codes for the selected weekdays in
// selection order, e.g. ["Mon","Wed","Fri"] -> "MWF". Names that have
// no code are skipped.
func DaysToken(selected []string) string {
	var b strings.Builder
	for _, d := range selected {
		if c, ok := days.codes[d]; ok {
			b.WriteString(c)
		}
	}
	return b.String()
}

var terms = newTable(
	[2]string{"Spring 2025", "2252"},
	[2]string{"Summer 2025", "2255"},
	[2]string{"Fall 2025", "2258"},
	[2]string{"Winter 2026", "2261"},
)

// TermCode maps a named term to its session code. Unrecognized term
// names pass through unchanged.
func TermCode(name string) string { return terms.code(name) }

// TermName maps a session code back to the named term.
func TermName(code string) string { return terms.label(code) }

var modes = newTable(
	[2]string{"In Person", "P"},
	[2]string{"Hybrid", "HY"},
	[2]string{"Synchronous Online", "WL"},
	[2]string{"Asynchronous Online", "WA"},
)

// ModeCode maps an instruction mode label to its backend code.
func ModeCode(label string) string { return modes.code(label) }

// ModeLabel decodes a backend instruction mode code to its label.
func ModeLabel(code string) string { return modes.label(code) }

// ModeLabels lists every instruction mode label the table defines.
func ModeLabels() []string {
	return []string{"In Person", "Hybrid", "Synchronous Online", "Asynchronous Online"}
}

var levels = map[string]string{
	"100":  "1",
	"200":  "2",
	"300":  "3",
	"400":  "4",
	"500+": "5",
}

// LevelToken maps a level filter bucket to the single digit backend
// token. The second return is false for buckets outside the table.
func LevelToken(bucket string) (string, bool) {
	tok, ok := levels[bucket]
	return tok, ok
}

// CourseLevel classifies a catalog number into a display level bucket.
// Every integer maps to exactly one bucket.
func CourseLevel(catalogNum int) string {
	switch {
	case catalogNum >= 500:
		return "600+ Level"
	case catalogNum >= 400:
		return "400 Level"
	case catalogNum >= 300:
		return "300 Level"
	case catalogNum >= 200:
		return "200 Level"
	case catalogNum >= 100:
		return "100 Level"
	default:
		return "Other"
	}
}

// CourseCareer classifies a catalog number as a graduate or
// undergraduate offering.
func CourseCareer(catalogNum int) string {
	if catalogNum >= 600 {
		return "Graduate"
	}
	return "Undergraduate"
}

// FormatTime converts a 24-hour "HH:MM:SS" string to "h:mm AM/PM".
// Empty input and strings that don't look like a clock time come back
// empty instead of failing.
func FormatTime(t string) string {
	if t == "" {
		return ""
	}
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return ""
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], period)
}
