package pattern

import (
	"fmt"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/timeslot"
)

// Parse tokenizes a consolidated pattern string into its typed form. The
// grammar is a sequence of groups separated by ", ":
//
//	pattern  := "" | group (", " group)*
//	group    := weekdays segment+
//	segment  := part ordinals
//	weekdays := digit+          (each digit 1..7)
//	part     := "M" | "T" | "N"
//	ordinals := digit+          (each digit within the part's catalog range)
//
// Digits between two part letters always belong to the left letter's ordinal
// run; a fresh weekday run only starts at the beginning of a group. Every
// segment of a group applies to the whole weekday run, so "35T12N1" books
// T1, T2 and N1 on weekdays 3 and 5. Anything outside the grammar is rejected
// with a malformed-pattern error rather than silently skipped.
func Parse(s string) (*Pattern, error) {
	p := &Pattern{}
	if s == "" {
		return p, nil
	}

	i := 0
	for {
		c, next, err := parseCluster(s, i)
		if err != nil {
			return nil, err
		}
		p.clusters = append(p.clusters, c)
		i = next

		if i == len(s) {
			return p, nil
		}
		if !hasPrefixAt(s, i, ", ") {
			return nil, malformed(s, i, "expected group separator")
		}
		i += 2
		if i == len(s) {
			return nil, malformed(s, i, "trailing group separator")
		}
	}
}

func parseCluster(s string, i int) (cluster, int, error) {
	var c cluster

	start := i
	for i < len(s) && isDigit(s[i]) {
		d := int(s[i] - '0')
		w, err := timeslot.ParseWeekdayDigit(d)
		if err != nil {
			return c, i, malformed(s, i, fmt.Sprintf("weekday digit %d out of range", d))
		}
		if !c.containsWeekday(w) {
			c.weekdays = append(c.weekdays, w)
		}
		i++
	}
	if i == start {
		return c, i, malformed(s, i, "expected weekday digits")
	}

	for i < len(s) {
		part := timeslot.DayPart(s[i])
		if !part.Valid() {
			break
		}
		i++

		seg := segment{part: part}
		for i < len(s) && isDigit(s[i]) {
			o := int(s[i] - '0')
			if o < 1 || o > part.MaxOrdinal() {
				return c, i, malformed(s, i, fmt.Sprintf("slot ordinal %c%d outside the catalog", part, o))
			}
			seg.ordinals = append(seg.ordinals, o)
			i++
		}
		if len(seg.ordinals) == 0 {
			return c, i, malformed(s, i, fmt.Sprintf("day-part %c has no slot ordinals", part))
		}
		c.segments = append(c.segments, seg)
	}

	if len(c.segments) == 0 {
		return c, i, malformed(s, i, "expected a day-part letter")
	}
	return c, i, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

func malformed(s string, pos int, reason string) error {
	return exceptions.ErrMalformedPattern(nil, fmt.Sprintf("%s at position %d in %q", reason, pos, s))
}
