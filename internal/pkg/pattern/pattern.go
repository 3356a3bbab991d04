// Package pattern implements the consolidated weekly-schedule notation: the
// compact string such as "24M12" or "35T12N1" that summarizes a course's
// recurring meeting pattern. Encoding consolidates weekdays that share an
// identical slot set into a single group; decoding parses the notation into a
// typed form that answers per-weekday occurrence queries.
package pattern

import (
	"sort"
	"strings"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/timeslot"
)

// WeeklyBooking is one recurring (weekday, slot) meeting.
type WeeklyBooking struct {
	Weekday timeslot.WeekdayCode
	Slot    timeslot.SlotCode
}

// segment is one day-part letter with its ordinal run, e.g. "T12".
type segment struct {
	part     timeslot.DayPart
	ordinals []int
}

// cluster is a weekday-digit run followed by one or more segments. All
// segments of a cluster apply to every weekday in the run, so "35T12N1"
// means T1, T2 and N1 on both Tuesday(3) and Thursday(5).
type cluster struct {
	weekdays []timeslot.WeekdayCode
	segments []segment
}

func (c cluster) containsWeekday(w timeslot.WeekdayCode) bool {
	for _, d := range c.weekdays {
		if d == w {
			return true
		}
	}
	return false
}

func (c cluster) occurrenceCount() int {
	n := 0
	for _, seg := range c.segments {
		n += len(seg.ordinals)
	}
	return n
}

// signature renders the segment list without the weekday run, used both for
// printing and for deciding whether two weekdays can be merged.
func (c cluster) signature() string {
	var b strings.Builder
	for _, seg := range c.segments {
		b.WriteByte(byte(seg.part))
		for _, o := range seg.ordinals {
			b.WriteByte(byte('0' + o))
		}
	}
	return b.String()
}

// Pattern is the parsed form of a consolidated pattern string. The zero value
// is the empty pattern, which has no occurrences anywhere.
type Pattern struct {
	clusters []cluster
}

// Weekdays returns the ascending union of weekday digits in the pattern.
func (p *Pattern) Weekdays() []timeslot.WeekdayCode {
	seen := map[timeslot.WeekdayCode]bool{}
	for _, c := range p.clusters {
		for _, w := range c.weekdays {
			seen[w] = true
		}
	}
	out := make([]timeslot.WeekdayCode, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasOccurrenceOn reports whether the weekday digit appears in any group.
func (p *Pattern) HasOccurrenceOn(w timeslot.WeekdayCode) bool {
	for _, c := range p.clusters {
		if c.containsWeekday(w) {
			return true
		}
	}
	return false
}

// OccurrenceCountOn sums, over groups containing the weekday, the length of
// their slot-ordinal runs.
func (p *Pattern) OccurrenceCountOn(w timeslot.WeekdayCode) int {
	n := 0
	for _, c := range p.clusters {
		if c.containsWeekday(w) {
			n += c.occurrenceCount()
		}
	}
	return n
}

// SlotsOn lists the slot codes the pattern books on the weekday, in catalog
// order.
func (p *Pattern) SlotsOn(w timeslot.WeekdayCode) []timeslot.SlotCode {
	var out []timeslot.SlotCode
	for _, c := range p.clusters {
		if !c.containsWeekday(w) {
			continue
		}
		for _, seg := range c.segments {
			for _, o := range seg.ordinals {
				out = append(out, timeslot.SlotCode([]byte{byte(seg.part), byte('0' + o)}))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Part().Order() != out[j].Part().Order() {
			return out[i].Part().Order() < out[j].Part().Order()
		}
		return out[i].Ordinal() < out[j].Ordinal()
	})
	return out
}

// Bookings expands the pattern back into individual weekly bookings.
func (p *Pattern) Bookings() []WeeklyBooking {
	var out []WeeklyBooking
	for _, w := range p.Weekdays() {
		for _, s := range p.SlotsOn(w) {
			out = append(out, WeeklyBooking{Weekday: w, Slot: s})
		}
	}
	return out
}

// String renders the pattern back into notation form.
func (p *Pattern) String() string {
	parts := make([]string, 0, len(p.clusters))
	for _, c := range p.clusters {
		var b strings.Builder
		for _, w := range c.weekdays {
			b.WriteByte(byte('0' + int(w)))
		}
		b.WriteString(c.signature())
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}

// Encode consolidates weekly bookings into notation form. Weekdays whose
// slot sets are identical collapse into one group with a concatenated
// weekday-digit run; otherwise each weekday gets its own group, ordered
// Sunday through Saturday and joined with ", ". An empty booking set encodes
// to the empty string.
func Encode(bookings []WeeklyBooking) (string, error) {
	if len(bookings) == 0 {
		return "", nil
	}

	byWeekday := map[timeslot.WeekdayCode]map[timeslot.SlotCode]bool{}
	for _, b := range bookings {
		if !b.Weekday.Valid() {
			return "", exceptions.ErrInvalidWeekdayDigit(int(b.Weekday))
		}
		if _, err := timeslot.ParseSlotCode(string(b.Slot)); err != nil {
			return "", err
		}
		if byWeekday[b.Weekday] == nil {
			byWeekday[b.Weekday] = map[timeslot.SlotCode]bool{}
		}
		byWeekday[b.Weekday][b.Slot] = true
	}

	weekdays := make([]timeslot.WeekdayCode, 0, len(byWeekday))
	for w := range byWeekday {
		weekdays = append(weekdays, w)
	}
	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })

	clusters := make([]cluster, 0, len(weekdays))
	for _, w := range weekdays {
		clusters = append(clusters, cluster{
			weekdays: []timeslot.WeekdayCode{w},
			segments: segmentsOf(byWeekday[w]),
		})
	}

	// Merge into a single group when every weekday books the exact same slots.
	if len(clusters) > 1 {
		shared := clusters[0].signature()
		identical := true
		for _, c := range clusters[1:] {
			if c.signature() != shared {
				identical = false
				break
			}
		}
		if identical {
			merged := cluster{segments: clusters[0].segments}
			for _, c := range clusters {
				merged.weekdays = append(merged.weekdays, c.weekdays...)
			}
			p := Pattern{clusters: []cluster{merged}}
			return p.String(), nil
		}
	}

	p := Pattern{clusters: clusters}
	return p.String(), nil
}

func segmentsOf(slots map[timeslot.SlotCode]bool) []segment {
	codes := make([]timeslot.SlotCode, 0, len(slots))
	for s := range slots {
		codes = append(codes, s)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i].Part().Order() != codes[j].Part().Order() {
			return codes[i].Part().Order() < codes[j].Part().Order()
		}
		return codes[i].Ordinal() < codes[j].Ordinal()
	})

	var segs []segment
	for _, code := range codes {
		part := code.Part()
		if len(segs) == 0 || segs[len(segs)-1].part != part {
			segs = append(segs, segment{part: part})
		}
		segs[len(segs)-1].ordinals = append(segs[len(segs)-1].ordinals, code.Ordinal())
	}
	return segs
}
