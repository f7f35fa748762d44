package roster

import (
	"sort"
	"time"
)

// DefaultThresholdDays is the default expiry window.
const DefaultThresholdDays = 7

// Band classifies days-remaining for display ranking.
type Band int

const (
	// BandCritical is an expiry within a day.
	BandCritical Band = iota
	// BandSoon is an expiry within three days.
	BandSoon
	// BandUpcoming is everything else inside the window.
	BandUpcoming
)

// String returns the string representation of the band.
func (b Band) String() string {
	switch b {
	case BandCritical:
		return "critical"
	case BandSoon:
		return "soon"
	case BandUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// BandFor classifies a days-left value.
func BandFor(daysLeft int) Band {
	switch {
	case daysLeft <= 1:
		return BandCritical
	case daysLeft <= 3:
		return BandSoon
	default:
		return BandUpcoming
	}
}

// ExpiringStudent is a student whose pro subscription ends inside the
// threshold window, with the derived urgency fields. It exists only as
// filter output and is recomputed on every call.
type ExpiringStudent struct {
	Student  Student
	DaysLeft int
	EndsAt   time.Time
}

// Band returns the urgency band for this entry.
func (e ExpiringStudent) Band() Band {
	return BandFor(e.DaysLeft)
}

// DaysLeft computes the whole days remaining until end, rounding up:
// an expiry twelve hours away is one day left.
func DaysLeft(now, end time.Time) int {
	d := end.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Expiring filters students down to those on a pro plan whose end date
// falls strictly after now and at or before now plus thresholdDays,
// sorted by ascending days-left. Pure function of its inputs.
func Expiring(students []Student, now time.Time, thresholdDays int) []ExpiringStudent {
	if thresholdDays <= 0 {
		thresholdDays = DefaultThresholdDays
	}
	cutoff := now.AddDate(0, 0, thresholdDays)

	var out []ExpiringStudent
	for _, s := range students {
		sub := s.Subscription
		if sub == nil || sub.Plan != PlanPro || sub.EndDate == nil {
			continue
		}
		end := *sub.EndDate
		if !end.After(now) || end.After(cutoff) {
			continue
		}
		out = append(out, ExpiringStudent{
			Student:  s,
			DaysLeft: DaysLeft(now, end),
			EndsAt:   end,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	return out
}

// Summary counts the urgent entries for the widget header.
type Summary struct {
	Critical int
	Soon     int
}

// Summarize tallies critical and soon entries.
func Summarize(entries []ExpiringStudent) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Band() {
		case BandCritical:
			s.Critical++
		case BandSoon:
			s.Soon++
		}
	}
	return s
}
