// Package report turns ledger tallies into percentages, a Safe/AtRisk
// classification and a projection message.
package report

import (
	"fmt"
	"math"
)

// Threshold is the minimum attendance percentage counted as safe.
const Threshold = 80.0

type Status string

const (
	StatusSafe   Status = "safe"
	StatusAtRisk Status = "at_risk"
)

// Stats is the full evaluation of attended out of total sessions.
type Stats struct {
	Total      int     `json:"total"`
	Attended   int     `json:"attended"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"classification"`
	CanMiss    *int    `json:"can_miss,omitempty"`
	MustAttend *int    `json:"must_attend,omitempty"`
	Message    string  `json:"message"`
}

// Percentage is attended/total*100 rounded to one decimal, 0 for no sessions.
func Percentage(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(attended) / float64(total) * 100
	return math.Round(p*10) / 10
}

// Classify compares the exact ratio against the threshold: safe iff
// attended/total >= 0.8, i.e. 5*attended >= 4*total. No sessions is safe.
func Classify(attended, total int) Status {
	if total <= 0 || 5*attended >= 4*total {
		return StatusSafe
	}
	return StatusAtRisk
}

// CanMiss is the largest n with attended/(total+n) >= 0.8.
func CanMiss(attended, total int) int {
	n := (5*attended - 4*total) / 4
	if n < 0 {
		return 0
	}
	return n
}

// MustAttend is the smallest m with (attended+m)/(total+m) >= 0.8.
func MustAttend(attended, total int) int {
	m := 4*total - 5*attended
	if m < 0 {
		return 0
	}
	return m
}

// Evaluate builds the stats and message for one subject. attended is
// clamped into [0, total].
func Evaluate(attended, total int) Stats {
	if total < 0 {
		total = 0
	}
	attended = min(max(attended, 0), total)

	st := Stats{
		Total:      total,
		Attended:   attended,
		Percentage: Percentage(attended, total),
		Status:     Classify(attended, total),
	}
	switch {
	case total == 0:
		st.Message = "No classes held yet."
	case st.Status == StatusSafe:
		n := CanMiss(attended, total)
		st.CanMiss = &n
		st.Message = canMissMessage(n)
	default:
		m := MustAttend(attended, total)
		st.MustAttend = &m
		st.Message = mustAttendMessage(m, st.Percentage)
	}
	return st
}

func canMissMessage(n int) string {
	if n == 0 {
		return fmt.Sprintf("On the edge: missing the next class drops you below %.0f%%.", Threshold)
	}
	return fmt.Sprintf("You can miss %d more %s and stay at or above %.0f%%.", n, plural(n, "class", "classes"), Threshold)
}

// A percentage that rounds up to the threshold is still below it.
func mustAttendMessage(m int, shown float64) string {
	msg := fmt.Sprintf("Attend the next %d %s to reach %.0f%%.", m, plural(m, "class", "classes"), Threshold)
	if shown >= Threshold {
		return fmt.Sprintf("Just under %.0f%%. ", Threshold) + msg
	}
	return msg
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
