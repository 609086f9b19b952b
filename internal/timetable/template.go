package timetable

import (
	"bytes"
	"encoding/json"
	"sort"

	"bunkmeter-backend/internal/platform/apierr"
)

type PeriodSlot struct {
	Period    int    `json:"period"`
	SubjectID string `json:"subject_id"`
}

// Template is the weekly schedule: one ordered period list per weekday.
// The zero value is a valid, empty week.
type Template [DaysPerWeek][]PeriodSlot

// Day returns a copy of the periods stored for d.
func (t Template) Day(d Weekday) []PeriodSlot {
	if !d.Valid() {
		return nil
	}
	out := make([]PeriodSlot, len(t[d]))
	copy(out, t[d])
	return out
}

func (t Template) Clone() Template {
	var out Template
	for _, d := range Weekdays() {
		out[d] = t.Day(d)
	}
	return out
}

// Normalized returns a clone with every day sorted by period number.
func (t Template) Normalized() Template {
	out := t.Clone()
	for _, d := range Weekdays() {
		sort.SliceStable(out[d], func(i, j int) bool { return out[d][i].Period < out[d][j].Period })
	}
	return out
}

// Validate checks period numbers are positive and unique per weekday and
// that every subject reference is known.
func (t Template) Validate(subjectExists func(id string) bool) error {
	for _, d := range Weekdays() {
		seen := make(map[int]struct{}, len(t[d]))
		for _, slot := range t[d] {
			if slot.Period <= 0 {
				return apierr.Invalidf("%s: period number must be > 0, got %d", d, slot.Period)
			}
			if _, dup := seen[slot.Period]; dup {
				return apierr.Invalidf("%s: duplicate period number %d", d, slot.Period)
			}
			seen[slot.Period] = struct{}{}
			if slot.SubjectID == "" {
				return apierr.Invalidf("%s: period %d has no subject", d, slot.Period)
			}
			if !subjectExists(slot.SubjectID) {
				return apierr.Invalidf("%s: period %d references unknown subject %s", d, slot.Period, slot.SubjectID)
			}
		}
	}
	return nil
}

// NextPeriod is one past the highest period number in slots, or 1.
func NextPeriod(slots []PeriodSlot) int {
	next := 1
	for _, s := range slots {
		if s.Period >= next {
			next = s.Period + 1
		}
	}
	return next
}

// AddPeriod appends a period for subjectID on d. A subject may repeat.
func (t *Template) AddPeriod(d Weekday, subjectID string) (PeriodSlot, error) {
	if !d.Valid() {
		return PeriodSlot{}, apierr.Invalidf("invalid weekday %d", int(d))
	}
	slot := PeriodSlot{Period: NextPeriod(t[d]), SubjectID: subjectID}
	t[d] = append(t.Day(d), slot)
	return slot, nil
}

// RemovePeriod drops the period numbered period on d. Remaining periods keep
// their numbers.
func (t *Template) RemovePeriod(d Weekday, period int) error {
	if !d.Valid() {
		return apierr.Invalidf("invalid weekday %d", int(d))
	}
	idx := -1
	for i, s := range t[d] {
		if s.Period == period {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apierr.NotFoundf("%s has no period %d", d, period)
	}
	day := t.Day(d)
	t[d] = append(day[:idx], day[idx+1:]...)
	return nil
}

func (t Template) Equal(o Template) bool {
	for _, d := range Weekdays() {
		if len(t[d]) != len(o[d]) {
			return false
		}
		for i := range t[d] {
			if t[d][i] != o[d][i] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON writes an object with all seven weekday keys.
func (t Template) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Weekdays() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(d.String())
		buf.Write(key)
		buf.WriteByte(':')
		day := t[d]
		if day == nil {
			day = []PeriodSlot{}
		}
		b, err := json.Marshal(day)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a weekday-keyed object. Missing days are empty;
// unknown keys and a day given twice ("Mon" and "Monday") are rejected.
func (t *Template) UnmarshalJSON(b []byte) error {
	var raw map[string][]PeriodSlot
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var (
		out  Template
		seen [DaysPerWeek]bool
	)
	for key, slots := range raw {
		d, err := ParseWeekday(key)
		if err != nil {
			return err
		}
		if seen[d] {
			return apierr.Invalidf("%s is given more than once", d)
		}
		seen[d] = true
		out[d] = slots
	}
	*t = out
	return nil
}
