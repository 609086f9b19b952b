package timetable

import (
	"encoding/json"
	"strings"
	"testing"

	"bunkmeter-backend/internal/platform/apierr"
)

func known(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name string
		day  []PeriodSlot
		ok   bool
	}{
		{"empty day", nil, true},
		{"valid", []PeriodSlot{{1, "math"}, {2, "sci"}, {3, "math"}}, true},
		{"zero period", []PeriodSlot{{0, "math"}}, false},
		{"duplicate period", []PeriodSlot{{1, "math"}, {1, "sci"}}, false},
		{"missing subject", []PeriodSlot{{1, ""}}, false},
		{"unknown subject", []PeriodSlot{{1, "art"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tmpl Template
			tmpl[Tuesday] = tt.day
			err := tmpl.Validate(known("math", "sci"))
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !apierr.Is(err, apierr.CodeInvalidArgument) {
				t.Fatalf("want INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

func TestTemplateAddRemovePeriod(t *testing.T) {
	var tmpl Template
	for _, id := range []string{"math", "sci", "eng"} {
		if _, err := tmpl.AddPeriod(Monday, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := tmpl.RemovePeriod(Monday, 2); err != nil {
		t.Fatal(err)
	}
	// removal does not renumber; the next period is max+1
	slot, err := tmpl.AddPeriod(Monday, "sci")
	if err != nil {
		t.Fatal(err)
	}
	if slot.Period != 4 {
		t.Errorf("next period = %d, want 4", slot.Period)
	}

	want := []PeriodSlot{{1, "math"}, {3, "eng"}, {4, "sci"}}
	got := tmpl.Day(Monday)
	if len(got) != len(want) {
		t.Fatalf("Monday = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Monday = %v, want %v", got, want)
		}
	}

	if err := tmpl.RemovePeriod(Monday, 2); !apierr.Is(err, apierr.CodeNotFound) {
		t.Errorf("removing a missing period: %v", err)
	}
	if len(tmpl.Day(Tuesday)) != 0 {
		t.Error("edits leaked into another day")
	}
}

func TestNextPeriodEmpty(t *testing.T) {
	if n := NextPeriod(nil); n != 1 {
		t.Errorf("NextPeriod(nil) = %d", n)
	}
}

func TestTemplateDayIsCopy(t *testing.T) {
	var tmpl Template
	tmpl[Friday] = []PeriodSlot{{1, "math"}}
	day := tmpl.Day(Friday)
	day[0].SubjectID = "sci"
	if tmpl[Friday][0].SubjectID != "math" {
		t.Error("Day exposed the template's backing array")
	}
}

func TestTemplateJSON(t *testing.T) {
	var tmpl Template
	tmpl[Monday] = []PeriodSlot{{1, "math"}, {2, "sci"}}

	b, err := json.Marshal(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, d := range Weekdays() {
		if !strings.Contains(s, `"`+d.String()+`":`) {
			t.Errorf("missing key %s in %s", d, s)
		}
	}
	if !strings.Contains(s, `"Sunday":[]`) {
		t.Errorf("empty day not encoded as []: %s", s)
	}

	var back Template
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(tmpl) {
		t.Errorf("round trip = %v, want %v", back, tmpl)
	}

	var partial Template
	if err := json.Unmarshal([]byte(`{"wed":[{"period":1,"subject_id":"math"}]}`), &partial); err != nil {
		t.Fatal(err)
	}
	if len(partial.Day(Wednesday)) != 1 || len(partial.Day(Monday)) != 0 {
		t.Errorf("partial = %v", partial)
	}

	if err := json.Unmarshal([]byte(`{"Someday":[]}`), &partial); err == nil {
		t.Error("unknown weekday key accepted")
	}
}

func TestTemplateJSONRejectsRepeatedDay(t *testing.T) {
	for _, doc := range []string{
		`{"Mon":[{"period":1,"subject_id":"a"}],"Monday":[{"period":2,"subject_id":"b"}]}`,
		`{"friday":[],"FRI":[]}`,
	} {
		var tmpl Template
		err := json.Unmarshal([]byte(doc), &tmpl)
		if !apierr.Is(err, apierr.CodeInvalidArgument) {
			t.Errorf("%s: err = %v", doc, err)
		}
	}
}
