package service

import (
	"reflect"
	"testing"
)

func TestParseClassStart(t *testing.T) {
	keys, skipped := ParseClassStart("2026년 1학기 3기, 2026년 2학기 1기")
	want := []CohortKey{
		{Year: 2026, Term: 1, ClassNumber: 3},
		{Year: 2026, Term: 2, ClassNumber: 1},
	}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %+v, want %+v", keys, want)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v", skipped)
	}
}

func TestParseClassStart_MalformedTokensAreSkippedNotFatal(t *testing.T) {
	keys, skipped := ParseClassStart("garbage, 2026년 3학기 1기, 2026년 1학기 2기, ,2026년 1학기 0기")
	if len(keys) != 1 || keys[0] != (CohortKey{Year: 2026, Term: 1, ClassNumber: 2}) {
		t.Fatalf("keys = %+v", keys)
	}
	// three bad tokens recorded, empty token dropped silently
	if len(skipped) != 3 {
		t.Fatalf("skipped = %v", skipped)
	}
}

func TestParseClassStart_Empty(t *testing.T) {
	keys, skipped := ParseClassStart("   ")
	if len(keys) != 0 || len(skipped) != 0 {
		t.Fatalf("keys = %v, skipped = %v", keys, skipped)
	}
}

func TestFormatClassStart_RoundTrip(t *testing.T) {
	in := "2025년 2학기 1기, 2026년 1학기 4기"
	keys, _ := ParseClassStart(in)
	if got := FormatClassStart(keys); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}

func TestReconcile_FreshPlanReplacesSeed(t *testing.T) {
	p := DefaultPlan(2026)
	added := Reconcile(p, "2027년 1학기 2기", false)
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
	if len(p.Semesters) != 1 {
		t.Fatalf("seed not replaced: %d semesters", len(p.Semesters))
	}
	s := p.Semesters[0]
	if s.Year != 2027 || s.Term != 1 || s.ClassNumber != 2 {
		t.Fatalf("semester = %+v", s)
	}
	if s.Label != "2027년 1학기 2기" {
		t.Fatalf("label = %q", s.Label)
	}
}

func TestReconcile_EmptyStringKeepsSeed(t *testing.T) {
	p := DefaultPlan(2026)
	if added := Reconcile(p, "", false); added != 0 {
		t.Fatalf("added = %d, want 0", added)
	}
	if len(p.Semesters) != 2 {
		t.Fatalf("seed lost: %d semesters", len(p.Semesters))
	}
}

func TestReconcile_PersistedPlanOnlyAppendsMissing(t *testing.T) {
	p := NewPlan()
	if _, err := p.addSemesterExact(2026, 1, 1); err != nil {
		t.Fatalf("seed: %v", err)
	}

	added := Reconcile(p, "2026년 1학기 1기, 2026년 2학기 1기", true)
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
	if len(p.Semesters) != 2 {
		t.Fatalf("semesters = %d, want 2", len(p.Semesters))
	}

	// second run is a no-op
	if again := Reconcile(p, "2026년 1학기 1기, 2026년 2학기 1기", true); again != 0 {
		t.Fatalf("rerun added = %d, want 0", again)
	}
	if len(p.Semesters) != 2 {
		t.Fatalf("rerun grew the plan: %d semesters", len(p.Semesters))
	}
}
