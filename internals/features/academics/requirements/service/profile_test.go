package service

import (
	"testing"

	"bokjisa_backend/internals/constants"
)

func sumTargets(p RequirementProfile) int {
	total := 0
	for _, ct := range p.CategoryTargets {
		total += ct.Target
	}
	return total
}

func TestResolveProfile_CategoryTargetsAlwaysSumToTotal(t *testing.T) {
	levels := []string{
		"", "고졸", "2년제중퇴", "3년제중퇴", "4년제중퇴",
		"2년제졸업", "3년제졸업", "4년제졸업", "검정고시",
	}
	degrees := []string{"", "학사", "전문학사", "없음"}
	courses := []string{"사회복지사2급(구법)", "사회복지사2급", "사회복지현장실습", "X"}

	for _, lv := range levels {
		for _, dg := range degrees {
			for _, cs := range courses {
				p := ResolveProfile(lv, cs, dg)
				if got := sumTargets(p); got != p.TotalTarget {
					t.Fatalf("ResolveProfile(%q,%q,%q): targets sum %d != total %d", lv, cs, dg, got, p.TotalTarget)
				}
				if p.IsExtendedProgram != (len(p.CategoryTargets) > 1) {
					t.Fatalf("ResolveProfile(%q,%q,%q): IsExtendedProgram inconsistent", lv, cs, dg)
				}
			}
		}
	}
}

func TestResolveProfile_PracticumIgnoresEducationLevel(t *testing.T) {
	for _, lv := range []string{"고졸", "4년제졸업", ""} {
		p := ResolveProfile(lv, "사회복지현장실습", "학사")
		if p.TotalTarget != 6 {
			t.Fatalf("practicum total = %d, want 6", p.TotalTarget)
		}
		if p.SubjectCountTarget == nil || *p.SubjectCountTarget != 6 {
			t.Fatalf("practicum subject count target = %v, want 6", p.SubjectCountTarget)
		}
		if p.Practicum == nil || p.Practicum.RequiredCount != 4 || p.Practicum.ElectiveCount != 2 {
			t.Fatalf("practicum requirement = %+v, want 4/2", p.Practicum)
		}
		if p.IsExtendedProgram {
			t.Fatalf("practicum profile must not be extended")
		}
	}
}

func TestResolveProfile_AttritionBachelor(t *testing.T) {
	p := ResolveProfile("고졸", "사회복지사2급(구법)", "학사")
	if p.TotalTarget != 140 {
		t.Fatalf("total = %d, want 140", p.TotalTarget)
	}
	want := map[string]int{"전공": 60, "교양": 30, "일반": 50}
	for _, ct := range p.CategoryTargets {
		if want[ct.Label] != ct.Target {
			t.Fatalf("target %s = %d, want %d", ct.Label, ct.Target, want[ct.Label])
		}
	}
	if !p.IsExtendedProgram {
		t.Fatalf("expected extended program")
	}
}

func TestResolveProfile_AttritionOtherDegree(t *testing.T) {
	p := ResolveProfile("2년제중퇴", "사회복지사2급", "전문학사")
	if p.TotalTarget != 80 {
		t.Fatalf("total = %d, want 80", p.TotalTarget)
	}
	want := map[string]int{"전공": 45, "교양": 15, "일반": 20}
	for _, ct := range p.CategoryTargets {
		if want[ct.Label] != ct.Target {
			t.Fatalf("target %s = %d, want %d", ct.Label, ct.Target, want[ct.Label])
		}
	}
}

func TestResolveProfile_JuniorCollegeGraduateSeekingBachelor(t *testing.T) {
	for _, lv := range []string{"2년제졸업", "3년제졸업"} {
		p := ResolveProfile(lv, "사회복지사2급", "학사")
		if p.TotalTarget != 140 || !p.IsExtendedProgram {
			t.Fatalf("%s + 학사: total = %d extended = %v, want 140/true", lv, p.TotalTarget, p.IsExtendedProgram)
		}
	}
	// a 4-year graduate already holds a bachelor's: minimal profile
	p := ResolveProfile("4년제졸업", "사회복지사2급", "학사")
	if p.TotalTarget != 51 {
		t.Fatalf("4년제졸업 + 학사: total = %d, want 51", p.TotalTarget)
	}
}

func TestResolveProfile_MinimalFallback(t *testing.T) {
	p := ResolveProfile("4년제졸업", "X", "없음")
	if p.TotalTarget != 51 {
		t.Fatalf("total = %d, want 51", p.TotalTarget)
	}
	if p.SubjectCountTarget == nil || *p.SubjectCountTarget != 8 {
		t.Fatalf("subject count target = %v, want 8", p.SubjectCountTarget)
	}
	if len(p.CategoryTargets) != 1 || p.CategoryTargets[0].Label != "전공" || p.CategoryTargets[0].Target != 51 {
		t.Fatalf("category targets = %+v, want single 전공 51", p.CategoryTargets)
	}

	// unset education level falls back to the same profile
	p2 := ResolveProfile("", "X", "")
	if p2.TotalTarget != 51 {
		t.Fatalf("fallback total = %d, want 51", p2.TotalTarget)
	}
}

func TestSelfStudyCreditType(t *testing.T) {
	if got := SelfStudyCreditType(1, "사회복지학", "사회복지학"); got != constants.CategoryLiberal {
		t.Fatalf("stage 1 = %s, want 교양", got)
	}
	if got := SelfStudyCreditType(2, "사회복지학", "사회복지학"); got != constants.CategoryMajor {
		t.Fatalf("stage 2 matching major = %s, want 전공", got)
	}
	if got := SelfStudyCreditType(3, "경영학", "사회복지학"); got != constants.CategoryGeneral {
		t.Fatalf("stage 3 other category = %s, want 일반", got)
	}
	// exact-match rule: a stray variant spelling silently lands in 일반
	if got := SelfStudyCreditType(2, "사회복지학", "사회 복지학"); got != constants.CategoryGeneral {
		t.Fatalf("variant spelling = %s, want 일반 (exact-match rule)", got)
	}
	// whitespace is the one thing NormalizeMajor forgives
	if got := SelfStudyCreditType(2, "사회복지학", " 사회복지학 "); got != constants.CategoryMajor {
		t.Fatalf("trimmed major = %s, want 전공", got)
	}
}
