package service

import (
	"testing"

	"bokjisa_backend/internals/constants"
	creditModel "bokjisa_backend/internals/features/academics/creditsources/model"
	requirements "bokjisa_backend/internals/features/academics/requirements/service"
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
)

func subj(category string, credits int) subjectModel.SubjectModel {
	return subjectModel.SubjectModel{SubjectCategory: category, SubjectCredits: credits}
}

func priorSubj(category string, credits int) creditModel.PriorSubjectModel {
	return creditModel.PriorSubjectModel{PriorSubjectCategory: category, PriorSubjectCredits: credits}
}

func selfStudy(creditType string, credits int) creditModel.SelfStudyCreditModel {
	return creditModel.SelfStudyCreditModel{SelfStudyCreditType: creditType, SelfStudyCreditCredits: credits}
}

func cert(credits int) creditModel.CertificateCreditModel {
	return creditModel.CertificateCreditModel{CertificateCreditCredits: credits}
}

func TestAggregateCredits_FoldsSourcesIntoCategories(t *testing.T) {
	// planned 20 + prior 3 + self-study 4, all 전공, plus a 10-credit cert
	totals := AggregateCredits(
		[]subjectModel.SubjectModel{
			subj(constants.CategoryMajor, 12),
			subj(constants.CategoryMajor, 8),
		},
		[]creditModel.PriorSubjectModel{priorSubj(constants.CategoryMajor, 3)},
		[]creditModel.CertificateCreditModel{cert(10)},
		[]creditModel.SelfStudyCreditModel{selfStudy(constants.CategoryMajor, 4)},
	)

	if got := totals.ByCategory[constants.CategoryMajor]; got != 27 {
		t.Fatalf("전공 = %d, want 27", got)
	}
	if totals.SelfStudyTotal != 4 {
		t.Fatalf("self-study total = %d, want 4", totals.SelfStudyTotal)
	}
	if totals.CertTotal != 10 {
		t.Fatalf("cert total = %d, want 10", totals.CertTotal)
	}
	if totals.GrandTotal != 37 {
		t.Fatalf("grand total = %d, want 37", totals.GrandTotal)
	}
}

func TestAggregateCredits_CertificateStaysOutOfCategories(t *testing.T) {
	totals := AggregateCredits(nil, nil, []creditModel.CertificateCreditModel{cert(20)}, nil)
	if len(totals.ByCategory) != 0 {
		t.Fatalf("certificate leaked into categories: %v", totals.ByCategory)
	}
	if totals.GrandTotal != 20 {
		t.Fatalf("grand total = %d, want 20", totals.GrandTotal)
	}
}

func TestAggregateCredits_OrderIndependent(t *testing.T) {
	a := []subjectModel.SubjectModel{
		subj(constants.CategoryMajor, 3),
		subj(constants.CategoryLiberal, 2),
		subj(constants.CategoryMajor, 4),
	}
	b := []subjectModel.SubjectModel{a[2], a[0], a[1]}

	t1 := AggregateCredits(a, nil, nil, nil)
	t2 := AggregateCredits(b, nil, nil, nil)
	if t1.GrandTotal != t2.GrandTotal ||
		t1.ByCategory[constants.CategoryMajor] != t2.ByCategory[constants.CategoryMajor] ||
		t1.ByCategory[constants.CategoryLiberal] != t2.ByCategory[constants.CategoryLiberal] {
		t.Fatalf("order changed the result: %+v vs %+v", t1, t2)
	}
}

func TestPercent_RoundsAndClamps(t *testing.T) {
	cases := []struct {
		earned, target, want int
	}{
		{0, 51, 0},
		{26, 51, 51}, // 50.98 rounds up, never floors to 50
		{27, 51, 53}, // 52.94 rounds up
		{1, 51, 2},   // 1.96 rounds up
		{25, 51, 49}, // 49.01 rounds down
		{51, 51, 100},
		{90, 51, 100}, // overshoot renders as full, never past it
		{-3, 51, 0},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := Percent(tc.earned, tc.target); got != tc.want {
			t.Fatalf("Percent(%d, %d) = %d, want %d", tc.earned, tc.target, got, tc.want)
		}
	}
}

func TestCountPracticum_PriorMajorFillsElectiveOnly(t *testing.T) {
	req := constants.RequirementRequired
	elec := constants.RequirementElective
	assigned := []subjectModel.SubjectModel{
		{SubjectRequirement: &req, SubjectCategory: constants.CategoryMajor, SubjectCredits: 1},
		{SubjectRequirement: &req, SubjectCategory: constants.CategoryMajor, SubjectCredits: 1},
		{SubjectRequirement: &req, SubjectCategory: constants.CategoryMajor, SubjectCredits: 1},
		{SubjectRequirement: &elec, SubjectCategory: constants.CategoryMajor, SubjectCredits: 1},
	}
	prior := []creditModel.PriorSubjectModel{
		priorSubj(constants.CategoryMajor, 1),
		priorSubj(constants.CategoryLiberal, 1), // non-major prior credit is ignored here
	}

	counts := CountPracticum(assigned, prior)
	if counts.RequiredDone != 3 {
		t.Fatalf("required = %d, want 3 (prior credit never fills the required quota)", counts.RequiredDone)
	}
	if counts.ElectiveDone != 2 {
		t.Fatalf("elective = %d, want 2", counts.ElectiveDone)
	}
}

func TestProjectProgress_PracticumNotFulfilledOnRequiredShortfall(t *testing.T) {
	profile := requirements.ResolveProfile("4년제대학교졸업", "사회복지현장실습", "")
	if profile.Practicum == nil {
		t.Fatalf("practicum profile expected")
	}

	// 3 of 4 required done, electives complete: 5/6 subjects but unfulfilled
	progress := ProjectProgress(profile, CreditTotals{ByCategory: map[string]int{constants.CategoryMajor: 5}},
		PracticumCounts{RequiredDone: 3, ElectiveDone: 2}, 5)

	if progress.Practicum == nil {
		t.Fatalf("practicum progress missing")
	}
	if progress.Practicum.Fulfilled {
		t.Fatalf("fulfilled with only %d/%d required subjects", 3, profile.Practicum.RequiredCount)
	}
	if progress.Practicum.RequiredTarget != 4 || progress.Practicum.ElectiveTarget != 2 {
		t.Fatalf("targets = %d/%d, want 4/2", progress.Practicum.RequiredTarget, progress.Practicum.ElectiveTarget)
	}
}

func TestProjectProgress_ExtendedProfileBars(t *testing.T) {
	profile := requirements.ResolveProfile("고졸", "사회복지사2급", "학사")
	totals := AggregateCredits(
		[]subjectModel.SubjectModel{
			subj(constants.CategoryMajor, 30),
			subj(constants.CategoryLiberal, 15),
			subj(constants.CategoryGeneral, 60), // over the 50 general target
		},
		nil, nil, nil,
	)

	progress := ProjectProgress(profile, totals, PracticumCounts{}, 3)
	if progress.TotalTarget != 140 {
		t.Fatalf("total target = %d, want 140", progress.TotalTarget)
	}
	if progress.TotalPercent != 75 { // 105/140
		t.Fatalf("total percent = %d, want 75", progress.TotalPercent)
	}

	byLabel := map[string]CategoryProgress{}
	for _, c := range progress.Categories {
		byLabel[c.Label] = c
	}
	if byLabel[constants.CategoryMajor].Percent != 50 {
		t.Fatalf("전공 percent = %d, want 50", byLabel[constants.CategoryMajor].Percent)
	}
	if byLabel[constants.CategoryGeneral].Percent != 100 {
		t.Fatalf("일반 percent = %d, want 100 (capped)", byLabel[constants.CategoryGeneral].Percent)
	}
	if byLabel[constants.CategoryGeneral].Earned != 60 {
		t.Fatalf("일반 earned = %d, want the raw 60", byLabel[constants.CategoryGeneral].Earned)
	}
	if progress.Practicum != nil {
		t.Fatalf("non-practicum profile must not carry practicum progress")
	}
}
