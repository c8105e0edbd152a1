// file: internals/features/academics/progress/service/aggregate.go
package service

import (
	"bokjisa_backend/internals/constants"
	creditModel "bokjisa_backend/internals/features/academics/creditsources/model"
	requirements "bokjisa_backend/internals/features/academics/requirements/service"
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
)

// CreditTotals is the pure aggregation result. ByCategory holds planned
// subjects, prior-institution subjects and self-study credit folded together;
// certificate credit is fungible with nothing and lands in the grand total
// only.
type CreditTotals struct {
	ByCategory     map[string]int `json:"by_category"`
	CertTotal      int            `json:"cert_total"`
	SelfStudyTotal int            `json:"self_study_total"`
	GrandTotal     int            `json:"grand_total"`
}

// AggregateCredits sums every credit source a student has. Order of the
// inputs never changes the result.
func AggregateCredits(
	assigned []subjectModel.SubjectModel,
	prior []creditModel.PriorSubjectModel,
	certs []creditModel.CertificateCreditModel,
	selfStudy []creditModel.SelfStudyCreditModel,
) CreditTotals {
	totals := CreditTotals{ByCategory: map[string]int{}}

	for _, s := range assigned {
		totals.ByCategory[s.SubjectCategory] += s.SubjectCredits
	}
	for _, p := range prior {
		totals.ByCategory[p.PriorSubjectCategory] += p.PriorSubjectCredits
	}
	for _, s := range selfStudy {
		totals.ByCategory[s.SelfStudyCreditType] += s.SelfStudyCreditCredits
		totals.SelfStudyTotal += s.SelfStudyCreditCredits
	}
	for _, c := range certs {
		totals.CertTotal += c.CertificateCreditCredits
	}

	for _, n := range totals.ByCategory {
		totals.GrandTotal += n
	}
	totals.GrandTotal += totals.CertTotal
	return totals
}

// Percent is the display rule for every progress bar: rounded to the nearest
// integer percent, clamped to [0, 100]. Overshooting a target never renders
// past full.
func Percent(earned, target int) int {
	if target <= 0 || earned <= 0 {
		return 0
	}
	pct := (earned*100 + target/2) / target
	if pct > 100 {
		return 100
	}
	return pct
}

// PracticumCounts tallies fieldwork subjects against the 필수/선택 quotas.
type PracticumCounts struct {
	RequiredDone int `json:"required_done"`
	ElectiveDone int `json:"elective_done"`
}

// CountPracticum classifies planned subjects by their requirement flag.
// Prior-institution 전공 subjects have no flag of their own and may fill the
// elective quota only, never the required one.
func CountPracticum(assigned []subjectModel.SubjectModel, prior []creditModel.PriorSubjectModel) PracticumCounts {
	var counts PracticumCounts
	for _, s := range assigned {
		if s.SubjectRequirement == nil {
			continue
		}
		switch *s.SubjectRequirement {
		case constants.RequirementRequired:
			counts.RequiredDone++
		case constants.RequirementElective:
			counts.ElectiveDone++
		}
	}
	for _, p := range prior {
		if p.PriorSubjectCategory == constants.CategoryMajor {
			counts.ElectiveDone++
		}
	}
	return counts
}

// CategoryProgress is one rendered requirement bar.
type CategoryProgress struct {
	Label   string `json:"label"`
	Earned  int    `json:"earned"`
	Target  int    `json:"target"`
	Percent int    `json:"percent"`
}

// PracticumProgress reports the two fieldwork quotas side by side.
type PracticumProgress struct {
	RequiredDone   int  `json:"required_done"`
	RequiredTarget int  `json:"required_target"`
	ElectiveDone   int  `json:"elective_done"`
	ElectiveTarget int  `json:"elective_target"`
	Fulfilled      bool `json:"fulfilled"`
}

// Progress is the full projection returned to the admin screen.
type Progress struct {
	Profile      requirements.RequirementProfile `json:"profile"`
	Totals       CreditTotals                    `json:"totals"`
	Categories   []CategoryProgress              `json:"categories"`
	TotalEarned  int                             `json:"total_earned"`
	TotalTarget  int                             `json:"total_target"`
	TotalPercent int                             `json:"total_percent"`
	SubjectCount int                             `json:"subject_count"`
	Practicum    *PracticumProgress              `json:"practicum,omitempty"`
}

// ProjectProgress joins the aggregated totals with a resolved requirement
// profile. Each category bar sums the buckets its target names; the headline
// bar runs grand total against the profile's total target.
func ProjectProgress(
	profile requirements.RequirementProfile,
	totals CreditTotals,
	practicum PracticumCounts,
	subjectCount int,
) Progress {
	out := Progress{
		Profile:      profile,
		Totals:       totals,
		TotalEarned:  totals.GrandTotal,
		TotalTarget:  profile.TotalTarget,
		TotalPercent: Percent(totals.GrandTotal, profile.TotalTarget),
		SubjectCount: subjectCount,
	}

	for _, target := range profile.CategoryTargets {
		earned := 0
		for _, cat := range target.Categories {
			earned += totals.ByCategory[cat]
		}
		out.Categories = append(out.Categories, CategoryProgress{
			Label:   target.Label,
			Earned:  earned,
			Target:  target.Target,
			Percent: Percent(earned, target.Target),
		})
	}

	if profile.Practicum != nil {
		out.Practicum = &PracticumProgress{
			RequiredDone:   practicum.RequiredDone,
			RequiredTarget: profile.Practicum.RequiredCount,
			ElectiveDone:   practicum.ElectiveDone,
			ElectiveTarget: profile.Practicum.ElectiveCount,
			Fulfilled: practicum.RequiredDone >= profile.Practicum.RequiredCount &&
				practicum.ElectiveDone >= profile.Practicum.ElectiveCount,
		}
	}
	return out
}
