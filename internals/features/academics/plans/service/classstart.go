// file: internals/features/academics/plans/service/classstart.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The student record's class_start field carries one or more cohort
// descriptors as a comma-joined string, e.g.
//
//	"2026년 1학기 3기, 2026년 2학기 1기"
//
// This file is the one place that knows the grammar; nothing else in the
// codebase regexes the raw field.

var cohortTokenRe = regexp.MustCompile(`^(\d{4})년\s*([12])학기\s*(\d+)기$`)

// CohortKey identifies one cohort independent of its slot id.
type CohortKey struct {
	Year        int
	Term        int
	ClassNumber int
}

// ParseClassStart extracts the well-formed cohort descriptors. Malformed
// tokens are skipped, never raised: a broken field must not take the plan
// screen down. Skipped tokens come back for diagnostics.
func ParseClassStart(s string) (keys []CohortKey, skipped []string) {
	for _, raw := range strings.Split(s, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		m := cohortTokenRe.FindStringSubmatch(token)
		if m == nil {
			skipped = append(skipped, token)
			continue
		}
		year, _ := strconv.Atoi(m[1])
		term, _ := strconv.Atoi(m[2])
		classNumber, _ := strconv.Atoi(m[3])
		if classNumber < 1 {
			skipped = append(skipped, token)
			continue
		}
		keys = append(keys, CohortKey{Year: year, Term: term, ClassNumber: classNumber})
	}
	return keys, skipped
}

// FormatClassStart is the inverse of ParseClassStart for well-formed input.
func FormatClassStart(keys []CohortKey) string {
	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		tokens = append(tokens, fmt.Sprintf("%d년 %d학기 %d기", k.Year, k.Term, k.ClassNumber))
	}
	return strings.Join(tokens, ", ")
}

// Reconcile syncs the plan with the student's cohort string.
//
//   - hadPersisted=false: the parsed candidates fully replace whatever seed
//     the plan holds (if the string yields none, the seed stays).
//   - hadPersisted=true: only candidates not already represented by
//     (year, term, class_number) are appended.
//
// Re-running against an already-synced plan is a no-op.
func Reconcile(p *Plan, classStart string, hadPersisted bool) (added int) {
	keys, _ := ParseClassStart(classStart)
	if len(keys) == 0 {
		return 0
	}

	if !hadPersisted {
		// fresh plan: the cohort string wins over the default seed
		*p = *NewPlan()
	}

	for _, k := range keys {
		if p.hasCohort(k) {
			continue
		}
		if _, err := p.addSemesterExact(k.Year, k.Term, k.ClassNumber); err == nil {
			added++
		}
	}
	return added
}

func (p *Plan) hasCohort(k CohortKey) bool {
	for _, s := range p.Semesters {
		if s.Year == k.Year && s.Term == k.Term && s.ClassNumber == k.ClassNumber {
			return true
		}
	}
	return false
}
