// file: internals/seeds/self_study_preset_seed.go
package seeds

import (
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
)

func selfStudyPreset(stage int, category, name string, credits, sortOrder int) subjectModel.SelfStudyPresetModel {
	return subjectModel.SelfStudyPresetModel{
		SelfStudyPresetStage:     stage,
		SelfStudyPresetCategory:  category,
		SelfStudyPresetName:      name,
		SelfStudyPresetCredits:   credits,
		SelfStudyPresetSortOrder: sortOrder,
	}
}

// selfStudyPresets: the 독학사 exam catalog. Stage 1 is the general liberal
// arts round; later stages carry the major name that the credit-type rule
// compares against the student's declared major.
func selfStudyPresets() []subjectModel.SelfStudyPresetModel {
	var out []subjectModel.SelfStudyPresetModel

	stage1 := []string{
		"국어",
		"국사",
		"외국어(영어)",
		"현대사회와 윤리",
		"심리학개론",
	}
	for i, name := range stage1 {
		out = append(out, selfStudyPreset(1, "교양", name, 4, i+1))
	}

	stage2 := []struct {
		category string
		name     string
	}{
		{"사회복지학", "사회복지학개론"},
		{"사회복지학", "인간행동과 사회환경"},
		{"심리학", "발달심리학"},
		{"심리학", "성격심리학"},
		{"경영학", "경영학원론"},
	}
	for i, p := range stage2 {
		out = append(out, selfStudyPreset(2, p.category, p.name, 5, i+1))
	}

	stage3 := []struct {
		category string
		name     string
	}{
		{"사회복지학", "사회복지실천론"},
		{"사회복지학", "사회복지조사론"},
		{"심리학", "상담심리학"},
		{"경영학", "마케팅원론"},
	}
	for i, p := range stage3 {
		out = append(out, selfStudyPreset(3, p.category, p.name, 5, i+1))
	}

	stage4 := []struct {
		category string
		name     string
	}{
		{"사회복지학", "사회복지정책론"},
		{"사회복지학", "사회복지행정론"},
		{"심리학", "임상심리학"},
	}
	for i, p := range stage4 {
		out = append(out, selfStudyPreset(4, p.category, p.name, 6, i+1))
	}

	return out
}
