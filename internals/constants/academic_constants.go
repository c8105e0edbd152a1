package constants

// Subject categories (과목 이수구분)
const (
	CategoryMajor   = "전공"
	CategoryLiberal = "교양"
	CategoryGeneral = "일반"
)

// Subject class type (수업 형태)
const (
	SubjectTypeTheory   = "이론"
	SubjectTypePractice = "실습"
)

// Required/elective tag (필수/선택)
const (
	RequirementRequired = "필수"
	RequirementElective = "선택"
)

// Desired degree (희망 학위)
const (
	DegreeBachelor  = "학사"
	DegreeAssociate = "전문학사"
	DegreeNone      = "없음"
)

// Education levels (최종 학력)
const (
	EduHighSchool       = "고졸"
	EduCollege2Dropout  = "2년제중퇴"
	EduCollege3Dropout  = "3년제중퇴"
	EduUniversityDrop   = "4년제중퇴"
	EduCollege2Graduate = "2년제졸업"
	EduCollege3Graduate = "3년제졸업"
	EduUniversityGrad   = "4년제졸업"
)

// PracticumMarker flags the fieldwork-only course names (e.g. "사회복지현장실습").
const PracticumMarker = "실습"

func ValidCategory(s string) bool {
	return s == CategoryMajor || s == CategoryLiberal || s == CategoryGeneral
}
