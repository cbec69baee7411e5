package constants

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type EducationLevel string

const (
	EducationOLevel EducationLevel = "O_LEVEL"
	EducationALevel EducationLevel = "A_LEVEL"
	EducationOther  EducationLevel = "OTHER"
)

type TeacherEducationLevel string

const (
	TeacherDiploma TeacherEducationLevel = "DIPLOMA"
	TeacherDegree  TeacherEducationLevel = "DEGREE"
	TeacherMasters TeacherEducationLevel = "MASTERS"
	TeacherPhD     TeacherEducationLevel = "PHD"
)

type Grade string

// GradeUnset is stored when no grade has been recorded yet.
const (
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeE     Grade = "E"
	GradeF     Grade = "F"
	GradeU     Grade = "U"
	GradeUnset Grade = "X"
)

type SubjectName string

const (
	SubjectMaths            SubjectName = "MATHS"
	SubjectEnglish          SubjectName = "ENGLISH"
	SubjectPhysics          SubjectName = "PHYSICS"
	SubjectChemistry        SubjectName = "CHEMISTRY"
	SubjectBiology          SubjectName = "BIOLOGY"
	SubjectGeography        SubjectName = "GEOGRAPHY"
	SubjectHistory          SubjectName = "HISTORY"
	SubjectComputerScience  SubjectName = "COMPUTER_SCIENCE"
	SubjectAccounting       SubjectName = "ACCOUNTING"
	SubjectEconomics        SubjectName = "ECONOMICS"
	SubjectLiterature       SubjectName = "LITERATURE"
	SubjectReligiousStudies SubjectName = "RELIGIOUS_STUDIES"
	SubjectAgriculture      SubjectName = "AGRICULTURE"
	SubjectArt              SubjectName = "ART"
	SubjectFrench           SubjectName = "FRENCH"
	SubjectBusinessStudies  SubjectName = "BUSINESS_STUDIES"
)

// Validator oneof lists. Keep in sync with the constants above.
const (
	GenderOneOf                = "MALE FEMALE OTHER"
	EducationLevelOneOf        = "O_LEVEL A_LEVEL OTHER"
	TeacherEducationLevelOneOf = "DIPLOMA DEGREE MASTERS PHD"
	GradeOneOf                 = "A B C D E F U X"
	SubjectNameOneOf           = "MATHS ENGLISH PHYSICS CHEMISTRY BIOLOGY GEOGRAPHY HISTORY COMPUTER_SCIENCE ACCOUNTING ECONOMICS LITERATURE RELIGIOUS_STUDIES AGRICULTURE ART FRENCH BUSINESS_STUDIES"
)

var subjectAliases = map[string]SubjectName{
	"MATH":        SubjectMaths,
	"MATHEMATICS": SubjectMaths,
	"CS":          SubjectComputerScience,
	"RE":          SubjectReligiousStudies,
}

// NormalizeSubjectName upper-cases and resolves common aliases ("MATH" → MATHS).
func NormalizeSubjectName(raw string) SubjectName {
	up := SubjectName(toUpperSnake(raw))
	if alias, ok := subjectAliases[string(up)]; ok {
		return alias
	}
	return up
}

func toUpperSnake(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			b = append(b, ch-'a'+'A')
		case ch == ' ' || ch == '-':
			b = append(b, '_')
		default:
			b = append(b, ch)
		}
	}
	return string(b)
}
