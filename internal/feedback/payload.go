// Package feedback converts typed interview feedback forms to and from the single
// text field they are persisted in.
package feedback

import "github.com/maxaizer/fit-core/internal/domain/models"

// Payload is one of Prequalification, Qualification or Generic.
type Payload interface {
	kind() payloadKind
}

type payloadKind int

const (
	kindGeneric payloadKind = iota
	kindPrequalification
	kindQualification
)

type Prequalification struct {
	TechnicalSkills   string `json:"technical_skills" validate:"required"`
	Experience        string `json:"experience" validate:"required"`
	Motivation        string `json:"motivation" validate:"required"`
	SalaryExpectation string `json:"salary_expectation"`
	Availability      string `json:"availability"`
	Remarks           string `json:"remarks"`
}

func (Prequalification) kind() payloadKind { return kindPrequalification }

type Qualification struct {
	TechnicalSkillsDeep string `json:"technical_skills_deep" validate:"required"`
	SoftSkills          string `json:"soft_skills" validate:"required"`
	CultureFit          string `json:"culture_fit" validate:"required"`
	Potential           string `json:"potential" validate:"required"`
	Remarks             string `json:"remarks"`
}

func (Qualification) kind() payloadKind { return kindQualification }

type Generic struct {
	Feedback string
}

func (Generic) kind() payloadKind { return kindGeneric }

func kindOf(t models.InterviewType) payloadKind {
	switch t {
	case models.InterviewPrequalification:
		return kindPrequalification
	case models.InterviewQualification:
		return kindQualification
	default:
		return kindGeneric
	}
}

// Empty returns the payload shown when no feedback has been recorded yet.
func Empty(t models.InterviewType) Payload {
	switch kindOf(t) {
	case kindPrequalification:
		return Prequalification{}
	case kindQualification:
		return Qualification{}
	default:
		return Generic{}
	}
}

var (
	prequalificationKeys = []string{"technical_skills", "experience", "motivation",
		"salary_expectation", "availability", "remarks"}
	prequalificationRequired = []string{"technical_skills", "experience", "motivation"}

	qualificationKeys = []string{"technical_skills_deep", "soft_skills", "culture_fit",
		"potential", "remarks"}
	qualificationRequired = []string{"technical_skills_deep", "soft_skills", "culture_fit", "potential"}
)

func prequalificationFrom(fields map[string]string) Prequalification {
	return Prequalification{
		TechnicalSkills:   fields["technical_skills"],
		Experience:        fields["experience"],
		Motivation:        fields["motivation"],
		SalaryExpectation: fields["salary_expectation"],
		Availability:      fields["availability"],
		Remarks:           fields["remarks"],
	}
}

func qualificationFrom(fields map[string]string) Qualification {
	return Qualification{
		TechnicalSkillsDeep: fields["technical_skills_deep"],
		SoftSkills:          fields["soft_skills"],
		CultureFit:          fields["culture_fit"],
		Potential:           fields["potential"],
		Remarks:             fields["remarks"],
	}
}
