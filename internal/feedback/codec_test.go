package feedback

import (
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Encode_StructuredKeepsEveryKey(t *testing.T) {
	encoded, err := Encode(models.InterviewPrequalification, Prequalification{TechnicalSkills: "go"})
	require.NoError(t, err)

	assert.Equal(t, `{"technical_skills":"go","experience":"","motivation":"",`+
		`"salary_expectation":"","availability":"","remarks":""}`, encoded)
}

func Test_Encode_GenericIsPassThrough(t *testing.T) {
	for _, interviewType := range []models.InterviewType{models.InterviewRh, models.InterviewTechnical,
		models.InterviewClient, models.InterviewOther, "panel"} {

		encoded, err := Encode(interviewType, Generic{Feedback: "solid <b>candidate</b>\n"})
		require.NoError(t, err)
		assert.Equal(t, "solid <b>candidate</b>\n", encoded)
		assert.Equal(t, Generic{Feedback: encoded}, Decode(interviewType, encoded))
	}
}

func Test_Encode_MismatchedPayload(t *testing.T) {
	_, err := Encode(models.InterviewQualification, Prequalification{})
	assert.ErrorIs(t, err, ErrPayloadMismatch)

	_, err = Encode(models.InterviewRh, Qualification{})
	assert.ErrorIs(t, err, ErrPayloadMismatch)

	_, err = Encode(models.InterviewPrequalification, nil)
	assert.ErrorIs(t, err, ErrPayloadMismatch)
}

func Test_RoundTrip_Prequalification(t *testing.T) {
	values := []string{"", "x", "with \"quotes\" and {braces}", "multi\nline", "ünïcødé <&>"}

	for mask := 0; mask < 1<<6; mask++ {
		pick := func(bit int) string {
			if mask&(1<<bit) == 0 {
				return ""
			}
			return values[1+bit%(len(values)-1)]
		}
		payload := Prequalification{
			TechnicalSkills:   pick(0),
			Experience:        pick(1),
			Motivation:        pick(2),
			SalaryExpectation: pick(3),
			Availability:      pick(4),
			Remarks:           pick(5),
		}

		encoded, err := Encode(models.InterviewPrequalification, payload)
		require.NoError(t, err)
		assert.Equal(t, payload, Decode(models.InterviewPrequalification, encoded))
	}
}

func Test_RoundTrip_Qualification(t *testing.T) {
	values := []string{"strong", "", "}{", "\\", "  padded  "}

	for mask := 0; mask < 1<<5; mask++ {
		pick := func(bit int) string {
			if mask&(1<<bit) == 0 {
				return ""
			}
			return values[bit]
		}
		payload := Qualification{
			TechnicalSkillsDeep: pick(0),
			SoftSkills:          pick(1),
			CultureFit:          pick(2),
			Potential:           pick(3),
			Remarks:             pick(4),
		}

		encoded, err := Encode(models.InterviewQualification, payload)
		require.NoError(t, err)
		assert.Equal(t, payload, Decode(models.InterviewQualification, encoded))
	}
}

func Test_Decode_GarbageYieldsEmptyPayload(t *testing.T) {
	inputs := []string{"", "not json at all", "{", "{\"technical_skills\": ", "[1,2,3]", "null", "{}"}

	for _, input := range inputs {
		assert.Equal(t, Prequalification{}, Decode(models.InterviewPrequalification, input))
		assert.Equal(t, Qualification{}, Decode(models.InterviewQualification, input))
	}
}

func Test_Decode_ExtractsEmbeddedBlock(t *testing.T) {
	raw := "Notes from the call:\n```json\n" +
		`{"technical_skills_deep":"strong","soft_skills":"good","culture_fit":"yes","potential":"high","remarks":""}` +
		"\n```\nsee you {soon}"

	decoded := Decode(models.InterviewQualification, raw)

	assert.Equal(t, Qualification{
		TechnicalSkillsDeep: "strong",
		SoftSkills:          "good",
		CultureFit:          "yes",
		Potential:           "high",
	}, decoded)
}

func Test_Decode_SkipsMalformedBlocks(t *testing.T) {
	raw := `draft {"technical_skills": "go" ... then {"technical_skills":"go","experience":"5y","motivation":"high"}`

	decoded := Decode(models.InterviewPrequalification, raw)

	assert.Equal(t, Prequalification{TechnicalSkills: "go", Experience: "5y", Motivation: "high"}, decoded)
}

func Test_Decode_LegacyValuesAreCoerced(t *testing.T) {
	raw := `{"technical_skills": 4, "experience": true, "motivation": null, "remarks": ["a", "b"], "extra": "ignored"}`

	decoded := Decode(models.InterviewPrequalification, raw)

	assert.Equal(t, Prequalification{TechnicalSkills: "4", Experience: "true", Remarks: `["a","b"]`}, decoded)
}

func Test_Decode_AfterTypeChangeDiscardsForeignPayload(t *testing.T) {
	encoded, err := Encode(models.InterviewPrequalification, Prequalification{
		TechnicalSkills: "go", Experience: "3y", Motivation: "high", Remarks: "keep?",
	})
	require.NoError(t, err)

	assert.Equal(t, Qualification{}, Decode(models.InterviewQualification, encoded))
	assert.Equal(t, Generic{Feedback: encoded}, Decode(models.InterviewTechnical, encoded))
}

func Test_QualificationScenario_SubmitAndReopen(t *testing.T) {
	submitted := Qualification{
		TechnicalSkillsDeep: "strong",
		SoftSkills:          "good",
		CultureFit:          "yes",
		Potential:           "high",
		Remarks:             "",
	}
	require.NoError(t, Validate(submitted))

	stored, err := Encode(models.InterviewQualification, submitted)
	require.NoError(t, err)

	reopened, ok := Decode(models.InterviewQualification, stored).(Qualification)
	require.True(t, ok)
	assert.Equal(t, "strong", reopened.TechnicalSkillsDeep)
	assert.Equal(t, "good", reopened.SoftSkills)
	assert.Equal(t, "yes", reopened.CultureFit)
	assert.Equal(t, "high", reopened.Potential)
	assert.Empty(t, reopened.Remarks)
}

func Test_Empty(t *testing.T) {
	assert.Equal(t, Prequalification{}, Empty(models.InterviewPrequalification))
	assert.Equal(t, Qualification{}, Empty(models.InterviewQualification))
	assert.Equal(t, Generic{}, Empty(models.InterviewClient))
}

func Test_Encode_InvalidUTF8IsStoredAsReplacementChar(t *testing.T) {
	encoded, err := Encode(models.InterviewQualification, Qualification{TechnicalSkillsDeep: "a\xffb", Potential: "high"})
	require.NoError(t, err)

	decoded := Decode(models.InterviewQualification, encoded)
	assert.Equal(t, Qualification{TechnicalSkillsDeep: "a\uFFFDb", Potential: "high"}, decoded)
	assert.Equal(t, decoded, Decode(models.InterviewQualification, mustEncode(t, decoded)))
}

func mustEncode(t *testing.T, p Payload) string {
	encoded, err := Encode(models.InterviewQualification, p)
	require.NoError(t, err)
	return encoded
}
