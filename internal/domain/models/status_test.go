package models

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_ApplicationStatus_UnknownIsRejectedNotCoerced(t *testing.T) {
	for _, status := range ApplicationStatuses {
		parsed, err := ParseApplicationStatus(string(status))
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseApplicationStatus("on_hold")
	assert.True(t, errors.Is(err, ErrUnknownValue))

	label := DisplayLabel(ApplicationStatus("on_hold"))
	assert.Equal(t, Label{Value: "on_hold", Recognized: false}, label)
}

func Test_InterviewType_Structured(t *testing.T) {
	structured := map[InterviewType]bool{
		InterviewPrequalification: true,
		InterviewQualification:    true,
	}
	for _, interviewType := range InterviewTypes {
		assert.True(t, interviewType.IsValid())
		assert.Equal(t, structured[interviewType], interviewType.IsStructured())
	}

	_, err := ParseInterviewType("panel")
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.False(t, InterviewType("panel").IsStructured())
}

func Test_InterviewDecision_DefaultsToPending(t *testing.T) {
	decision, err := ParseInterviewDecision("")
	assert.NoError(t, err)
	assert.Equal(t, DecisionPending, decision)

	_, err = ParseInterviewDecision("maybe")
	assert.ErrorIs(t, err, ErrUnknownValue)

	assert.Equal(t, Label{Value: "positive", Recognized: true}, DisplayLabel(DecisionPositive))
}

func Test_Application_PreservesStatus(t *testing.T) {
	application := NewApplication(1, 2)
	assert.Equal(t, StatusSourced, application.Status)

	application.Status = ApplicationStatus("legacy_stage")
	assert.Equal(t, "legacy_stage", application.Status.String())
	assert.False(t, application.Status.IsValid())
}
