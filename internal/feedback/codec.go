package feedback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"strconv"
	"strings"
)

var ErrPayloadMismatch = errors.New("payload does not match interview type")

// Encode serializes the payload into the string stored in the interview feedback field.
// Structured types always produce every key of their form, in a fixed order.
// Form values must be valid UTF-8 to round-trip: invalid bytes are stored as U+FFFD.
func Encode(t models.InterviewType, p Payload) (string, error) {
	if p == nil || p.kind() != kindOf(t) {
		return "", fmt.Errorf("encode %T as %q feedback: %w", p, t, ErrPayloadMismatch)
	}

	switch generic := p.(type) {
	case Generic:
		return generic.Feedback, nil
	case *Generic:
		return generic.Feedback, nil
	}

	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(p); err != nil {
		return "", fmt.Errorf("encode %q feedback: %w", t, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode never fails: a missing, malformed or foreign payload yields the empty form
// of the requested type.
func Decode(t models.InterviewType, raw string) Payload {
	switch kindOf(t) {
	case kindPrequalification:
		fields, ok := extractFields(raw, prequalificationRequired)
		if !ok {
			return Prequalification{}
		}
		return prequalificationFrom(fields)
	case kindQualification:
		fields, ok := extractFields(raw, qualificationRequired)
		if !ok {
			return Qualification{}
		}
		return qualificationFrom(fields)
	default:
		return Generic{Feedback: raw}
	}
}

// extractFields returns the first well-formed JSON object in raw that carries at least
// one of the marker keys. Surrounding prose and code fences are skipped.
func extractFields(raw string, markers []string) (map[string]string, bool) {
	for offset := 0; offset < len(raw); {
		start := strings.IndexByte(raw[offset:], '{')
		if start < 0 {
			return nil, false
		}
		start += offset

		if object, ok := decodeObject(raw[start:]); ok {
			if lo.SomeBy(markers, func(key string) bool { _, found := object[key]; return found }) {
				return lo.MapValues(object, func(value any, _ string) string { return coerceString(value) }), true
			}
		}
		offset = start + 1
	}
	return nil, false
}

func decodeObject(raw string) (map[string]any, bool) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var object map[string]any
	if err := decoder.Decode(&object); err != nil || object == nil {
		return nil, false
	}
	return object, true
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}
