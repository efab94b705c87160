package grading

// RawResponse is what a learner entered for one question, as read from a
// form field: zero or more values in submission order. nil means absent.
type RawResponse []string

// Text is the free-text value: the first value, or "".
func (r RawResponse) Text() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Choice is the single selected option id, or "" when nothing was selected.
func (r RawResponse) Choice() string {
	for _, v := range r {
		if v != "" {
			return v
		}
	}
	return ""
}

// Choices are the selected option ids in selection order, empty values dropped.
func (r RawResponse) Choices() []string {
	out := make([]string, 0, len(r))
	for _, v := range r {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ResponseSource yields the raw response for a question id. It must not fail
// for unknown or missing ids.
type ResponseSource interface {
	Response(questionID string) RawResponse
}

// LabelResolver renders an option id as human-readable text.
type LabelResolver interface {
	Label(questionID, optionID string) (string, bool)
}

// FormValues adapts submitted form fields (url.Values) keyed by question id.
type FormValues map[string][]string

func (f FormValues) Response(questionID string) RawResponse {
	v, ok := f[questionID]
	if !ok {
		return nil
	}
	return RawResponse(v)
}

type noLabels struct{}

func (noLabels) Label(string, string) (string, bool) { return "", false }
