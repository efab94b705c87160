package quiz

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML shape of a quiz definition.
type document struct {
	ID        string        `yaml:"id" validate:"required"`
	Title     string        `yaml:"title" validate:"required"`
	Intro     string        `yaml:"intro"`
	PassMark  float64       `yaml:"pass_mark" validate:"gt=0,lte=1"`
	Questions []questionDoc `yaml:"questions" validate:"required,min=1,dive"`
}

type questionDoc struct {
	ID          string   `yaml:"id" validate:"required"`
	Kind        Kind     `yaml:"kind" validate:"required,oneof=text single multi"`
	Prompt      string   `yaml:"prompt" validate:"required"`
	Placeholder string   `yaml:"placeholder"`
	Options     []Option `yaml:"options" validate:"omitempty,dive"`
	Explanation string   `yaml:"explanation"`
	Answer      Answer   `yaml:"answer"`
}

// Parse decodes, normalizes and validates a YAML quiz definition.
func Parse(data []byte) (Quiz, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Quiz{}, fmt.Errorf("parse quiz: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return Quiz{}, fmt.Errorf("parse quiz: multiple YAML documents are not supported")
		}
		return Quiz{}, fmt.Errorf("parse quiz: %w", err)
	}
	normalize(&doc)
	if err := validateDocument(&doc); err != nil {
		return Quiz{}, fmt.Errorf("invalid quiz %q: %w", doc.ID, err)
	}
	return doc.build(), nil
}

// Load reads a quiz definition from disk.
func Load(path string) (Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("read quiz: %w", err)
	}
	return Parse(data)
}

// MustParse is for definitions compiled into the binary.
func MustParse(data []byte) Quiz {
	q, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return q
}

// normalize stores text keys in comparable form. The authored spelling is
// kept as the display value unless one is given.
func normalize(doc *document) {
	for i := range doc.Questions {
		q := &doc.Questions[i]
		if q.Kind != KindText {
			continue
		}
		for j, v := range q.Answer.Values {
			if q.Answer.Display == "" && j == 0 {
				q.Answer.Display = strings.TrimSpace(v)
			}
			q.Answer.Values[j] = NormalizeText(v)
		}
	}
}

func (doc document) build() Quiz {
	out := Quiz{
		ID:        doc.ID,
		Title:     doc.Title,
		Intro:     doc.Intro,
		PassMark:  doc.PassMark,
		Questions: make([]Question, 0, len(doc.Questions)),
	}
	answers := make(map[string]Answer, len(doc.Questions))
	for _, qd := range doc.Questions {
		out.Questions = append(out.Questions, Question{
			ID:          qd.ID,
			Kind:        qd.Kind,
			Prompt:      qd.Prompt,
			Placeholder: qd.Placeholder,
			Options:     append([]Option(nil), qd.Options...),
			Explanation: qd.Explanation,
		})
		answers[qd.ID] = qd.Answer
	}
	out.Key = NewAnswerKey(answers)
	return out
}
