package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report yaml field names so errors point into the definition file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateDocument(doc *document) error {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fieldErrors(verrs)
		}
		return err
	}
	return checkConsistency(doc)
}

func fieldErrors(verrs validator.ValidationErrors) error {
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		// drop the root type name: "document.questions[0].kind" -> "questions[0].kind"
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		if fe.Param() != "" {
			errs = append(errs, fmt.Errorf("%s: failed %s=%s", path, fe.Tag(), fe.Param()))
			continue
		}
		errs = append(errs, fmt.Errorf("%s: failed %s", path, fe.Tag()))
	}
	return errors.Join(errs...)
}

// checkConsistency covers the rules struct tags cannot express: unique ids and
// answers whose shape matches the question kind.
func checkConsistency(doc *document) error {
	var errs []error
	seen := map[string]bool{}
	for i, q := range doc.Questions {
		where := fmt.Sprintf("questions[%d] (%s)", i, q.ID)
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate question id", where))
		}
		seen[q.ID] = true

		opts := map[string]bool{}
		for _, o := range q.Options {
			if opts[o.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate option id %q", where, o.ID))
			}
			opts[o.ID] = true
		}

		vals := q.Answer.Values
		switch q.Kind {
		case KindText:
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Errorf("%s: text questions take no options", where))
			}
			if len(vals) != 1 || vals[0] == "" {
				errs = append(errs, fmt.Errorf("%s: text answer needs exactly one non-empty value", where))
			}
		case KindSingle:
			if len(vals) != 1 {
				errs = append(errs, fmt.Errorf("%s: single-choice answer needs exactly one option id", where))
			}
		case KindMulti:
			if len(vals) == 0 {
				errs = append(errs, fmt.Errorf("%s: multi-choice answer needs at least one option id", where))
			}
		}
		if q.Kind == KindSingle || q.Kind == KindMulti {
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Errorf("%s: choice questions need options", where))
			}
			picked := map[string]bool{}
			for _, v := range vals {
				if !opts[v] {
					errs = append(errs, fmt.Errorf("%s: answer %q is not a declared option", where, v))
				}
				if picked[v] {
					errs = append(errs, fmt.Errorf("%s: answer %q listed twice", where, v))
				}
				picked[v] = true
			}
		}
	}
	return errors.Join(errs...)
}
