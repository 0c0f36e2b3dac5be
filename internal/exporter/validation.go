package exporter

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-codeprob/internal/domain"
)

const contentValidationCode = "CONTENT_VALIDATION_FAILED"

// ValidationError reports every missing required field of a submission in
// declaration order. It unwraps to a go-errors validation error.
type ValidationError struct {
	Kind  domain.Kind
	cause *goerrors.Error
}

func newValidationError(kind domain.Kind, problems goerrors.ValidationErrors) *ValidationError {
	cause := goerrors.NewValidation("content validation failed", problems...).
		WithTextCode(contentValidationCode).
		WithMetadata(map[string]any{"kind": kind.String()})
	return &ValidationError{Kind: kind, cause: cause}
}

func (e *ValidationError) Error() string {
	return e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Messages returns the human readable messages, one per missing field.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.cause.ValidationErrors))
	for i, fieldErr := range e.cause.ValidationErrors {
		out[i] = fieldErr.Message
	}
	return out
}

// Fields returns the names of the missing fields.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.cause.ValidationErrors))
	for i, fieldErr := range e.cause.ValidationErrors {
		out[i] = fieldErr.Field
	}
	return out
}

// Validate checks the required fields of kind and returns one message per
// blank field in declaration order. An empty slice means the submission is
// valid. Unknown kinds only get the common checks.
func Validate(kind domain.Kind, fields domain.FieldSet) []string {
	problems := validate(kind, fields)
	out := make([]string, len(problems))
	for i, problem := range problems {
		out[i] = problem.Message
	}
	return out
}

func validate(kind domain.Kind, fields domain.FieldSet) goerrors.ValidationErrors {
	var problems goerrors.ValidationErrors
	for _, required := range domain.RequiredFields(kind) {
		err := validation.Validate(fields.Get(required.Name), validation.Required.Error(required.Message))
		if err == nil {
			continue
		}
		problems = append(problems, goerrors.FieldError{
			Field:   required.Name,
			Message: err.Error(),
		})
	}
	return problems
}
