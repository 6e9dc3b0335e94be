// Package onboarding sequences the property onboarding wizard: details
// entry, structure editing, the submittability gate, and the transform
// into the persisted property shape.
package onboarding

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ressido/ressido/internal/property"
)

// Details holds the scalar fields collected in the first wizard step.
type Details struct {
	Name             string        `json:"name" validate:"required"`
	Address          string        `json:"address" validate:"required"`
	City             string        `json:"city" validate:"required"`
	Type             property.Type `json:"type" validate:"required,oneof=boys_pg girls_pg co_living hostel"`
	Photo            string        `json:"photo,omitempty"`
	CaretakerName    string        `json:"caretaker_name" validate:"required"`
	CaretakerContact string        `json:"caretaker_contact" validate:"required"`
}

// trimmed returns a copy with surrounding whitespace removed, so a
// field of only spaces does not pass the required check.
func (d Details) trimmed() Details {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.Photo = strings.TrimSpace(d.Photo)
	d.CaretakerName = strings.TrimSpace(d.CaretakerName)
	d.CaretakerContact = strings.TrimSpace(d.CaretakerContact)
	return d
}

var validate = validator.New()

// fieldMessages maps details fields to user-facing messages.
var fieldMessages = map[string]string{
	"Name":             "property name is required",
	"Address":          "address is required",
	"City":             "city is required",
	"Type":             "property type must be one of boys_pg, girls_pg, co_living, hostel",
	"CaretakerName":    "caretaker name is required",
	"CaretakerContact": "caretaker contact is required",
}

// ValidationError reports why a draft cannot advance or be submitted.
// It is recoverable: the wizard state is left untouched for correction.
type ValidationError struct {
	Messages []string `json:"messages"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ValidateDetails checks the scalar fields of the first wizard step.
// Returns nil when all required fields are present after trimming.
func ValidateDetails(d Details) *ValidationError {
	err := validate.Struct(d.trimmed())
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Messages: []string{err.Error()}}
	}

	var msgs []string
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return &ValidationError{Messages: msgs}
}
