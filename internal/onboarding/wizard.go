package onboarding

import (
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/structure"
)

// Step is a wizard state.
type Step string

const (
	// StepDetails collects the scalar property and caretaker fields.
	StepDetails Step = "details"
	// StepStructure builds the floor/room/bed tree.
	StepStructure Step = "structure"
)

const incompleteStructureMessage = "add at least one floor with one room and one bed"
const wrongStepMessage = "complete the structure step before submitting"

// Submittable reports whether the draft may be persisted: all required
// scalar fields are set and the tree has a complete structure. It is
// recomputed from scratch on every call; nothing is cached.
func Submittable(d Details, t structure.Tree) bool {
	return ValidateDetails(d) == nil && t.HasCompleteStructure()
}

// ValidateDraft collects every reason the draft is not submittable.
func ValidateDraft(d Details, t structure.Tree) *ValidationError {
	verr := ValidateDetails(d)
	if !t.HasCompleteStructure() {
		if verr == nil {
			verr = &ValidationError{}
		}
		verr.Messages = append(verr.Messages, incompleteStructureMessage)
	}
	return verr
}

// Wizard is one in-progress onboarding session. Its draft is ephemeral
// UI state: discarded after a successful submission or on cancellation.
type Wizard struct {
	editor  structure.Editor
	details Details
	tree    structure.Tree
	step    Step
}

// NewWizard starts an onboarding session on the details step.
func NewWizard() *Wizard {
	return &Wizard{editor: structure.NewEditor(), step: StepDetails}
}

// Editor returns the structure editor bound to this session.
func (w *Wizard) Editor() structure.Editor {
	return w.editor
}

// SetEditor replaces the session's editor, e.g. to stub id generation.
func (w *Wizard) SetEditor(e structure.Editor) {
	w.editor = e
}

// Step returns the current wizard step.
func (w *Wizard) Step() Step {
	return w.step
}

// Details returns the draft scalar fields.
func (w *Wizard) Details() Details {
	return w.details
}

// SetDetails replaces the draft scalar fields. Always allowed; the gate
// runs when advancing or submitting, not when typing.
func (w *Wizard) SetDetails(d Details) {
	w.details = d
}

// Tree returns the draft structure tree.
func (w *Wizard) Tree() structure.Tree {
	return w.tree
}

// SetTree replaces the draft tree, typically with the result of an
// editor operation.
func (w *Wizard) SetTree(t structure.Tree) {
	w.tree = t
}

// Next advances from the details step to the structure step. The guard
// is the scalar-field check only; the structure is built in the next
// step. On failure the wizard is left untouched.
func (w *Wizard) Next() error {
	if w.step != StepDetails {
		return nil
	}
	if verr := ValidateDetails(w.details); verr != nil {
		return verr
	}
	w.step = StepStructure
	return nil
}

// Back returns to the details step. Always allowed.
func (w *Wizard) Back() {
	w.step = StepDetails
}

// Submit runs the full submittability gate and transforms the draft
// into a persistable property. Only reachable from the structure step.
// On failure no state changes and the draft stays editable.
func (w *Wizard) Submit(newID structure.IDSource) (property.Property, error) {
	if w.step != StepStructure {
		return property.Property{}, &ValidationError{Messages: []string{wrongStepMessage}}
	}
	if verr := ValidateDraft(w.details, w.tree); verr != nil {
		return property.Property{}, verr
	}
	return Aggregate(w.details, w.tree, newID), nil
}
