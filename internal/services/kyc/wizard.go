package kyc

import (
	"context"

	"sokoni/internal/validation"
)

// WizardStep enumerates the states of the verification wizard.
type WizardStep int

const (
	StepTax WizardStep = iota + 1
	StepIdentity
	StepAddress
	StepBank
	StepCompliance
	StepSubmitting
	StepSubmitted
	StepFailed
)

// String returns the wire name of a step.
func (s WizardStep) String() string {
	switch s {
	case StepTax:
		return "tax"
	case StepIdentity:
		return "identity"
	case StepAddress:
		return "address"
	case StepBank:
		return "bank"
	case StepCompliance:
		return "compliance"
	case StepSubmitting:
		return "submitting"
	case StepSubmitted:
		return "submitted"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// stepValidators runs the validation set scoped to one wizard step.
var stepValidators = map[WizardStep]func(*validation.KYCForm) map[string]string{
	StepTax:        validation.ValidateTaxStep,
	StepIdentity:   validation.ValidateIdentityStep,
	StepAddress:    validation.ValidateAddressStep,
	StepBank:       validation.ValidateBankStep,
	StepCompliance: validation.ValidateComplianceStep,
}

// WizardState is the wizard's full state as a value: current step, entered
// data and field errors. Transitions are pure functions returning a new
// state; the caller owns persistence of the value between requests.
type WizardState struct {
	Step        WizardStep        `json:"step"`
	Data        FormSnapshot      `json:"data"`
	Errors      map[string]string `json:"errors,omitempty"`
	SubmitError string            `json:"submit_error,omitempty"`
	KYCID       uint              `json:"kyc_id,omitempty"`
}

// NewWizard returns a wizard positioned on the first step.
func NewWizard() WizardState {
	return WizardState{Step: StepTax}
}

// Validate runs the current step's validation set without moving.
func (w WizardState) Validate() map[string]string {
	validate, ok := stepValidators[w.Step]
	if !ok {
		return nil
	}
	return validate(w.Data.form())
}

// Next validates the current step. On failure the wizard stays put and
// surfaces field errors; on success it advances and clears them.
func (w WizardState) Next() WizardState {
	if w.Step < StepTax || w.Step >= StepCompliance {
		return w
	}
	if errs := w.Validate(); len(errs) > 0 {
		w.Errors = errs
		return w
	}
	w.Step++
	w.Errors = nil
	return w
}

// Previous steps back without re-validating. Blocked on the first step and
// once submission has started.
func (w WizardState) Previous() WizardState {
	if w.Step <= StepTax || w.Step > StepCompliance {
		return w
	}
	w.Step--
	return w
}

// Submit is only reachable from the compliance step after its validation
// passes. It hands the snapshot to the reconciler; failure carries the
// returned message and keeps the entered data so the seller can retry.
func (w WizardState) Submit(ctx context.Context, reconciler Submitter, sellerID uint) WizardState {
	if w.Step != StepCompliance {
		return w
	}
	if errs := w.Validate(); len(errs) > 0 {
		w.Errors = errs
		return w
	}
	w.Step = StepSubmitting
	w.Errors = nil
	w.SubmitError = ""

	res := reconciler.Submit(ctx, &w.Data, sellerID)
	if !res.Success {
		w.Step = StepFailed
		w.SubmitError = res.Error
		return w
	}
	w.Step = StepSubmitted
	w.KYCID = res.KYCID
	return w
}

// Retry returns a failed wizard to the compliance step with data intact.
func (w WizardState) Retry() WizardState {
	if w.Step != StepFailed {
		return w
	}
	w.Step = StepCompliance
	w.SubmitError = ""
	return w
}

// Submitter is the slice of the service the wizard needs at its terminal
// step.
type Submitter interface {
	Submit(ctx context.Context, snap *FormSnapshot, sellerID uint) SubmitResult
}
