package kyc

import (
	"time"

	"sokoni/internal/models"
	"sokoni/internal/validation"
)

// Document types recognized by the step wizard. The bulk upload path also
// accepts arbitrary caller-assigned document IDs.
const (
	DocTypeIDDocument    = "id_document"
	DocTypeAddressProof  = "address_proof"
	DocTypeBankStatement = "bank_statement"
)

// SignedURLTTL is how long issued document links stay valid.
const SignedURLTTL = 365 * 24 * time.Hour

// DocumentUploadResult is the uniform contract returned by every upload
// attempt. It never escapes as a panic or error across the public boundary.
type DocumentUploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubmitResult is returned by the submission reconciler.
type SubmitResult struct {
	Success bool   `json:"success"`
	KYCID   uint   `json:"kyc_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// File is an in-memory document attachment handed to the upload pipeline.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the attachment size in bytes.
func (f *File) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Data))
}

// Session identifies the authenticated caller.
type Session struct {
	UserID uint
	Email  string
	Role   string
}

// BackoffPolicy decides how upload attempts are retried. Delay receives the
// zero-based index of the attempt about to run and returns how long to wait
// before it.
type BackoffPolicy struct {
	MaxAttempts int
	Delay       func(attempt int) time.Duration
}

// DefaultBackoff retries twice after the first failure, waiting 1s then 2s.
func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts: 3,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// FormSnapshot is the wizard's working copy of the form: persistable fields
// plus any file attachments not yet uploaded. Attachments never reach the
// record store.
type FormSnapshot struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`

	PAN   string `json:"pan"`
	GSTIN string `json:"gstin"`

	IDType        string `json:"id_type"`
	IDNumber      string `json:"id_number"`
	IDDocumentURL string `json:"id_document_url"`

	Address         models.BusinessAddress `json:"address"`
	AddressProofURL string                 `json:"address_proof_url"`

	BankHolderName   string `json:"bank_holder_name"`
	AccountNumber    string `json:"account_number"`
	AccountType      string `json:"account_type"`
	IFSCCode         string `json:"ifsc_code"`
	BankStatementURL string `json:"bank_statement_url"`

	PEPDeclaration bool `json:"pep_declaration"`
	SanctionsCheck bool `json:"sanctions_check"`
	AMLCompliance  bool `json:"aml_compliance"`
	TaxCompliance  bool `json:"tax_compliance"`
	TermsAccepted  bool `json:"terms_accepted"`

	IDDocumentFile    *File `json:"-"`
	AddressProofFile  *File `json:"-"`
	BankStatementFile *File `json:"-"`
}

// form converts the snapshot into the shape the validation rules consume.
func (s *FormSnapshot) form() *validation.KYCForm {
	return &validation.KYCForm{
		Email:    s.Email,
		Phone:    s.Phone,
		FullName: s.FullName,
		Country:  s.Country,

		PAN:   s.PAN,
		GSTIN: s.GSTIN,

		IDType:        s.IDType,
		IDNumber:      s.IDNumber,
		IDDocumentURL: s.IDDocumentURL,
		HasIDFile:     s.IDDocumentFile != nil,

		Street1:         s.Address.Street1,
		City:            s.Address.City,
		State:           s.Address.State,
		PostalCode:      s.Address.PostalCode,
		AddressProofURL: s.AddressProofURL,
		HasAddressFile:  s.AddressProofFile != nil,

		BankHolderName:   s.BankHolderName,
		AccountNumber:    s.AccountNumber,
		AccountType:      s.AccountType,
		IFSCCode:         s.IFSCCode,
		BankStatementURL: s.BankStatementURL,
		HasBankFile:      s.BankStatementFile != nil,

		PEPDeclaration: s.PEPDeclaration,
		SanctionsCheck: s.SanctionsCheck,
		AMLCompliance:  s.AMLCompliance,
		TaxCompliance:  s.TaxCompliance,
		TermsAccepted:  s.TermsAccepted,
	}
}

// Validate runs every step's rule set against the snapshot and merges the
// field errors. Used by the single-shot submission path, which bypasses the
// wizard's per-step gating.
func (s *FormSnapshot) Validate() map[string]string {
	f := s.form()
	merged := map[string]string{}
	for _, validate := range []func(*validation.KYCForm) map[string]string{
		validation.ValidateTaxStep,
		validation.ValidateIdentityStep,
		validation.ValidateAddressStep,
		validation.ValidateBankStep,
		validation.ValidateComplianceStep,
	} {
		for field, msg := range validate(f) {
			if _, ok := merged[field]; !ok {
				merged[field] = msg
			}
		}
	}
	return merged
}

// record assembles the persistable row for sellerID, stripped of file
// handles. Lifecycle fields are set by the caller.
func (s *FormSnapshot) record(sellerID uint) *models.KYCRecord {
	return &models.KYCRecord{
		SellerID: sellerID,
		Email:    s.Email,
		Phone:    s.Phone,
		FullName: s.FullName,
		Country:  s.Country,

		PAN:   s.PAN,
		GSTIN: s.GSTIN,

		IDType:        s.IDType,
		IDNumber:      s.IDNumber,
		IDDocumentURL: s.IDDocumentURL,

		Address:         s.Address,
		AddressProofURL: s.AddressProofURL,

		BankHolderName:   s.BankHolderName,
		AccountNumber:    s.AccountNumber,
		AccountType:      s.AccountType,
		IFSCCode:         s.IFSCCode,
		BankStatementURL: s.BankStatementURL,

		PEPDeclaration: s.PEPDeclaration,
		SanctionsCheck: s.SanctionsCheck,
		AMLCompliance:  s.AMLCompliance,
		TaxCompliance:  s.TaxCompliance,
		TermsAccepted:  s.TermsAccepted,
	}
}
