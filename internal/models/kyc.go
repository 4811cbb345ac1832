package models

import (
	"time"

	"gorm.io/gorm"
)

// KYC lifecycle statuses. Approved and rejected are only ever set by the
// admin approval workflow, never by the seller-facing submission path.
const (
	KYCStatusDraft    = "draft"
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// Accepted identity proof types
const (
	IDTypeAadhar        = "aadhar"
	IDTypePassport      = "passport"
	IDTypeVoter         = "voter"
	IDTypeDriverLicense = "driver_license"
)

// Accepted bank account types
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCurrent  = "current"
)

// BusinessAddress is the structured business address embedded in a KYC record.
type BusinessAddress struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

// KYCRecord holds a seller's identity verification data. There is exactly
// one live record per seller; resubmission upserts on SellerID rather than
// inserting a second row.
type KYCRecord struct {
	gorm.Model
	SellerID uint `gorm:"uniqueIndex;not null" json:"seller_id"`

	// Identity
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`

	// Tax
	PAN   string `gorm:"column:pan;not null" json:"pan"`
	GSTIN string `gorm:"column:gstin" json:"gstin"`

	// Identity proof
	IDType        string `gorm:"column:id_type" json:"id_type"`
	IDNumber      string `gorm:"column:id_number" json:"id_number"`
	IDDocumentURL string `gorm:"column:id_document_url" json:"id_document_url"`

	// Business address
	Address         BusinessAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	AddressProofURL string          `json:"address_proof_url"`

	// Banking
	BankHolderName   string `json:"bank_holder_name"`
	AccountNumber    string `json:"account_number"`
	AccountType      string `json:"account_type"`
	IFSCCode         string `gorm:"column:ifsc_code" json:"ifsc_code"`
	BankStatementURL string `json:"bank_statement_url"`

	// Compliance declarations
	PEPDeclaration bool `gorm:"column:pep_declaration" json:"pep_declaration"`
	SanctionsCheck bool `json:"sanctions_check"`
	AMLCompliance  bool `gorm:"column:aml_compliance" json:"aml_compliance"`
	TaxCompliance  bool `json:"tax_compliance"`
	TermsAccepted  bool `json:"terms_accepted"`

	// Extra documents from the bulk upload path, keyed by document ID.
	AdditionalDocuments JSON `gorm:"type:jsonb" json:"additional_documents,omitempty"`

	// Lifecycle
	KYCStatus       string     `gorm:"column:kyc_status;default:'draft';index" json:"kyc_status"`
	KYCTier         int        `gorm:"column:kyc_tier;default:1" json:"kyc_tier"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	VerifiedByAdmin *uint      `json:"verified_by_admin,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
}
