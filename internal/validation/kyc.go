package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// PAN: 5 letters, 4 digits, 1 letter.
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

	// GSTIN: 2 digits, 5 letters, 4 digits, 1 letter, 1 alphanumeric,
	// Z, 1 alphanumeric check character.
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)

	// IFSC: 4 letters, a literal zero, 6 alphanumerics.
	ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

	accountNumberRegex = regexp.MustCompile(`^[0-9]{9,18}$`)
)

// ValidPAN reports whether pan matches the PAN card format. The value is
// not case-normalized here; lowercase input is a validation failure.
func ValidPAN(pan string) bool {
	return panRegex.MatchString(pan)
}

// ValidGSTIN reports whether gstin matches the 15-character GSTIN format.
func ValidGSTIN(gstin string) bool {
	return gstinRegex.MatchString(gstin)
}

// ValidIFSC reports whether code matches the IFSC format.
func ValidIFSC(code string) bool {
	return ifscRegex.MatchString(code)
}

// ValidAccountNumber reports whether number is 9-18 digits, numeric only.
func ValidAccountNumber(number string) bool {
	return accountNumberRegex.MatchString(number)
}

// AllowedDocumentType reports whether contentType is in the MIME allow-list.
func AllowedDocumentType(contentType string) bool {
	for _, t := range AllowedDocumentTypes {
		if contentType == t {
			return true
		}
	}
	return false
}

// CheckDocument validates an uploaded file against the size ceiling and the
// MIME allow-list before any network call is made. Returns "" when the file
// is acceptable, otherwise a human-readable reason.
func CheckDocument(contentType string, size, maxSize int64) string {
	if size == 0 {
		return "file is empty"
	}
	if size > maxSize {
		return fmt.Sprintf("file exceeds the %d MB size limit", maxSize/(1024*1024))
	}
	if !AllowedDocumentType(contentType) {
		return "file type must be JPEG, PNG, PDF, DOC or DOCX"
	}
	return ""
}

// KYCForm is the validatable view of the wizard's form data. The services
// layer converts its snapshot into this shape so the rules stay free of
// file handles and model types.
type KYCForm struct {
	Email    string
	Phone    string
	FullName string
	Country  string

	PAN   string
	GSTIN string

	IDType        string
	IDNumber      string
	IDDocumentURL string
	HasIDFile     bool

	Street1         string
	City            string
	State           string
	PostalCode      string
	AddressProofURL string
	HasAddressFile  bool

	BankHolderName   string
	AccountNumber    string
	AccountType      string
	IFSCCode         string
	BankStatementURL string
	HasBankFile      bool

	PEPDeclaration bool
	SanctionsCheck bool
	AMLCompliance  bool
	TaxCompliance  bool
	TermsAccepted  bool
}

// ValidateTaxStep validates step 1 of the wizard. PAN is required; GSTIN is
// optional but checked when present.
func ValidateTaxStep(f *KYCForm) map[string]string {
	v := New()
	v.Required("full_name", f.FullName)
	v.MaxLength("full_name", f.FullName, MaxNameLength)
	v.Email("email", f.Email)
	v.Phone("phone", f.Phone)
	v.Required("country", f.Country)
	v.Check(ValidPAN(f.PAN), "pan", "must be a valid PAN (5 letters, 4 digits, 1 letter)")
	if strings.TrimSpace(f.GSTIN) != "" {
		v.Check(ValidGSTIN(f.GSTIN), "gstin", "must be a valid 15-character GSTIN")
	}
	return v.Errors
}

// ValidateIdentityStep validates step 2 of the wizard.
func ValidateIdentityStep(f *KYCForm) map[string]string {
	v := New()
	v.In("id_type", f.IDType, "aadhar", "passport", "voter", "driver_license")
	v.Required("id_number", f.IDNumber)
	v.Check(f.HasIDFile || f.IDDocumentURL != "", "id_document", "identity document is required")
	return v.Errors
}

// ValidateAddressStep validates step 3 of the wizard.
func ValidateAddressStep(f *KYCForm) map[string]string {
	v := New()
	v.Required("street1", f.Street1)
	v.Required("city", f.City)
	v.Required("state", f.State)
	v.Required("postal_code", f.PostalCode)
	v.Check(f.HasAddressFile || f.AddressProofURL != "", "address_proof", "address proof document is required")
	return v.Errors
}

// ValidateBankStep validates step 4 of the wizard.
func ValidateBankStep(f *KYCForm) map[string]string {
	v := New()
	v.Required("bank_holder_name", f.BankHolderName)
	v.Check(ValidAccountNumber(f.AccountNumber), "account_number", "must be 9-18 digits")
	v.In("account_type", f.AccountType, "checking", "savings", "current")
	v.Check(ValidIFSC(f.IFSCCode), "ifsc_code", "must be a valid IFSC (4 letters, 0, 6 alphanumerics)")
	v.Check(f.HasBankFile || f.BankStatementURL != "", "bank_statement", "bank statement is required")
	return v.Errors
}

// ValidateComplianceStep validates step 5 of the wizard. Every declaration
// must be checked before submission is allowed.
func ValidateComplianceStep(f *KYCForm) map[string]string {
	v := New()
	v.Check(f.PEPDeclaration, "pep_declaration", "you must complete the PEP declaration")
	v.Check(f.SanctionsCheck, "sanctions_check", "you must confirm the sanctions check")
	v.Check(f.AMLCompliance, "aml_compliance", "you must accept the AML compliance terms")
	v.Check(f.TaxCompliance, "tax_compliance", "you must confirm tax compliance")
	v.Check(f.TermsAccepted, "terms_accepted", "you must accept the terms and conditions")
	return v.Errors
}
