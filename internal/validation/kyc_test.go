package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPAN(t *testing.T) {
	tests := []struct {
		pan   string
		valid bool
	}{
		{"AAAPL5055K", true},
		{"ABCDE1234F", true},
		{"aaapl5055k", false}, // lowercase is not normalized
		{"AAAPL505K", false},  // too short
		{"AAAPL50555K", false},
		{"1AAPL5055K", false},
		{"AAAPL5055", false},
		{"", false},
		{" AAAPL5055K", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidPAN(tt.pan), "pan %q", tt.pan)
	}
}

func TestValidGSTIN(t *testing.T) {
	tests := []struct {
		gstin string
		valid bool
	}{
		{"27AAAPL5055K1Z5", true},
		{"07ABCDE1234F2Z9", true},
		{"27AAAPL5055K1X5", false}, // missing the fixed Z
		{"7AAAPL5055K1Z5", false},  // 14 characters
		{"27aaapl5055k1z5", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidGSTIN(tt.gstin), "gstin %q", tt.gstin)
	}
}

func TestValidIFSC(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"SBIN0001234", true},
		{"HDFC0CAG123", true},
		{"SBIN1001234", false}, // fifth character must be zero
		{"SBI00001234", false},
		{"SBIN000123", false},
		{"sbin0001234", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidIFSC(tt.code), "ifsc %q", tt.code)
	}
}

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"123456789", true},          // 9 digits, lower bound
		{"123456789012345678", true}, // 18 digits, upper bound
		{"12345", false},
		{"1234567890123456789", false},
		{"12345abcde", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidAccountNumber(tt.number), "account %q", tt.number)
	}
}

func TestCheckDocument(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		maxSize     int64
		want        string
	}{
		{"ok pdf", "application/pdf", 1024, MaxProofDocumentSize, ""},
		{"ok jpeg at limit", "image/jpeg", MaxProofDocumentSize, MaxProofDocumentSize, ""},
		{"empty", "application/pdf", 0, MaxProofDocumentSize, "file is empty"},
		{"over proof limit", "application/pdf", MaxProofDocumentSize + 1, MaxProofDocumentSize, "file exceeds the 5 MB size limit"},
		{"over statement limit", "application/pdf", MaxBankStatementSize + 1, MaxBankStatementSize, "file exceeds the 10 MB size limit"},
		{"executable", "application/octet-stream", 1024, MaxProofDocumentSize, "file type must be JPEG, PNG, PDF, DOC or DOCX"},
		{"svg", "image/svg+xml", 1024, MaxProofDocumentSize, "file type must be JPEG, PNG, PDF, DOC or DOCX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckDocument(tt.contentType, tt.size, tt.maxSize)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validForm() *KYCForm {
	return &KYCForm{
		Email:    "seller@example.com",
		Phone:    "+919876543210",
		FullName: "Asha Traders",
		Country:  "IN",

		PAN:   "AAAPL5055K",
		GSTIN: "27AAAPL5055K1Z5",

		IDType:    "passport",
		IDNumber:  "P1234567",
		HasIDFile: true,

		Street1:        "12 Market Road",
		City:           "Pune",
		State:          "MH",
		PostalCode:     "411001",
		HasAddressFile: true,

		BankHolderName: "Asha Traders",
		AccountNumber:  "123456789012",
		AccountType:    "savings",
		IFSCCode:       "SBIN0001234",
		HasBankFile:    true,

		PEPDeclaration: true,
		SanctionsCheck: true,
		AMLCompliance:  true,
		TaxCompliance:  true,
		TermsAccepted:  true,
	}
}

func TestValidateTaxStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateTaxStep(validForm()))
	})

	t.Run("gstin optional when blank", func(t *testing.T) {
		f := validForm()
		f.GSTIN = ""
		assert.Empty(t, ValidateTaxStep(f))
	})

	t.Run("bad gstin rejected when present", func(t *testing.T) {
		f := validForm()
		f.GSTIN = "not-a-gstin"
		errs := ValidateTaxStep(f)
		assert.Contains(t, errs, "gstin")
	})

	t.Run("lowercase pan rejected", func(t *testing.T) {
		f := validForm()
		f.PAN = "aaapl5055k"
		errs := ValidateTaxStep(f)
		assert.Contains(t, errs, "pan")
	})

	t.Run("missing basics", func(t *testing.T) {
		errs := ValidateTaxStep(&KYCForm{})
		assert.Contains(t, errs, "full_name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "phone")
		assert.Contains(t, errs, "country")
		assert.Contains(t, errs, "pan")
	})
}

func TestValidateIdentityStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateIdentityStep(validForm()))
	})

	t.Run("unknown id type", func(t *testing.T) {
		f := validForm()
		f.IDType = "library_card"
		assert.Contains(t, ValidateIdentityStep(f), "id_type")
	})

	t.Run("document satisfied by prior upload", func(t *testing.T) {
		f := validForm()
		f.HasIDFile = false
		f.IDDocumentURL = "https://cdn/id.pdf"
		assert.Empty(t, ValidateIdentityStep(f))
	})

	t.Run("document missing entirely", func(t *testing.T) {
		f := validForm()
		f.HasIDFile = false
		f.IDDocumentURL = ""
		assert.Contains(t, ValidateIdentityStep(f), "id_document")
	})
}

func TestValidateAddressStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateAddressStep(validForm()))
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateAddressStep(&KYCForm{})
		assert.Contains(t, errs, "street1")
		assert.Contains(t, errs, "city")
		assert.Contains(t, errs, "state")
		assert.Contains(t, errs, "postal_code")
		assert.Contains(t, errs, "address_proof")
	})
}

func TestValidateBankStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateBankStep(validForm()))
	})

	t.Run("short account number", func(t *testing.T) {
		f := validForm()
		f.AccountNumber = "12345"
		assert.Contains(t, ValidateBankStep(f), "account_number")
	})

	t.Run("bad ifsc", func(t *testing.T) {
		f := validForm()
		f.IFSCCode = "SBIN1001234"
		assert.Contains(t, ValidateBankStep(f), "ifsc_code")
	})

	t.Run("unknown account type", func(t *testing.T) {
		f := validForm()
		f.AccountType = "offshore"
		assert.Contains(t, ValidateBankStep(f), "account_type")
	})
}

func TestValidateComplianceStep(t *testing.T) {
	t.Run("all declarations checked", func(t *testing.T) {
		assert.Empty(t, ValidateComplianceStep(validForm()))
	})

	t.Run("every declaration is mandatory", func(t *testing.T) {
		errs := ValidateComplianceStep(&KYCForm{})
		for _, field := range []string{"pep_declaration", "sanctions_check", "aml_compliance", "tax_compliance", "terms_accepted"} {
			assert.Contains(t, errs, field)
		}
	})
}
