package validation

// Document size ceilings in bytes. The step-wizard proofs cap at 5 MB while
// the bank statement and the generic KYC document bucket cap at 10 MB; the
// two ceilings are intentionally kept separate.
const (
	MaxProofDocumentSize = 5 * 1024 * 1024
	MaxBankStatementSize = 10 * 1024 * 1024
	MaxKYCDocumentSize   = 10 * 1024 * 1024

	// String lengths
	MaxNameLength  = 120
	MaxNotesLength = 500
)

// AllowedDocumentTypes is the MIME allow-list for every uploaded document.
var AllowedDocumentTypes = []string{
	"image/jpeg",
	"image/png",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}
