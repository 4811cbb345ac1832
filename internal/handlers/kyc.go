package handlers

import (
	"io"
	"log"
	"mime/multipart"
	"strconv"

	"sokoni/internal/models"
	"sokoni/internal/services/kyc"
	"sokoni/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// KYCHandler exposes the seller-facing verification endpoints: status
// reads, per-document uploads, the wizard reducer and submission.
type KYCHandler struct {
	service *kyc.Service
}

func NewKYCHandler(s *kyc.Service) *KYCHandler {
	return &KYCHandler{service: s}
}

// GetStatus returns the caller's KYC record, shaped for the storefront
// verification banner.
func (h *KYCHandler) GetStatus(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	rec, err := h.service.GetStatus(c.UserContext(), claims.UserID)
	if err != nil {
		log.Printf("Error fetching KYC status for seller %d: %v", claims.UserID, err)
		return response.ServerError(c, "Failed to fetch KYC status")
	}
	if rec == nil {
		return response.Success(c, "KYC status", fiber.Map{
			"kyc_status": models.KYCStatusDraft,
			"submitted":  false,
		})
	}
	return response.Success(c, "KYC status", fiber.Map{
		"kyc_status":       rec.KYCStatus,
		"kyc_tier":         rec.KYCTier,
		"submitted":        rec.SubmittedAt != nil,
		"submitted_at":     rec.SubmittedAt,
		"rejection_reason": rec.RejectionReason,
	})
}

// UploadDocument receives one multipart file and moves it through the
// upload pipeline. The result is always 200 with the uniform
// DocumentUploadResult body; failures are carried in it, not as HTTP errors.
func (h *KYCHandler) UploadDocument(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	docType := c.FormValue("doc_type")
	if docType == "" {
		return response.BadRequest(c, "doc_type is required")
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file is required")
	}
	file, err := readMultipartFile(fileHeader)
	if err != nil {
		return response.BadRequest(c, "could not read uploaded file")
	}

	res := h.service.UploadDocument(c.UserContext(), claims.UserID, file, docType)
	return c.JSON(res)
}

// Wizard is the stateless reducer endpoint: the storefront posts the
// current wizard state plus an action and receives the next state. The
// submit action hands the snapshot to the reconciler.
func (h *KYCHandler) Wizard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		Action string          `json:"action"`
		State  kyc.WizardState `json:"state"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	state := input.State
	if state.Step == 0 {
		state = kyc.NewWizard()
	}

	switch input.Action {
	case "next":
		state = state.Next()
	case "previous":
		state = state.Previous()
	case "retry":
		state = state.Retry()
	case "submit":
		state = state.Submit(c.UserContext(), h.service, claims.UserID)
	case "validate":
		state.Errors = state.Validate()
	default:
		return response.BadRequest(c, "action must be one of: next, previous, retry, submit, validate")
	}

	return response.Success(c, "wizard state", state)
}

// Submit is the single-shot submission path: the full form plus any
// outstanding documents in one multipart request.
func (h *KYCHandler) Submit(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var snap kyc.FormSnapshot
	if err := c.BodyParser(&snap); err != nil {
		return response.BadRequest(c, "invalid form data")
	}

	for field, dest := range map[string]**kyc.File{
		"id_document":    &snap.IDDocumentFile,
		"address_proof":  &snap.AddressProofFile,
		"bank_statement": &snap.BankStatementFile,
	} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}
		file, err := readMultipartFile(fh)
		if err != nil {
			return response.BadRequest(c, "could not read uploaded "+field)
		}
		*dest = file
	}

	// Validated after the attachments are read, since a fresh file can
	// satisfy a document requirement a URL would otherwise cover.
	if errs := snap.Validate(); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	res := h.service.Submit(c.UserContext(), &snap, claims.UserID)
	if !res.Success {
		return response.Error(c, fiber.StatusUnprocessableEntity, res.Error)
	}
	return response.Success(c, "KYC submitted", fiber.Map{"kyc_id": res.KYCID})
}

// SubmitDocuments is the simplified bulk-upload flow: every multipart file
// is pushed through the generic document bucket, then the resulting
// document-ID-to-URL map is reconciled into the seller's record.
func (h *KYCHandler) SubmitDocuments(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "multipart form is required")
	}

	uploaded := make(map[string]string)
	for field, headers := range form.File {
		for _, fh := range headers {
			file, err := readMultipartFile(fh)
			if err != nil {
				return response.BadRequest(c, "could not read uploaded "+field)
			}
			docID := field
			if docID == "" || docID == "files" {
				docID = uuid.NewString()
			}
			res := h.service.UploadDocument(c.UserContext(), claims.UserID, file, docID)
			if !res.Success {
				return response.Error(c, fiber.StatusUnprocessableEntity, docID+" upload failed: "+res.Error)
			}
			uploaded[docID] = res.URL
		}
	}
	if len(uploaded) == 0 {
		return response.BadRequest(c, "no documents attached")
	}

	res := h.service.SubmitDocuments(c.UserContext(), claims.UserID, uploaded)
	if !res.Success {
		return response.Error(c, fiber.StatusUnprocessableEntity, res.Error)
	}
	return response.Success(c, "documents submitted", fiber.Map{
		"kyc_id":    res.KYCID,
		"documents": uploaded,
	})
}

func readMultipartFile(fh *multipart.FileHeader) (*kyc.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &kyc.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(v), err
}
