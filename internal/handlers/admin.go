package handlers

import (
	"log"

	"sokoni/internal/models"
	"sokoni/internal/services/kyc"
	"sokoni/internal/utils/pagination"
	"sokoni/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminKYCHandler exposes the approval workflow to back-office admins.
type AdminKYCHandler struct {
	service *kyc.Service
}

func NewAdminKYCHandler(s *kyc.Service) *AdminKYCHandler {
	return &AdminKYCHandler{service: s}
}

// ListRecords returns a paginated queue of records in one lifecycle state
// (pending by default, oldest submissions first).
func (h *AdminKYCHandler) ListRecords(c *fiber.Ctx) error {
	status := c.Query("status", models.KYCStatusPending)
	p := pagination.ParseFromRequest(c)

	records, total, err := h.service.ListByStatus(c.UserContext(), status, p.Limit, p.Offset)
	if err != nil {
		log.Printf("Error listing %s KYC records: %v", status, err)
		return response.ServerError(c, "Failed to fetch KYC records")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, records))
}

// Approve marks a record approved and flips the seller's storefront flags.
func (h *AdminKYCHandler) Approve(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	kycID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid record id")
	}
	var input struct {
		SellerID uint `json:"seller_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.SellerID == 0 {
		return response.BadRequest(c, "seller_id is required")
	}

	log.Printf("Admin %d approving KYC record %d (seller %d)", claims.UserID, kycID, input.SellerID)
	if err := h.service.Approve(c.UserContext(), kycID, input.SellerID, claims.UserID); err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "KYC approved", fiber.Map{"kyc_id": kycID})
}

// Reject marks a record rejected. The reason is mandatory and is checked
// here before anything reaches the store.
func (h *AdminKYCHandler) Reject(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	kycID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid record id")
	}
	var input struct {
		SellerID uint   `json:"seller_id"`
		Reason   string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil || input.SellerID == 0 {
		return response.BadRequest(c, "seller_id is required")
	}

	log.Printf("Admin %d rejecting KYC record %d (seller %d)", claims.UserID, kycID, input.SellerID)
	if err := h.service.Reject(c.UserContext(), kycID, input.SellerID, input.Reason); err != nil {
		if err == kyc.ErrEmptyRejectionReason {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "KYC rejected", fiber.Map{"kyc_id": kycID})
}

// Update applies an arbitrary admin field patch. Lifecycle status changes
// are refused; they belong to Approve/Reject.
func (h *AdminKYCHandler) Update(c *fiber.Ctx) error {
	kycID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid record id")
	}
	patch := map[string]interface{}{}
	if err := c.BodyParser(&patch); err != nil || len(patch) == 0 {
		return response.BadRequest(c, "patch body is required")
	}

	if err := h.service.UpdateRecord(c.UserContext(), kycID, patch); err != nil {
		if err == kyc.ErrRecordNotFound {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "KYC updated", fiber.Map{"kyc_id": kycID})
}

// Delete hard-deletes a record. Seller visibility flags are not touched.
func (h *AdminKYCHandler) Delete(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	kycID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid record id")
	}

	log.Printf("Admin %d deleting KYC record %d", claims.UserID, kycID)
	if err := h.service.DeleteRecord(c.UserContext(), kycID); err != nil {
		if err == kyc.ErrRecordNotFound {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "KYC record deleted", fiber.Map{"kyc_id": kycID})
}
