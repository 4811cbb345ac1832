package kyc

import (
	"context"
	"strings"

	"sokoni/internal/models"
)

// Approve marks a pending or rejected record approved, stamps the deciding
// admin, clears any prior rejection reason and cascades the seller's
// storefront visibility flags.
func (s *Service) Approve(ctx context.Context, kycID, sellerID, adminID uint) error {
	patch := map[string]interface{}{
		"kyc_status":        models.KYCStatusApproved,
		"verified_by_admin": adminID,
		"verified_at":       s.now(),
		"rejection_reason":  "",
	}
	if err := s.repo.Update(ctx, kycID, patch); err != nil {
		return err
	}
	if err := s.repo.SetSellerVerification(ctx, sellerID, true, true); err != nil {
		return err
	}
	if err := s.repo.SetSellerKYCStatus(ctx, sellerID, models.KYCStatusApproved); err != nil {
		s.logf("seller %d status mirror update failed: %v", sellerID, err)
	}
	s.invalidate(ctx, sellerID)
	s.logf("record %d approved by admin %d", kycID, adminID)
	return nil
}

// Reject marks a record rejected with a mandatory reason and revokes the
// seller's visibility flags. An empty reason never reaches the store.
func (s *Service) Reject(ctx context.Context, kycID, sellerID uint, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyRejectionReason
	}
	patch := map[string]interface{}{
		"kyc_status":       models.KYCStatusRejected,
		"rejection_reason": reason,
		"verified_at":      s.now(),
	}
	if err := s.repo.Update(ctx, kycID, patch); err != nil {
		return err
	}
	if err := s.repo.SetSellerVerification(ctx, sellerID, false, false); err != nil {
		return err
	}
	if err := s.repo.SetSellerKYCStatus(ctx, sellerID, models.KYCStatusRejected); err != nil {
		s.logf("seller %d status mirror update failed: %v", sellerID, err)
	}
	s.invalidate(ctx, sellerID)
	s.logf("record %d rejected: %s", kycID, reason)
	return nil
}

// UpdateRecord applies an arbitrary admin field patch. The record's
// lifecycle status is owned by Approve/Reject and is stripped from the
// patch if present.
func (s *Service) UpdateRecord(ctx context.Context, kycID uint, patch map[string]interface{}) error {
	if _, ok := patch["kyc_status"]; ok {
		s.logf("record %d patch tried to set kyc_status, ignoring", kycID)
		delete(patch, "kyc_status")
	}
	if len(patch) == 0 {
		return nil
	}
	rec, err := s.repo.GetByID(ctx, kycID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRecordNotFound
	}
	if err := s.repo.Update(ctx, kycID, patch); err != nil {
		return err
	}
	s.invalidate(ctx, rec.SellerID)
	return nil
}

// DeleteRecord hard-deletes a record. The seller's visibility flags are
// deliberately left untouched.
func (s *Service) DeleteRecord(ctx context.Context, kycID uint) error {
	rec, err := s.repo.GetByID(ctx, kycID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRecordNotFound
	}
	if err := s.repo.Delete(ctx, kycID); err != nil {
		return err
	}
	s.invalidate(ctx, rec.SellerID)
	s.logf("record %d deleted (seller %d)", kycID, rec.SellerID)
	return nil
}

// ListByStatus returns records in a lifecycle state for the admin queue.
func (s *Service) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.KYCRecord, int64, error) {
	return s.repo.ListByStatus(ctx, status, limit, offset)
}
