package repositories

import (
	"context"
	"errors"

	"sokoni/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kycUpsertColumns are the columns a resubmission is allowed to overwrite.
// Lifecycle columns owned by the approval workflow (rejection_reason,
// verified_by_admin, verified_at, kyc_tier) are deliberately excluded, so a
// resubmission after rejection flips the status back to pending while the
// prior rejection reason stays on the row until an admin approves.
var kycUpsertColumns = []string{
	"email", "phone", "full_name", "country",
	"pan", "gstin",
	"id_type", "id_number", "id_document_url",
	"address_street1", "address_street2", "address_city", "address_state",
	"address_postal_code", "address_type", "address_notes",
	"address_proof_url",
	"bank_holder_name", "account_number", "account_type", "ifsc_code",
	"bank_statement_url",
	"pep_declaration", "sanctions_check", "aml_compliance", "tax_compliance",
	"terms_accepted",
	"kyc_status", "submitted_at", "updated_at",
}

// KYCRepository is the gorm-backed record store for KYC records.
type KYCRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a KYC repository over db.
func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

// UpsertBySeller inserts rec or overwrites the live row for its seller.
// Last write wins; there is no per-seller lock.
func (r *KYCRepository) UpsertBySeller(ctx context.Context, rec *models.KYCRecord) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "seller_id"}},
			DoUpdates: clause.AssignmentColumns(kycUpsertColumns),
		}).
		Create(rec).Error
	if err != nil {
		return err
	}
	// On the conflict path gorm does not backfill the primary key.
	if rec.ID == 0 {
		existing, err := r.GetBySeller(ctx, rec.SellerID)
		if err != nil {
			return err
		}
		if existing != nil {
			rec.ID = existing.ID
		}
	}
	return nil
}

func (r *KYCRepository) Create(ctx context.Context, rec *models.KYCRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *KYCRepository) GetBySeller(ctx context.Context, sellerID uint) (*models.KYCRecord, error) {
	var rec models.KYCRecord
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *KYCRepository) GetByID(ctx context.Context, id uint) (*models.KYCRecord, error) {
	var rec models.KYCRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *KYCRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.KYCRecord{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *KYCRepository) Save(ctx context.Context, rec *models.KYCRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *KYCRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.KYCRecord{}, id).Error
}

// SetSellerVerification cascades an approval decision to the seller's
// storefront visibility flags.
func (r *KYCRepository) SetSellerVerification(ctx context.Context, sellerID uint, verified, approved bool) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", sellerID).
		Updates(map[string]interface{}{
			"is_verified": verified,
			"approved":    approved,
		}).Error
}

// SetSellerKYCStatus updates the status mirror on the seller account.
func (r *KYCRepository) SetSellerKYCStatus(ctx context.Context, sellerID uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", sellerID).
		Update("kyc_status", status).Error
}

// ListByStatus returns a page of records in the given lifecycle state,
// oldest submissions first.
func (r *KYCRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.KYCRecord, int64, error) {
	var (
		records []models.KYCRecord
		total   int64
	)
	q := r.db.WithContext(ctx).Model(&models.KYCRecord{}).Where("kyc_status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("submitted_at ASC NULLS LAST").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
