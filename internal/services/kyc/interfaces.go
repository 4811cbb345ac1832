package kyc

import (
	"context"
	"time"

	"sokoni/internal/models"
)

// Repository is the record-store surface the service depends on. The gorm
// implementation lives in internal/repositories.
type Repository interface {
	// UpsertBySeller inserts rec or overwrites the existing row for its
	// SellerID, filling rec.ID either way. It must not touch lifecycle
	// columns owned by the approval workflow (rejection_reason,
	// verified_by_admin, kyc_tier).
	UpsertBySeller(ctx context.Context, rec *models.KYCRecord) error

	Create(ctx context.Context, rec *models.KYCRecord) error
	GetBySeller(ctx context.Context, sellerID uint) (*models.KYCRecord, error)
	GetByID(ctx context.Context, id uint) (*models.KYCRecord, error)

	// Update applies a partial column patch to the record with the given id.
	Update(ctx context.Context, id uint, patch map[string]interface{}) error

	// Save persists a fully loaded record (read-before-write path).
	Save(ctx context.Context, rec *models.KYCRecord) error

	Delete(ctx context.Context, id uint) error

	// SetSellerVerification cascades the decision to the seller's
	// storefront visibility flags.
	SetSellerVerification(ctx context.Context, sellerID uint, verified, approved bool) error

	// SetSellerKYCStatus keeps the status mirror on the seller account in
	// step with the record's lifecycle.
	SetSellerKYCStatus(ctx context.Context, sellerID uint, status string) error

	ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.KYCRecord, int64, error)
}

// SessionProvider resolves the authenticated caller. A nil session with a
// nil error means nobody is signed in.
type SessionProvider interface {
	GetSession(ctx context.Context) (*Session, error)
}

// Cache holds hot per-seller record reads. Implementations swallow and log
// their own backend errors; a miss is just (nil, false).
type Cache interface {
	GetRecord(ctx context.Context, sellerID uint) (*models.KYCRecord, bool)
	SetRecord(ctx context.Context, rec *models.KYCRecord)
	Invalidate(ctx context.Context, sellerID uint)
}

// Sleeper waits out retry back-off. Injected so tests run without timers.
type Sleeper func(d time.Duration)
