package cache

import (
	"context"
	"fmt"
	"log"

	"sokoni/internal/models"
)

// KYCCache caches per-seller KYC records for status reads. Backend errors
// are logged and treated as misses so the caller always falls through to
// the record store.
type KYCCache struct {
	svc *Service
}

func NewKYCCache(svc *Service) *KYCCache {
	return &KYCCache{svc: svc}
}

func kycKey(sellerID uint) string {
	return fmt.Sprintf("kyc:record:%d", sellerID)
}

func (c *KYCCache) GetRecord(ctx context.Context, sellerID uint) (*models.KYCRecord, bool) {
	var rec models.KYCRecord
	hit, err := c.svc.Get(ctx, kycKey(sellerID), &rec)
	if err != nil {
		log.Printf("kyc cache read for seller %d failed: %v", sellerID, err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	return &rec, true
}

func (c *KYCCache) SetRecord(ctx context.Context, rec *models.KYCRecord) {
	if rec == nil {
		return
	}
	if err := c.svc.Set(ctx, kycKey(rec.SellerID), rec); err != nil {
		log.Printf("kyc cache write for seller %d failed: %v", rec.SellerID, err)
	}
}

func (c *KYCCache) Invalidate(ctx context.Context, sellerID uint) {
	if err := c.svc.Delete(ctx, kycKey(sellerID)); err != nil {
		log.Printf("kyc cache invalidation for seller %d failed: %v", sellerID, err)
	}
}
