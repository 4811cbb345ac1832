package kyc

import (
	"context"
	"log"
	"time"

	"sokoni/internal/models"
	"sokoni/internal/storage"
)

// Config tunes service behavior. Zero values fall back to defaults.
type Config struct {
	Backoff      BackoffPolicy
	Sleep        Sleeper
	Now          func() time.Time
	SignedURLTTL time.Duration
}

// Service orchestrates the KYC lifecycle: uploads, submission and the
// admin approval workflow.
type Service struct {
	repo     Repository
	storage  storage.ObjectStorage
	sessions SessionProvider
	cache    Cache

	backoff      BackoffPolicy
	sleep        Sleeper
	now          func() time.Time
	signedURLTTL time.Duration
}

// NewService creates a KYC service. cache may be nil.
func NewService(repo Repository, store storage.ObjectStorage, sessions SessionProvider, cache Cache, cfg Config) *Service {
	if cfg.Backoff.MaxAttempts == 0 {
		cfg.Backoff = DefaultBackoff()
	}
	if cfg.Backoff.Delay == nil {
		cfg.Backoff.Delay = DefaultBackoff().Delay
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SignedURLTTL == 0 {
		cfg.SignedURLTTL = SignedURLTTL
	}
	return &Service{
		repo:         repo,
		storage:      store,
		sessions:     sessions,
		cache:        cache,
		backoff:      cfg.Backoff,
		sleep:        cfg.Sleep,
		now:          cfg.Now,
		signedURLTTL: cfg.SignedURLTTL,
	}
}

// GetStatus returns the seller's current KYC record, serving hot reads
// from cache. A seller with no record yet gets (nil, nil).
func (s *Service) GetStatus(ctx context.Context, sellerID uint) (*models.KYCRecord, error) {
	if s.cache != nil {
		if rec, ok := s.cache.GetRecord(ctx, sellerID); ok {
			return rec, nil
		}
	}
	rec, err := s.repo.GetBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if rec != nil && s.cache != nil {
		s.cache.SetRecord(ctx, rec)
	}
	return rec, nil
}

func (s *Service) invalidate(ctx context.Context, sellerID uint) {
	if s.cache == nil || sellerID == 0 {
		return
	}
	s.cache.Invalidate(ctx, sellerID)
}

func (s *Service) logf(format string, args ...interface{}) {
	log.Printf("kyc: "+format, args...)
}
