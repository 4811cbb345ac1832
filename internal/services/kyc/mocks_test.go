package kyc

import (
	"context"
	"fmt"
	"time"

	"sokoni/internal/models"
	"sokoni/internal/storage"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) UpsertBySeller(ctx context.Context, rec *models.KYCRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRepository) Create(ctx context.Context, rec *models.KYCRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRepository) GetBySeller(ctx context.Context, sellerID uint) (*models.KYCRecord, error) {
	args := m.Called(ctx, sellerID)
	if rec := args.Get(0); rec != nil {
		return rec.(*models.KYCRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*models.KYCRecord, error) {
	args := m.Called(ctx, id)
	if rec := args.Get(0); rec != nil {
		return rec.(*models.KYCRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockRepository) Save(ctx context.Context, rec *models.KYCRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) SetSellerVerification(ctx context.Context, sellerID uint, verified, approved bool) error {
	args := m.Called(ctx, sellerID, verified, approved)
	return args.Error(0)
}

func (m *mockRepository) SetSellerKYCStatus(ctx context.Context, sellerID uint, status string) error {
	args := m.Called(ctx, sellerID, status)
	return args.Error(0)
}

func (m *mockRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.KYCRecord, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var recs []models.KYCRecord
	if v := args.Get(0); v != nil {
		recs = v.([]models.KYCRecord)
	}
	return recs, args.Get(1).(int64), args.Error(2)
}

// stubSessions returns a canned session.
type stubSessions struct {
	sess *Session
	err  error
}

func (s stubSessions) GetSession(ctx context.Context) (*Session, error) {
	return s.sess, s.err
}

// flakyStore fails the first N uploads, then behaves like Memory.
type flakyStore struct {
	*storage.Memory
	failures int
	calls    int
}

func (f *flakyStore) Upload(ctx context.Context, path string, data []byte, opts storage.UploadOptions) error {
	f.calls++
	if f.calls <= f.failures {
		return fmt.Errorf("transient storage error %d", f.calls)
	}
	return f.Memory.Upload(ctx, path, data, opts)
}

// unsignedStore never issues signed URLs.
type unsignedStore struct {
	*storage.Memory
}

func (u *unsignedStore) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	return "", fmt.Errorf("signing unavailable")
}

type fakeCache struct {
	records     map[uint]*models.KYCRecord
	invalidated []uint
	sets        int
}

func newFakeCache() *fakeCache {
	return &fakeCache{records: make(map[uint]*models.KYCRecord)}
}

func (c *fakeCache) GetRecord(ctx context.Context, sellerID uint) (*models.KYCRecord, bool) {
	rec, ok := c.records[sellerID]
	return rec, ok
}

func (c *fakeCache) SetRecord(ctx context.Context, rec *models.KYCRecord) {
	c.sets++
	c.records[rec.SellerID] = rec
}

func (c *fakeCache) Invalidate(ctx context.Context, sellerID uint) {
	c.invalidated = append(c.invalidated, sellerID)
	delete(c.records, sellerID)
}

var testNow = time.UnixMilli(1700000000000)

// newTestService builds a service with an instant sleeper that records the
// requested back-off delays, and a fixed clock.
func newTestService(repo Repository, store storage.ObjectStorage, sessions SessionProvider, cache Cache) (*Service, *[]time.Duration) {
	delays := &[]time.Duration{}
	svc := NewService(repo, store, sessions, cache, Config{
		Sleep: func(d time.Duration) { *delays = append(*delays, d) },
		Now:   func() time.Time { return testNow },
	})
	return svc, delays
}

func sellerSession() *Session {
	return &Session{UserID: 42, Email: "seller@example.com", Role: "seller"}
}

func pdfFile(size int) *File {
	return &File{Name: "doc.pdf", ContentType: "application/pdf", Data: make([]byte, size)}
}
