package kyc

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"sokoni/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocumentSucceedsFirstTry(t *testing.T) {
	store := storage.NewMemory()
	svc, delays := newTestService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(2*1024*1024), DocTypeIDDocument)

	require.True(t, res.Success, "unexpected error: %s", res.Error)
	assert.True(t, strings.HasPrefix(res.URL, "memory://42/id_document_"), "got url %q", res.URL)
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, *delays)
}

func TestUploadDocumentRetriesWithBackoff(t *testing.T) {
	store := &flakyStore{Memory: storage.NewMemory(), failures: 2}
	svc, delays := newTestService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(1024), DocTypeIDDocument)

	require.True(t, res.Success, "unexpected error: %s", res.Error)
	assert.Equal(t, 3, store.calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *delays)
	assert.Equal(t, 1, store.Memory.Len())
}

func TestUploadDocumentDefaultsDelayWhenUnset(t *testing.T) {
	// A caller setting only MaxAttempts must still get the default back-off
	// schedule instead of a nil Delay.
	store := &flakyStore{Memory: storage.NewMemory(), failures: 2}
	var delays []time.Duration
	svc := NewService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil, Config{
		Backoff: BackoffPolicy{MaxAttempts: 3},
		Sleep:   func(d time.Duration) { delays = append(delays, d) },
	})

	res := svc.UploadDocument(context.Background(), 42, pdfFile(1024), DocTypeIDDocument)

	require.True(t, res.Success, "unexpected error: %s", res.Error)
	assert.Equal(t, 3, store.calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, delays)
}

func TestUploadDocumentExhaustsRetries(t *testing.T) {
	store := &flakyStore{Memory: storage.NewMemory(), failures: 3}
	svc, delays := newTestService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(1024), DocTypeIDDocument)

	assert.False(t, res.Success)
	assert.Equal(t, "transient storage error 3", res.Error)
	assert.Equal(t, 3, store.calls)
	assert.Len(t, *delays, 2)
}

func TestUploadDocumentPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		sellerID uint
		file     *File
		docType  string
		wantErr  string
	}{
		{
			name:    "missing seller id",
			file:    pdfFile(1024),
			docType: DocTypeIDDocument,
			wantErr: ErrMissingSellerID.Error(),
		},
		{
			name:     "nil file",
			sellerID: 42,
			docType:  DocTypeIDDocument,
			wantErr:  ErrEmptyFile.Error(),
		},
		{
			name:     "empty file",
			sellerID: 42,
			file:     &File{Name: "doc.pdf", ContentType: "application/pdf"},
			docType:  DocTypeIDDocument,
			wantErr:  ErrEmptyFile.Error(),
		},
		{
			name:     "proof over 5 MB",
			sellerID: 42,
			file:     pdfFile(6 * 1024 * 1024),
			docType:  DocTypeAddressProof,
			wantErr:  "file exceeds the 5 MB size limit",
		},
		{
			name:     "bank statement over 10 MB",
			sellerID: 42,
			file:     pdfFile(11 * 1024 * 1024),
			docType:  DocTypeBankStatement,
			wantErr:  "file exceeds the 10 MB size limit",
		},
		{
			name:     "disallowed content type",
			sellerID: 42,
			file:     &File{Name: "doc.exe", ContentType: "application/octet-stream", Data: []byte("x")},
			docType:  DocTypeIDDocument,
			wantErr:  "file type must be JPEG, PNG, PDF, DOC or DOCX",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &flakyStore{Memory: storage.NewMemory()}
			svc, _ := newTestService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil)

			res := svc.UploadDocument(context.Background(), tt.sellerID, tt.file, tt.docType)

			assert.False(t, res.Success)
			assert.Equal(t, tt.wantErr, res.Error)
			assert.Zero(t, store.calls, "storage must not be touched on a precondition failure")
		})
	}
}

func TestUploadDocumentBankStatementAllowsLargerFiles(t *testing.T) {
	// A 6 MB file is over the proof ceiling but under the statement ceiling.
	store := storage.NewMemory()
	svc, _ := newTestService(&mockRepository{}, store, stubSessions{sess: sellerSession()}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(6*1024*1024), DocTypeBankStatement)

	require.True(t, res.Success, "unexpected error: %s", res.Error)
	assert.Equal(t, 1, store.Len())
}

func TestUploadDocumentChecksSessionBeforeTransfer(t *testing.T) {
	store := &flakyStore{Memory: storage.NewMemory()}
	svc, _ := newTestService(&mockRepository{}, store, stubSessions{}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(1024), DocTypeIDDocument)

	assert.False(t, res.Success)
	assert.Equal(t, ErrSessionExpired.Error(), res.Error)
	assert.Zero(t, store.calls)
}

func TestUploadDocumentSessionLookupError(t *testing.T) {
	store := &flakyStore{Memory: storage.NewMemory()}
	svc, _ := newTestService(&mockRepository{}, store, stubSessions{err: fmt.Errorf("token store down")}, nil)

	res := svc.UploadDocument(context.Background(), 42, pdfFile(1024), DocTypeIDDocument)

	assert.Equal(t, ErrSessionExpired.Error(), res.Error)
	assert.Zero(t, store.calls)
}

func TestUploadDocumentURLFallbacks(t *testing.T) {
	path := fmt.Sprintf("42/id_document_%d.png", testNow.UnixMilli())
	file := &File{Name: "selfie.PNG", ContentType: "image/png", Data: []byte("png-bytes")}

	t.Run("public url when signing unavailable", func(t *testing.T) {
		mem := storage.NewMemory()
		mem.PublicBaseURL = "https://cdn.example.com/kyc"
		svc, _ := newTestService(&mockRepository{}, &unsignedStore{Memory: mem}, stubSessions{sess: sellerSession()}, nil)

		res := svc.UploadDocument(context.Background(), 42, file, DocTypeIDDocument)

		require.True(t, res.Success)
		assert.Equal(t, "https://cdn.example.com/kyc/"+path, res.URL)
	})

	t.Run("bare path when nothing else works", func(t *testing.T) {
		svc, _ := newTestService(&mockRepository{}, &unsignedStore{Memory: storage.NewMemory()}, stubSessions{sess: sellerSession()}, nil)

		res := svc.UploadDocument(context.Background(), 42, file, DocTypeIDDocument)

		require.True(t, res.Success)
		assert.Equal(t, path, res.URL)
	})
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, "png", fileExt("photo.PNG"))
	assert.Equal(t, "pdf", fileExt("statement.pdf"))
	assert.Equal(t, "pdf", fileExt("no-extension"))
	assert.Equal(t, "pdf", fileExt("trailing-dot."))
}
