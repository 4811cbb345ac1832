package kyc

import (
	"fmt"
	"strings"

	"context"

	"sokoni/internal/storage"
	"sokoni/internal/validation"
)

// maxDocumentSize returns the size ceiling for a document type. The wizard
// proofs cap at 5 MB; the bank statement and any bulk-uploaded document cap
// at 10 MB. The two ceilings are deliberately not unified.
func maxDocumentSize(docType string) int64 {
	switch docType {
	case DocTypeIDDocument, DocTypeAddressProof:
		return validation.MaxProofDocumentSize
	case DocTypeBankStatement:
		return validation.MaxBankStatementSize
	default:
		return validation.MaxKYCDocumentSize
	}
}

// fileExt derives the storage extension from the original file name,
// defaulting to pdf when the name carries none.
func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return strings.ToLower(name[i+1:])
	}
	return "pdf"
}

// UploadDocument moves one file into object storage and returns the URL it
// is reachable at. Preconditions are checked before any network call; the
// storage write is retried with back-off; on success a long-lived signed
// URL is issued, falling back to the public URL and finally the bare path.
func (s *Service) UploadDocument(ctx context.Context, sellerID uint, file *File, docType string) DocumentUploadResult {
	if sellerID == 0 {
		return DocumentUploadResult{Error: ErrMissingSellerID.Error()}
	}
	if file == nil || file.Size() == 0 {
		return DocumentUploadResult{Error: ErrEmptyFile.Error()}
	}
	if reason := validation.CheckDocument(file.ContentType, file.Size(), maxDocumentSize(docType)); reason != "" {
		return DocumentUploadResult{Error: reason}
	}

	// Confirm the session is still live before starting the transfer, so
	// an upload is never initiated with a token about to expire mid-flight.
	sess, err := s.sessions.GetSession(ctx)
	if err != nil || sess == nil {
		return DocumentUploadResult{Error: ErrSessionExpired.Error()}
	}

	// Timestamped path: unique per call, shared across retries within it.
	path := fmt.Sprintf("%d/%s_%d.%s", sellerID, docType, s.now().UnixMilli(), fileExt(file.Name))

	var lastErr error
	for attempt := 0; attempt < s.backoff.MaxAttempts; attempt++ {
		if attempt > 0 {
			s.sleep(s.backoff.Delay(attempt))
		}
		err := s.storage.Upload(ctx, path, file.Data, storage.UploadOptions{
			ContentType: file.ContentType,
			Upsert:      true,
		})
		if err != nil {
			lastErr = err
			s.logf("upload attempt %d for %s failed: %v", attempt+1, path, err)
			continue
		}
		return DocumentUploadResult{Success: true, URL: s.resolveURL(ctx, path)}
	}
	return DocumentUploadResult{Error: lastErr.Error()}
}

// resolveURL prefers a signed URL, then the public URL, then the bare path.
func (s *Service) resolveURL(ctx context.Context, path string) string {
	if url, err := s.storage.CreateSignedURL(ctx, path, s.signedURLTTL); err == nil && url != "" {
		return url
	} else if err != nil {
		s.logf("signed url for %s failed, falling back: %v", path, err)
	}
	if url := s.storage.GetPublicURL(path); url != "" {
		return url
	}
	return path
}
