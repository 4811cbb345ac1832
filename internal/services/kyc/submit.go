package kyc

import (
	"context"

	"sokoni/internal/models"
)

// Submit reconciles a wizard form snapshot into the seller's single KYC
// record: it resolves the seller, uploads any outstanding documents one at
// a time, then upserts the row with status pending. The first failing
// upload short-circuits the rest and names the failing document.
func (s *Service) Submit(ctx context.Context, snap *FormSnapshot, sellerID uint) SubmitResult {
	if sellerID == 0 {
		sess, err := s.sessions.GetSession(ctx)
		if err != nil || sess == nil {
			return SubmitResult{Error: ErrNotAuthenticated.Error()}
		}
		sellerID = sess.UserID
	}

	// Strictly sequential so a failure is attributable to one document.
	// A document with a URL and no fresh attachment was uploaded in a
	// prior attempt and is left alone.
	docs := []struct {
		label   string
		docType string
		file    *File
		url     *string
	}{
		{"ID document", DocTypeIDDocument, snap.IDDocumentFile, &snap.IDDocumentURL},
		{"Address proof", DocTypeAddressProof, snap.AddressProofFile, &snap.AddressProofURL},
		{"Bank statement", DocTypeBankStatement, snap.BankStatementFile, &snap.BankStatementURL},
	}
	for _, d := range docs {
		if d.file == nil {
			continue
		}
		res := s.UploadDocument(ctx, sellerID, d.file, d.docType)
		if !res.Success {
			return SubmitResult{Error: d.label + " upload failed: " + res.Error}
		}
		*d.url = res.URL
	}

	rec := snap.record(sellerID)
	now := s.now()
	rec.KYCStatus = models.KYCStatusPending
	rec.SubmittedAt = &now

	if err := s.repo.UpsertBySeller(ctx, rec); err != nil {
		return SubmitResult{Error: err.Error()}
	}
	if err := s.repo.SetSellerKYCStatus(ctx, sellerID, models.KYCStatusPending); err != nil {
		s.logf("seller %d status mirror update failed: %v", sellerID, err)
	}
	s.invalidate(ctx, sellerID)
	return SubmitResult{Success: true, KYCID: rec.ID}
}

// SubmitDocuments is the simplified bulk-upload entry point. It takes a map
// of already-uploaded document IDs to URLs, assigns the known wizard
// documents to their columns, and merges the remainder into the record's
// AdditionalDocuments object. Existing address fields and previously stored
// extra documents are preserved. Unlike Submit this is a read-before-write
// update-or-insert, not an atomic upsert.
func (s *Service) SubmitDocuments(ctx context.Context, sellerID uint, docs map[string]string) SubmitResult {
	if sellerID == 0 {
		return SubmitResult{Error: ErrMissingSellerID.Error()}
	}

	rec, err := s.repo.GetBySeller(ctx, sellerID)
	if err != nil {
		return SubmitResult{Error: err.Error()}
	}

	isNew := rec == nil
	if isNew {
		rec = &models.KYCRecord{
			SellerID:  sellerID,
			KYCStatus: models.KYCStatusPending,
		}
		now := s.now()
		rec.SubmittedAt = &now
	}

	extra := models.JSON{}
	for k, v := range rec.AdditionalDocuments {
		extra[k] = v
	}
	for id, url := range docs {
		switch id {
		case DocTypeIDDocument:
			rec.IDDocumentURL = url
		case DocTypeAddressProof:
			rec.AddressProofURL = url
		case DocTypeBankStatement:
			rec.BankStatementURL = url
		default:
			extra[id] = url
		}
	}
	if len(extra) > 0 {
		rec.AdditionalDocuments = extra
	}

	if isNew {
		err = s.repo.Create(ctx, rec)
	} else {
		err = s.repo.Save(ctx, rec)
	}
	if err != nil {
		return SubmitResult{Error: err.Error()}
	}
	s.invalidate(ctx, sellerID)
	return SubmitResult{Success: true, KYCID: rec.ID}
}
