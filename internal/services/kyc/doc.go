/*
Package kyc implements seller identity verification for the marketplace.

It covers the four stages of the verification lifecycle:
  - the five-step wizard that gates data entry on per-step validation
  - the document upload pipeline (session check, retry with back-off,
    signed URL issuance)
  - the submission reconciler that uploads outstanding documents and
    upserts one record per seller
  - the admin approval workflow (approve / reject / update / delete)

Usage:

	svc := kyc.NewService(repo, store, sessions, cache, kyc.Config{})

	// Seller submission
	res := svc.Submit(ctx, snapshot, sellerID)

	// Admin decision
	err := svc.Approve(ctx, kycID, sellerID, adminID)

Every seller-facing operation returns a result value rather than an error
so handlers can render user messages without unwrapping; admin operations
return plain errors with the store's message preserved.
*/
package kyc
