package kyc

import "errors"

// Service errors
var (
	ErrMissingSellerID      = errors.New("missing seller id")
	ErrEmptyFile            = errors.New("file is empty")
	ErrSessionExpired       = errors.New("session expired, please sign in again")
	ErrNotAuthenticated     = errors.New("not authenticated: unable to resolve seller identity")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
	ErrRecordNotFound       = errors.New("kyc record not found")
)
