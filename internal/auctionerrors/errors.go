package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemExists      = errors.New("item already exists")
	ErrNoBids          = errors.New("no bids found for item")
	ErrVersionMismatch = errors.New("item version mismatch")
)

// Validation rejections. Deterministic, caller-correctable, never retried.
var (
	ErrAuctionClosed    = errors.New("auction is closed")
	ErrRoleNotPermitted = errors.New("role not permitted to bid")
	ErrMalformedAmount  = errors.New("malformed bid amount")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrExceedsMaximum   = errors.New("bid exceeds maximum amount")
	ErrInvalidItem      = errors.New("invalid item")
)

// Engine-level failures
var (
	// ErrConflict is returned after the bounded retry budget is exhausted
	// under contention; the whole submission is safe to retry.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrStorageUnavailable is returned when the store keeps failing; the
	// engine guarantees no partial commit preceded it.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
