package auctionerrors

import "errors"

// Lookup errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrProofNotFound   = errors.New("payment proof not found")
)

// Validation and input errors
var (
	ErrValidation       = errors.New("invalid input")
	ErrUnsupportedMedia = errors.New("file format not supported")
)

// Time-window errors
var (
	ErrStartInPast    = errors.New("auction starting time must be after present time")
	ErrEndBeforeStart = errors.New("auction ending time must be after starting time")
	ErrNotStarted     = errors.New("auction not started")
	ErrEnded          = errors.New("auction is ended")
	ErrStillActive    = errors.New("auction is still active")
)

// Business-rule errors
var (
	ErrActiveAuctionExists   = errors.New("an auction by this creator is still running")
	ErrEmailTaken            = errors.New("user already registered with this email")
	ErrBidTooLow             = errors.New("bid amount must be higher than current bid")
	ErrBidBelowStarting      = errors.New("bid amount must not be lower than starting bid")
	ErrProofExceedsBalance   = errors.New("amount exceeds unpaid commission balance")
	ErrCommissionOutstanding = errors.New("unpaid commission must be settled before posting a new auction")
)

// Infrastructure and access errors
var (
	ErrUpload    = errors.New("failed to upload file")
	ErrAuth      = errors.New("not authorized")
	ErrForbidden = errors.New("operation not permitted for this user")
)
