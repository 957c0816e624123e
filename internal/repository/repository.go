package repository

import (
	"context"
	"time"

	model "auction-platform/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines auction storage for the marketplace.
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	// ListAuctionsByCreator returns auctions owned by creatorID whose
	// EndTime is after the given instant. A zero time disables the filter.
	ListAuctionsByCreator(ctx context.Context, creatorID string, endAfter time.Time) ([]model.Auction, error)
	// ListUnsettledAuctions returns auctions whose EndTime has passed and
	// whose commission has not been calculated yet.
	ListUnsettledAuctions(ctx context.Context, now time.Time) ([]model.Auction, error)
	UpdateAuction(ctx context.Context, auction model.Auction) error
	// UpdateWinningBid performs a compare-and-swap on CurrentBid: the update
	// is applied only when the stored CurrentBid still equals expectedBid.
	// The denormalized summary entry is written in the same operation -
	// replaced in place when replaceExisting is set, appended otherwise.
	// Returns false without error when the swap lost to a concurrent writer.
	UpdateWinningBid(ctx context.Context, auctionID string, expectedBid float64, entry model.BidSummary, replaceExisting bool) (bool, error)
	DeleteAuction(ctx context.Context, auctionID string) error
}

// BidDB defines storage for normalized bid records.
type BidDB interface {
	CreateBid(ctx context.Context, bid model.Bid) error
	// GetBidByBidder returns the single bid record for a (bidder, auction)
	// pair, or ErrBidNotFound.
	GetBidByBidder(ctx context.Context, auctionID, bidderID string) (model.Bid, error)
	// UpdateBidAmount raises the amount of an existing (bidder, auction)
	// record in place; no second record is ever created.
	UpdateBidAmount(ctx context.Context, auctionID, bidderID string, amount float64) error
	ListBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	// DeleteBidsByAuction cascades bid removal when an auction is deleted
	// or republished.
	DeleteBidsByAuction(ctx context.Context, auctionID string) error
}

// UserDB defines user storage including commission and win counters.
type UserDB interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	// AddUnpaidCommission atomically adds delta to the user's unpaid
	// commission balance. The balance never goes below zero.
	AddUnpaidCommission(ctx context.Context, userID string, delta float64) error
	// ClearUnpaidCommission resets the unpaid commission balance to zero.
	ClearUnpaidCommission(ctx context.Context, userID string) error
	// RecordAuctionWin increments the win counter and adds the winning
	// amount to the user's money-spent accumulator.
	RecordAuctionWin(ctx context.Context, userID string, amount float64) error
	// ListTopSpenders returns up to limit users with MoneySpent > 0,
	// ordered by MoneySpent descending.
	ListTopSpenders(ctx context.Context, limit int) ([]model.User, error)
}

// PaymentProofDB defines storage for commission payment proofs.
type PaymentProofDB interface {
	CreatePaymentProof(ctx context.Context, proof model.PaymentProof) error
	ListPaymentProofsByUser(ctx context.Context, userID string) ([]model.PaymentProof, error)
}
