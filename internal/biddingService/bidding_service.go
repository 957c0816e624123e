package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// maxBidRetries bounds the compare-and-swap retry loop. After losing the
// swap this many times the bid is rejected against the then-current value.
const maxBidRetries = 3

// BiddingService defines the business logic for placing bids on auctions.
//
// The admission window (startTime <= now < endTime) is a precondition
// enforced by the request path (see server.AdmissionWindow middleware),
// not re-derived here.
type BiddingService struct {
	auctions repository.AuctionDB
	bids     repository.BidDB
	users    repository.UserDB
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(auctions repository.AuctionDB, bids repository.BidDB, users repository.UserDB) *BiddingService {
	return &BiddingService{
		auctions: auctions,
		bids:     bids,
		users:    users,
	}
}

// PlaceBid validates and records a bid, returning the auction's new current
// bid. The bidder's existing record for this auction is raised in place;
// a first bid creates one record snapshotting the bidder's display details.
//
// CurrentBid and the denormalized summary entry move together through a
// compare-and-swap on CurrentBid; a lost swap re-reads and re-validates,
// up to maxBidRetries.
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (float64, error) {
	if auctionID == "" || bidderID == "" {
		return 0, fmt.Errorf("service: missing auctionID or bidderID: %w", auctionerrors.ErrValidation)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("service: non-positive bid amount: %w", auctionerrors.ErrValidation)
	}

	for attempt := 0; attempt < maxBidRetries; attempt++ {
		auction, err := s.auctions.GetAuction(ctx, auctionID)
		if err != nil {
			return 0, fmt.Errorf("service: failed to load auction: %w", err)
		}

		if amount < auction.StartingBid {
			return 0, fmt.Errorf("service: %w - starting bid is %.2f", auctionerrors.ErrBidBelowStarting, auction.StartingBid)
		}
		if amount <= auction.CurrentBid {
			return 0, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, auction.CurrentBid)
		}

		swapped, err := s.recordBid(ctx, auction, bidderID, amount)
		if err != nil {
			return 0, err
		}
		if swapped {
			return amount, nil
		}
		// Lost the swap to a concurrent bid; re-read and re-validate.
	}

	return 0, fmt.Errorf("service: bid on auction %s kept losing to concurrent bids: %w", auctionID, auctionerrors.ErrBidTooLow)
}

// recordBid applies one bid attempt against the auction state read by the
// caller. It returns false when the CurrentBid swap lost.
func (s *BiddingService) recordBid(ctx context.Context, auction model.Auction, bidderID string, amount float64) (bool, error) {
	existing, err := s.bids.GetBidByBidder(ctx, auction.AuctionID, bidderID)
	switch {
	case err == nil:
		entry := model.BidSummary{
			BidderID:     bidderID,
			UserName:     existing.Bidder.UserName,
			ProfileImage: existing.Bidder.ProfileImage,
			Amount:       amount,
		}
		swapped, err := s.auctions.UpdateWinningBid(ctx, auction.AuctionID, auction.CurrentBid, entry, true)
		if err != nil || !swapped {
			return swapped, err
		}
		if err := s.bids.UpdateBidAmount(ctx, auction.AuctionID, bidderID, amount); err != nil {
			return false, fmt.Errorf("service: failed to raise bid record: %w", err)
		}
		return true, nil

	case errors.Is(err, auctionerrors.ErrBidNotFound):
		bidder, err := s.users.GetUser(ctx, bidderID)
		if err != nil {
			return false, fmt.Errorf("service: failed to load bidder: %w", err)
		}
		entry := model.BidSummary{
			BidderID:     bidderID,
			UserName:     bidder.UserName,
			ProfileImage: bidder.ProfileImage.URL,
			Amount:       amount,
		}
		swapped, err := s.auctions.UpdateWinningBid(ctx, auction.AuctionID, auction.CurrentBid, entry, false)
		if err != nil || !swapped {
			return swapped, err
		}
		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auction.AuctionID,
			Amount:    amount,
			Bidder: model.Bidder{
				BidderID:     bidderID,
				UserName:     bidder.UserName,
				ProfileImage: bidder.ProfileImage.URL,
			},
			CreatedAt: time.Now().UTC(),
		}
		if err := s.bids.CreateBid(ctx, bid); err != nil {
			return false, fmt.Errorf("service: failed to create bid record: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("service: failed to check existing bid: %w", err)
	}
}

// Reconcile repairs a CurrentBid that diverged from the denormalized bid
// list (a crash between the auction update and the bid-record write) by
// recomputing it as the highest listed amount. Only safe on auctions that
// are no longer accepting bids; the settlement sweep calls it before
// settling.
func (s *BiddingService) Reconcile(ctx context.Context, auctionID string) (model.Auction, error) {
	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction: %w", err)
	}

	highest := auction.HighestBid()
	if auction.CurrentBid == highest {
		return auction, nil
	}

	utils.Warn("reconciling diverged current bid", map[string]any{
		"auction_id":  auctionID,
		"current_bid": auction.CurrentBid,
		"highest_bid": highest,
	})
	auction.CurrentBid = highest
	if err := s.auctions.UpdateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to repair current bid: %w", err)
	}
	return auction, nil
}

// ListBidsForAuction returns the normalized bid records, highest first.
func (s *BiddingService) ListBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: empty auction ID: %w", auctionerrors.ErrValidation)
	}
	bids, err := s.bids.ListBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}
