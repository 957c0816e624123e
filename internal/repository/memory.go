package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB,
// BidDB, UserDB and PaymentProofDB. It backs local development and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction       // key: auctionID
	bids     map[string]map[string]model.Bid // key: auctionID -> bidderID -> bid
	users    map[string]model.User          // key: userID
	emails   map[string]string              // key: lowercased email -> userID
	proofs   map[string][]model.PaymentProof // key: userID -> proofs
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string]map[string]model.Bid),
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
		proofs:   make(map[string][]model.PaymentProof),
	}
}

// AuctionDB implementation

// CreateAuction stores a new auction after write-boundary validation.
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) error {
	if err := auction.Validate(); err != nil {
		return fmt.Errorf("create auction: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction with the given id.
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(auction), nil
}

// ListAuctions returns all auctions.
func (r *MemoryRepo) ListAuctions(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, cloneAuction(a))
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

// ListAuctionsByCreator returns auctions owned by creatorID ending after endAfter.
func (r *MemoryRepo) ListAuctionsByCreator(_ context.Context, creatorID string, endAfter time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.CreatedBy != creatorID {
			continue
		}
		if !endAfter.IsZero() && !a.EndTime.After(endAfter) {
			continue
		}
		auctions = append(auctions, cloneAuction(a))
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

// ListUnsettledAuctions returns ended auctions awaiting commission settlement.
func (r *MemoryRepo) ListUnsettledAuctions(_ context.Context, now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.EndTime.Before(now) && !a.CommissionCalculated {
			auctions = append(auctions, cloneAuction(a))
		}
	}
	return auctions, nil
}

// UpdateAuction replaces a stored auction after write-boundary validation.
func (r *MemoryRepo) UpdateAuction(_ context.Context, auction model.Auction) error {
	if err := auction.Validate(); err != nil {
		return fmt.Errorf("update auction: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// UpdateWinningBid applies the CurrentBid compare-and-swap together with the
// denormalized summary entry under one lock.
func (r *MemoryRepo) UpdateWinningBid(_ context.Context, auctionID string, expectedBid float64, entry model.BidSummary, replaceExisting bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("update winning bid for %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.CurrentBid != expectedBid {
		return false, nil
	}

	if replaceExisting {
		replaced := false
		for i := range auction.Bids {
			if auction.Bids[i].BidderID == entry.BidderID {
				auction.Bids[i].Amount = entry.Amount
				replaced = true
				break
			}
		}
		if !replaced {
			return false, nil
		}
	} else {
		auction.Bids = append(append([]model.BidSummary(nil), auction.Bids...), entry)
	}
	auction.CurrentBid = entry.Amount
	r.auctions[auctionID] = auction
	return true, nil
}

// DeleteAuction removes the auction. Bid cascade is the caller's duty.
func (r *MemoryRepo) DeleteAuction(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, auctionID)
	return nil
}

// BidDB implementation

// CreateBid stores the first bid of a (bidder, auction) pair.
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) error {
	if bid.Amount <= 0 {
		return fmt.Errorf("create bid: non-positive amount: %w", auctionerrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byBidder, ok := r.bids[bid.AuctionID]
	if !ok {
		byBidder = make(map[string]model.Bid)
		r.bids[bid.AuctionID] = byBidder
	}
	byBidder[bid.Bidder.BidderID] = bid
	return nil
}

// GetBidByBidder returns the single record for a (bidder, auction) pair.
func (r *MemoryRepo) GetBidByBidder(_ context.Context, auctionID, bidderID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[auctionID][bidderID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid for auction %s by %s: %w", auctionID, bidderID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// UpdateBidAmount raises an existing record's amount in place.
func (r *MemoryRepo) UpdateBidAmount(_ context.Context, auctionID, bidderID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[auctionID][bidderID]
	if !ok {
		return fmt.Errorf("update bid for auction %s by %s: %w", auctionID, bidderID, auctionerrors.ErrBidNotFound)
	}
	bid.Amount = amount
	r.bids[auctionID][bidderID] = bid
	return nil
}

// ListBidsByAuction returns all bid records for an auction.
func (r *MemoryRepo) ListBidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byBidder := r.bids[auctionID]
	bids := make([]model.Bid, 0, len(byBidder))
	for _, b := range byBidder {
		bids = append(bids, b)
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].Amount > bids[j].Amount })
	return bids, nil
}

// DeleteBidsByAuction drops every bid record of an auction.
func (r *MemoryRepo) DeleteBidsByAuction(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bids, auctionID)
	return nil
}

// UserDB implementation

// CreateUser stores a new user after write-boundary validation.
func (r *MemoryRepo) CreateUser(_ context.Context, user model.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, taken := r.emails[key]; taken {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
	}
	r.users[user.UserID] = user
	r.emails[key] = user.UserID
	return nil
}

// GetUser returns the user with the given id.
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under email.
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.emails[emailKey(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// AddUnpaidCommission atomically adds delta to the unpaid balance.
func (r *MemoryRepo) AddUnpaidCommission(_ context.Context, userID string, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("add commission for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.UnpaidCommission += delta
	if user.UnpaidCommission < 0 {
		return fmt.Errorf("add commission for %s: balance would go negative: %w", userID, auctionerrors.ErrValidation)
	}
	r.users[userID] = user
	return nil
}

// ClearUnpaidCommission resets the unpaid balance to zero.
func (r *MemoryRepo) ClearUnpaidCommission(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("clear commission for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.UnpaidCommission = 0
	r.users[userID] = user
	return nil
}

// RecordAuctionWin credits the winner's counters.
func (r *MemoryRepo) RecordAuctionWin(_ context.Context, userID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("record win for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.AuctionsWon++
	user.MoneySpent += amount
	r.users[userID] = user
	return nil
}

// ListTopSpenders returns up to limit users ordered by MoneySpent descending.
func (r *MemoryRepo) ListTopSpenders(_ context.Context, limit int) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []model.User
	for _, u := range r.users {
		if u.MoneySpent > 0 {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].MoneySpent > users[j].MoneySpent })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// PaymentProofDB implementation

// CreatePaymentProof records a pending commission payment proof.
func (r *MemoryRepo) CreatePaymentProof(_ context.Context, proof model.PaymentProof) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proofs[proof.UserID] = append(r.proofs[proof.UserID], proof)
	return nil
}

// ListPaymentProofsByUser returns a user's proofs in upload order.
func (r *MemoryRepo) ListPaymentProofsByUser(_ context.Context, userID string) ([]model.PaymentProof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.PaymentProof(nil), r.proofs[userID]...), nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cloneAuction copies the denormalized bid slice so callers never alias
// repository state.
func cloneAuction(a model.Auction) model.Auction {
	a.Bids = append([]model.BidSummary(nil), a.Bids...)
	return a
}
