// Package settlement closes out ended auctions on a schedule: it repairs
// bidding state, credits the winner and accrues the creator's commission.
package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// Reconciler repairs an auction's current bid against its bid list before
// the auction is settled.
type Reconciler interface {
	Reconcile(ctx context.Context, auctionID string) (model.Auction, error)
}

// Sweeper settles ended auctions whose commission has not been calculated.
type Sweeper struct {
	auctions   repository.AuctionDB
	users      repository.UserDB
	reconciler Reconciler
	rate       float64
	interval   time.Duration
	cron       *cron.Cron
}

// NewSweeper creates a new Sweeper instance. rate is the commission
// fraction applied to the winning amount at settlement.
func NewSweeper(auctions repository.AuctionDB, users repository.UserDB, reconciler Reconciler, rate float64, interval time.Duration) *Sweeper {
	return &Sweeper{
		auctions:   auctions,
		users:      users,
		reconciler: reconciler,
		rate:       rate,
		interval:   interval,
	}
}

// Start schedules the sweep at the configured interval. Overlapping runs
// are skipped.
func (s *Sweeper) Start() error {
	s.cron = cron.New()
	_, err := s.cron.AddJob(fmt.Sprintf("@every %s", s.interval), cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		if err := s.Sweep(context.Background()); err != nil {
			utils.Error("settlement sweep failed", map[string]any{"error": err.Error()})
		}
	})))
	if err != nil {
		return fmt.Errorf("settlement: schedule sweep: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep settles every ended auction that still has commission pending.
// A failure on one auction is logged and does not block the rest.
func (s *Sweeper) Sweep(ctx context.Context) error {
	ended, err := s.auctions.ListUnsettledAuctions(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("settlement: list unsettled auctions: %w", err)
	}

	for _, auction := range ended {
		if err := s.settle(ctx, auction.AuctionID); err != nil {
			utils.Error("failed to settle auction", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// settle closes out one auction. Reconciliation runs first so the winner
// and commission derive from a repaired current bid.
func (s *Sweeper) settle(ctx context.Context, auctionID string) error {
	auction, err := s.reconciler.Reconcile(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("settlement: reconcile: %w", err)
	}

	winner, won := highestBidder(auction)
	if won {
		if err := s.users.RecordAuctionWin(ctx, winner.BidderID, winner.Amount); err != nil {
			return fmt.Errorf("settlement: credit winner: %w", err)
		}
		if err := s.users.AddUnpaidCommission(ctx, auction.CreatedBy, s.rate*winner.Amount); err != nil {
			return fmt.Errorf("settlement: accrue commission: %w", err)
		}
		utils.Info("auction settled", map[string]any{
			"auction_id": auction.AuctionID,
			"winner_id":  winner.BidderID,
			"amount":     winner.Amount,
			"commission": s.rate * winner.Amount,
		})
	} else {
		utils.Info("auction ended without bids", map[string]any{"auction_id": auction.AuctionID})
	}

	auction.CommissionCalculated = true
	if err := s.auctions.UpdateAuction(ctx, auction); err != nil {
		return fmt.Errorf("settlement: mark settled: %w", err)
	}
	return nil
}

// highestBidder returns the top entry of the auction's bid list.
func highestBidder(auction model.Auction) (model.BidSummary, bool) {
	var top model.BidSummary
	found := false
	for _, b := range auction.Bids {
		if !found || b.Amount > top.Amount {
			top = b
			found = true
		}
	}
	return top, found
}
