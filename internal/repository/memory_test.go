package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
)

// Helper to create a new Auction
func newAuction(auctionID, creatorID string, startingBid float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   auctionID,
		Title:       "title " + auctionID,
		Description: "description " + auctionID,
		Category:    "electronics",
		Condition:   "used",
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		CreatedBy:   creatorID,
		Bids:        []model.BidSummary{},
		CreatedAt:   now,
	}
}

// Helper to create a new User
func newUser(userID, email, role string) model.User {
	return model.User{
		UserID:   userID,
		UserName: "name-" + userID,
		Email:    email,
		Phone:    "1234567890",
		Role:     role,
	}
}

// Test UpdateWinningBid
func TestMemoryRepo_UpdateWinningBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name            string
		seed            func(repo *MemoryRepo)
		auctionID       string
		expectedBid     float64
		entry           model.BidSummary
		replaceExisting bool
		wantSwapped     bool
		wantError       bool
	}{
		{
			name: "first_bid_appended",
			seed: func(repo *MemoryRepo) {
				require.NoError(t, repo.CreateAuction(ctx, newAuction("a1", "seller1", 100)))
			},
			auctionID:   "a1",
			expectedBid: 100,
			entry:       model.BidSummary{BidderID: "bidder1", UserName: "alice", Amount: 150},
			wantSwapped: true,
		},
		{
			name: "stale_expected_bid_loses_swap",
			seed: func(repo *MemoryRepo) {
				a := newAuction("a2", "seller1", 100)
				a.CurrentBid = 180
				a.Bids = []model.BidSummary{{BidderID: "bidder2", Amount: 180}}
				require.NoError(t, repo.CreateAuction(ctx, a))
			},
			auctionID:   "a2",
			expectedBid: 100,
			entry:       model.BidSummary{BidderID: "bidder1", Amount: 150},
			wantSwapped: false,
		},
		{
			name: "replace_existing_entry",
			seed: func(repo *MemoryRepo) {
				a := newAuction("a3", "seller1", 100)
				a.CurrentBid = 150
				a.Bids = []model.BidSummary{{BidderID: "bidder1", UserName: "alice", Amount: 150}}
				require.NoError(t, repo.CreateAuction(ctx, a))
			},
			auctionID:       "a3",
			expectedBid:     150,
			entry:           model.BidSummary{BidderID: "bidder1", UserName: "alice", Amount: 200},
			replaceExisting: true,
			wantSwapped:     true,
		},
		{
			name: "replace_missing_entry_loses_swap",
			seed: func(repo *MemoryRepo) {
				require.NoError(t, repo.CreateAuction(ctx, newAuction("a4", "seller1", 100)))
			},
			auctionID:       "a4",
			expectedBid:     100,
			entry:           model.BidSummary{BidderID: "ghost", Amount: 150},
			replaceExisting: true,
			wantSwapped:     false,
		},
		{
			name:        "auction_not_found",
			seed:        func(repo *MemoryRepo) {},
			auctionID:   "missing",
			expectedBid: 100,
			entry:       model.BidSummary{BidderID: "bidder1", Amount: 150},
			wantError:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			tc.seed(repo)

			swapped, err := repo.UpdateWinningBid(ctx, tc.auctionID, tc.expectedBid, tc.entry, tc.replaceExisting)

			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSwapped, swapped)

			if swapped {
				auction, err := repo.GetAuction(ctx, tc.auctionID)
				require.NoError(t, err)
				require.Equal(t, tc.entry.Amount, auction.CurrentBid)
				require.Equal(t, auction.HighestBid(), auction.CurrentBid)
			}
		})
	}

	// concurrency test: only one of many equal swaps may win
	t.Run("concurrent_swaps_single_winner", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(ctx, newAuction("race", "seller1", 100)))

		var wg sync.WaitGroup
		wins := make(chan string, 50)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				entry := model.BidSummary{BidderID: fmt.Sprintf("bidder-%d", i), Amount: 150}
				swapped, err := repo.UpdateWinningBid(ctx, "race", 100, entry, false)
				require.NoError(t, err)
				if swapped {
					wins <- entry.BidderID
				}
			}()
		}
		wg.Wait()
		close(wins)

		var winners []string
		for w := range wins {
			winners = append(winners, w)
		}
		require.Len(t, winners, 1, "exactly one swap against the same expected bid may succeed")

		auction, err := repo.GetAuction(ctx, "race")
		require.NoError(t, err)
		require.Equal(t, 150.0, auction.CurrentBid)
		require.Len(t, auction.Bids, 1)
	})
}

// Test ListAuctionsByCreator
func TestMemoryRepo_ListAuctionsByCreator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	active := newAuction("active", "seller1", 100)
	ended := newAuction("ended", "seller1", 100)
	ended.StartTime = time.Now().Add(-48 * time.Hour)
	ended.EndTime = time.Now().Add(-24 * time.Hour)
	other := newAuction("other", "seller2", 100)

	require.NoError(t, repo.CreateAuction(ctx, active))
	require.NoError(t, repo.CreateAuction(ctx, ended))
	require.NoError(t, repo.CreateAuction(ctx, other))

	t.Run("active_only", func(t *testing.T) {
		auctions, err := repo.ListAuctionsByCreator(ctx, "seller1", time.Now())
		require.NoError(t, err)
		require.Len(t, auctions, 1)
		require.Equal(t, "active", auctions[0].AuctionID)
	})

	t.Run("all_owned", func(t *testing.T) {
		auctions, err := repo.ListAuctionsByCreator(ctx, "seller1", time.Time{})
		require.NoError(t, err)
		require.Len(t, auctions, 2)
	})

	t.Run("unknown_creator", func(t *testing.T) {
		auctions, err := repo.ListAuctionsByCreator(ctx, "nobody", time.Time{})
		require.NoError(t, err)
		require.Empty(t, auctions)
	})
}

// Test ListUnsettledAuctions
func TestMemoryRepo_ListUnsettledAuctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	running := newAuction("running", "seller1", 100)

	pending := newAuction("pending", "seller2", 100)
	pending.StartTime = time.Now().Add(-48 * time.Hour)
	pending.EndTime = time.Now().Add(-24 * time.Hour)

	settled := newAuction("settled", "seller3", 100)
	settled.StartTime = time.Now().Add(-48 * time.Hour)
	settled.EndTime = time.Now().Add(-24 * time.Hour)
	settled.CommissionCalculated = true

	require.NoError(t, repo.CreateAuction(ctx, running))
	require.NoError(t, repo.CreateAuction(ctx, pending))
	require.NoError(t, repo.CreateAuction(ctx, settled))

	auctions, err := repo.ListUnsettledAuctions(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	require.Equal(t, "pending", auctions[0].AuctionID)
}

// Test CreateUser and email uniqueness
func TestMemoryRepo_CreateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	require.NoError(t, repo.CreateUser(ctx, newUser("u1", "alice@example.com", model.RoleBidder)))

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		err := repo.CreateUser(ctx, newUser("u2", "alice@example.com", model.RoleBidder))
		require.ErrorIs(t, err, auctionerrors.ErrEmailTaken)
	})

	t.Run("duplicate_email_case_insensitive", func(t *testing.T) {
		err := repo.CreateUser(ctx, newUser("u3", "ALICE@Example.COM", model.RoleBidder))
		require.ErrorIs(t, err, auctionerrors.ErrEmailTaken)
	})

	t.Run("lookup_by_email", func(t *testing.T) {
		user, err := repo.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", user.UserID)
	})

	t.Run("invalid_user_rejected", func(t *testing.T) {
		bad := newUser("u4", "bob@example.com", "Stranger")
		err := repo.CreateUser(ctx, bad)
		require.ErrorIs(t, err, auctionerrors.ErrValidation)
	})
}

// Test commission balance operations
func TestMemoryRepo_Commission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("u1", "seller@example.com", model.RoleAuctioneer)))

	require.NoError(t, repo.AddUnpaidCommission(ctx, "u1", 25))
	require.NoError(t, repo.AddUnpaidCommission(ctx, "u1", 10))

	user, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 35.0, user.UnpaidCommission)

	require.NoError(t, repo.ClearUnpaidCommission(ctx, "u1"))
	user, err = repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Zero(t, user.UnpaidCommission)

	t.Run("unknown_user", func(t *testing.T) {
		require.ErrorIs(t, repo.AddUnpaidCommission(ctx, "ghost", 5), auctionerrors.ErrUserNotFound)
		require.ErrorIs(t, repo.ClearUnpaidCommission(ctx, "ghost"), auctionerrors.ErrUserNotFound)
	})
}

// Test ListTopSpenders ordering
func TestMemoryRepo_ListTopSpenders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	for i, spent := range []float64{50, 300, 0, 120} {
		u := newUser(fmt.Sprintf("u%d", i), fmt.Sprintf("user%d@example.com", i), model.RoleBidder)
		require.NoError(t, repo.CreateUser(ctx, u))
		if spent > 0 {
			require.NoError(t, repo.RecordAuctionWin(ctx, u.UserID, spent))
		}
	}

	top, err := repo.ListTopSpenders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3, "users with zero spend are excluded")
	require.Equal(t, 300.0, top[0].MoneySpent)
	require.Equal(t, 120.0, top[1].MoneySpent)
	require.Equal(t, 50.0, top[2].MoneySpent)

	limited, err := repo.ListTopSpenders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

// Test bid record operations
func TestMemoryRepo_BidRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	bid := model.Bid{
		BidID:     "bid1",
		AuctionID: "a1",
		Amount:    150,
		Bidder:    model.Bidder{BidderID: "bidder1", UserName: "alice"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateBid(ctx, bid))

	t.Run("get_by_bidder", func(t *testing.T) {
		got, err := repo.GetBidByBidder(ctx, "a1", "bidder1")
		require.NoError(t, err)
		require.Equal(t, 150.0, got.Amount)
	})

	t.Run("missing_bidder", func(t *testing.T) {
		_, err := repo.GetBidByBidder(ctx, "a1", "ghost")
		require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	})

	t.Run("raise_amount_in_place", func(t *testing.T) {
		require.NoError(t, repo.UpdateBidAmount(ctx, "a1", "bidder1", 220))
		got, err := repo.GetBidByBidder(ctx, "a1", "bidder1")
		require.NoError(t, err)
		require.Equal(t, 220.0, got.Amount)

		bids, err := repo.ListBidsByAuction(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, bids, 1, "a repeat bid must not create a second record")
	})

	t.Run("cascade_delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteBidsByAuction(ctx, "a1"))
		bids, err := repo.ListBidsByAuction(ctx, "a1")
		require.NoError(t, err)
		require.Empty(t, bids)
	})
}

// Test payment proof storage
func TestMemoryRepo_PaymentProofs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreatePaymentProof(ctx, model.PaymentProof{
			ProofID:    fmt.Sprintf("p%d", i),
			UserID:     "u1",
			Amount:     float64(10 * (i + 1)),
			Status:     model.ProofPending,
			UploadedAt: time.Now().UTC(),
		}))
	}

	proofs, err := repo.ListPaymentProofsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, proofs, 3)
	require.Equal(t, "p0", proofs[0].ProofID, "proofs are returned in upload order")

	none, err := repo.ListPaymentProofsByUser(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}
