package bidding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
)

func openAuction(id string, startingBid, currentBid float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   id,
		Title:       "vintage camera",
		Description: "working condition",
		Category:    "electronics",
		Condition:   "used",
		StartingBid: startingBid,
		CurrentBid:  currentBid,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		CreatedBy:   "seller1",
	}
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	mockBids := repository.NewMockBidDB(ctrl)
	mockUsers := repository.NewMockUserDB(ctrl)
	service := NewBiddingService(mockAuctions, mockBids, mockUsers)

	ctx := context.Background()

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidderID      string
		amount        float64
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_first_bid",
			auctionID: "a1",
			bidderID:  "bidder1",
			amount:    150,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction("a1", 100, 100), nil)
				mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a1", "bidder1").Return(model.Bid{}, auctionerrors.ErrBidNotFound)
				mockUsers.EXPECT().GetUser(gomock.Any(), "bidder1").Return(model.User{
					UserID:   "bidder1",
					UserName: "alice",
					Role:     model.RoleBidder,
				}, nil)
				mockAuctions.EXPECT().UpdateWinningBid(gomock.Any(), "a1", 100.0, gomock.Any(), false).Return(true, nil)
				mockBids.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:      "raise_own_bid",
			auctionID: "a2",
			bidderID:  "bidder1",
			amount:    200,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "a2").Return(openAuction("a2", 100, 150), nil)
				mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a2", "bidder1").Return(model.Bid{
					BidID:     "bid1",
					AuctionID: "a2",
					Amount:    150,
					Bidder:    model.Bidder{BidderID: "bidder1", UserName: "alice"},
				}, nil)
				mockAuctions.EXPECT().UpdateWinningBid(gomock.Any(), "a2", 150.0, gomock.Any(), true).Return(true, nil)
				mockBids.EXPECT().UpdateBidAmount(gomock.Any(), "a2", "bidder1", 200.0).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidderID:      "bidder1",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "empty_bidderID",
			auctionID:     "a3",
			bidderID:      "",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "zero_amount",
			auctionID:     "a3",
			bidderID:      "bidder1",
			amount:        0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "negative_amount",
			auctionID:     "a3",
			bidderID:      "bidder1",
			amount:        -10,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:      "below_starting_bid",
			auctionID: "a4",
			bidderID:  "bidder1",
			amount:    80,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "a4").Return(openAuction("a4", 100, 100), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidBelowStarting,
		},
		{
			name:      "equal_to_current_bid",
			auctionID: "a5",
			bidderID:  "bidder1",
			amount:    150,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "a5").Return(openAuction("a5", 100, 150), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			bidderID:  "bidder1",
			amount:    150,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "missing").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "repo_fails",
			auctionID: "a6",
			bidderID:  "bidder1",
			amount:    150,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuction(gomock.Any(), "a6").Return(openAuction("a6", 100, 100), nil)
				mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a6", "bidder1").Return(model.Bid{}, errors.New("db failure"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error, we don't match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			currentBid, err := service.PlaceBid(ctx, tc.auctionID, tc.bidderID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.amount, currentBid)
			}
		})
	}
}

// Tests the compare-and-swap retry path of PlaceBid
func TestBiddingService_PlaceBid_SwapRetry(t *testing.T) {
	t.Run("retry_then_success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuctions := repository.NewMockAuctionDB(ctrl)
		mockBids := repository.NewMockBidDB(ctrl)
		mockUsers := repository.NewMockUserDB(ctrl)
		service := NewBiddingService(mockAuctions, mockBids, mockUsers)

		bidder := model.User{UserID: "bidder1", UserName: "alice", Role: model.RoleBidder}

		// First attempt reads current bid 100 and loses the swap to a
		// concurrent bid of 150; second attempt reads 150 and wins.
		gomock.InOrder(
			mockAuctions.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction("a1", 100, 100), nil),
			mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a1", "bidder1").Return(model.Bid{}, auctionerrors.ErrBidNotFound),
			mockUsers.EXPECT().GetUser(gomock.Any(), "bidder1").Return(bidder, nil),
			mockAuctions.EXPECT().UpdateWinningBid(gomock.Any(), "a1", 100.0, gomock.Any(), false).Return(false, nil),
			mockAuctions.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction("a1", 100, 150), nil),
			mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a1", "bidder1").Return(model.Bid{}, auctionerrors.ErrBidNotFound),
			mockUsers.EXPECT().GetUser(gomock.Any(), "bidder1").Return(bidder, nil),
			mockAuctions.EXPECT().UpdateWinningBid(gomock.Any(), "a1", 150.0, gomock.Any(), false).Return(true, nil),
			mockBids.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil),
		)

		currentBid, err := service.PlaceBid(context.Background(), "a1", "bidder1", 200)
		require.NoError(t, err)
		require.Equal(t, 200.0, currentBid)
	})

	t.Run("retry_exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuctions := repository.NewMockAuctionDB(ctrl)
		mockBids := repository.NewMockBidDB(ctrl)
		mockUsers := repository.NewMockUserDB(ctrl)
		service := NewBiddingService(mockAuctions, mockBids, mockUsers)

		bidder := model.User{UserID: "bidder1", UserName: "alice", Role: model.RoleBidder}

		// Every attempt loses the swap.
		mockAuctions.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction("a1", 100, 100), nil).Times(maxBidRetries)
		mockBids.EXPECT().GetBidByBidder(gomock.Any(), "a1", "bidder1").Return(model.Bid{}, auctionerrors.ErrBidNotFound).Times(maxBidRetries)
		mockUsers.EXPECT().GetUser(gomock.Any(), "bidder1").Return(bidder, nil).Times(maxBidRetries)
		mockAuctions.EXPECT().UpdateWinningBid(gomock.Any(), "a1", 100.0, gomock.Any(), false).Return(false, nil).Times(maxBidRetries)

		_, err := service.PlaceBid(context.Background(), "a1", "bidder1", 200)
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow))
	})
}

// Tests that concurrent bids never lower the current bid and every accepted
// bid lands in both the auction's bid list and the bid records.
func TestBiddingService_PlaceBid_Concurrent(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewBiddingService(repo, repo, repo)
	ctx := context.Background()

	auction := openAuction("a1", 100, 100)
	auction.Bids = []model.BidSummary{}
	require.NoError(t, repo.CreateAuction(ctx, auction))

	const bidders = 20
	for i := 0; i < bidders; i++ {
		user := model.User{
			UserID:   "bidder" + string(rune('A'+i)),
			UserName: "bidder" + string(rune('A'+i)),
			Email:    "bidder" + string(rune('A'+i)) + "@example.com",
			Phone:    "1234567890",
			Role:     model.RoleBidder,
		}
		require.NoError(t, repo.CreateUser(ctx, user))
	}

	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Some of these lose every retry; that is expected.
			_, _ = service.PlaceBid(ctx, "a1", "bidder"+string(rune('A'+i)), float64(110+10*i))
		}(i)
	}
	wg.Wait()

	final, err := repo.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.Greater(t, final.CurrentBid, 100.0)
	require.Equal(t, final.HighestBid(), final.CurrentBid, "current bid must equal the highest listed bid")

	records, err := repo.ListBidsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, len(final.Bids), len(records), "bid list and bid records must agree")
}

// Tests Reconcile
func TestBiddingService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	mockBids := repository.NewMockBidDB(ctrl)
	mockUsers := repository.NewMockUserDB(ctrl)
	service := NewBiddingService(mockAuctions, mockBids, mockUsers)

	ctx := context.Background()

	t.Run("no_divergence", func(t *testing.T) {
		auction := openAuction("a1", 100, 150)
		auction.Bids = []model.BidSummary{{BidderID: "bidder1", Amount: 150}}
		mockAuctions.EXPECT().GetAuction(gomock.Any(), "a1").Return(auction, nil)

		got, err := service.Reconcile(ctx, "a1")
		require.NoError(t, err)
		require.Equal(t, 150.0, got.CurrentBid)
	})

	t.Run("diverged_current_bid_repaired", func(t *testing.T) {
		auction := openAuction("a2", 100, 300)
		auction.Bids = []model.BidSummary{
			{BidderID: "bidder1", Amount: 150},
			{BidderID: "bidder2", Amount: 200},
		}
		mockAuctions.EXPECT().GetAuction(gomock.Any(), "a2").Return(auction, nil)
		mockAuctions.EXPECT().UpdateAuction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated model.Auction) error {
				require.Equal(t, 200.0, updated.CurrentBid)
				return nil
			})

		got, err := service.Reconcile(ctx, "a2")
		require.NoError(t, err)
		require.Equal(t, 200.0, got.CurrentBid)
	})

	t.Run("no_bids_falls_back_to_starting_bid", func(t *testing.T) {
		auction := openAuction("a3", 100, 500)
		auction.Bids = []model.BidSummary{}
		mockAuctions.EXPECT().GetAuction(gomock.Any(), "a3").Return(auction, nil)
		mockAuctions.EXPECT().UpdateAuction(gomock.Any(), gomock.Any()).Return(nil)

		got, err := service.Reconcile(ctx, "a3")
		require.NoError(t, err)
		require.Equal(t, 100.0, got.CurrentBid)
	})

	t.Run("auction_not_found", func(t *testing.T) {
		mockAuctions.EXPECT().GetAuction(gomock.Any(), "missing").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		_, err := service.Reconcile(ctx, "missing")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})
}

// Tests ListBidsForAuction
func TestBiddingService_ListBidsForAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	mockBids := repository.NewMockBidDB(ctrl)
	mockUsers := repository.NewMockUserDB(ctrl)
	service := NewBiddingService(mockAuctions, mockBids, mockUsers)

	ctx := context.Background()

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func()
		expectError   bool
		expectedError error
		expectedCount int
	}{
		{
			name:      "auction_with_bids",
			auctionID: "a1",
			mockSetup: func() {
				mockBids.EXPECT().ListBidsByAuction(gomock.Any(), "a1").Return([]model.Bid{
					{BidID: "bid1", AuctionID: "a1", Amount: 200},
					{BidID: "bid2", AuctionID: "a1", Amount: 150},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:      "auction_without_bids",
			auctionID: "a2",
			mockSetup: func() {
				mockBids.EXPECT().ListBidsByAuction(gomock.Any(), "a2").Return([]model.Bid{}, nil)
			},
			expectedCount: 0,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:      "repo_error",
			auctionID: "a3",
			mockSetup: func() {
				mockBids.EXPECT().ListBidsByAuction(gomock.Any(), "a3").Return(nil, errors.New("db failure"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bids, err := service.ListBidsForAuction(ctx, tc.auctionID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Len(t, bids, tc.expectedCount)
			}
		})
	}
}
