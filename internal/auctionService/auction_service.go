package auction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/blobstore"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// CommissionClearer is the slice of CommissionTracking that the lifecycle
// needs: republishing forgives the creator's outstanding commission.
type CommissionClearer interface {
	ClearOnRepublish(ctx context.Context, userID string) error
}

// CreateAuctionInput carries the item details for a new listing.
type CreateAuctionInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	StartingBid float64
	StartTime   time.Time
	EndTime     time.Time
}

// AuctionService defines the business logic for the auction lifecycle:
// creation rules, time windows, republishing and deletion.
type AuctionService struct {
	auctions      repository.AuctionDB
	bids          repository.BidDB
	blobs         blobstore.BlobStore
	commission    CommissionClearer
	uploadTimeout time.Duration
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(auctions repository.AuctionDB, bids repository.BidDB, blobs blobstore.BlobStore, commission CommissionClearer, uploadTimeout time.Duration) *AuctionService {
	return &AuctionService{
		auctions:      auctions,
		bids:          bids,
		blobs:         blobs,
		commission:    commission,
		uploadTimeout: uploadTimeout,
	}
}

// Create validates the listing, uploads the item image and persists the
// auction with CurrentBid equal to StartingBid and an empty bid list.
// Role gating (Auctioneer only) and the commission gate are request-path
// preconditions.
func (s *AuctionService) Create(ctx context.Context, creatorID string, input CreateAuctionInput, image []byte) (model.Auction, error) {
	if creatorID == "" {
		return model.Auction{}, fmt.Errorf("service: missing creator: %w", auctionerrors.ErrValidation)
	}
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Condition == "" {
		return model.Auction{}, fmt.Errorf("service: please provide all details: %w", auctionerrors.ErrValidation)
	}
	if input.StartingBid <= 0 {
		return model.Auction{}, fmt.Errorf("service: starting bid must be positive: %w", auctionerrors.ErrValidation)
	}
	if err := checkWindow(input.StartTime, input.EndTime); err != nil {
		return model.Auction{}, err
	}

	// At most one active auction per creator.
	active, err := s.auctions.ListAuctionsByCreator(ctx, creatorID, time.Now())
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to check running auctions: %w", err)
	}
	if len(active) > 0 {
		return model.Auction{}, fmt.Errorf("service: wait for your running auction to finish: %w", auctionerrors.ErrActiveAuctionExists)
	}

	img, err := s.uploadImage(ctx, image, blobstore.FolderAuctions)
	if err != nil {
		return model.Auction{}, err
	}

	auction := model.Auction{
		AuctionID:            utils.GenerateID(),
		Title:                input.Title,
		Description:          input.Description,
		Category:             input.Category,
		Condition:            input.Condition,
		StartingBid:          input.StartingBid,
		CurrentBid:           input.StartingBid,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		Image:                img,
		CreatedBy:            creatorID,
		Bids:                 []model.BidSummary{},
		CommissionCalculated: false,
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.auctions.CreateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return auction, nil
}

// Republish reopens a closed auction under a fresh time window. The bid
// list is reset, the bid records are cascaded away, commission tracking
// restarts, and the creator's outstanding commission is forgiven.
func (s *AuctionService) Republish(ctx context.Context, auctionID, actorID string, newStart, newEnd time.Time) (model.Auction, error) {
	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction: %w", err)
	}
	if auction.CreatedBy != actorID {
		return model.Auction{}, fmt.Errorf("service: auction %s belongs to another user: %w", auctionID, auctionerrors.ErrForbidden)
	}
	if auction.EndTime.After(time.Now()) {
		return model.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrStillActive)
	}
	if err := checkWindow(newStart, newEnd); err != nil {
		return model.Auction{}, err
	}

	if err := s.bids.DeleteBidsByAuction(ctx, auctionID); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to cascade bid deletion: %w", err)
	}

	auction.StartTime = newStart
	auction.EndTime = newEnd
	auction.Bids = []model.BidSummary{}
	auction.CurrentBid = auction.StartingBid
	auction.CommissionCalculated = false
	if err := s.auctions.UpdateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to republish auction: %w", err)
	}

	if err := s.commission.ClearOnRepublish(ctx, auction.CreatedBy); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to clear commission on republish: %w", err)
	}
	return auction, nil
}

// Delete removes the auction, cascades its bid records and drops the item
// image from the blob store (best effort). Restricted to administrators at
// the request path.
func (s *AuctionService) Delete(ctx context.Context, auctionID string) error {
	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction: %w", err)
	}

	if err := s.auctions.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction: %w", err)
	}
	if err := s.bids.DeleteBidsByAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to cascade bid deletion: %w", err)
	}

	if auction.Image.PublicID != "" {
		if err := s.blobs.Delete(ctx, auction.Image.PublicID); err != nil {
			utils.Warn("failed to delete auction image blob", map[string]any{
				"auction_id": auctionID,
				"public_id":  auction.Image.PublicID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// GetAuction returns one auction with its leaderboard sorted descending by
// amount.
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: empty auction ID: %w", auctionerrors.ErrValidation)
	}
	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction: %w", err)
	}
	sort.Slice(auction.Bids, func(i, j int) bool { return auction.Bids[i].Amount > auction.Bids[j].Amount })
	return auction, nil
}

// ListAuctions returns every listing.
func (s *AuctionService) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions, err := s.auctions.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// ListMine returns every listing owned by creatorID, open or closed.
func (s *AuctionService) ListMine(ctx context.Context, creatorID string) ([]model.Auction, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("service: empty creator ID: %w", auctionerrors.ErrValidation)
	}
	auctions, err := s.auctions.ListAuctionsByCreator(ctx, creatorID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions for %s: %w", creatorID, err)
	}
	return auctions, nil
}

// CheckAdmission reports whether the auction currently accepts bids:
// startTime <= now < endTime. The bid route runs this before PlaceBid.
func (s *AuctionService) CheckAdmission(ctx context.Context, auctionID string) error {
	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction: %w", err)
	}
	now := time.Now()
	if now.Before(auction.StartTime) {
		return fmt.Errorf("service: %w", auctionerrors.ErrNotStarted)
	}
	if !now.Before(auction.EndTime) {
		return fmt.Errorf("service: %w", auctionerrors.ErrEnded)
	}
	return nil
}

// uploadImage sniffs the MIME allow-list and stores the image under a
// bounded timeout; a deadline hit surfaces as an upload failure.
func (s *AuctionService) uploadImage(ctx context.Context, image []byte, folder string) (model.Image, error) {
	contentType, err := blobstore.DetectImageType(image)
	if err != nil {
		return model.Image{}, fmt.Errorf("service: %w", err)
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()
	res, err := s.blobs.Upload(uploadCtx, image, contentType, folder)
	if err != nil {
		return model.Image{}, fmt.Errorf("service: %w", err)
	}
	return model.Image{PublicID: res.PublicID, URL: res.URL}, nil
}

// checkWindow enforces the creation-time ordering rules: the window must
// open strictly in the future and close after it opens.
func checkWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("service: please provide start and end times: %w", auctionerrors.ErrValidation)
	}
	if !start.After(time.Now()) {
		return fmt.Errorf("service: %w", auctionerrors.ErrStartInPast)
	}
	if !start.Before(end) {
		return fmt.Errorf("service: %w", auctionerrors.ErrEndBeforeStart)
	}
	return nil
}
