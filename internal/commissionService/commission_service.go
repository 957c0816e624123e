package commission

import (
	"context"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/blobstore"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// ProofResult is the outcome of submitting a payment proof. When the
// auctioneer has no outstanding commission the submission succeeds without
// creating a proof record and NoObligation is set.
type ProofResult struct {
	Proof        model.PaymentProof
	NoObligation bool
}

// CommissionService defines the business logic for commission tracking:
// proof submission, the outstanding-commission gate and republish
// forgiveness.
type CommissionService struct {
	users         repository.UserDB
	proofs        repository.PaymentProofDB
	blobs         blobstore.BlobStore
	uploadTimeout time.Duration
}

// NewCommissionService creates a new CommissionService instance.
func NewCommissionService(users repository.UserDB, proofs repository.PaymentProofDB, blobs blobstore.BlobStore, uploadTimeout time.Duration) *CommissionService {
	return &CommissionService{
		users:         users,
		proofs:        proofs,
		blobs:         blobs,
		uploadTimeout: uploadTimeout,
	}
}

// RecordPaymentProof stores an auctioneer's payment proof in Pending status.
// The claimed amount must be positive and must not exceed the user's
// outstanding commission. A user with nothing outstanding gets a
// NoObligation result and no proof is stored.
func (s *CommissionService) RecordPaymentProof(ctx context.Context, userID string, amount float64, comment string, screenshot []byte) (ProofResult, error) {
	if userID == "" {
		return ProofResult{}, fmt.Errorf("service: missing user ID: %w", auctionerrors.ErrValidation)
	}
	if amount <= 0 {
		return ProofResult{}, fmt.Errorf("service: amount must be positive: %w", auctionerrors.ErrValidation)
	}
	if comment == "" {
		return ProofResult{}, fmt.Errorf("service: missing comment: %w", auctionerrors.ErrValidation)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return ProofResult{}, fmt.Errorf("service: failed to load user: %w", err)
	}
	if user.UnpaidCommission == 0 {
		return ProofResult{NoObligation: true}, nil
	}
	if amount > user.UnpaidCommission {
		return ProofResult{}, fmt.Errorf("service: outstanding commission is %.2f: %w", user.UnpaidCommission, auctionerrors.ErrProofExceedsBalance)
	}

	contentType, err := blobstore.DetectImageType(screenshot)
	if err != nil {
		return ProofResult{}, fmt.Errorf("service: %w", err)
	}
	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()
	uploaded, err := s.blobs.Upload(uploadCtx, screenshot, contentType, blobstore.FolderPaymentProofs)
	if err != nil {
		return ProofResult{}, fmt.Errorf("service: %w", err)
	}

	proof := model.PaymentProof{
		ProofID:    utils.GenerateID(),
		UserID:     userID,
		Proof:      model.Image{PublicID: uploaded.PublicID, URL: uploaded.URL},
		Status:     model.ProofPending,
		Amount:     amount,
		Comment:    comment,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.proofs.CreatePaymentProof(ctx, proof); err != nil {
		return ProofResult{}, fmt.Errorf("service: failed to store payment proof: %w", err)
	}
	return ProofResult{Proof: proof}, nil
}

// ListProofsForUser returns every payment proof the user has submitted.
func (s *CommissionService) ListProofsForUser(ctx context.Context, userID string) ([]model.PaymentProof, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: empty user ID: %w", auctionerrors.ErrValidation)
	}
	proofs, err := s.proofs.ListPaymentProofsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payment proofs for %s: %w", userID, err)
	}
	return proofs, nil
}

// CheckOutstanding blocks the caller while any commission is unpaid. The
// create-auction route runs this before the lifecycle service.
func (s *CommissionService) CheckOutstanding(ctx context.Context, userID string) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: failed to load user: %w", err)
	}
	if user.UnpaidCommission > 0 {
		return fmt.Errorf("service: %.2f unpaid: %w", user.UnpaidCommission, auctionerrors.ErrCommissionOutstanding)
	}
	return nil
}

// ClearOnRepublish zeroes the creator's outstanding commission when they
// relist an item.
func (s *CommissionService) ClearOnRepublish(ctx context.Context, userID string) error {
	if err := s.users.ClearUnpaidCommission(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to clear commission for %s: %w", userID, err)
	}
	return nil
}
