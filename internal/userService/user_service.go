package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/blobstore"
	"auction-platform/internal/credentials"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

const leaderboardLimit = 100

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	UserName       string
	Email          string
	Password       string
	Phone          string
	Address        string
	Role           string
	PaymentMethods model.PaymentMethods
}

// UserService defines the business logic for accounts: registration,
// login, profile lookup and the top-spender leaderboard.
type UserService struct {
	users         repository.UserDB
	blobs         blobstore.BlobStore
	creds         *credentials.Service
	uploadTimeout time.Duration
}

// NewUserService creates a new UserService instance.
func NewUserService(users repository.UserDB, blobs blobstore.BlobStore, creds *credentials.Service, uploadTimeout time.Duration) *UserService {
	return &UserService{
		users:         users,
		blobs:         blobs,
		creds:         creds,
		uploadTimeout: uploadTimeout,
	}
}

// Register creates an account with a hashed password and an uploaded
// profile image. Auctioneers must provide at least one payout channel.
func (s *UserService) Register(ctx context.Context, input RegisterInput, profileImage []byte) (model.User, error) {
	if l := len(input.Password); l < 8 || l > 32 {
		return model.User{}, fmt.Errorf("service: password must be 8-32 characters: %w", auctionerrors.ErrValidation)
	}
	if input.Role == model.RoleAuctioneer && !hasPaymentMethod(input.PaymentMethods) {
		return model.User{}, fmt.Errorf("service: auctioneers must provide a payment method: %w", auctionerrors.ErrValidation)
	}

	if _, err := s.users.GetUserByEmail(ctx, input.Email); err == nil {
		return model.User{}, fmt.Errorf("service: email %s already registered: %w", input.Email, auctionerrors.ErrEmailTaken)
	} else if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return model.User{}, fmt.Errorf("service: failed to check email: %w", err)
	}

	contentType, err := blobstore.DetectImageType(profileImage)
	if err != nil {
		return model.User{}, fmt.Errorf("service: %w", err)
	}
	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()
	uploaded, err := s.blobs.Upload(uploadCtx, profileImage, contentType, blobstore.FolderUsers)
	if err != nil {
		return model.User{}, fmt.Errorf("service: %w", err)
	}

	hash, err := s.creds.Hash(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: %w", err)
	}

	account := model.User{
		UserID:         utils.GenerateID(),
		UserName:       input.UserName,
		Email:          input.Email,
		PasswordHash:   hash,
		Phone:          input.Phone,
		Address:        input.Address,
		Role:           input.Role,
		ProfileImage:   model.Image{PublicID: uploaded.PublicID, URL: uploaded.URL},
		PaymentMethods: input.PaymentMethods,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, account); err != nil {
		return model.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return account, nil
}

// Login verifies the email/password pair and issues a session token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	if email == "" || password == "" {
		return "", model.User{}, fmt.Errorf("service: missing email or password: %w", auctionerrors.ErrValidation)
	}

	account, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return "", model.User{}, fmt.Errorf("service: invalid credentials: %w", auctionerrors.ErrAuth)
		}
		return "", model.User{}, fmt.Errorf("service: failed to load user: %w", err)
	}
	if !s.creds.Verify(password, account.PasswordHash) {
		return "", model.User{}, fmt.Errorf("service: invalid credentials: %w", auctionerrors.ErrAuth)
	}

	token, err := s.creds.IssueToken(account.UserID, account.Role)
	if err != nil {
		return "", model.User{}, fmt.Errorf("service: %w", err)
	}
	return token, account, nil
}

// Profile returns the account for userID.
func (s *UserService) Profile(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, fmt.Errorf("service: empty user ID: %w", auctionerrors.ErrValidation)
	}
	account, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to load user: %w", err)
	}
	return account, nil
}

// Leaderboard returns bidders ordered by money spent, highest first.
func (s *UserService) Leaderboard(ctx context.Context) ([]model.User, error) {
	top, err := s.users.ListTopSpenders(ctx, leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to build leaderboard: %w", err)
	}
	return top, nil
}

func hasPaymentMethod(pm model.PaymentMethods) bool {
	bank := pm.BankTransfer
	if bank.AccountNumber != "" && bank.AccountName != "" && bank.BankName != "" {
		return true
	}
	return pm.UPINumber != "" || pm.PayPalEmail != ""
}
