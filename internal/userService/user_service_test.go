package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/blobstore"
	"auction-platform/internal/credentials"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
)

func pngBytes() []byte {
	return []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
}

func newFixture(t *testing.T) (*UserService, *repository.MemoryRepo, *credentials.Service) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	blobs := blobstore.NewMemoryStore()
	creds := credentials.NewService("test-secret", time.Hour)
	return NewUserService(repo, blobs, creds, time.Second), repo, creds
}

func bidderInput(email string) RegisterInput {
	return RegisterInput{
		UserName: "alice",
		Email:    email,
		Password: "correct-horse",
		Phone:    "1234567890",
		Address:  "12 Main Street",
		Role:     model.RoleBidder,
	}
}

// Tests Register
func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success_bidder", func(t *testing.T) {
		svc, repo, _ := newFixture(t)

		account, err := svc.Register(ctx, bidderInput("alice@example.com"), pngBytes())
		require.NoError(t, err)
		require.NotEmpty(t, account.UserID)
		require.NotEmpty(t, account.ProfileImage.URL)
		require.NotEqual(t, "correct-horse", account.PasswordHash, "the password is never stored in the clear")

		stored, err := repo.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, account.UserID, stored.UserID)
	})

	t.Run("auctioneer_requires_payment_method", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		input := bidderInput("seller@example.com")
		input.Role = model.RoleAuctioneer
		_, err := svc.Register(ctx, input, pngBytes())
		require.ErrorIs(t, err, auctionerrors.ErrValidation)

		input.PaymentMethods.UPINumber = "seller@upi"
		_, err = svc.Register(ctx, input, pngBytes())
		require.NoError(t, err)
	})

	t.Run("password_length", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		input := bidderInput("short@example.com")
		input.Password = "short"
		_, err := svc.Register(ctx, input, pngBytes())
		require.ErrorIs(t, err, auctionerrors.ErrValidation)

		input = bidderInput("long@example.com")
		input.Password = "this-password-is-far-longer-than-thirty-two-characters"
		_, err = svc.Register(ctx, input, pngBytes())
		require.ErrorIs(t, err, auctionerrors.ErrValidation)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.Register(ctx, bidderInput("taken@example.com"), pngBytes())
		require.NoError(t, err)

		_, err = svc.Register(ctx, bidderInput("taken@example.com"), pngBytes())
		require.ErrorIs(t, err, auctionerrors.ErrEmailTaken)
	})

	t.Run("invalid_phone", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		input := bidderInput("phone@example.com")
		input.Phone = "12345"
		_, err := svc.Register(ctx, input, pngBytes())
		require.ErrorIs(t, err, auctionerrors.ErrValidation)
	})

	t.Run("unsupported_profile_image", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.Register(ctx, bidderInput("img@example.com"), []byte("GIF87a fake"))
		require.ErrorIs(t, err, auctionerrors.ErrUnsupportedMedia)
	})
}

// Tests Login
func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	svc, _, creds := newFixture(t)
	account, err := svc.Register(ctx, bidderInput("alice@example.com"), pngBytes())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, loggedIn, err := svc.Login(ctx, "alice@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, account.UserID, loggedIn.UserID)

		claims, err := creds.ValidateToken(token)
		require.NoError(t, err)
		require.Equal(t, account.UserID, claims.UserID)
		require.Equal(t, model.RoleBidder, claims.Role)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, auctionerrors.ErrAuth)
	})

	t.Run("unknown_email_indistinguishable", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "correct-horse")
		require.ErrorIs(t, err, auctionerrors.ErrAuth)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "correct-horse")
		require.ErrorIs(t, err, auctionerrors.ErrValidation)
	})
}

// Tests Leaderboard
func TestUserService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	svc, repo, _ := newFixture(t)

	a, err := svc.Register(ctx, bidderInput("a@example.com"), pngBytes())
	require.NoError(t, err)
	b, err := svc.Register(ctx, bidderInput("b@example.com"), pngBytes())
	require.NoError(t, err)
	_, err = svc.Register(ctx, bidderInput("c@example.com"), pngBytes())
	require.NoError(t, err)

	require.NoError(t, repo.RecordAuctionWin(ctx, a.UserID, 120))
	require.NoError(t, repo.RecordAuctionWin(ctx, b.UserID, 450))

	top, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2, "bidders who never won are excluded")
	require.Equal(t, b.UserID, top[0].UserID)
	require.Equal(t, a.UserID, top[1].UserID)
}
