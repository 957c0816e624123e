package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auction "auction-platform/internal/auctionService"
	bidding "auction-platform/internal/biddingService"
	"auction-platform/internal/blobstore"
	commission "auction-platform/internal/commissionService"
	"auction-platform/internal/credentials"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/internal/server"
	"auction-platform/internal/settlement"
	user "auction-platform/internal/userService"
)

const testPassword = "correct-horse"

// testEnv wires the whole application over in-memory storage.
type testEnv struct {
	router  *gin.Engine
	repo    *repository.MemoryRepo
	blobs   *blobstore.MemoryStore
	sweeper *settlement.Sweeper
}

// SetupTestEnv initializes the full router with in-memory storage for
// integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	blobs := blobstore.NewMemoryStore()
	creds := credentials.NewService("integration-test-secret", time.Hour)

	biddingSvc := bidding.NewBiddingService(repo, repo, repo)
	commissionSvc := commission.NewCommissionService(repo, repo, blobs, time.Second)
	auctionSvc := auction.NewAuctionService(repo, repo, blobs, commissionSvc, time.Second)
	userSvc := user.NewUserService(repo, blobs, creds, time.Second)
	sweeper := settlement.NewSweeper(repo, repo, biddingSvc, 0.05, time.Minute)

	router := server.SetupRouter(server.Services{
		Auctions:    auctionSvc,
		Bidding:     biddingSvc,
		Commissions: commissionSvc,
		Users:       userSvc,
		Credentials: creds,
	}, 10<<20)

	return &testEnv{router: router, repo: repo, blobs: blobs, sweeper: sweeper}
}

func pngBytes() []byte {
	return []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
}

// ExecuteJSON sends a JSON request, optionally authenticated, and parses
// the response envelope.
func ExecuteJSON(t *testing.T, env *testEnv, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// ExecuteMultipart sends a multipart form with an optional image part.
func ExecuteMultipart(t *testing.T, env *testEnv, method, url, token string, fields map[string]string, fileField string, fileContent []byte) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, "upload.png")
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterUser registers an account through the API and returns its user id.
func RegisterUser(t *testing.T, env *testEnv, name, email, role string) string {
	t.Helper()

	fields := map[string]string{
		"user_name": name,
		"email":     email,
		"password":  testPassword,
		"phone":     "1234567890",
		"address":   "12 Main Street",
		"role":      role,
	}
	if role == model.RoleAuctioneer {
		fields["upi_number"] = name + "@upi"
	}

	resp, w := ExecuteMultipart(t, env, http.MethodPost, "/users/register", "", fields, "profile_image", pngBytes())
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %v", email, resp)

	data := resp["data"].(map[string]any)
	return data["user_id"].(string)
}

// Login logs an account in through the API and returns its bearer token.
func Login(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	resp, w := ExecuteJSON(t, env, http.MethodPost, "/users/login", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s: %v", email, resp)

	data := resp["data"].(map[string]any)
	return data["token"].(string)
}

// CreateAuction creates a listing through the API and returns its id.
func CreateAuction(t *testing.T, env *testEnv, token string, startingBid float64) string {
	t.Helper()

	resp, w := ExecuteMultipart(t, env, http.MethodPost, "/auctions", token, map[string]string{
		"title":        "vintage camera",
		"description":  "working condition",
		"category":     "electronics",
		"condition":    "used",
		"starting_bid": fmt.Sprintf("%.2f", startingBid),
		"start_time":   time.Now().Add(time.Hour).Format(time.RFC3339),
		"end_time":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}, "image", pngBytes())
	require.Equal(t, http.StatusCreated, w.Code, "create auction: %v", resp)

	data := resp["data"].(map[string]any)
	return data["auction_id"].(string)
}

// OpenAuction moves the stored window so the auction is accepting bids.
func OpenAuction(t *testing.T, env *testEnv, auctionID string) {
	t.Helper()
	shiftWindow(t, env, auctionID, -time.Hour, 24*time.Hour)
}

// EndAuction moves the stored window so the auction is over.
func EndAuction(t *testing.T, env *testEnv, auctionID string) {
	t.Helper()
	shiftWindow(t, env, auctionID, -48*time.Hour, -24*time.Hour)
}

func shiftWindow(t *testing.T, env *testEnv, auctionID string, startOffset, endOffset time.Duration) {
	t.Helper()
	ctx := context.Background()
	stored, err := env.repo.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	stored.StartTime = time.Now().Add(startOffset)
	stored.EndTime = time.Now().Add(endOffset)
	require.NoError(t, env.repo.UpdateAuction(ctx, stored))
}

// PlaceBid submits a bid through the API.
func PlaceBid(t *testing.T, env *testEnv, token, auctionID string, amount float64) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteJSON(t, env, http.MethodPost, "/auctions/"+auctionID+"/bids", token, map[string]float64{"amount": amount})
}
