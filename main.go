package main

import (
	"context"
	"time"

	"auction-platform/config"
	auction "auction-platform/internal/auctionService"
	bidding "auction-platform/internal/biddingService"
	"auction-platform/internal/blobstore"
	commission "auction-platform/internal/commissionService"
	"auction-platform/internal/credentials"
	"auction-platform/internal/repository"
	"auction-platform/internal/server"
	"auction-platform/internal/settlement"
	user "auction-platform/internal/userService"
	"auction-platform/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	auctionDB, bidDB, userDB, proofDB := buildRepositories(cfg)
	blobs := buildBlobStore(cfg)

	creds := credentials.NewService(cfg.JWT.Secret, cfg.JWT.TTL)

	biddingSvc := bidding.NewBiddingService(auctionDB, bidDB, userDB)
	commissionSvc := commission.NewCommissionService(userDB, proofDB, blobs, cfg.Upload.Timeout)
	auctionSvc := auction.NewAuctionService(auctionDB, bidDB, blobs, commissionSvc, cfg.Upload.Timeout)
	userSvc := user.NewUserService(userDB, blobs, creds, cfg.Upload.Timeout)

	sweeper := settlement.NewSweeper(auctionDB, userDB, biddingSvc, cfg.Commission.Rate, cfg.Commission.SettlementInterval)
	if err := sweeper.Start(); err != nil {
		utils.Fatal("failed to start settlement sweeper", map[string]any{"error": err.Error()})
	}
	defer sweeper.Stop()

	router := server.SetupRouter(server.Services{
		Auctions:    auctionSvc,
		Bidding:     biddingSvc,
		Commissions: commissionSvc,
		Users:       userSvc,
		Credentials: creds,
	}, cfg.Upload.MaxSize)

	addr := cfg.Server.Addr()
	utils.Info("starting auction server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// buildRepositories connects to Mongo when a URI is configured and falls
// back to the in-memory repository for local development.
func buildRepositories(cfg *config.Config) (repository.AuctionDB, repository.BidDB, repository.UserDB, repository.PaymentProofDB) {
	if cfg.Mongo.URI == "" {
		utils.Warn("no mongo URI configured, using in-memory repository", nil)
		repo := repository.NewMemoryRepo()
		return repo, repo, repo, repo
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	repo, err := repository.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		utils.Fatal("failed to connect to mongo", map[string]any{"error": err.Error()})
	}
	return repo, repo, repo, repo
}

// buildBlobStore connects to S3 when a bucket is configured and falls back
// to the in-memory store for local development.
func buildBlobStore(cfg *config.Config) blobstore.BlobStore {
	if cfg.S3.Bucket == "" {
		utils.Warn("no S3 bucket configured, using in-memory blob store", nil)
		return blobstore.NewMemoryStore()
	}

	store, err := blobstore.NewS3Store(context.Background(), blobstore.S3Config{
		Bucket:    cfg.S3.Bucket,
		Region:    cfg.S3.Region,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Endpoint:  cfg.S3.Endpoint,
		PublicURL: cfg.S3.PublicURL,
	})
	if err != nil {
		utils.Fatal("failed to initialize S3 blob store", map[string]any{"error": err.Error()})
	}
	return store
}
