package server

import (
	"github.com/gin-gonic/gin"

	auction "auction-platform/internal/auctionService"
	bidding "auction-platform/internal/biddingService"
	commission "auction-platform/internal/commissionService"
	"auction-platform/internal/credentials"
	user "auction-platform/internal/userService"
	auctionhandler "auction-platform/services/auction/handler"
	biddinghandler "auction-platform/services/bidding/handler"
	commissionhandler "auction-platform/services/commission/handler"
	userhandler "auction-platform/services/user/handler"

	model "auction-platform/internal/models"
)

// Services bundles the wired application services for the router.
type Services struct {
	Auctions    *auction.AuctionService
	Bidding     *bidding.BiddingService
	Commissions *commission.CommissionService
	Users       *user.UserService
	Credentials *credentials.Service
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services, maxImageSize int64) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(svcs.Auctions, maxImageSize)
	biddingHandler := biddinghandler.NewBiddingHandler(svcs.Bidding)
	commissionHandler := commissionhandler.NewCommissionHandler(svcs.Commissions, maxImageSize)
	userHandler := userhandler.NewUserHandler(svcs.Users, maxImageSize)

	auth := AuthMiddleware(svcs.Credentials)

	users := router.Group("/users")
	{
		users.POST("/register", userHandler.RegisterHandler)
		users.POST("/login", userHandler.LoginHandler)
		users.GET("/leaderboard", userHandler.LeaderboardHandler)
		users.GET("/me", auth, userHandler.ProfileHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", auth,
			RequireRole(model.RoleAuctioneer),
			CommissionGate(svcs.Commissions),
			auctionHandler.CreateAuctionHandler)
		auctions.GET("/mine", auth,
			RequireRole(model.RoleAuctioneer),
			auctionHandler.ListMyAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id/republish", auth,
			RequireRole(model.RoleAuctioneer),
			auctionHandler.RepublishAuctionHandler)
		auctions.DELETE("/:auction_id", auth,
			RequireRole(model.RoleSuperAdmin),
			auctionHandler.DeleteAuctionHandler)

		auctions.GET("/:auction_id/bids", biddingHandler.ListBidsHandler)
		auctions.POST("/:auction_id/bids", auth,
			RequireRole(model.RoleBidder),
			AdmissionWindow(svcs.Auctions),
			biddingHandler.PlaceBidHandler)
	}

	commissions := router.Group("/commissions", auth, RequireRole(model.RoleAuctioneer))
	{
		commissions.POST("/proof", commissionHandler.SubmitProofHandler)
		commissions.GET("/proofs", commissionHandler.ListMyProofsHandler)
	}

	return router
}
