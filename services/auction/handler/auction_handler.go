package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-platform/internal/auctionerrors"
	auction "auction-platform/internal/auctionService"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"
)

type AuctionServiceInterface interface {
	Create(ctx context.Context, creatorID string, input auction.CreateAuctionInput, image []byte) (model.Auction, error)
	Republish(ctx context.Context, auctionID, actorID string, newStart, newEnd time.Time) (model.Auction, error)
	Delete(ctx context.Context, auctionID string) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	ListMine(ctx context.Context, creatorID string) ([]model.Auction, error)
}

// CreateAuctionForm is the multipart listing form. Times are RFC 3339.
type CreateAuctionForm struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Category    string  `form:"category" binding:"required"`
	Condition   string  `form:"condition" binding:"required"`
	StartingBid float64 `form:"starting_bid" binding:"required,gt=0"`
	StartTime   string  `form:"start_time" binding:"required"`
	EndTime     string  `form:"end_time" binding:"required"`
}

type RepublishRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AuctionHandler struct {
	service      AuctionServiceInterface
	maxImageSize int64
}

func NewAuctionHandler(service AuctionServiceInterface, maxImageSize int64) *AuctionHandler {
	return &AuctionHandler{service: service, maxImageSize: maxImageSize}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var form CreateAuctionForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	startTime, endTime, err := parseWindow(form.StartTime, form.EndTime)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, nil)
		return
	}
	image, err := helpers.ReadImageFile(c, "image", h.maxImageSize)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, nil)
		return
	}

	creatorID := helpers.ActorID(c)
	created, err := h.service.Create(c.Request.Context(), creatorID, auction.CreateAuctionInput{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Condition:   form.Condition,
		StartingBid: form.StartingBid,
		StartTime:   startTime,
		EndTime:     endTime,
	}, image)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"creator_id": creatorID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"creator_id": creatorID,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	found, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "auction retrieved successfully")
}

// ListMyAuctionsHandler handles GET /auctions/mine
func (h *AuctionHandler) ListMyAuctionsHandler(c *gin.Context) {
	creatorID := helpers.ActorID(c)
	auctions, err := h.service.ListMine(c.Request.Context(), creatorID)
	if err != nil {
		helpers.RespondError(c, "ListMyAuctionsHandler", err, map[string]any{"creator_id": creatorID})
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// RepublishAuctionHandler handles PUT /auctions/:auction_id/republish
func (h *AuctionHandler) RepublishAuctionHandler(c *gin.Context) {
	var req RepublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RepublishAuctionHandler", err)
		return
	}

	startTime, endTime, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		helpers.RespondError(c, "RepublishAuctionHandler", err, nil)
		return
	}

	auctionID := c.Param("auction_id")
	actorID := helpers.ActorID(c)
	republished, err := h.service.Republish(c.Request.Context(), auctionID, actorID, startTime, endTime)
	if err != nil {
		helpers.RespondError(c, "RepublishAuctionHandler", err, map[string]any{
			"auction_id": auctionID,
			"actor_id":   actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, republished, "auction republished successfully")
	helpers.LogSuccess("RepublishAuctionHandler", "auction republished successfully", map[string]any{
		"auction_id": auctionID,
		"actor_id":   actorID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.Delete(c.Request.Context(), auctionID); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": auctionID})
}

// parseWindow converts the RFC 3339 form values into times.
func parseWindow(start, end string) (time.Time, time.Time, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_time: %w", auctionerrors.ErrValidation)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_time: %w", auctionerrors.ErrValidation)
	}
	return startTime, endTime, nil
}
