package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	commission "auction-platform/internal/commissionService"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"
)

type CommissionServiceInterface interface {
	RecordPaymentProof(ctx context.Context, userID string, amount float64, comment string, screenshot []byte) (commission.ProofResult, error)
	ListProofsForUser(ctx context.Context, userID string) ([]model.PaymentProof, error)
}

// ProofForm is the multipart proof submission form.
type ProofForm struct {
	Amount  float64 `form:"amount" binding:"required,gt=0"`
	Comment string  `form:"comment" binding:"required"`
}

type CommissionHandler struct {
	service      CommissionServiceInterface
	maxImageSize int64
}

func NewCommissionHandler(service CommissionServiceInterface, maxImageSize int64) *CommissionHandler {
	return &CommissionHandler{service: service, maxImageSize: maxImageSize}
}

// SubmitProofHandler handles POST /commissions/proof
func (h *CommissionHandler) SubmitProofHandler(c *gin.Context) {
	var form ProofForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "SubmitProofHandler", err)
		return
	}

	screenshot, err := helpers.ReadImageFile(c, "proof", h.maxImageSize)
	if err != nil {
		helpers.RespondError(c, "SubmitProofHandler", err, nil)
		return
	}

	userID := helpers.ActorID(c)
	result, err := h.service.RecordPaymentProof(c.Request.Context(), userID, form.Amount, form.Comment, screenshot)
	if err != nil {
		helpers.RespondError(c, "SubmitProofHandler", err, map[string]any{"user_id": userID})
		return
	}

	if result.NoObligation {
		utils.JSONResponse(c, http.StatusOK, nil, "no unpaid commission outstanding")
		helpers.LogSuccess("SubmitProofHandler", "no unpaid commission outstanding", map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result.Proof, "payment proof submitted successfully")
	helpers.LogSuccess("SubmitProofHandler", "payment proof submitted successfully", map[string]any{
		"user_id":  userID,
		"proof_id": result.Proof.ProofID,
		"amount":   form.Amount,
	})
}

// ListMyProofsHandler handles GET /commissions/proofs
func (h *CommissionHandler) ListMyProofsHandler(c *gin.Context) {
	userID := helpers.ActorID(c)
	proofs, err := h.service.ListProofsForUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ListMyProofsHandler", err, map[string]any{"user_id": userID})
		return
	}
	if proofs == nil {
		proofs = []model.PaymentProof{}
	}
	utils.JSONResponse(c, http.StatusOK, proofs, "payment proofs retrieved successfully")
}
