package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "auction-platform/internal/models"
	user "auction-platform/internal/userService"
	"auction-platform/services/helpers"
	"auction-platform/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, input user.RegisterInput, profileImage []byte) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
	Profile(ctx context.Context, userID string) (model.User, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
}

// RegisterForm is the multipart registration form.
type RegisterForm struct {
	UserName          string `form:"user_name" binding:"required"`
	Email             string `form:"email" binding:"required,email"`
	Password          string `form:"password" binding:"required"`
	Phone             string `form:"phone" binding:"required"`
	Address           string `form:"address" binding:"required"`
	Role              string `form:"role" binding:"required"`
	BankAccountNumber string `form:"bank_account_number"`
	BankAccountName   string `form:"bank_account_name"`
	BankName          string `form:"bank_name"`
	UPINumber         string `form:"upi_number"`
	PayPalEmail       string `form:"paypal_email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type UserHandler struct {
	service      UserServiceInterface
	maxImageSize int64
}

func NewUserHandler(service UserServiceInterface, maxImageSize int64) *UserHandler {
	return &UserHandler{service: service, maxImageSize: maxImageSize}
}

// RegisterHandler handles POST /users/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	profileImage, err := helpers.ReadImageFile(c, "profile_image", h.maxImageSize)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, nil)
		return
	}

	account, err := h.service.Register(c.Request.Context(), user.RegisterInput{
		UserName: form.UserName,
		Email:    form.Email,
		Password: form.Password,
		Phone:    form.Phone,
		Address:  form.Address,
		Role:     form.Role,
		PaymentMethods: model.PaymentMethods{
			BankTransfer: model.BankTransfer{
				AccountNumber: form.BankAccountNumber,
				AccountName:   form.BankAccountName,
				BankName:      form.BankName,
			},
			UPINumber:   form.UPINumber,
			PayPalEmail: form.PayPalEmail,
		},
	}, profileImage)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": form.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, account, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": account.UserID,
		"role":    account.Role,
	})
}

// LoginHandler handles POST /users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, account, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, LoginResponse{Token: token, User: account}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": account.UserID})
}

// ProfileHandler handles GET /users/me
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	userID := helpers.ActorID(c)
	account, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ProfileHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, account, "profile retrieved successfully")
}

// LeaderboardHandler handles GET /users/leaderboard
func (h *UserHandler) LeaderboardHandler(c *gin.Context) {
	top, err := h.service.Leaderboard(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "LeaderboardHandler", err, nil)
		return
	}
	if top == nil {
		top = []model.User{}
	}
	utils.JSONResponse(c, http.StatusOK, top, "leaderboard retrieved successfully")
}
