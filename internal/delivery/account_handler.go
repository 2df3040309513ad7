package delivery

import (
	"net/http"

	"family_shapes/internal/domain"
	"family_shapes/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	useCase      domain.AccountUseCase
	cookieMaxAge int
	log          *logrus.Logger
}

func NewAccountHandler(uc domain.AccountUseCase, cookieMaxAge int, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{
		useCase:      uc,
		cookieMaxAge: cookieMaxAge,
		log:          logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AccountHandler) RegisterRoutes(public, protected gin.IRouter) {
	auth := public.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	protected.GET("/account", h.GetAccount)
	protected.DELETE("/account", h.DeleteAccount)
}

func (h *AccountHandler) Register(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Register")

	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlerLogger.Warnf("Failed to bind register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.useCase.Register(c.Request.Context(), input)
	if err != nil {
		status := mapErrorToStatus(err)
		handlerLogger.Warnf("Registration failed: %v", err)
		ErrorResponse(c, status, clientMessage(err, status))
		return
	}

	SuccessResponse(c, http.StatusCreated, "Account created successfully", profile)
}

func (h *AccountHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.useCase.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handlerLogger.Errorf("Authentication error: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !result.Authenticated {
		ErrorResponse(c, http.StatusUnauthorized, result.ErrorMessage)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, h.cookieMaxAge, "/", "", c.Request.TLS != nil, true)
	SuccessResponse(c, http.StatusOK, "Signed in", result)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Not signed in")
		return
	}

	profile, err := h.useCase.Profile(c.Request.Context(), accountID)
	if err != nil {
		status := mapErrorToStatus(err)
		h.log.WithField("handler", "GetAccount").Warnf("Failed to load account %d: %v", accountID, err)
		ErrorResponse(c, status, clientMessage(err, status))
		return
	}
	SuccessResponse(c, http.StatusOK, "Account retrieved successfully", profile)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Not signed in")
		return
	}

	if err := h.useCase.DeleteAccount(c.Request.Context(), accountID); err != nil {
		status := mapErrorToStatus(err)
		h.log.WithField("handler", "DeleteAccount").Errorf("Failed to delete account %d: %v", accountID, err)
		ErrorResponse(c, status, clientMessage(err, status))
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", c.Request.TLS != nil, true)
	SuccessResponse(c, http.StatusOK, "Account deleted successfully", nil)
}
