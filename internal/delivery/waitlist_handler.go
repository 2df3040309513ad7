package delivery

import (
	"net/http"
	"net/url"
	"strconv"

	"family_shapes/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WaitlistHandler struct {
	useCase domain.WaitlistUseCase
	log     *logrus.Logger
}

func NewWaitlistHandler(uc domain.WaitlistUseCase, logger *logrus.Logger) *WaitlistHandler {
	return &WaitlistHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts the public sign-up endpoint on public and the
// dashboard views on admin.
func (h *WaitlistHandler) RegisterRoutes(public, admin gin.IRouter) {
	public.POST("/waitlist", h.Join)
	admin.GET("/waitlist", h.List)
	admin.GET("/waitlist/summary", h.Summary)
}

func (h *WaitlistHandler) Join(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "JoinWaitlist")

	var input domain.JoinWaitlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlerLogger.Warnf("Failed to bind waitlist request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if input.SourcePath == "" {
		input.SourcePath = refererPath(c.Request.Referer())
	}

	entry, err := h.useCase.Join(c.Request.Context(), input)
	if err != nil {
		status := mapErrorToStatus(err)
		handlerLogger.Warnf("Failed to join waitlist: %v", err)
		ErrorResponse(c, status, clientMessage(err, status))
		return
	}

	SuccessResponse(c, http.StatusCreated, "You're on the list", entry)
}

func (h *WaitlistHandler) List(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListWaitlist")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	entries, err := h.useCase.List(c.Request.Context(), c.Query("group"), limit, offset)
	if err != nil {
		status := mapErrorToStatus(err)
		handlerLogger.Warnf("Failed to list waitlist: %v", err)
		ErrorResponse(c, status, clientMessage(err, status))
		return
	}

	SuccessResponse(c, http.StatusOK, "Waitlist retrieved successfully", entries)
}

func (h *WaitlistHandler) Summary(c *gin.Context) {
	summary, err := h.useCase.Summary(c.Request.Context())
	if err != nil {
		h.log.WithField("handler", "WaitlistSummary").Errorf("Failed to summarize waitlist: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	SuccessResponse(c, http.StatusOK, "Waitlist summary", summary)
}

func refererPath(referer string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	return u.Path
}
