package delivery

import (
	"fmt"
	"net/http"
	"time"

	"family_shapes/internal/domain"
	"family_shapes/internal/middleware"
	"family_shapes/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	Waitlist   domain.WaitlistUseCase
	Accounts   domain.AccountUseCase
	SessionTTL time.Duration
	Logger     *logrus.Logger
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.ProductContext(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))

	pageHandler := NewPageHandler(DefaultPages(), theme.DefaultPalette(), deps.Logger)
	pageHandler.RegisterRoutes(router)
	router.NoRoute(pageHandler.NotFound)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(deps.Accounts, deps.Logger))
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin(deps.Accounts, deps.Logger))

	NewThemeHandler(deps.Logger).RegisterRoutes(api)
	NewWaitlistHandler(deps.Waitlist, deps.Logger).RegisterRoutes(api, admin)
	NewAccountHandler(deps.Accounts, int(deps.SessionTTL.Seconds()), deps.Logger).RegisterRoutes(api, protected)

	return router, nil
}
