package delivery

import (
	"net/http"

	"family_shapes/internal/productgroup"
	"family_shapes/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ThemeResponse lets client-side navigation re-theme without a page load.
type ThemeResponse struct {
	Path      string                    `json:"path"`
	Detected  productgroup.ProductGroup `json:"detected_group"`
	Group     productgroup.ProductGroup `json:"group"`
	Variables map[string]string         `json:"variables"`
}

type ThemeHandler struct {
	log *logrus.Logger
}

func NewThemeHandler(logger *logrus.Logger) *ThemeHandler {
	return &ThemeHandler{log: logger}
}

func (h *ThemeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/theme", h.GetTheme)
}

// GetTheme classifies ?path= (default "/"); ?group= overrides the result the
// same way a page would through the provider's setter.
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "GetTheme")
	path := c.DefaultQuery("path", "/")

	root := theme.NewRoot()
	provider := productgroup.NewProvider(path, theme.Apply(root))
	detected := provider.Group()

	if override := c.Query("group"); override != "" {
		g, err := productgroup.ParseProductGroup(override)
		if err != nil {
			handlerLogger.Warnf("Invalid group override %q: %v", override, err)
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := provider.SetGroup(g); err != nil {
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	SuccessResponse(c, http.StatusOK, "Theme resolved", ThemeResponse{
		Path:      path,
		Detected:  detected,
		Group:     provider.Group(),
		Variables: root.Properties(),
	})
}
