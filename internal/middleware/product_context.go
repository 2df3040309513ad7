package middleware

import (
	"family_shapes/internal/productgroup"
	"family_shapes/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	providerKey  = "productProvider"
	themeRootKey = "themeRoot"
)

// ProductContext gives every request its own provider, classified from the
// request path, with a theme root kept in sync by the provider. Both are
// reachable from the gin context and from the request's context.Context.
func ProductContext(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		root := theme.NewRoot()
		provider := productgroup.NewProvider(c.Request.URL.Path, theme.Apply(root))

		logger.Debugf("Middleware: %s classified as %s", c.Request.URL.Path, provider.Group())

		c.Set(providerKey, provider)
		c.Set(themeRootKey, root)
		c.Request = c.Request.WithContext(productgroup.WithProvider(c.Request.Context(), provider))
		c.Next()
	}
}

func ProviderFrom(c *gin.Context) (*productgroup.Provider, bool) {
	v, ok := c.Get(providerKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*productgroup.Provider)
	return p, ok
}

func ThemeRootFrom(c *gin.Context) (*theme.Root, bool) {
	v, ok := c.Get(themeRootKey)
	if !ok {
		return nil, false
	}
	r, ok := v.(*theme.Root)
	return r, ok
}
