package delivery

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"family_shapes/internal/middleware"
	"family_shapes/internal/productgroup"
	"family_shapes/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func LoadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}

type Section struct {
	Heading string
	Body    string
}

type Link struct {
	Label string
	Href  string
}

// Page is a static marketing or dashboard page. Theme, when set, overrides
// the group derived from the path.
type Page struct {
	Path      string
	Title     string
	Headline  string
	Lead      string
	Sections  []Section
	CTA       *Link
	Waitlist  bool
	Dashboard bool
	Theme     productgroup.ProductGroup
}

type pageView struct {
	Page
	Group       productgroup.ProductGroup
	ThemeCSS    template.CSS
	CurrentPath string
	Nav         []Link
}

var navigation = []Link{
	{Label: "Families", Href: "/"},
	{Label: "Donors", Href: "/for-donors"},
	{Label: "Organizations", Href: "/organizations"},
	{Label: "Contact", Href: "/contact"},
}

func DefaultPages() []Page {
	return []Page{
		{
			Path:     "/",
			Title:    "Family Shapes",
			Headline: "Every family has its own shape",
			Lead:     "Keep track of donor connections, siblings and the people who helped build your family.",
			Sections: []Section{
				{Heading: "Map your connections", Body: "Record donors, donor siblings and extended family in one private place."},
				{Heading: "Share on your terms", Body: "Decide who sees what, and when."},
			},
			CTA:      &Link{Label: "Join the waitlist", Href: "#waitlist"},
			Waitlist: true,
		},
		{
			Path:     "/contact",
			Title:    "Contact",
			Headline: "Talk to us",
			Lead:     "Questions about the platform, partnerships or press. We read every message.",
			Waitlist: true,
		},
		{
			Path:     "/for-donors",
			Title:    "For donors",
			Headline: "Stay connected, on your terms",
			Lead:     "Let families reach you when you are ready, with the privacy controls you choose.",
			Sections: []Section{
				{Heading: "Control your visibility", Body: "Choose anonymous, open-identity or fully open contact."},
				{Heading: "Keep your health history current", Body: "Update medical information once and every family you choose to share with sees it."},
			},
			CTA:      &Link{Label: "Get early access", Href: "#waitlist"},
			Waitlist: true,
		},
		{
			Path:     "/donor-landing",
			Title:    "Donors",
			Headline: "You helped build families",
			Lead:     "A calm, private way to hear from them.",
			Waitlist: true,
		},
		{
			Path:     "/donate",
			Title:    "Become a donor",
			Headline: "Thinking about donating?",
			Lead:     "Learn what being a known or open-identity donor looks like today.",
			CTA:      &Link{Label: "Read the donor guide", Href: "/for-donors"},
			Theme:    productgroup.Donor,
		},
		{
			Path:     "/organizations",
			Title:    "For organizations",
			Headline: "Tools for clinics and sperm banks",
			Lead:     "Manage donor records, family limits and recipient communication in one place.",
			Sections: []Section{
				{Heading: "Family limits", Body: "Track births per donor across regions without spreadsheets."},
				{Heading: "Secure messaging", Body: "Relay messages between donors and recipients with consent built in."},
			},
			CTA:      &Link{Label: "Get started", Href: "/get-started"},
			Waitlist: true,
		},
		{
			Path:     "/get-started",
			Title:    "Get started",
			Headline: "Bring your organization on board",
			Lead:     "Tell us about your organization and we will set up a pilot.",
			Waitlist: true,
		},
		{
			Path:      "/organization-dashboard",
			Title:     "Organization dashboard",
			Headline:  "Organization dashboard",
			Lead:      "Donors, recipients and family limits at a glance.",
			Dashboard: true,
		},
		{
			Path:      "/admin",
			Title:     "Admin",
			Headline:  "Administration",
			Lead:      "Waitlist and account overview.",
			Dashboard: true,
		},
		{
			Path:      "/dashboard",
			Title:     "Your family",
			Headline:  "Your family",
			Lead:      "Your connections, documents and shared updates.",
			Dashboard: true,
		},
	}
}

var notFoundPage = Page{
	Title:    "Page not found",
	Headline: "We couldn't find that page",
	Lead:     "The link may be old, or the page may have moved.",
	CTA:      &Link{Label: "Back to home", Href: "/"},
}

type PageHandler struct {
	pages   []Page
	palette theme.Palette
	log     *logrus.Logger
}

func NewPageHandler(pages []Page, palette theme.Palette, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		pages:   pages,
		palette: palette,
		log:     logger,
	}
}

func (h *PageHandler) RegisterRoutes(router gin.IRouter) {
	for _, page := range h.pages {
		router.GET(page.Path, h.render(page, http.StatusOK))
	}
	router.GET("/static/theme.css", h.Stylesheet)
}

// NotFound renders the 404 page in the theme of the requested path. API
// clients get the JSON envelope instead.
func (h *PageHandler) NotFound(c *gin.Context) {
	if c.Request.URL.Path == "/api" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		ErrorResponse(c, http.StatusNotFound, "Not found")
		return
	}
	h.render(notFoundPage, http.StatusNotFound)(c)
}

func (h *PageHandler) Stylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.palette.Stylesheet()))
}

func (h *PageHandler) render(page Page, status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		handlerLogger := h.log.WithField("handler", "Page")

		provider, err := productgroup.FromContext(c.Request.Context())
		if err != nil {
			handlerLogger.Errorf("Rendering %s without product context: %v", c.Request.URL.Path, err)
			_ = c.Error(err)
			ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		root, ok := middleware.ThemeRootFrom(c)
		if !ok {
			handlerLogger.Errorf("Rendering %s without theme root", c.Request.URL.Path)
			ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if page.Theme != "" {
			if err := provider.SetGroup(page.Theme); err != nil {
				handlerLogger.Errorf("Page %s has invalid theme override: %v", page.Path, err)
			}
		}

		c.HTML(status, "page.tmpl", pageView{
			Page:        page,
			Group:       provider.Group(),
			ThemeCSS:    template.CSS(root.CSS()),
			CurrentPath: c.Request.URL.Path,
			Nav:         navigation,
		})
	}
}
