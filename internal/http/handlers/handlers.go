// Catalog HTTP handlers.
//
// Handlers are transport-thin: they bind and validate input, call the
// catalog service or the per-session view registry, and translate results
// into HTTP responses.
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/domain"
	"github.com/tbourn/go-soft-portal/internal/http/middleware"
	"github.com/tbourn/go-soft-portal/internal/media"
	"github.com/tbourn/go-soft-portal/internal/search"
	"github.com/tbourn/go-soft-portal/internal/services"
	"github.com/tbourn/go-soft-portal/internal/view"
)

// CatalogService is the catalog surface consumed by the HTTP layer.
//
// Implementations must be safe for concurrent use and honor ctx for
// cancellation.
type CatalogService interface {
	List(ctx context.Context, q search.Query) []domain.Software
	Get(ctx context.Context, ref string) (domain.Software, error)
	Exists(id string) bool
	Related(ctx context.Context, ref string, k int) ([]search.Result, error)

	SaveSoftware(ctx context.Context, entry domain.Software) (domain.Software, error)
	DeleteSoftware(ctx context.Context, id string) error
	AttachMedia(ctx context.Context, ref string, files []media.File) (domain.Software, error)

	AddCategory(ctx context.Context, name string) (string, error)
	DeleteCategory(ctx context.Context, name string) (int, error)
	AddAuthor(ctx context.Context, name string) (string, error)

	AddReview(ctx context.Context, ref string, in domain.ReviewInput) (domain.Software, error)
	RecordDownload(ctx context.Context, ref string) (domain.Software, error)

	Taxonomies(ctx context.Context) services.Taxonomies
	Dashboard(ctx context.Context) services.Dashboard
	Reset(ctx context.Context) error
}

// Handlers groups the catalog, view and admin endpoints.
type Handlers struct {
	svc   CatalogService
	views *view.Registry

	// MaxMediaFiles caps the number of files in one upload.
	MaxMediaFiles int
}

// New constructs Handlers bound to svc and the session registry.
func New(svc CatalogService, views *view.Registry) *Handlers {
	return &Handlers{svc: svc, views: views, MaxMediaFiles: 10}
}

// sessionID returns the trimmed X-Session-ID header, or "" when absent.
func sessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(middleware.SessionHeader))
}

//
// DTOs
//

// SoftwareResponse is an entry plus its resolved logo.
type SoftwareResponse struct {
	domain.Software
	ResolvedLogo media.Logo `json:"resolvedLogo"`
}

func present(s domain.Software) SoftwareResponse {
	return SoftwareResponse{Software: s, ResolvedLogo: media.ResolveLogo(s.Logo)}
}

func presentAll(in []domain.Software) []SoftwareResponse {
	out := make([]SoftwareResponse, len(in))
	for i, s := range in {
		out[i] = present(s)
	}
	return out
}

// ListSoftwareResponse is the filtered catalog.
type ListSoftwareResponse struct {
	Items    []SoftwareResponse `json:"items"`
	Total    int                `json:"total"`
	Query    string             `json:"q"`
	Category string             `json:"category"`
}

// RelatedItem is one related entry with its similarity score.
type RelatedItem struct {
	Software SoftwareResponse `json:"software"`
	Score    float64          `json:"score" example:"0.42"`
}

// RelatedResponse lists entries similar to the requested one.
type RelatedResponse struct {
	Items []RelatedItem `json:"items"`
}

// NameRequest carries a category or author name.
type NameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120" example:"Games"`
}

// SelectRequest opens an entry's detail view.
type SelectRequest struct {
	SoftwareID string `json:"software_id" binding:"required" example:"1"`
}

// SubviewRequest switches the admin tab.
type SubviewRequest struct {
	Subview string `json:"subview" binding:"required" example:"dashboard" enums:"dashboard,software,categories"`
}

// FilterRequest sets the session's catalog search inputs.
type FilterRequest struct {
	Query    string `json:"q" binding:"max=200" example:"code"`
	Category string `json:"category" example:"all"`
}

// ViewResponse is a session's view state with the data it displays: the
// filtered list in catalog mode and the selected entry in detail mode.
type ViewResponse struct {
	State    view.State            `json:"state"`
	Software *SoftwareResponse     `json:"software,omitempty"`
	Results  *ListSoftwareResponse `json:"results,omitempty"`
}

// DeleteCategoryResponse reports how many entries moved to Uncategorized.
type DeleteCategoryResponse struct {
	Moved int `json:"moved" example:"2"`
}
