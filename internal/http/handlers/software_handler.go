// Public catalog endpoints:
//   - GET  /software                 (filtered list)
//   - GET  /software/{id}            (detail by id or slug)
//   - GET  /software/{id}/related    (similar entries)
//   - POST /software/{id}/reviews    (submit review)
//   - POST /software/{id}/downloads  (record download)
//   - GET  /taxonomies               (reference lists)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/domain"
	"github.com/tbourn/go-soft-portal/internal/search"
	"github.com/tbourn/go-soft-portal/internal/utils"
)

const (
	defaultRelated = 3
	maxRelated     = 20
)

func (h *Handlers) list(c *gin.Context, q search.Query) ListSoftwareResponse {
	if q.Category == "" {
		q.Category = domain.CategoryAll
	}
	items := h.svc.List(c.Request.Context(), q)
	return ListSoftwareResponse{
		Items:    presentAll(items),
		Total:    len(items),
		Query:    q.Term,
		Category: q.Category,
	}
}

// ListSoftware godoc
// @ID          listSoftware
// @Summary     List software
// @Description Returns entries whose category matches and whose name or description contains q, ignoring case. Catalog order is preserved.
// @Tags        Software
// @Produce     json
//
// @Param       q         query  string  false  "Search term"  example(code)
// @Param       category  query  string  false  "Category or 'all'"  default(all)
//
// @Success     200  {object}  handlers.ListSoftwareResponse
// @Router      /software [get]
func (h *Handlers) ListSoftware(c *gin.Context) {
	ok(c, http.StatusOK, h.list(c, search.Query{Term: c.Query("q"), Category: c.Query("category")}))
}

// GetSoftware godoc
// @ID          getSoftware
// @Summary     Get software
// @Description Returns one entry by id, or by slug when no id matches.
// @Tags        Software
// @Produce     json
//
// @Param       id  path  string  true  "Software id or slug"  example(code-pilot)
//
// @Success     200  {object}  handlers.SoftwareResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /software/{id} [get]
func (h *Handlers) GetSoftware(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	entry(c, http.StatusOK, s)
}

// RelatedSoftware godoc
// @ID          relatedSoftware
// @Summary     Related software
// @Description Ranks other entries by token similarity of name and description, with a bonus for a shared category.
// @Tags        Software
// @Produce     json
//
// @Param       id  path   string  true   "Software id or slug"
// @Param       k   query  int     false  "Max results"  minimum(1) maximum(20) default(3)
//
// @Success     200  {object}  handlers.RelatedResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /software/{id}/related [get]
func (h *Handlers) RelatedSoftware(c *gin.Context) {
	k := utils.PositiveIntCapped(c.Query("k"), defaultRelated, maxRelated)
	res, err := h.svc.Related(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		failErr(c, err)
		return
	}
	out := RelatedResponse{Items: make([]RelatedItem, len(res))}
	for i, r := range res {
		out.Items[i] = RelatedItem{Software: present(r.Software), Score: r.Score}
	}
	ok(c, http.StatusOK, out)
}

// AddReview godoc
// @ID          addReview
// @Summary     Submit a review
// @Description Appends a review (rating 1..5) and recomputes the entry's rating as the mean of all reviews, rounded to one decimal.
// @Tags        Software
// @Accept      json
// @Produce     json
//
// @Param       id    path  string              true  "Software id or slug"
// @Param       body  body  domain.ReviewInput  true  "Review"
//
// @Success     201  {object}  handlers.SoftwareResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Persist failed"
// @Router      /software/{id}/reviews [post]
func (h *Handlers) AddReview(c *gin.Context) {
	var in domain.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "author (1-120 chars) and rating (1-5) required")
		return
	}
	s, err := h.svc.AddReview(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		failErr(c, err)
		return
	}
	entry(c, http.StatusCreated, s)
}

// RecordDownload godoc
// @ID          recordDownload
// @Summary     Record a download
// @Description Increments the entry's download counter by one. Calls are never deduplicated.
// @Tags        Software
// @Produce     json
//
// @Param       id  path  string  true  "Software id or slug"
//
// @Success     200  {object}  handlers.SoftwareResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Persist failed"
// @Router      /software/{id}/downloads [post]
func (h *Handlers) RecordDownload(c *gin.Context) {
	s, err := h.svc.RecordDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	entry(c, http.StatusOK, s)
}

// Taxonomies godoc
// @ID          taxonomies
// @Summary     Reference lists
// @Description Categories, authors, platforms, licenses and requirements.
// @Tags        Software
// @Produce     json
// @Success     200  {object}  services.Taxonomies
// @Router      /taxonomies [get]
func (h *Handlers) Taxonomies(c *gin.Context) {
	ok(c, http.StatusOK, h.svc.Taxonomies(c.Request.Context()))
}
