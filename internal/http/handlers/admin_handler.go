// Admin endpoints (mounted under /admin, guarded by middleware.AdminToken):
//   - GET    /admin/dashboard
//   - PUT    /admin/software               (upsert)
//   - DELETE /admin/software/{id}
//   - POST   /admin/software/{id}/media    (multipart logo/screenshots)
//   - POST   /admin/categories
//   - DELETE /admin/categories/{name}
//   - POST   /admin/authors
//   - POST   /admin/reset
package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/catalog"
	"github.com/tbourn/go-soft-portal/internal/domain"
	"github.com/tbourn/go-soft-portal/internal/media"
)

// Dashboard godoc
// @ID          adminDashboard
// @Summary     Catalog totals
// @Tags        Admin
// @Produce     json
// @Param       X-Admin-Token  header  string  false  "Admin token (when configured)"
// @Success     200  {object}  services.Dashboard
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /admin/dashboard [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	ok(c, http.StatusOK, h.svc.Dashboard(c.Request.Context()))
}

// SaveSoftware godoc
// @ID          saveSoftware
// @Summary     Create or update software
// @Description Replaces the entry with the same id in place, or appends a new one. A missing id is generated; a missing slug is derived from the name.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token  header  string           false  "Admin token (when configured)"
// @Param       body           body    domain.Software  true   "Entry"
// @Success     200  {object}  handlers.SoftwareResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Persist failed"
// @Router      /admin/software [put]
func (h *Handlers) SaveSoftware(c *gin.Context) {
	var in domain.Software
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	s, err := h.svc.SaveSoftware(c.Request.Context(), in)
	if err != nil {
		failErr(c, err)
		return
	}
	entry(c, http.StatusOK, s)
}

// DeleteSoftware godoc
// @ID          deleteSoftware
// @Summary     Delete software
// @Tags        Admin
// @Param       X-Admin-Token  header  string  false  "Admin token (when configured)"
// @Param       id             path    string  true   "Software id"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Persist failed"
// @Router      /admin/software/{id} [delete]
func (h *Handlers) DeleteSoftware(c *gin.Context) {
	if err := h.svc.DeleteSoftware(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// UploadMedia godoc
// @ID          uploadMedia
// @Summary     Upload logo and screenshots
// @Description Encodes image files as data URLs. A logo replaces the current one; screenshots are appended. Nothing is saved unless every file is a valid image within the size limit.
// @Tags        Admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       X-Admin-Token  header    string  false  "Admin token (when configured)"
// @Param       id             path      string  true   "Software id or slug"
// @Param       logo           formData  file    false  "Logo image"
// @Param       screenshots    formData  file    false  "Screenshot images (repeatable)"
// @Success     200  {object}  handlers.SoftwareResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     413  {object}  handlers.ErrorResponse  "File too large"
// @Failure     415  {object}  handlers.ErrorResponse  "Not an image"
// @Router      /admin/software/{id}/media [post]
func (h *Handlers) UploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart form required")
		return
	}
	if len(form.File[catalog.FieldLogo]) > 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at most one logo")
		return
	}

	var files []media.File
	for _, field := range []string{catalog.FieldLogo, catalog.FieldScreenshots} {
		for _, fh := range form.File[field] {
			files = append(files, media.File{
				Field: field,
				Name:  fh.Filename,
				Open:  func() (io.ReadCloser, error) { return fh.Open() },
			})
		}
	}
	if h.MaxMediaFiles > 0 && len(files) > h.MaxMediaFiles {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("at most %d files per upload", h.MaxMediaFiles))
		return
	}

	s, err := h.svc.AttachMedia(c.Request.Context(), c.Param("id"), files)
	if err != nil {
		failErr(c, err)
		return
	}
	entry(c, http.StatusOK, s)
}

// AddCategory godoc
// @ID          addCategory
// @Summary     Add category
// @Description Adds a category unless one with the same name exists, ignoring case.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token  header  string                false  "Admin token (when configured)"
// @Param       body           body    handlers.NameRequest  true  "Category"
// @Success     201  {object}  handlers.NameRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Already exists"
// @Router      /admin/categories [post]
func (h *Handlers) AddCategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required (1-120 chars)")
		return
	}
	name, err := h.svc.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, NameRequest{Name: name})
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Delete category
// @Description Removes the category and moves its entries to Uncategorized.
// @Tags        Admin
// @Produce     json
// @Param       X-Admin-Token  header  string  false  "Admin token (when configured)"
// @Param       name           path    string  true   "Category name (exact)"
// @Success     200  {object}  handlers.DeleteCategoryResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /admin/categories/{name} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	moved, err := h.svc.DeleteCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteCategoryResponse{Moved: moved})
}

// AddAuthor godoc
// @ID          addAuthor
// @Summary     Add author
// @Description Adds an author unless one with the same name exists, ignoring case.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token  header  string                false  "Admin token (when configured)"
// @Param       body           body    handlers.NameRequest  true   "Author"
// @Success     201  {object}  handlers.NameRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Already exists"
// @Router      /admin/authors [post]
func (h *Handlers) AddAuthor(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required (1-120 chars)")
		return
	}
	name, err := h.svc.AddAuthor(c.Request.Context(), req.Name)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, NameRequest{Name: name})
}

// Reset godoc
// @ID          resetCatalog
// @Summary     Reset catalog
// @Description Erases all persisted slots and reloads the defaults.
// @Tags        Admin
// @Param       X-Admin-Token  header  string  false  "Admin token (when configured)"
// @Success     204  {string}  string  "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Persist failed"
// @Router      /admin/reset [post]
func (h *Handlers) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
