// View state endpoints, keyed by the X-Session-ID header:
//   - GET  /view           (current state plus displayed data)
//   - POST /view/select    (catalog -> detail)
//   - POST /view/back      (detail -> catalog)
//   - POST /view/admin     (toggle admin panel)
//   - PUT  /view/subview   (switch admin tab)
//   - PUT  /view/filter    (set search inputs)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/http/middleware"
	"github.com/tbourn/go-soft-portal/internal/search"
	"github.com/tbourn/go-soft-portal/internal/view"
)

// withSession runs fn on the caller's machine and then answers with the
// resolved view.
func (h *Handlers) withSession(c *gin.Context, fn func(m *view.Machine) error) {
	sid := sessionID(c)
	if sid == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, middleware.SessionHeader+" header required")
		return
	}
	var st view.State
	err := h.views.Do(sid, func(m *view.Machine) error {
		if fn != nil {
			if err := fn(m); err != nil {
				return err
			}
		}
		m.Resolve(h.svc.Exists)
		st = m.State()
		return nil
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, h.render(c, st))
}

func (h *Handlers) render(c *gin.Context, st view.State) ViewResponse {
	resp := ViewResponse{State: st}
	switch st.Mode {
	case view.ModeCatalog:
		l := h.list(c, search.Query{Term: st.Term, Category: st.Category})
		resp.Results = &l
	case view.ModeDetail:
		if s, err := h.svc.Get(c.Request.Context(), st.SoftwareID); err == nil {
			p := present(s)
			resp.Software = &p
		}
	}
	return resp
}

// GetView godoc
// @ID          getView
// @Summary     Current view
// @Description Returns the session's view state. In catalog mode the filtered list is embedded; in detail mode the selected entry. A selection whose entry was deleted falls back to the catalog.
// @Tags        View
// @Produce     json
// @Param       X-Session-ID  header  string  true  "Presentation session id"
// @Success     200  {object}  handlers.ViewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing session"
// @Router      /view [get]
func (h *Handlers) GetView(c *gin.Context) {
	h.withSession(c, nil)
}

// SelectSoftware godoc
// @ID          selectSoftware
// @Summary     Open detail
// @Description Opens an entry's detail view. Only legal from the catalog.
// @Tags        View
// @Accept      json
// @Produce     json
// @Param       X-Session-ID  header  string                   true  "Presentation session id"
// @Param       body          body    handlers.SelectRequest  true  "Selection"
// @Success     200  {object}  handlers.ViewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Invalid transition"
// @Router      /view/select [post]
func (h *Handlers) SelectSoftware(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "software_id required")
		return
	}
	s, err := h.svc.Get(c.Request.Context(), req.SoftwareID)
	if err != nil {
		failErr(c, err)
		return
	}
	h.withSession(c, func(m *view.Machine) error { return m.SelectSoftware(s.ID) })
}

// Back godoc
// @ID          viewBack
// @Summary     Close detail
// @Description Returns from the detail view to the catalog. Only legal from detail.
// @Tags        View
// @Produce     json
// @Param       X-Session-ID  header  string  true  "Presentation session id"
// @Success     200  {object}  handlers.ViewResponse
// @Failure     409  {object}  handlers.ErrorResponse  "Invalid transition"
// @Router      /view/back [post]
func (h *Handlers) Back(c *gin.Context) {
	h.withSession(c, func(m *view.Machine) error { return m.Back() })
}

// ToggleAdmin godoc
// @ID          toggleAdmin
// @Summary     Toggle admin panel
// @Description Enters the admin panel on the software tab, discarding any open detail, or returns to the catalog.
// @Tags        View
// @Produce     json
// @Param       X-Session-ID  header  string  true  "Presentation session id"
// @Success     200  {object}  handlers.ViewResponse
// @Router      /view/admin [post]
func (h *Handlers) ToggleAdmin(c *gin.Context) {
	h.withSession(c, func(m *view.Machine) error {
		m.ToggleAdmin()
		return nil
	})
}

// SetSubview godoc
// @ID          setSubview
// @Summary     Switch admin tab
// @Tags        View
// @Accept      json
// @Produce     json
// @Param       X-Session-ID  header  string                    true  "Presentation session id"
// @Param       body          body    handlers.SubviewRequest  true  "Subview"
// @Success     200  {object}  handlers.ViewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown subview"
// @Failure     409  {object}  handlers.ErrorResponse  "Not in admin"
// @Router      /view/subview [put]
func (h *Handlers) SetSubview(c *gin.Context) {
	var req SubviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "subview required")
		return
	}
	h.withSession(c, func(m *view.Machine) error { return m.SetSubview(req.Subview) })
}

// SetFilter godoc
// @ID          setFilter
// @Summary     Set search inputs
// @Tags        View
// @Accept      json
// @Produce     json
// @Param       X-Session-ID  header  string                   true  "Presentation session id"
// @Param       body          body    handlers.FilterRequest  true  "Filter"
// @Success     200  {object}  handlers.ViewResponse
// @Router      /view/filter [put]
func (h *Handlers) SetFilter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid filter")
		return
	}
	h.withSession(c, func(m *view.Machine) error {
		m.SetFilter(req.Query, req.Category)
		return nil
	})
}
