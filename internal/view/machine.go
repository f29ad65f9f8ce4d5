// Package view implements the presentation-level selection state: which
// screen a session is on (catalog list, one entry's detail, or the admin
// panel), the active admin subview and the catalog filter inputs.
//
// Transitions are explicit. A transition that is not legal from the current
// state returns ErrInvalidTransition and leaves the state unchanged.
package view

import (
	"errors"
	"fmt"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

var (
	// ErrInvalidTransition is returned for a transition that is not legal from
	// the current state.
	ErrInvalidTransition = errors.New("invalid view transition")
	// ErrUnknownSubview is returned by SetSubview for an unrecognized subview.
	ErrUnknownSubview = errors.New("unknown admin subview")
	// ErrEmptySelection is returned by SelectSoftware for an empty id.
	ErrEmptySelection = errors.New("software id is required")
)

// Mode is the top-level screen.
type Mode string

const (
	ModeCatalog Mode = "catalog"
	ModeDetail  Mode = "detail"
	ModeAdmin   Mode = "admin"
)

// Subview is one of the admin panel tabs.
type Subview string

const (
	SubviewDashboard  Subview = "dashboard"
	SubviewSoftware   Subview = "software"
	SubviewCategories Subview = "categories"

	DefaultSubview = SubviewSoftware
)

// ParseSubview validates s.
func ParseSubview(s string) (Subview, error) {
	switch v := Subview(s); v {
	case SubviewDashboard, SubviewSoftware, SubviewCategories:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubview, s)
}

// State is an immutable snapshot of a Machine.
type State struct {
	Mode       Mode    `json:"mode"`
	SoftwareID string  `json:"software_id,omitempty"`
	Subview    Subview `json:"subview,omitempty"`
	Term       string  `json:"q"`
	Category   string  `json:"category"`
}

// Machine is the per-session state machine. It is not safe for concurrent
// use; Registry serializes access.
type Machine struct {
	mode     Mode
	selected string
	subview  Subview
	term     string
	category string
}

// NewMachine returns a machine in the catalog state with no filter.
func NewMachine() *Machine {
	return &Machine{mode: ModeCatalog, subview: DefaultSubview, category: domain.CategoryAll}
}

// State returns the current snapshot. Subview is only reported in admin mode
// and SoftwareID only in detail mode.
func (m *Machine) State() State {
	s := State{Mode: m.mode, Term: m.term, Category: m.category}
	switch m.mode {
	case ModeDetail:
		s.SoftwareID = m.selected
	case ModeAdmin:
		s.Subview = m.subview
	}
	return s
}

// SelectSoftware opens the detail screen for id. Only legal from the catalog.
func (m *Machine) SelectSoftware(id string) error {
	if id == "" {
		return ErrEmptySelection
	}
	if m.mode != ModeCatalog {
		return fmt.Errorf("%w: select from %s", ErrInvalidTransition, m.mode)
	}
	m.mode, m.selected = ModeDetail, id
	return nil
}

// Back leaves the detail screen. Only legal from detail.
func (m *Machine) Back() error {
	if m.mode != ModeDetail {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, m.mode)
	}
	m.mode, m.selected = ModeCatalog, ""
	return nil
}

// ToggleAdmin enters the admin panel from any other screen, discarding any
// open detail, or returns from it to the catalog. The panel always opens on
// DefaultSubview: the web client remounts its admin panel on every entry, so
// the previously chosen tab is not remembered.
func (m *Machine) ToggleAdmin() {
	if m.mode == ModeAdmin {
		m.mode = ModeCatalog
		return
	}
	m.mode, m.selected, m.subview = ModeAdmin, "", DefaultSubview
}

// SetSubview switches the admin tab. Only legal inside the admin panel.
func (m *Machine) SetSubview(v string) error {
	sv, err := ParseSubview(v)
	if err != nil {
		return err
	}
	if m.mode != ModeAdmin {
		return fmt.Errorf("%w: subview outside admin", ErrInvalidTransition)
	}
	m.subview = sv
	return nil
}

// SetFilter stores the catalog search inputs. It is legal in every state; an
// empty category resets to all.
func (m *Machine) SetFilter(term, category string) {
	if category == "" {
		category = domain.CategoryAll
	}
	m.term, m.category = term, category
}

// Resolve drops a detail selection whose entry no longer exists, returning
// the session to the catalog. exists reports whether an id is still present.
func (m *Machine) Resolve(exists func(id string) bool) bool {
	if m.mode == ModeDetail && !exists(m.selected) {
		m.mode, m.selected = ModeCatalog, ""
		return true
	}
	return false
}
