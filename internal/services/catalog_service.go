// Package services – CatalogService
//
// CatalogService owns the live catalog. Every operation runs to completion
// under one mutex, so concurrent HTTP requests never interleave two
// mutations. A mutation is applied to the in-memory catalog first and the
// touched slots are then written through the configured persist.Store; if a
// write fails the in-memory catalog is restored to its pre-operation
// snapshot and the error (wrapping ErrPersist) is returned.
//
// Slots already written before the failing one are not undone. Only
// DeleteCategory touches two slots.
//
// Observability: public methods are OpenTelemetry-instrumented and mutations
// are counted in Prometheus by operation and outcome.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-soft-portal/internal/catalog"
	"github.com/tbourn/go-soft-portal/internal/domain"
	"github.com/tbourn/go-soft-portal/internal/media"
	"github.com/tbourn/go-soft-portal/internal/persist"
	"github.com/tbourn/go-soft-portal/internal/search"
	"github.com/tbourn/go-soft-portal/internal/seed"
)

// Taxonomies is the set of reference lists an entry's string fields draw from.
type Taxonomies struct {
	Categories   []string `json:"categories"`
	Authors      []string `json:"authors"`
	Platforms    []string `json:"platforms"`
	Licenses     []string `json:"licenses"`
	Requirements []string `json:"requirements"`
}

// Dashboard summarizes the catalog for the admin panel.
type Dashboard struct {
	SoftwareCount  int   `json:"software_count"`
	CategoryCount  int   `json:"category_count"`
	AuthorCount    int   `json:"author_count"`
	ReviewCount    int   `json:"review_count"`
	TotalDownloads int64 `json:"total_downloads"`
}

// CatalogService coordinates catalog mutations and their persistence.
type CatalogService struct {
	Store persist.Store
	Seed  seed.Source

	// MaxUploadBytes caps each media file; <= 0 uses media.DefaultMaxBytes.
	MaxUploadBytes int64

	// Test seams.
	NewID func() string
	Now   func() time.Time

	mu  sync.Mutex
	cat *catalog.Catalog
}

// NewCatalogService returns a service over store with an empty catalog. Call
// Load before serving traffic. A nil src uses the built-in defaults.
func NewCatalogService(store persist.Store, src seed.Source) *CatalogService {
	if src == nil {
		src = seed.Builtin
	}
	return &CatalogService{
		Store:          store,
		Seed:           src,
		MaxUploadBytes: media.DefaultMaxBytes,
		NewID:          uuid.NewString,
		Now:            time.Now,
		cat:            &catalog.Catalog{},
	}
}

func tracer() trace.Tracer { return otel.Tracer("services/CatalogService") }

// Load reads all six slots, falling back per slot to the seed defaults when a
// slot is absent or corrupt. Only a failing seed source is an error.
func (s *CatalogService) Load(ctx context.Context) error {
	ctx, span := tracer().Start(ctx, "Load")
	defer span.End()

	def, err := s.Seed()
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	c := &catalog.Catalog{
		Software:     persist.Load(ctx, s.Store, persist.KeySoftware, def.Software),
		Categories:   persist.Load(ctx, s.Store, persist.KeyCategories, def.Categories),
		Authors:      persist.Load(ctx, s.Store, persist.KeyAuthors, def.Authors),
		Platforms:    persist.Load(ctx, s.Store, persist.KeyPlatforms, def.Platforms),
		Licenses:     persist.Load(ctx, s.Store, persist.KeyLicenses, def.Licenses),
		Requirements: persist.Load(ctx, s.Store, persist.KeyRequirements, def.Requirements),
	}

	s.mu.Lock()
	s.cat = c
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("software.count", len(c.Software)))
	return nil
}

// List returns the entries matching q in catalog order.
func (s *CatalogService) List(ctx context.Context, q search.Query) []domain.Software {
	_, span := tracer().Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("query.term", q.Term),
			attribute.String("query.category", q.Category),
		),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	out := search.Filter(s.cat.Software, q)
	for i := range out {
		out[i] = out[i].Clone()
	}
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out
}

// Get resolves ref as an id, then as a slug.
func (s *CatalogService) Get(ctx context.Context, ref string) (domain.Software, error) {
	_, span := tracer().Start(ctx, "Get", trace.WithAttributes(attribute.String("software.ref", ref)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cat.Lookup(ref)
	if !ok {
		return domain.Software{}, ErrSoftwareNotFound
	}
	return e, nil
}

// Exists reports whether an entry with exactly this id is present.
func (s *CatalogService) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cat.Find(id)
	return ok
}

// Related returns up to k entries similar to the one named by ref.
func (s *CatalogService) Related(ctx context.Context, ref string, k int) ([]search.Result, error) {
	_, span := tracer().Start(ctx, "Related",
		trace.WithAttributes(attribute.String("software.ref", ref), attribute.Int("k", k)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.cat.Lookup(ref)
	if !ok {
		return nil, ErrSoftwareNotFound
	}
	res := search.Related(s.cat.Software, target, k)
	for i := range res {
		res[i].Software = res[i].Software.Clone()
	}
	return res, nil
}

// SaveSoftware validates entry and upserts it. An empty id is replaced by a
// fresh one, an empty unit defaults to MB, and the slug is derived from the
// name when blank.
func (s *CatalogService) SaveSoftware(ctx context.Context, entry domain.Software) (domain.Software, error) {
	ctx, span := tracer().Start(ctx, "SaveSoftware", trace.WithAttributes(attribute.String("software.id", entry.ID)))
	defer span.End()

	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Unit == "" {
		entry.Unit = domain.UnitMB
	}
	if err := validateSoftware(entry); err != nil {
		observe("save_software", err)
		return domain.Software{}, err
	}
	if entry.ID == "" {
		entry.ID = s.NewID()
	}
	if entry.Screenshots == nil {
		entry.Screenshots = []string{}
	}

	var saved domain.Software
	err := s.mutate(ctx, "save_software", func(c *catalog.Catalog) ([]string, error) {
		// Unknown categories are accepted as typed; they only show up in logs.
		if entry.Category != "" && !c.HasCategory(entry.Category) {
			zerolog.Ctx(ctx).Warn().
				Str("software_id", entry.ID).
				Str("category", entry.Category).
				Msg("software saved with a category outside the category list")
		}
		c.UpsertSoftware(entry)
		saved, _ = c.Find(entry.ID)
		return []string{persist.KeySoftware}, nil
	})
	return saved, err
}

func validateSoftware(e domain.Software) error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidSoftware)
	case !e.Unit.Valid():
		return fmt.Errorf("%w: unit must be KB, MB or GB", ErrInvalidSoftware)
	case e.Size < 0:
		return fmt.Errorf("%w: size must be >= 0", ErrInvalidSoftware)
	case e.Downloads < 0:
		return fmt.Errorf("%w: downloads must be >= 0", ErrInvalidSoftware)
	case e.Rating < 0 || e.Rating > 5:
		return fmt.Errorf("%w: rating must be within 0..5", ErrInvalidSoftware)
	}
	for _, r := range e.Reviews {
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("%w: review %q rating must be within 1..5", ErrInvalidSoftware, r.ID)
		}
	}
	return nil
}

// DeleteSoftware removes the entry with the given id.
func (s *CatalogService) DeleteSoftware(ctx context.Context, id string) error {
	ctx, span := tracer().Start(ctx, "DeleteSoftware", trace.WithAttributes(attribute.String("software.id", id)))
	defer span.End()

	return s.mutate(ctx, "delete_software", func(c *catalog.Catalog) ([]string, error) {
		if !c.DeleteSoftware(id) {
			return nil, ErrSoftwareNotFound
		}
		return []string{persist.KeySoftware}, nil
	})
}

// AddCategory appends a category unless it already exists ignoring case and
// returns the name as stored (trimmed).
func (s *CatalogService) AddCategory(ctx context.Context, name string) (string, error) {
	ctx, span := tracer().Start(ctx, "AddCategory", trace.WithAttributes(attribute.String("category", name)))
	defer span.End()

	name = strings.TrimSpace(name)
	err := s.mutate(ctx, "add_category", func(c *catalog.Catalog) ([]string, error) {
		if name == "" {
			return nil, ErrEmptyName
		}
		if !c.AddCategory(name) {
			return nil, ErrCategoryExists
		}
		return []string{persist.KeyCategories}, nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// DeleteCategory removes a category and moves its entries to Uncategorized,
// returning how many entries moved.
func (s *CatalogService) DeleteCategory(ctx context.Context, name string) (int, error) {
	ctx, span := tracer().Start(ctx, "DeleteCategory", trace.WithAttributes(attribute.String("category", name)))
	defer span.End()

	moved := 0
	err := s.mutate(ctx, "delete_category", func(c *catalog.Catalog) ([]string, error) {
		found := false
		for _, cat := range c.Categories {
			if cat == name {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrCategoryNotFound
		}
		moved = c.DeleteCategory(name)
		if moved == 0 {
			return []string{persist.KeyCategories}, nil
		}
		return []string{persist.KeyCategories, persist.KeySoftware}, nil
	})
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("software.moved", moved))
	return moved, nil
}

// AddAuthor appends an author unless it already exists ignoring case and
// returns the name as stored (trimmed).
func (s *CatalogService) AddAuthor(ctx context.Context, name string) (string, error) {
	ctx, span := tracer().Start(ctx, "AddAuthor", trace.WithAttributes(attribute.String("author", name)))
	defer span.End()

	name = strings.TrimSpace(name)
	err := s.mutate(ctx, "add_author", func(c *catalog.Catalog) ([]string, error) {
		if name == "" {
			return nil, ErrEmptyName
		}
		if !c.AddAuthor(name) {
			return nil, ErrAuthorExists
		}
		return []string{persist.KeyAuthors}, nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// AddReview appends a review to the entry named by ref and recomputes its
// rating. The review gets a fresh id and today's UTC date.
func (s *CatalogService) AddReview(ctx context.Context, ref string, in domain.ReviewInput) (domain.Software, error) {
	ctx, span := tracer().Start(ctx, "AddReview",
		trace.WithAttributes(attribute.String("software.ref", ref), attribute.Int("review.rating", in.Rating)),
	)
	defer span.End()

	in.Author = strings.TrimSpace(in.Author)
	if in.Author == "" || in.Rating < 1 || in.Rating > 5 {
		observe("add_review", ErrInvalidReview)
		return domain.Software{}, ErrInvalidReview
	}

	var updated domain.Software
	err := s.mutate(ctx, "add_review", func(c *catalog.Catalog) ([]string, error) {
		cur, ok := c.Lookup(ref)
		if !ok {
			return nil, ErrSoftwareNotFound
		}
		updated = catalog.AddReview(cur, in, s.NewID(), s.Now())
		c.UpsertSoftware(updated)
		return []string{persist.KeySoftware}, nil
	})
	if err != nil {
		return domain.Software{}, err
	}
	reviewsTotal.Inc()
	return updated, nil
}

// RecordDownload bumps the download counter of the entry named by ref.
func (s *CatalogService) RecordDownload(ctx context.Context, ref string) (domain.Software, error) {
	ctx, span := tracer().Start(ctx, "RecordDownload", trace.WithAttributes(attribute.String("software.ref", ref)))
	defer span.End()

	var updated domain.Software
	err := s.mutate(ctx, "record_download", func(c *catalog.Catalog) ([]string, error) {
		cur, ok := c.Lookup(ref)
		if !ok {
			return nil, ErrSoftwareNotFound
		}
		updated = catalog.RecordDownload(cur)
		c.UpsertSoftware(updated)
		return []string{persist.KeySoftware}, nil
	})
	if err != nil {
		return domain.Software{}, err
	}
	downloadsTotal.Inc()
	return updated, nil
}

// AttachMedia encodes the uploaded files concurrently and folds them into the
// entry named by ref: a logo replaces the current one, screenshots are
// appended in completion order. Nothing is saved unless every file encodes.
func (s *CatalogService) AttachMedia(ctx context.Context, ref string, files []media.File) (domain.Software, error) {
	ctx, span := tracer().Start(ctx, "AttachMedia",
		trace.WithAttributes(attribute.String("software.ref", ref), attribute.Int("media.files", len(files))),
	)
	defer span.End()

	if len(files) == 0 {
		return domain.Software{}, ErrNoMedia
	}
	if _, err := s.Get(ctx, ref); err != nil {
		return domain.Software{}, err
	}

	done := make([]media.Result, 0, len(files))
	var firstErr error
	for r := range media.EncodeAll(ctx, files, s.MaxUploadBytes) {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		done = append(done, r)
	}
	if firstErr != nil {
		observe("attach_media", firstErr)
		return domain.Software{}, firstErr
	}

	var updated domain.Software
	err := s.mutate(ctx, "attach_media", func(c *catalog.Catalog) ([]string, error) {
		cur, ok := c.Lookup(ref)
		if !ok {
			return nil, ErrSoftwareNotFound
		}
		for _, r := range done {
			if catalog.ApplyUpload(&cur, r.Field, r.Payload) {
				uploadBytes.Observe(float64(len(r.Payload)))
			}
		}
		c.UpsertSoftware(cur)
		updated, _ = c.Find(cur.ID)
		return []string{persist.KeySoftware}, nil
	})
	return updated, err
}

// Taxonomies returns copies of the five reference lists.
func (s *CatalogService) Taxonomies(ctx context.Context) Taxonomies {
	_, span := tracer().Start(ctx, "Taxonomies")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cat.Clone()
	return Taxonomies{
		Categories:   nonNil(c.Categories),
		Authors:      nonNil(c.Authors),
		Platforms:    nonNil(c.Platforms),
		Licenses:     nonNil(c.Licenses),
		Requirements: nonNil(c.Requirements),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// Dashboard returns catalog totals.
func (s *CatalogService) Dashboard(ctx context.Context) Dashboard {
	_, span := tracer().Start(ctx, "Dashboard")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d := Dashboard{
		SoftwareCount: len(s.cat.Software),
		CategoryCount: len(s.cat.Categories),
		AuthorCount:   len(s.cat.Authors),
	}
	for _, e := range s.cat.Software {
		d.ReviewCount += len(e.Reviews)
		d.TotalDownloads += e.Downloads
	}
	return d
}

// Reset erases every slot and reinstalls the seed catalog. If the erase
// fails the live catalog is left as it was.
func (s *CatalogService) Reset(ctx context.Context) (err error) {
	ctx, span := tracer().Start(ctx, "Reset")
	defer span.End()
	defer func() { observe("reset", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	def, err := s.Seed()
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	if err := s.Store.Delete(ctx, persist.AllKeys...); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.cat = def
	zerolog.Ctx(ctx).Info().Int("software", len(def.Software)).Msg("catalog reset to defaults")
	return nil
}

// mutate applies fn to the live catalog under the lock and writes each slot
// fn reports as touched. fn's own error aborts with no write. A failed write
// restores the snapshot.
func (s *CatalogService) mutate(ctx context.Context, op string, fn func(c *catalog.Catalog) ([]string, error)) (err error) {
	defer func() { observe(op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.cat.Clone()
	keys, err := fn(s.cat)
	if err != nil {
		s.cat = snapshot
		return err
	}
	for _, key := range keys {
		if werr := s.write(ctx, key); werr != nil {
			s.cat = snapshot
			zerolog.Ctx(ctx).Error().Err(werr).Str("op", op).Str("slot", key).Msg("catalog write failed, rolled back")
			return fmt.Errorf("%w: %w", ErrPersist, werr)
		}
	}
	return nil
}

func (s *CatalogService) write(ctx context.Context, key string) error {
	switch key {
	case persist.KeySoftware:
		return persist.Save(ctx, s.Store, key, s.cat.Software)
	case persist.KeyCategories:
		return persist.Save(ctx, s.Store, key, s.cat.Categories)
	case persist.KeyAuthors:
		return persist.Save(ctx, s.Store, key, s.cat.Authors)
	case persist.KeyPlatforms:
		return persist.Save(ctx, s.Store, key, s.cat.Platforms)
	case persist.KeyLicenses:
		return persist.Save(ctx, s.Store, key, s.cat.Licenses)
	case persist.KeyRequirements:
		return persist.Save(ctx, s.Store, key, s.cat.Requirements)
	}
	return fmt.Errorf("unknown slot %q", key)
}

func isPersist(err error) bool { return errors.Is(err, ErrPersist) }
