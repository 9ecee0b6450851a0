// Package session holds the interaction state of the inventory screen and
// exposes the only paths that mutate it.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory/internal/debounce"
	"inventory/internal/forms"
	"inventory/internal/models"
	"inventory/internal/services"
	"inventory/internal/views"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFormClosed is returned by form operations when no form is open.
	ErrFormClosed = errors.New("form is not open")
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page must be 1 or greater")
	// ErrInvalidViewMode is returned for unknown view modes.
	ErrInvalidViewMode = errors.New("view mode must be list or card")
	// ErrNotConfirmed is returned when a delete was declined.
	ErrNotConfirmed = errors.New("deletion was not confirmed")
)

// DefaultSearchDelay is the quiescence window applied to the search query.
const DefaultSearchDelay = 500 * time.Millisecond

// Confirmer is asked before a product is deleted; false (or a nil Confirmer)
// cancels the delete.
type Confirmer func(product models.Product) bool

// ValidationError carries the field messages of a rejected form submit.
type ValidationError struct {
	Fields forms.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form has %d invalid field(s)", len(e.Fields))
}

// FormState describes the open form, if any.
type FormState struct {
	Open     bool              `json:"open"`
	Mode     forms.Mode        `json:"mode,omitempty"`
	TargetID *int              `json:"target_id,omitempty"`
	Fields   *forms.Fields     `json:"fields,omitempty"`
	Errors   forms.FieldErrors `json:"errors,omitempty"`
}

// Option configures a Session.
type Option func(*config)

type config struct {
	delay  time.Duration
	clock  clock.Clock
	logger *logrus.Entry
}

// WithSearchDelay sets the search debounce window.
func WithSearchDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithClock sets the clock driving the search debounce.
func WithClock(cl clock.Clock) Option {
	return func(c *config) { c.clock = cl }
}

// WithLogger sets the logger entry.
func WithLogger(l *logrus.Entry) Option {
	return func(c *config) { c.logger = l }
}

// Session is the state container for one inventory screen.
type Session struct {
	mu             sync.RWMutex
	products       *services.ProductService
	search         *debounce.Debouncer[string]
	viewMode       models.ViewMode
	query          string
	debouncedQuery string
	currentPage    int
	form           *forms.Draft
	log            *logrus.Entry
}

// New returns a session showing page 1 of the card view with no query.
func New(products *services.ProductService, opts ...Option) *Session {
	cfg := config{
		delay:  DefaultSearchDelay,
		clock:  clock.New(),
		logger: logrus.WithField("component", "session"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		products:    products,
		search:      debounce.New("", cfg.delay, debounce.WithClock(cfg.clock)),
		viewMode:    models.ViewModeCard,
		currentPage: 1,
		log:         cfg.logger,
	}
	s.search.OnSettled(s.applyDebouncedQuery)
	return s
}

// Close stops the pending search debounce.
func (s *Session) Close() {
	s.search.Stop()
}

func (s *Session) applyDebouncedQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debouncedQuery = q
	s.log.WithField("query", q).Debug("search query settled")
}

// State returns a snapshot of the view state.
func (s *Session) State() models.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := models.ViewState{
		ViewMode:       s.viewMode,
		SearchQuery:    s.query,
		DebouncedQuery: s.debouncedQuery,
		CurrentPage:    s.currentPage,
		FormOpen:       s.form != nil,
	}
	if s.form != nil && s.form.Mode() == forms.ModeEdit {
		id := s.form.TargetID()
		state.EditingID = &id
	}
	return state
}

// View derives the visible page window from the current collection, the
// debounced query and the current page.
func (s *Session) View() (views.Page, error) {
	s.mu.RLock()
	query, page := s.debouncedQuery, s.currentPage
	s.mu.RUnlock()

	products, err := s.products.List()
	if err != nil {
		return views.Page{}, fmt.Errorf("failed to list products: %w", err)
	}
	return views.Derive(products, query, page), nil
}

// SetQuery updates the raw search text and goes back to page 1. Filtering
// follows once the text has settled.
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
	s.currentPage = 1
	// Fed under s.mu so the settled query follows the order of s.query.
	s.search.Feed(q)
}

// SetPage moves to page. Pages past the last one are allowed and show nothing.
func (s *Session) SetPage(page int) error {
	if page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
	return nil
}

// SetViewMode switches between list and card presentation.
func (s *Session) SetViewMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidViewMode, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
	return nil
}

// Form describes the open form.
func (s *Session) Form() FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formStateLocked()
}

func (s *Session) formStateLocked() FormState {
	if s.form == nil {
		return FormState{}
	}
	fields := s.form.Fields()
	state := FormState{
		Open:   true,
		Mode:   s.form.Mode(),
		Fields: &fields,
		Errors: s.form.Errors(),
	}
	if s.form.Mode() == forms.ModeEdit {
		id := s.form.TargetID()
		state.TargetID = &id
	}
	return state
}

// OpenCreateForm opens an empty form, replacing any open draft.
func (s *Session) OpenCreateForm() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = forms.NewCreate()
	return s.formStateLocked()
}

// OpenEditForm opens a form seeded from product id, replacing any open draft.
func (s *Session) OpenEditForm(id int) (FormState, error) {
	product, err := s.products.Get(id)
	if err != nil {
		return FormState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = forms.NewEdit(*product)
	return s.formStateLocked(), nil
}

// EditForm applies a field edit to the open form without validating.
func (s *Session) EditForm(p forms.Patch) (FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return FormState{}, ErrFormClosed
	}
	s.form.Apply(p)
	return s.formStateLocked(), nil
}

// CloseForm discards the open draft, if any.
func (s *Session) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = nil
}

// SubmitForm validates the open draft. Invalid drafts stay open and a
// *ValidationError is returned. Valid drafts are added (create) or applied
// (edit) and the form closes; adding also goes back to page 1.
func (s *Session) SubmitForm() (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return nil, ErrFormClosed
	}
	product, err := s.commitLocked(s.form)
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return nil, err
	}
	// An edit whose target vanished while the form was open has nothing left
	// to apply to, so the form closes on that error as well.
	if err == nil || s.form.Mode() == forms.ModeEdit {
		s.form = nil
	}
	return product, err
}

// Save fills a fresh draft for id (create when id is nil) with fields and
// submits it in one step. The interactive form is left alone.
func (s *Session) Save(id *int, fields forms.Fields) (*models.Product, error) {
	draft := forms.NewCreate()
	if id != nil {
		product, err := s.products.Get(*id)
		if err != nil {
			return nil, err
		}
		draft = forms.NewEdit(*product)
	}
	draft.Set(fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(draft)
}

func (s *Session) commitLocked(d *forms.Draft) (*models.Product, error) {
	normalized, fieldErrs := d.Submit()
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if d.Mode() == forms.ModeEdit {
		return s.products.Update(d.TargetID(), normalized)
	}
	product, err := s.products.Add(normalized)
	if err != nil {
		return nil, err
	}
	s.currentPage = 1
	return product, nil
}

// Delete removes product id after confirm approves it. When the product was the
// only one in the visible window and the current page is not the first, the
// page moves back by one.
func (s *Session) Delete(id int, confirm Confirmer) (bool, error) {
	product, err := s.products.Get(id)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm(*product) {
		return false, ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.products.List()
	if err != nil {
		return false, fmt.Errorf("failed to list products: %w", err)
	}
	visible := views.Derive(all, s.debouncedQuery, s.currentPage)

	removed, err := s.products.Remove(id)
	if err != nil || !removed {
		return removed, err
	}
	if s.currentPage > 1 && len(visible.Items) == 1 && visible.Items[0].ID == id {
		s.currentPage--
	}
	s.log.WithFields(logrus.Fields{"product_id": id, "page": s.currentPage}).Info("product deleted")
	return true, nil
}
