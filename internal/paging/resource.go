// Package paging holds the list-screen controller shared by the operators,
// tokens, users and transactions screens.
package paging

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

type EditorMode string

const (
	EditorClosed EditorMode = ""
	EditorCreate EditorMode = "create"
	EditorEdit   EditorMode = "edit"
)

// Editor is the create/edit surface of a screen.
type Editor struct {
	Mode     EditorMode `json:"mode,omitempty"`
	TargetID string     `json:"target_id,omitempty"`
}

func (e Editor) Open() bool { return e.Mode != EditorClosed }

// NoFilter is the filter type of screens without filters.
type NoFilter struct{}

// Lister fetches one page of a screen's entities.
type Lister[T any, F any] func(ctx context.Context, credential string, page, perPage int, filter F) (types.ListPage[T], error)

// Mutation is a single create/update/delete/lifecycle request.
type Mutation func(ctx context.Context, credential string) error

// Outcome describes what a successful mutation does to the screen.
type Outcome struct {
	// ReloadPage is the page to load afterwards; 0 reloads the current page.
	ReloadPage int
	Success    *types.Notice
	// Fallback is the message used when the failure carries none.
	Fallback string
}

// Snapshot is a copy of a screen's state.
type Snapshot[T any, F any] struct {
	Page    int             `json:"page"`
	Items   []T             `json:"items"`
	Meta    *types.PageMeta `json:"meta"`
	Filter  F               `json:"filter"`
	Phase   Phase           `json:"phase"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
	Editor  Editor          `json:"editor"`
	Notice  *types.Notice   `json:"notice,omitempty"`
}

// Resource is one list screen: the current page, its rows and metadata, the
// filter, the loading flag and the last error. Loads are sequenced; a response
// that is not the answer to the latest load is dropped.
type Resource[T any, F any] struct {
	name     string
	perPage  int
	fallback string
	list     Lister[T, F]
	logger   *zap.Logger

	mu      sync.Mutex
	page    int
	items   []T
	meta    *types.PageMeta
	filter  F
	phase   Phase
	loading bool
	errMsg  string
	editor  Editor
	notice  *types.Notice
	seq     uint64
}

func New[T any, F any](name string, perPage int, fallback string, list Lister[T, F], logger *zap.Logger) *Resource[T, F] {
	return &Resource[T, F]{
		name:     name,
		perPage:  perPage,
		fallback: fallback,
		list:     list,
		logger:   logger.Named(name),
		page:     1,
		items:    make([]T, 0),
		phase:    PhaseIdle,
	}
}

// Load fetches page for the session. Without a credential nothing happens.
// On failure the previous rows stay and the error text is set.
func (r *Resource[T, F]) Load(ctx context.Context, sess session.Session, page int) error {
	if !sess.Authenticated() {
		return apperrors.ErrNoCredential
	}

	r.mu.Lock()
	r.seq++
	seq := r.seq
	filter := r.filter
	r.loading = true
	r.errMsg = ""
	r.phase = PhaseLoading
	r.mu.Unlock()

	res, err := r.list(ctx, sess.Credential, page, r.perPage, filter)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		r.logger.Debug("stale page response dropped", zap.Int("page", page), zap.Uint64("seq", seq), zap.Uint64("latest", r.seq))
		return err
	}
	r.loading = false

	if err != nil {
		r.errMsg = apperrors.UserMessage(err, r.fallback)
		r.phase = PhaseError
		r.logger.Warn("page load failed", zap.Int("page", page), zap.Error(err))
		return err
	}

	r.items = res.Items
	if r.items == nil {
		r.items = make([]T, 0)
	}
	meta := res.Meta
	if meta.CurrentPage < 1 {
		meta.CurrentPage = page
	}
	r.meta = &meta
	r.page = meta.CurrentPage
	r.phase = PhaseReady
	return nil
}

// GoTo loads page unless it is below 1 or beyond the last known page. The
// returned bool tells whether a request was issued.
func (r *Resource[T, F]) GoTo(ctx context.Context, sess session.Session, page int) (bool, error) {
	r.mu.Lock()
	outOfRange := page < 1 || (r.meta != nil && page > r.meta.LastPage)
	r.mu.Unlock()
	if outOfRange {
		return false, nil
	}
	return true, r.Load(ctx, sess, page)
}

// Reload loads the current page again.
func (r *Resource[T, F]) Reload(ctx context.Context, sess session.Session) error {
	return r.Load(ctx, sess, r.CurrentPage())
}

// SetFilter replaces the filter and goes back to page 1.
func (r *Resource[T, F]) SetFilter(ctx context.Context, sess session.Session, filter F) error {
	r.mu.Lock()
	r.filter = filter
	r.page = 1
	r.mu.Unlock()
	return r.Load(ctx, sess, 1)
}

// ClearFilter empties the filter and loads page 1 unfiltered.
func (r *Resource[T, F]) ClearFilter(ctx context.Context, sess session.Session) error {
	var zero F
	return r.SetFilter(ctx, sess, zero)
}

func (r *Resource[T, F]) OpenCreate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.editor = Editor{Mode: EditorCreate}
	r.errMsg = ""
}

func (r *Resource[T, F]) OpenEdit(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.editor = Editor{Mode: EditorEdit, TargetID: id}
	r.errMsg = ""
}

func (r *Resource[T, F]) CloseEditor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.editor = Editor{}
}

// Mutate runs op. Success closes the editor, queues the success notice and
// reloads; failure leaves the editor open with the error text and an error
// notice.
func (r *Resource[T, F]) Mutate(ctx context.Context, sess session.Session, op Mutation, out Outcome) error {
	if !sess.Authenticated() {
		return apperrors.ErrNoCredential
	}

	r.mu.Lock()
	r.errMsg = ""
	r.loading = true
	r.phase = PhaseLoading
	r.mu.Unlock()

	if err := op(ctx, sess.Credential); err != nil {
		msg := apperrors.UserMessage(err, out.Fallback)
		r.mu.Lock()
		r.loading = false
		r.phase = PhaseError
		r.errMsg = msg
		r.notice = types.ErrorNotice(msg)
		r.mu.Unlock()
		r.logger.Warn("mutation failed", zap.String("editor", string(r.Editor().Mode)), zap.Error(err))
		return err
	}

	r.mu.Lock()
	r.editor = Editor{}
	r.notice = out.Success
	page := out.ReloadPage
	if page == 0 {
		page = r.page
	}
	r.mu.Unlock()

	if err := r.Load(ctx, sess, page); err != nil && errors.Is(err, apperrors.ErrUnauthorized) {
		return err
	}
	return nil
}

// PageAfterDelete is the page to show once a row of the current page is
// gone: one back when it was the only row of a page past the first.
func (r *Resource[T, F]) PageAfterDelete() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 1 && r.page > 1 {
		return r.page - 1
	}
	return r.page
}

func (r *Resource[T, F]) CurrentPage() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page
}

func (r *Resource[T, F]) Filter() F {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

func (r *Resource[T, F]) Editor() Editor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.editor
}

// Snapshot copies the state. The pending notice is handed out once.
func (r *Resource[T, F]) Snapshot() Snapshot[T, F] {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]T, len(r.items))
	copy(items, r.items)

	var meta *types.PageMeta
	if r.meta != nil {
		m := *r.meta
		meta = &m
	}

	snap := Snapshot[T, F]{
		Page:    r.page,
		Items:   items,
		Meta:    meta,
		Filter:  r.filter,
		Phase:   r.phase,
		Loading: r.loading,
		Error:   r.errMsg,
		Editor:  r.editor,
		Notice:  r.notice,
	}
	r.notice = nil
	return snap
}
