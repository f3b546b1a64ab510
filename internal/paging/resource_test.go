package paging

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

var signedIn = session.Session{ID: "s1", Credential: "token"}

func pageOf(items []string, current, last int) types.ListPage[string] {
	return types.ListPage[string]{
		Items: items,
		Meta:  types.PageMeta{CurrentPage: current, LastPage: last, PerPage: 10, Total: len(items)},
	}
}

func TestLoad_WithoutCredentialIssuesNoRequest(t *testing.T) {
	var calls int32
	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		atomic.AddInt32(&calls, 1)
		return pageOf(nil, 1, 1), nil
	}, zap.NewNop())

	err := r.Load(context.Background(), session.Session{ID: "s1"}, 1)
	assert.ErrorIs(t, err, apperrors.ErrNoCredential)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestLoad_SuccessReplacesState(t *testing.T) {
	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		assert.Equal(t, "token", cred)
		assert.Equal(t, 10, perPage)
		return pageOf([]string{"a", "b"}, page, 3), nil
	}, zap.NewNop())

	require.NoError(t, r.Load(context.Background(), signedIn, 2))

	snap := r.Snapshot()
	assert.Equal(t, []string{"a", "b"}, snap.Items)
	assert.Equal(t, 2, snap.Page)
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.NotNil(t, snap.Meta)
	assert.Equal(t, 3, snap.Meta.LastPage)
}

func TestLoad_FailureKeepsPreviousItems(t *testing.T) {
	fail := false
	r := New("test", 10, "Erreur chargement", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		if fail {
			return types.ListPage[string]{}, &apperrors.APIError{Status: 500}
		}
		return pageOf([]string{"a"}, 1, 2), nil
	}, zap.NewNop())

	require.NoError(t, r.Load(context.Background(), signedIn, 1))
	fail = true
	require.Error(t, r.Load(context.Background(), signedIn, 2))

	snap := r.Snapshot()
	assert.Equal(t, []string{"a"}, snap.Items)
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, "Erreur chargement", snap.Error)
	assert.Equal(t, PhaseError, snap.Phase)
	assert.False(t, snap.Loading)
}

func TestGoTo_OutOfRangeIsNoop(t *testing.T) {
	var calls int32
	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		atomic.AddInt32(&calls, 1)
		return pageOf([]string{"a"}, page, 3), nil
	}, zap.NewNop())
	require.NoError(t, r.Load(context.Background(), signedIn, 1))

	for _, page := range []int{0, -1, 4} {
		issued, err := r.GoTo(context.Background(), signedIn, page)
		assert.NoError(t, err)
		assert.False(t, issued, "page %d", page)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, r.CurrentPage())

	issued, err := r.GoTo(context.Background(), signedIn, 3)
	require.NoError(t, err)
	assert.True(t, issued)
	assert.Equal(t, 3, r.CurrentPage())
}

func TestLoad_StaleResponseDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		if page == 1 {
			close(started)
			<-release
			return pageOf([]string{"old"}, 1, 2), nil
		}
		return pageOf([]string{"new"}, 2, 2), nil
	}, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- r.Load(context.Background(), signedIn, 1) }()
	<-started

	require.NoError(t, r.Load(context.Background(), signedIn, 2))
	close(release)
	require.NoError(t, <-done)

	snap := r.Snapshot()
	assert.Equal(t, []string{"new"}, snap.Items)
	assert.Equal(t, 2, snap.Page)
	assert.False(t, snap.Loading)
}

func TestSetFilter_ResetsToFirstPage(t *testing.T) {
	type filter struct{ Search string }
	var seen []filter
	var pages []int
	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, f filter) (types.ListPage[string], error) {
		seen = append(seen, f)
		pages = append(pages, page)
		return types.ListPage[string]{Items: []string{"x"}, Meta: types.PageMeta{CurrentPage: page, LastPage: 5}}, nil
	}, zap.NewNop())

	require.NoError(t, r.Load(context.Background(), signedIn, 3))
	require.NoError(t, r.SetFilter(context.Background(), signedIn, filter{Search: "abc"}))
	require.NoError(t, r.ClearFilter(context.Background(), signedIn))

	assert.Equal(t, []int{3, 1, 1}, pages)
	assert.Equal(t, []filter{{}, {Search: "abc"}, {}}, seen)
	assert.Equal(t, filter{}, r.Filter())
}

func TestMutate(t *testing.T) {
	list := func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		return pageOf([]string{"a"}, page, 4), nil
	}

	t.Run("success closes editor and reloads", func(t *testing.T) {
		r := New("test", 10, "Erreur", list, zap.NewNop())
		require.NoError(t, r.Load(context.Background(), signedIn, 3))
		r.OpenCreate()

		err := r.Mutate(context.Background(), signedIn, func(ctx context.Context, cred string) error {
			assert.Equal(t, "token", cred)
			return nil
		}, Outcome{ReloadPage: 1, Success: types.SuccessNotice("Créé", "")})
		require.NoError(t, err)

		snap := r.Snapshot()
		assert.False(t, snap.Editor.Open())
		assert.Equal(t, 1, snap.Page)
		require.NotNil(t, snap.Notice)
		assert.Equal(t, "Créé", snap.Notice.Title)

		assert.Nil(t, r.Snapshot().Notice, "notice is shown once")
	})

	t.Run("loading while the request runs", func(t *testing.T) {
		r := New("test", 10, "Erreur", list, zap.NewNop())
		require.NoError(t, r.Load(context.Background(), signedIn, 1))

		var during Snapshot[string, NoFilter]
		err := r.Mutate(context.Background(), signedIn, func(ctx context.Context, cred string) error {
			during = r.Snapshot()
			return nil
		}, Outcome{})
		require.NoError(t, err)

		assert.Equal(t, PhaseLoading, during.Phase)
		assert.True(t, during.Loading)
		snap := r.Snapshot()
		assert.Equal(t, PhaseReady, snap.Phase)
		assert.False(t, snap.Loading)
	})

	t.Run("failure keeps editor open", func(t *testing.T) {
		r := New("test", 10, "Erreur", list, zap.NewNop())
		require.NoError(t, r.Load(context.Background(), signedIn, 2))
		r.OpenEdit("u1")

		apiErr := &apperrors.APIError{Status: 422, Message: "The email has already been taken."}
		err := r.Mutate(context.Background(), signedIn, func(ctx context.Context, cred string) error {
			return apiErr
		}, Outcome{Fallback: "Erreur"})
		assert.True(t, errors.Is(err, apiErr))

		snap := r.Snapshot()
		assert.Equal(t, PhaseError, snap.Phase)
		assert.False(t, snap.Loading)
		assert.Equal(t, Editor{Mode: EditorEdit, TargetID: "u1"}, snap.Editor)
		assert.Equal(t, "The email has already been taken.", snap.Error)
		require.NotNil(t, snap.Notice)
		assert.Equal(t, types.NoticeError, snap.Notice.Level)
		assert.Equal(t, 2, snap.Page)
	})
}

func TestPageAfterDelete(t *testing.T) {
	items := []string{"only"}
	r := New("test", 10, "Erreur", func(ctx context.Context, cred string, page, perPage int, _ NoFilter) (types.ListPage[string], error) {
		return pageOf(items, page, 3), nil
	}, zap.NewNop())

	require.NoError(t, r.Load(context.Background(), signedIn, 3))
	assert.Equal(t, 2, r.PageAfterDelete())

	items = []string{"a", "b"}
	require.NoError(t, r.Load(context.Background(), signedIn, 3))
	assert.Equal(t, 3, r.PageAfterDelete())

	items = []string{"only"}
	require.NoError(t, r.Load(context.Background(), signedIn, 1))
	assert.Equal(t, 1, r.PageAfterDelete())
}
