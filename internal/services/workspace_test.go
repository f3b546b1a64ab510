package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payment-admin/internal/integrations/mock"
	apperrors "payment-admin/pkg/errors"
)

func TestWorkspaceRegistry(t *testing.T) {
	reg := NewWorkspaceRegistry(mock.NewMockProvider(), 10, time.Hour, zap.NewNop())
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	_, err := reg.Get("")
	assert.ErrorIs(t, err, apperrors.ErrWorkspaceNotAvailable)

	a1, err := reg.Get("a")
	require.NoError(t, err)
	a2, err := reg.Get("a")
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	b, err := reg.Get("b")
	require.NoError(t, err)
	assert.NotSame(t, a1, b)
	assert.Equal(t, 2, reg.Len())

	now = now.Add(2 * time.Hour)
	_, err = reg.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len(), "idle workspace a is dropped")

	reg.Evict("b")
	assert.Zero(t, reg.Len())
}
