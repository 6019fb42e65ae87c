package requestid_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqid/pkg/requestid"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("stores and retrieves request ID", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), requestid.TextID("test-id"))
		id, ok := requestid.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "test-id", id.String())
		assert.Equal(t, "test-id", requestid.String(ctx))
	})

	t.Run("absent outside a bound scope", func(t *testing.T) {
		t.Parallel()
		id, ok := requestid.FromContext(context.Background())
		assert.False(t, ok)
		assert.True(t, id.IsZero())
		assert.Empty(t, requestid.String(context.Background()))

		var nilCtx context.Context
		_, ok = requestid.FromContext(nilCtx)
		assert.False(t, ok)
	})

	t.Run("require reports ErrNotBound", func(t *testing.T) {
		t.Parallel()
		_, err := requestid.Require(context.Background())
		assert.ErrorIs(t, err, requestid.ErrNotBound)

		ctx := requestid.WithContext(context.Background(), requestid.NumericID(7))
		id, err := requestid.Require(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", id.String())
	})

	t.Run("child contexts see the same binding", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), requestid.NumericID(3))
		child, cancel := context.WithCancel(ctx)
		defer cancel()
		id, ok := requestid.FromContext(child)
		require.True(t, ok)
		assert.Equal(t, requestid.NumericID(3), id)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("nil scope is unbound", func(t *testing.T) {
		t.Parallel()
		var s *requestid.Scope
		assert.Equal(t, requestid.StateUnbound, s.State())
		assert.False(t, s.Finalize())
		_, ok := s.ID()
		assert.False(t, ok)
	})

	t.Run("bound then finalized", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), requestid.TextID("abc"))
		s := requestid.ScopeFromContext(ctx)
		require.NotNil(t, s)
		assert.Equal(t, requestid.StateBound, s.State())

		assert.True(t, s.Finalize())
		assert.False(t, s.Finalize(), "second finalize must not transition again")
		assert.Equal(t, requestid.StateFinalized, s.State())
		assert.Equal(t, "finalized", s.State().String())

		_, ok := requestid.FromContext(ctx)
		assert.False(t, ok, "finalized scope must not leak its id")
	})
}

func TestID(t *testing.T) {
	t.Parallel()

	var zero requestid.ID
	assert.True(t, zero.IsZero())

	id := requestid.NumericID(12)
	seq, ok := id.Seq()
	assert.True(t, ok)
	assert.Equal(t, uint64(12), seq)
	assert.Equal(t, requestid.NumericID(12), id, "ids are comparable values")

	b, err := json.Marshal(map[string]requestid.ID{"id": requestid.TextID("a-b")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a-b"}`, string(b))

	assert.Equal(t, slog.KindString, id.LogValue().Kind())
	assert.Equal(t, "12", id.LogValue().String())
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), requestid.TextID("xyz")))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "xyz", attr.Value.String())
}
