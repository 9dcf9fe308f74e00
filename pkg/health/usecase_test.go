package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string { return f.name }

func (f fakeChecker) Check(context.Context) error { return f.err }

func TestReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.NoError(t, NewService().Ready(ctx))
	assert.NoError(t, NewService(fakeChecker{name: "postgres"}).Ready(ctx))

	down := errors.New("connection refused")
	err := NewService(fakeChecker{name: "postgres"}, fakeChecker{name: "redis", err: down}).Ready(ctx)
	assert.ErrorIs(t, err, down)
	assert.ErrorContains(t, err, "redis")
}
