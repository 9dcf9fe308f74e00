package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := Connect(ctx, "not a url")
	assert.ErrorContains(t, err, "parse redis url")

	_, err = Connect(ctx, "redis://127.0.0.1:1/0")
	assert.ErrorContains(t, err, "ping redis")
}
