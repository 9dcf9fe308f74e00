package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/auth"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()
	gen := NewGenerator("secret", "fundi", time.Minute)
	tok, err := gen.Generate(context.Background(), auth.User{ID: 7, Role: auth.RoleWorker})
	require.NoError(t, err)

	claims, err := Parse(tok, []byte("secret"), "fundi")
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, auth.RoleWorker, claims.Role)

	_, err = Parse(tok, []byte("other"), "fundi")
	assert.Error(t, err)
	_, err = Parse(tok, []byte("secret"), "someone-else")
	assert.Error(t, err)

	expired, err := NewGenerator("secret", "fundi", -time.Minute).Generate(context.Background(), auth.User{ID: 7})
	require.NoError(t, err)
	_, err = Parse(expired, []byte("secret"), "")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Use(NewAuthMiddleware("secret", "fundi"))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("userId"), "role": c.Locals("role")})
	})

	tok, err := NewGenerator("secret", "fundi", time.Minute).Generate(context.Background(), auth.User{ID: 3, Role: auth.RoleClient})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"bearer", "Bearer " + tok, http.StatusOK},
		{"bare", tok, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
