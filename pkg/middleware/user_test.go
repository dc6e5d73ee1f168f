package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolveUser(t *testing.T) {
	app := fiber.New()
	app.Use(ResolveUser())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(UserIDKey).(string))
	})

	tests := []struct {
		target string
		want   string
	}{
		{"/?userId=alice", "alice"},
		{"/", DefaultUserID},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != tt.want {
			t.Errorf("%s: expected user %q, got %q", tt.target, tt.want, body)
		}
	}
}
