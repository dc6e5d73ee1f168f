package middleware

import "github.com/gofiber/fiber/v2"

// UserIDKey is the Locals key carrying the resolved user id.
const UserIDKey = "userID"

// DefaultUserID is used when the client does not supply one. There is no
// authentication surface: user identity is a client-supplied partition key.
const DefaultUserID = "default-user"

// ResolveUser pulls the userId query parameter into Locals, applying the
// default for anonymous clients.
func ResolveUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			userID = DefaultUserID
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
