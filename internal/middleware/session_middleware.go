package middleware

import (
	"slices"

	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Session identity is forwarded by the gateway that authenticated the
// caller.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	localUserID   = "userID"
	localUserRole = "userRole"
)

type Identity struct {
	UserID uuid.UUID
	Role   string
}

// RequireRole rejects requests without a valid session identity or whose
// role is not one of roles, and stores the identity for the handlers.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Get(HeaderUserID))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Authentication required",
			})
		}
		role := c.Get(HeaderUserRole)
		if len(roles) > 0 && !slices.Contains(roles, role) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "You are not allowed to access this resource",
			})
		}
		c.Locals(localUserID, id)
		c.Locals(localUserRole, role)
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireRole.
func CurrentIdentity(c *fiber.Ctx) Identity {
	id, _ := c.Locals(localUserID).(uuid.UUID)
	role, _ := c.Locals(localUserRole).(string)
	return Identity{UserID: id, Role: role}
}
