package utils

import "github.com/gin-gonic/gin"

// Context keys populated by the auth middlewares.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// Identity is the caller resolved from the request token. The zero value is
// a guest: no user id, no role.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) Guest() bool   { return i.UserID == 0 }
func (i Identity) IsAdmin() bool { return i.Role == "admin" }
func (i Identity) IsStaff() bool { return i.Role == "staff" || i.Role == "admin" }

// CurrentIdentity reads the identity the auth middleware stored on the
// request. Under OptionalAuth an unauthenticated request yields a guest.
func CurrentIdentity(c *gin.Context) Identity {
	return Identity{UserID: CurrentUserID(c), Role: CurrentRole(c)}
}

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
