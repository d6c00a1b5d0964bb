package types

import uuid "github.com/gofrs/uuid"

// HTTP Header Constants
const (
	HeaderUID           = "uid"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// Roles carried in JWT claims
const (
	UserRole    = "user"
	CreatorRole = "creator"
	BrandRole   = "brand"
	AdminRole   = "admin"
)

// UserCtxName is the fiber locals key where the authenticated user is stored.
const UserCtxName = "user"

// UserContext carries the authenticated identity extracted from the JWT claim.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar"`
	SystemRole  string    `json:"role"`
	CreatedDate int64     `json:"createdDate"`
}
