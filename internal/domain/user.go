package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Page identifiers used by page permission grants.
const (
	PageDashboard = "dashboard"
	PageProfile   = "profile"
	PageReports   = "reports"
	PageOrders    = "orders"
	PageLocations = "locations"
	PageUpload    = "upload"
	PageUsers     = "users"
	PageSync      = "sync"
)

// OpenPages are viewable by every authenticated user.
var OpenPages = map[string]bool{
	PageDashboard: true,
	PageProfile:   true,
}

type User struct {
	ID                 uint
	Username           string
	PasswordHash       string
	Role               Role
	IsActive           bool
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type PagePermission struct {
	PageID  string
	CanView bool
	CanEdit bool
}

// AccessGrants is everything a non-admin user has been given.
type AccessGrants struct {
	LocationIDs []uint
	Permissions []PagePermission
	Statuses    []OrderStatus
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// AccessRepository stores grants. Replace* calls swap the whole set.
type AccessRepository interface {
	GetGrants(ctx context.Context, userID uint) (*AccessGrants, error)
	ReplaceLocations(ctx context.Context, userID uint, locationIDs []uint) error
	ReplacePermissions(ctx context.Context, userID uint, permissions []PagePermission) error
	ReplaceStatuses(ctx context.Context, userID uint, statuses []OrderStatus) error
}

type Session struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
