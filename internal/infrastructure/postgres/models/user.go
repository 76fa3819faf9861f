package models

import "time"

type UserModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Username           string `gorm:"not null;uniqueIndex:idx_users_username"`
	PasswordHash       string `gorm:"not null"`
	Role               string `gorm:"not null"`
	IsActive           bool   `gorm:"not null"`
	MustChangePassword bool   `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type UserLocationAccessModel struct {
	UserID     uint `gorm:"primaryKey"`
	LocationID uint `gorm:"primaryKey;index"`
}

func (UserLocationAccessModel) TableName() string {
	return "user_location_access"
}

type UserPagePermissionModel struct {
	UserID  uint   `gorm:"primaryKey"`
	PageID  string `gorm:"primaryKey"`
	CanView bool   `gorm:"not null"`
	CanEdit bool   `gorm:"not null"`
}

func (UserPagePermissionModel) TableName() string {
	return "user_page_permissions"
}

type UserStatusAccessModel struct {
	UserID uint   `gorm:"primaryKey"`
	Status string `gorm:"primaryKey"`
}

func (UserStatusAccessModel) TableName() string {
	return "user_status_access"
}

type SessionModel struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}
