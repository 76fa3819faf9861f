package models

import "time"

type LocationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_locations_name"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LocationModel) TableName() string {
	return "locations"
}
