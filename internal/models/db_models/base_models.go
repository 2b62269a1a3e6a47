package db_models

import (
	"gorm.io/gorm"

	"naturapi/pkg/utils"
)

// BaseModel carries the auto-increment id shared by every table.
// Ids are never reused: rows are hard-deleted but the sequence keeps growing.
type BaseModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := utils.NowUnixSeconds()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = utils.NowUnixSeconds()
	return nil
}
