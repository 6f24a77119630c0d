package models

import (
	"blogserver/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  // publication time, assigned on insert, never updated
	UpdatedAt int64
	AuthorID  uint64
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(300)"`
}

// DeleteWithComments removes the post and all of its comments atomically.
func (p *Post) DeleteWithComments() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}
