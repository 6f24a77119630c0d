package models

// Follow is a directed edge: UserID follows FollowingID. The composite
// unique index makes a racing duplicate insert fail at the store.
type Follow struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UserID      uint64 `gorm:"index:uniq_follow,unique"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowingID uint64 `gorm:"index:uniq_follow,unique"`
	Following   User   `gorm:"foreignKey:FollowingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
