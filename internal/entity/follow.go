package entity

import "time"

// Follow is a directed subscription edge. The composite primary key makes a
// duplicate edge for the same (user, author) pair impossible, including
// under concurrent follow requests.
type Follow struct {
	CreatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	AuthorID string `gorm:"primaryKey"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
