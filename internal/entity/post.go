package entity

import "database/sql"

// Post is an authored text entry. The author and creation timestamp are
// fixed at creation; edits may touch only text, group and image. Deleting
// the author removes the post, deleting the group merely detaches it.
type Post struct {
	Base
	Text string `gorm:"type:text;not null"`

	AuthorID string `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	GroupID sql.NullString `gorm:"index"`
	Group   Group          `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`

	// Image holds an object-storage URL; the blob itself is never stored
	// here.
	Image string
}
