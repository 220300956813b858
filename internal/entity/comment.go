package entity

type Comment struct {
	Base
	Text string `gorm:"type:text;not null"`

	AuthorID string `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	PostID string `gorm:"not null;index"`
	Post   Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
