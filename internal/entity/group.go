package entity

type Group struct {
	Base
	Title       string
	Slug        string `gorm:"unique"`
	Description string `gorm:"type:text"`
}
