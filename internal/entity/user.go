package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	HashedPassword string
	Role           string `gorm:"default:USER"`
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)
