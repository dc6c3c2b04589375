package models

// Role values stored on User.Role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that owns todos. The password is only ever stored as a
// bcrypt hash.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"size:255;uniqueIndex" json:"email"`
	Username       string `gorm:"size:255;uniqueIndex" json:"username"`
	FirstName      string `gorm:"size:255" json:"first_name"`
	LastName       string `gorm:"size:255" json:"last_name"`
	HashedPassword string `gorm:"not null" json:"-"`
	Role           string `gorm:"size:20;default:'user'" json:"role"`
	PhoneNumber    string `gorm:"size:50" json:"phone_number"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
