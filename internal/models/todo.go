package models

// Todo is a single to-do item. Every todo belongs to exactly one user via
// OwnerID.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `gorm:"default:false" json:"complete"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
}

func (Todo) TableName() string {
	return "todos"
}
