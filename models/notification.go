package models

// Notification is created for a provider when a client books one of its
// slots. Read is flipped through the notifications endpoint.
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`
}
