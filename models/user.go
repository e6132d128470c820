package models

import "golang.org/x/crypto/bcrypt"

// User is both a client and, when Provider is set, a bookable service
// provider.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Provider     bool   `gorm:"default:false;index" json:"provider"`
	AvatarID     *uint  `gorm:"index" json:"-"`

	Avatar *File `gorm:"foreignKey:AvatarID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"avatar,omitempty"`
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
