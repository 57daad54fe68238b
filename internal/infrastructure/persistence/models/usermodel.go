package models

import "time"

type UserModel struct {
	ID          uint    `gorm:"primaryKey"`
	SID         string  `gorm:"size:32;uniqueIndex;not null"`
	Username    string  `gorm:"size:64;uniqueIndex;not null"`
	DisplayName *string `gorm:"size:128"`
	AvatarURL   *string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string {
	return "users"
}
