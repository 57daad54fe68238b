package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aircast/internal/shared/id"
)

type NotificationModel struct {
	ID             uint    `gorm:"primaryKey"`
	SID            string  `gorm:"size:32;uniqueIndex;not null"`
	RecipientSID   string  `gorm:"size:32;not null;index:idx_recipient_read"`
	ActorSID       *string `gorm:"size:32;index"`
	Kind           string  `gorm:"size:32;not null"`
	TopicSID       *string `gorm:"size:32;index"`
	PostSID        *string `gorm:"size:32"`
	ContentPreview *string `gorm:"type:text"`
	ReadStatus     string  `gorm:"size:20;not null;default:'unread';index:idx_recipient_read"`
	Details        datatypes.JSON
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Actor *UserModel `gorm:"foreignKey:ActorSID;references:SID"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.SID == "" {
		sid, err := id.GenerateWithPrefix(id.PrefixNotification, id.DefaultLength)
		if err != nil {
			return err
		}
		n.SID = sid
	}
	if n.ReadStatus == "" {
		n.ReadStatus = "unread"
	}
	return nil
}
