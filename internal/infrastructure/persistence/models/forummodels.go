package models

import "time"

type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"size:32;uniqueIndex;not null"`
	Name      string `gorm:"size:128;not null"`
	Slug      string `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "forum_categories"
}

type TopicModel struct {
	ID          uint    `gorm:"primaryKey"`
	SID         string  `gorm:"size:32;uniqueIndex;not null"`
	CategorySID *string `gorm:"size:32;index"`
	AuthorSID   string  `gorm:"size:32;index;not null"`
	Title       string  `gorm:"size:255;not null"`
	Slug        string  `gorm:"size:255;index;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategorySID;references:SID"`
}

func (TopicModel) TableName() string {
	return "forum_topics"
}
