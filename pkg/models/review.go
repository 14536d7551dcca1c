package models

import "time"

type Review struct {
	ID       string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string    `gorm:"type:varchar(200);not null" json:"name"`
	Rating   int       `gorm:"not null" json:"rating"`
	Text     string    `gorm:"type:text" json:"text"`
	Date     time.Time `gorm:"index" json:"date"`
	Verified bool      `gorm:"default:false" json:"verified"`
	Photo    string    `gorm:"type:varchar(500)" json:"photo,omitempty"`
	Location string    `gorm:"type:varchar(200)" json:"location,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

type Media struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	Type      string    `gorm:"type:varchar(20);default:'image'" json:"type"`
	Name      string    `gorm:"type:varchar(200)" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Media) TableName() string {
	return "media"
}

// SiteSettings is a singleton row holding the editable site content
// references (hero and about images).
type SiteSettings struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	HeroImage  string `gorm:"type:varchar(500)" json:"heroImage"`
	AboutImage string `gorm:"type:varchar(500)" json:"aboutImage"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// SettingsID is the fixed primary key of the settings singleton.
const SettingsID = "site_settings"
