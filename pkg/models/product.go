package models

type Product struct {
	ID                 string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name               string  `gorm:"type:varchar(200);not null" json:"name"`
	Description        string  `gorm:"type:text" json:"description"`
	OriginalPrice      float64 `gorm:"type:decimal(10,2);not null" json:"originalPrice"`
	DiscountedPrice    float64 `gorm:"type:decimal(10,2);not null" json:"discountedPrice"`
	DiscountPercentage int     `gorm:"not null" json:"discountPercentage"`
	Image              string  `gorm:"type:varchar(500)" json:"image"`
	ImageAlt           string  `gorm:"type:varchar(200)" json:"imageAlt"`
	Style              string  `gorm:"type:varchar(100);index" json:"style"`
	TikTokURL          string  `gorm:"type:varchar(500)" json:"tiktokUrl,omitempty"`
	Featured           bool    `gorm:"default:false;index" json:"featured"`
}

func (Product) TableName() string {
	return "products"
}
