package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithdark-git/khanana/pkg/models"
	"gorm.io/gorm"
)

// Seed populates the catalog and reviews when their tables are empty,
// so a fresh deployment starts with the shop's standard collection.
func Seed(ctx context.Context, db *gorm.DB) error {
	var productCount int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount == 0 {
		if err := db.WithContext(ctx).Create(seedProducts()).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	var reviewCount int64
	if err := db.WithContext(ctx).Model(&models.Review{}).Count(&reviewCount).Error; err != nil {
		return fmt.Errorf("failed to count reviews: %w", err)
	}
	if reviewCount == 0 {
		if err := db.WithContext(ctx).Create(seedReviews()).Error; err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}
	}

	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:                 "jet-black",
			Name:               "Pathan Jet Black",
			Description:        "Premium handwoven Pathan shawl in deep jet black. Features intricate fringes and authentic Pashtun craftsmanship.",
			OriginalPrice:      8550,
			DiscountedPrice:    5985,
			DiscountPercentage: 30,
			Image:              "/black-pathan-shawl-elegant-box.jpg",
			ImageAlt:           "Jet Black Pathan Shawl",
			Style:              "Jet Black",
			Featured:           true,
		},
		{
			ID:                 "classic-wool",
			Name:               "Pathan Classic Wool",
			Description:        "Timeless classic wool shawl draped in traditional style. Perfect for formal occasions and everyday elegance.",
			OriginalPrice:      7000,
			DiscountedPrice:    4900,
			DiscountPercentage: 30,
			Image:              "/man-in-blue-attire-with-black-pathan-shawl-draped.jpg",
			ImageAlt:           "Classic Wool Pathan Shawl",
			Style:              "Classic Wool",
			Featured:           true,
		},
		{
			ID:                 "fringed-soft",
			Name:               "Pathan Fringed Soft",
			Description:        "Luxuriously soft fringed shawl with delicate craftsmanship. Ideal for those seeking comfort and style.",
			OriginalPrice:      4999,
			DiscountedPrice:    2500,
			DiscountPercentage: 50,
			Image:              "/man-in-white-fringed-pathan-shawl-seated.jpg",
			ImageAlt:           "Fringed Soft Pathan Shawl",
			Style:              "Fringed",
			Featured:           true,
		},
		{
			ID:                 "heritage-gray",
			Name:               "Pathan Heritage Gray",
			Description:        "Distinguished gray shawl with subtle patterns honoring Pashtun heritage. A versatile piece for any wardrobe.",
			OriginalPrice:      6500,
			DiscountedPrice:    4550,
			DiscountPercentage: 30,
			Image:              "/man-in-gray-pathan-shawl-with-subtle-patterns.jpg",
			ImageAlt:           "Heritage Gray Pathan Shawl",
			Style:              "Heritage Gray",
		},
		{
			ID:                 "brown-earth",
			Name:               "Pathan Brown Earth",
			Description:        "Earthy brown tones reflecting the mountains of Khyber Pakhtunkhwa. Warm and inviting for all seasons.",
			OriginalPrice:      7200,
			DiscountedPrice:    5040,
			DiscountPercentage: 30,
			Image:              "/brown-earth-tone-pathan-shawl-traditional.jpg",
			ImageAlt:           "Brown Earth Pathan Shawl",
			Style:              "Brown Earth",
		},
		{
			ID:                 "navy-wool",
			Name:               "Pathan Navy Wool",
			Description:        "Deep navy wool shawl combining sophistication with traditional craftsmanship. A modern classic.",
			OriginalPrice:      7500,
			DiscountedPrice:    5250,
			DiscountPercentage: 30,
			Image:              "/navy-wool-pathan-shawl-sophisticated.jpg",
			ImageAlt:           "Navy Wool Pathan Shawl",
			Style:              "Navy Wool",
		},
		{
			ID:                 "camel-fringe",
			Name:               "Pathan Camel Fringe",
			Description:        "Warm camel tones with elegant fringe detailing. Perfect for layering and making a statement.",
			OriginalPrice:      6800,
			DiscountedPrice:    4760,
			DiscountPercentage: 30,
			Image:              "/camel-tone-pathan-shawl-with-fringe.jpg",
			ImageAlt:           "Camel Fringe Pathan Shawl",
			Style:              "Camel Fringe",
		},
		{
			ID:                 "charcoal-luxe",
			Name:               "Pathan Charcoal Luxe",
			Description:        "Luxurious charcoal shawl with premium wool blend. The ultimate expression of refined Pashtun elegance.",
			OriginalPrice:      9200,
			DiscountedPrice:    6440,
			DiscountPercentage: 30,
			Image:              "/charcoal-luxe-pathan-shawl-premium.jpg",
			ImageAlt:           "Charcoal Luxe Pathan Shawl",
			Style:              "Charcoal Luxe",
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID:       "1",
			Name:     "Ahmed Hassan",
			Rating:   5,
			Text:     "Exceptional quality and authentic craftsmanship. The shawl arrived perfectly packaged and exceeded my expectations. A true piece of Pashtun heritage.",
			Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Verified: true,
			Location: "Peshawar",
		},
		{
			ID:       "2",
			Name:     "Fatima Khan",
			Rating:   5,
			Text:     "Beautiful design and premium material. I've received many compliments on this shawl. The maroon color is absolutely stunning!",
			Date:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Verified: true,
			Location: "Islamabad",
		},
		{
			ID:       "3",
			Name:     "Muhammad Ali",
			Rating:   5,
			Text:     "Great product with fast delivery. The color is exactly as shown in the pictures. Will definitely order again.",
			Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			Verified: true,
			Location: "Lahore",
		},
		{
			ID:       "4",
			Name:     "Zainab Afridi",
			Rating:   5,
			Text:     "The craftsmanship is impeccable. You can feel the quality and tradition in every thread. Highly recommended for anyone seeking authentic Pathan shawls.",
			Date:     time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			Verified: true,
			Location: "Quetta",
		},
		{
			ID:       "5",
			Name:     "Bilal Khan",
			Rating:   4,
			Text:     "Wonderful shawl for winter. The wool is soft yet warm. Perfect for both casual and formal occasions.",
			Date:     time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			Verified: true,
			Location: "Karachi",
		},
	}
}
