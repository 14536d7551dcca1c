package models

import (
	"strings"

	"github.com/codewithdark-git/khanana/pkg/pricing"
)

// FieldError is a single field-level validation failure, surfaced
// inline to the form that submitted the draft.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProductDraft is the typed form state for creating or editing a
// product. Price fields are reconciled through the pricing package so
// that the stored triple stays mutually derivable.
type ProductDraft struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	OriginalPrice      float64 `json:"originalPrice"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	DiscountPercentage int     `json:"discountPercentage"`
	Image              string  `json:"image"`
	ImageAlt           string  `json:"imageAlt"`
	Style              string  `json:"style"`
	TikTokURL          string  `json:"tiktokUrl"`
	Featured           bool    `json:"featured"`
}

// Validate checks required fields and price consistency, recomputing
// the discount percentage from the two prices the way the admin form
// does on blur. A draft that passes validation has a consistent triple.
func (d *ProductDraft) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(d.Image) == "" {
		errs = append(errs, FieldError{Field: "image", Message: "image is required"})
	}
	if d.OriginalPrice <= 0 {
		errs = append(errs, FieldError{Field: "originalPrice", Message: "original price must be greater than zero"})
		return errs
	}
	if d.DiscountedPrice < 0 {
		errs = append(errs, FieldError{Field: "discountedPrice", Message: "discounted price must not be negative"})
		return errs
	}
	if d.DiscountedPrice > d.OriginalPrice {
		errs = append(errs, FieldError{Field: "discountedPrice", Message: "discounted price cannot exceed original price"})
		return errs
	}

	pct, err := pricing.PercentageFrom(d.OriginalPrice, d.DiscountedPrice)
	if err != nil {
		errs = append(errs, FieldError{Field: "discountPercentage", Message: err.Error()})
		return errs
	}
	d.DiscountPercentage = pct

	return errs
}

// Apply copies the draft's fields onto a product record.
func (d *ProductDraft) Apply(p *Product) {
	p.Name = d.Name
	p.Description = d.Description
	p.OriginalPrice = d.OriginalPrice
	p.DiscountedPrice = d.DiscountedPrice
	p.DiscountPercentage = d.DiscountPercentage
	p.Image = d.Image
	p.ImageAlt = d.ImageAlt
	p.Style = d.Style
	p.TikTokURL = d.TikTokURL
	p.Featured = d.Featured
}

// OrderDraft is the typed checkout form state. Email and city may be
// empty; everything else is required.
type OrderDraft struct {
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	CustomerCity    string  `json:"customerCity"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductPrice    float64 `json:"productPrice"`
	Quantity        int     `json:"quantity"`
}

func (d *OrderDraft) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(d.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: "name is required"})
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		errs = append(errs, FieldError{Field: "customerPhone", Message: "phone is required"})
	}
	if strings.TrimSpace(d.CustomerAddress) == "" {
		errs = append(errs, FieldError{Field: "customerAddress", Message: "address is required"})
	}
	if strings.TrimSpace(d.ProductID) == "" {
		errs = append(errs, FieldError{Field: "productId", Message: "product is required"})
	}
	if d.ProductPrice < 0 {
		errs = append(errs, FieldError{Field: "productPrice", Message: "price must not be negative"})
	}
	if d.Quantity < 1 {
		errs = append(errs, FieldError{Field: "quantity", Message: "quantity must be at least 1"})
	}

	return errs
}

// ToOrder builds a new order from a validated draft. The product name
// and price are snapshotted so later catalog edits never alter the
// historical order, and the total is derived rather than trusted from
// the client.
func (d *OrderDraft) ToOrder() *Order {
	return &Order{
		ID:              NewOrderID(),
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		CustomerCity:    d.CustomerCity,
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		ProductPrice:    d.ProductPrice,
		Quantity:        d.Quantity,
		TotalAmount:     d.ProductPrice * float64(d.Quantity),
		Status:          StatusNew,
	}
}
