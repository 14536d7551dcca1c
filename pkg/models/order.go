package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Order statuses. Admins may move an order between any two statuses;
// forward-only progression is deliberately not enforced, matching the
// behavior the admin dashboard has always had.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Statuses lists every order status in lifecycle order.
var Statuses = []string{
	StatusNew,
	StatusContacted,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the six known order statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// TerminalStatus reports whether s ends the order lifecycle.
func TerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CustomerName    string    `gorm:"type:varchar(200);not null" json:"customerName"`
	CustomerEmail   string    `gorm:"type:varchar(200)" json:"customerEmail"`
	CustomerPhone   string    `gorm:"type:varchar(40);not null" json:"customerPhone"`
	CustomerAddress string    `gorm:"type:varchar(500);not null" json:"customerAddress"`
	CustomerCity    string    `gorm:"type:varchar(100)" json:"customerCity"`
	ProductID       string    `gorm:"type:varchar(64);not null" json:"productId"`
	ProductName     string    `gorm:"type:varchar(200)" json:"productName"`
	ProductPrice    float64   `gorm:"type:decimal(10,2)" json:"productPrice"`
	Quantity        int       `gorm:"not null;default:1" json:"quantity"`
	TotalAmount     float64   `gorm:"type:decimal(10,2)" json:"totalAmount"`
	Status          string    `gorm:"type:varchar(20);default:'new';index" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (Order) TableName() string {
	return "orders"
}

// NewOrderID generates an order id of the form ORD-<unix-ms>-<suffix>.
// The random base36 suffix keeps ids unique under concurrent checkouts
// within the same millisecond.
func NewOrderID() string {
	suffix := strconv.FormatInt(rand.Int63(), 36)
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
