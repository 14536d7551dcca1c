package notify

import (
	"fmt"
	"strings"

	"github.com/codewithdark-git/khanana/pkg/models"
)

// Summary is the human-readable rendering of one new order, used for
// the email subject/body and the durable fallback record.
type Summary struct {
	Title   string
	Message string
}

// Summarize renders the order into the admin notification summary.
func Summarize(order *models.Order) Summary {
	return Summary{
		Title: fmt.Sprintf("New Order: %s", order.ProductName),
		Message: fmt.Sprintf("Customer: %s | Phone: %s | Total: Rs %.0f",
			order.CustomerName, order.CustomerPhone, order.TotalAmount),
	}
}

// EmailSubject renders the subject line for the admin email.
func EmailSubject(order *models.Order) string {
	return fmt.Sprintf("New Order #%s - %s", order.ID, order.ProductName)
}

// EmailHTML renders the admin notification email body.
func EmailHTML(order *models.Order) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	fmt.Fprintf(&b, `<h1>Khanana - New Order!</h1><h2>Order #%s</h2>`, order.ID)
	fmt.Fprintf(&b, `<p><strong>Date:</strong> %s</p>`, order.CreatedAt.Format("Jan 2, 2006 15:04"))
	b.WriteString(`<h3>Customer Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, order.CustomerName)
	fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, order.CustomerPhone)
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, order.CustomerEmail)
	fmt.Fprintf(&b, `<p><strong>Address:</strong> %s</p>`, order.CustomerAddress)
	b.WriteString(`<h3>Order Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Product:</strong> %s</p>`, order.ProductName)
	fmt.Fprintf(&b, `<p><strong>Price:</strong> Rs %.0f</p>`, order.ProductPrice)
	fmt.Fprintf(&b, `<p><strong>Quantity:</strong> %d</p>`, order.Quantity)
	fmt.Fprintf(&b, `<p><strong>Total:</strong> Rs %.0f</p>`, order.TotalAmount)
	fmt.Fprintf(&b, `<p><a href="%s">Contact Customer on WhatsApp</a></p>`, WhatsAppLink(order.CustomerPhone))
	b.WriteString(`</div>`)
	return b.String()
}
