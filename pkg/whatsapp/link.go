// Package whatsapp builds the checkout deep link the catalog page opens
// when a visitor taps "Buy Now". No server endpoint is involved: the link
// carries the whole enquiry as a pre-filled message.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/models"
)

// Link returns the wa.me URL for enquiring about a product. The number
// keeps its country code but loses the leading "+", which wa.me rejects.
func Link(product models.Product, number string) string {
	price := strconv.FormatFloat(product.PricePerQuantity, 'f', -1, 64)
	message := fmt.Sprintf("Hi! I'm interested in: %s - %s (%d quantity at ₦%s)",
		product.Title, product.Category, product.Quantity, price)
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(number, "+"), url.QueryEscape(message))
}
