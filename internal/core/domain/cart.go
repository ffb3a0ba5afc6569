package domain

import "github.com/suncoast/diveshop/pkg/money"

// CartItem is one cart line. A line is keyed by the
// (ProductID, VariantID) pair.
type CartItem struct {
	ProductID   int64  `json:"product_id"`
	VariantID   string `json:"variant_id"`
	Name        string `json:"name"`
	VariantName string `json:"variant_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Add merges the item into an existing line with the same key,
// incrementing its quantity, or appends a new line.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID &&
			c.Items[i].VariantID == item.VariantID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove drops the matching line. Absent lines are a no-op.
func (c *Cart) Remove(productID int64, variantID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
}

// UpdateQuantity sets the line quantity. A quantity of zero or
// less removes the line.
func (c *Cart) UpdateQuantity(productID int64, variantID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, variantID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID &&
			c.Items[i].VariantID == variantID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum over lines of unit price times quantity.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += money.Parse(it.UnitPrice) * float64(it.Quantity)
	}
	return total
}
