package catalog

// Cart is an ordered sequence of offerings. The browser keeps its own
// copy in local storage; this type gives the server the same semantics
// for pricing quotes.
type Cart struct {
	items []Offering
}

// Add appends an offering to the cart.
func (c *Cart) Add(o Offering) {
	c.items = append(c.items, o)
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []Offering {
	out := make([]Offering, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total is the sum of item prices.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// RemoveAt drops the item at index, preserving the relative order of
// the remaining items. Out-of-range indexes are ignored.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}
