package cart

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// StorageKey is the fixed key the serialized cart is persisted under
// (the cookie name on the server rendition).
const StorageKey = "asso_cart"

// Line is one entry in the cart: a product (+ optional variant) and its
// quantity. Price is the unit price in euro cents.
type Line struct {
	Key     string `json:"key"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Img     string `json:"img"`
	Variant string `json:"variant,omitempty"`
	Qty     int    `json:"qty"`
}

// Cart is an ordered sequence of line items. The zero value is an empty,
// usable cart.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Decode rebuilds a cart from its serialized form. Malformed or missing
// data degrades to an empty cart, never an error.
// POST: Returned cart holds only lines with a key and qty >= 1
func Decode(data []byte) *Cart {
	c := New()
	if len(data) == 0 {
		return c
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return c
	}
	for _, l := range lines {
		if l.Key == "" || l.Qty < 1 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Encode serializes the cart for persistence.
// INVARIANT: Encode(c) round-trips through Decode
func (c *Cart) Encode() []byte {
	if len(c.lines) == 0 {
		return []byte("[]")
	}
	data, err := json.Marshal(c.lines)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// LineKey computes the merge key for a product and optional variant.
func LineKey(productID, variant string) string {
	if variant == "" {
		return productID
	}
	return productID + ":" + variant
}

// Add merges a product into the cart: an existing line with the same
// product+variant key gains quantity 1, otherwise a new line with
// quantity 1 is appended.
// PRE: id and name are non-empty
// POST: Exactly one line exists for the key, qty incremented or 1
func (c *Cart) Add(id, name string, price int, img, variant string) {
	key := LineKey(id, variant)
	for i := range c.lines {
		if c.lines[i].Key == key {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, Line{
		Key:     key,
		ID:      id,
		Name:    name,
		Price:   price,
		Img:     img,
		Variant: variant,
		Qty:     1,
	})
}

// Increment raises the quantity of the line with the given key by 1.
// Unknown keys are ignored.
func (c *Cart) Increment(key string) {
	for i := range c.lines {
		if c.lines[i].Key == key {
			c.lines[i].Qty++
			return
		}
	}
}

// Decrement lowers the quantity of the line with the given key by 1.
// A line at quantity 1 is removed instead of reaching 0.
// POST: Every remaining line has qty >= 1
func (c *Cart) Decrement(key string) {
	for i := range c.lines {
		if c.lines[i].Key == key {
			if c.lines[i].Qty <= 1 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Qty--
			}
			return
		}
	}
}

// Remove deletes the line with the given key entirely.
func (c *Cart) Remove(key string) {
	for i := range c.lines {
		if c.lines[i].Key == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current line items in insertion order.
// INVARIANT: Mutating the returned slice does not affect the cart
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count returns the total number of articles (sum of quantities).
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// Total returns the sum of price*qty over all lines, in euro cents.
// No tax or discount logic applies.
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.Price * l.Qty
	}
	return total
}

// IsEmpty returns true if the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// CheckoutBody composes the prewritten email body for the mail-client
// handoff: one line per item (name, optional variant, quantity, line
// total) and a trailing order total.
// PRE: cart is non-empty (callers must surface a warning otherwise)
func (c *Cart) CheckoutBody() string {
	var b strings.Builder
	b.WriteString("Bonjour,\n\nJe souhaite commander :\n\n")
	for _, l := range c.lines {
		name := l.Name
		if l.Variant != "" {
			name += " (" + l.Variant + ")"
		}
		fmt.Fprintf(&b, "- %s x%d — %s\n", name, l.Qty, FormatEuro(l.Price*l.Qty))
	}
	fmt.Fprintf(&b, "\nTotal : %s\n\nMerci !\n", FormatEuro(c.Total()))
	return b.String()
}

// MailtoURL builds the mail-client handoff URL for checkout.
// Returns "" for an empty cart; the caller surfaces a user-visible
// warning and performs no further action.
func (c *Cart) MailtoURL(to string) string {
	if c.IsEmpty() {
		return ""
	}
	v := url.Values{}
	v.Set("subject", "Commande boutique")
	v.Set("body", c.CheckoutBody())
	// mailto expects %20, not '+', for spaces in the query part.
	return "mailto:" + to + "?" + strings.ReplaceAll(v.Encode(), "+", "%20")
}

// FormatEuro renders an amount of euro cents in French notation, e.g.
// 123456 -> "1 234,56 €" and 0 -> "0,00 €".
func FormatEuro(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	euros := cents / 100
	rest := cents % 100
	digits := fmt.Sprintf("%d", euros)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s%s,%02d €", sign, b.String(), rest)
}
