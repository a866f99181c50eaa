package cart_test

import (
	"strings"
	"testing"

	"assosite/internal/domain/cart"
)

// TestCart_AddMergesByKey tests that adding the same product twice merges
// into one line instead of appending a duplicate.
func TestCart_AddMergesByKey(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Tote bag", 1200, "tote.jpg", "")
	c.Add("p1", "Tote bag", 1200, "tote.jpg", "")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("got qty %d, want 2", lines[0].Qty)
	}
	if lines[0].Key != "p1" {
		t.Errorf("got key %q, want %q", lines[0].Key, "p1")
	}
}

// TestCart_VariantsAreDistinctLines tests that the same product in two
// variants yields two distinct lines.
func TestCart_VariantsAreDistinctLines(t *testing.T) {
	c := cart.New()
	c.Add("p1", "T-shirt", 1500, "shirt.jpg", "L")
	c.Add("p1", "T-shirt", 1500, "shirt.jpg", "M")

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Key != "p1:L" || lines[1].Key != "p1:M" {
		t.Errorf("got keys %q and %q, want p1:L and p1:M", lines[0].Key, lines[1].Key)
	}
}

// TestCart_DecrementRemovesAtOne tests that decrementing a qty=1 line
// removes it rather than reaching zero.
func TestCart_DecrementRemovesAtOne(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Mug", 800, "mug.jpg", "")
	c.Decrement("p1")

	if !c.IsEmpty() {
		t.Errorf("cart not empty after decrementing a qty=1 line: %v", c.Lines())
	}
	if got := cart.FormatEuro(c.Total()); got != "0,00 €" {
		t.Errorf("empty cart total = %q, want %q", got, "0,00 €")
	}
}

// TestCart_QuantityInvariant tests that for arbitrary operation
// sequences, every surviving line keeps qty >= 1 and Total matches the
// sum of price*qty.
func TestCart_QuantityInvariant(t *testing.T) {
	type op struct {
		action string
		key    string
	}
	tests := []struct {
		name      string
		ops       []op
		wantLines int
		wantTotal int
	}{
		{
			name: "add increment decrement mix",
			ops: []op{
				{"add", "p1"},
				{"add", "p2"},
				{"inc", "p1"},
				{"inc", "p1"},
				{"dec", "p2"},
				{"dec", "p2"}, // p2 already removed, ignored
			},
			wantLines: 1,
			wantTotal: 3 * 1000,
		},
		{
			name: "remove deletes whole line",
			ops: []op{
				{"add", "p1"},
				{"inc", "p1"},
				{"inc", "p1"},
				{"remove", "p1"},
				{"add", "p2"},
			},
			wantLines: 1,
			wantTotal: 1000,
		},
		{
			name: "unknown keys are ignored",
			ops: []op{
				{"add", "p1"},
				{"inc", "ghost"},
				{"dec", "ghost"},
				{"remove", "ghost"},
			},
			wantLines: 1,
			wantTotal: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			for _, o := range tt.ops {
				switch o.action {
				case "add":
					c.Add(o.key, "Item "+o.key, 1000, "", "")
				case "inc":
					c.Increment(o.key)
				case "dec":
					c.Decrement(o.key)
				case "remove":
					c.Remove(o.key)
				}
			}
			for _, l := range c.Lines() {
				if l.Qty < 1 {
					t.Errorf("line %q has qty %d, want >= 1", l.Key, l.Qty)
				}
			}
			if len(c.Lines()) != tt.wantLines {
				t.Errorf("got %d lines, want %d", len(c.Lines()), tt.wantLines)
			}
			if c.Total() != tt.wantTotal {
				t.Errorf("got total %d, want %d", c.Total(), tt.wantTotal)
			}
		})
	}
}

// TestCart_Clear tests that Clear empties all lines.
func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Mug", 800, "", "")
	c.Add("p2", "Tote", 1200, "", "")
	c.Clear()
	if !c.IsEmpty() || c.Count() != 0 {
		t.Errorf("cart not empty after Clear: %v", c.Lines())
	}
}

// TestDecode_CorruptDataYieldsEmptyCart tests that broken persisted
// state degrades to an empty cart, never an error.
func TestDecode_CorruptDataYieldsEmptyCart(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing data", data: ""},
		{name: "not json", data: "{{{nope"},
		{name: "wrong shape", data: `{"key":"p1"}`},
		{name: "null", data: "null"},
		{name: "zero qty line dropped", data: `[{"key":"p1","id":"p1","name":"x","price":100,"qty":0}]`},
		{name: "missing key dropped", data: `[{"id":"p1","name":"x","price":100,"qty":2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.Decode([]byte(tt.data))
			if !c.IsEmpty() {
				t.Errorf("got %d lines, want empty cart", len(c.Lines()))
			}
		})
	}
}

// TestCart_EncodeDecodeRoundTrip tests that a mutated cart survives
// persistence.
func TestCart_EncodeDecodeRoundTrip(t *testing.T) {
	c := cart.New()
	c.Add("p1", "T-shirt", 1500, "shirt.jpg", "L")
	c.Add("p2", "Mug", 800, "mug.jpg", "")
	c.Increment("p2")

	got := cart.Decode(c.Encode())
	if len(got.Lines()) != 2 {
		t.Fatalf("got %d lines after round trip, want 2", len(got.Lines()))
	}
	if got.Total() != c.Total() {
		t.Errorf("got total %d, want %d", got.Total(), c.Total())
	}
	if got.Count() != 3 {
		t.Errorf("got count %d, want 3", got.Count())
	}
}

// TestCart_CheckoutBody tests the composed email body: one line per
// item with optional variant, plus the trailing order total.
func TestCart_CheckoutBody(t *testing.T) {
	c := cart.New()
	c.Add("p1", "T-shirt", 1500, "", "L")
	c.Increment("p1:L")
	c.Add("p2", "Mug", 800, "", "")

	body := c.CheckoutBody()
	if !strings.Contains(body, "T-shirt (L) x2 — 30,00 €") {
		t.Errorf("body missing variant line: %q", body)
	}
	if !strings.Contains(body, "Mug x1 — 8,00 €") {
		t.Errorf("body missing plain line: %q", body)
	}
	if !strings.Contains(body, "Total : 38,00 €") {
		t.Errorf("body missing total: %q", body)
	}
}

// TestCart_MailtoURL tests the mail-client handoff, including the
// empty-cart guard.
func TestCart_MailtoURL(t *testing.T) {
	c := cart.New()
	if u := c.MailtoURL("boutique@asso.fr"); u != "" {
		t.Errorf("empty cart produced a mailto URL: %q", u)
	}

	c.Add("p1", "Mug", 800, "", "")
	u := c.MailtoURL("boutique@asso.fr")
	if !strings.HasPrefix(u, "mailto:boutique@asso.fr?") {
		t.Errorf("unexpected mailto prefix: %q", u)
	}
	if strings.Contains(u, "+") {
		t.Errorf("mailto URL must use %%20 for spaces, got %q", u)
	}
}

// TestFormatEuro tests French euro formatting.
func TestFormatEuro(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{0, "0,00 €"},
		{5, "0,05 €"},
		{800, "8,00 €"},
		{123456, "1 234,56 €"},
		{100000000, "1 000 000,00 €"},
		{-1500, "-15,00 €"},
	}
	for _, tt := range tests {
		if got := cart.FormatEuro(tt.cents); got != tt.want {
			t.Errorf("FormatEuro(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
