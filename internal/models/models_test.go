package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartTotal(t *testing.T) {
	cart := Cart{Items: []Item{
		{ID: 1, Price: decimal.NewFromInt(120)},
		{ID: 6, Price: decimal.NewFromInt(60)},
		{ID: 6, Price: decimal.NewFromInt(60)},
	}}

	if cart.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cart.Len())
	}
	if !cart.Total().Equal(decimal.NewFromInt(240)) {
		t.Fatalf("Total() = %s, want 240", cart.Total())
	}
	if !(Cart{}).Total().IsZero() {
		t.Fatal("empty cart total should be zero")
	}
}

func TestOrderReference(t *testing.T) {
	o := Order{ID: "5f1c2a9e-0000-4000-8000-000000000000"}
	if got := o.Reference(); got != "ORD-5f1c2a9e" {
		t.Fatalf("Reference() = %q", got)
	}
	if got := (Order{ID: "abc"}).Reference(); got != "abc" {
		t.Fatalf("short Reference() = %q", got)
	}
}
