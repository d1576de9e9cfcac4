package utils

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pickles_back_end/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:       "3f2a9c1e-0000-4000-8000-000000000000",
		Items:    []models.Item{{ID: 1, Name: "Gongura Pickle", Price: decimal.NewFromInt(120)}, {ID: 6, Name: "Murukku", Price: decimal.NewFromInt(60)}},
		Total:    decimal.NewFromInt(180),
		PlacedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestReceiptPayload(t *testing.T) {
	got := ReceiptPayload(sampleOrder().Receipt())
	want := "PICKLES\nORD-3f2a9c1e\nINR180.00\n2\n2024-05-01T10:00:00Z"
	if got != want {
		t.Fatalf("ReceiptPayload() = %q, want %q", got, want)
	}
}

func TestReceiptQR(t *testing.T) {
	png, err := ReceiptQRPNG(sampleOrder().Receipt())
	if err != nil {
		t.Fatalf("ReceiptQRPNG() failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("output is not a PNG")
	}

	uri, err := ReceiptQRDataURI(sampleOrder().Receipt())
	if err != nil {
		t.Fatal(err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected data URI prefix: %.40s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil || !bytes.HasPrefix(raw, pngMagic) {
		t.Fatalf("data URI does not hold a PNG: %v", err)
	}
}
