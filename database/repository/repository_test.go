package repository

import (
	"testing"

	"hoteladmin/models"
)

func TestDecode_WeakTypes(t *testing.T) {
	fields := map[string]any{
		"email":        "guest@example.com",
		"checkInDate":  "2024-01-01",
		"checkOutDate": "2024-01-03",
		"totalPrice":   "200",
		"room":         map[string]any{"name": "Sea View", "price": 100.5},
		"unknownField": true,
	}

	var rec models.BookingRecord
	if err := Decode(fields, &rec); err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if rec.TotalPrice != 200 {
		t.Errorf("TotalPrice = %v, want 200", rec.TotalPrice)
	}
	if rec.Room.Price != "100.5" {
		t.Errorf("Room.Price = %q, want \"100.5\"", rec.Room.Price)
	}
	if rec.ID != "" {
		t.Errorf("ID = %q, must not be read from fields", rec.ID)
	}
}

func TestDecode_PartialOnError(t *testing.T) {
	fields := map[string]any{
		"email":      "guest@example.com",
		"totalPrice": "not a number",
	}

	var rec models.BookingRecord
	if err := Decode(fields, &rec); err == nil {
		t.Fatal("Decode() expected error for a non-numeric totalPrice")
	}
	if rec.Email != "guest@example.com" {
		t.Errorf("Email = %q, decoded fields should be kept", rec.Email)
	}
}
