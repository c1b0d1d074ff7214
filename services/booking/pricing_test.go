package booking

import (
	"errors"
	"testing"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		price    string
		want     float64
		wantErr  error
	}{
		{name: "four nights", checkIn: "2024-01-01", checkOut: "2024-01-05", price: "100", want: 400},
		{name: "same day", checkIn: "2024-03-10", checkOut: "2024-03-10", price: "250", want: 0},
		{name: "reversed dates use the absolute span", checkIn: "2024-01-05", checkOut: "2024-01-01", price: "100", want: 400},
		{name: "across a month boundary", checkIn: "2024-01-30", checkOut: "2024-02-02", price: "80.5", want: 241.5},
		{name: "across a leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", price: "10", want: 20},
		{name: "padded price", checkIn: "2024-01-01", checkOut: "2024-01-02", price: " 99 ", want: 99},
		{name: "non-numeric price", checkIn: "2024-01-01", checkOut: "2024-01-02", price: "abc", wantErr: ErrInvalidPrice},
		{name: "empty price", checkIn: "2024-01-01", checkOut: "2024-01-02", price: "", wantErr: ErrInvalidPrice},
		{name: "NaN price", checkIn: "2024-01-01", checkOut: "2024-01-02", price: "NaN", wantErr: ErrInvalidPrice},
		{name: "bad check-in", checkIn: "01/01/2024", checkOut: "2024-01-02", price: "100", wantErr: ErrInvalidDate},
		{name: "empty check-out", checkIn: "2024-01-01", checkOut: "", price: "100", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalPrice(tt.checkIn, tt.checkOut, tt.price)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TotalPrice() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TotalPrice() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TotalPrice() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("TotalPrice() = %v, must not be negative", got)
			}
		})
	}
}

func TestNights(t *testing.T) {
	got, err := Nights("2023-12-31", "2024-01-07")
	if err != nil {
		t.Fatalf("Nights() unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("Nights() = %d, want 7", got)
	}
}
