package finance

import "testing"

func TestFormat(t *testing.T) {
	usd := NewFormatter("USD")

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1234.5, "$1,235"}, // rounds half away from zero
		{1234.4, "$1,234"},
		{-1234.5, "-$1,235"},
		{1000000, "$1,000,000"},
	}

	for _, tt := range tests {
		if got := usd.Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	f := NewFormatter("USD")
	first := f.Format(1234.5)
	second := f.Format(1234.5)
	if first != second {
		t.Errorf("formatting is not stable: %q vs %q", first, second)
	}
}

func TestFormatFallbackCurrency(t *testing.T) {
	f := NewFormatter("SEK")
	if got := f.Format(1500); got != "SEK 1,500" {
		t.Errorf("expected SEK prefix formatting, got %q", got)
	}
}

func TestFormatEuro(t *testing.T) {
	f := NewFormatter("EUR")
	if got := f.Format(2500.49); got != "€2,500" {
		t.Errorf("expected €2,500, got %q", got)
	}
}
