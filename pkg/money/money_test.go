package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemizeAppliesTwelvePercent(t *testing.T) {
	t.Parallel()

	totals := Itemize(decimal.RequireFromString("100"))

	if !totals.Tax.Equal(decimal.RequireFromString("12")) {
		t.Fatalf("expected tax 12, got %s", totals.Tax)
	}
	if !totals.Total.Equal(decimal.RequireFromString("112")) {
		t.Fatalf("expected total 112, got %s", totals.Total)
	}
}

func TestItemizeZeroSubtotal(t *testing.T) {
	t.Parallel()

	totals := Itemize(decimal.Zero)
	if !totals.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", totals.Total)
	}
}

func TestLineExtendsUnitPrice(t *testing.T) {
	t.Parallel()

	got := Line(decimal.RequireFromString("1599.00"), 2)
	if !got.Equal(decimal.RequireFromString("3198.00")) {
		t.Fatalf("expected 3198.00, got %s", got)
	}
}
