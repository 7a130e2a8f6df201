package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/rules"
)

func TestCalculateTotalDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total float64
		want  float64
	}{
		{0, 0},
		{99.9, 0},
		{100, 10.0},
		{250, 25.0},
		{500, 50.0},
		{500.01, 100.002},
		{1000, 200},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, rules.CalculateTotalDiscount(tt.total), 1e-3, "total %v", tt.total)
	}
}

func TestCalculateOrderTotal(t *testing.T) {
	t.Parallel()

	line := func(qty int, price float64) rules.OrderLine {
		return rules.OrderLine{Quantity: qty, Price: price}
	}

	tests := []struct {
		name  string
		lines []rules.OrderLine
		want  float64
	}{
		{"empty order", nil, 0},
		{"single unit", []rules.OrderLine{line(1, 1)}, 1.0},
		{"five units no discount", []rules.OrderLine{line(5, 1)}, 5.0},
		{"six units five percent", []rules.OrderLine{line(6, 1)}, 0.95 * 6},
		{"ten units five percent", []rules.OrderLine{line(10, 1)}, 0.95 * 10},
		{"eleven units ten percent", []rules.OrderLine{line(11, 1)}, 0.9 * 11},
		{"quantity summed across lines", []rules.OrderLine{line(3, 2), line(3, 4)}, 0.95 * 18},
		{"zero quantity line", []rules.OrderLine{line(0, 99), line(2, 2.5)}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, rules.CalculateOrderTotal(tt.lines), 0.005)
		})
	}
}

func TestCategorizeProduct(t *testing.T) {
	t.Parallel()

	prices := []float64{9, 10, 50, 51, 100, 101, 200, 201}
	want := []string{
		rules.CategoryD, rules.CategoryA, rules.CategoryA, rules.CategoryB,
		rules.CategoryB, rules.CategoryC, rules.CategoryC, rules.CategoryD,
	}

	got := make([]string, len(prices))
	for i, p := range prices {
		got[i] = rules.CategorizeProduct(p)
	}
	assert.Equal(t, want, got)

	assert.Equal(t, rules.CategoryD, rules.CategorizeProduct(0))
	assert.Equal(t, rules.CategoryD, rules.CategorizeProduct(9.99))
	assert.Equal(t, rules.CategoryB, rules.CategorizeProduct(50.5))
}
