package rules

// OrderLine is one line of an order.
type OrderLine struct {
	Quantity int     `json:"quantity" yaml:"quantity" mapstructure:"quantity"`
	Price    float64 `json:"price" yaml:"price" mapstructure:"price"`
}

// Product categories returned by CategorizeProduct.
const (
	CategoryA = "Category A"
	CategoryB = "Category B"
	CategoryC = "Category C"
	CategoryD = "Category D"
)

// CalculateTotalDiscount returns the discount amount for an order total:
// nothing below 100, 10% from 100 to 500 inclusive, 20% above 500.
func CalculateTotalDiscount(total float64) float64 {
	switch {
	case total < 100:
		return 0
	case total <= 500:
		return total * 0.10
	default:
		return total * 0.20
	}
}

// CalculateOrderTotal sums quantity*price over lines and applies a discount
// based on the total quantity ordered: none up to 5 units, 5% for 6 to 10,
// 10% above 10.
func CalculateOrderTotal(lines []OrderLine) float64 {
	var (
		subtotal float64
		quantity int
	)
	for _, l := range lines {
		subtotal += float64(l.Quantity) * l.Price
		quantity += l.Quantity
	}
	return subtotal * (1 - quantityDiscountRate(quantity))
}

func quantityDiscountRate(quantity int) float64 {
	switch {
	case quantity > 10:
		return 0.10
	case quantity > 5:
		return 0.05
	default:
		return 0
	}
}

// CategorizeProduct buckets a price. The labels are not ordered by price:
// below 10 and above 200 both map to Category D.
func CategorizeProduct(price float64) string {
	switch {
	case price < 10:
		return CategoryD
	case price <= 50:
		return CategoryA
	case price <= 100:
		return CategoryB
	case price <= 200:
		return CategoryC
	default:
		return CategoryD
	}
}
