package orderfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/internal/orderfile"
	"github.com/dmitrymomot/whitebox/pkg/file"
	"github.com/dmitrymomot/whitebox/pkg/rules"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Read(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

const sample = `
shipping: express
lines:
  - quantity: 3
    price: 2
  - quantity: "4"
    price: "1.5"
items:
  - weight: 2.5
  - weight: "3"
`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := orderfile.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, rules.ShippingExpress, doc.Shipping)
	assert.Equal(t, []rules.OrderLine{{Quantity: 3, Price: 2}, {Quantity: 4, Price: 1.5}}, doc.Lines)
	assert.Equal(t, []rules.Item{{Weight: 2.5}, {Weight: 3}}, doc.Items)

	// 7 units earn the 5% tier.
	assert.InDelta(t, 12*0.95, doc.Total(), 1e-9)

	cost, err := doc.ShippingCost(rules.ShippingStandard)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cost)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
		field string
	}{
		{"malformed yaml", "lines: [", orderfile.ErrInvalidDocument, ""},
		{"unknown key", "colour: red\n", orderfile.ErrInvalidDocument, ""},
		{"non numeric quantity", "lines:\n  - quantity: many\n    price: 1\n", orderfile.ErrInvalidDocument, ""},
		{"fractional quantity", "lines:\n  - quantity: 2.5\n    price: 10\n", orderfile.ErrInvalidDocument, ""},
		{"fractional quoted quantity", "lines:\n  - quantity: \"2.5\"\n    price: 10\n", orderfile.ErrInvalidDocument, ""},
		{"negative price", "lines:\n  - quantity: 1\n    price: -1\n", orderfile.ErrInvalidValues, "lines[0].price"},
		{"negative weight", "items:\n  - weight: -0.1\n", orderfile.ErrInvalidValues, "items[0].weight"},
		{"unknown shipping", "shipping: overnight\n", orderfile.ErrInvalidValues, "shipping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := orderfile.Parse([]byte(tt.input))
			require.ErrorIs(t, err, tt.want)
			if tt.field != "" {
				assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
			}
		})
	}
}

func TestDocument_ShippingFallback(t *testing.T) {
	t.Parallel()

	doc, err := orderfile.Parse([]byte("items:\n  - weight: 6\n"))
	require.NoError(t, err)

	cost, err := doc.ShippingCost(rules.ShippingStandard)
	require.NoError(t, err)
	assert.Equal(t, 15.0, cost)

	_, err = doc.ShippingCost("")
	assert.ErrorIs(t, err, rules.ErrInvalidShippingType)
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := new(mockReader)
	r.On("Read", ctx, "march.yaml").Return(sample, nil).Once()
	r.On("Read", ctx, "missing.yaml").Return("", file.ErrFileNotFound).Once()
	r.On("Read", ctx, "broken.yaml").Return("lines: {", nil).Once()

	l := orderfile.NewLoader(r)

	doc, err := l.Load(ctx, "march.yaml")
	require.NoError(t, err)
	assert.Len(t, doc.Lines, 2)

	_, err = l.Load(ctx, "missing.yaml")
	assert.ErrorIs(t, err, file.ErrFileNotFound)

	_, err = l.Load(ctx, "broken.yaml")
	assert.ErrorIs(t, err, orderfile.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "broken.yaml")

	r.AssertExpectations(t)
}

func TestLoader_LocalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.yaml"), []byte(sample), 0o644))

	reader, err := file.NewLocalReader(file.WithBaseDir(dir))
	require.NoError(t, err)

	doc, err := orderfile.NewLoader(reader).Load(context.Background(), "order.yaml")
	require.NoError(t, err)
	assert.Equal(t, rules.ShippingExpress, doc.Shipping)

	_, err = orderfile.NewLoader(reader).Load(context.Background(), "nope.yaml")
	assert.True(t, errors.Is(err, file.ErrFileNotFound))
}
