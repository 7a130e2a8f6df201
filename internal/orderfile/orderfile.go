// Package orderfile loads order and shipment documents written in YAML.
//
// A document looks like:
//
//	shipping: express
//	lines:
//	  - quantity: 3
//	    price: 9.99
//	items:
//	  - weight: 2.5
//
// Numbers may be quoted ("3"); they are decoded weakly. Quantities must be
// whole numbers.
package orderfile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/whitebox/pkg/file"
	"github.com/dmitrymomot/whitebox/pkg/rules"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

var (
	ErrInvalidDocument = errors.New("invalid order document")
	ErrInvalidValues   = errors.New("order document has invalid values")
)

// Document is a parsed order file.
type Document struct {
	Shipping rules.ShippingType `mapstructure:"shipping"`
	Lines    []rules.OrderLine  `mapstructure:"lines"`
	Items    []rules.Item       `mapstructure:"items"`
}

// Total returns the discounted order total.
func (d Document) Total() float64 {
	return rules.CalculateOrderTotal(d.Lines)
}

// ShippingCost prices the items. An empty shipping type on the document
// falls back to fallback.
func (d Document) ShippingCost(fallback rules.ShippingType) (float64, error) {
	t := d.Shipping
	if t == "" {
		t = fallback
	}
	return rules.CalculateItemsShippingCost(d.Items, t)
}

// Loader reads documents through a file.Reader.
type Loader struct {
	reader file.Reader
}

func NewLoader(r file.Reader) *Loader {
	return &Loader{reader: r}
}

// Load reads and parses the document at path.
func (l *Loader) Load(ctx context.Context, path string) (Document, error) {
	text, err := l.reader.Read(ctx, path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Parse([]byte(text))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML document and validates its values.
func Parse(data []byte) (Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return Document{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// wholeNumberHook stops a float with a fraction from being truncated into an
// integer field.
func wholeNumberHook(_, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	if f, ok := data.(float64); ok && f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return data, nil
}

// Validate rejects negative quantities, prices and weights and unknown
// shipping types. The returned error wraps validator.ValidationErrors.
func (d Document) Validate() error {
	var rs []validator.Rule
	for i, l := range d.Lines {
		prefix := "lines[" + strconv.Itoa(i) + "]"
		rs = append(rs,
			validator.NonNegative(prefix+".quantity", l.Quantity),
			validator.NonNegative(prefix+".price", l.Price),
		)
	}
	for i, it := range d.Items {
		rs = append(rs, validator.NonNegative("items["+strconv.Itoa(i)+"].weight", it.Weight))
	}
	if d.Shipping != "" {
		rs = append(rs, validator.Rule{
			Check: d.Shipping.Valid,
			Error: validator.ValidationError{
				Field:   "shipping",
				Code:    "shipping_type",
				Message: "must be standard or express",
			},
		})
	}

	if err := validator.Apply(rs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}
	return nil
}
