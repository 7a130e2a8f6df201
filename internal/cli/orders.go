package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/internal/orderfile"
	"github.com/dmitrymomot/whitebox/pkg/rules"
)

func orderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order FILE",
		Short: "Total the order lines of a YAML order file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadOrder(cmd, args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "calculate_order_total", formatFloat(doc.Total()))
		},
	}
}

func shippingCmd(a *app) *cobra.Command {
	var shippingType string

	c := &cobra.Command{
		Use:   "shipping FILE",
		Short: "Price the items of a YAML order file",
		Long:  "Price the items of a YAML order file. --type applies when the file names no shipping type.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadOrder(cmd, args[0])
			if err != nil {
				return err
			}
			cost, err := doc.ShippingCost(rules.ShippingType(shippingType))
			if err != nil {
				return err
			}
			return a.print(cmd, "calculate_items_shipping_cost", formatFloat(cost))
		},
	}

	c.Flags().StringVarP(&shippingType, "type", "t", string(rules.ShippingStandard), "shipping type: standard or express")
	return c
}

func (a *app) loadOrder(cmd *cobra.Command, path string) (orderfile.Document, error) {
	r, err := a.reader("")
	if err != nil {
		return orderfile.Document{}, err
	}
	return orderfile.NewLoader(r).Load(cmd.Context(), path)
}
