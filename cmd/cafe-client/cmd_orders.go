package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cafe-client/internal/domain"
)

var (
	orderAddress string
	orderPhone   string
	orderNote    string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place orders and view order history",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Submit the cart as an order",
	Run: func(cmd *cobra.Command, args []string) {
		app.checkout.PlaceOrder(cmd.Context(), domain.DeliveryDetails{
			DeliveryAddress:     orderAddress,
			Phone:               orderPhone,
			SpecialInstructions: orderNote,
		})
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := app.api.MyOrders(cmd.Context())
		if err != nil {
			return err
		}
		printOrders(resp.Data)
		return nil
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one of your orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		details, err := app.api.MyOrderDetails(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOrderDetails(details)
		return nil
	},
}

func printOrders(orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Printf("  #%-5d %-11s %10s  %s\n", o.ID, o.Status, o.TotalAmount, o.CreatedAt)
	}
}

func printOrderDetails(d *domain.OrderDetails) {
	fmt.Printf("Order #%d — %s\n", d.ID, d.Status)
	for _, it := range d.Items {
		fmt.Printf("  %-28s x%-3d %8s = %s\n", it.ItemName, it.Quantity, it.UnitPrice, it.Subtotal)
	}
	fmt.Printf("Total: %s\nDeliver to: %s (%s)\n", d.TotalAmount, d.DeliveryAddress, d.Phone)
	if d.SpecialInstructions != "" {
		fmt.Println("Note:", d.SpecialInstructions)
	}
}

func init() {
	orderPlaceCmd.Flags().StringVar(&orderAddress, "address", "", "delivery address")
	orderPlaceCmd.Flags().StringVar(&orderPhone, "phone", "", "contact number (01XXXXXXXXX)")
	orderPlaceCmd.Flags().StringVar(&orderNote, "note", "", "special instructions")
	_ = orderPlaceCmd.MarkFlagRequired("address")
	_ = orderPlaceCmd.MarkFlagRequired("phone")

	orderCmd.AddCommand(orderPlaceCmd, orderListCmd, orderShowCmd)
}
