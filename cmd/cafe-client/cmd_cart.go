package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cafe-client/internal/domain"
)

var addQuantity int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and modify the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartShowCmd.RunE(cmd, args)
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List cart contents and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := app.cart.Items()
		if len(items) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}
		for _, li := range items {
			fmt.Printf("  [%d] %-28s x%-3d %10.2f\n", li.ID, li.Name, li.Quantity, li.Price)
		}
		fmt.Printf("Total: %.2f (%d items)\n", app.cart.TotalAmount(), app.cart.ItemCount())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <menu-item-id>",
	Short: "Add a menu item to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", args[0])
		}

		// The menu is the authoritative source of unit prices at add-time.
		menu, err := app.api.FetchMenu(cmd.Context())
		if err != nil {
			return err
		}
		var found *domain.MenuItem
		for _, items := range menu {
			for i := range items {
				if items[i].ID == id {
					found = &items[i]
					break
				}
			}
		}
		if found == nil {
			return fmt.Errorf("menu item %d not found", id)
		}
		app.cart.AddItem(*found, addQuantity)
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id> <quantity>",
	Short: "Change the quantity of a cart line (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		if !app.cart.UpdateQuantity(id, qty) {
			return fmt.Errorf("item %d is not in the cart", id)
		}
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		if !app.cart.RemoveItem(id) {
			return fmt.Errorf("item %d is not in the cart", id)
		}
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Run: func(cmd *cobra.Command, args []string) {
		app.cart.Clear()
	},
}

func init() {
	cartAddCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "how many units to add")
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartUpdateCmd, cartRemoveCmd, cartClearCmd)
}
