package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cafe-client/internal/domain"
)

var (
	adminPage int

	menuAddName        string
	menuAddType        string
	menuAddPrice       string
	menuAddDescription string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Menu and order management (admin accounts only)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		if !app.sess.IsAdmin() {
			return fmt.Errorf("admin commands require an admin account")
		}
		return nil
	},
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := app.api.AllOrders(cmd.Context(), adminPage)
		if err != nil {
			return err
		}
		printOrders(resp.Data)
		fmt.Printf("Page %d of %d (%d orders)\n",
			resp.Pagination.CurrentPage, resp.Pagination.TotalPages, resp.Pagination.TotalItems)
		return nil
	},
}

var adminOrderCmd = &cobra.Command{
	Use:   "order <order-id>",
	Short: "Show any order with customer details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		details, err := app.api.OrderDetails(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Customer: %s <%s>\n", details.UserName, details.UserEmail)
		printOrderDetails(details)
		return nil
	},
}

var adminSetStatusCmd = &cobra.Command{
	Use:   "set-status <order-id> <pending|processing|completed|cancelled>",
	Short: "Move an order through its lifecycle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		if err := app.api.UpdateOrderStatus(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		fmt.Printf("Order #%d is now %s.\n", id, args[1])
		return nil
	},
}

var adminMenuAddCmd = &cobra.Command{
	Use:   "menu-add",
	Short: "Add a menu item",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.api.AddMenuItem(cmd.Context(), domain.MenuItemForm{
			Name:        menuAddName,
			Type:        menuAddType,
			Price:       menuAddPrice,
			Description: menuAddDescription,
			IsAvailable: 1,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s added to the menu.\n", menuAddName)
		return nil
	},
}

var adminMenuDeleteCmd = &cobra.Command{
	Use:   "menu-delete <menu-item-id>",
	Short: "Remove a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", args[0])
		}
		if err := app.api.DeleteMenuItem(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Menu item %d deleted.\n", id)
		return nil
	},
}

func init() {
	adminOrdersCmd.Flags().IntVar(&adminPage, "page", 1, "result page")

	adminMenuAddCmd.Flags().StringVar(&menuAddName, "name", "", "item name")
	adminMenuAddCmd.Flags().StringVar(&menuAddType, "type", "hot", "category: hot | cold | blended | dessert | seasonal | specialty")
	adminMenuAddCmd.Flags().StringVar(&menuAddPrice, "price", "", "unit price, e.g. 180.00")
	adminMenuAddCmd.Flags().StringVar(&menuAddDescription, "description", "", "item description")
	_ = adminMenuAddCmd.MarkFlagRequired("name")
	_ = adminMenuAddCmd.MarkFlagRequired("price")

	adminCmd.AddCommand(adminOrdersCmd, adminOrderCmd, adminSetStatusCmd, adminMenuAddCmd, adminMenuDeleteCmd)
}
