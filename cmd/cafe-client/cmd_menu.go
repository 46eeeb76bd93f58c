package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := app.api.FetchMenu(cmd.Context())
		if err != nil {
			return err
		}

		categories := make([]string, 0, len(menu))
		for c := range menu {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		for _, c := range categories {
			fmt.Printf("— %s —\n", c)
			for _, item := range menu[c] {
				availability := ""
				if item.IsAvailable == 0 {
					availability = "  (unavailable)"
				}
				fmt.Printf("  [%d] %-28s %8s%s\n", item.ID, item.Name, item.Price, availability)
			}
		}
		return nil
	},
}
