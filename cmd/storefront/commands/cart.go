package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"goflare.io/storefront/catalog"
)

func newCartCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart kept on this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCart(cmd, opts)
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCart(cmd, opts)
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <id>",
		Short: "Add an item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty < 1 {
				return errors.New("--qty must be at least 1")
			}
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.svc.AddToCart(cmd.Context(), args[0], qty)
			if errors.Is(err, catalog.ErrItemNotFound) {
				return fmt.Errorf("no item with id %s", args[0])
			}
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Added %d × %s (total %s)", qty, args[0],
				a.svc.Price(c.Total, string(a.svc.Currency(cmd.Context()))))
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.svc.Cart().Contains(args[0]) {
				printWarning(cmd.OutOrStdout(), "Item %s is not in the cart.", args[0])
				return nil
			}
			a.svc.Cart().RemoveItem(cmd.Context(), args[0])
			printSuccess(cmd.OutOrStdout(), "Removed %s", args[0])
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <id> <qty>",
		Short: "Change the quantity of a line; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.svc.Cart().Contains(args[0]) {
				printWarning(cmd.OutOrStdout(), "Item %s is not in the cart.", args[0])
				return nil
			}
			a.svc.Cart().SetQuantity(cmd.Context(), args[0], q)
			printSuccess(cmd.OutOrStdout(), "Cart now holds %d article(s)", a.svc.Cart().ItemCount())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.svc.Cart().Clear(cmd.Context())
			printSuccess(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}

	cmd.AddCommand(show, add, remove, set, clearCmd)
	return cmd
}

func showCart(cmd *cobra.Command, opts *rootOptions) error {
	a, err := loadApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer a.Close()

	code := string(a.svc.Currency(cmd.Context()))
	return printCart(cmd.OutOrStdout(), a.svc, a.svc.Cart().Snapshot(), code)
}
