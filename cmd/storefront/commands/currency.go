package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"goflare.io/storefront/currency"
)

func newCurrencyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or change the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			w := cmd.OutOrStdout()
			if len(args) == 1 {
				cur, err := a.svc.SelectCurrency(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printSuccess(w, "Prices are now shown in %s (%s)", strings.ToUpper(string(cur)), currency.Symbol(cur))
				return nil
			}

			selected := a.svc.Currency(cmd.Context())
			for _, cur := range currency.Supported() {
				marker := "  "
				if cur == selected {
					marker = "* "
				}
				cyan.Fprintf(w, "%s%s  %s\n", marker, strings.ToUpper(string(cur)), currency.Symbol(cur))
			}
			return nil
		},
	}
}
