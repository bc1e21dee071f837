package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"goflare.io/storefront/catalog"
	"goflare.io/storefront/filter"
	"goflare.io/storefront/models/enum"
)

type itemsFlags struct {
	category string
	min      float64
	max      float64
	marks    []string
	tags     []string
	query    string
	sort     string
	currency string
}

func newItemsCmd(opts *rootOptions) *cobra.Command {
	f := &itemsFlags{}
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List catalog items with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := f.spec(cmd)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.svc.Browse(cmd.Context(), spec)
			if err != nil {
				return err
			}
			code := f.currency
			if code == "" {
				code = string(a.svc.Currency(cmd.Context()))
			}
			return printItems(cmd.OutOrStdout(), a.svc, items, code)
		},
	}

	cmd.Flags().StringVar(&f.category, "category", "", "category id")
	cmd.Flags().Float64Var(&f.min, "min", filter.DefaultMinPrice, "minimum base price")
	cmd.Flags().Float64Var(&f.max, "max", 0, "maximum base price")
	cmd.Flags().StringSliceVar(&f.marks, "mark", nil, "marks to include (repeatable)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tags to include (repeatable)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "search in names and descriptions")
	cmd.Flags().StringVar(&f.sort, "sort", "", fmt.Sprintf("sort order, one of %v", enum.SortOptions()))
	cmd.Flags().StringVar(&f.currency, "currency", "", "display currency (DZD, EUR, USD)")
	return cmd
}

func (f *itemsFlags) spec(cmd *cobra.Command) (filter.Spec, error) {
	spec := filter.Spec{
		Category: f.category,
		Marks:    f.marks,
		Tags:     f.tags,
		Query:    f.query,
		Sort:     enum.SortOption(f.sort),
	}
	if !spec.Sort.Valid() {
		return filter.Spec{}, fmt.Errorf("unknown sort option %q", f.sort)
	}

	minSet, maxSet := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
	if minSet || maxSet {
		r := filter.PriceRange{Min: f.min, Max: math.MaxFloat64}
		if maxSet {
			r.Max = f.max
		}
		if r.Min > r.Max {
			return filter.Spec{}, errors.New("--min is above --max")
		}
		spec.Price = &r
	}
	return spec, nil
}

func newItemCmd(opts *rootOptions) *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "item <id>",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.svc.Item(cmd.Context(), args[0])
			if errors.Is(err, catalog.ErrItemNotFound) {
				return fmt.Errorf("no item with id %s", args[0])
			}
			if err != nil {
				return err
			}
			if code == "" {
				code = string(a.svc.Currency(cmd.Context()))
			}
			printItem(cmd.OutOrStdout(), a.svc, item, code)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "currency", "", "display currency (DZD, EUR, USD)")
	return cmd
}
