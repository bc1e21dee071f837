package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"goflare.io/storefront"
	"goflare.io/storefront/models"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

func printSuccess(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, format+"\n", a...)
}

func printError(w io.Writer, err error) {
	red.Fprintf(w, "Error: %v\n", err)
}

func printItems(w io.Writer, svc storefront.Service, items []models.Product, code string) error {
	if len(items) == 0 {
		printWarning(w, "No items match these filters.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Ref", "Name", "Mark", "Category", "Price", "Promo", "Rating")
	for _, p := range items {
		promo := ""
		if p.NewPrice != nil {
			promo = fmt.Sprintf("%s (-%.0f%%)", svc.Price(*p.NewPrice, code), p.DiscountPercent())
		}
		rating := ""
		if p.Rating != nil {
			rating = strconv.FormatFloat(*p.Rating, 'f', 1, 64)
		}
		if err := table.Append([]string{p.ID, p.Ref, p.Name, p.Mark, p.Category, svc.Price(p.Price, code), promo, rating}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	cyan.Fprintf(w, "%d item(s)\n", len(items))
	return nil
}

func printItem(w io.Writer, svc storefront.Service, p *models.Product, code string) {
	cyan.Fprintf(w, "%s  %s\n", p.Ref, p.Name)
	fmt.Fprintf(w, "%s\n\n", p.Description)
	fmt.Fprintf(w, "Category: %s\n", p.Category)
	if p.Mark != "" {
		fmt.Fprintf(w, "Mark:     %s\n", p.Mark)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags:     %v\n", p.Tags)
	}
	fmt.Fprintf(w, "Price:    %s\n", svc.Price(p.Price, code))
	if p.NewPrice != nil {
		green.Fprintf(w, "Promo:    %s (-%.0f%%)\n", svc.Price(*p.NewPrice, code), p.DiscountPercent())
	}
	if p.Rating != nil {
		fmt.Fprintf(w, "Rating:   %.1f\n", *p.Rating)
	}
	if p.Stock != nil {
		fmt.Fprintf(w, "Stock:    %d\n", *p.Stock)
	}
}

func printCart(w io.Writer, svc storefront.Service, c *models.Cart, code string) error {
	if len(c.Items) == 0 {
		printWarning(w, "Your cart is empty.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Ref", "Name", "Unit", "Qty", "Subtotal")
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
		if err := table.Append([]string{
			it.ItemID, it.Ref, it.Name,
			svc.Price(it.Price, code), strconv.Itoa(it.Quantity), svc.Price(it.Subtotal, code),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	cyan.Fprintf(w, "%d article(s), total %s\n", count, svc.Price(c.Total, code))
	return nil
}
