package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dividi/dividi/internal/calculator"
	"github.com/dividi/dividi/internal/models"
	"github.com/dividi/dividi/internal/payload"
	"github.com/dividi/dividi/internal/rails"
)

func debtsCmd() *cobra.Command {
	var (
		file     string
		paycodes bool
	)

	cmd := &cobra.Command{
		Use:     "debts",
		Short:   "net a group's expenses into a minimal settlement plan",
		Example: `dividi debts -f trip.json --paycodes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadGroupDocument(file)
			if err != nil {
				return err
			}

			debts := calculator.ComputeDebts(doc.Group, doc.Expenses)
			slog.Debug("computed debts", "group", doc.Group.ID, "expenses", len(doc.Expenses), "debts", len(debts))

			if len(debts) == 0 {
				fmt.Println("All settled up.")
				return nil
			}

			for _, d := range debts {
				fmt.Printf("%s -> %s  %s\n",
					memberName(doc.Group, d.From),
					memberName(doc.Group, d.To),
					models.FormatCurrency(d.Amount, doc.Group.Currency),
				)
				if paycodes {
					printPaycode(doc.Group, d)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "group JSON file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	cmd.Flags().BoolVar(&paycodes, "paycodes", false, "also print a payment code for each debt")

	return cmd
}

// printPaycode resolves the creditor's best rail for the group currency
// and prints the encoded payment string, or a note when the creditor has
// no usable handle.
func printPaycode(group models.Group, debt models.Debt) {
	creditor, ok := group.Member(debt.To)
	if !ok {
		fmt.Println("    (creditor not in group, no payment code)")
		return
	}

	resolved, ok := rails.ResolveHandle(creditor, group.Currency)
	if !ok {
		fmt.Printf("    (%s has no payment handle for %s)\n", creditor.Name, group.Currency)
		return
	}

	code, err := payload.Encode(resolved.Rail.ID, payload.Request{
		Key:    resolved.Value,
		Name:   creditor.Name,
		Amount: debt.Amount,
		Memo:   group.Name,
	})
	if err != nil {
		slog.Warn("payload encoding failed", "rail", resolved.Rail.ID, "error", err)
		return
	}
	fmt.Printf("    via %s: %s\n", resolved.Rail.Name, code)
}

func memberName(group models.Group, id string) string {
	if m, ok := group.Member(id); ok {
		return m.Name
	}
	return id
}
