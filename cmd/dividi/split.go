package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dividi/dividi/internal/calculator"
	"github.com/dividi/dividi/internal/models"
)

func splitCmd() *cobra.Command {
	var (
		total        string
		mode         string
		participants []string
		values       []string
		fee          string
	)

	cmd := &cobra.Command{
		Use:     "split",
		Short:   "divide a total among participants under a split policy",
		Example: `dividi split --total 100 --mode shares --participants ana,bob,cai --values ana=2,bob=1,cai=1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			totalDec, err := decimal.NewFromString(total)
			if err != nil {
				return fmt.Errorf("invalid total %q: %w", total, err)
			}
			feeDec := decimal.Zero
			if fee != "" {
				if feeDec, err = decimal.NewFromString(fee); err != nil {
					return fmt.Errorf("invalid fee %q: %w", fee, err)
				}
			}

			valueMap, err := parseValues(values)
			if err != nil {
				return err
			}

			// Participant names double as ids in this ad-hoc mode.
			users := make([]models.User, len(participants))
			for i, p := range participants {
				users[i] = models.User{ID: p, Name: p}
			}

			splits := calculator.BuildSplits(calculator.SplitInput{
				Total:             totalDec,
				Users:             users,
				ParticipantIDs:    participants,
				Mode:              models.SplitMode(mode),
				Values:            valueMap,
				ServiceFeePercent: feeDec,
			})

			if len(splits) == 0 {
				fmt.Println("No splits produced.")
				return nil
			}
			sum := decimal.Zero
			for _, s := range splits {
				fmt.Printf("%-20s %s\n", s.UserID, s.Amount.StringFixed(2))
				sum = sum.Add(s.Amount)
			}
			fmt.Printf("%-20s %s\n", "total", sum.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&total, "total", "", "expense total (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("total"))
	cmd.Flags().StringVar(&mode, "mode", "equal", "equal, exact, percentage, shares or itemized")
	cmd.Flags().StringSliceVar(&participants, "participants", nil, "comma-separated participant names (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("participants"))
	cmd.Flags().StringSliceVar(&values, "values", nil, "per-participant policy inputs, name=value pairs")
	cmd.Flags().StringVar(&fee, "fee", "", "service fee percent (itemized mode)")

	return cmd
}

func parseValues(pairs []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid value %q, want name=number", pair)
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		out[name] = d
	}
	return out, nil
}
