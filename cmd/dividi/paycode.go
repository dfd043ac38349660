package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dividi/dividi/internal/payload"
)

func paycodeCmd() *cobra.Command {
	var (
		railID string
		key    string
		name   string
		city   string
		amount string
		memo   string
	)

	cmd := &cobra.Command{
		Use:     "paycode",
		Short:   "encode a rail-specific payment string",
		Example: `dividi paycode --rail br_pix --key ana@example.com --name "Ana Souza" --amount 42.50 --memo "Lisbon trip"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amountDec := decimal.Zero
			if amount != "" {
				var err error
				if amountDec, err = decimal.NewFromString(amount); err != nil {
					return fmt.Errorf("invalid amount %q: %w", amount, err)
				}
			}

			code, err := payload.Encode(railID, payload.Request{
				Key:    key,
				Name:   name,
				City:   city,
				Amount: amountDec,
				Memo:   memo,
			})
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}

	cmd.Flags().StringVar(&railID, "rail", "", "rail id from the catalog (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("rail"))
	cmd.Flags().StringVar(&key, "key", "", "payee handle value (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("key"))
	cmd.Flags().StringVar(&name, "name", "", "payee display name")
	cmd.Flags().StringVar(&city, "city", getEnv("DIVIDI_CITY", ""), "payee city (EMV rails)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount with up to two decimals; omit for a static code")
	cmd.Flags().StringVar(&memo, "memo", "", "reference or note")

	return cmd
}
