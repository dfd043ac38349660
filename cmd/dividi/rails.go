package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dividi/dividi/internal/payload"
	"github.com/dividi/dividi/internal/rails"
)

func railsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rails",
		Short: "list the payment rail catalog",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-14s %-20s %-4s %-10s %-4s %s\n", "ID", "NAME", "CC", "CURRENCY", "PRIO", "QR")
			for _, r := range rails.All() {
				qr := "-"
				if r.SupportsQR {
					qr = "qr"
				}
				if payload.FamilyOf(r.ID) == payload.FamilyPlain {
					qr += " (copy only)"
				}
				fmt.Printf("%-14s %-20s %-4s %-10s %-4d %s\n",
					r.ID, r.Name, r.CountryCode, r.Currencies[0], r.Priority, qr)
			}
		},
	}
}
