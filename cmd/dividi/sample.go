package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dividi/dividi/internal/calculator"
	"github.com/dividi/dividi/internal/models"
)

func sampleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "write a demo group file to experiment with",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleDocument()
			if err := writeGroupDocument(out, doc); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "group.json", "output path")
	return cmd
}

// sampleDocument builds a three-person trip with one equally split dinner,
// the worked example from the product docs: Ana fronts 90, everyone owes
// 30, so Bruno and Carla each owe Ana 30.
func sampleDocument() *groupDocument {
	ana := models.User{
		ID:   uuid.NewString(),
		Name: "Ana Souza",
		PaymentHandles: []models.PaymentHandle{
			{RailID: "br_pix", Value: "ana@example.com"},
		},
	}
	bruno := models.User{ID: uuid.NewString(), Name: "Bruno Lima"}
	carla := models.User{ID: uuid.NewString(), Name: "Carla Mota"}

	group := models.Group{
		ID:       uuid.NewString(),
		Name:     "Chapada Trip",
		Type:     models.GroupTrip,
		Members:  []models.User{ana, bruno, carla},
		Currency: "BRL",
	}

	total := decimal.RequireFromString("90.00")
	splits := calculator.BuildSplits(calculator.SplitInput{
		Total:          total,
		Users:          group.Members,
		ParticipantIDs: group.MemberIDs(),
		Mode:           models.SplitEqual,
	})

	dinner := models.Expense{
		ID:          uuid.NewString(),
		GroupID:     group.ID,
		Description: "Dinner at the pousada",
		Amount:      total,
		Category:    models.CategoryFood,
		Kind:        models.KindExpense,
		Payments:    []models.Payment{{UserID: ana.ID, Amount: total}},
		SplitMode:   models.SplitEqual,
		Splits:      splits,
		Status:      models.StatusConfirmed,
	}

	return &groupDocument{Group: group, Expenses: []models.Expense{dinner}}
}
