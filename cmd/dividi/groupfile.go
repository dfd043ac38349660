package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dividi/dividi/internal/models"
)

// groupDocument is the on-disk JSON shape the CLI works on: one group and
// its expense history.
type groupDocument struct {
	Group    models.Group     `json:"group"`
	Expenses []models.Expense `json:"expenses"`
}

func loadGroupDocument(path string) (*groupDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read group file: %w", err)
	}
	var doc groupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse group file %s: %w", path, err)
	}
	return &doc, nil
}

func writeGroupDocument(path string, doc *groupDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write group file: %w", err)
	}
	return nil
}
