package entities

import "time"

// Expense is a standalone lab expense entry. There is no status machine:
// expenses are created and deleted, never transitioned.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Category is free text; the UI suggests common values (material, equipment,
// salary) but the engine never validates against a closed set.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}
