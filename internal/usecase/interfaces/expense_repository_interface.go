package interfaces

import (
	"context"

	"protese_lab/internal/domain/entities"
)

// IExpenseRepository abstracts document-store persistence for Expense.

type IExpenseRepository interface {
	ListAll(ctx context.Context) ([]entities.Expense, error)
	Save(ctx context.Context, e entities.Expense) error
	Delete(ctx context.Context, id string) error
}
