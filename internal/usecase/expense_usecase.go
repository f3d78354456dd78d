package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidExpenseID          = errors.New("invalid expense id")
	ErrInvalidExpenseDescription = errors.New("invalid expense description")
	ErrInvalidExpenseAmount      = errors.New("invalid expense amount")
)

// IExpenseUseCase exposes expense logging. Expenses have no lifecycle beyond
// create and delete.

type IExpenseUseCase interface {
	Create(ctx context.Context, description string, amount float64, date time.Time, category string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) Create(ctx context.Context, description string, amount float64, date time.Time, category string) (entities.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Expense{}, ErrInvalidExpenseDescription
	}
	if amount <= 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    strings.TrimSpace(category),
	}
	if err := u.repo.Save(ctx, e); err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (u *ExpenseUseCase) List(ctx context.Context) ([]entities.Expense, error) {
	expenses, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}
	return u.repo.Delete(ctx, id)
}
