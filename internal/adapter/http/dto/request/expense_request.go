package request

import "time"

// ExpenseRequest is the payload for logging a lab expense.
type ExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

func (r ExpenseRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}
