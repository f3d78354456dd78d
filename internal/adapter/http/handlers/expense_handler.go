package handlers

import (
	"errors"
	"net/http"

	request "protese_lab/internal/adapter/http/dto/request"
	response "protese_lab/internal/adapter/http/dto/response"
	"protese_lab/internal/usecase"
	"protese_lab/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles HTTP requests for lab expenses.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), payload.Description, payload.Amount, date, payload.Category)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(e))
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseID),
		errors.Is(err, usecase.ErrInvalidExpenseDescription),
		errors.Is(err, usecase.ErrInvalidExpenseAmount):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Could not reach the data store", err, http.StatusInternalServerError)
	}
}
