package handlers

import (
	"errors"
	"net/http"

	response "protese_lab/internal/adapter/http/dto/response"
	"protese_lab/internal/usecase"
	"protese_lab/pkg"

	"github.com/gin-gonic/gin"
)

// ImportHandler ingests legacy spreadsheet exports posted as raw CSV.

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportPatients accepts the CSV body of a legacy spreadsheet export and
// responds with the number of rows that became service orders. Unusable rows
// are skipped, never fatal; an unreadable file fails the whole batch.
func (h *ImportHandler) ImportPatients(c *gin.Context) {
	imported, err := h.usecase.ImportPatients(c.Request.Context(), c.Request.Body)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ImportResponse{Imported: imported})
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrImportUnreadable):
		return pkg.NewDomainErrorSimple("IMPORT_UNREADABLE", "File is not readable as CSV", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Could not reach the data store", err, http.StatusInternalServerError)
	}
}
