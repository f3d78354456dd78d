package handlers

import (
	"errors"
	"net/http"
	"time"

	request "protese_lab/internal/adapter/http/dto/request"
	response "protese_lab/internal/adapter/http/dto/response"
	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase"
	"protese_lab/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPatientPayload = pkg.NewDomainErrorSimple("INVALID_PATIENT_INPUT", "Invalid patient payload", http.StatusBadRequest)
)

// PatientHandler handles HTTP requests for service orders (patients).

type PatientHandler struct {
	usecase usecase.IPatientUseCase
}

func NewPatientHandler(uc usecase.IPatientUseCase) *PatientHandler {
	return &PatientHandler{usecase: uc}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	in, ok := bindPatientInput(c)
	if !ok {
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), usecase.CreatePatientInput{
		Name:           in.payload.Name,
		Clinic:         in.payload.Clinic,
		DoctorName:     in.payload.DoctorName,
		DoctorPhone:    in.payload.DoctorPhone,
		ProsthesisType: in.payload.ProsthesisType,
		Notes:          in.payload.Notes,
		ServiceValue:   in.payload.ServiceValue,
		LaborCost:      in.payload.LaborCost,
		EntryDate:      in.entryDate,
		DueDate:        in.dueDate,
	})
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPatient(p))
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatients(patients))
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatient(p))
}

// EditPatient replaces descriptive/financial fields. The workflow history is
// untouched by this path.
func (h *PatientHandler) EditPatient(c *gin.Context) {
	in, ok := bindPatientInput(c)
	if !ok {
		return
	}

	p, err := h.usecase.EditFields(c.Request.Context(), c.Param("id"), usecase.EditPatientInput{
		Name:           in.payload.Name,
		Clinic:         in.payload.Clinic,
		DoctorName:     in.payload.DoctorName,
		DoctorPhone:    in.payload.DoctorPhone,
		ProsthesisType: in.payload.ProsthesisType,
		Notes:          in.payload.Notes,
		ServiceValue:   in.payload.ServiceValue,
		LaborCost:      in.payload.LaborCost,
		DueDate:        in.dueDate,
	})
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPatient(p))
}

func (h *PatientHandler) AdvanceStatus(c *gin.Context) {
	var payload request.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.AdvanceStatus(c.Request.Context(), c.Param("id"), entities.WorkflowStatus(payload.Status), payload.Notes)
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPatient(p))
}

func (h *PatientHandler) SettlePayment(c *gin.Context) {
	p, err := h.usecase.SettlePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatient(p))
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

type boundPatientInput struct {
	payload   request.PatientRequest
	entryDate time.Time
	dueDate   time.Time
}

func bindPatientInput(c *gin.Context) (boundPatientInput, bool) {
	var payload request.PatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return boundPatientInput{}, false
	}

	entry, err := payload.ResolveEntryDate()
	if err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return boundPatientInput{}, false
	}
	due, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return boundPatientInput{}, false
	}

	return boundPatientInput{payload: payload, entryDate: entry, dueDate: due}, true
}

func mapPatientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPatientID),
		errors.Is(err, usecase.ErrInvalidPatientName),
		errors.Is(err, usecase.ErrInvalidClinic),
		errors.Is(err, usecase.ErrInvalidDoctorName),
		errors.Is(err, usecase.ErrInvalidServiceValue),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Could not reach the data store", err, http.StatusInternalServerError)
	}
}
