package handlers

import (
	"errors"
	"net/http"

	request "protese_lab/internal/adapter/http/dto/request"
	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase"
	"protese_lab/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistryPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRY_INPUT", "Invalid registry payload", http.StatusBadRequest)

// RegistryHandler handles the partner-clinic registry and the service
// catalog. Both are plain reference data with upsert/list/delete semantics.

type RegistryHandler struct {
	clinics  usecase.IClinicUseCase
	services usecase.IServiceItemUseCase
}

func NewRegistryHandler(clinics usecase.IClinicUseCase, services usecase.IServiceItemUseCase) *RegistryHandler {
	return &RegistryHandler{clinics: clinics, services: services}
}

func (h *RegistryHandler) SaveClinic(c *gin.Context) {
	var payload request.ClinicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	clinic, err := h.clinics.Save(c.Request.Context(), entities.Clinic{
		ID:         payload.ID,
		Name:       payload.Name,
		DoctorName: payload.DoctorName,
		Phone:      payload.Phone,
	})
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, clinic)
}

func (h *RegistryHandler) ListClinics(c *gin.Context) {
	clinics, err := h.clinics.List(c.Request.Context())
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, clinics)
}

func (h *RegistryHandler) DeleteClinic(c *gin.Context) {
	if err := h.clinics.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RegistryHandler) SaveServiceItem(c *gin.Context) {
	var payload request.ServiceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	item, err := h.services.Save(c.Request.Context(), entities.ServiceItem{
		ID:    payload.ID,
		Name:  payload.Name,
		Price: payload.Price,
	})
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *RegistryHandler) ListServiceItems(c *gin.Context) {
	items, err := h.services.List(c.Request.Context())
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *RegistryHandler) DeleteServiceItem(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRegistryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClinicID),
		errors.Is(err, usecase.ErrInvalidClinicName),
		errors.Is(err, usecase.ErrInvalidServiceItemID),
		errors.Is(err, usecase.ErrInvalidServiceItemName),
		errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Could not reach the data store", err, http.StatusInternalServerError)
	}
}
