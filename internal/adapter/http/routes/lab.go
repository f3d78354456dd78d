package routes

import (
	"protese_lab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPatients  = "/patients"
	PathExpenses  = "/expenses"
	PathClinics   = "/clinics"
	PathServices  = "/services"
	PathDashboard = "/dashboard"
)

func addLabRoutes(
	rg *gin.RouterGroup,
	patientHandler *handlers.PatientHandler,
	importHandler *handlers.ImportHandler,
	dashboardHandler *handlers.DashboardHandler,
	expenseHandler *handlers.ExpenseHandler,
	registryHandler *handlers.RegistryHandler,
) {
	patients := rg.Group(PathPatients)
	{
		patients.POST("", patientHandler.CreatePatient)
		patients.GET("", patientHandler.ListPatients)
		patients.POST("/import", importHandler.ImportPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.EditPatient)
		patients.PATCH("/:id/status", patientHandler.AdvanceStatus)
		patients.PATCH("/:id/payment", patientHandler.SettlePayment)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	clinics := rg.Group(PathClinics)
	{
		clinics.POST("", registryHandler.SaveClinic)
		clinics.GET("", registryHandler.ListClinics)
		clinics.DELETE("/:id", registryHandler.DeleteClinic)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", registryHandler.SaveServiceItem)
		services.GET("", registryHandler.ListServiceItems)
		services.DELETE("/:id", registryHandler.DeleteServiceItem)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}

func addHealthRoutes(rg *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	rg.GET("/health", healthHandler.GetHealth)
}
