package request

// ClinicRequest upserts a partner clinic registry entry.
type ClinicRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	DoctorName string `json:"doctor_name"`
	Phone      string `json:"phone"`
}

// ServiceItemRequest upserts a service catalog entry.
type ServiceItemRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}
