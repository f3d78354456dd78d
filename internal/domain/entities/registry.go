package entities

// Clinic is a partner-clinic registry entry. Patients reference clinics by
// copied text, never by id, so deleting a clinic does not cascade.
type Clinic struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DoctorName string `json:"doctor_name"`
	Phone      string `json:"phone,omitempty"`
}

// ServiceItem is a catalog entry used to pre-fill a service order's value
// when its prosthesis type is chosen. Once copied the price is decoupled:
// later catalog edits never touch existing orders.
type ServiceItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
