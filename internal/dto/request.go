package dto

// RegisterRequest represents a registration form submission. The binding
// rules mirror the site's form validation; anything that passes binding
// is considered valid input by the service layer.
type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required,min=3" example:"Jane Doe"`
	RollNumber  string `json:"rollNumber" binding:"required" example:"160123749001"`
	College     string `json:"college" example:"CBIT"`
	Branch      string `json:"branch" binding:"required" example:"CSE"`
	Year        string `json:"year" binding:"required,oneof=1 2 3 4" example:"2"`
	Email       string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	PhoneNumber string `json:"phoneNumber" binding:"required,len=10,numeric" example:"9876543210"`
	Event       string `json:"event" binding:"required,oneof=dsa-masters cipherville ethitech-mania all-events" example:"cipherville"`
}
