package dto

// CreateStaffRequest payload for the admin provisioning entry point.
type CreateStaffRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	VenueID     string  `json:"venue_id"`
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// CreateBartenderRequest payload for the manager provisioning entry point.
// Role is accepted but must be "bartender" when present.
type CreateBartenderRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role,omitempty"`
	VenueID     string  `json:"venue_id"`
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// StaffAccountRequest payload addressing one staff account.
type StaffAccountRequest struct {
	UserID string `json:"user_id"`
}

// AssignManagerRequest payload.
type AssignManagerRequest struct {
	ManagerUserID string `json:"manager_user_id"`
}

// WorkflowResponse is the common privileged-function response envelope.
type WorkflowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}
