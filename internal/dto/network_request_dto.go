package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SubmitNetworkRequest mirrors the public onboarding form.
type SubmitNetworkRequest struct {
	CompanyName       string  `json:"company_name"       validate:"required,min=2,max=200"`
	Website           *string `json:"website"            validate:"omitempty,max=200"`
	RegisteredAddress string  `json:"registered_address" validate:"required"`
	CityState         string  `json:"city_state"         validate:"required"`

	ContactName string `json:"contact_name" validate:"required,min=2,max=100"`
	ContactRole string `json:"contact_role" validate:"required,max=100"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required,max=30"`

	WhatYouDo              []string `json:"what_you_do"             validate:"required,min=1"`
	PrimaryProduct         string   `json:"primary_product"         validate:"required"`
	KeyComponents          string   `json:"key_components"          validate:"required"`
	ManufacturingLocations string   `json:"manufacturing_locations" validate:"required"`
	MonthlyCapacity        string   `json:"monthly_capacity"        validate:"required"`
	Certifications         *string  `json:"certifications"`

	RoleInEV string `json:"role_in_ev" validate:"required,oneof=OEMs Suppliers Both"`
	WhyJoin  string `json:"why_join"   validate:"required,min=10"`
}

type ApproveRequestBody struct {
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=2000"`
}

type RejectRequestBody struct {
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=2000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type NetworkRequestResponse struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"company_name"`
	ContactName string   `json:"contact_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	RoleInEV    string   `json:"role_in_ev"`
	WhatYouDo   []string `json:"what_you_do"`
	Status      string   `json:"status"`
	AdminNotes  string   `json:"admin_notes,omitempty"`
	ProcessedBy string   `json:"processed_by,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	SubmittedAt string   `json:"submitted_at"`
	ApprovedAt  string   `json:"approved_at,omitempty"`
	RejectedAt  string   `json:"rejected_at,omitempty"`
}

// ApprovalResult is returned to the admin after approving a request.
// AlreadyProvisioned is true when a user with the request's email existed
// before this call; no new account or credentials are produced then.
type ApprovalResult struct {
	RequestID          string `json:"request_id"`
	UserID             string `json:"user_id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	AlreadyProvisioned bool   `json:"already_provisioned"`
	LoginURL           string `json:"login_url,omitempty"`
}
