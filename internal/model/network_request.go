package model

import (
	"time"

	"github.com/google/uuid"
)

// Network access request statuses.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Declared roles on the onboarding form. Mapping to system roles is fixed:
// OEMs -> buyer, Suppliers -> supplier, Both -> both.
const (
	RoleInEVOEMs      = "OEMs"
	RoleInEVSuppliers = "Suppliers"
	RoleInEVBoth      = "Both"
)

// NetworkAccessRequest is an onboarding application from a prospective
// company. Approval provisions exactly one User; approving the same request
// twice never creates a duplicate account.
type NetworkAccessRequest struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Company information
	CompanyName       string `gorm:"not null"`
	Website           *string
	RegisteredAddress string `gorm:"not null"`
	CityState         string `gorm:"not null"`

	// Contact information
	ContactName string `gorm:"not null"`
	ContactRole string `gorm:"not null"`
	Email       string `gorm:"not null;index"`
	Phone       string `gorm:"not null"`

	// Manufacturing details
	WhatYouDo              string `gorm:"not null"` // comma-joined form checkboxes
	PrimaryProduct         string `gorm:"not null"`
	KeyComponents          string `gorm:"not null"`
	ManufacturingLocations string `gorm:"not null"`
	MonthlyCapacity        string `gorm:"not null"`
	Certifications         *string

	RoleInEV string `gorm:"column:role_in_ev;type:varchar(20);not null"`
	WhyJoin  string `gorm:"not null"`

	Status      string `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes  string
	ProcessedBy *string
	// UserID links the account created on approval.
	UserID      *uuid.UUID `gorm:"type:uuid"`
	SubmittedAt time.Time  `gorm:"not null;default:now()"`
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NetworkAccessRequest) TableName() string { return "network_access_requests" }
