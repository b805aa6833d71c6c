package cases

import "time"

// Case types tracked by the application.
const (
	CaseType498A        = "498A"
	CaseTypeDV          = "DV"
	CaseTypeMaintenance = "Maintenance"
	CaseTypeCustody     = "Custody"
	CaseTypeExtortion   = "Extortion"
	CaseTypeOther       = "Other"
)

// Case lifecycle statuses. Transitions are unconstrained: any value may be
// set by the owner or an admin.
const (
	StatusActive  = "Active"
	StatusClosed  = "Closed"
	StatusWon     = "Won"
	StatusLost    = "Lost"
	StatusSettled = "Settled"
)

const maxTitleLength = 100

// Case is a legal matter owned by one user. Its documents live in the
// documents table keyed by case id.
type Case struct {
	ID            string
	UserID        string
	CaseType      string
	Title         string
	Description   string
	PoliceStation string
	Location      string
	Status        string
	CreatedAt     time.Time
}

// CaseWithOwner is a case joined with its owner's public identity.
type CaseWithOwner struct {
	Case
	OwnerName  string
	OwnerEmail string
}

// ValidCaseType reports whether t is a known case type.
func ValidCaseType(t string) bool {
	switch t {
	case CaseType498A, CaseTypeDV, CaseTypeMaintenance, CaseTypeCustody, CaseTypeExtortion, CaseTypeOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known case status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusClosed, StatusWon, StatusLost, StatusSettled:
		return true
	}
	return false
}
