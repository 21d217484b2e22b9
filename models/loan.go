// models/loan.go
package models

import (
	"fmt"
	"strings"
	"time"
)

const LoanTable = "lab_loans"

const (
	LoanStatusCollected = "collected"
	LoanStatusReturned  = "returned"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Loan is one collection event: a borrower taking CollectQuantity units of an
// item. ItemName is captured at collect time and deliberately never synced
// with later item renames, so history stays accurate. CollectQuantity is
// immutable once written; only Status and ReturnedAt ever change.
type Loan struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID          string `gorm:"type:uuid;index;not null" json:"itemId"`
	ItemName        string `gorm:"size:200;not null" json:"itemName"`
	CollectQuantity int    `gorm:"not null" json:"collectQuantity"`

	UserName       string `gorm:"size:200;not null" json:"userName"`
	UserEmail      string `gorm:"size:255;not null;index" json:"userEmail"`
	UserPhone      string `gorm:"size:40" json:"userPhone,omitempty"`
	Role           string `gorm:"size:20;not null" json:"role"`
	Department     string `gorm:"size:120" json:"department,omitempty"`
	RegistrationID string `gorm:"size:60;index" json:"registrationId"`
	Section        string `gorm:"size:60" json:"section,omitempty"`      // student only
	Designation    string `gorm:"size:120" json:"designation,omitempty"` // teacher only

	ReturnDate  time.Time  `gorm:"index;not null" json:"returnDate"`
	CollectedAt time.Time  `gorm:"not null" json:"collectedAt"`
	EntryAt     time.Time  `gorm:"index;not null" json:"entryAt"`
	Status      string     `gorm:"size:20;not null;default:'collected';index" json:"status"`
	ReturnedAt  *time.Time `json:"returnedAt,omitempty"`
}

func (Loan) TableName() string { return LoanTable }

func (l *Loan) Overdue(now time.Time) bool {
	return l.Status == LoanStatusCollected && l.ReturnDate.Before(now)
}

// Borrower carries the identity fields recorded on a loan. Which fields are
// required depends on Role: students must name their section, teachers their
// designation.
type Borrower struct {
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	UserPhone      string `json:"userPhone"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	RegistrationID string `json:"registrationId"`
	Section        string `json:"section"`
	Designation    string `json:"designation"`
}

func (b *Borrower) Validate() error {
	missing := func(field string) error {
		return fmt.Errorf("missing required field %q", field)
	}
	if strings.TrimSpace(b.UserName) == "" {
		return missing("userName")
	}
	if strings.TrimSpace(b.UserEmail) == "" {
		return missing("userEmail")
	}
	if strings.TrimSpace(b.RegistrationID) == "" {
		return missing("registrationId")
	}
	switch b.Role {
	case RoleStudent:
		if strings.TrimSpace(b.Department) == "" {
			return missing("department")
		}
		if strings.TrimSpace(b.Section) == "" {
			return missing("section")
		}
	case RoleTeacher:
		if strings.TrimSpace(b.Department) == "" {
			return missing("department")
		}
		if strings.TrimSpace(b.Designation) == "" {
			return missing("designation")
		}
	default:
		return fmt.Errorf("unknown role %q", b.Role)
	}
	return nil
}
