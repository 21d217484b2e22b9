package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStudent() Borrower {
	return Borrower{
		UserName:       "Rahim Uddin",
		UserEmail:      "rahim@example.edu",
		UserPhone:      "01700000000",
		Role:           RoleStudent,
		Department:     "EEE",
		RegistrationID: "2020331045",
		Section:        "B",
	}
}

func validTeacher() Borrower {
	return Borrower{
		UserName:       "Dr. Karim",
		UserEmail:      "karim@example.edu",
		Role:           RoleTeacher,
		Department:     "CSE",
		RegistrationID: "T-1042",
		Designation:    "Associate Professor",
	}
}

func Test_Borrower_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Borrower)
		wantErr string
	}{
		{name: "valid_student", mutate: func(b *Borrower) {}},
		{
			name:    "missing_user_name",
			mutate:  func(b *Borrower) { b.UserName = "  " },
			wantErr: `missing required field "userName"`,
		},
		{
			name:    "missing_email",
			mutate:  func(b *Borrower) { b.UserEmail = "" },
			wantErr: `missing required field "userEmail"`,
		},
		{
			name:    "missing_registration_id",
			mutate:  func(b *Borrower) { b.RegistrationID = "" },
			wantErr: `missing required field "registrationId"`,
		},
		{
			name:    "student_missing_section",
			mutate:  func(b *Borrower) { b.Section = "" },
			wantErr: `missing required field "section"`,
		},
		{
			name:    "student_missing_department",
			mutate:  func(b *Borrower) { b.Department = "" },
			wantErr: `missing required field "department"`,
		},
		{
			name:    "unknown_role",
			mutate:  func(b *Borrower) { b.Role = "staff" },
			wantErr: `unknown role "staff"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := validStudent()
			tc.mutate(&b)

			err := b.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func Test_Borrower_Validate_Teacher(t *testing.T) {
	b := validTeacher()
	assert.NoError(t, b.Validate())

	b.Designation = ""
	assert.EqualError(t, b.Validate(), `missing required field "designation"`)

	// Section is a student-only field; a teacher without one is fine.
	b = validTeacher()
	b.Section = ""
	assert.NoError(t, b.Validate())
}

func Test_Loan_Overdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l := Loan{Status: LoanStatusCollected, ReturnDate: now.Add(-time.Hour)}
	assert.True(t, l.Overdue(now))

	l.ReturnDate = now.Add(time.Hour)
	assert.False(t, l.Overdue(now))

	// A returned loan is never overdue, however old its deadline.
	l = Loan{Status: LoanStatusReturned, ReturnDate: now.Add(-24 * time.Hour)}
	assert.False(t, l.Overdue(now))
}
