// db/repo_accounting.go
//
// The accounting service: the only code paths allowed to change an item's
// quantity together with a loan's status. Each operation is one transaction,
// so the quantity write and the paired loan write commit or roll back as a
// unit and partial failure can never leak quantity.
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CollectInput struct {
	ItemID     string
	Quantity   int
	Borrower   models.Borrower
	ReturnDate time.Time
}

// CollectItem decrements the item's available quantity and opens a loan
// record, atomically. Two concurrent collects racing for the last units are
// serialized by the item row lock; the conditional decrement is the backstop
// that keeps quantity non-negative regardless.
func (r *Repo) CollectItem(ctx context.Context, in CollectInput) (*models.Loan, error) {
	if in.Quantity < 1 {
		return nil, invalidArgf("collectQuantity must be at least 1, got %d", in.Quantity)
	}
	if in.ReturnDate.IsZero() {
		return nil, invalidArgf("missing required field %q", "returnDate")
	}
	if err := in.Borrower.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	var loan *models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", in.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if in.Quantity > it.Quantity {
			return ErrInsufficientQuantity
		}
		if err := adjustQuantityTx(tx, it.ID, -in.Quantity); err != nil {
			// The sufficiency check above passed under the row lock, so a
			// failed precondition here means another writer slipped in.
			if errors.Is(err, ErrInsufficientQuantity) {
				return ErrQuantityConflict
			}
			return err
		}

		now := time.Now().UTC()
		l := &models.Loan{
			ID:              uuid.NewString(),
			ItemID:          it.ID,
			ItemName:        it.Name,
			CollectQuantity: in.Quantity,
			UserName:        in.Borrower.UserName,
			UserEmail:       in.Borrower.UserEmail,
			UserPhone:       in.Borrower.UserPhone,
			Role:            in.Borrower.Role,
			Department:      in.Borrower.Department,
			RegistrationID:  in.Borrower.RegistrationID,
			ReturnDate:      in.ReturnDate.UTC(),
			CollectedAt:     now,
			EntryAt:         now,
			Status:          models.LoanStatusCollected,
		}
		// Only the role-relevant identity field is recorded.
		switch in.Borrower.Role {
		case models.RoleStudent:
			l.Section = in.Borrower.Section
		case models.RoleTeacher:
			l.Designation = in.Borrower.Designation
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

type ReturnInput struct {
	// LoanID addresses the record directly and is the preferred mode. When
	// empty we fall back to the legacy borrower match key below.
	LoanID string

	ItemID         string
	UserName       string
	UserEmail      string
	RegistrationID string

	// Quantity is a caller-side sanity check; 0 means the whole loan. A value
	// that disagrees with the record is rejected rather than partially
	// applied, so the ledger only ever moves by the recorded amount.
	Quantity int
}

// ReturnLoan closes a loan and gives the quantity back, atomically. The
// legacy mode matches by (item, borrower name, email, registration id); if
// that key fits more than one open loan the call fails with ErrAmbiguousLoan
// instead of silently picking one.
func (r *Repo) ReturnLoan(ctx context.Context, in ReturnInput) (*models.Loan, error) {
	if in.LoanID == "" {
		required := []struct{ field, v string }{
			{"itemId", in.ItemID},
			{"userName", in.UserName},
			{"userEmail", in.UserEmail},
			{"registrationId", in.RegistrationID},
		}
		for _, f := range required {
			if strings.TrimSpace(f.v) == "" {
				return nil, invalidArgf("missing required field %q", f.field)
			}
		}
	}

	var loan models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.LoanID != "" {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&loan, "id = ?", in.LoanID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrLoanNotFound
				}
				return err
			}
			if in.ItemID != "" && loan.ItemID != in.ItemID {
				return ErrLoanNotFound
			}
		} else {
			var open []models.Loan
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("item_id = ? AND user_name = ? AND user_email = ? AND registration_id = ? AND status = ?",
					in.ItemID, in.UserName, in.UserEmail, in.RegistrationID, models.LoanStatusCollected).
				Find(&open).Error; err != nil {
				return err
			}
			switch len(open) {
			case 0:
				return ErrLoanNotFound
			case 1:
				loan = open[0]
			default:
				return ErrAmbiguousLoan
			}
		}

		if loan.Status != models.LoanStatusCollected {
			return ErrAlreadyReturned
		}
		if in.Quantity != 0 && in.Quantity != loan.CollectQuantity {
			return invalidArgf("returnQuantity %d does not match collected %d", in.Quantity, loan.CollectQuantity)
		}

		now := time.Now().UTC()
		res := tx.Model(&models.Loan{}).
			Where("id = ? AND status = ?", loan.ID, models.LoanStatusCollected).
			Updates(map[string]any{
				"status":      models.LoanStatusReturned,
				"returned_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReturned
		}

		// Deletion is blocked while loans are open, so the item must exist.
		if err := adjustQuantityTx(tx, loan.ItemID, loan.CollectQuantity); err != nil {
			return err
		}

		loan.Status = models.LoanStatusReturned
		loan.ReturnedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}
