// db/repo_loans.go
//
// Loan Registry read side: history listings with free-text filters. Loan rows
// are only ever created and transitioned by the accounting repo.
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"strings"
)

// LoanRow is a registry row enriched with the current item's image (and, for
// the per-user history, its description). Nil when the item has been deleted.
type LoanRow struct {
	models.Loan
	ItemImage       *string `json:"itemImage"`
	ItemDescription *string `json:"itemDescription,omitempty"`
}

type LoansQuery struct {
	Q      string // fuzzy: item name, borrower name/email/registration id
	Status string // "", "collected", "returned"
	Page   int
	Size   int
}

type PagedLoans struct {
	History     []LoanRow `json:"history"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalItems  int64     `json:"totalItems"`
}

func (r *Repo) ListLoans(ctx context.Context, q LoansQuery) (*PagedLoans, error) {
	page, size, offset := pageWindow(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Loan{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(item_name) LIKE ? OR LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ? OR LOWER(registration_id) LIKE ?",
			like, like, like, like,
		)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var loans []models.Loan
	if err := tx.
		Order("entry_at DESC").
		Offset(offset).
		Limit(size).
		Find(&loans).Error; err != nil {
		return nil, err
	}

	rows, err := r.enrichLoans(ctx, loans, false)
	if err != nil {
		return nil, err
	}
	return &PagedLoans{
		History:     rows,
		CurrentPage: page,
		TotalPages:  pageCount(total, size),
		TotalItems:  total,
	}, nil
}

func (r *Repo) ListLoansByUser(ctx context.Context, email string, page, size int) (*PagedLoans, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalidArgf("missing required field %q", "email")
	}
	p, s, offset := pageWindow(page, size)

	tx := r.DB.WithContext(ctx).Model(&models.Loan{}).Where("user_email = ?", email)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var loans []models.Loan
	if err := tx.
		Order("entry_at DESC").
		Offset(offset).
		Limit(s).
		Find(&loans).Error; err != nil {
		return nil, err
	}

	rows, err := r.enrichLoans(ctx, loans, true)
	if err != nil {
		return nil, err
	}
	return &PagedLoans{
		History:     rows,
		CurrentPage: p,
		TotalPages:  pageCount(total, s),
		TotalItems:  total,
	}, nil
}

// enrichLoans attaches current item images (one batched lookup, not N+1).
func (r *Repo) enrichLoans(ctx context.Context, loans []models.Loan, withDescription bool) ([]LoanRow, error) {
	rows := make([]LoanRow, 0, len(loans))
	if len(loans) == 0 {
		return rows, nil
	}

	ids := make([]string, 0, len(loans))
	for _, l := range loans {
		ids = append(ids, l.ItemID)
	}
	var items []models.Item
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	for _, l := range loans {
		row := LoanRow{Loan: l}
		if it, ok := byID[l.ItemID]; ok {
			img := it.Image
			row.ItemImage = &img
			if withDescription {
				desc := it.Description
				row.ItemDescription = &desc
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
