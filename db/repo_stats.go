// db/repo_stats.go
//
// Read-only aggregations for the dashboard and the overdue report. Nothing
// here mutates, so these queries run without touching the accounting locks.
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"time"
)

type BorrowCount struct {
	ItemName string `json:"itemName"`
	Count    int64  `json:"count"`
}

type Stats struct {
	TotalItems     int64         `json:"totalRecords"`
	TotalCollected int64         `json:"totalCollected"`
	TotalReturned  int64         `json:"totalReturned"`
	ActiveLoans    int64         `json:"activeLoans"`
	MostBorrowed   []BorrowCount `json:"mostBorrowed"`
	Recent         []models.Loan `json:"recentActivities"`
}

func (r *Repo) Stats(ctx context.Context) (*Stats, error) {
	db := r.DB.WithContext(ctx)
	out := &Stats{}

	if err := db.Model(&models.Item{}).Count(&out.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Loan{}).
		Where("status = ?", models.LoanStatusCollected).
		Count(&out.TotalCollected).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Loan{}).
		Where("status = ?", models.LoanStatusReturned).
		Count(&out.TotalReturned).Error; err != nil {
		return nil, err
	}
	out.ActiveLoans = out.TotalCollected

	// Grouped by the denormalized loan-time name, count DESC, top 5.
	if err := db.Model(&models.Loan{}).
		Select("item_name, COUNT(*) AS count").
		Group("item_name").
		Order("count DESC").
		Limit(5).
		Scan(&out.MostBorrowed).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Loan{}).
		Order("entry_at DESC").
		Limit(5).
		Find(&out.Recent).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// OverdueRow is an open loan past its return date, carrying the item's
// current name and image when the item still exists and the loan-time name
// otherwise.
type OverdueRow struct {
	models.Loan
	ItemImage *string `json:"itemImage"`
}

type PagedOverdue struct {
	DueHistory  []OverdueRow `json:"dueHistory"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalItems  int64        `json:"totalItems"`
}

func (r *Repo) ListOverdueLoans(ctx context.Context, page, size int) (*PagedOverdue, error) {
	p, s, offset := pageWindow(page, size)
	now := time.Now().UTC()

	tx := r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("status = ? AND return_date < ?", models.LoanStatusCollected, now)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var loans []models.Loan
	if err := tx.
		Order("return_date ASC"). // most overdue first
		Offset(offset).
		Limit(s).
		Find(&loans).Error; err != nil {
		return nil, err
	}

	rows := make([]OverdueRow, 0, len(loans))
	if len(loans) > 0 {
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
			row := OverdueRow{Loan: l}
			if it, ok := byID[l.ItemID]; ok {
				img := it.Image
				row.ItemImage = &img
				row.ItemName = it.Name
			}
			rows = append(rows, row)
		}
	}

	return &PagedOverdue{
		DueHistory:  rows,
		CurrentPage: p,
		TotalPages:  pageCount(total, s),
		TotalItems:  total,
	}, nil
}
