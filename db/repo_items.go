// db/repo_items.go
//
// Item Ledger: the authoritative record of each equipment item and its
// currently available quantity.
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateItemInput struct {
	Name        string
	Description string
	Purpose     string
	Website     string
	Image       string
	Quantity    int
	CreatedBy   string
}

func (r *Repo) CreateItem(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalidArgf("missing required field %q", "name")
	}
	if in.Quantity < 0 {
		return nil, invalidArgf("quantity must be a non-negative integer, got %d", in.Quantity)
	}
	it := &models.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Purpose:     in.Purpose,
		Website:     in.Website,
		Image:       in.Image,
		Quantity:    in.Quantity,
		CreatedBy:   in.CreatedBy,
	}
	if err := r.DB.WithContext(ctx).Create(it).Error; err != nil {
		return nil, err
	}
	return it, nil
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

type ItemsQuery struct {
	Q    string // fuzzy search over name/description/purpose
	Page int
	Size int
}

type PagedItems struct {
	Items       []models.Item `json:"items"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalItems  int64         `json:"totalItems"`
}

func (r *Repo) ListItems(ctx context.Context, q ItemsQuery) (*PagedItems, error) {
	page, size, offset := pageWindow(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Item{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(purpose) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Item
	if err := tx.
		Order("created_at DESC").
		Offset(offset).
		Limit(size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedItems{
		Items:       items,
		CurrentPage: page,
		TotalPages:  pageCount(total, size),
		TotalItems:  total,
	}, nil
}

type ItemSuggestion struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// SuggestItems backs the search-as-you-type box: name + image only, capped
// at 5 rows. Queries shorter than 2 characters return nothing.
func (r *Repo) SuggestItems(ctx context.Context, search string) ([]ItemSuggestion, error) {
	s := strings.TrimSpace(search)
	if len(s) < 2 {
		return []ItemSuggestion{}, nil
	}
	like := "%" + strings.ToLower(s) + "%"
	var rows []ItemSuggestion
	err := r.DB.WithContext(ctx).
		Model(&models.Item{}).
		Select("id, name, image").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(purpose) LIKE ?", like, like, like).
		Limit(5).
		Scan(&rows).Error
	return rows, err
}

type UpdateItemInput struct {
	Name        string
	Description string
	Purpose     string
	Website     string
	Image       string // empty = keep current reference
	Quantity    int    // direct edit, admin-only route
	UpdatedBy   string
}

// UpdateItem rewrites the descriptive fields and, being an admin-only
// operation, may also set the quantity directly. Returns the previous state
// so the caller can diff for the activity log and drop a replaced image.
func (r *Repo) UpdateItem(ctx context.Context, id string, in UpdateItemInput) (old *models.Item, updated *models.Item, err error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, nil, invalidArgf("missing required field %q", "name")
	}
	if in.Quantity < 0 {
		return nil, nil, invalidArgf("quantity must be a non-negative integer, got %d", in.Quantity)
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		prev := it
		old = &prev

		it.Name = in.Name
		it.Description = in.Description
		it.Purpose = in.Purpose
		it.Website = in.Website
		it.Quantity = in.Quantity
		it.UpdatedBy = in.UpdatedBy
		if in.Image != "" {
			it.Image = in.Image
		}
		if err := tx.Save(&it).Error; err != nil {
			return err
		}
		updated = &it
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return old, updated, nil
}

// DeleteItem removes an item, refusing while open loans still reference it
// so the ledger never orphans a collected record. Returns the deleted row so
// the caller can clean up the image reference.
func (r *Repo) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		var open int64
		if err := tx.Model(&models.Loan{}).
			Where("item_id = ? AND status = ?", id, models.LoanStatusCollected).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrItemHasOpenLoans
		}
		return tx.Delete(&models.Item{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// adjustQuantityTx applies delta (negative for collect, positive for return)
// as a conditional single-statement update, so a stale read can never drive
// the quantity negative. Zero rows affected means either the item vanished or
// the precondition failed under a concurrent writer.
func adjustQuantityTx(tx *gorm.DB, id string, delta int) error {
	res := tx.Model(&models.Item{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := tx.Model(&models.Item{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrItemNotFound
		}
		return ErrInsufficientQuantity
	}
	return nil
}
