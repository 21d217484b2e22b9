package db

import (
	"gorm.io/gorm"
)

// Repo is the single mutation authority over the item ledger and the loan
// registry. Controllers hold a *Repo and never touch gorm directly.
type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Paging helpers shared by every listing query: 1-based page, clamped size.

func pageWindow(page, size int) (p, s, offset int) {
	p, s = page, size
	if p <= 0 {
		p = 1
	}
	if s <= 0 || s > 100 {
		s = 10
	}
	return p, s, (p - 1) * s
}

func pageCount(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
