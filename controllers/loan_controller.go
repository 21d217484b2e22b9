// controllers/loan_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/db"
	"Gin_postgres_redis_equipment_lab/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

type collectRequest struct {
	CollectQuantity int       `json:"collectQuantity" binding:"required"`
	ReturnDate      time.Time `json:"returnDate" binding:"required"`

	UserName       string `json:"userName" binding:"required"`
	UserEmail      string `json:"userEmail" binding:"required"`
	UserPhone      string `json:"userPhone"`
	Role           string `json:"role" binding:"required"`
	Department     string `json:"department"`
	RegistrationID string `json:"registrationId" binding:"required"`
	Section        string `json:"section"`
	Designation    string `json:"designation"`
}

// POST /api/equipment/:id/collect
func (lc *LoanController) Collect(c *gin.Context) {
	var in collectRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	loan, err := lc.Repo.CollectItem(c.Request.Context(), db.CollectInput{
		ItemID:   c.Param("id"),
		Quantity: in.CollectQuantity,
		Borrower: models.Borrower{
			UserName:       in.UserName,
			UserEmail:      in.UserEmail,
			UserPhone:      in.UserPhone,
			Role:           in.Role,
			Department:     in.Department,
			RegistrationID: in.RegistrationID,
			Section:        in.Section,
			Designation:    in.Designation,
		},
		ReturnDate: in.ReturnDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	lc.invalidateStats(c)
	lc.logActivity(c, in.UserEmail, models.ActionCollectItem, map[string]any{
		"loanId":          loan.ID,
		"itemId":          loan.ItemID,
		"itemName":        loan.ItemName,
		"collectQuantity": loan.CollectQuantity,
	})
	c.JSON(http.StatusOK, app.H{
		"message":          "Item collected successfully",
		"collectionRecord": loan,
	})
}

type returnRequest struct {
	// Preferred: address the loan directly. The borrower-key fields below are
	// the legacy fallback and must all be present when loanId is absent.
	LoanID         string `json:"loanId"`
	ReturnQuantity int    `json:"returnQuantity"`
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	RegistrationID string `json:"registrationId"`
}

// POST /api/equipment/:id/return
func (lc *LoanController) Return(c *gin.Context) {
	var in returnRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	loan, err := lc.Repo.ReturnLoan(c.Request.Context(), db.ReturnInput{
		LoanID:         in.LoanID,
		ItemID:         c.Param("id"),
		UserName:       in.UserName,
		UserEmail:      in.UserEmail,
		RegistrationID: in.RegistrationID,
		Quantity:       in.ReturnQuantity,
	})
	if err != nil {
		fail(c, err)
		return
	}

	lc.invalidateStats(c)
	lc.logActivity(c, loan.UserEmail, models.ActionReturnItem, map[string]any{
		"loanId":           loan.ID,
		"itemId":           loan.ItemID,
		"itemName":         loan.ItemName,
		"returnedQuantity": loan.CollectQuantity,
	})
	c.JSON(http.StatusOK, app.H{
		"message":          "Item returned successfully",
		"collectionRecord": loan,
	})
}

// GET /api/history?search=&status=&page=&limit=
func (lc *LoanController) ListHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := lc.Repo.ListLoans(c.Request.Context(), db.LoansQuery{
		Q:      c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Size:   limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/history/user/:email?page=&limit=
func (lc *LoanController) ListUserHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := lc.Repo.ListLoansByUser(c.Request.Context(), c.Param("email"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Accounting mutations make the cached dashboard stale; drop it eagerly so
// the next poll recomputes. Best effort only.
func (lc *LoanController) invalidateStats(c *gin.Context) {
	if err := lc.StatsCache.Invalidate(c.Request.Context()); err != nil {
		lc.Log.Warn("stats cache invalidate failed", zap.Error(err))
	}
}
