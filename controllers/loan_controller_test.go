package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Gin_postgres_redis_equipment_lab/db"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func collectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	lc := NewLoanController(&Srv{Log: zap.NewNop()})
	r := gin.New()
	r.POST("/api/equipment/:id/collect", lc.Collect)
	return r
}

func Test_Collect_RejectsBadBody(t *testing.T) {
	r := collectRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed_json", body: `{"collectQuantity": `},
		{name: "missing_return_date", body: `{
			"collectQuantity": 1,
			"userName": "Rahim Uddin",
			"userEmail": "rahim@example.edu",
			"role": "student",
			"registrationId": "2020331045"
		}`},
		{name: "missing_borrower_identity", body: `{
			"collectQuantity": 1,
			"returnDate": "2026-09-04T00:00:00Z"
		}`},
		{name: "bad_return_date_format", body: `{
			"collectQuantity": 1,
			"returnDate": "next week",
			"userName": "Rahim Uddin",
			"userEmail": "rahim@example.edu",
			"role": "student",
			"registrationId": "2020331045"
		}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/equipment/abc/collect", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func Test_errStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{db.ErrItemNotFound, http.StatusNotFound},
		{db.ErrLoanNotFound, http.StatusNotFound},
		{db.ErrUserNotFound, http.StatusNotFound},
		{db.ErrInvalidArgument, http.StatusBadRequest},
		{db.ErrInsufficientQuantity, http.StatusBadRequest},
		{db.ErrAlreadyReturned, http.StatusConflict},
		{db.ErrAmbiguousLoan, http.StatusConflict},
		{db.ErrItemHasOpenLoans, http.StatusConflict},
		{db.ErrQuantityConflict, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, errStatus(tc.err), "for %v", tc.err)
	}
}
