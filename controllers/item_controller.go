// controllers/item_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/db"
	"Gin_postgres_redis_equipment_lab/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

type itemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`
	Website     string `json:"website"`
	Image       string `json:"image"` // reference issued by the upload collaborator
	Quantity    *int   `json:"quantity" binding:"required"`
}

// Admin: register a new equipment item.
func (ic *ItemController) CreateItem(c *gin.Context) {
	var in itemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	it, err := ic.Repo.CreateItem(c.Request.Context(), db.CreateItemInput{
		Name:        in.Name,
		Description: in.Description,
		Purpose:     in.Purpose,
		Website:     in.Website,
		Image:       in.Image,
		Quantity:    *in.Quantity,
		CreatedBy:   callerEmail(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	ic.logActivity(c, callerEmail(c), models.ActionAddItem, map[string]any{
		"itemId":   it.ID,
		"itemName": it.Name,
		"quantity": it.Quantity,
	})
	c.JSON(http.StatusCreated, it)
}

// GET /api/equipment?search=&page=&limit=
func (ic *ItemController) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))

	res, err := ic.Repo.ListItems(c.Request.Context(), db.ItemsQuery{
		Q:    c.Query("search"),
		Page: page,
		Size: limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/equipment/suggestions?search=
func (ic *ItemController) Suggestions(c *gin.Context) {
	rows, err := ic.Repo.SuggestItems(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ic *ItemController) GetItem(c *gin.Context) {
	it, err := ic.Repo.FindItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Admin: edit descriptive fields, and set quantity directly (privileged
// direct edit, outside the collect/return accounting path).
func (ic *ItemController) UpdateItem(c *gin.Context) {
	var in itemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	old, it, err := ic.Repo.UpdateItem(c.Request.Context(), c.Param("id"), db.UpdateItemInput{
		Name:        in.Name,
		Description: in.Description,
		Purpose:     in.Purpose,
		Website:     in.Website,
		Image:       in.Image,
		Quantity:    *in.Quantity,
		UpdatedBy:   callerEmail(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	// Replaced image: tell the upload collaborator to drop the old file.
	if in.Image != "" && old.Image != "" && old.Image != in.Image {
		if err := ic.Images.Remove(old.Image); err != nil {
			ic.Log.Warn("remove replaced image failed", zap.String("image", old.Image), zap.Error(err))
		}
	}

	ic.logActivity(c, callerEmail(c), models.ActionUpdateItem, map[string]any{
		"itemId":   it.ID,
		"itemName": it.Name,
		"changes": map[string]any{
			"oldQuantity": old.Quantity,
			"newQuantity": it.Quantity,
			"oldName":     old.Name,
			"newName":     it.Name,
		},
	})
	c.JSON(http.StatusOK, it)
}

// Admin: remove an item. Refused with 409 while loans are still open.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	it, err := ic.Repo.DeleteItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := ic.Images.Remove(it.Image); err != nil {
		ic.Log.Warn("remove item image failed", zap.String("image", it.Image), zap.Error(err))
	}

	ic.logActivity(c, callerEmail(c), models.ActionDeleteItem, map[string]any{
		"itemId":   it.ID,
		"itemName": it.Name,
		"quantity": it.Quantity,
	})
	c.JSON(http.StatusOK, app.H{"message": "Item deleted successfully"})
}
