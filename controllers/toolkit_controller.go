package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

type ToolkitController struct{ *Srv }

func NewToolkitController(s *Srv) *ToolkitController { return &ToolkitController{Srv: s} }

type toolkitReq struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	SerialNumber  string  `json:"serial_number"`
	Condition     string  `json:"condition"`
	CategoryID    *uint   `json:"category_id"`
	PurchasePrice float64 `json:"purchase_price"`
}

func (in *toolkitReq) validate() validation.ErrorMap {
	return validation.ValidateToolkit(validation.ToolkitForm{
		Name:      in.Name,
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Brand:     in.Brand,
		Condition: in.Condition,
	})
}

func (tc *ToolkitController) Create(c *gin.Context) {
	var in toolkitReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := in.validate(); !errs.Valid() {
		failValidation(c, errs)
		return
	}

	t := &models.Toolkit{
		Name:          in.Name,
		SKU:           in.SKU,
		Description:   in.Description,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Brand:         in.Brand,
		Model:         in.Model,
		SerialNumber:  in.SerialNumber,
		Condition:     in.Condition,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
	}
	if err := tc.Repo.CreateToolkit(c.Request.Context(), t); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	t.Available = t.Quantity // nothing loaned yet
	ok(c, http.StatusCreated, t)
}

// Get serves the single-toolkit read the loan form uses for its
// pre-submit availability re-check.
func (tc *ToolkitController) Get(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	t, err := tc.Repo.FindToolkitByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "toolkit not found")
		return
	}
	ok(c, http.StatusOK, t)
}

func (tc *ToolkitController) List(c *gin.Context) {
	page, size := pageParams(c)
	catID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	res, err := tc.Repo.ListToolkits(c.Request.Context(), db.ListToolkitsQuery{
		Search:     c.Query("search_term"),
		CategoryID: uint(catID),
		Condition:  c.Query("condition"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Toolkits, page, size, res.Total)
}

type toolkitSearchReq struct {
	SearchTerm string `json:"search_term"`
	CategoryID uint   `json:"category_id"`
	Condition  string `json:"condition"`
}

// Search is the POST-body variant of List used by the dashboard's
// filter panel.
func (tc *ToolkitController) Search(c *gin.Context) {
	page, size := pageParams(c)
	var in toolkitSearchReq
	_ = c.ShouldBindJSON(&in)

	res, err := tc.Repo.ListToolkits(c.Request.Context(), db.ListToolkitsQuery{
		Search:     in.SearchTerm,
		CategoryID: in.CategoryID,
		Condition:  in.Condition,
		Page:       page,
		Size:       size,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Toolkits, page, size, res.Total)
}

func (tc *ToolkitController) Update(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	var in toolkitReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := in.validate(); !errs.Valid() {
		failValidation(c, errs)
		return
	}

	t, err := tc.Repo.UpdateToolkit(c.Request.Context(), id, map[string]any{
		"name":           in.Name,
		"sku":            in.SKU,
		"description":    in.Description,
		"quantity":       in.Quantity,
		"unit":           in.Unit,
		"brand":          in.Brand,
		"model":          in.Model,
		"serial_number":  in.SerialNumber,
		"condition":      in.Condition,
		"category_id":    in.CategoryID,
		"purchase_price": in.PurchasePrice,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "toolkit not found")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, t)
}

type stockReq struct {
	Quantity *int `json:"quantity"`
}

// UpdateStock adjusts the total owned quantity only.
func (tc *ToolkitController) UpdateStock(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	var in stockReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Quantity == nil {
		fail(c, http.StatusBadRequest, "quantity is required")
		return
	}
	if *in.Quantity < validation.ToolkitQuantityMin || *in.Quantity > validation.ToolkitQuantityMax {
		failValidation(c, validation.ErrorMap{"quantity": "stock quantity must be between 0 and 9999"})
		return
	}

	t, err := tc.Repo.UpdateToolkitStock(c.Request.Context(), id, *in.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "toolkit not found")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, t)
}

func (tc *ToolkitController) Delete(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	if err := tc.Repo.DeleteToolkit(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrToolkitHasOpenLoans):
			fail(c, http.StatusConflict, "toolkit has open loans")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "toolkit not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
