package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

type CategoryController struct{ *Srv }

func NewCategoryController(s *Srv) *CategoryController { return &CategoryController{Srv: s} }

type categoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (cc *CategoryController) Create(c *gin.Context) {
	var in categoryReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.ValidateCategory(validation.CategoryForm(in)); !errs.Valid() {
		failValidation(c, errs)
		return
	}

	cat := &models.Category{Name: in.Name, Description: in.Description}
	if err := cc.Repo.CreateCategory(c.Request.Context(), cat); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusCreated, cat)
}

func (cc *CategoryController) Get(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	cat, err := cc.Repo.FindCategoryByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "category not found")
		return
	}
	ok(c, http.StatusOK, cat)
}

func (cc *CategoryController) List(c *gin.Context) {
	page, size := pageParams(c)
	res, err := cc.Repo.ListCategories(c.Request.Context(), c.Query("search_term"), page, size)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Categories, page, size, res.Total)
}

// Tree returns the whole catalog. Categories are flat, so this is the
// full ordered list the toolkit form feeds its dropdown from.
func (cc *CategoryController) Tree(c *gin.Context) {
	cats, err := cc.Repo.AllCategories(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, cats)
}

func (cc *CategoryController) Update(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	var in categoryReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.ValidateCategory(validation.CategoryForm(in)); !errs.Valid() {
		failValidation(c, errs)
		return
	}

	cat, err := cc.Repo.UpdateCategory(c.Request.Context(), id, map[string]any{
		"name":        in.Name,
		"description": in.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, cat)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	if err := cc.Repo.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
