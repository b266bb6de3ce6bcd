// Package controllers holds the Gin handlers, one controller per
// entity, all sharing a Srv with the process dependencies.
package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Arss011/network-toolkit-management-api/app"
	"github.com/Arss011/network-toolkit-management-api/auth"
	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/session"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

type Srv struct {
	Repo   *db.Repo
	Tokens *session.TokenStore
	JWT    *auth.Manager
	Cfg    app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:   db.NewRepo(a.DB),
		Tokens: a.Tokens(),
		JWT:    auth.NewManager(a.Config.JWTSecret, a.Config.SessionTTL),
		Cfg:    a.Config,
	}
}

// --- helpers ---

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, app.H{"success": false, "message": msg})
}

func failValidation(c *gin.Context, errs validation.ErrorMap) {
	c.JSON(http.StatusBadRequest, app.H{
		"success": false,
		"message": "validation failed",
		"errors":  errs,
	})
}

func ok(c *gin.Context, code int, data any) {
	c.JSON(code, app.H{"success": true, "data": data})
}

func okList(c *gin.Context, data any, page, size int, total int64) {
	pages := 0
	if size > 0 {
		pages = int(math.Ceil(float64(total) / float64(size)))
	}
	c.JSON(http.StatusOK, app.H{
		"success":     true,
		"data":        data,
		"page":        page,
		"page_size":   size,
		"total_pages": pages,
		"total_count": total,
	})
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 1000 {
		size = 10
	}
	return page, size
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// actor returns the authenticated caller for audit entries.
func actor(c *gin.Context) (uint, string) {
	uid, _ := c.MustGet("userID").(uint)
	name, _ := c.MustGet("username").(string)
	return uid, name
}
