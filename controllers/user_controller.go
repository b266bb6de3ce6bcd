package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

type userCreateReq struct {
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (uc *UserController) Create(c *gin.Context) {
	var in userCreateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	errs := validation.ValidateUser(validation.UserForm{
		Username:        in.Username,
		FullName:        in.FullName,
		Email:           in.Email,
		Role:            in.Role,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}, true)
	if !errs.Valid() {
		failValidation(c, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to hash password")
		return
	}
	u := &models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusCreated, u)
}

func (uc *UserController) Get(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	ok(c, http.StatusOK, u)
}

func (uc *UserController) List(c *gin.Context) {
	page, size := pageParams(c)
	var isActive *bool
	if v := c.Query("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			isActive = &b
		}
	}
	res, err := uc.Repo.ListUsers(c.Request.Context(), c.Query("search_term"), isActive, page, size)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Users, page, size, res.Total)
}

type userSearchReq struct {
	SearchTerm string `json:"search_term"`
	IsActive   *bool  `json:"is_active"`
}

func (uc *UserController) Search(c *gin.Context) {
	page, size := pageParams(c)
	var in userSearchReq
	_ = c.ShouldBindJSON(&in)

	res, err := uc.Repo.ListUsers(c.Request.Context(), in.SearchTerm, in.IsActive, page, size)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Users, page, size, res.Total)
}

type userUpdateReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
	Password string `json:"password"`
}

// Update edits profile fields. Username is immutable; a supplied
// password replaces the hash; deactivation revokes live sessions.
func (uc *UserController) Update(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	var in userUpdateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}

	errs := validation.ValidateUser(validation.UserForm{
		Username:        existing.Username,
		FullName:        in.FullName,
		Email:           in.Email,
		Role:            in.Role,
		Password:        in.Password,
		ConfirmPassword: in.Password,
	}, false)
	if !errs.Valid() {
		failValidation(c, errs)
		return
	}

	fields := map[string]any{
		"full_name": in.FullName,
		"email":     in.Email,
		"role":      in.Role,
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			fail(c, http.StatusInternalServerError, "failed to hash password")
			return
		}
		fields["password_hash"] = string(hash)
	}

	u, err := uc.Repo.UpdateUser(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, db.ErrProtectedUser) {
			fail(c, http.StatusForbidden, "the admin user cannot be modified")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if in.IsActive != nil && !*in.IsActive {
		_ = uc.Tokens.RevokeAllForUser(c.Request.Context(), id)
	}
	ok(c, http.StatusOK, u)
}

// Delete removes the account and revokes every session it still holds.
func (uc *UserController) Delete(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrProtectedUser):
			fail(c, http.StatusForbidden, "the admin user cannot be deleted")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	_ = uc.Tokens.RevokeAllForUser(c.Request.Context(), id)

	uid, uname := actor(c)
	_, _ = uc.Repo.LogAction(c.Request.Context(), uid, uname, "user.delete", "user", id, nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
