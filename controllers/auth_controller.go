package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arss011/network-toolkit-management-api/app"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the password and issues a bearer token, registering its
// jti in redis so it can be revoked later.
func (ac *AuthController) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := ac.Repo.FindUserByUsername(c.Request.Context(), in.Username)
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if !u.IsActive {
		fail(c, http.StatusUnauthorized, "account is inactive")
		return
	}

	token, jti, err := ac.JWT.Issue(u)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	if err := ac.Tokens.Create(c.Request.Context(), jti, u.ID); err != nil {
		fail(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	c.JSON(http.StatusOK, app.H{
		"success": true,
		"data":    app.H{"user": u, "token": token},
	})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	uid, _ := actor(c)
	u, err := ac.Repo.FindUserByID(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	ok(c, http.StatusOK, u)
}

// Logout revokes the presented token.
func (ac *AuthController) Logout(c *gin.Context) {
	if jti, okv := c.Get("jti"); okv {
		_ = ac.Tokens.Delete(c.Request.Context(), jti.(string))
	}
	c.JSON(http.StatusOK, app.H{"success": true})
}
