package handlers

import (
	"net/http"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a API) Login(c *gin.Context) {
	if a.Users.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "transient", "account store unavailable")
		return
	}
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, hash, err := a.Users.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
		return
	}

	token, err := a.signToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/register
func (a API) Register(c *gin.Context) {
	if a.Users.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "transient", "account store unavailable")
		return
	}
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "email: required")
		return
	}
	if len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "validation_error", "password: must be at least 8 characters")
		return
	}

	taken, err := a.Users.EmailTaken(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "conflict", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		Role:  "user",
	}
	if err := a.Users.Insert(user, string(hash)); err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := a.signToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (a API) signToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(a.Env.JWTSecret))
}
