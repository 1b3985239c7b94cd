package authControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost = 12

	// Accounts registered under the company domain get admin.
	adminEmailDomain = "bundleup.com"

	msgInvalidCredentials = "Invalid credentials"
	msgGoogleOnlyAccount  = "This account uses Google sign-in. Please sign in with Google."
	msgEmailTaken         = "An account with this email already exists"
)

func respondData(c *gin.Context, status int, data gin.H) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func assignRole(email, requested string) models.Role {
	at := strings.LastIndex(email, "@")
	if at >= 0 && strings.EqualFold(email[at+1:], adminEmailDomain) {
		return models.RoleAdmin
	}
	return models.ParseRole(requested)
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, msgEmailTaken)
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("register lookup failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			log.Println("password hashing failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		user := models.User{
			Email:        email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Role:         assignRole(email, input.Role),
			CompanyName:  input.CompanyName,
			PasswordHash: string(hash),
			LastLoginAt:  time.Now(),
			Cart:         &models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			// Two registrations can race past the lookup above; the
			// unique index on email catches the loser at insert time.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, http.StatusConflict, msgEmailTaken)
				return
			}
			log.Println("user creation failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		tokens, err := IssueTokenPair(user)
		if err != nil {
			log.Println("token generation failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(c, http.StatusCreated, gin.H{"user": user, "tokens": tokens})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
		if err != nil {
			// Same message as a bad password, to avoid account enumeration.
			respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		// OAuth-only accounts have no password to compare against.
		if user.PasswordHash == "" {
			respondError(c, http.StatusUnauthorized, msgGoogleOnlyAccount)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		now := time.Now()
		if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
			log.Println("last login update failed:", err)
		}
		user.LastLoginAt = now

		tokens, err := IssueTokenPair(user)
		if err != nil {
			log.Println("token generation failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(c, http.StatusOK, gin.H{"user": user, "tokens": tokens})
	}
}

// POST /api/auth/refresh
//
// Issues a fresh access token. The refresh token is not rotated; the
// client keeps using the one it already holds.
func Refresh(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		claims, err := VerifyToken(input.RefreshToken, TokenTypeRefresh)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid refresh token")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid refresh token")
			return
		}

		access, err := SignToken(user, TokenTypeAccess)
		if err != nil {
			log.Println("token generation failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(c, http.StatusOK, gin.H{"accessToken": access})
	}
}
