package authControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// googleProfile is the documented subset of the tokeninfo response we
// rely on. The provider is treated as a black box behind this shape.
type googleProfile struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Audience   string `json:"aud"`
}

func verifyGoogleIDToken(idToken string) (*googleProfile, error) {
	var profile googleProfile
	resp, err := resty.New().SetTimeout(10 * time.Second).R().
		SetQueryParam("id_token", idToken).
		SetResult(&profile).
		Get(tokeninfoURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo rejected token with status %d", resp.StatusCode())
	}
	if profile.Sub == "" || profile.Email == "" {
		return nil, errors.New("tokeninfo response missing subject or email")
	}
	return &profile, nil
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// POST /api/auth/google
//
// Fetch-or-create: the first Google sign-in creates the account, later
// ones refresh the profile. An existing password account with the same
// email gets its Google identity linked rather than duplicated.
func GoogleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GoogleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		profile, err := verifyGoogleIDToken(input.IDToken)
		if err != nil {
			log.Println("google token verification failed:", err)
			respondError(c, http.StatusUnauthorized, "Invalid Google ID token")
			return
		}

		email := strings.ToLower(profile.Email)
		now := time.Now()

		var user models.User
		err = db.Where("google_id = ? OR email = ?", profile.Sub, email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Email:           email,
				FirstName:       profile.GivenName,
				LastName:        profile.FamilyName,
				Role:            assignRole(email, ""),
				GoogleID:        profile.Sub,
				IsEmailVerified: true,
				LastLoginAt:     now,
				Cart:            &models.Cart{},
			}
			if err := db.Create(&user).Error; err != nil {
				log.Println("google user creation failed:", err)
				respondError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
		case err == nil:
			updates := map[string]interface{}{
				"google_id":     profile.Sub,
				"first_name":    profile.GivenName,
				"last_name":     profile.FamilyName,
				"last_login_at": now,
			}
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				log.Println("google profile update failed:", err)
				respondError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
			user.GoogleID = profile.Sub
			user.LastLoginAt = now
		default:
			log.Println("google user lookup failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		tokens, err := IssueTokenPair(user)
		if err != nil {
			log.Println("token generation failed:", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(c, http.StatusOK, gin.H{"user": user, "tokens": tokens})
	}
}
