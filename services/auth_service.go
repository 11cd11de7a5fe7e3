package services

import (
	"os"
	"time"

	"workzen/config"
	"workzen/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	if s := os.Getenv("SECRET_KEY"); s != "" {
		return []byte(s)
	}
	return []byte("workzen-secret-key-2025")
}

// GenerateToken signs an HS256 token carrying the user id and role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(jwtSecret())
}

// SetTokenCookies stores the access token as a session cookie
func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt hash with a plaintext candidate
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

func GetUserByLoginID(loginID string) (models.User, error) {
	var user models.User
	result := config.DB.Where("login_id = ?", loginID).First(&user)
	return user, result.Error
}
