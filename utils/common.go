package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"regexp"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var phonePattern = regexp.MustCompile(`^[+()\d][\d\s().\-]{6,19}$`)

// IsValidEmail reports whether the address parses per RFC 5322.
func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsValidURL reports whether the value is an absolute http(s) URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidPhone loose phone format check
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// LoginUser the authenticated caller extracted from the JWT claims
type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// GetUser reads the authenticated user from the gin context.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, CreateUnauthorizedError()
	}

	var claims map[string]interface{}
	switch v := currentUser.(type) {
	case jwt.MapClaims:
		claims = make(map[string]interface{})
		for key, val := range v {
			claims[key] = val
		}
	case map[string]interface{}:
		claims = v
	default:
		data, err := json.Marshal(currentUser)
		if err != nil {
			return nil, fmt.Errorf("marshal user claims: %w", err)
		}
		if err := json.Unmarshal(data, &claims); err != nil {
			return nil, fmt.Errorf("unmarshal user claims: %w", err)
		}
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id claim")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &LoginUser{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

// PaginatedResponse writes a page of data with pagination metadata.
func PaginatedResponse(c *gin.Context, data interface{}, total int64, page int64, limit int64) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
			"pages": (total + limit - 1) / limit,
		},
	})
}
