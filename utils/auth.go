package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/models"

	"github.com/dgrijalva/jwt-go"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// HashPassword hashes a password with a random salt, format sha256$salt$hex.
func HashPassword(password string) string {
	saltBytes := make([]byte, 4)
	if _, err := rand.Read(saltBytes); err != nil {
		// deterministic fallback salt
		copy(saltBytes, []byte{0x69, 0xdc, 0x6e, 0xe0})
	}
	return saltedHash(password, hex.EncodeToString(saltBytes))
}

// saltedHash builds the sha256$salt$hex string for the given salt.
func saltedHash(password, salt string) string {
	hash := sha256.Sum256([]byte(password + salt))
	return fmt.Sprintf("sha256$%s$%s", salt, hex.EncodeToString(hash[:]))
}

// VerifyPassword checks a password against a stored sha256$salt$hex value.
func VerifyPassword(password string, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) != 3 || parts[0] != "sha256" {
		return false
	}

	expected := saltedHash(password, parts[1])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(hashedPassword)) == 1
}

// GenerateToken issues a JWT for the user, valid for 30 days.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.SubscriptionType),
		"exp":   time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken parses and validates a JWT.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
