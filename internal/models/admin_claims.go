package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims represents the claims in admin JWT tokens issued by the auth
// service for catalog administration endpoints
type AdminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}
