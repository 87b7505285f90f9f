package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims for an authenticated user.
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
