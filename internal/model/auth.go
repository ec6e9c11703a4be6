package model

import "github.com/golang-jwt/jwt/v5"

// CounselorClaims are JWT claims for counselor authentication
type CounselorClaims struct {
	CounselorID string `json:"counselorId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for counselor login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token       string `json:"token"`
	CounselorID string `json:"counselorId"`
}
