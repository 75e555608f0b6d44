package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrCredentialsInvalid = errors.New("invalid username or password")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

type (
	RegisterRequest struct {
		Username  string  `json:"username" validate:"required"`
		Password  string  `json:"password" validate:"required,min=6"`
		Name      string  `json:"name" validate:"omitempty"`
		Email     string  `json:"email" validate:"omitempty,email"`
		Location  string  `json:"location" validate:"omitempty"`
		City      string  `json:"city" validate:"omitempty"`
		Latitude  float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	}

	LoginRequest struct {
		Username   string `json:"username" validate:"required"`
		Password   string `json:"password" validate:"required"`
		RememberMe bool   `json:"remember_me"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		Name      string  `json:"name" validate:"omitempty"`
		Email     string  `json:"email" validate:"omitempty,email"`
		Location  string  `json:"location" validate:"omitempty"`
		City      string  `json:"city" validate:"omitempty"`
		Latitude  float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Username   string    `json:"username"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		Location   string    `json:"location"`
		City       string    `json:"city"`
		Latitude   float64   `json:"latitude"`
		Longitude  float64   `json:"longitude"`
		RememberMe bool      `json:"remember_me"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
