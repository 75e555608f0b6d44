package user

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/internal/utils/mailing"
	"GreenCompost-Backend/pkg/jwt"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenDuration = 15 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest, appURL string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GetAllUsers(ctx context.Context) ([]*domain.UserResponse, error)
		RememberedUser(ctx context.Context) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		validate       *validator.Validate
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, validate *validator.Validate) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		validate:       validate,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	if req.Email != "" {
		if err := s.validate.Var(req.Email, "email"); err != nil {
			return nil, domain.ErrInvalidEmail
		}
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, domain.ErrInvalidCoordinates
	}

	existing, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	if req.Email != "" {
		existing, err = s.userRepository.GetUserByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:  req.Username,
		Password:  string(hashed),
		Name:      req.Name,
		Email:     req.Email,
		Location:  req.Location,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now(),
	}

	if err := s.userRepository.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	if err := s.userRepository.SetRememberedUser(ctx, user.Username, req.RememberMe); err != nil {
		return nil, err
	}
	user.RememberMe = req.RememberMe

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return &domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if req.Email != "" {
		if err := s.validate.Var(req.Email, "email"); err != nil {
			return domain.ErrInvalidEmail
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Location != "" {
		user.Location = req.Location
		user.City = ""
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Latitude != 0 || req.Longitude != 0 {
		if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
			return domain.ErrInvalidCoordinates
		}
		user.Latitude = req.Latitude
		user.Longitude = req.Longitude
	}

	return s.userRepository.SaveUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest, appURL string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"username": user.Username},
		resetTokenDuration,
	)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", appURL, token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click the link below to reset your GreenCompost password. The link expires in 15 minutes.</p><p><a href=%q>Reset password</a></p>",
		user.Username, resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your GreenCompost password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdateUserPassword(ctx, username, string(hashed))
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, user := range users {
		res := toUserResponse(user)
		result = append(result, &res)
	}
	return result, nil
}

func (s *userService) RememberedUser(ctx context.Context) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetRememberedUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Name:       user.Name,
		Email:      user.Email,
		Location:   user.Location,
		City:       user.CityName(),
		Latitude:   user.Latitude,
		Longitude:  user.Longitude,
		RememberMe: user.RememberMe,
		CreatedAt:  user.CreatedAt,
	}
}
