package user

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/internal/utils"
	"GreenCompost-Backend/pkg/jwt"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (r *fakeUserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepository) UpdateUserPassword(ctx context.Context, username string, password string) error {
	if user, ok := r.users[username]; ok {
		user.Password = password
	}
	return nil
}

func (r *fakeUserRepository) SetRememberedUser(ctx context.Context, username string, remember bool) error {
	if remember {
		for _, user := range r.users {
			user.RememberMe = false
		}
	}
	if user, ok := r.users[username]; ok {
		user.RememberMe = remember
	}
	return nil
}

func (r *fakeUserRepository) GetRememberedUser(ctx context.Context) (*entities.User, error) {
	for _, user := range r.users {
		if user.RememberMe {
			return user, nil
		}
	}
	return nil, nil
}

func newTestUserService(repo *fakeUserRepository) UserService {
	utils.InitValidator()
	return NewUserService(repo, jwt.NewJWTService(), utils.Validate)
}

func TestRegisterEmailValidation(t *testing.T) {
	svc := newTestUserService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "aoife",
		Password: "secret123",
		Email:    "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "aoife",
		Password: "secret123",
		Email:    "a@b.co",
		Location: "Dublin, Ireland",
	})
	require.NoError(t, err)
	assert.Equal(t, "aoife", res.Username)
	assert.Equal(t, "Dublin", res.City)
}

func TestRegisterDuplicateChecks(t *testing.T) {
	svc := newTestUserService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "aoife", Password: "secret123", Email: "aoife@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Username: "aoife", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Username: "liam", Password: "secret123", Email: "AOIFE@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterCoordinateRange(t *testing.T) {
	svc := newTestUserService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "aoife", Password: "secret123", Latitude: 91,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
}

func TestLoginAndRememberMe(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "aoife", Password: "secret123"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "liam", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "aoife", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "aoife", Password: "secret123", RememberMe: true})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.User.RememberMe)

	// Remembering liam forgets aoife; at most one user holds the flag.
	_, err = svc.Login(ctx, domain.LoginRequest{Username: "liam", Password: "secret123", RememberMe: true})
	require.NoError(t, err)

	remembered, err := svc.RememberedUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "liam", remembered.Username)
	assert.False(t, repo.users["aoife"].RememberMe)
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "aoife", Password: "secret123"})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService()
	token, err := jwtService.GenerateTokenForgetPassword(map[string]any{"username": "aoife"}, resetTokenDuration)
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, NewPassword: "newsecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "aoife", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "aoife", Password: "newsecret"})
	assert.NoError(t, err)
}

func TestResetPasswordBadToken(t *testing.T) {
	svc := newTestUserService(newFakeUserRepository())

	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token: "garbage", NewPassword: "newsecret",
	})
	assert.Error(t, err)
}
