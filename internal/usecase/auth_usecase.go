package usecase

import (
	"context"
	"regexp"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/internal/infrastructure/auth"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Image       string
	Country     string
	Phone       string
	Description string
	IsSeller    bool
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Usernames are displayed publicly; email-shaped ones leak addresses.
	if emailPattern.MatchString(input.Username) {
		return nil, errors.BadRequest("Username cannot be an email address. Please use a different username.", nil)
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, errors.Conflict("username", input.Username)
	} else if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("email", input.Email)
	} else if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Username:    input.Username,
		Email:       input.Email,
		Password:    hash,
		Image:       input.Image,
		Country:     input.Country,
		Phone:       input.Phone,
		Description: input.Description,
		IsSeller:    input.IsSeller,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(user.ID, user.IsSeller)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("User registered: %s", user.ID)

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("User", nil)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, errors.BadRequest("Wrong password or username", nil)
	}

	token, err := uc.tokens.Generate(user.ID, user.IsSeller)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
