package usecase

import (
	"context"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

type UserUpdateInput struct {
	Image       string
	Country     string
	Phone       string
	Description string
}

func (uc *UserUseCase) Update(ctx context.Context, userID, actorID string, input UserUpdateInput) (*entity.User, error) {
	if userID != actorID {
		return nil, errors.Forbidden("You can only update your own account", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Image = input.Image
	user.Country = input.Country
	user.Phone = input.Phone
	user.Description = input.Description

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, userID, actorID string) error {
	if userID != actorID {
		return errors.Forbidden("You can only delete your own account", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return uc.userRepo.Delete(ctx, userID)
}
