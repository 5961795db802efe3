package usecase

import (
	"context"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

type GigUseCase struct {
	gigRepo repository.GigRepository
}

func NewGigUseCase(gigRepo repository.GigRepository) *GigUseCase {
	return &GigUseCase{
		gigRepo: gigRepo,
	}
}

type GigInput struct {
	Title          string
	Description    string
	ShortTitle     string
	ShortDesc      string
	Category       string
	Price          float64
	Cover          string
	Images         []string
	DeliveryTime   int
	RevisionNumber int
	Features       []string
}

func (uc *GigUseCase) Create(ctx context.Context, sellerID string, isSeller bool, input GigInput) (*entity.Gig, error) {
	if !isSeller {
		return nil, errors.Forbidden("Only sellers can create gigs", nil)
	}

	gig := &entity.Gig{
		UserID:         sellerID,
		Title:          input.Title,
		Description:    input.Description,
		ShortTitle:     input.ShortTitle,
		ShortDesc:      input.ShortDesc,
		Category:       input.Category,
		Price:          input.Price,
		Cover:          input.Cover,
		Images:         input.Images,
		DeliveryTime:   input.DeliveryTime,
		RevisionNumber: input.RevisionNumber,
		Features:       input.Features,
	}

	if err := uc.gigRepo.Create(ctx, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

func (uc *GigUseCase) GetByID(ctx context.Context, id string) (*entity.Gig, error) {
	return uc.gigRepo.GetByID(ctx, id)
}

func (uc *GigUseCase) List(ctx context.Context, filter repository.GigFilter, limit, offset int) ([]*entity.Gig, int64, error) {
	return uc.gigRepo.List(ctx, filter, limit, offset)
}

func (uc *GigUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	return uc.gigRepo.ListBySeller(ctx, sellerID)
}

func (uc *GigUseCase) Update(ctx context.Context, gigID, actorID string, input GigInput) (*entity.Gig, error) {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	if gig.UserID != actorID {
		return nil, errors.Forbidden("You can only update your own gigs", nil)
	}

	gig.Title = input.Title
	gig.Description = input.Description
	gig.ShortTitle = input.ShortTitle
	gig.ShortDesc = input.ShortDesc
	gig.Category = input.Category
	gig.Price = input.Price
	gig.Cover = input.Cover
	gig.Images = input.Images
	gig.DeliveryTime = input.DeliveryTime
	gig.RevisionNumber = input.RevisionNumber
	gig.Features = input.Features

	if err := uc.gigRepo.Update(ctx, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

func (uc *GigUseCase) Delete(ctx context.Context, gigID, actorID string) error {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return err
	}

	if gig.UserID != actorID {
		return errors.Forbidden("You can only delete your own gigs", nil)
	}

	return uc.gigRepo.Delete(ctx, gigID)
}
