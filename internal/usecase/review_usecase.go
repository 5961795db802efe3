package usecase

import (
	"context"
	"net/http"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	gigRepo    repository.GigRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, gigRepo repository.GigRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		gigRepo:    gigRepo,
	}
}

// Create adds a buyer review and folds its star count into the gig's rating
// aggregate. Sellers cannot review, and a user reviews a gig at most once.
func (uc *ReviewUseCase) Create(ctx context.Context, actorID string, actorIsSeller bool, gigID string, star int, desc string) (*entity.Review, error) {
	if actorIsSeller {
		return nil, errors.Forbidden("Sellers cannot create reviews", nil)
	}

	if star < 1 || star > 5 {
		return nil, errors.BadRequest("Star rating must be between 1 and 5", nil)
	}

	if _, err := uc.gigRepo.GetByID(ctx, gigID); err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.GetByGigAndUser(ctx, gigID, actorID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("CONFLICT", "You have already created a review for this gig", http.StatusConflict, nil)
	}

	review := &entity.Review{
		GigID:  gigID,
		UserID: actorID,
		Star:   star,
		Desc:   desc,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.gigRepo.AddStars(ctx, gigID, star); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListByGig(ctx context.Context, gigID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByGig(ctx, gigID)
}

func (uc *ReviewUseCase) Delete(ctx context.Context, reviewID, actorID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != actorID {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	return uc.reviewRepo.Delete(ctx, reviewID)
}
