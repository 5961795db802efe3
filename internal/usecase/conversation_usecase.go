package usecase

import (
	"context"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/internal/infrastructure/ratelimit"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/logger"
)

type ConversationUseCase struct {
	conversationRepo repository.ConversationRepository
	gigRepo          repository.GigRepository
	rateLimiter      *ratelimit.RateLimiter
}

func NewConversationUseCase(conversationRepo repository.ConversationRepository, gigRepo repository.GigRepository, rateLimiter *ratelimit.RateLimiter) *ConversationUseCase {
	return &ConversationUseCase{
		conversationRepo: conversationRepo,
		gigRepo:          gigRepo,
		rateLimiter:      rateLimiter,
	}
}

// compositeID builds the conversation key: the creator's id comes first when
// the creator is a seller, otherwise the counterpart's id does. Identifier
// lookups depend on this ordering.
func compositeID(actorID, counterpartID string, actorIsSeller bool) string {
	if actorIsSeller {
		return actorID + counterpartID
	}
	return counterpartID + actorID
}

func (uc *ConversationUseCase) Create(ctx context.Context, actorID string, actorIsSeller bool, counterpartID string) (*entity.Conversation, error) {
	if allowed, _ := uc.rateLimiter.Allow(actorID, "create_conversation"); !allowed {
		return nil, errors.TooManyRequests("Too many new conversations. Please wait before starting another.")
	}

	if counterpartID == "" {
		return nil, errors.BadRequest("Recipient is required", nil)
	}
	if actorID == counterpartID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	conversation := &entity.Conversation{
		ConversationID: compositeID(actorID, counterpartID, actorIsSeller),
		ReadBySeller:   actorIsSeller,
		ReadByBuyer:    !actorIsSeller,
	}
	if actorIsSeller {
		conversation.SellerID = actorID
		conversation.BuyerID = counterpartID
	} else {
		conversation.SellerID = counterpartID
		conversation.BuyerID = actorID
	}

	if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	logger.Debug("Conversation created: %s", conversation.ConversationID)

	return conversation, nil
}

// MarkRead flips only the caller's role-specific read flag; the
// counterpart's flag is left untouched.
func (uc *ConversationUseCase) MarkRead(ctx context.Context, conversationID string, actorIsSeller bool) (*entity.Conversation, error) {
	if err := uc.conversationRepo.SetReadFlag(ctx, conversationID, actorIsSeller); err != nil {
		return nil, err
	}

	return uc.conversationRepo.GetByConversationID(ctx, conversationID)
}

// GetSingle resolves by storage identifier first and falls back to the
// composite identifier.
func (uc *ConversationUseCase) GetSingle(ctx context.Context, ref string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByStorageID(ctx, ref)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	return uc.conversationRepo.GetByConversationID(ctx, ref)
}

func (uc *ConversationUseCase) List(ctx context.Context, actorID string, actorIsSeller bool) ([]*entity.Conversation, error) {
	if actorIsSeller {
		return uc.conversationRepo.ListBySeller(ctx, actorID)
	}
	return uc.conversationRepo.ListByBuyer(ctx, actorID)
}

// GetByGig resolves the gig's owning seller and returns any existing
// conversation between the actor and that seller in either role assignment.
// A nil conversation with a nil error means no conversation exists yet;
// callers decide whether to create one.
func (uc *ConversationUseCase) GetByGig(ctx context.Context, gigID, actorID string) (*entity.Conversation, error) {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	return uc.conversationRepo.FindByParticipants(ctx, actorID, gig.UserID)
}
