package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

// Conversations are keyed by their composite identifier, so creating the
// same composite id twice fails at the document layer. The storage id lives
// in the "id" field and is resolved by query.
type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	_, err := r.client.Collection("conversations").Doc(conversation.ConversationID).Create(ctx, conversation)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("conversation", conversation.ConversationID)
		}
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) GetByStorageID(ctx context.Context, id string) (*entity.Conversation, error) {
	iter := r.client.Collection("conversations").Where("id", "==", id).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Conversation", nil)
		}
		return nil, errors.Internal("Failed to query conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) GetByConversationID(ctx context.Context, conversationID string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(conversationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Conversation, error) {
	return r.list(ctx, "sellerId", sellerID)
}

func (r *firestoreConversationRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Conversation, error) {
	return r.list(ctx, "buyerId", buyerID)
}

func (r *firestoreConversationRepository) list(ctx context.Context, field, value string) ([]*entity.Conversation, error) {
	docs, err := r.client.Collection("conversations").
		Where(field, "==", value).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list conversations", err)
	}

	var conversations []*entity.Conversation
	for _, doc := range docs {
		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			return nil, errors.Internal("Failed to parse conversation data", err)
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, nil
}

func (r *firestoreConversationRepository) FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error) {
	pairs := [][2]string{{userA, userB}, {userB, userA}}

	for _, pair := range pairs {
		iter := r.client.Collection("conversations").
			Where("sellerId", "==", pair[0]).
			Where("buyerId", "==", pair[1]).
			Limit(1).
			Documents(ctx)

		doc, err := iter.Next()
		if err == iterator.Done {
			continue
		}
		if err != nil {
			return nil, errors.Internal("Failed to query conversation", err)
		}

		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			return nil, errors.Internal("Failed to parse conversation data", err)
		}
		return &conversation, nil
	}

	return nil, nil
}

func (r *firestoreConversationRepository) SetReadFlag(ctx context.Context, conversationID string, forSeller bool) error {
	field := "readByBuyer"
	if forSeller {
		field = "readBySeller"
	}

	_, err := r.client.Collection("conversations").Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: field, Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) SetReadFlags(ctx context.Context, conversationID string, readBySeller, readByBuyer bool) error {
	_, err := r.client.Collection("conversations").Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: "readBySeller", Value: readBySeller},
		{Path: "readByBuyer", Value: readByBuyer},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) UpdateSummary(ctx context.Context, conversationID string, readBySeller, readByBuyer bool, lastMessage string) error {
	_, err := r.client.Collection("conversations").Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: "readBySeller", Value: readBySeller},
		{Path: "readByBuyer", Value: readByBuyer},
		{Path: "lastMessage", Value: lastMessage},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update conversation summary", err)
	}

	return nil
}
