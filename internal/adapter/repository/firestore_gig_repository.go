package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

type firestoreGigRepository struct {
	client *firestore.Client
}

func NewFirestoreGigRepository(client *firestore.Client) repository.GigRepository {
	return &firestoreGigRepository{
		client: client,
	}
}

func (r *firestoreGigRepository) Create(ctx context.Context, gig *entity.Gig) error {
	if gig.ID == "" {
		gig.ID = uuid.New().String()
	}

	now := time.Now()
	gig.CreatedAt = now
	gig.UpdatedAt = now

	_, err := r.client.Collection("gigs").Doc(gig.ID).Set(ctx, gig)
	if err != nil {
		return errors.Internal("Failed to create gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) GetByID(ctx context.Context, id string) (*entity.Gig, error) {
	doc, err := r.client.Collection("gigs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Gig", err)
		}
		return nil, errors.Internal("Failed to get gig", err)
	}

	var gig entity.Gig
	if err := doc.DataTo(&gig); err != nil {
		return nil, errors.Internal("Failed to parse gig data", err)
	}

	return &gig, nil
}

func (r *firestoreGigRepository) Update(ctx context.Context, gig *entity.Gig) error {
	gig.UpdatedAt = time.Now()

	_, err := r.client.Collection("gigs").Doc(gig.ID).Set(ctx, gig)
	if err != nil {
		return errors.Internal("Failed to update gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gigs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gig", err)
	}

	return nil
}

// List fetches by category in the query and applies price range, search and
// pagination in memory. Search is a plain substring match on the title, so
// it stays index-free.
func (r *firestoreGigRepository) List(ctx context.Context, filter repository.GigFilter, limit, offset int) ([]*entity.Gig, int64, error) {
	query := r.client.Collection("gigs").Query
	if filter.Category != "" {
		query = query.Where("cat", "==", filter.Category)
	}
	if filter.Sort == "sales" {
		query = query.OrderBy("sales", firestore.Desc)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list gigs", err)
	}

	var matched []*entity.Gig
	for _, doc := range docs {
		var gig entity.Gig
		if err := doc.DataTo(&gig); err != nil {
			continue // skip malformed documents
		}
		if filter.MinPrice > 0 && gig.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && gig.Price > filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, &gig)
	}

	total := int64(len(matched))

	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return matched[start:end], total, nil
}

func (r *firestoreGigRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	docs, err := r.client.Collection("gigs").
		Where("userId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list gigs", err)
	}

	var gigs []*entity.Gig
	for _, doc := range docs {
		var gig entity.Gig
		if err := doc.DataTo(&gig); err != nil {
			return nil, errors.Internal("Failed to parse gig data", err)
		}
		gigs = append(gigs, &gig)
	}

	return gigs, nil
}

func (r *firestoreGigRepository) AddStars(ctx context.Context, gigID string, stars int) error {
	_, err := r.client.Collection("gigs").Doc(gigID).Update(ctx, []firestore.Update{
		{Path: "totalStars", Value: firestore.Increment(stars)},
		{Path: "starNumber", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Gig", err)
		}
		return errors.Internal("Failed to update gig rating", err)
	}

	return nil
}
