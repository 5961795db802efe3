package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/domain/repository"
	"freelancehub/pkg/errors"
)

func sampleGigInput(title string) GigInput {
	return GigInput{
		Title:        title,
		Description:  "Full description",
		ShortTitle:   "Short",
		ShortDesc:    "Short description",
		Category:     "design",
		Price:        100,
		Cover:        "https://cdn.example.com/cover.png",
		DeliveryTime: 3,
	}
}

func TestCreateGigRequiresSeller(t *testing.T) {
	uc := NewGigUseCase(newMemoryGigRepository())

	_, err := uc.Create(context.Background(), "buyer1", false, sampleGigInput("Logo"))
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	gig, err := uc.Create(context.Background(), "seller1", true, sampleGigInput("Logo"))
	require.NoError(t, err)
	assert.Equal(t, "seller1", gig.UserID)
}

func TestUpdateGigOwnership(t *testing.T) {
	uc := NewGigUseCase(newMemoryGigRepository())

	gig, err := uc.Create(context.Background(), "seller1", true, sampleGigInput("Logo"))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), gig.ID, "seller2", sampleGigInput("Stolen"))
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.Update(context.Background(), gig.ID, "seller1", sampleGigInput("Renamed"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteGigOwnership(t *testing.T) {
	uc := NewGigUseCase(newMemoryGigRepository())

	gig, err := uc.Create(context.Background(), "seller1", true, sampleGigInput("Logo"))
	require.NoError(t, err)

	err = uc.Delete(context.Background(), gig.ID, "seller2")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.Delete(context.Background(), gig.ID, "seller1"))

	_, err = uc.GetByID(context.Background(), gig.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListGigsWithFilter(t *testing.T) {
	uc := NewGigUseCase(newMemoryGigRepository())

	input := sampleGigInput("Logo design")
	input.Price = 50
	_, err := uc.Create(context.Background(), "seller1", true, input)
	require.NoError(t, err)

	input = sampleGigInput("Banner design")
	input.Price = 200
	input.Category = "marketing"
	_, err = uc.Create(context.Background(), "seller1", true, input)
	require.NoError(t, err)

	gigs, total, err := uc.List(context.Background(), repository.GigFilter{Category: "design"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, gigs, 1)
	assert.Equal(t, "Logo design", gigs[0].Title)

	gigs, _, err = uc.List(context.Background(), repository.GigFilter{MinPrice: 100}, 20, 0)
	require.NoError(t, err)
	require.Len(t, gigs, 1)
	assert.Equal(t, "Banner design", gigs[0].Title)
}
