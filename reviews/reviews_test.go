package reviews

import (
	"testing"

	"bazario/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(userID string, rating float64, comment string) models.Review {
	return models.Review{
		User:    models.OrderUser{UserID: userID},
		Rating:  rating,
		Comment: comment,
	}
}

func TestUpsertReview_AppendsNewAuthor(t *testing.T) {
	reviews := []models.Review{review("u1", 4, "good")}

	reviews = upsertReview(reviews, review("u2", 2, "meh"))

	require.Len(t, reviews, 2)
	assert.Equal(t, "u2", reviews[1].User.UserID)
}

func TestUpsertReview_ReplacesSameAuthor(t *testing.T) {
	reviews := []models.Review{
		review("u1", 4, "good"),
		review("u2", 2, "meh"),
	}

	reviews = upsertReview(reviews, review("u1", 5, "actually great"))

	require.Len(t, reviews, 2)
	assert.Equal(t, 5.0, reviews[0].Rating)
	assert.Equal(t, "actually great", reviews[0].Comment)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, averageRating(nil))
	assert.Equal(t, 4.0, averageRating([]models.Review{review("u1", 4, "")}))
	assert.Equal(t, 3.0, averageRating([]models.Review{
		review("u1", 4, ""),
		review("u2", 2, ""),
	}))
}

func TestUpsertThenAverage(t *testing.T) {
	var reviews []models.Review
	reviews = upsertReview(reviews, review("u1", 5, ""))
	reviews = upsertReview(reviews, review("u2", 1, ""))
	assert.Equal(t, 3.0, averageRating(reviews))

	// same user re-reviews: replaced, not appended
	reviews = upsertReview(reviews, review("u2", 3, ""))
	require.Len(t, reviews, 2)
	assert.Equal(t, 4.0, averageRating(reviews))
}
