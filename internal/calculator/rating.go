package calculator

import "fmt"

const (
	MinRating = 1
	MaxRating = 5
)

// NextCleanliness folds one more rating into a running cleanliness average.
// Based on: new = round((old × count + rating) / (count + 1), 1)
func NextCleanliness(old float64, count int, rating int) (float64, error) {
	if rating < MinRating || rating > MaxRating {
		return 0, fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	if count < 0 {
		return 0, fmt.Errorf("review count cannot be negative")
	}

	total := old*float64(count) + float64(rating)
	return RoundTenth(total / float64(count+1)), nil
}
