package catalog

import (
	"time"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

// DateLayout is the calendar-date format stored on reviews.
const DateLayout = "2006-01-02"

// AddReview returns a copy of entry with a new review appended and the rating
// recomputed from all reviews. The review is stamped with id and the UTC
// calendar date of now. entry itself is left untouched.
func AddReview(entry domain.Software, in domain.ReviewInput, id string, now time.Time) domain.Software {
	out := entry.Clone()
	out.Reviews = append(out.Reviews, domain.Review{
		ID:      id,
		Author:  in.Author,
		Rating:  in.Rating,
		Comment: in.Comment,
		Date:    now.UTC().Format(DateLayout),
	})
	if avg, ok := domain.AverageRating(out.Reviews); ok {
		out.Rating = avg
	}
	return out
}

// RecordDownload returns a copy of entry with its download counter bumped by
// one. Repeated calls are never deduplicated.
func RecordDownload(entry domain.Software) domain.Software {
	out := entry.Clone()
	out.Downloads++
	return out
}
