package reviewquery

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"reviewhub/internal/models/db_models"
)

// DefaultPageSize matches the listing page of the web client.
const DefaultPageSize = 12

// RatingAll disables the rating filter.
const RatingAll = "all"

// Sort keys. Anything else leaves the input order untouched.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortRatingHigh = "rating-high"
	SortRatingLow  = "rating-low"
	SortCompany    = "company"
)

// Params describes one listing query. Zero values fall back to defaults:
// empty Search matches everything, empty Rating means "all", Page < 1 becomes
// 1 and PageSize < 1 becomes DefaultPageSize.
type Params struct {
	Search   string
	Sort     string
	Rating   string
	Page     int
	PageSize int
}

// Result is one page of a filtered listing. Total counts every review that
// survived filtering, not just the returned page.
type Result struct {
	Reviews  []db_models.Review `json:"reviews"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

var companyCollator = collate.New(language.English, collate.Loose)

// Run filters, sorts and paginates a review set. It is a pure function of its
// arguments: the input slice is never mutated, malformed parameters degrade to
// defaults, and an out-of-range page yields an empty page rather than an error.
func Run(reviews []db_models.Review, p Params) Result {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.Rating == "" {
		p.Rating = RatingAll
	}

	filtered := make([]db_models.Review, 0, len(reviews))
	search := strings.ToLower(strings.TrimSpace(p.Search))
	for _, review := range reviews {
		if p.Rating != RatingAll && strconv.Itoa(review.Rating) != p.Rating {
			continue
		}
		if search != "" && !matchesSearch(review, search) {
			continue
		}
		filtered = append(filtered, review)
	}

	sortReviews(filtered, p.Sort)

	total := len(filtered)
	start := (p.Page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	return Result{
		Reviews:  filtered[start:end],
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func matchesSearch(review db_models.Review, search string) bool {
	return strings.Contains(strings.ToLower(review.CompanyName), search) ||
		strings.Contains(strings.ToLower(review.Content), search)
}

func sortReviews(reviews []db_models.Review, key string) {
	switch key {
	case SortNewest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return sortTime(reviews[i].CreatedAt) > sortTime(reviews[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return sortTime(reviews[i].CreatedAt) < sortTime(reviews[j].CreatedAt)
		})
	case SortRatingHigh:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	case SortRatingLow:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating < reviews[j].Rating
		})
	case SortCompany:
		sort.SliceStable(reviews, func(i, j int) bool {
			return companyCollator.CompareString(reviews[i].CompanyName, reviews[j].CompanyName) < 0
		})
	}
}

// sortTime maps a missing timestamp to the epoch so unstamped reviews sort
// after everything real under "newest".
func sortTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
