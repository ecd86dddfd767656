package validators

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"reviewhub/internal/models/request_models"
)

// ContentMinLength is the minimum review body length, counted in runes.
const ContentMinLength = 100

// Mode selects which fields ValidateReview demands.
type Mode int

const (
	// ModeCreate requires every field of the review schema to be present.
	ModeCreate Mode = iota
	// ModePartial only checks fields the form actually carries.
	ModePartial
)

// FieldError names one violated constraint on one field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateReview checks a review form against the field constraints and returns
// every violation found. It is a pure function; nothing is mutated and no
// violation short-circuits the rest.
func ValidateReview(form request_models.ReviewForm, mode Mode) []FieldError {
	var errs []FieldError

	required := mode == ModeCreate

	if form.CompanyName != nil {
		if strings.TrimSpace(*form.CompanyName) == "" {
			errs = append(errs, FieldError{"companyName", "Company name must not be empty"})
		}
	} else if required {
		errs = append(errs, FieldError{"companyName", "Company name is required"})
	}

	if form.ReviewDate != nil {
		if strings.TrimSpace(*form.ReviewDate) == "" {
			errs = append(errs, FieldError{"reviewDate", "Review date must not be empty"})
		}
	} else if required {
		errs = append(errs, FieldError{"reviewDate", "Review date is required"})
	}

	if form.Content != nil {
		if utf8.RuneCountInString(*form.Content) < ContentMinLength {
			errs = append(errs, FieldError{"content", "Review content must be at least " + strconv.Itoa(ContentMinLength) + " characters"})
		}
	} else if required {
		errs = append(errs, FieldError{"content", "Review content is required"})
	}

	if form.WebsiteUrl != nil {
		if !isValidWebsiteUrl(*form.WebsiteUrl) {
			errs = append(errs, FieldError{"websiteUrl", "Please enter a valid website URL"})
		}
	} else if required {
		errs = append(errs, FieldError{"websiteUrl", "Website URL is required"})
	}

	if form.Rating != nil {
		if rating, err := strconv.Atoi(strings.TrimSpace(*form.Rating)); err != nil {
			errs = append(errs, FieldError{"rating", "Rating must be a number"})
		} else if rating < 1 || rating > 5 {
			errs = append(errs, FieldError{"rating", "Rating must be between 1 and 5"})
		}
	} else if required {
		errs = append(errs, FieldError{"rating", "Rating is required"})
	}

	return errs
}

// RatingValue parses a rating the form is known to carry. It assumes
// ValidateReview has already accepted the form.
func RatingValue(form request_models.ReviewForm) int {
	if form.Rating == nil {
		return 0
	}
	rating, _ := strconv.Atoi(strings.TrimSpace(*form.Rating))
	return rating
}

func isValidWebsiteUrl(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
