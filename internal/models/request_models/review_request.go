package request_models

// ReviewForm carries the review fields of a multipart create/update request.
// Nil means the form did not include the field at all, which is how partial
// updates are told apart from explicit empty values.
type ReviewForm struct {
	CompanyName *string
	ReviewDate  *string
	Content     *string
	WebsiteUrl  *string
	Rating      *string
	ImageUrl    *string
}

// SetImageUrl records the stored reference of an ingested upload.
func (f *ReviewForm) SetImageUrl(url string) {
	f.ImageUrl = &url
}
