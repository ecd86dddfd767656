package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/models/request_models"
	"reviewhub/internal/reviewquery"
	"reviewhub/internal/services"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List reviews
// @Description Get all reviews; with search/sort/rating/page/pageSize present, returns a filtered page instead
// @Tags Reviews
// @Produce json
// @Param search query string false "Case-insensitive substring over company name and content"
// @Param sort query string false "newest | oldest | rating-high | rating-low | company"
// @Param rating query string false "all or a single rating 1-5" default(all)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(12)
// @Success 200 {object} utils.APIResponse
// @Router /api/reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := r.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !hasQueryParams(c) {
		utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
		return
	}

	// Malformed pipeline parameters degrade to defaults instead of failing.
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	result := reviewquery.Run(reviews, reviewquery.Params{
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Rating:   c.Query("rating"),
		Page:     page,
		PageSize: pageSize,
	})

	utils.RespondSuccess(c, result, "Reviews fetched successfully")
}

// GetReviewByID godoc
// @Summary Get one review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reviews/{id} [get]
func (r *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	review, err := r.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review fetched successfully")
}

// CreateReview godoc
// @Summary Create a review
// @Description Admin only. Multipart form with the review fields and an optional image file
// @Tags Reviews
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	form := reviewFormFromRequest(c)

	review, err := r.reviewService.CreateReview(c.Request.Context(), middleware.CurrentIdentity(c), form, imageFromRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// UpdateReview godoc
// @Summary Update a review
// @Description Admin only. Multipart form; absent fields keep their stored values
// @Tags Reviews
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reviews/{id} [put]
func (r *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	form := reviewFormFromRequest(c)

	review, err := r.reviewService.UpdateReview(c.Request.Context(), middleware.CurrentIdentity(c), id, form, imageFromRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Authenticated callers only
// @Tags Reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := r.reviewService.DeleteReview(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func reviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review ID")
		return 0, false
	}
	return uint(id), true
}

func hasQueryParams(c *gin.Context) bool {
	query := c.Request.URL.Query()
	for _, key := range []string{"search", "sort", "rating", "page", "pageSize"} {
		if query.Has(key) {
			return true
		}
	}
	return false
}

func reviewFormFromRequest(c *gin.Context) request_models.ReviewForm {
	var form request_models.ReviewForm
	if value, ok := c.GetPostForm("companyName"); ok {
		form.CompanyName = &value
	}
	if value, ok := c.GetPostForm("reviewDate"); ok {
		form.ReviewDate = &value
	}
	if value, ok := c.GetPostForm("content"); ok {
		form.Content = &value
	}
	if value, ok := c.GetPostForm("websiteUrl"); ok {
		form.WebsiteUrl = &value
	}
	if value, ok := c.GetPostForm("rating"); ok {
		form.Rating = &value
	}
	return form
}

func imageFromRequest(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
