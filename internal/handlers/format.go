// internal/handlers/format.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annuaire-ia/backend/internal/models"
	"github.com/annuaire-ia/backend/internal/services"
	"github.com/annuaire-ia/backend/internal/utils"
)

// Response shapes assembled for the page renderers. Cards back the list,
// category and tag pages; the detail shape backs the tool page.

type ToolCard struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Category     string   `json:"category,omitempty"`
	CategorySlug string   `json:"categorySlug,omitempty"`
	Tags         []string `json:"tags"`
}

type CategoryRef struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Slug           string       `json:"slug"`
	ParentCategory *CategoryRef `json:"parentCategory,omitempty"`
}

type FeatureView struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	OrderPosition int    `json:"orderPosition"`
}

type UseCaseView struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	OrderPosition int    `json:"orderPosition"`
}

type ReviewView struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
	IsVerified bool      `json:"isVerified"`
}

type AudienceView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ToolDetail struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Description     string             `json:"description"`
	LongDescription string             `json:"longDescription"`
	Logo            string             `json:"logo"`
	Image           string             `json:"image"`
	Rating          float64            `json:"rating"`
	ReviewCount     int                `json:"reviewCount"`
	Pricing         models.PricingType `json:"pricing"`
	PriceDetails    string             `json:"priceDetails"`
	Website         string             `json:"website"`
	SocialMedia     SocialMedia        `json:"socialMedia"`
	LastUpdated     *time.Time         `json:"lastUpdated"`
	Category        CategoryRef        `json:"category"`
	Features        []FeatureView      `json:"features"`
	UseCases        []UseCaseView      `json:"useCases"`
	Reviews         []ReviewView       `json:"reviews"`
	TargetAudiences []AudienceView     `json:"targetAudiences"`
	Tags            []string           `json:"tags"`
}

func formatToolCard(tool *models.Tool) ToolCard {
	card := ToolCard{
		ID:          tool.ID,
		Name:        tool.Name,
		Slug:        tool.Slug,
		Description: tool.ShortDescription,
		Image:       tool.ImageURL,
		Rating:      tool.Rating,
		Tags:        tagNames(tool.ToolTags),
	}
	if tool.Category.ID != 0 {
		card.Category = tool.Category.Name
		card.CategorySlug = tool.Category.Slug
	}
	return card
}

func formatToolCards(tools []models.Tool) []ToolCard {
	cards := make([]ToolCard, 0, len(tools))
	for i := range tools {
		cards = append(cards, formatToolCard(&tools[i]))
	}
	return cards
}

func formatToolDetail(tool *models.Tool) ToolDetail {
	detail := ToolDetail{
		ID:              tool.ID,
		Name:            tool.Name,
		Slug:            tool.Slug,
		Description:     tool.ShortDescription,
		LongDescription: tool.LongDescription,
		Logo:            tool.LogoURL,
		Image:           tool.ImageURL,
		Rating:          tool.Rating,
		ReviewCount:     tool.ReviewCount,
		Pricing:         tool.PricingType,
		PriceDetails:    tool.PriceDetails,
		Website:         tool.WebsiteURL,
		SocialMedia: SocialMedia{
			Twitter:   tool.TwitterURL,
			Linkedin:  tool.LinkedinURL,
			Instagram: tool.InstagramURL,
		},
		LastUpdated: tool.LastUpdated,
		Category: CategoryRef{
			ID:   tool.Category.ID,
			Name: tool.Category.Name,
			Slug: tool.Category.Slug,
		},
		Features:        make([]FeatureView, 0, len(tool.Features)),
		UseCases:        make([]UseCaseView, 0, len(tool.UseCases)),
		Reviews:         make([]ReviewView, 0, len(tool.Reviews)),
		TargetAudiences: make([]AudienceView, 0, len(tool.ToolAudiences)),
		Tags:            tagNames(tool.ToolTags),
	}

	if tool.Category.Parent != nil {
		detail.Category.ParentCategory = &CategoryRef{
			ID:   tool.Category.Parent.ID,
			Name: tool.Category.Parent.Name,
			Slug: tool.Category.Parent.Slug,
		}
	}

	for _, f := range tool.Features {
		detail.Features = append(detail.Features, FeatureView{
			ID:            f.ID,
			Title:         f.Title,
			Description:   f.Description,
			OrderPosition: f.OrderPosition,
		})
	}
	for _, u := range tool.UseCases {
		detail.UseCases = append(detail.UseCases, UseCaseView{
			ID:            u.ID,
			Title:         u.Title,
			Description:   u.Description,
			Image:         u.ImageURL,
			OrderPosition: u.OrderPosition,
		})
	}
	for _, r := range tool.Reviews {
		detail.Reviews = append(detail.Reviews, ReviewView{
			ID:         r.ID,
			Name:       r.UserName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Date:       r.ReviewDate,
			IsVerified: r.IsVerified,
		})
	}
	for _, ta := range tool.ToolAudiences {
		detail.TargetAudiences = append(detail.TargetAudiences, AudienceView{
			ID:          ta.Audience.ID,
			Name:        ta.Audience.Name,
			Description: ta.Description,
		})
	}

	return detail
}

func tagNames(toolTags []models.ToolTag) []string {
	names := make([]string, 0, len(toolTags))
	for _, tt := range toolTags {
		names = append(names, tt.Tag.Name)
	}
	return names
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequestResponse(c, validationErr.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
