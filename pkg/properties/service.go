package properties

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/property"
)

// Service handles property listing operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new property service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreatePropertyRequest represents a request to create a listing. The slug
// arrives pre-derived from the title by the caller.
type CreatePropertyRequest struct {
	Title           string   `json:"title" validate:"required,min=1"`
	Slug            string   `json:"slug" validate:"required,min=1"`
	Address         string   `json:"address" validate:"required,min=1"`
	City            string   `json:"city" validate:"required,min=1"`
	Country         string   `json:"country" validate:"required,min=1"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Status          string   `json:"status,omitempty" validate:"omitempty,oneof=active under_contract sold off_market"`
	Published       bool     `json:"published"`
	MainImageURL    string   `json:"main_image_url,omitempty"`
	Gallery         string   `json:"gallery,omitempty"`
	Beds            *int     `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Baths           *int     `json:"baths,omitempty" validate:"omitempty,gte=0"`
	AreaSqm         *float64 `json:"area_sqm,omitempty" validate:"omitempty,gt=0"`
	Description     string   `json:"description,omitempty"`
	HeroTitle       string   `json:"hero_title,omitempty"`
	HeroSubtitle    string   `json:"hero_subtitle,omitempty"`
	CtaText         string   `json:"cta_text,omitempty"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
}

// UpdatePropertyRequest represents a partial property update.
type UpdatePropertyRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Slug            *string  `json:"slug,omitempty" validate:"omitempty,min=1"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	City            *string  `json:"city,omitempty" validate:"omitempty,min=1"`
	Country         *string  `json:"country,omitempty" validate:"omitempty,min=1"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=active under_contract sold off_market"`
	Published       *bool    `json:"published,omitempty"`
	MainImageURL    *string  `json:"main_image_url,omitempty"`
	Gallery         *string  `json:"gallery,omitempty"`
	Beds            *int     `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Baths           *int     `json:"baths,omitempty" validate:"omitempty,gte=0"`
	AreaSqm         *float64 `json:"area_sqm,omitempty" validate:"omitempty,gt=0"`
	Description     *string  `json:"description,omitempty"`
	HeroTitle       *string  `json:"hero_title,omitempty"`
	HeroSubtitle    *string  `json:"hero_subtitle,omitempty"`
	CtaText         *string  `json:"cta_text,omitempty"`
	MetaTitle       *string  `json:"meta_title,omitempty"`
	MetaDescription *string  `json:"meta_description,omitempty"`
}

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	Published       bool      `json:"published"`
	MainImageURL    string    `json:"main_image_url,omitempty"`
	Gallery         []string  `json:"gallery"`
	Beds            *int      `json:"beds,omitempty"`
	Baths           *int      `json:"baths,omitempty"`
	AreaSqm         *float64  `json:"area_sqm,omitempty"`
	Description     string    `json:"description,omitempty"`
	HeroTitle       string    `json:"hero_title,omitempty"`
	HeroSubtitle    string    `json:"hero_subtitle,omitempty"`
	CtaText         string    `json:"cta_text,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Gallery splits the stored comma-delimited gallery into trimmed image
// URLs in display order. A property without a gallery falls back to its
// main image.
func Gallery(p *ent.Property) []string {
	if strings.TrimSpace(p.Gallery) == "" {
		return []string{p.MainImageURL}
	}

	parts := strings.Split(p.Gallery, ",")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	if len(images) == 0 {
		return []string{p.MainImageURL}
	}

	return images
}

func toResponse(p *ent.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Address:         p.Address,
		City:            p.City,
		Country:         p.Country,
		Price:           p.Price,
		Status:          string(p.Status),
		Published:       p.Published,
		MainImageURL:    p.MainImageURL,
		Gallery:         Gallery(p),
		Beds:            p.Beds,
		Baths:           p.Baths,
		AreaSqm:         p.AreaSqm,
		Description:     p.Description,
		HeroTitle:       p.HeroTitle,
		HeroSubtitle:    p.HeroSubtitle,
		CtaText:         p.CtaText,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// CreateProperty creates a new listing.
func (s *Service) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	builder := s.client.Property.
		Create().
		SetTitle(req.Title).
		SetSlug(req.Slug).
		SetAddress(req.Address).
		SetCity(req.City).
		SetCountry(req.Country).
		SetPrice(req.Price).
		SetPublished(req.Published).
		SetMainImageURL(req.MainImageURL).
		SetGallery(req.Gallery).
		SetDescription(req.Description).
		SetHeroTitle(req.HeroTitle).
		SetHeroSubtitle(req.HeroSubtitle).
		SetCtaText(req.CtaText).
		SetMetaTitle(req.MetaTitle).
		SetMetaDescription(req.MetaDescription).
		SetNillableBeds(req.Beds).
		SetNillableBaths(req.Baths).
		SetNillableAreaSqm(req.AreaSqm)

	if req.Status != "" {
		builder = builder.SetStatus(property.Status(req.Status))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("property slug already in use")
		}
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return toResponse(created), nil
}

// GetPropertyByID retrieves a single property.
func (s *Service) GetPropertyByID(ctx context.Context, propertyID int) (*PropertyResponse, error) {
	p, err := s.client.Property.Get(ctx, propertyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return toResponse(p), nil
}

// GetPublishedBySlug retrieves a property for the public landing page. A
// property is visible there only when it is published and not off market;
// anything else reads as not found to the public.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*PropertyResponse, error) {
	p, err := s.client.Property.
		Query().
		Where(
			property.SlugEQ(slug),
			property.PublishedEQ(true),
			property.StatusNEQ(property.StatusOffMarket),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return toResponse(p), nil
}

// ListProperties retrieves all listings, newest first.
func (s *Service) ListProperties(ctx context.Context) ([]*PropertyResponse, error) {
	rows, err := s.client.Property.
		Query().
		Order(ent.Desc(property.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	responses := make([]*PropertyResponse, len(rows))
	for i, p := range rows {
		responses[i] = toResponse(p)
	}

	return responses, nil
}

// UpdateProperty applies a partial update to an existing listing.
func (s *Service) UpdateProperty(ctx context.Context, propertyID int, req UpdatePropertyRequest) (*PropertyResponse, error) {
	exists, err := s.client.Property.Query().Where(property.ID(propertyID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("property not found")
	}

	update := s.client.Property.UpdateOneID(propertyID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Slug != nil {
		update = update.SetSlug(*req.Slug)
	}
	if req.Address != nil {
		update = update.SetAddress(*req.Address)
	}
	if req.City != nil {
		update = update.SetCity(*req.City)
	}
	if req.Country != nil {
		update = update.SetCountry(*req.Country)
	}
	if req.Price != nil {
		update = update.SetPrice(*req.Price)
	}
	if req.Status != nil {
		update = update.SetStatus(property.Status(*req.Status))
	}
	if req.Published != nil {
		update = update.SetPublished(*req.Published)
	}
	if req.MainImageURL != nil {
		update = update.SetMainImageURL(*req.MainImageURL)
	}
	if req.Gallery != nil {
		update = update.SetGallery(*req.Gallery)
	}
	if req.Beds != nil {
		update = update.SetBeds(*req.Beds)
	}
	if req.Baths != nil {
		update = update.SetBaths(*req.Baths)
	}
	if req.AreaSqm != nil {
		update = update.SetAreaSqm(*req.AreaSqm)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.HeroTitle != nil {
		update = update.SetHeroTitle(*req.HeroTitle)
	}
	if req.HeroSubtitle != nil {
		update = update.SetHeroSubtitle(*req.HeroSubtitle)
	}
	if req.CtaText != nil {
		update = update.SetCtaText(*req.CtaText)
	}
	if req.MetaTitle != nil {
		update = update.SetMetaTitle(*req.MetaTitle)
	}
	if req.MetaDescription != nil {
		update = update.SetMetaDescription(*req.MetaDescription)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("property slug already in use")
		}
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return toResponse(updated), nil
}

// DeleteProperty deletes a listing.
func (s *Service) DeleteProperty(ctx context.Context, propertyID int) error {
	err := s.client.Property.DeleteOneID(propertyID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("property not found")
		}
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}
