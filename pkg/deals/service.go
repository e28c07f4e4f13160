package deals

import (
	"context"
	"fmt"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/deal"
)

// Service handles deal CRUD operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new deal service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateDealRequest represents a request to open a deal between a lead and
// a property.
type CreateDealRequest struct {
	LeadID            int      `json:"lead_id" validate:"required,gt=0"`
	PropertyID        int      `json:"property_id" validate:"required,gt=0"`
	Stage             string   `json:"stage,omitempty" validate:"omitempty,oneof=negotiation under_contract closed fallthrough"`
	OfferPrice        *float64 `json:"offer_price,omitempty" validate:"omitempty,gt=0"`
	ClosedPrice       *float64 `json:"closed_price,omitempty" validate:"omitempty,gt=0"`
	CommissionRate    *float64 `json:"commission_rate,omitempty" validate:"omitempty,gt=0,lte=1"`
	ExpectedCloseDate *string  `json:"expected_close_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateDealRequest represents a partial deal update. Stage transitions are
// free-form, including reopening a closed deal.
type UpdateDealRequest struct {
	Stage             *string  `json:"stage,omitempty" validate:"omitempty,oneof=negotiation under_contract closed fallthrough"`
	OfferPrice        *float64 `json:"offer_price,omitempty" validate:"omitempty,gt=0"`
	ClosedPrice       *float64 `json:"closed_price,omitempty" validate:"omitempty,gt=0"`
	CommissionRate    *float64 `json:"commission_rate,omitempty" validate:"omitempty,gt=0,lte=1"`
	ExpectedCloseDate *string  `json:"expected_close_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DealResponse represents a deal in API responses, with its lead and
// property denormalized for list views.
type DealResponse struct {
	ID                int        `json:"id"`
	LeadID            int        `json:"lead_id"`
	PropertyID        int        `json:"property_id"`
	Stage             string     `json:"stage"`
	OfferPrice        *float64   `json:"offer_price,omitempty"`
	ClosedPrice       *float64   `json:"closed_price,omitempty"`
	CommissionRate    *float64   `json:"commission_rate,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	LeadName          string     `json:"lead_name,omitempty"`
	PropertyTitle     string     `json:"property_title,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toResponse(d *ent.Deal) *DealResponse {
	resp := &DealResponse{
		ID:                d.ID,
		LeadID:            d.LeadID,
		PropertyID:        d.PropertyID,
		Stage:             string(d.Stage),
		OfferPrice:        d.OfferPrice,
		ClosedPrice:       d.ClosedPrice,
		CommissionRate:    d.CommissionRate,
		ExpectedCloseDate: d.ExpectedCloseDate,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if d.Edges.Lead != nil {
		resp.LeadName = d.Edges.Lead.FullName
	}
	if d.Edges.Property != nil {
		resp.PropertyTitle = d.Edges.Property.Title
	}
	return resp
}

func parseCloseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("invalid expected close date")
	}
	return &parsed, nil
}

// CreateDeal opens a new deal. The lead and property must already exist;
// a dangling reference surfaces as a foreign-key violation.
func (s *Service) CreateDeal(ctx context.Context, req CreateDealRequest) (*DealResponse, error) {
	closeDate, err := parseCloseDate(req.ExpectedCloseDate)
	if err != nil {
		return nil, err
	}

	builder := s.client.Deal.
		Create().
		SetLeadID(req.LeadID).
		SetPropertyID(req.PropertyID).
		SetNillableOfferPrice(req.OfferPrice).
		SetNillableClosedPrice(req.ClosedPrice).
		SetNillableCommissionRate(req.CommissionRate).
		SetNillableExpectedCloseDate(closeDate)

	if req.Stage != "" {
		builder = builder.SetStage(deal.Stage(req.Stage))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("lead or property not found")
		}
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	return s.GetDealByID(ctx, created.ID)
}

// GetDealByID retrieves a single deal with its lead and property.
func (s *Service) GetDealByID(ctx context.Context, dealID int) (*DealResponse, error) {
	d, err := s.client.Deal.
		Query().
		Where(deal.ID(dealID)).
		WithLead().
		WithProperty().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("deal not found")
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	return toResponse(d), nil
}

// ListDeals retrieves all deals with lead and property, newest first.
func (s *Service) ListDeals(ctx context.Context) ([]*DealResponse, error) {
	rows, err := s.client.Deal.
		Query().
		WithLead().
		WithProperty().
		Order(ent.Desc(deal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	responses := make([]*DealResponse, len(rows))
	for i, d := range rows {
		responses[i] = toResponse(d)
	}

	return responses, nil
}

// UpdateDeal applies a partial update to an existing deal. The second
// return value reports whether this update moved the deal into the closed
// stage from somewhere else.
func (s *Service) UpdateDeal(ctx context.Context, dealID int, req UpdateDealRequest) (*DealResponse, bool, error) {
	current, err := s.client.Deal.Get(ctx, dealID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("deal not found")
		}
		return nil, false, fmt.Errorf("failed to get deal: %w", err)
	}

	closeDate, err := parseCloseDate(req.ExpectedCloseDate)
	if err != nil {
		return nil, false, err
	}

	update := s.client.Deal.UpdateOneID(dealID)
	if req.Stage != nil {
		update = update.SetStage(deal.Stage(*req.Stage))
	}
	if req.OfferPrice != nil {
		update = update.SetOfferPrice(*req.OfferPrice)
	}
	if req.ClosedPrice != nil {
		update = update.SetClosedPrice(*req.ClosedPrice)
	}
	if req.CommissionRate != nil {
		update = update.SetCommissionRate(*req.CommissionRate)
	}
	if closeDate != nil {
		update = update.SetExpectedCloseDate(*closeDate)
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to update deal: %w", err)
	}

	justClosed := req.Stage != nil &&
		deal.Stage(*req.Stage) == deal.StageClosed &&
		current.Stage != deal.StageClosed

	resp, err := s.GetDealByID(ctx, dealID)
	if err != nil {
		return nil, false, err
	}

	return resp, justClosed, nil
}

// DeleteDeal deletes a deal.
func (s *Service) DeleteDeal(ctx context.Context, dealID int) error {
	err := s.client.Deal.DeleteOneID(dealID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("deal not found")
		}
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	return nil
}
