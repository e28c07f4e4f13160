package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/activity"
)

// Service handles the append-only activity log. Activities are never
// updated or deleted once written.
type Service struct {
	client *ent.Client
}

// NewService creates a new activity service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateActivityRequest represents a request to log an interaction. At
// least the author and content are required; the lead, property, and deal
// references are each optional.
type CreateActivityRequest struct {
	Type       string `json:"type" validate:"required,oneof=call email meeting viewing note"`
	Content    string `json:"content" validate:"required,min=1"`
	LeadID     *int   `json:"lead_id,omitempty" validate:"omitempty,gt=0"`
	PropertyID *int   `json:"property_id,omitempty" validate:"omitempty,gt=0"`
	DealID     *int   `json:"deal_id,omitempty" validate:"omitempty,gt=0"`
}

// ActivityResponse represents an activity in API responses, with related
// names denormalized for the feed view.
type ActivityResponse struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Content       string    `json:"content"`
	UserID        int       `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	LeadID        *int      `json:"lead_id,omitempty"`
	LeadName      string    `json:"lead_name,omitempty"`
	PropertyID    *int      `json:"property_id,omitempty"`
	PropertyTitle string    `json:"property_title,omitempty"`
	DealID        *int      `json:"deal_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(a *ent.Activity) *ActivityResponse {
	resp := &ActivityResponse{
		ID:         a.ID,
		Type:       string(a.Type),
		Content:    a.Content,
		UserID:     a.UserID,
		LeadID:     a.LeadID,
		PropertyID: a.PropertyID,
		DealID:     a.DealID,
		CreatedAt:  a.CreatedAt,
	}
	if a.Edges.User != nil {
		resp.UserName = a.Edges.User.Name
	}
	if a.Edges.Lead != nil {
		resp.LeadName = a.Edges.Lead.FullName
	}
	if a.Edges.Property != nil {
		resp.PropertyTitle = a.Edges.Property.Title
	}
	return resp
}

// CreateActivity logs a new interaction authored by userID.
func (s *Service) CreateActivity(ctx context.Context, userID int, req CreateActivityRequest) (*ActivityResponse, error) {
	created, err := s.client.Activity.
		Create().
		SetType(activity.Type(req.Type)).
		SetContent(req.Content).
		SetUserID(userID).
		SetNillableLeadID(req.LeadID).
		SetNillablePropertyID(req.PropertyID).
		SetNillableDealID(req.DealID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("referenced record not found")
		}
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.getByID(ctx, created.ID)
}

func (s *Service) getByID(ctx context.Context, activityID int) (*ActivityResponse, error) {
	a, err := s.client.Activity.
		Query().
		Where(activity.ID(activityID)).
		WithUser().
		WithLead().
		WithProperty().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return toResponse(a), nil
}

// ListActivities retrieves the activity feed, newest first. A limit of
// zero or less returns everything.
func (s *Service) ListActivities(ctx context.Context, limit int) ([]*ActivityResponse, error) {
	query := s.client.Activity.
		Query().
		WithUser().
		WithLead().
		WithProperty().
		Order(ent.Desc(activity.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	responses := make([]*ActivityResponse, len(rows))
	for i, a := range rows {
		responses[i] = toResponse(a)
	}

	return responses, nil
}

// ListForLead retrieves the activity history of one lead, newest first.
func (s *Service) ListForLead(ctx context.Context, leadID int) ([]*ActivityResponse, error) {
	rows, err := s.client.Activity.
		Query().
		Where(activity.LeadIDEQ(leadID)).
		WithUser().
		WithLead().
		WithProperty().
		Order(ent.Desc(activity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead activities: %w", err)
	}

	responses := make([]*ActivityResponse, len(rows))
	for i, a := range rows {
		responses[i] = toResponse(a)
	}

	return responses, nil
}
