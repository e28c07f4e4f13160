package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/lead"
)

// Service handles lead CRUD operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new lead service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateLeadRequest represents a request to create a lead manually.
type CreateLeadRequest struct {
	FullName     string   `json:"full_name" validate:"required,min=1"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone,omitempty"`
	Source       string   `json:"source" validate:"required,oneof=landing_page manual referral other"`
	Status       string   `json:"status" validate:"required,oneof=new contacted viewing_scheduled offer_made closed lost"`
	BudgetMin    *float64 `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax    *float64 `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	Notes        string   `json:"notes,omitempty"`
	AssignedToID *int     `json:"assigned_to_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateLeadRequest represents a partial lead update. Status transitions
// are free-form: any status may be overwritten with any other.
type UpdateLeadRequest struct {
	FullName     *string  `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string  `json:"phone,omitempty"`
	Source       *string  `json:"source,omitempty" validate:"omitempty,oneof=landing_page manual referral other"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=new contacted viewing_scheduled offer_made closed lost"`
	BudgetMin    *float64 `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax    *float64 `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes,omitempty"`
	AssignedToID *int     `json:"assigned_to_id,omitempty" validate:"omitempty,gt=0"`
}

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	BudgetMin    *float64  `json:"budget_min,omitempty"`
	BudgetMax    *float64  `json:"budget_max,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	AssignedToID *int      `json:"assigned_to_id,omitempty"`
	AssigneeName string    `json:"assignee_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toResponse(l *ent.Lead) *LeadResponse {
	resp := &LeadResponse{
		ID:           l.ID,
		FullName:     l.FullName,
		Email:        l.Email,
		Phone:        l.Phone,
		Source:       string(l.Source),
		Status:       string(l.Status),
		BudgetMin:    l.BudgetMin,
		BudgetMax:    l.BudgetMax,
		Notes:        l.Notes,
		AssignedToID: l.AssignedToID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.Edges.Assignee != nil {
		resp.AssigneeName = l.Edges.Assignee.Name
	}
	return resp
}

// CreateLead creates a new lead.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest) (*LeadResponse, error) {
	builder := s.client.Lead.
		Create().
		SetFullName(req.FullName).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetSource(lead.Source(req.Source)).
		SetStatus(lead.Status(req.Status)).
		SetNotes(req.Notes).
		SetNillableBudgetMin(req.BudgetMin).
		SetNillableBudgetMax(req.BudgetMax).
		SetNillableAssignedToID(req.AssignedToID)

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("lead email already in use")
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return toResponse(created), nil
}

// GetLeadByID retrieves a single lead with its assignee.
func (s *Service) GetLeadByID(ctx context.Context, leadID int) (*LeadResponse, error) {
	l, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID)).
		WithAssignee().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return toResponse(l), nil
}

// ListLeads retrieves all leads, newest first.
func (s *Service) ListLeads(ctx context.Context) ([]*LeadResponse, error) {
	rows, err := s.client.Lead.
		Query().
		WithAssignee().
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]*LeadResponse, len(rows))
	for i, l := range rows {
		responses[i] = toResponse(l)
	}

	return responses, nil
}

// UpdateLead applies a partial update to an existing lead.
func (s *Service) UpdateLead(ctx context.Context, leadID int, req UpdateLeadRequest) (*LeadResponse, error) {
	exists, err := s.client.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	update := s.client.Lead.UpdateOneID(leadID)
	if req.FullName != nil {
		update = update.SetFullName(*req.FullName)
	}
	if req.Email != nil {
		update = update.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		update = update.SetPhone(*req.Phone)
	}
	if req.Source != nil {
		update = update.SetSource(lead.Source(*req.Source))
	}
	if req.Status != nil {
		update = update.SetStatus(lead.Status(*req.Status))
	}
	if req.BudgetMin != nil {
		update = update.SetBudgetMin(*req.BudgetMin)
	}
	if req.BudgetMax != nil {
		update = update.SetBudgetMax(*req.BudgetMax)
	}
	if req.Notes != nil {
		update = update.SetNotes(*req.Notes)
	}
	if req.AssignedToID != nil {
		update = update.SetAssignedToID(*req.AssignedToID)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("lead email already in use")
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return toResponse(updated), nil
}

// DeleteLead deletes a lead.
func (s *Service) DeleteLead(ctx context.Context, leadID int) error {
	err := s.client.Lead.DeleteOneID(leadID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("lead not found")
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}
