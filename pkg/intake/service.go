package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/lead"
)

// Service handles public landing-page form submissions. A submission is
// resolved to a lead by email: an existing lead is reused untouched, a
// missing one is created with landing_page source.
type Service struct {
	client *ent.Client
}

// NewService creates a new intake service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// SubmitRequest represents a public contact form submission.
type SubmitRequest struct {
	PropertyID int    `json:"property_id" validate:"required,gt=0"`
	FullName   string `json:"full_name" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
}

// SubmissionResponse represents a stored form submission.
type SubmissionResponse struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	LeadID     int       `json:"lead_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Result is the outcome of a submission: the stored row plus whether a new
// lead had to be created for it.
type Result struct {
	Submission  *SubmissionResponse
	LeadCreated bool
}

// Submit resolves the submission to a lead and stores the submission row.
// The caller validates the request shape before any persistence access.
//
// The lookup-or-create is keyed on the unique index on lead.email: when a
// concurrent submission wins the insert race, the constraint violation is
// swallowed and the winner's row is re-read, so at most one lead per email
// ever exists. An existing lead is never updated here, even when the
// submission carries a different name or phone.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	leadRow, created, err := s.resolveLead(ctx, req)
	if err != nil {
		return nil, err
	}

	// The property reference is not pre-validated; a missing property
	// surfaces as a foreign-key violation from the store.
	submission, err := s.client.FormSubmission.
		Create().
		SetPropertyID(req.PropertyID).
		SetLeadID(leadRow.ID).
		SetFullName(req.FullName).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetMessage(req.Message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return &Result{
		Submission: &SubmissionResponse{
			ID:         submission.ID,
			PropertyID: submission.PropertyID,
			LeadID:     submission.LeadID,
			FullName:   submission.FullName,
			Email:      submission.Email,
			Phone:      submission.Phone,
			Message:    submission.Message,
			CreatedAt:  submission.CreatedAt,
		},
		LeadCreated: created,
	}, nil
}

// resolveLead returns the lead for the submission email, creating it when
// absent. The bool reports whether a new lead was created.
func (s *Service) resolveLead(ctx context.Context, req SubmitRequest) (*ent.Lead, bool, error) {
	existing, err := s.client.Lead.
		Query().
		Where(lead.EmailEQ(req.Email)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to look up lead: %w", err)
	}

	created, err := s.client.Lead.
		Create().
		SetFullName(req.FullName).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetSource(lead.SourceLandingPage).
		SetStatus(lead.StatusNew).
		Save(ctx)
	if err == nil {
		return created, true, nil
	}

	// Lost the insert race against a concurrent submission with the same
	// email: the unique constraint fired, so the winner's lead exists now.
	if ent.IsConstraintError(err) {
		winner, qerr := s.client.Lead.
			Query().
			Where(lead.EmailEQ(req.Email)).
			Only(ctx)
		if qerr != nil {
			return nil, false, fmt.Errorf("failed to re-read lead after conflict: %w", qerr)
		}
		return winner, false, nil
	}

	return nil, false, fmt.Errorf("failed to create lead: %w", err)
}
