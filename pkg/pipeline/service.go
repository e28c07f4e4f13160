package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/lead"
)

// DefaultCommissionRate is the projection-only fallback applied to deals
// without a stored commission rate. It is never written back to a deal.
const DefaultCommissionRate = 0.03

// Service computes read-only dashboard figures over the current store
// state. Safe to call concurrently; nothing here mutates.
type Service struct {
	client *ent.Client
}

// NewService creates a new pipeline aggregation service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Summary holds the dashboard headline figures.
type Summary struct {
	TotalLeads         int            `json:"total_leads"`
	ActiveLeads        int            `json:"active_leads"`
	TotalPipelineValue float64        `json:"total_pipeline_value"`
	ClosedThisMonth    int            `json:"closed_this_month"`
	LeadsByStatus      map[string]int `json:"leads_by_status"`
	DealsByStage       map[string]int `json:"deals_by_stage"`
}

// Summarize computes the pipeline summary at the current point in time.
// The closed-this-month window uses the local server clock.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	totalLeads, err := s.client.Lead.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	activeLeads, err := s.client.Lead.
		Query().
		Where(lead.StatusNotIn(lead.StatusClosed, lead.StatusLost)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active leads: %w", err)
	}

	pipelineValue, err := s.totalPipelineValue(ctx)
	if err != nil {
		return nil, err
	}

	closedThisMonth, err := s.closedThisMonth(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	leadsByStatus, err := s.leadStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	dealsByStage, err := s.dealStageCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalLeads:         totalLeads,
		ActiveLeads:        activeLeads,
		TotalPipelineValue: pipelineValue,
		ClosedThisMonth:    closedThisMonth,
		LeadsByStatus:      leadsByStatus,
		DealsByStage:       dealsByStage,
	}, nil
}

// totalPipelineValue sums offer_price × commission_rate over deals that are
// neither closed nor fallen through. A deal without an offer contributes
// nothing; a deal without a stored rate is projected at
// DefaultCommissionRate.
func (s *Service) totalPipelineValue(ctx context.Context) (float64, error) {
	openDeals, err := s.client.Deal.
		Query().
		Where(deal.StageNotIn(deal.StageClosed, deal.StageFallthrough)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load open deals: %w", err)
	}

	var total float64
	for _, d := range openDeals {
		if d.OfferPrice == nil {
			continue
		}
		rate := DefaultCommissionRate
		if d.CommissionRate != nil {
			rate = *d.CommissionRate
		}
		total += *d.OfferPrice * rate
	}

	return total, nil
}

// closedThisMonth counts closed deals whose last update falls within the
// calendar month of now.
func (s *Service) closedThisMonth(ctx context.Context, now time.Time) (int, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	count, err := s.client.Deal.
		Query().
		Where(
			deal.StageEQ(deal.StageClosed),
			deal.UpdatedAtGTE(monthStart),
			deal.UpdatedAtLT(nextMonth),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count closed deals: %w", err)
	}

	return count, nil
}

// leadStatusCounts returns one entry per status that has at least one lead.
func (s *Service) leadStatusCounts(ctx context.Context) (map[string]int, error) {
	statuses := []lead.Status{
		lead.StatusNew,
		lead.StatusContacted,
		lead.StatusViewingScheduled,
		lead.StatusOfferMade,
		lead.StatusClosed,
		lead.StatusLost,
	}
	counts := make(map[string]int)

	for _, status := range statuses {
		count, err := s.client.Lead.
			Query().
			Where(lead.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for status %s: %w", status, err)
		}
		if count > 0 {
			counts[string(status)] = count
		}
	}

	return counts, nil
}

// dealStageCounts returns one entry per stage that has at least one deal.
func (s *Service) dealStageCounts(ctx context.Context) (map[string]int, error) {
	stages := []deal.Stage{
		deal.StageNegotiation,
		deal.StageUnderContract,
		deal.StageClosed,
		deal.StageFallthrough,
	}
	counts := make(map[string]int)

	for _, stage := range stages {
		count, err := s.client.Deal.
			Query().
			Where(deal.StageEQ(stage)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count deals for stage %s: %w", stage, err)
		}
		if count > 0 {
			counts[string(stage)] = count
		}
	}

	return counts, nil
}
