// Code generated by ent, DO NOT EDIT.

package deal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/estatedesk/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldLeadID, v))
}

// PropertyID applies equality check predicate on the "property_id" field. It's identical to PropertyIDEQ.
func PropertyID(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldPropertyID, v))
}

// OfferPrice applies equality check predicate on the "offer_price" field. It's identical to OfferPriceEQ.
func OfferPrice(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldOfferPrice, v))
}

// ClosedPrice applies equality check predicate on the "closed_price" field. It's identical to ClosedPriceEQ.
func ClosedPrice(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClosedPrice, v))
}

// CommissionRate applies equality check predicate on the "commission_rate" field. It's identical to CommissionRateEQ.
func CommissionRate(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCommissionRate, v))
}

// ExpectedCloseDate applies equality check predicate on the "expected_close_date" field. It's identical to ExpectedCloseDateEQ.
func ExpectedCloseDate(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldExpectedCloseDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldUpdatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldLeadID, vs...))
}

// PropertyIDEQ applies the EQ predicate on the "property_id" field.
func PropertyIDEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldPropertyID, v))
}

// PropertyIDNEQ applies the NEQ predicate on the "property_id" field.
func PropertyIDNEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldPropertyID, v))
}

// PropertyIDIn applies the In predicate on the "property_id" field.
func PropertyIDIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldPropertyID, vs...))
}

// PropertyIDNotIn applies the NotIn predicate on the "property_id" field.
func PropertyIDNotIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldPropertyID, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldStage, vs...))
}

// OfferPriceEQ applies the EQ predicate on the "offer_price" field.
func OfferPriceEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldOfferPrice, v))
}

// OfferPriceNEQ applies the NEQ predicate on the "offer_price" field.
func OfferPriceNEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldOfferPrice, v))
}

// OfferPriceIn applies the In predicate on the "offer_price" field.
func OfferPriceIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldOfferPrice, vs...))
}

// OfferPriceNotIn applies the NotIn predicate on the "offer_price" field.
func OfferPriceNotIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldOfferPrice, vs...))
}

// OfferPriceGT applies the GT predicate on the "offer_price" field.
func OfferPriceGT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldOfferPrice, v))
}

// OfferPriceGTE applies the GTE predicate on the "offer_price" field.
func OfferPriceGTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldOfferPrice, v))
}

// OfferPriceLT applies the LT predicate on the "offer_price" field.
func OfferPriceLT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldOfferPrice, v))
}

// OfferPriceLTE applies the LTE predicate on the "offer_price" field.
func OfferPriceLTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldOfferPrice, v))
}

// OfferPriceIsNil applies the IsNil predicate on the "offer_price" field.
func OfferPriceIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldOfferPrice))
}

// OfferPriceNotNil applies the NotNil predicate on the "offer_price" field.
func OfferPriceNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldOfferPrice))
}

// ClosedPriceEQ applies the EQ predicate on the "closed_price" field.
func ClosedPriceEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClosedPrice, v))
}

// ClosedPriceNEQ applies the NEQ predicate on the "closed_price" field.
func ClosedPriceNEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldClosedPrice, v))
}

// ClosedPriceIn applies the In predicate on the "closed_price" field.
func ClosedPriceIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldClosedPrice, vs...))
}

// ClosedPriceNotIn applies the NotIn predicate on the "closed_price" field.
func ClosedPriceNotIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldClosedPrice, vs...))
}

// ClosedPriceGT applies the GT predicate on the "closed_price" field.
func ClosedPriceGT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldClosedPrice, v))
}

// ClosedPriceGTE applies the GTE predicate on the "closed_price" field.
func ClosedPriceGTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldClosedPrice, v))
}

// ClosedPriceLT applies the LT predicate on the "closed_price" field.
func ClosedPriceLT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldClosedPrice, v))
}

// ClosedPriceLTE applies the LTE predicate on the "closed_price" field.
func ClosedPriceLTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldClosedPrice, v))
}

// ClosedPriceIsNil applies the IsNil predicate on the "closed_price" field.
func ClosedPriceIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldClosedPrice))
}

// ClosedPriceNotNil applies the NotNil predicate on the "closed_price" field.
func ClosedPriceNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldClosedPrice))
}

// CommissionRateEQ applies the EQ predicate on the "commission_rate" field.
func CommissionRateEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCommissionRate, v))
}

// CommissionRateNEQ applies the NEQ predicate on the "commission_rate" field.
func CommissionRateNEQ(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldCommissionRate, v))
}

// CommissionRateIn applies the In predicate on the "commission_rate" field.
func CommissionRateIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldCommissionRate, vs...))
}

// CommissionRateNotIn applies the NotIn predicate on the "commission_rate" field.
func CommissionRateNotIn(vs ...float64) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldCommissionRate, vs...))
}

// CommissionRateGT applies the GT predicate on the "commission_rate" field.
func CommissionRateGT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldCommissionRate, v))
}

// CommissionRateGTE applies the GTE predicate on the "commission_rate" field.
func CommissionRateGTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldCommissionRate, v))
}

// CommissionRateLT applies the LT predicate on the "commission_rate" field.
func CommissionRateLT(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldCommissionRate, v))
}

// CommissionRateLTE applies the LTE predicate on the "commission_rate" field.
func CommissionRateLTE(v float64) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldCommissionRate, v))
}

// CommissionRateIsNil applies the IsNil predicate on the "commission_rate" field.
func CommissionRateIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldCommissionRate))
}

// CommissionRateNotNil applies the NotNil predicate on the "commission_rate" field.
func CommissionRateNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldCommissionRate))
}

// ExpectedCloseDateEQ applies the EQ predicate on the "expected_close_date" field.
func ExpectedCloseDateEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateNEQ applies the NEQ predicate on the "expected_close_date" field.
func ExpectedCloseDateNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateIn applies the In predicate on the "expected_close_date" field.
func ExpectedCloseDateIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldExpectedCloseDate, vs...))
}

// ExpectedCloseDateNotIn applies the NotIn predicate on the "expected_close_date" field.
func ExpectedCloseDateNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldExpectedCloseDate, vs...))
}

// ExpectedCloseDateGT applies the GT predicate on the "expected_close_date" field.
func ExpectedCloseDateGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateGTE applies the GTE predicate on the "expected_close_date" field.
func ExpectedCloseDateGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateLT applies the LT predicate on the "expected_close_date" field.
func ExpectedCloseDateLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateLTE applies the LTE predicate on the "expected_close_date" field.
func ExpectedCloseDateLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateIsNil applies the IsNil predicate on the "expected_close_date" field.
func ExpectedCloseDateIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldExpectedCloseDate))
}

// ExpectedCloseDateNotNil applies the NotNil predicate on the "expected_close_date" field.
func ExpectedCloseDateNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldExpectedCloseDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProperty applies the HasEdge predicate on the "property" edge.
func HasProperty() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PropertyTable, PropertyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPropertyWith applies the HasEdge predicate on the "property" edge with a given conditions (other predicates).
func HasPropertyWith(preds ...predicate.Property) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newPropertyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.Activity) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.NotPredicates(p))
}
