// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// Deal is the predicate function for deal builders.
type Deal func(*sql.Selector)

// FormSubmission is the predicate function for formsubmission builders.
type FormSubmission func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Property is the predicate function for property builders.
type Property func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
