// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// LocationLog is the predicate function for locationlog builders.
type LocationLog func(*sql.Selector)

// SecurityEvent is the predicate function for securityevent builders.
type SecurityEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskPhoto is the predicate function for taskphoto builders.
type TaskPhoto func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
