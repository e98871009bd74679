package statemachine

import (
	"errors"
	"fmt"

	"github.com/haons211/pmai-fooddelivery-datn/models"
)

// ErrInvalidTransition marks a structurally illegal status change. Who
// may trigger a legal one is a separate, authorization question.
var ErrInvalidTransition = errors.New("invalid transition")

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusOnTheWay},
	{From: models.StatusReady, To: models.StatusCancelled},
	{From: models.StatusOnTheWay, To: models.StatusDelivered},
	// delivered and cancelled are terminal
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// KnownStatus reports whether s is one of the defined order statuses.
func KnownStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPreparing, models.StatusReady, models.StatusOnTheWay,
		models.StatusDelivered, models.StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether a status has no outbound transitions.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether moving from one state to another is
// structurally legal, regardless of caller.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed; valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
