package booking

import "parlorspace/models"

// allowedTransitions is the delivery-status state machine. The original
// contract accepted any status string at any time; the recognized set and
// table below close that hole without contradicting a documented rule.
// Completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.StatusAssigned:          {models.StatusMaterialsPrepared, models.StatusCancelled},
	models.StatusMaterialsPrepared: {models.StatusPlanningPhase, models.StatusCancelled},
	models.StatusPlanningPhase:     {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress:        {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:         {},
	models.StatusCancelled:         {},
}

// IsRecognizedStatus reports whether s is a known delivery status.
func IsRecognizedStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a booking may move from one delivery
// status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
