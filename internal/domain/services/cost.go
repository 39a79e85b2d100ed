// Package services implements the sampling, history and analytics logic.
package services

import "github.com/adwaits94/datepicker/internal/domain/entities"

// PerPersonCost returns what one participant pays for idea with partySize
// people. Total costs are split evenly; a party size of zero or less uses
// the raw cost. Sampling and recording both go through this function.
func PerPersonCost(idea entities.Idea, partySize int) float64 {
	if idea.CostType() == entities.CostTypePerPerson {
		return idea.Cost()
	}
	if partySize <= 0 {
		return idea.Cost()
	}
	return idea.Cost() / float64(partySize)
}
