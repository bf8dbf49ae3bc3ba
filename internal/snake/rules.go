package snake

import "fmt"

// InitialLength is the number of cells (head included) a new snake occupies.
const InitialLength = 3

// Rules holds the tuning constants of a game. They are fixed for the
// lifetime of a Board and passed in at construction.
type Rules struct {
	InitialSpeed    float64 // Moves per second once the snake starts
	SpeedIncrement  float64 // Added on each growth past AccelerateAfter
	MaxSpeed        float64 // Speed cap in moves per second
	AccelerateAfter int     // Score that must be exceeded before speeding up
	FoodPerScore    int     // One extra food cell per this many points
}

// DefaultRules returns the classic arcade tuning.
func DefaultRules() Rules {
	return Rules{
		InitialSpeed:    5,
		SpeedIncrement:  0.5,
		MaxSpeed:        60,
		AccelerateAfter: 5,
		FoodPerScore:    10,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed must be positive, got %v", ErrInvalidRules, r.InitialSpeed)
	case r.MaxSpeed < r.InitialSpeed:
		return fmt.Errorf("%w: max speed %v below initial speed %v", ErrInvalidRules, r.MaxSpeed, r.InitialSpeed)
	case r.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed increment must not be negative, got %v", ErrInvalidRules, r.SpeedIncrement)
	case r.AccelerateAfter < 0:
		return fmt.Errorf("%w: accelerate-after must not be negative, got %d", ErrInvalidRules, r.AccelerateAfter)
	case r.FoodPerScore <= 0:
		return fmt.Errorf("%w: food-per-score must be positive, got %d", ErrInvalidRules, r.FoodPerScore)
	}
	return nil
}
