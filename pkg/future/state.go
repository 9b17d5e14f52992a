package future

import "fmt"

// slotState tracks one slot's lifecycle stage. Transitions are monotonic:
// Pending → Ready → Consumed, nothing else.
type slotState uint8

const (
	// slotPending: the sub-operation has not completed; the result cell is unwritten.
	slotPending slotState = iota
	// slotReady: the result has been written but not yet moved out or released.
	slotReady
	// slotConsumed: the result has been moved into the aggregate or released.
	slotConsumed
)

func (s slotState) String() string {
	switch s {
	case slotPending:
		return "Pending"
	case slotReady:
		return "Ready"
	case slotConsumed:
		return "Consumed"
	default:
		return fmt.Sprintf("slotState(%d)", uint8(s))
	}
}
