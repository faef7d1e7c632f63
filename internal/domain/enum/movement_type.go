package enum

// MovementType identifies the direction and origin of a stock movement
type MovementType string

const (
	MovementEntry  MovementType = "ENTRY"
	MovementSale   MovementType = "SALE"
	MovementAdjust MovementType = "ADJUST"
)

// IsValid checks if the movement type is a known value
func (m MovementType) IsValid() bool {
	switch m {
	case MovementEntry, MovementSale, MovementAdjust:
		return true
	}
	return false
}
