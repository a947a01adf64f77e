package model

// Position is the closed set of field positions a player can hold.
// Stored and serialized as its token; Label returns the display form.
type Position string

const (
	PositionDefender   Position = "DEFENDER"
	PositionAttacker   Position = "ATTACKER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionGoalkeeper Position = "GOALKEEPER"
)

var positionLabels = map[Position]string{
	PositionDefender:   "Defender",
	PositionAttacker:   "Attacker",
	PositionMidfielder: "Midfielder",
	PositionGoalkeeper: "Goalkeeper",
}

// AllPositions returns every valid position in a fixed order.
func AllPositions() []Position {
	return []Position{PositionDefender, PositionAttacker, PositionMidfielder, PositionGoalkeeper}
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Label returns the human-readable display label for the position.
func (p Position) Label() string {
	return positionLabels[p]
}

// ParsePosition converts a token into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.Valid() {
		return "", ErrInvalidPosition
	}
	return p, nil
}
