package domain

type Direction int32

const (
	DirectionNone  Direction = 0
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// Delta is the one-step offset for d. Up and Down move along rows,
// Left and Right along columns.
func (d Direction) Delta() Cell {
	switch d {
	case DirectionUp:
		return Cell{Row: -1}
	case DirectionDown:
		return Cell{Row: 1}
	case DirectionLeft:
		return Cell{Col: -1}
	case DirectionRight:
		return Cell{Col: 1}
	}
	return Cell{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d != DirectionNone && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "NONE"
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	}
	return "UNKNOWN"
}
