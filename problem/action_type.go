package problem

// Group identifies which of the four action-type families an ActionType
// belongs to, matching the arity of construction it performs.
type Group int

const (
	// GroupTwoPoint actions take two existing points as parents.
	GroupTwoPoint Group = iota
	// GroupPointAndLine actions take one point and one line as parents.
	GroupPointAndLine
	// GroupThreePoint actions take three existing points as parents.
	GroupThreePoint
	// GroupTwoPointAndLine actions take two points and a line as parents.
	GroupTwoPointAndLine
)

// TwoPointActionType enumerates the constructions available from a pair
// of points.
type TwoPointActionType int

const (
	Line TwoPointActionType = iota
	Circle12
	Circle21
	MidPerp
)

// PointAndLineActionType enumerates the constructions available from a
// point and a line.
type PointAndLineActionType int

const (
	Perp PointAndLineActionType = iota
	Par
)

// ThreePointActionType enumerates the constructions available from a
// triple of points.
type ThreePointActionType int

const (
	CircleCAB ThreePointActionType = iota
	CircleACB
	CircleABC
	BisectorCAB
	BisectorACB
	BisectorABC
)

// TwoPointAndLineActionType enumerates the constructions available from
// two points and a line.
type TwoPointAndLineActionType int

const (
	BisectorPosCAL TwoPointAndLineActionType = iota
	BisectorPosACL
	BisectorNegCAL
	BisectorNegACL
)

// ActionType is the closed set of permitted construction action types,
// tagged by Group. Exactly one of the four payload fields is meaningful.
type ActionType struct {
	Group           Group
	TwoPoint        TwoPointActionType
	PointAndLine    PointAndLineActionType
	ThreePoint      ThreePointActionType
	TwoPointAndLine TwoPointAndLineActionType
}

// NewTwoPoint wraps a TwoPointActionType as an ActionType.
func NewTwoPoint(t TwoPointActionType) ActionType {
	return ActionType{Group: GroupTwoPoint, TwoPoint: t}
}

// NewPointAndLine wraps a PointAndLineActionType as an ActionType.
func NewPointAndLine(t PointAndLineActionType) ActionType {
	return ActionType{Group: GroupPointAndLine, PointAndLine: t}
}

// NewThreePoint wraps a ThreePointActionType as an ActionType.
func NewThreePoint(t ThreePointActionType) ActionType {
	return ActionType{Group: GroupThreePoint, ThreePoint: t}
}

// NewTwoPointAndLine wraps a TwoPointAndLineActionType as an ActionType.
func NewTwoPointAndLine(t TwoPointAndLineActionType) ActionType {
	return ActionType{Group: GroupTwoPointAndLine, TwoPointAndLine: t}
}
