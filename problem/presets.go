package problem

// BasicActionTypes permits only the four two-point constructions: line,
// both circle orientations, and the perpendicular bisector.
var BasicActionTypes = []ActionType{
	NewTwoPoint(Line),
	NewTwoPoint(Circle12),
	NewTwoPoint(Circle21),
	NewTwoPoint(MidPerp),
}

// LimitedAdvancedActionTypes adds the point-and-line constructions
// (perpendicular, parallel) to BasicActionTypes.
var LimitedAdvancedActionTypes = append(append([]ActionType{}, BasicActionTypes...),
	NewPointAndLine(Perp),
	NewPointAndLine(Par),
)

// AdvancedActionTypes adds the three-point circle constructions to
// LimitedAdvancedActionTypes.
var AdvancedActionTypes = append(append([]ActionType{}, LimitedAdvancedActionTypes...),
	NewThreePoint(CircleCAB),
	NewThreePoint(CircleACB),
	NewThreePoint(CircleABC),
)

// FullWithoutBisectorActionTypes is AdvancedActionTypes; it exists as its
// own preset name (matching the reference problem library's naming) for
// callers who want the full two/three-point surface without any
// bisector-producing action.
var FullWithoutBisectorActionTypes = AdvancedActionTypes

// FullActionTypes is the complete permitted action-type surface: every
// two-point, point-and-line, and three-point action, plus the three-point
// and two-point-and-line bisector constructions.
var FullActionTypes = append(append([]ActionType{}, FullWithoutBisectorActionTypes...),
	NewThreePoint(BisectorCAB),
	NewThreePoint(BisectorACB),
	NewThreePoint(BisectorABC),
	NewTwoPointAndLine(BisectorPosCAL),
	NewTwoPointAndLine(BisectorPosACL),
	NewTwoPointAndLine(BisectorNegCAL),
	NewTwoPointAndLine(BisectorNegACL),
)
