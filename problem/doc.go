// Package problem defines the solver's external input contract: the
// Problem value an external collaborator supplies (given elements, target
// elements, an action budget, the permitted action types, and the
// search-tuning flags), plus the closed set of construction action types.
//
// Options:
//
//	– ActionTypes:                     permitted action-type set (default: FullActionTypes).
//	– RandomWalkAtNActions:            random-walk threshold n: an action whose depsCount
//	                                    equals n-2 is diverted to the random-walk frontier
//	                                    instead of being expanded exhaustively.
//	– PrioritizeLowActionCountShapes:  enables the +50*(3-depsCount) priority bonus
//	                                    for depsCount <= 2.
//	– Multimatch:                      retain multiple origins per identical shape/point.
//	– FindAllSolutions:                keep searching after the first solution.
//	– TrackSupportsInRW:               stored on the Problem only; package randomwalk does
//	                                    not read it, so walks track no per-target-shape
//	                                    "support" state whether it is set or not.
//
// Errors (sentinel):
//
//	– ErrBadActionCount      if actionCount <= 0.
//	– ErrNoGivenElements     if no given elements are supplied.
//	– ErrNoTargets           if no target elements are supplied.
//	– ErrBadRandomWalkThreshold (via panic in WithRandomWalkAtNActions) if n <= 0.
package problem
