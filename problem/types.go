package problem

import "github.com/compasslab/euclid/element"

// Options holds the search-tuning flags a Problem carries beyond its
// given/target elements and action budget.
type Options struct {
	ActionTypes                    []ActionType
	RandomWalkAtNActions           *int
	PrioritizeLowActionCountShapes bool
	Multimatch                     bool
	FindAllSolutions               bool
	TrackSupportsInRW              bool
}

// Option is a functional option configuring a Problem.
type Option func(*Options)

// WithActionTypes restricts the permitted action types. Passing nil or an
// empty slice is equivalent to not calling this option (FullActionTypes
// is used).
func WithActionTypes(types []ActionType) Option {
	return func(o *Options) {
		o.ActionTypes = types
	}
}

// WithRandomWalkAtNActions sets the random-walk threshold n: the search
// driver diverts a popped action whose depsCount equals n-2 to the
// random-walk frontier instead of expanding it exhaustively. n must be
// positive.
func WithRandomWalkAtNActions(n int) Option {
	if n <= 0 {
		panic(ErrBadRandomWalkThreshold.Error())
	}

	return func(o *Options) {
		o.RandomWalkAtNActions = &n
	}
}

// WithPrioritizeLowActionCountShapes enables the +50*(3-depsCount)
// priority bonus for depsCount <= 2.
func WithPrioritizeLowActionCountShapes() Option {
	return func(o *Options) {
		o.PrioritizeLowActionCountShapes = true
	}
}

// WithMultimatch enables multi-match mode: multiple origins are retained
// per identical shape/point, enabling the §4.9 union search.
func WithMultimatch() Option {
	return func(o *Options) {
		o.Multimatch = true
	}
}

// WithFindAllSolutions keeps the search running after the first solution
// is found, rather than stopping immediately.
func WithFindAllSolutions() Option {
	return func(o *Options) {
		o.FindAllSolutions = true
	}
}

// WithTrackSupportsInRW sets Problem.TrackSupportsInRW. Package randomwalk
// does not read the flag, so random walks track no per-target-shape
// support state whether it is set or not.
func WithTrackSupportsInRW() Option {
	return func(o *Options) {
		o.TrackSupportsInRW = true
	}
}

// Problem is the solver's external input: a finite set of given elements,
// a finite set of target elements, an action budget, and tuning options.
type Problem struct {
	GivenElements  []element.Element
	ElementsToFind []element.Element
	ActionCount    int
	Options
}

// New validates and assembles a Problem. Defaults: ActionTypes defaults
// to FullActionTypes when unset or empty.
func New(given, toFind []element.Element, actionCount int, opts ...Option) (*Problem, error) {
	if actionCount <= 0 {
		return nil, ErrBadActionCount
	}
	if len(given) == 0 {
		return nil, ErrNoGivenElements
	}
	if len(toFind) == 0 {
		return nil, ErrNoTargets
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.ActionTypes) == 0 {
		cfg.ActionTypes = FullActionTypes
	}

	return &Problem{
		GivenElements:  given,
		ElementsToFind: toFind,
		ActionCount:    actionCount,
		Options:        cfg,
	}, nil
}
