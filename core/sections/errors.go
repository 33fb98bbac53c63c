package sections

import "errors"

// Registration errors
var (
	// ErrInvalidType indicates a data type outside [0, 1000) was passed to Register.
	ErrInvalidType = errors.New("data type must be in [0, 1000)")

	// ErrInvalidLevel indicates a negative level was passed to Register.
	ErrInvalidLevel = errors.New("level must be >= 0")

	// ErrInvalidRegistration indicates a type was queried for its level without being
	// registered as a data type. Header types never carry a level of their own.
	ErrInvalidRegistration = errors.New("type is not registered as a data type")
)

// Placeholder errors
var (
	// ErrRangeExhausted indicates the placeholder id range is depleted.
	// Widen the range with SetRange; ids are never recycled.
	ErrRangeExhausted = errors.New("placeholder id range exhausted")

	// ErrInvalidCount indicates a placeholder data request for fewer than one item.
	ErrInvalidCount = errors.New("placeholder count must be >= 1")
)

// Merge errors
var (
	// ErrInvalidMode indicates an unknown refresh mode.
	ErrInvalidMode = errors.New("invalid refresh mode")

	// ErrInvalidConfig indicates engine settings that cannot be used.
	ErrInvalidConfig = errors.New("invalid engine config")

	// ErrWorkerStopped indicates a task was submitted to a worker that is no longer running.
	ErrWorkerStopped = errors.New("engine worker stopped")

	// ErrSeedAfterMerge indicates Seed was called once levels were already merged.
	ErrSeedAfterMerge = errors.New("seed after first merge")

	// ErrOffsetOutOfRange indicates the computed insertion offset or the previous level block
	// lies outside the current list, usually because PreDataCount exceeds the seeded items.
	ErrOffsetOutOfRange = errors.New("level offset outside the current list")
)

// ErrorKind is the coarse classification of engine errors.
type ErrorKind string

const (
	KindUnknown             ErrorKind = "unknown"
	KindInvalidRegistration ErrorKind = "invalid_registration"
	KindRangeExhausted      ErrorKind = "range_exhausted"
	KindInvalidInput        ErrorKind = "invalid_input"
)

// Classify maps err onto an ErrorKind using sentinel matching only.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidRegistration):
		return KindInvalidRegistration
	case errors.Is(err, ErrRangeExhausted):
		return KindRangeExhausted
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidLevel),
		errors.Is(err, ErrInvalidCount),
		errors.Is(err, ErrInvalidMode),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrSeedAfterMerge),
		errors.Is(err, ErrOffsetOutOfRange):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
