package domain

import "errors"

// Domain errors - returned by repository implementations and value object
// constructors, and checked by calling packages via errors.Is/errors.As.

var (
	// ErrGardenNotFound indicates the requested garden does not exist.
	ErrGardenNotFound = errors.New("garden not found")

	// ErrTaskNotFound indicates the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidID indicates the provided ID format is invalid.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrNameRequired indicates a Name value object was constructed from an
	// empty or whitespace-only string.
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooLong indicates a Name exceeded the maximum length.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrInvalidGrowingMethod indicates an unrecognized GrowingMethod string.
	ErrInvalidGrowingMethod = errors.New("invalid growing method")

	// ErrInvalidGrowthStage indicates an unrecognized GrowthStage string.
	ErrInvalidGrowthStage = errors.New("invalid growth stage")

	// ErrInvalidTaskType indicates an unrecognized TaskType string.
	ErrInvalidTaskType = errors.New("invalid task type")

	// ErrInvalidTaskPriority indicates an unrecognized TaskPriority string.
	ErrInvalidTaskPriority = errors.New("invalid task priority")

	// ErrInvalidNotificationType indicates an unrecognized NotificationType.
	ErrInvalidNotificationType = errors.New("invalid notification type")

	// ErrInvalidResourceTag indicates an unrecognized ResourceTag string.
	ErrInvalidResourceTag = errors.New("invalid resource tag")

	// ErrTemplateCatalogInvalid indicates the compiled-in template catalogue
	// failed its own internal invariants at package init. This should never
	// happen outside of a programming error in the catalogue data itself.
	ErrTemplateCatalogInvalid = errors.New("template catalogue invariant violation")
)
