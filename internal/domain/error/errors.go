package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput              = 4001
	CodeInvalidAmount             = 4002
	CodeInvalidUserID             = 4003
	CodeInvalidTransactionType    = 4004
	CodeConstraintViolation       = 4005
	CodeUnauthorized              = 4010
	CodeForbidden                 = 4030
	CodeUserNotFound              = 4040
	CodeNotFound                  = 4041
	CodeChallengeAlreadyCompleted = 4090
	CodeChallengeClosed           = 4091
	CodeProductUnavailable        = 4092
	CodeDuplicate                 = 4093
	CodeInvalidStatusTransition   = 4094
	CodeUserLocked                = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeDatabase         = 5001
	CodeRedemptionFailed = 5002
	CodeStoreNotReady    = 5030
)

// Base error types
var (
	// ErrInvalidInput is returned when request data fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidAmount is returned when a ledger amount does not fit its transaction type
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned for an unknown ledger transaction type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrEmptyReason is returned when a ledger entry has no reason
	ErrEmptyReason = errors.New("reason cannot be empty")

	// ErrUnauthorized is returned when the request carries no valid session
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role or ownership
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrLedgerEntryNotFound is returned when the requested ledger entry doesn't exist
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrChallengeNotFound is returned when the requested challenge doesn't exist
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrProductNotFound is returned when the requested product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrTransactionNotFound is returned when the requested gift-shop transaction doesn't exist
	ErrTransactionNotFound = errors.New("gift-shop transaction not found")

	// ErrCommentNotFound is returned when the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound is returned when the requested discussion post doesn't exist
	ErrPostNotFound = errors.New("discussion post not found")

	// ErrIntentNotFound is returned when a redemption intent doesn't exist
	ErrIntentNotFound = errors.New("redemption intent not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrChallengeAlreadyCompleted is returned when points for a challenge were already awarded
	ErrChallengeAlreadyCompleted = errors.New("challenge already completed")

	// ErrChallengeClosed is returned when a challenge deadline has passed
	ErrChallengeClosed = errors.New("challenge deadline has passed")

	// ErrProductUnavailable is returned when redeeming an inactive product
	ErrProductUnavailable = errors.New("product is not available")

	// ErrInvalidStatusTransition is returned for a disallowed gift-shop status change
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrDuplicate is returned when a unique constraint rejects a write
	ErrDuplicate = errors.New("resource already exists")

	// ErrUserLocked is returned when a user is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrStoreNotInitialized is returned when the persistence client was used before Connect
	ErrStoreNotInitialized = errors.New("persistence store not initialized")

	// ErrRedemptionFailed is returned when a redemption write step fails
	ErrRedemptionFailed = errors.New("redemption failed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyReason):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrChallengeAlreadyCompleted):
		return CodeChallengeAlreadyCompleted
	case errors.Is(err, ErrChallengeClosed):
		return CodeChallengeClosed
	case errors.Is(err, ErrProductUnavailable):
		return CodeProductUnavailable
	case errors.Is(err, ErrDuplicate):
		return CodeDuplicate
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrStoreNotInitialized):
		return CodeStoreNotReady
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	case errors.Is(err, ErrRedemptionFailed):
		return CodeRedemptionFailed
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error onto the status code the API answers with
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeInvalidInput, CodeInvalidAmount, CodeInvalidUserID, CodeInvalidTransactionType:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUserNotFound, CodeNotFound:
		return http.StatusNotFound
	case CodeChallengeAlreadyCompleted, CodeChallengeClosed, CodeProductUnavailable,
		CodeDuplicate, CodeInvalidStatusTransition, CodeConstraintViolation:
		return http.StatusConflict
	case CodeUserLocked:
		return http.StatusLocked
	case CodeStoreNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RedemptionStep names the write step of a redemption that failed
type RedemptionStep string

const (
	StepLedgerDebit       RedemptionStep = "ledger_debit"
	StepGiftShopRecord    RedemptionStep = "giftshop_transaction"
	StepProductRedeemedBy RedemptionStep = "product_redeemed_by"
	StepIntentRecord      RedemptionStep = "redemption_intent"
	StepCommit            RedemptionStep = "commit"
)

// RedemptionError describes a failed redemption write step
type RedemptionError struct {
	Step      RedemptionStep
	UserID    uint64
	ProductID uint64
	Points    int64
	Err       error
}

// Error implements the error interface for RedemptionError
func (e *RedemptionError) Error() string {
	return fmt.Sprintf("redemption of product %d by user %d (%d points) failed at %s: %v",
		e.ProductID, e.UserID, e.Points, e.Step, e.Err)
}

// Unwrap returns the underlying error
func (e *RedemptionError) Unwrap() error {
	return e.Err
}

// Is reports every redemption error as ErrRedemptionFailed
func (e *RedemptionError) Is(target error) bool {
	return target == ErrRedemptionFailed
}

// LogFields returns a map of fields for structured logging
func (e *RedemptionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "redemption_error",
		"step":       string(e.Step),
		"user_id":    e.UserID,
		"product_id": e.ProductID,
		"points":     e.Points,
		"error":      e.Err.Error(),
		"error_code": CodeRedemptionFailed,
	}
}

// NewRedemptionError creates a redemption error for the given step
func NewRedemptionError(step RedemptionStep, userID, productID uint64, points int64, err error) error {
	return &RedemptionError{
		Step:      step,
		UserID:    userID,
		ProductID: productID,
		Points:    points,
		Err:       err,
	}
}

// ValidationError carries per-field validation messages
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidInput.Error(), e.Fields)
}

// Is checks if the target error is an ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error_code": CodeInvalidInput,
	}
}

// InitError is returned when the persistence client cannot be initialized
type InitError struct {
	Driver string
	Err    error
}

// Error implements the error interface
func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s store: %v", e.Driver, e.Err)
}

// Unwrap returns the underlying error
func (e *InitError) Unwrap() error {
	return e.Err
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrLedgerEntryNotFound) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrIntentNotFound)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsTransientError checks if the error is worth retrying
func IsTransientError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) || errors.Is(err, ErrUserLocked)
}
