package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Import taxonomy. Every import failure maps onto exactly one of these;
// they halt the current import only, never the process.
var (
	// ErrUnsupportedFormat: bad media type, rejected before any processing.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrUnsupportedDocument: a PDF stream no extraction strategy could open.
	ErrUnsupportedDocument = errors.New("document could not be opened")
	// ErrExtractionFailed: acquisition produced too little text or the
	// underlying capability failed.
	ErrExtractionFailed = errors.New("text extraction failed")
	// ErrNoRecordsDetected: parsing completed but no valid record was found.
	ErrNoRecordsDetected = errors.New("no records detected")
	// ErrRecipeIncomplete: the document was readable but the recipe name or
	// ingredient list is missing.
	ErrRecipeIncomplete = errors.New("recipe incomplete")
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ImportStatusError maps an import taxonomy error onto a gRPC status with a
// user-facing message. Anything outside the taxonomy is an internal error.
func ImportStatusError(err error) error {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return status.Error(codes.InvalidArgument, "format non supporté (PDF, JPEG ou PNG attendu)")
	case errors.Is(err, ErrUnsupportedDocument):
		return status.Error(codes.InvalidArgument, "le PDF n'a pas pu être ouvert")
	case errors.Is(err, ErrExtractionFailed):
		return status.Error(codes.FailedPrecondition, "fichier vide ou illisible")
	case errors.Is(err, ErrNoRecordsDetected):
		return status.Error(codes.FailedPrecondition, "aucun ingrédient détecté")
	case errors.Is(err, ErrRecipeIncomplete):
		return status.Error(codes.FailedPrecondition, "fiche incomplète : nom ou ingrédients manquants")
	default:
		return status.Error(codes.Internal, "erreur interne pendant l'import")
	}
}
