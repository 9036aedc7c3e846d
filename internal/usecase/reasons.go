package usecase

import (
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/errors"
)

// Operation names, used for reasons, logs and metrics.
const (
	OpCreate          = "create"
	OpUpdate          = "update"
	OpDelete          = "delete"
	OpAddToGroup      = "add_to_group"
	OpRemoveFromGroup = "remove_from_group"
	OpAddNumber       = "add_number"
	OpRemoveNumber    = "remove_number"
	OpAddRating       = "add_rating"
	OpList            = "list"
	OpGet             = "get"
)

// Reasons attached to identifier failures.
const (
	ReasonInvalidEntryID    = "Invalid phonebook entry id!"
	ReasonMalformedEntryID  = "Malformed phonebook entry id!"
	ReasonInvalidNumberID   = "Invalid phonebook number id!"
	ReasonMalformedNumberID = "Malformed phonebook number id!"
)

const reasonEntryMissing = "Entry with given id does not exists!"

// operationReasons maps (operation, error code) to the reason shown to callers.
// Codes without an entry keep the reason the error already carries.
var operationReasons = map[string]map[string]string{
	OpCreate: {
		domainerrors.CodeValidationFailed: "Error while creating phonebook entry!",
	},
	OpUpdate: {
		domainerrors.CodeNotFound:         "Failed to update entry!",
		domainerrors.CodeValidationFailed: "Failed to update entry!",
	},
	OpDelete: {
		domainerrors.CodeNotFound: reasonEntryMissing,
	},
	OpAddToGroup: {
		domainerrors.CodeNotFound:         reasonEntryMissing,
		domainerrors.CodeValidationFailed: "Invalid group name!",
	},
	OpRemoveFromGroup: {
		domainerrors.CodeNotFound: "Failed to delete entry group!",
	},
	OpAddNumber: {
		domainerrors.CodeNotFound:         "Failed to add entry number!",
		domainerrors.CodeValidationFailed: "Failed to add entry number!",
	},
	OpRemoveNumber: {
		domainerrors.CodeNotFound: "Failed to remove entry number!",
	},
	OpAddRating: {
		domainerrors.CodeNotFound:         "Failed to add entry rating!",
		domainerrors.CodeValidationFailed: "Rate must be a non-negative integer!",
	},
	OpList: {
		domainerrors.CodeValidationFailed: "Invalid search parameters!",
	},
	OpGet: {
		domainerrors.CodeNotFound: reasonEntryMissing,
	},
}

// WithOperationReason returns err carrying the reason of op for its error code.
// Errors that are not domain errors become storage faults.
func WithOperationReason(op string, err error) error {
	if err == nil {
		return nil
	}

	var baseErr *domainerrors.BaseError
	if !errors.As(err, &baseErr) {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, op)
	}

	if reason, ok := operationReasons[op][baseErr.ErrorCode()]; ok {
		return baseErr.WithReason(reason)
	}

	return baseErr
}

// Reason returns the short human-readable reason of a failed operation.
// Storage and other unexpected faults never leak their text.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return domainerrors.ErrInternalError.Message()
	}

	switch appErr.ErrorCode() {
	case domainerrors.CodeValidationFailed,
		domainerrors.CodeNotFound,
		domainerrors.CodeMismatchedIdentifierKind,
		domainerrors.CodeMalformedIdentifier,
		domainerrors.CodeNotOwner,
		domainerrors.CodeGroupNotFound,
		domainerrors.CodeUnauthorized:
		return appErr.Message()
	case domainerrors.CodeInternalError:
		return domainerrors.ErrInternalError.Message()
	default:
		return domainerrors.ErrInternalError.Message()
	}
}
