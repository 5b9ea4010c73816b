package models

import "errors"

var (
	ErrInvalidRoleName    = errors.New("invalid role name")
	ErrRoleNameTooLong    = errors.New("role name must be at most 50 characters")
	ErrInvalidPermissions = errors.New("permissions must be a non-negative bitfield")
	ErrUnknownPermission  = errors.New("unknown permission flag")
	ErrRoleOrderConflict  = errors.New("initial state does not match current state")

	ErrInvalidDocumentTitle = errors.New("invalid document title")
	ErrInvalidDocumentType  = errors.New("unknown document type code")
	ErrInvalidDepartment    = errors.New("unknown department code")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrEmptyFile            = errors.New("file payload is empty")
	ErrInvalidFilePayload   = errors.New("file payload is not valid base64")
	ErrInvalidFileName      = errors.New("invalid file name")

	ErrUploadFailed         = errors.New("file storage upload failed")
	ErrRenameFailed         = errors.New("file storage rename failed")
	ErrClassificationFailed = errors.New("document classification failed")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrDuplicateUserIDs = errors.New("duplicate user IDs in request")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrInvalidUUID    = errors.New("invalid UUID")
	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)
