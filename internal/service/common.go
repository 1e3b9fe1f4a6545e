package service

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	appErrors "github.com/campora/scs-api/pkg/errors"
)

// parseObjectID validates a path identifier before any store call is made.
// Anything that is not 24 hex characters fails with INVALID_IDENTIFIER.
func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, appErrors.Wrap(err, appErrors.ErrInvalidID.Code, appErrors.ErrInvalidID.Status, appErrors.ErrInvalidID.Message)
	}
	return id, nil
}

// storeError maps a store adapter failure onto the upstream-unavailable kind.
func storeError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "document store operation failed")
}

// validationError wraps a validator failure with the VALIDATION_ERROR kind.
func validationError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}
