package models

// Service-level error taxonomy. helper.HTTPHelper.GetStatusCode maps these
// types onto HTTP status codes.

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorInvalidArgument struct{ Message string }

func (e ErrorInvalidArgument) Error() string { return e.Message }

// ErrorConflict signals a retryable write collision, e.g. two concurrent edits
// racing for the same version number.
type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorInternalServer struct{ Message string }

func (e ErrorInternalServer) Error() string { return e.Message }
