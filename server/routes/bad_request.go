// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

// BadRequestError signals that the request itself was invalid, such as a
// malformed breakpoint override or a non-numeric item count.
//
// The error handling middleware is expected to catch this error, set the HTTP
// status to 400 Bad Request, and render the error page with the wrapped message.
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string {
	return e.Err.Error()
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}

// NewBadRequestError wraps err as a BadRequestError.
func NewBadRequestError(err error) error {
	return &BadRequestError{Err: err}
}
