package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a fetch produced no data
type FailureKind string

const (
	FailurePermissionDenied FailureKind = "permission-denied"
	FailureNetwork          FailureKind = "network-failure"
	FailureStatus           FailureKind = "non-success-status"
	FailureMalformed        FailureKind = "malformed-response"
)

// FetchError is the error every gateway returns once it has classified a failure
type FetchError struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	Status  int         `json:"status,omitempty"`
	Err     error       `json:"-"`
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError builds a FetchError, taking the message from cause when message is empty
func NewFetchError(kind FailureKind, status int, message string, cause error) *FetchError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &FetchError{Kind: kind, Message: message, Status: status, Err: cause}
}

// AsFetchError returns err as a FetchError. Unclassified errors are network failures.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}
	return NewFetchError(FailureNetwork, 0, "", err)
}

// Result carries either data or the failure that prevented it
type Result[T any] struct {
	OK      bool        `json:"ok"`
	Data    T           `json:"data,omitempty"`
	Failure *FetchError `json:"failure,omitempty"`
}

func Success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{Failure: AsFetchError(err)}
}

// ResultOf wraps a (data, err) pair as returned by the gateways
func ResultOf[T any](data T, err error) Result[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Success(data)
}
