package api

import (
	"encoding/json"
	"errors"
)

const unknownError = "unknown error"

// Result is a response envelope holding either a payload or an error message.
// The zero value is a failure with an unknown error.
type Result[T any] struct {
	value T
	msg   string
	ok    bool
}

type errorBody struct {
	Error string `json:"error"`
}

// Success wraps a payload.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps an error message. An empty message is replaced so the
// encoded envelope always carries a non-empty "error".
func Failure[T any](msg string) Result[T] {
	if msg == "" {
		msg = unknownError
	}
	return Result[T]{msg: msg}
}

// FailureFrom wraps err's message unchanged.
func FailureFrom[T any](err error) Result[T] {
	if err == nil {
		return Failure[T]("")
	}
	return Failure[T](err.Error())
}

// OK reports whether r is the success variant.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the payload and whether r is a success.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Err returns nil for a success, otherwise an error carrying the message.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return errors.New(r.Message())
}

// Message returns the failure message, or "" for a success.
func (r Result[T]) Message() string {
	if r.ok {
		return ""
	}
	if r.msg == "" {
		return unknownError
	}
	return r.msg
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(r.value)
	}
	return json.Marshal(errorBody{Error: r.Message()})
}

// UnmarshalJSON treats any object with an "error" key as a failure and
// anything else as the payload.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var probe struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Error != nil {
		*r = Failure[T](*probe.Error)
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Success(v)
	return nil
}
