package remote

import "fmt"

// NetworkError reports a transport failure on a read or write against the
// remote store. The caller must treat it as "operation did not happen".
type NetworkError struct {
	Op  string // "fetch" or "write"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a malformed response body, including a missing or
// non-sequence "notes" field. The caller must treat it as "no data
// available" and must not overwrite local state.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RejectionError reports a well-formed write response whose status field
// indicates the remote refused the snapshot.
type RejectionError struct {
	Status string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("remote rejected write: status %q", e.Status)
}
