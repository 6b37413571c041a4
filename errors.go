// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrWouldBlock reports that a non-blocking operation could not make
	// progress: the slot is empty on receive or full on send.
	// It is iox.ErrWouldBlock.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrClosed reports that the group is closed. Receives return it only
	// once the slot has been drained.
	ErrClosed = errors.New("swch: channel closed")
)

// SendError is returned by a rejected send. Value is the message that was
// not delivered, handed back for retry or disposal.
// Err is ErrWouldBlock (slot full) or ErrClosed.
type SendError[T any] struct {
	Value T
	Err   error
}

// Error reports whether the send found the slot full or closed.
func (e *SendError[T]) Error() string {
	if errors.Is(e.Err, ErrWouldBlock) {
		return "swch: sending into a full channel"
	}
	return "swch: sending into a closed channel"
}

// Unwrap returns the cause, so errors.Is(err, ErrClosed) and
// errors.Is(err, ErrWouldBlock) work on send results.
func (e *SendError[T]) Unwrap() error {
	return e.Err
}

// IsWouldBlock reports whether err is, or wraps, ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsClosed reports whether err is, or wraps, ErrClosed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
