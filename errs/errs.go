// Copyright 2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the single typed error enum shared by every package
// in the array runtime and function layer, following the plain wrapped-error
// convention used throughout dolt's sqle package rather than a hierarchy of
// bespoke error types per package.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error. Kernels and planners branch on Kind with
// errors.As/Is rather than string-matching messages.
type Kind uint8

const (
	// Arity indicates a function was called with the wrong number of
	// arguments for any of its declared signatures.
	Arity Kind = iota
	// InvalidInputTypes indicates no declared signature matches the
	// provided input datatypes.
	InvalidInputTypes
	// PhysicalTypeMismatch indicates code attempted to view a buffer as a
	// physical type it does not actually hold.
	PhysicalTypeMismatch
	// OutOfBounds indicates a selection or slice exceeds the underlying
	// length it indexes into.
	OutOfBounds
	// InvalidUtf8 indicates variable-length data declared as Utf8 failed
	// to decode as valid UTF-8.
	InvalidUtf8
	// InvalidValidityLength indicates an attempt to install a validity
	// bitmap whose length disagrees with the primary buffer capacity.
	InvalidValidityLength
	// NotImplemented indicates an intentional gap that must be surfaced
	// rather than silently producing a wrong answer.
	NotImplemented
	// InternalInvariantViolated guards unreachable states; seeing this
	// surface means a prior invariant was already broken.
	InternalInvariantViolated
)

func (k Kind) String() string {
	switch k {
	case Arity:
		return "Arity"
	case InvalidInputTypes:
		return "InvalidInputTypes"
	case PhysicalTypeMismatch:
		return "PhysicalTypeMismatch"
	case OutOfBounds:
		return "OutOfBounds"
	case InvalidUtf8:
		return "InvalidUtf8"
	case InvalidValidityLength:
		return "InvalidValidityLength"
	case NotImplemented:
		return "NotImplemented"
	case InternalInvariantViolated:
		return "InternalInvariantViolated"
	default:
		return "Unknown"
	}
}

// Error is the runtime's single error type. Fields beyond Kind and Msg are
// optional structured context a caller can inspect without parsing Msg.
type Error struct {
	Kind Kind
	Msg  string

	// Structured fields, populated selectively depending on Kind.
	WantArity int
	GotArity  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, &Error{Kind: SomeKind}) to match by Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches additional context to err while preserving its Kind for
// errors.As extraction, mirroring github.com/pkg/errors.Wrap semantics used
// elsewhere in this module.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

func ArityMismatch(want, got int) error {
	return &Error{
		Kind:      Arity,
		Msg:       fmt.Sprintf("expected %d argument(s), got %d", want, got),
		WantArity: want,
		GotArity:  got,
	}
}

func NoMatchingSignature(fnName string, types []string) error {
	return Newf(InvalidInputTypes, "function %q: no signature matches input types %v", fnName, types)
}

func OutOfBoundsf(format string, args ...any) error {
	return Newf(OutOfBounds, format, args...)
}

func NotImplementedf(format string, args ...any) error {
	return Newf(NotImplemented, format, args...)
}

func InternalInvariantf(format string, args ...any) error {
	return Newf(InternalInvariantViolated, format, args...)
}
