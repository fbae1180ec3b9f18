// Copyright 2025 go-sortengine Authors
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

package sorting

import "github.com/pkg/errors"

// ErrInvalidArgument is matched by every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports which argument of a sort call was rejected.
// Message is kept verbatim for callers that compare error strings.
type InvalidArgumentError struct {
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

var (
	// ErrNilList is returned when the list to sort is nil.
	ErrNilList error = &InvalidArgumentError{Param: "list", Message: "The list cannot be null."}

	// ErrNilComparator is returned when the comparator is nil.
	ErrNilComparator error = &InvalidArgumentError{Param: "cmp", Message: "Comparator cannot be null."}
)

// validate checks the arguments shared by every algorithm.
// The list is checked first.
func validate[T any](list []T, cmp func(a, b T) int) error {
	if list == nil {
		return ErrNilList
	}
	if cmp == nil {
		return ErrNilComparator
	}
	return nil
}
