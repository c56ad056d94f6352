// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import "github.com/pkg/errors"

// ErrAuthorization is the only program-level error kind. It is raised before
// any state mutation and surfaced verbatim to the invoking context; a failed
// invocation is indistinguishable from one that never happened.
var ErrAuthorization = errors.New("invocation was not authorized by the claimed caller")

func IsAuthorizationError(err error) bool {
	return errors.Cause(err) == ErrAuthorization
}
