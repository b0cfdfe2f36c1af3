// SPDX-License-Identifier: EPL-2.0

package wavnorm

import "errors"

// ErrNotRead is returned by Audio accessors used before a successful Read.
var ErrNotRead = errors.New("audio has not been read")
