// Package variational - sentinel errors.

package variational

import "errors"

// ErrParameterLength indicates a packed parameter vector whose length is
// zero or odd: x must hold p betas followed by p gammas.
var ErrParameterLength = errors.New("variational: parameter vector must pack p betas then p gammas")
