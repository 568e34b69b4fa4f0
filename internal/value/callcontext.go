package value

import (
	"io"

	"github.com/nutmeg-lang/nutmeg/internal/token"
)

// CallContext is the slice of interpreter state a BuiltIn needs to do
// its job, threaded down explicitly rather than via a package-level
// global so interpreter instances never share state.
type CallContext struct {
	Span token.Span
	Out  io.Writer
	Exit func(code int32)
}
