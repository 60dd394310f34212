// Package renderer turns tracker state into markdown. Every function is a
// pure projection: it reads state and returns a string, nothing else.
// Rounding happens here and only here; the domain keeps full precision.
package renderer

import (
	"fmt"
	"strings"
)

// mdBuilder accumulates a markdown document.
type mdBuilder struct {
	*strings.Builder
}

func newBuilder() *mdBuilder {
	return &mdBuilder{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the builder.
func (b *mdBuilder) Printf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}
