// Package onelog wraps go-kratos/kratos's structured logger: a thin
// re-export plus a couple of helpers for attaching this module's own
// *errs.Error context fields (property ID, stream-object type, byte
// offset) as structured key/value pairs instead of folding them into
// the message string.
package onelog

import (
	"os"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/onenote-go/onenote/errs"
)

// Logger and Helper are re-exported so callers never need to
// import go-kratos/kratos/v2/log directly to build an Options.Logger.
type (
	Logger = log.Logger
	Helper = log.Helper
)

// NewStdLogger builds the default logger used when Options.Logger is nil:
// stderr, filtered to error level.
func NewStdLogger() *Helper {
	base := log.NewStdLogger(os.Stderr)
	return log.NewHelper(log.NewFilter(base, log.FilterLevel(log.LevelError)))
}

// NewHelper wraps a caller-supplied Logger.
func NewHelper(l Logger) *Helper {
	return log.NewHelper(l)
}

// Fields flattens an *errs.Error's structured context into a go-kratos
// key/value slice suitable for Helper.Errorw/Warnw, so a caller logs the
// same PropertyID/ObjectType/Offset fields onelog exports instead of
// re-parsing them out of Error() 's message.
func Fields(err *errs.Error) []interface{} {
	kv := []interface{}{"kind", err.Kind.String()}
	if err.PropertyID != 0 {
		kv = append(kv, "property_id", err.PropertyID)
	}
	if err.ObjectType != 0 {
		kv = append(kv, "object_type", err.ObjectType)
	}
	if err.Offset != 0 {
		kv = append(kv, "offset", err.Offset)
	}
	return kv
}
