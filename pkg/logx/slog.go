package logx

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Uint32 logs narrow numeric ids (item ids, icon ids) without the caller
// widening them by hand.
func Uint32(name string, value uint32) slog.Attr {
	return slog.Uint64(name, uint64(value))
}
