package util

import (
	"log/slog"
	"time"
)

// Trace 打点计时，用法：defer util.Trace("stage name")()
func Trace(name string) func() {
	start := time.Now()
	return func() {
		slog.Info("trace", "name", name, "cost", time.Since(start))
	}
}
