// Package logging provides categorized logging for relomark.
// Until Initialize is called every logger is a no-op, so library code can
// log unconditionally and tests stay quiet.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem for log routing.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, plan resolution
	CategoryPlan   Category = "plan"   // Plan loading and validation
	CategoryLocate Category = "locate" // Marker scans and ordering checks
	CategoryWrite  Category = "write"  // Staged writes and renames
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Initialize builds the process logger. verbose switches to debug level.
// Should be called once at startup.
func Initialize(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	base = logger
	mu.Unlock()
	return nil
}

// L returns the current process logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Get returns a sugared logger named for the category.
func Get(c Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sugar().Named(string(c))
}

// Sync flushes buffered entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

// BootDebug logs debug to the boot category
func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debugf(format, args...)
}

// Plan logs to the plan category
func Plan(format string, args ...interface{}) {
	Get(CategoryPlan).Infof(format, args...)
}

// PlanDebug logs debug to the plan category
func PlanDebug(format string, args ...interface{}) {
	Get(CategoryPlan).Debugf(format, args...)
}

// Locate logs to the locate category
func Locate(format string, args ...interface{}) {
	Get(CategoryLocate).Infof(format, args...)
}

// LocateDebug logs debug to the locate category
func LocateDebug(format string, args ...interface{}) {
	Get(CategoryLocate).Debugf(format, args...)
}

// Write logs to the write category
func Write(format string, args ...interface{}) {
	Get(CategoryWrite).Infof(format, args...)
}

// WriteDebug logs debug to the write category
func WriteDebug(format string, args ...interface{}) {
	Get(CategoryWrite).Debugf(format, args...)
}

// WriteError logs error to the write category
func WriteError(format string, args ...interface{}) {
	Get(CategoryWrite).Errorf(format, args...)
}
