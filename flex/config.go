package flex

import (
	"fmt"
	"os"
	"sync/atomic"
)

// LoggerFunc receives every message the engine emits. node may be nil for
// config-scoped messages. The return value is the number of bytes written,
// mirroring the printf-style contract of the default logger.
type LoggerFunc func(config *Config, node *Node, level LogLevel, format string, args ...interface{}) int

// ClonedFunc is invoked whenever the engine clones a shared child during
// copy-on-write, so callers can rewire their own bookkeeping.
type ClonedFunc func(oldNode, newNode, parent *Node, childIndex int)

// Config carries caller-scoped knobs shared by any number of nodes. It also
// owns the layout generation counter, so concurrent layouts of trees with
// separate configs never interfere.
type Config struct {
	experimentalFeatures [experimentalFeatureCount]bool

	useWebDefaults            bool
	useLegacyStretchBehaviour bool

	// shouldDiffLayoutWithoutLegacyStretchBehaviour re-runs a layout that hit
	// the legacy stretch path with the flag disabled and records whether the
	// results differ.
	shouldDiffLayoutWithoutLegacyStretchBehaviour bool

	pointScaleFactor float64

	logger LoggerFunc
	cloned ClonedFunc

	context interface{}

	// generationCount is bumped once per CalculateLayout to invalidate stale
	// cache entries across passes.
	generationCount uint32
}

// Leak-check counters. Free and FreeConfig decrement them; a nonzero count at
// teardown means nodes or configs were dropped without being freed.
var (
	nodeInstanceCount   int32
	configInstanceCount int32
)

// NodeCount returns the number of live nodes.
func NodeCount() int {
	return int(atomic.LoadInt32(&nodeInstanceCount))
}

// ConfigCount returns the number of live configs.
func ConfigCount() int {
	return int(atomic.LoadInt32(&configInstanceCount))
}

func defaultLogger(config *Config, node *Node, level LogLevel, format string, args ...interface{}) int {
	var n int
	switch level {
	case LogLevelError, LogLevelFatal:
		n, _ = fmt.Fprintf(os.Stderr, format, args...)
	default:
		n, _ = fmt.Fprintf(os.Stdout, format, args...)
	}
	return n
}

// NewConfig returns a config with pixel rounding enabled at scale 1.
func NewConfig() *Config {
	atomic.AddInt32(&configInstanceCount, 1)
	return &Config{
		pointScaleFactor: 1,
		logger:           defaultLogger,
	}
}

// FreeConfig releases the config for leak accounting. The config must not be
// referenced by any live node afterwards.
func FreeConfig(config *Config) {
	atomic.AddInt32(&configInstanceCount, -1)
}

// CopyConfig copies every knob from src onto dst. The generation counter is
// copied too, matching the whole-struct copy of the C lineage.
func CopyConfig(dst, src *Config) {
	*dst = *src
}

func configClone(src *Config) *Config {
	atomic.AddInt32(&configInstanceCount, 1)
	clone := *src
	return &clone
}

// SetExperimentalFeatureEnabled toggles an opt-in behavior change.
func (c *Config) SetExperimentalFeatureEnabled(feature ExperimentalFeature, enabled bool) {
	c.experimentalFeatures[feature] = enabled
}

// IsExperimentalFeatureEnabled reports whether a feature is on.
func (c *Config) IsExperimentalFeatureEnabled(feature ExperimentalFeature) bool {
	return c.experimentalFeatures[feature]
}

// SetUseWebDefaults switches new nodes to browser-compatible defaults:
// row main axis, stretch align-content, flex-shrink 1.
func (c *Config) SetUseWebDefaults(enabled bool) {
	c.useWebDefaults = enabled
}

// UseWebDefaults reports whether web defaults are active.
func (c *Config) UseWebDefaults() bool {
	return c.useWebDefaults
}

// SetUseLegacyStretchBehaviour keeps the pre-fix stretch sizing for trees that
// still depend on it.
func (c *Config) SetUseLegacyStretchBehaviour(enabled bool) {
	c.useLegacyStretchBehaviour = enabled
}

// SetShouldDiffLayoutWithoutLegacyStretchBehaviour enables the shadow layout
// comparing legacy and fixed stretch results.
func (c *Config) SetShouldDiffLayoutWithoutLegacyStretchBehaviour(enabled bool) {
	c.shouldDiffLayoutWithoutLegacyStretchBehaviour = enabled
}

// SetPointScaleFactor sets how many pixels one point maps to on the target
// surface. Zero disables pixel-grid rounding entirely.
func (c *Config) SetPointScaleFactor(pixelsInPoint float64) {
	assertWithConfig(c, pixelsInPoint >= 0, "Scale factor should not be less than zero")
	c.pointScaleFactor = pixelsInPoint
}

// SetLogger replaces the config logger; nil restores the default.
func (c *Config) SetLogger(logger LoggerFunc) {
	if logger != nil {
		c.logger = logger
	} else {
		c.logger = defaultLogger
	}
}

// SetNodeClonedFunc registers the copy-on-write notification callback.
func (c *Config) SetNodeClonedFunc(cloned ClonedFunc) {
	c.cloned = cloned
}

// SetContext attaches caller data to the config.
func (c *Config) SetContext(context interface{}) {
	c.context = context
}

// Context returns the caller data attached to the config.
func (c *Config) Context() interface{} {
	return c.context
}

// log routes a message through the config logger. Fatal messages panic after
// logging; there is no recovery path from a precondition violation.
func log(config *Config, node *Node, level LogLevel, format string, args ...interface{}) {
	logger := defaultLogger
	if config != nil && config.logger != nil {
		logger = config.logger
	}
	logger(config, node, level, format, args...)

	if level == LogLevelFatal {
		panic(fmt.Sprintf(format, args...))
	}
}

func assertWithNode(node *Node, condition bool, message string) {
	if !condition {
		var config *Config
		if node != nil {
			config = node.config
		}
		log(config, node, LogLevelFatal, "%s\n", message)
	}
}

func assertWithConfig(config *Config, condition bool, message string) {
	if !condition {
		log(config, nil, LogLevelFatal, "%s\n", message)
	}
}
