package geodesy

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// CacheOptions configures a BoundsCache.
type CacheOptions struct {
	// MaxEntries bounds the number of cached boxes. When the limit is
	// reached the least recently used entry is evicted. Zero means
	// unbounded: entries only leave through Remove or Clear.
	MaxEntries int `yaml:"max_entries"`

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger `yaml:"-"`
}

// DefaultCacheOptions returns an unbounded cache without logging.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		MaxEntries: 0,
		Logger:     nil,
	}
}

// IndexOptions configures an Index.
type IndexOptions struct {
	// MinChildren and MaxChildren are the R-tree node fan-out bounds.
	MinChildren int `yaml:"min_children"`
	MaxChildren int `yaml:"max_children"`

	// Epsilon is the minimum extent of an indexed box on every axis, in axis
	// units. Points and axis-aligned lines are padded to it.
	Epsilon float64 `yaml:"epsilon"`

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger `yaml:"-"`
}

// DefaultIndexOptions returns options suited to geographic data: fan-out
// 25..50 and an epsilon of 0.0001 (about 11 m of latitude).
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{
		MinChildren: 25,
		MaxChildren: 50,
		Epsilon:     0.0001,
	}
}

// BezierOptions holds spline parameters for LineString.BezierWith.
type BezierOptions struct {
	Sharpness  float64 `yaml:"sharpness"`
	Resolution int     `yaml:"resolution"`
}

// DefaultBezierOptions returns a moderately smooth curve with 16 samples per
// segment.
func DefaultBezierOptions() BezierOptions {
	return BezierOptions{
		Sharpness:  0.5,
		Resolution: 16,
	}
}

// Options groups the tunables of the stateful helpers, for services that
// configure them from a file.
type Options struct {
	Cache  CacheOptions  `yaml:"cache"`
	Index  IndexOptions  `yaml:"index"`
	Bezier BezierOptions `yaml:"bezier"`
}

// DefaultOptions returns the defaults of every component.
func DefaultOptions() Options {
	return Options{
		Cache:  DefaultCacheOptions(),
		Index:  DefaultIndexOptions(),
		Bezier: DefaultBezierOptions(),
	}
}

// ParseOptions decodes YAML over the defaults, so omitted keys keep their
// default values.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return ParseOptions(data)
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must be >= 0, got %d", o.Cache.MaxEntries)
	}
	if o.Index.MinChildren < 1 || o.Index.MaxChildren < 2*o.Index.MinChildren {
		return fmt.Errorf("index children must satisfy 1 <= min and 2*min <= max, got %d..%d",
			o.Index.MinChildren, o.Index.MaxChildren)
	}
	if !(o.Index.Epsilon > 0) {
		return fmt.Errorf("index.epsilon must be > 0, got %v", o.Index.Epsilon)
	}
	if !(o.Bezier.Sharpness >= 0 && o.Bezier.Sharpness <= 1) {
		return fmt.Errorf("bezier.sharpness must be in [0, 1], got %v", o.Bezier.Sharpness)
	}
	if o.Bezier.Resolution < 1 {
		return fmt.Errorf("bezier.resolution must be >= 1, got %d", o.Bezier.Resolution)
	}
	return nil
}

func loggerOrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
