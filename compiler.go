package vcl

import (
	"time"

	"github.com/gofhir/vcl/cache"
	"github.com/gofhir/vcl/compose"
	"github.com/gofhir/vcl/logger"
)

// Compiler is the front end a terminology service embeds: it parses VCL
// expressions into compositions, memoizes results, and tracks metrics.
// Parsing itself is pure; the Compiler adds the process-level concerns
// around it. All methods are safe for concurrent use.
type Compiler struct {
	options *Options
	cache   *cache.Cache[string, *compose.ValueSet]
	metrics *Metrics
	seq     *Sequence
	log     *logger.Logger
}

// defaultCompiler backs the package-level functions.
var defaultCompiler = New()

// New creates a Compiler with the given options.
func New(opts ...Option) *Compiler {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &Compiler{
		options: options,
		metrics: NewMetrics(),
		seq:     options.Sequence,
		log:     options.Logger,
	}
	if c.seq == nil {
		c.seq = NewSequence()
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	if options.CacheSize > 0 {
		c.cache = cache.New[string, *compose.ValueSet](options.CacheSize)
	}
	return c
}

// Parse compiles an expression into a ValueSet-wrapped composition.
// Results are cloned out of the memo cache, so every caller owns its value.
func (c *Compiler) Parse(text string) (*compose.ValueSet, error) {
	start := time.Now()

	if c.cache != nil {
		if vs, ok := c.cache.Get(text); ok {
			c.metrics.RecordCacheHit()
			return vs.Clone(), nil
		}
		c.metrics.RecordCacheMiss()
	}

	comp, err := parseExpression(text)
	c.metrics.RecordParse(time.Since(start), err == nil)
	if err != nil {
		c.log.Debug("parse failed: %v", err)
		return nil, err
	}

	vs := compose.NewSkeleton("", "", "")
	vs.Compose = comp
	if c.cache != nil {
		c.cache.Set(text, vs)
		return vs.Clone(), nil
	}
	return vs, nil
}

// ParseAndAssignID compiles the expression and stamps the result with the
// next "cid:<n>" identifier from the Compiler's sequence.
func (c *Compiler) ParseAndAssignID(text string) (*compose.ValueSet, error) {
	vs, err := c.Parse(text)
	if err != nil {
		return nil, err
	}
	assignID(vs, c.seq)
	return vs, nil
}

// ValidateExpression reports whether the expression parses, never failing.
func (c *Compiler) ValidateExpression(text string) bool {
	_, err := c.Parse(text)
	return err == nil
}

// Metrics returns the Compiler's metrics for inspection.
func (c *Compiler) Metrics() *Metrics {
	return c.metrics
}
