package negotiate

import (
	"time"

	"github.com/trpc-ecosystem/negotiate/accept"
	"github.com/trpc-ecosystem/negotiate/cache"
	"github.com/trpc-ecosystem/negotiate/digest"
	"github.com/trpc-ecosystem/negotiate/internal/config"
	"github.com/trpc-ecosystem/negotiate/log"
	"github.com/trpc-ecosystem/negotiate/metrics"
)

// Matcher selects, for a given Accept header, the best media type among a
// fixed, ordered list of server-offered types. Registration order is
// semantically significant: the first type is the server's default (used
// when the Accept header is absent) and earlier types win ties when
// several offered types score identically against the header.
type Matcher struct {
	digests []digest.Type
	cache   *cache.Cache
	logger  log.Logger
	metrics metrics.Recorder
}

// Option configures a Matcher at construction time.
type Option func(*config.Options)

// WithCacheSize overrides the matcher cache's bound (default
// cache.DefaultSize).
func WithCacheSize(n int) Option {
	return func(o *config.Options) { o.CacheSize = n }
}

// WithLogger attaches a log.Logger for the matcher's debug-level
// diagnostic sites: cache eviction and malformed-header rejection. The
// default is a no-op logger, keeping the module silent unless the embedder
// opts in.
func WithLogger(logger log.Logger) Option {
	return func(o *config.Options) { o.Logger = logger }
}

// WithMetrics attaches a metrics.Recorder that observes every Select call:
// request counts, rejections, unmatched results, cache hit/miss counts, and
// the latency of uncached matches. The default is metrics.NopRecorder{}.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(o *config.Options) { o.Metrics = recorder }
}

// ErrNoServerTypes is returned by New when serverTypes is empty.
var ErrNoServerTypes = errNoServerTypes{}

type errNoServerTypes struct{}

func (errNoServerTypes) Error() string {
	return "negotiate: at least one server media type is required"
}

// New constructs a Matcher over serverTypes, an ordered, non-empty list of
// media type strings such as "application/json" or
// "application/json;charset=utf-8". The digester is lax and does not
// validate these strings; registration order is preserved and is the
// tie-break used by Select.
func New(serverTypes []string, opts ...Option) (*Matcher, error) {
	if len(serverTypes) == 0 {
		return nil, ErrNoServerTypes
	}

	o := config.Default()
	for _, opt := range opts {
		opt(&o)
	}

	m := o.Metrics
	if m == nil {
		m = metrics.NopRecorder{}
	}

	return &Matcher{
		digests: digest.Digest(serverTypes),
		cache:   cache.New(o.CacheSize, o.Logger),
		logger:  o.Logger,
		metrics: m,
	}, nil
}

// Select returns the best server media type for header, the raw Accept
// header value, or ("", false) if no acceptable representation exists.
// header == nil means the header is absent from the request: an absent
// Accept means the client expresses no preference, so the server returns
// its own preferred default — the first type it registered.
//
// A malformed header is treated the same as "no match" here: it is logged
// at debug level and Select returns ("", false). Callers that need to
// distinguish a parse error (HTTP 400) from a valid-but-unsatisfiable
// header (HTTP 406) should use SelectOrError instead.
func (m *Matcher) Select(header *string) (string, bool) {
	result, matched, err := m.SelectOrError(header)
	if err != nil {
		return "", false
	}
	return result, matched
}

// SelectOrError is Select, but surfaces the Accept parser's error instead
// of folding it into "no match". This is what an HTTP-facing caller wants:
// malformed header → 400, no match → 406, match → 200.
func (m *Matcher) SelectOrError(header *string) (string, bool, error) {
	m.metrics.IncRequests()

	if header == nil {
		return m.digests[0].OriginalType, true, nil
	}

	if result, matched, found := m.cache.Get(*header); found {
		m.metrics.IncCacheHit()
		return result, matched, nil
	}
	m.metrics.IncCacheMiss()

	start := time.Now()
	ranges, err := accept.Parse(*header)
	if err != nil {
		m.logger.Debugf("negotiate: rejecting malformed accept header %q: %v", *header, err)
		m.metrics.IncRejected()
		return "", false, err
	}
	accept.SortByPrecedence(ranges)

	result, matched := m.bestMatch(ranges)
	m.metrics.ObserveLatency(float64(time.Since(start).Microseconds()) / 1000)
	if !matched {
		m.metrics.IncUnmatched()
	}
	m.cache.Put(*header, result, matched)
	return result, matched, nil
}

// bestMatch: for each server digest in registration order, find the first
// (highest-precedence) client range that matches it; among digests that
// found a match, the one whose matching range has the highest q wins, ties
// broken by registration order. A q=0 match still counts as a match unless
// beaten by a strictly greater q, a deliberate divergence from strict
// RFC 9110 semantics, which would treat q=0 as outright rejection.
func (m *Matcher) bestMatch(ranges []accept.Range) (string, bool) {
	var (
		bestDigest *digest.Type
		bestQ      float64
		found      bool
	)

	for i := range m.digests {
		d := &m.digests[i]
		r := firstMatch(d, ranges)
		if r == nil {
			continue
		}
		if !found || r.Q > bestQ {
			bestDigest = d
			bestQ = r.Q
			found = true
		}
	}

	if !found {
		return "", false
	}
	return bestDigest.OriginalType, true
}

// firstMatch returns the highest-precedence range in ranges (already sorted
// descending by precedence) that matches d, or nil if none does.
func firstMatch(d *digest.Type, ranges []accept.Range) *accept.Range {
	for i := range ranges {
		if rangeMatches(&ranges[i], d) {
			return &ranges[i]
		}
	}
	return nil
}

// rangeMatches reports whether client range r covers server digest d.
func rangeMatches(r *accept.Range, d *digest.Type) bool {
	if r.Type == "*" {
		return true
	}
	if r.Type != d.Type {
		return false
	}
	if r.Subtype == "*" {
		return true
	}
	if r.Subtype != d.Subtype {
		return false
	}
	for _, p := range r.Parameters {
		if d.Parameters[p.Name] != p.Value {
			return false
		}
	}
	return true
}
