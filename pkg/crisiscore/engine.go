// Package crisiscore is the embeddable Crisis Risk Assessment &
// Intervention Engine. It scans free-form text for self-harm risk signals,
// grades the risk, selects an escalation response, and durably logs every
// evaluation through a tiered fallback chain.
//
// Every public entry point degrades gracefully: no error or panic from this
// package ever interrupts the caller's crisis-response flow.
package crisiscore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/havenline/crisiscore/internal/assess"
	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/eventlog"
	"github.com/havenline/crisiscore/internal/platform"
	"github.com/havenline/crisiscore/internal/respond"
	"github.com/havenline/crisiscore/internal/safetyplan"
	"github.com/havenline/crisiscore/internal/stats"
	"github.com/havenline/crisiscore/internal/storage"
)

// Engine wires the scorer, orchestrator, logging pipeline, statistics, and
// safety plan store behind one instance. Create one per process.
type Engine struct {
	loader   *config.Loader
	scorer   *assess.Engine
	orch     *respond.Orchestrator
	logger   *eventlog.Logger
	reporter *stats.Reporter
	plans    *safetyplan.Manager
	launcher platform.Launcher
	signaler platform.Signaler
	applog   *eventlog.AppLog
	now      func() time.Time

	// Tracks in-flight async log writes so Close can drain them.
	wg sync.WaitGroup
}

type engineOptions struct {
	secure       storage.Store
	plain        storage.Store
	baseConfig   *config.Config
	overridePath string
	fetcher      config.Fetcher
	digest       platform.Digest
	notifier     eventlog.Notifier
	launcher     platform.Launcher
	signaler     platform.Signaler
	appLogPath   string
	now          func() time.Time
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithSecureStore sets the secure persistence namespace. Defaults to an
// in-memory store, which keeps the engine functional but non-durable.
func WithSecureStore(s storage.Store) Option { return func(o *engineOptions) { o.secure = s } }

// WithPlainStore sets the non-secure fallback namespace.
func WithPlainStore(s storage.Store) Option { return func(o *engineOptions) { o.plain = s } }

// WithConfigFile loads the local YAML override at path over the defaults.
// The path is also watched for hot reload if Watch is called.
func WithConfigFile(path string) Option { return func(o *engineOptions) { o.overridePath = path } }

// WithConfig installs a prebuilt base configuration, bypassing file loading.
func WithConfig(cfg *config.Config) Option { return func(o *engineOptions) { o.baseConfig = cfg } }

// WithRemoteEndpoint sets the remote configuration override URL. Empty
// means no remote fetch, which is not an error.
func WithRemoteEndpoint(url string) Option {
	return func(o *engineOptions) { o.fetcher = config.HTTPFetcher(url) }
}

// WithFetcher installs a custom remote override fetcher. Tests use this to
// count fetch invocations.
func WithFetcher(f config.Fetcher) Option { return func(o *engineOptions) { o.fetcher = f } }

// WithDigest replaces the default SHA-256 one-way hash.
func WithDigest(d platform.Digest) Option { return func(o *engineOptions) { o.digest = d } }

// WithNotifier installs the emergency contact notifier.
func WithNotifier(n eventlog.Notifier) Option { return func(o *engineOptions) { o.notifier = n } }

// WithLauncher installs the platform action launcher.
func WithLauncher(l platform.Launcher) Option { return func(o *engineOptions) { o.launcher = l } }

// WithSignaler installs the haptic/alert signal.
func WithSignaler(s platform.Signaler) Option { return func(o *engineOptions) { o.signaler = s } }

// WithAppLog sets the last-resort application log path.
func WithAppLog(path string) Option { return func(o *engineOptions) { o.appLogPath = path } }

// WithClock replaces wall time. Tests only.
func WithClock(now func() time.Time) Option { return func(o *engineOptions) { o.now = now } }

// New creates an engine. It never fails outright: a broken override file or
// an unopenable application log is reported on stderr and the engine runs
// with what it has.
func New(opts ...Option) *Engine {
	o := &engineOptions{
		digest:   platform.SHA256Digest,
		launcher: platform.NoopLauncher{},
		signaler: platform.StderrSignaler{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.secure == nil {
		o.secure = storage.NewMemoryStore()
	}
	if o.plain == nil {
		o.plain = storage.NewMemoryStore()
	}

	base, err := config.LoadFile(o.overridePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crisiscore: override not loaded, using defaults: %v\n", err)
		base = config.Default()
	}
	if o.baseConfig != nil {
		base = o.baseConfig
	}

	var applog *eventlog.AppLog
	if o.appLogPath != "" {
		applog, err = eventlog.OpenAppLog(o.appLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crisiscore: application log unavailable: %v\n", err)
		}
	}

	if o.notifier == nil {
		o.notifier = eventlog.SMSNotifier{Launcher: o.launcher}
	}

	loader := config.NewLoader(base, o.fetcher)
	logger := eventlog.NewLogger(o.secure, o.plain,
		eventlog.WithDigest(o.digest),
		eventlog.WithNotifier(o.notifier),
		eventlog.WithSignaler(o.signaler),
		eventlog.WithClock(o.now),
		eventlog.WithAppLog(applog),
	)

	return &Engine{
		loader:   loader,
		scorer:   assess.New(base),
		orch:     respond.New(o.now),
		logger:   logger,
		reporter: stats.New(logger, o.now),
		plans:    safetyplan.NewManager(o.secure, o.now),
		launcher: o.launcher,
		signaler: o.signaler,
		applog:   applog,
		now:      o.now,
	}
}

// EnsureLoaded performs the one-time remote configuration load and installs
// the merged snapshot into the scorer. Idempotent; safe for any number of
// concurrent callers, which collapse onto a single fetch. Fetch failures
// are absorbed: the engine keeps running on defaults.
func (e *Engine) EnsureLoaded(ctx context.Context) {
	if err := e.loader.EnsureLoaded(ctx); err != nil {
		// Only ctx expiry while another caller held the load.
		return
	}
	e.scorer.Reload(e.loader.Snapshot())
	if err := e.loader.LastError(); err != nil {
		fmt.Fprintf(os.Stderr, "crisiscore: remote configuration not applied: %v\n", err)
	}
}

// Watch starts the local override file watcher and blocks until ctx ends.
// Callers run it in a goroutine. Returns an error only if the watcher
// cannot be created.
func (e *Engine) Watch(ctx context.Context, path string) error {
	w, err := config.NewWatcher(e.loader, path, e.scorer.Reload)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Assess scores text against the active configuration. Empty or whitespace
// input yields a defined no-risk result. Never panics.
func (e *Engine) Assess(text string) (result AssessmentResult) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "crisiscore: assess recovered: %v\n", r)
			result = AssessmentResult{Level: RiskNone, Indicators: []string{}}
		}
	}()
	return e.scorer.Assess(text)
}

// Respond builds the intervention for result. Returns nil for level "none".
func (e *Engine) Respond(result AssessmentResult, user UserContext) (resp *CrisisResponse) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "crisiscore: respond recovered: %v\n", r)
			resp = nil
		}
	}()
	resp = e.orch.Respond(e.loader.Snapshot(), result, user)
	if resp != nil && result.Level == RiskCritical {
		e.signaler.Signal(context.Background(), "Critical risk response displayed")
	}
	return resp
}

// LogCrisisEvent records the evaluation asynchronously so the user-visible
// response is never blocked on persistence. All failures are handled inside
// the pipeline's fallback chain.
func (e *Engine) LogCrisisEvent(result AssessmentResult, user UserContext) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.logger.LogCrisisEvent(context.Background(), result, user)
	}()
}

// LogEmergencyAction records an escalation action with a hashed target.
// Non-fatal on failure; no fallback chain.
func (e *Engine) LogEmergencyAction(actionType ActionType, target string, success bool) {
	e.logger.LogEmergencyAction(context.Background(), actionType, target, success)
}

// ExecuteAction runs a response action through the platform launcher and
// records it. The returned error reports only that the device could not
// perform the action; the record is written either way.
func (e *Engine) ExecuteAction(ctx context.Context, action CrisisAction) error {
	err := platform.ExecuteAction(ctx, e.launcher, action)
	e.LogEmergencyAction(action.Type, action.Number, err == nil)
	return err
}

// GetStatistics aggregates the persisted logs.
func (e *Engine) GetStatistics(ctx context.Context) (Statistics, error) {
	return e.reporter.Statistics(ctx)
}

// Events returns the persisted crisis event log, oldest first.
func (e *Engine) Events(ctx context.Context) ([]CrisisEvent, error) {
	return e.logger.Events(ctx)
}

// PrepareProviderReport builds the anonymized provider summary of event.
func (e *Engine) PrepareProviderReport(event CrisisEvent) ProviderReport {
	return stats.PrepareProviderReport(event, e.now)
}

// CreateSafetyPlan stores a new plan, injecting canonical fallback contacts
// if the input carries none.
func (e *Engine) CreateSafetyPlan(ctx context.Context, plan SafetyPlan) (SafetyPlan, error) {
	return e.plans.Create(ctx, plan)
}

// GetSafetyPlan returns the stored plan, or nil when none exists.
func (e *Engine) GetSafetyPlan(ctx context.Context) (*SafetyPlan, error) {
	return e.plans.Get(ctx)
}

// UpdateSafetyPlan applies updates over the stored plan, bumping its version.
func (e *Engine) UpdateSafetyPlan(ctx context.Context, updates SafetyPlan) (SafetyPlan, error) {
	return e.plans.Update(ctx, updates)
}

// Config returns the active configuration snapshot.
func (e *Engine) Config() *config.Config {
	return e.loader.Snapshot()
}

// Close drains in-flight log writes and closes the application log.
func (e *Engine) Close() error {
	e.wg.Wait()
	if e.applog != nil {
		return e.applog.Close()
	}
	return nil
}
