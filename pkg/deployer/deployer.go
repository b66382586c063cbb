/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package deployer

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jcriveros/devaci/pkg/apic"
	"github.com/jcriveros/devaci/pkg/mit"
	"github.com/jcriveros/devaci/pkg/model"
	"github.com/jcriveros/devaci/pkg/render"
)

// DefaultRecordPath is where run results land unless configured otherwise.
const DefaultRecordPath = "logging.json"

// Deployer drives configuration runs against one controller.
type Deployer struct {
	host       string
	username   string
	password   string
	secure     bool
	timeout    time.Duration
	testing    bool
	xml        bool
	recordPath string
	vars       map[string]any
	templates  []string

	renderer *render.Renderer
	log      *slog.Logger
}

// Option configures a Deployer.
type Option func(*Deployer)

// WithHost sets the controller address.
func WithHost(host string) Option {
	return func(d *Deployer) {
		if host != "" {
			d.host = host
		}
	}
}

// WithCredentials sets the login identity.
func WithCredentials(username, password string) Option {
	return func(d *Deployer) {
		if username != "" {
			d.username = username
		}
		d.password = password
	}
}

// WithSecure enables certificate verification on the controller session.
func WithSecure(secure bool) Option {
	return func(d *Deployer) {
		d.secure = secure
	}
}

// WithTimeout bounds each controller request.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Deployer) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithTesting makes Deploy render and build only, never touching the
// controller.
func WithTesting(testing bool) Option {
	return func(d *Deployer) {
		d.testing = testing
	}
}

// WithXML commits configuration as XML instead of JSON.
func WithXML(xml bool) Option {
	return func(d *Deployer) {
		d.xml = xml
	}
}

// WithRecordPath sets where run results are recorded. Empty disables
// recording.
func WithRecordPath(path string) Option {
	return func(d *Deployer) {
		d.recordPath = path
	}
}

// WithVars sets the template context.
func WithVars(vars map[string]any) Option {
	return func(d *Deployer) {
		d.vars = vars
	}
}

// WithTemplates replaces the template list.
func WithTemplates(paths []string) Option {
	return func(d *Deployer) {
		d.templates = append([]string(nil), paths...)
	}
}

// WithLogger sets the run logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Deployer) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a Deployer with controller and record defaults in place.
func New(opts ...Option) *Deployer {
	d := &Deployer{
		host:       apic.DefaultHost,
		username:   apic.DefaultUsername,
		timeout:    apic.DefaultTimeout,
		recordPath: DefaultRecordPath,
		renderer:   render.NewRenderer(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddTemplate appends one template to the run.
func (d *Deployer) AddTemplate(path string) {
	d.templates = append(d.templates, path)
}

// SetTemplates replaces the template list.
func (d *Deployer) SetTemplates(paths []string) {
	d.templates = append([]string(nil), paths...)
}

// Templates returns the configured template paths.
func (d *Deployer) Templates() []string {
	return append([]string(nil), d.templates...)
}

// RecordPath returns where run results are recorded.
func (d *Deployer) RecordPath() string {
	return d.recordPath
}

// build renders one template and assembles its managed object tree.
func (d *Deployer) build(path string) (*mit.ConfigRequest, TemplateResult) {
	tr := TemplateResult{Template: filepath.Base(path)}

	doc, err := d.renderer.RenderFile(path, d.vars)
	if err != nil {
		tr.Log = append(tr.Log, err.Error())
		renderFailuresTotal.Inc()
		return nil, tr
	}

	req := mit.NewConfigRequest()
	logs, ok := model.Apply(req, doc)
	tr.Log = append(tr.Log, logs...)
	if !ok {
		renderFailuresTotal.Inc()
		return nil, tr
	}
	if req.Empty() {
		tr.Log = append(tr.Log, "template produced no configuration")
		renderFailuresTotal.Inc()
		return nil, tr
	}

	tr.Success = true
	tr.Objects = req.Count()
	return req, tr
}

// newResult stamps a fresh run result.
func (d *Deployer) newResult() *Result {
	return &Result{
		ID:   uuid.NewString(),
		Date: time.Now().Format(time.RFC3339),
		Host: d.host,
	}
}

// Check renders and builds every template concurrently without contacting
// the controller. Payloads are included so the operator can inspect what
// would be committed.
func (d *Deployer) Check(ctx context.Context) (*Result, error) {
	result := d.newResult()
	result.Testing = true

	if len(d.templates) == 0 {
		result.Message = "no templates configured"
		return result, nil
	}

	results := make([]TemplateResult, len(d.templates))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range d.templates {
		g.Go(func() error {
			req, tr := d.build(path)
			if req != nil {
				if payload, err := req.Payload(); err == nil {
					tr.Payload = payload
				}
			}
			results[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Success = true
	for _, tr := range results {
		if !tr.Success {
			result.Success = false
		}
		templatesTotal.WithLabelValues(statusOf(tr.Success)).Inc()
		d.log.Info("template checked",
			"template", tr.Template,
			"success", tr.Success,
			"objects", tr.Objects)
	}
	result.Output = results
	return result, nil
}

// Deploy runs the configured templates against the controller. Templates
// commit in order and a failed template does not stop the ones after it.
// In testing mode Deploy only renders and builds. A failed login returns
// the stamped result alongside the error so the run can still be recorded.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	if d.testing {
		return d.Check(ctx)
	}

	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	result := d.newResult()
	if len(d.templates) == 0 {
		result.Message = "no templates configured"
		runsTotal.WithLabelValues(statusFailure).Inc()
		return result, nil
	}

	client := apic.NewClient(d.host,
		apic.WithCredentials(d.username, d.password),
		apic.WithSecure(d.secure),
		apic.WithTimeout(d.timeout),
		apic.WithLogger(d.log),
	)
	if err := client.Login(ctx); err != nil {
		result.Message = err.Error()
		runsTotal.WithLabelValues(statusFailure).Inc()
		return result, err
	}
	defer func() {
		if err := client.Logout(context.WithoutCancel(ctx)); err != nil {
			d.log.Warn("logout failed", "error", err)
		}
	}()

	format := apic.FormatJSON
	if d.xml {
		format = apic.FormatXML
	}

	result.Success = true
	for _, path := range d.templates {
		req, tr := d.build(path)
		if tr.Success {
			commitStart := time.Now()
			if err := client.Commit(ctx, req, format); err != nil {
				tr.Success = false
				tr.Log = append(tr.Log, err.Error())
			}
			commitDuration.Observe(time.Since(commitStart).Seconds())
		}
		if !tr.Success {
			result.Success = false
		}
		templatesTotal.WithLabelValues(statusOf(tr.Success)).Inc()
		result.Output = append(result.Output, tr)
		d.log.Info("template deployed",
			"template", tr.Template,
			"success", tr.Success,
			"objects", tr.Objects)
	}

	runsTotal.WithLabelValues(statusOf(result.Success)).Inc()
	return result, nil
}
