package liquid

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osteele/liquid"
)

// Security limits for template rendering
const (
	DefaultRenderTimeout   = 5 * time.Second
	DefaultMaxTemplateSize = 100 * 1024 // 100KB
)

// Renderer parses named Liquid templates once and renders them with a timeout
type Renderer struct {
	engine    *liquid.Engine
	timeout   time.Duration
	maxSize   int
	mu        sync.RWMutex
	templates map[string]*liquid.Template
}

type Option func(*Renderer)

func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) { r.timeout = d }
}

func WithMaxTemplateSize(n int) Option {
	return func(r *Renderer) { r.maxSize = n }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		engine:    liquid.NewEngine(),
		timeout:   DefaultRenderTimeout,
		maxSize:   DefaultMaxTemplateSize,
		templates: make(map[string]*liquid.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.engine.RegisterFilter("initials", initials)
	return r
}

// Register parses source and stores it under name, replacing any previous version
func (r *Renderer) Register(name, source string) error {
	if len(source) > r.maxSize {
		return fmt.Errorf("template %q size (%d bytes) exceeds maximum allowed size (%d bytes)", name, len(source), r.maxSize)
	}
	tpl, err := r.engine.ParseString(source)
	if err != nil {
		return fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	r.mu.Lock()
	r.templates[name] = tpl
	r.mu.Unlock()
	return nil
}

// Render executes a registered template
func (r *Renderer) Render(ctx context.Context, name string, data map[string]interface{}) (string, error) {
	r.mu.RLock()
	tpl, ok := r.templates[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %q is not registered", name)
	}

	return r.withTimeout(ctx, func() (string, error) {
		return tpl.RenderString(liquid.Bindings(data))
	})
}

// RenderString parses and renders an ad hoc template
func (r *Renderer) RenderString(ctx context.Context, source string, data map[string]interface{}) (string, error) {
	if len(source) > r.maxSize {
		return "", fmt.Errorf("template size (%d bytes) exceeds maximum allowed size (%d bytes)", len(source), r.maxSize)
	}
	return r.withTimeout(ctx, func() (string, error) {
		return r.engine.ParseAndRenderString(source, data)
	})
}

func (r *Renderer) withTimeout(ctx context.Context, render func() (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("panic during liquid rendering: %v", p)}
			}
		}()
		out, err := render()
		if err != nil {
			done <- result{err: fmt.Errorf("liquid rendering failed: %w", err)}
			return
		}
		done <- result{out: out}
	}()

	select {
	case res := <-done:
		return res.out, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("liquid rendering timeout after %v", r.timeout)
	}
}

// initials turns "Ron Hezykiel Arbois" into "RHA"
func initials(s string) string {
	out := make([]rune, 0, 3)
	start := true
	for _, c := range s {
		if c == ' ' || c == '-' {
			start = true
			continue
		}
		if start {
			out = append(out, c)
			start = false
		}
	}
	return string(out)
}
