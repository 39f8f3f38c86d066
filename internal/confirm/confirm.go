// Package confirm turns a "needs user confirmation" request into a
// blocking yes/no answer, decoupling business logic from how the
// question is rendered.
package confirm

import (
	"context"
	"errors"
	"sync"
)

// Kind categorizes a confirmation request for presentation purposes.
type Kind string

const (
	KindDanger  Kind = "danger"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// ErrPending is returned when Request is called while another request is
// still unresolved. The first request's answer is never dropped.
var ErrPending = errors.New("confirm: another confirmation is already pending")

// Request describes one decision put to the user.
// It is resolved exactly once, then discarded.
type Request struct {
	Title   string
	Message string
	Kind    Kind

	done chan bool
}

// Controller is a single-slot pending-request register. Business logic
// calls Request and blocks until a presenter resolves the request;
// presenters observe new requests through the render trigger installed
// with SetPresenter and answer via Resolve or Dismiss.
type Controller struct {
	mu      sync.Mutex
	pending *Request
	notify  func(*Request)
}

// New creates a controller with no presenter attached. Without a
// presenter, Request blocks until Resolve is called from elsewhere.
func New() *Controller {
	return &Controller{}
}

// SetPresenter installs the render trigger invoked for each new request.
// The presenter runs on the caller's goroutine of Request and may
// resolve the request before returning.
func (c *Controller) SetPresenter(fn func(*Request)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

// Request registers a pending confirmation and blocks until it is
// resolved. It returns true on accept and false on decline or dismissal.
// Declines are a normal negative-path answer, not an error.
//
// Only one request may be outstanding at a time; a second concurrent
// call returns ErrPending.
func (c *Controller) Request(ctx context.Context, title, message string, kind Kind) (bool, error) {
	c.mu.Lock()
	if c.pending != nil {
		c.mu.Unlock()
		return false, ErrPending
	}
	req := &Request{
		Title:   title,
		Message: message,
		Kind:    kind,
		done:    make(chan bool, 1),
	}
	c.pending = req
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify(req)
	}

	select {
	case accepted := <-req.done:
		return accepted, nil
	case <-ctx.Done():
		c.clear(req)
		return false, ctx.Err()
	}
}

// Pending returns the outstanding request, or nil if there is none.
func (c *Controller) Pending() *Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Resolve answers the outstanding request. It is a no-op if nothing is
// pending; resolving twice has no effect beyond the first answer.
func (c *Controller) Resolve(accepted bool) {
	c.mu.Lock()
	req := c.pending
	c.pending = nil
	c.mu.Unlock()

	if req != nil {
		req.done <- accepted
	}
}

// Dismiss closes the outstanding request without an explicit choice,
// which counts as a decline.
func (c *Controller) Dismiss() {
	c.Resolve(false)
}

func (c *Controller) clear(req *Request) {
	c.mu.Lock()
	if c.pending == req {
		c.pending = nil
	}
	c.mu.Unlock()
}
