package command

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"webconsole/contract"
	"webconsole/domain"
	"webconsole/errors"
)

type unknownCommandHandler struct{}

func (unknownCommandHandler) Handle(cmd domain.Command) error {
	return cmd.Respond("Unknown command: " + cmd.Name())
}

// DefaultUnknownHandler tells the sender that its command is not registered.
var DefaultUnknownHandler contract.CommandHandler = unknownCommandHandler{}

// Registry maps command names to handlers. Names are case-sensitive.
// Commands without a handler go to the unknown-command handler, if any.
//
// Registry is safe for concurrent use. Handlers run on the goroutine that
// supplied the message and may modify the registry themselves.
type Registry struct {
	log      *slog.Logger
	observer contract.DispatchObserver

	mu       sync.RWMutex
	handlers map[string]contract.CommandHandler
	unknown  contract.CommandHandler
}

type Option func(*Registry)

// WithUnknownHandler replaces DefaultUnknownHandler. A nil handler makes
// the registry drop unknown commands silently.
func WithUnknownHandler(handler contract.CommandHandler) Option {
	return func(r *Registry) { r.unknown = handler }
}

func WithObserver(observer contract.DispatchObserver) Option {
	return func(r *Registry) { r.observer = observer }
}

func NewRegistry(log *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		log:      log,
		handlers: make(map[string]contract.CommandHandler),
		unknown:  DefaultUnknownHandler,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Put sets the handler for name, replacing any previous one.
func (r *Registry) Put(name string, handler contract.CommandHandler) error {
	if name == "" {
		return fmt.Errorf("empty command name: %w", errors.ErrInvalidArgument)
	}
	if handler == nil {
		return fmt.Errorf("nil handler for %q: %w", name, errors.ErrInvalidArgument)
	}

	r.mu.Lock()
	r.handlers[name] = handler
	r.mu.Unlock()

	r.log.Debug("Command handler set", "command", name)
	return nil
}

func (r *Registry) Remove(name string) {
	r.mu.Lock()
	_, ok := r.handlers[name]
	delete(r.handlers, name)
	r.mu.Unlock()

	if ok {
		r.log.Debug("Command handler removed", "command", name)
	}
}

// Commands yields the registered names in no particular order. Each range
// over the sequence reads the registry again.
func (r *Registry) Commands() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.mu.RLock()
		names := lo.Keys(r.handlers)
		r.mu.RUnlock()

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

func (r *Registry) Handler(name string) (contract.CommandHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// HandlerOrFallback returns the handler for name, or the unknown-command
// handler when name is not registered.
func (r *Registry) HandlerOrFallback(name string) (contract.CommandHandler, bool) {
	if h, ok := r.Handler(name); ok {
		return h, true
	}
	return r.UnknownHandler()
}

func (r *Registry) UnknownHandler() (contract.CommandHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unknown, r.unknown != nil
}

func (r *Registry) SetUnknownHandler(handler contract.CommandHandler) {
	r.mu.Lock()
	r.unknown = handler
	r.mu.Unlock()

	r.log.Debug("Unknown command handler set", "present", handler != nil)
}

// OnMessage lets the registry subscribe to a console as a message listener.
func (r *Registry) OnMessage(msg domain.Message) error {
	r.SupplyMessage(msg)
	return nil
}

// SupplyMessage parses msg and runs the matching handler, or the
// unknown-command handler with the unmatched name. It returns once the
// handler is done. Handler errors and panics are logged, never returned.
func (r *Registry) SupplyMessage(msg domain.Message) {
	cmd := Parse(msg)
	r.log.Debug("Message supplied to command registry", "command", cmd.Name(), "args", cmd.ArgCount())

	handler, matched := r.Handler(cmd.Name())
	if !matched {
		r.log.Debug("Unknown command, falling back to the unknown command handler", "command", cmd.Name())
		var ok bool
		if handler, ok = r.UnknownHandler(); !ok {
			r.observeDispatch(cmd.Name(), false)
			return
		}
	}
	r.observeDispatch(cmd.Name(), matched)

	if err := run(handler, cmd); err != nil {
		r.log.Warn("Command handler failed", "command", cmd.Name(), "error", err)
		if r.observer != nil {
			r.observer.HandlerFailed(cmd.Name(), err)
		}
	}
}

func (r *Registry) observeDispatch(name string, matched bool) {
	if r.observer != nil {
		r.observer.CommandDispatched(name, matched)
	}
}

func run(handler contract.CommandHandler, cmd domain.Command) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Recovered(rec)
		}
	}()
	if err := handler.Handle(cmd); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrHandlerFailure, err)
	}
	return nil
}
