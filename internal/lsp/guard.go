package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/conduit-lang/lspcontract/internal/metrics"
	"github.com/conduit-lang/lspcontract/internal/schema"
	"github.com/conduit-lang/lspcontract/internal/validation"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Policy controls what the guard does with a message that breaks the contract
type Policy int

const (
	// PolicyOff skips the check entirely
	PolicyOff Policy = iota
	// PolicyWarn logs the violation and lets the message through
	PolicyWarn
	// PolicyReject answers the message with an error instead
	PolicyReject
)

// String returns the string representation of the policy
func (p Policy) String() string {
	switch p {
	case PolicyOff:
		return "off"
	case PolicyWarn:
		return "warn"
	case PolicyReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name into a Policy. "pass" is accepted as
// another name for off.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "pass":
		return PolicyOff, nil
	case "warn":
		return PolicyWarn, nil
	case "reject":
		return PolicyReject, nil
	}
	return PolicyOff, fmt.Errorf("unknown policy %q (expected off, warn or reject)", s)
}

// GuardOptions configures a Guard
type GuardOptions struct {
	// Inbound applies to the params of incoming requests and notifications
	Inbound Policy

	// Outbound applies to the results the wrapped handler replies with
	Outbound Policy

	// UnknownMethods applies to methods missing from the registry
	UnknownMethods Policy

	// Metrics, if set, counts every decision the guard makes
	Metrics *metrics.Collector

	Logger *zap.Logger
}

// Guard checks JSON-RPC traffic against a method registry. It wraps a
// jsonrpc2.Handler and is safe for concurrent use.
type Guard struct {
	registry  *methods.Registry
	validator *validation.Validator
	opts      GuardOptions
	logger    *zap.Logger
}

// NewGuard creates a guard. A nil registry selects the LSP registry and a
// nil validator one bound to the registry's catalog.
func NewGuard(registry *methods.Registry, validator *validation.Validator, opts GuardOptions) *Guard {
	if registry == nil {
		registry = methods.LSP()
	}
	if validator == nil {
		validator = validation.New(registry.Catalog())
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Guard{
		registry:  registry,
		validator: validator,
		opts:      opts,
		logger:    logger.Named("guard"),
	}
}

// Options returns the policies the guard was created with
func (g *Guard) Options() GuardOptions {
	return g.opts
}

// Wrap returns a handler that checks each message before passing it to next
// and checks each successful reply before it is sent
func (g *Guard) Wrap(next jsonrpc2.Handler) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		method := req.Method()
		_, isCall := req.(*jsonrpc2.Call)
		logger := g.logger.With(zap.String("method", method), zap.Bool("call", isCall))

		d, err := g.registry.Lookup(method)
		if err != nil {
			switch g.opts.UnknownMethods {
			case PolicyReject:
				g.opts.Metrics.Record(metrics.UnregisteredMethod, metrics.Inbound, metrics.OutcomeRejected)
				logger.Warn("Rejecting unregistered method")
				if isCall {
					return reply(ctx, nil, rpcError(jsonrpc2.MethodNotFound, err))
				}
				return nil
			case PolicyWarn:
				logger.Warn("Unregistered method")
			}
			g.opts.Metrics.Record(metrics.UnregisteredMethod, metrics.Inbound, metrics.OutcomeUnregistered)
			return next(ctx, reply, req)
		}

		if g.opts.Inbound != PolicyOff {
			if err := g.checkPayload(methods.PartParams, d.Params, req.Params()); err != nil {
				if rejected, rerr := g.violation(ctx, logger, reply, isCall, method, g.opts.Inbound, jsonrpc2.InvalidParams, err); rejected {
					return rerr
				}
			} else {
				g.opts.Metrics.Record(method, metrics.Inbound, metrics.OutcomeOK)
			}
		}

		if isCall && g.opts.Outbound != PolicyOff {
			reply = g.checkedReplier(d, reply, logger)
		}

		return next(ctx, reply, req)
	}
}

// CheckParams checks an outgoing message's params the way Wrap checks
// incoming ones. It is meant for server-to-client traffic the guard never
// sees as a request.
func (g *Guard) CheckParams(method string, params interface{}) error {
	d, err := g.registry.Lookup(method)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode params for %s: %w", method, err)
	}
	err = g.checkPayload(methods.PartParams, d.Params, raw)
	g.opts.Metrics.Record(method, metrics.Outbound, outcome(err))
	return err
}

// violation handles a failed check. It reports whether the message was
// answered or dropped, in which case the returned error is the handler's.
func (g *Guard) violation(ctx context.Context, logger *zap.Logger, reply jsonrpc2.Replier, isCall bool, method string, policy Policy, code jsonrpc2.Code, err error) (bool, error) {
	part := methods.PartParams
	if errors.Is(err, schema.ErrUnresolvable) {
		g.opts.Metrics.Record(method, metrics.Inbound, metrics.OutcomeUnresolvable)
		logger.Error("Declared type does not resolve", zap.String("part", part), zap.Error(err))
		if isCall {
			return true, reply(ctx, nil, rpcError(jsonrpc2.InternalError, err))
		}
		return true, nil
	}

	if policy != PolicyReject {
		g.opts.Metrics.Record(method, metrics.Inbound, metrics.OutcomeViolation)
		logger.Warn("Contract violation", zap.String("part", part), zap.Error(err))
		return false, nil
	}

	g.opts.Metrics.Record(method, metrics.Inbound, metrics.OutcomeRejected)
	logger.Info("Rejecting message", zap.String("part", part), zap.Error(err))
	if isCall {
		return true, reply(ctx, nil, rpcError(code, fmt.Errorf("invalid %s: %w", part, err)))
	}
	return true, nil
}

// checkedReplier checks the result before handing it to reply. Errors from
// the handler are passed through untouched.
func (g *Guard) checkedReplier(d methods.Descriptor, reply jsonrpc2.Replier, logger *zap.Logger) jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		if err != nil {
			return reply(ctx, result, err)
		}

		raw, merr := json.Marshal(result)
		if merr != nil {
			logger.Error("Failed to encode result", zap.Error(merr))
			return reply(ctx, nil, rpcError(jsonrpc2.InternalError, merr))
		}

		cerr := g.checkPayload(methods.PartResult, d.Result, raw)
		if cerr == nil {
			g.opts.Metrics.Record(d.Method, metrics.Outbound, metrics.OutcomeOK)
			return reply(ctx, result, nil)
		}

		if errors.Is(cerr, schema.ErrUnresolvable) {
			g.opts.Metrics.Record(d.Method, metrics.Outbound, metrics.OutcomeUnresolvable)
			logger.Error("Declared type does not resolve", zap.String("part", methods.PartResult), zap.Error(cerr))
			return reply(ctx, nil, rpcError(jsonrpc2.InternalError, cerr))
		}
		if g.opts.Outbound == PolicyReject {
			g.opts.Metrics.Record(d.Method, metrics.Outbound, metrics.OutcomeRejected)
			logger.Error("Rejecting result", zap.Error(cerr))
			return reply(ctx, nil, rpcError(jsonrpc2.InternalError, fmt.Errorf("invalid result: %w", cerr)))
		}
		g.opts.Metrics.Record(d.Method, metrics.Outbound, metrics.OutcomeViolation)
		logger.Warn("Contract violation", zap.String("part", methods.PartResult), zap.Error(cerr))
		return reply(ctx, result, nil)
	}
}

// checkPayload decodes raw and checks it against t. A nil t means the
// message carries no payload, so only null conforms.
func (g *Guard) checkPayload(part string, t schema.Type, raw json.RawMessage) error {
	defer func(start time.Time) {
		g.opts.Metrics.ObserveCheck(part, time.Since(start))
	}(time.Now())

	value, err := validation.Decode(raw)
	if err != nil {
		return err
	}
	if t == nil {
		return validation.CheckNull(value)
	}
	return g.validator.Check(value, t)
}

// outcome maps a check result to its metrics label
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, schema.ErrUnresolvable):
		return metrics.OutcomeUnresolvable
	default:
		return metrics.OutcomeViolation
	}
}

func rpcError(code jsonrpc2.Code, err error) *jsonrpc2.Error {
	return &jsonrpc2.Error{
		Code:    code,
		Message: err.Error(),
	}
}
