package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/conduit-lang/lspcontract/internal/metrics"
	"github.com/conduit-lang/lspcontract/internal/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const hoverParams = `{"textDocument": {"uri": "file:///app/main.cdt"}, "position": {"line": 3, "character": 7}}`

// recorder captures what a handler replied with
type recorder struct {
	called bool
	result interface{}
	err    error
}

func (r *recorder) reply(_ context.Context, result interface{}, err error) error {
	r.called = true
	r.result = result
	r.err = err
	return nil
}

// next is a stand-in for the wrapped handler
type next struct {
	called bool
	result interface{}
	err    error
}

func (n *next) handle(ctx context.Context, reply jsonrpc2.Replier, _ jsonrpc2.Request) error {
	n.called = true
	return reply(ctx, n.result, n.err)
}

func call(t *testing.T, method, params string) jsonrpc2.Request {
	t.Helper()
	var raw interface{}
	if params != "" {
		raw = json.RawMessage(params)
	}
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), method, raw)
	require.NoError(t, err)
	return req
}

func notify(t *testing.T, method, params string) jsonrpc2.Request {
	t.Helper()
	var raw interface{}
	if params != "" {
		raw = json.RawMessage(params)
	}
	req, err := jsonrpc2.NewNotification(method, raw)
	require.NoError(t, err)
	return req
}

func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func rpcCode(t *testing.T, err error) jsonrpc2.Code {
	t.Helper()
	var rpcErr *jsonrpc2.Error
	require.True(t, errors.As(err, &rpcErr), "expected a jsonrpc2 error, got %v", err)
	return rpcErr.Code
}

func TestGuard_InboundParams(t *testing.T) {
	tests := []struct {
		name       string
		policy     Policy
		params     string
		wantNext   bool
		wantCode   jsonrpc2.Code
		wantReject bool
	}{
		{"valid params reject", PolicyReject, hoverParams, true, 0, false},
		{"missing position reject", PolicyReject, `{"textDocument": {"uri": "file:///a"}}`, false, jsonrpc2.InvalidParams, true},
		{"wrong type reject", PolicyReject, `{"textDocument": {"uri": 7}, "position": {"line": 0, "character": 0}}`, false, jsonrpc2.InvalidParams, true},
		{"array params reject", PolicyReject, `[1, 2]`, false, jsonrpc2.InvalidParams, true},
		{"missing position warn", PolicyWarn, `{"textDocument": {"uri": "file:///a"}}`, true, 0, false},
		{"missing position off", PolicyOff, `{"textDocument": {"uri": "file:///a"}}`, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(nil, nil, GuardOptions{Inbound: tt.policy})
			n := &next{}
			rec := &recorder{}

			err := guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Hover, tt.params))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, n.called)
			assert.True(t, rec.called)
			if tt.wantReject {
				assert.Equal(t, tt.wantCode, rpcCode(t, rec.err))
			} else {
				assert.NoError(t, rec.err)
			}
		})
	}
}

func TestGuard_InboundWarnLogs(t *testing.T) {
	logger, logs := observed(zapcore.WarnLevel)
	guard := NewGuard(nil, nil, GuardOptions{Inbound: PolicyWarn, Logger: logger})
	n := &next{}
	rec := &recorder{}

	err := guard.Wrap(n.handle)(context.Background(), rec.reply, notify(t, methods.TextDocumentDidOpen, `{"textDocument": {"uri": "file:///a"}}`))
	require.NoError(t, err)
	assert.True(t, n.called)

	entries := logs.FilterMessage("Contract violation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, methods.TextDocumentDidOpen, entries[0].ContextMap()["method"])
	assert.Equal(t, "params", entries[0].ContextMap()["part"])
}

func TestGuard_InboundNotificationRejectDrops(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{Inbound: PolicyReject})
	n := &next{}
	rec := &recorder{}

	err := guard.Wrap(n.handle)(context.Background(), rec.reply, notify(t, methods.TextDocumentDidOpen, `{"textDocument": {"uri": "file:///a"}}`))
	require.NoError(t, err)
	assert.False(t, n.called)
	assert.False(t, rec.called)
}

func TestGuard_AbsentParams(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{Inbound: PolicyReject})

	n := &next{}
	rec := &recorder{}
	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Shutdown, "")))
	assert.True(t, n.called)
	assert.NoError(t, rec.err)

	n = &next{}
	rec = &recorder{}
	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Shutdown, `{"force": true}`)))
	assert.False(t, n.called)
	assert.Equal(t, jsonrpc2.InvalidParams, rpcCode(t, rec.err))
}

func TestGuard_UnknownMethods(t *testing.T) {
	t.Run("reject call", func(t *testing.T) {
		guard := NewGuard(nil, nil, GuardOptions{UnknownMethods: PolicyReject})
		n := &next{}
		rec := &recorder{}

		require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, "conduit/reindex", `{}`)))
		assert.False(t, n.called)
		assert.Equal(t, jsonrpc2.MethodNotFound, rpcCode(t, rec.err))
		assert.Contains(t, rec.err.Error(), "conduit/reindex")
	})

	t.Run("reject notification", func(t *testing.T) {
		guard := NewGuard(nil, nil, GuardOptions{UnknownMethods: PolicyReject})
		n := &next{}
		rec := &recorder{}

		require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, notify(t, "conduit/changed", `{}`)))
		assert.False(t, n.called)
		assert.False(t, rec.called)
	})

	t.Run("warn", func(t *testing.T) {
		logger, logs := observed(zapcore.WarnLevel)
		guard := NewGuard(nil, nil, GuardOptions{UnknownMethods: PolicyWarn, Logger: logger})
		n := &next{result: "done"}
		rec := &recorder{}

		require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, "conduit/reindex", `{}`)))
		assert.True(t, n.called)
		assert.Equal(t, "done", rec.result)
		assert.Equal(t, 1, logs.FilterMessage("Unregistered method").Len())
	})

	t.Run("off", func(t *testing.T) {
		guard := NewGuard(nil, nil, GuardOptions{UnknownMethods: PolicyOff, Inbound: PolicyReject, Outbound: PolicyReject})
		n := &next{result: 42}
		rec := &recorder{}

		require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, "conduit/reindex", `{}`)))
		assert.True(t, n.called)
		assert.Equal(t, 42, rec.result)
	})
}

func TestGuard_OutboundResult(t *testing.T) {
	validHover := protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: "**User**"},
	}
	invalidHover := map[string]interface{}{"contents": 5}

	tests := []struct {
		name     string
		policy   Policy
		result   interface{}
		wantCode jsonrpc2.Code
	}{
		{"valid reject", PolicyReject, validHover, 0},
		{"null reject", PolicyReject, nil, 0},
		{"invalid reject", PolicyReject, invalidHover, jsonrpc2.InternalError},
		{"invalid warn", PolicyWarn, invalidHover, 0},
		{"invalid off", PolicyOff, invalidHover, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(nil, nil, GuardOptions{Outbound: tt.policy})
			n := &next{result: tt.result}
			rec := &recorder{}

			require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Hover, hoverParams)))
			assert.True(t, n.called)
			if tt.wantCode != 0 {
				assert.Nil(t, rec.result)
				assert.Equal(t, tt.wantCode, rpcCode(t, rec.err))
				assert.Contains(t, rec.err.Error(), "invalid result")
				return
			}
			assert.NoError(t, rec.err)
			assert.Equal(t, tt.result, rec.result)
		})
	}
}

func TestGuard_OutboundPassesHandlerErrors(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{Outbound: PolicyReject})
	handlerErr := &jsonrpc2.Error{Code: jsonrpc2.InvalidRequest, Message: "not ready"}
	n := &next{result: map[string]interface{}{"contents": 5}, err: handlerErr}
	rec := &recorder{}

	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Hover, hoverParams)))
	assert.Same(t, handlerErr, rec.err)
}

func TestGuard_OutboundNullResult(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{Outbound: PolicyReject})

	n := &next{result: map[string]interface{}{"ok": true}}
	rec := &recorder{}
	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, methods.Shutdown, "")))
	assert.Equal(t, jsonrpc2.InternalError, rpcCode(t, rec.err))
}

func TestGuard_Unresolvable(t *testing.T) {
	catalog, err := schema.NewCatalogBuilder().Define("Empty").Build()
	require.NoError(t, err)
	registry, err := methods.NewRegistry(catalog, []methods.Descriptor{
		{Method: "broken/params", Category: methods.Request, Params: schema.Composite("Missing")},
		{Method: "broken/result", Category: methods.Request, Params: schema.Composite("Empty"), Result: schema.Composite("Missing")},
	})
	require.NoError(t, err)

	logger, logs := observed(zapcore.ErrorLevel)
	guard := NewGuard(registry, nil, GuardOptions{Inbound: PolicyWarn, Outbound: PolicyWarn, Logger: logger})

	n := &next{}
	rec := &recorder{}
	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, "broken/params", `{}`)))
	assert.False(t, n.called)
	assert.Equal(t, jsonrpc2.InternalError, rpcCode(t, rec.err))

	n = &next{result: map[string]interface{}{}}
	rec = &recorder{}
	require.NoError(t, guard.Wrap(n.handle)(context.Background(), rec.reply, call(t, "broken/result", `{}`)))
	assert.True(t, n.called)
	assert.Equal(t, jsonrpc2.InternalError, rpcCode(t, rec.err))

	assert.Equal(t, 2, logs.FilterMessage("Declared type does not resolve").Len())
}

func TestGuard_CheckParams(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{})

	assert.NoError(t, guard.CheckParams(methods.WindowLogMessage, &protocol.LogMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: "hello",
	}))
	assert.NoError(t, guard.CheckParams(methods.TextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI("file:///a"),
		Diagnostics: []protocol.Diagnostic{},
	}))

	err := guard.CheckParams(methods.WindowLogMessage, map[string]interface{}{"type": "info"})
	assert.Error(t, err)

	err = guard.CheckParams("window/unknown", nil)
	assert.ErrorIs(t, err, methods.ErrMethodNotRegistered)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected Policy
		wantErr  bool
	}{
		{"off", PolicyOff, false},
		{"pass", PolicyOff, false},
		{"WARN", PolicyWarn, false},
		{" reject ", PolicyReject, false},
		{"panic", PolicyOff, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	assert.Equal(t, "reject", PolicyReject.String())
	assert.Equal(t, "unknown", Policy(9).String())
}

func TestGuard_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	guard := NewGuard(nil, nil, GuardOptions{
		Inbound:        PolicyReject,
		Outbound:       PolicyWarn,
		UnknownMethods: PolicyWarn,
		Metrics:        m,
	})
	ctx := context.Background()

	n := &next{}
	require.NoError(t, guard.Wrap(n.handle)(ctx, (&recorder{}).reply, call(t, methods.Hover, hoverParams)))
	require.NoError(t, guard.Wrap(n.handle)(ctx, (&recorder{}).reply, call(t, methods.Hover, `{"position": {}}`)))
	require.NoError(t, guard.Wrap(n.handle)(ctx, (&recorder{}).reply, notify(t, "conduit/reindex", `{}`)))

	n = &next{result: map[string]interface{}{"contents": 42}}
	require.NoError(t, guard.Wrap(n.handle)(ctx, (&recorder{}).reply, call(t, methods.Hover, hoverParams)))

	tests := []struct {
		method    string
		direction string
		outcome   string
		want      float64
	}{
		{methods.Hover, metrics.Inbound, metrics.OutcomeOK, 2},
		{methods.Hover, metrics.Inbound, metrics.OutcomeRejected, 1},
		{methods.Hover, metrics.Outbound, metrics.OutcomeOK, 1},
		{methods.Hover, metrics.Outbound, metrics.OutcomeViolation, 1},
		{metrics.UnregisteredMethod, metrics.Inbound, metrics.OutcomeUnregistered, 1},
	}

	for _, tt := range tests {
		t.Run(tt.direction+"/"+tt.outcome, func(t *testing.T) {
			got := testutil.ToFloat64(m.Messages.WithLabelValues(tt.method, tt.direction, tt.outcome))
			assert.Equal(t, tt.want, got)
		})
	}

	// one series per checked part
	assert.Equal(t, 2, testutil.CollectAndCount(m.CheckDuration))
}
