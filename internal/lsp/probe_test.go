package lsp

import (
	"context"
	"testing"

	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const initializeParams = `{"processId": 42, "rootUri": "file:///tmp/work", "clientInfo": {"name": "vim"}, "capabilities": {}}`

func TestNewProbe(t *testing.T) {
	p := NewProbe(ProbeOptions{})
	assert.Equal(t, "lspcontract-probe", p.info.Name)
	assert.NotNil(t, p.logger)

	caps := p.Capabilities()
	sync, ok := caps.TextDocumentSync.(protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.True(t, sync.OpenClose)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)
}

func TestProbe_Initialize(t *testing.T) {
	p := NewProbe(ProbeOptions{ServerName: "probe", ServerVersion: "1.2.3"})
	rec := &recorder{}

	require.NoError(t, p.Handler()(context.Background(), rec.reply, call(t, methods.Initialize, initializeParams)))
	require.NoError(t, rec.err)

	result, ok := rec.result.(protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, "probe", result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", result.ServerInfo.Version)
	assert.Equal(t, "/tmp/work", p.WorkspaceRoot())
}

func TestProbe_InitializeBadParams(t *testing.T) {
	p := NewProbe(ProbeOptions{})
	rec := &recorder{}

	require.NoError(t, p.Handler()(context.Background(), rec.reply, call(t, methods.Initialize, `{"processId": "me"}`)))
	assert.Equal(t, jsonrpc2.InvalidParams, rpcCode(t, rec.err))
}

func TestProbe_Lifecycle(t *testing.T) {
	p := NewProbe(ProbeOptions{})
	handler := p.Handler()
	ctx := context.Background()

	rec := &recorder{}
	require.NoError(t, handler(ctx, rec.reply, notify(t, methods.Initialized, `{}`)))
	assert.True(t, rec.called)
	assert.NoError(t, rec.err)

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, methods.Hover, hoverParams)))
	assert.Equal(t, jsonrpc2.MethodNotFound, rpcCode(t, rec.err))

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, notify(t, methods.TextDocumentDidOpen, `{}`)))
	assert.NoError(t, rec.err)

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, methods.Shutdown, "")))
	assert.NoError(t, rec.err)
	assert.Nil(t, rec.result)

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, methods.Hover, hoverParams)))
	assert.Equal(t, jsonrpc2.InvalidRequest, rpcCode(t, rec.err))
}

func TestProbe_ExitCancels(t *testing.T) {
	p := NewProbe(ProbeOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.cancel = cancel

	rec := &recorder{}
	require.NoError(t, p.Handler()(ctx, rec.reply, notify(t, methods.Exit, "")))
	assert.True(t, rec.called)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestProbe_Guarded(t *testing.T) {
	guard := NewGuard(nil, nil, GuardOptions{
		Inbound:        PolicyReject,
		Outbound:       PolicyReject,
		UnknownMethods: PolicyReject,
	})
	p := NewProbe(ProbeOptions{ServerVersion: "test", Guard: guard})
	handler := p.Handler()
	ctx := context.Background()

	// the probe's own initialize result honors the contract
	rec := &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, methods.Initialize, initializeParams)))
	require.NoError(t, rec.err)
	_, ok := rec.result.(protocol.InitializeResult)
	assert.True(t, ok)

	// capabilities is required
	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, methods.Initialize, `{"processId": null}`)))
	assert.Equal(t, jsonrpc2.InvalidParams, rpcCode(t, rec.err))

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, call(t, "conduit/reindex", `{}`)))
	assert.Equal(t, jsonrpc2.MethodNotFound, rpcCode(t, rec.err))

	rec = &recorder{}
	require.NoError(t, handler(ctx, rec.reply, notify(t, methods.TextDocumentDidClose, `{"textDocument": {}}`)))
	assert.False(t, rec.called)
}

func TestStdio(t *testing.T) {
	rwc := Stdio()
	require.NotNil(t, rwc)
	_, ok := rwc.(stdrwc)
	assert.True(t, ok)
}
