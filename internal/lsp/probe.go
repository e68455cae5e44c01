// Package lsp puts the method contract on the wire: a Guard that checks
// JSON-RPC traffic against the registry, and a Probe server that lets a real
// client exercise it.
package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/conduit-lang/lspcontract/internal/schema"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// ProbeOptions configures a Probe
type ProbeOptions struct {
	ServerName    string
	ServerVersion string

	// Guard, if set, wraps the probe's handler
	Guard *Guard

	Logger *zap.Logger
}

// Probe is a minimal language server. It implements just enough of the
// lifecycle for a client to connect and send traffic through the guard.
type Probe struct {
	info   protocol.ServerInfo
	guard  *Guard
	logger *zap.Logger

	mu            sync.Mutex
	client        protocol.Client
	cancel        context.CancelFunc
	workspaceRoot string
	shuttingDown  bool
}

// NewProbe creates a probe server
func NewProbe(opts ProbeOptions) *Probe {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	name := opts.ServerName
	if name == "" {
		name = "lspcontract-probe"
	}

	return &Probe{
		info:   protocol.ServerInfo{Name: name, Version: opts.ServerVersion},
		guard:  opts.Guard,
		logger: logger.Named("probe"),
	}
}

// Capabilities returns what the probe advertises in its initialize result
func (p *Probe) Capabilities() protocol.ServerCapabilities {
	return protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
		},
	}
}

// WorkspaceRoot returns the root directory the client announced, if any
func (p *Probe) WorkspaceRoot() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workspaceRoot
}

// Run serves the probe over rwc until the client exits, the connection
// drops or ctx is done
func (p *Probe) Run(ctx context.Context, rwc io.ReadWriteCloser) error {
	p.logger.Info("Starting probe", zap.String("name", p.info.Name), zap.String("version", p.info.Version))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))

	p.mu.Lock()
	p.client = protocol.ClientDispatcher(conn, p.logger)
	p.cancel = cancel
	p.mu.Unlock()

	conn.Go(ctx, p.Handler())

	select {
	case <-ctx.Done():
	case <-conn.Done():
	}

	p.logger.Info("Stopping probe")
	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// Handler returns the probe's JSON-RPC handler, wrapped by the guard when
// one is configured
func (p *Probe) Handler() jsonrpc2.Handler {
	var handler jsonrpc2.Handler = p.handle
	if p.guard != nil {
		handler = p.guard.Wrap(handler)
	}
	return handler
}

func (p *Probe) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	method := req.Method()
	p.logger.Debug("Received", zap.String("method", method))

	switch method {
	case methods.Initialize:
		return p.handleInitialize(ctx, reply, req)
	case methods.Initialized:
		return p.handleInitialized(ctx, reply)
	case methods.Shutdown:
		p.mu.Lock()
		p.shuttingDown = true
		p.mu.Unlock()
		return reply(ctx, nil, nil)
	case methods.Exit:
		if err := reply(ctx, nil, nil); err != nil {
			p.logger.Warn("Failed to acknowledge exit", zap.Error(err))
		}
		p.mu.Lock()
		cancel := p.cancel
		p.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		return nil
	}

	if _, isCall := req.(*jsonrpc2.Call); !isCall {
		return reply(ctx, nil, nil)
	}

	p.mu.Lock()
	shuttingDown := p.shuttingDown
	p.mu.Unlock()
	if shuttingDown {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidRequest,
			Message: "server is shutting down",
		})
	}

	return reply(ctx, nil, &jsonrpc2.Error{
		Code:    jsonrpc2.MethodNotFound,
		Message: fmt.Sprintf("method %s is not implemented by the probe", method),
	})
}

func (p *Probe) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{
			Code:    jsonrpc2.InvalidParams,
			Message: "Failed to parse initialize params",
		})
	}

	root := ""
	if len(params.WorkspaceFolders) > 0 {
		root = uri.URI(params.WorkspaceFolders[0].URI).Filename()
	} else if params.RootURI != "" {
		root = params.RootURI.Filename()
	}

	p.mu.Lock()
	p.workspaceRoot = root
	p.mu.Unlock()

	fields := []zap.Field{zap.String("root", root)}
	if params.ClientInfo != nil {
		fields = append(fields, zap.String("client", params.ClientInfo.Name), zap.String("clientVersion", params.ClientInfo.Version))
	}
	p.logger.Info("Initialize", fields...)

	info := p.info
	return reply(ctx, protocol.InitializeResult{
		Capabilities: p.Capabilities(),
		ServerInfo:   &info,
	}, nil)
}

func (p *Probe) handleInitialized(ctx context.Context, reply jsonrpc2.Replier) error {
	if err := reply(ctx, nil, nil); err != nil {
		return err
	}

	p.mu.Lock()
	client := p.client
	p.mu.Unlock()
	if client == nil {
		return nil
	}

	params := &protocol.LogMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: fmt.Sprintf("%s is checking traffic against LSP %s", p.info.Name, schema.Version),
	}
	if p.guard != nil {
		if err := p.guard.CheckParams(methods.WindowLogMessage, params); err != nil {
			p.logger.Error("Outgoing log message breaks the contract", zap.Error(err))
			return nil
		}
	}

	if err := client.LogMessage(ctx, params); err != nil {
		p.logger.Warn("Failed to send log message", zap.Error(err))
	}
	return nil
}

// Stdio returns the process's stdin and stdout as one stream
func Stdio() io.ReadWriteCloser {
	return stdrwc{}
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
