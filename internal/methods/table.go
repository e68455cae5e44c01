package methods

import (
	"fmt"
	"sync"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

var (
	lspOnce     sync.Once
	lspRegistry *Registry
)

// LSP returns the registry of every LSP 3.16 method, built and verified on
// first use. A table that fails verification is a programming error, so LSP
// panics rather than serving a registry with holes in it.
func LSP() *Registry {
	lspOnce.Do(func() {
		r, err := BuildLSP()
		if err != nil {
			panic(fmt.Sprintf("methods: %v", err))
		}
		lspRegistry = r
	})
	return lspRegistry
}

// BuildLSP builds and verifies a fresh copy of the LSP method registry
func BuildLSP() (*Registry, error) {
	r, err := NewRegistry(schema.LSP(), lspTable())
	if err != nil {
		return nil, err
	}
	if err := Verify(r); err != nil {
		return nil, err
	}
	return r, nil
}

var (
	ref      = schema.Composite
	list     = schema.Sequence
	nullable = schema.Optional

	// Location | Location[] | LocationLink[] | null
	locations = nullable(schema.Union(
		ref("Location"),
		list(ref("Location")),
		list(ref("LocationLink")),
	))

	textEdits = nullable(list(ref("TextEdit")))
)

func request(method string, options, params, result schema.Type) Descriptor {
	return Descriptor{Method: method, Category: Request, RegistrationOptions: options, Params: params, Result: result}
}

func notification(method string, options, params schema.Type) Descriptor {
	return Descriptor{Method: method, Category: Notification, RegistrationOptions: options, Params: params}
}

func serverRequest(method string, params, result schema.Type) Descriptor {
	return Descriptor{Method: method, Category: ServerRequest, Params: params, Result: result}
}

func serverNotification(method string, params schema.Type) Descriptor {
	return Descriptor{Method: method, Category: ServerNotification, Params: params}
}

func registrationOnly(method string, options schema.Type) Descriptor {
	return Descriptor{Method: method, Category: RegistrationOnly, RegistrationOptions: options}
}

func lspTable() []Descriptor {
	return []Descriptor{
		// General
		request(Initialize, nil, ref("InitializeParams"), ref("InitializeResult")),
		notification(Initialized, nil, ref("InitializedParams")),
		request(Shutdown, nil, nil, nil),
		notification(Exit, nil, nil),
		notification(CancelRequest, nil, ref("CancelParams")),
		serverNotification(Progress, ref("ProgressParams")),
		notification(SetTrace, nil, ref("SetTraceParams")),
		serverNotification(LogTrace, ref("LogTraceParams")),

		// Window
		serverNotification(WindowShowMessage, ref("ShowMessageParams")),
		serverRequest(WindowShowMessageRequest, ref("ShowMessageRequestParams"), nullable(ref("MessageActionItem"))),
		serverNotification(WindowLogMessage, ref("LogMessageParams")),
		serverRequest(WindowWorkDoneProgressCreate, ref("WorkDoneProgressCreateParams"), nil),
		notification(WindowWorkDoneProgressCancel, nil, ref("WorkDoneProgressCancelParams")),

		// Telemetry
		serverNotification(TelemetryEvent, schema.Any()),

		// Client
		serverRequest(ClientRegisterCapability, ref("RegistrationParams"), nil),
		serverRequest(ClientUnregisterCapability, ref("UnregistrationParams"), nil),

		// Workspace
		serverRequest(WorkspaceFolders, nil, nullable(list(ref("WorkspaceFolder")))),
		notification(WorkspaceDidChangeFolders, nil, ref("DidChangeWorkspaceFoldersParams")),
		notification(WorkspaceDidChangeConfiguration, nil, ref("DidChangeConfigurationParams")),
		serverRequest(WorkspaceConfiguration, ref("ConfigurationParams"), list(schema.Any())),
		notification(WorkspaceDidChangeWatchedFiles,
			ref("DidChangeWatchedFilesRegistrationOptions"),
			ref("DidChangeWatchedFilesParams")),
		request(WorkspaceSymbol,
			ref("WorkspaceSymbolOptions"),
			ref("WorkspaceSymbolParams"),
			nullable(list(ref("SymbolInformation")))),
		request(WorkspaceExecuteCommand,
			ref("ExecuteCommandOptions"),
			ref("ExecuteCommandParams"),
			schema.Any()),
		serverRequest(WorkspaceApplyEdit, ref("ApplyWorkspaceEditParams"), ref("ApplyWorkspaceEditResponse")),
		serverRequest(WorkspaceSemanticTokensRefresh, nil, nil),

		// Text document synchronization
		notification(TextDocumentDidOpen, ref("TextDocumentRegistrationOptions"), ref("DidOpenTextDocumentParams")),
		notification(TextDocumentDidChange, ref("TextDocumentChangeRegistrationOptions"), ref("DidChangeTextDocumentParams")),
		notification(TextDocumentWillSave, ref("TextDocumentRegistrationOptions"), ref("WillSaveTextDocumentParams")),
		request(TextDocumentWillSaveWaitUntil,
			ref("TextDocumentRegistrationOptions"),
			ref("WillSaveTextDocumentParams"),
			textEdits),
		notification(TextDocumentDidSave, ref("TextDocumentSaveRegistrationOptions"), ref("DidSaveTextDocumentParams")),
		notification(TextDocumentDidClose, ref("TextDocumentRegistrationOptions"), ref("DidCloseTextDocumentParams")),

		// Diagnostics
		serverNotification(TextDocumentPublishDiagnostics, ref("PublishDiagnosticsParams")),

		// Language features
		request(Completion,
			ref("CompletionOptions"),
			ref("CompletionParams"),
			nullable(schema.Union(list(ref("CompletionItem")), ref("CompletionList")))),
		request(CompletionItemResolve, nil, ref("CompletionItem"), ref("CompletionItem")),
		request(Hover, ref("HoverOptions"), ref("HoverParams"), nullable(ref("Hover"))),
		request(SignatureHelp, ref("SignatureHelpOptions"), ref("SignatureHelpParams"), nullable(ref("SignatureHelp"))),
		request(Declaration, ref("DeclarationOptions"), ref("DeclarationParams"), locations),
		request(Definition, ref("DefinitionOptions"), ref("DefinitionParams"), locations),
		request(TypeDefinition, ref("TypeDefinitionOptions"), ref("TypeDefinitionParams"), locations),
		request(Implementation, ref("ImplementationOptions"), ref("ImplementationParams"), locations),
		request(References, ref("ReferenceOptions"), ref("ReferenceParams"), nullable(list(ref("Location")))),
		request(DocumentHighlight,
			ref("DocumentHighlightOptions"),
			ref("DocumentHighlightParams"),
			nullable(list(ref("DocumentHighlight")))),
		request(DocumentSymbol,
			ref("DocumentSymbolOptions"),
			ref("DocumentSymbolParams"),
			nullable(schema.Union(list(ref("DocumentSymbol")), list(ref("SymbolInformation"))))),
		request(CodeAction,
			schema.Union(ref("CodeActionOptions"), ref("TextDocumentRegistrationOptions")),
			ref("CodeActionParams"),
			nullable(list(schema.Union(ref("Command"), ref("CodeAction"))))),
		request(CodeActionResolve, nil, ref("CodeAction"), ref("CodeAction")),
		request(CodeLens, ref("CodeLensOptions"), ref("CodeLensParams"), nullable(list(ref("CodeLens")))),
		request(CodeLensResolve, nil, ref("CodeLens"), ref("CodeLens")),
		request(DocumentLink, ref("DocumentLinkOptions"), ref("DocumentLinkParams"), nullable(list(ref("DocumentLink")))),
		request(DocumentLinkResolve, nil, ref("DocumentLink"), ref("DocumentLink")),
		request(DocumentColor, ref("DocumentColorOptions"), ref("DocumentColorParams"), list(ref("ColorInformation"))),
		request(ColorPresentation, nil, ref("ColorPresentationParams"), list(ref("ColorPresentation"))),
		request(Formatting, ref("DocumentFormattingOptions"), ref("DocumentFormattingParams"), textEdits),
		request(RangeFormatting, ref("DocumentRangeFormattingOptions"), ref("DocumentRangeFormattingParams"), textEdits),
		request(OnTypeFormatting, ref("DocumentOnTypeFormattingOptions"), ref("DocumentOnTypeFormattingParams"), textEdits),
		request(Rename, ref("RenameOptions"), ref("RenameParams"), nullable(ref("WorkspaceEdit"))),
		request(PrepareRename,
			nil,
			ref("PrepareRenameParams"),
			nullable(schema.Union(ref("Range"), ref("PrepareRename")))),
		request(FoldingRange, ref("FoldingRangeOptions"), ref("FoldingRangeParams"), nullable(list(ref("FoldingRange")))),
		request(SelectionRange,
			ref("SelectionRangeOptions"),
			ref("SelectionRangeParams"),
			nullable(list(ref("SelectionRange")))),

		// Semantic tokens
		registrationOnly(SemanticTokens, ref("SemanticTokensRegistrationOptions")),
		request(SemanticTokensFull,
			ref("SemanticTokensOptions"),
			ref("SemanticTokensParams"),
			nullable(schema.Union(ref("SemanticTokens"), ref("SemanticTokensPartialResult")))),
		request(SemanticTokensFullDelta,
			ref("SemanticTokensOptions"),
			ref("SemanticTokensDeltaParams"),
			nullable(schema.Union(ref("SemanticTokens"), ref("SemanticTokensDelta"), ref("SemanticTokensDeltaPartialResult")))),
		request(SemanticTokensRange,
			ref("SemanticTokensOptions"),
			ref("SemanticTokensRangeParams"),
			nullable(schema.Union(ref("SemanticTokens"), ref("SemanticTokensPartialResult")))),
	}
}
