package methods

// General lifecycle and $/ messages
const (
	Initialize    = "initialize"
	Initialized   = "initialized"
	Shutdown      = "shutdown"
	Exit          = "exit"
	CancelRequest = "$/cancelRequest"
	Progress      = "$/progress"
	SetTrace      = "$/setTrace"
	LogTrace      = "$/logTrace"
)

// Window and telemetry
const (
	WindowShowMessage            = "window/showMessage"
	WindowShowMessageRequest     = "window/showMessageRequest"
	WindowLogMessage             = "window/logMessage"
	WindowWorkDoneProgressCreate = "window/workDoneProgress/create"
	WindowWorkDoneProgressCancel = "window/workDoneProgress/cancel"
	TelemetryEvent               = "telemetry/event"
	ClientRegisterCapability     = "client/registerCapability"
	ClientUnregisterCapability   = "client/unregisterCapability"
)

// Workspace
const (
	WorkspaceFolders                = "workspace/workspaceFolders"
	WorkspaceDidChangeFolders       = "workspace/didChangeWorkspaceFolders"
	WorkspaceDidChangeConfiguration = "workspace/didChangeConfiguration"
	WorkspaceConfiguration          = "workspace/configuration"
	WorkspaceDidChangeWatchedFiles  = "workspace/didChangeWatchedFiles"
	WorkspaceSymbol                 = "workspace/symbol"
	WorkspaceExecuteCommand         = "workspace/executeCommand"
	WorkspaceApplyEdit              = "workspace/applyEdit"
	WorkspaceSemanticTokensRefresh  = "workspace/semanticTokens/refresh"
)

// Text document synchronization and diagnostics
const (
	TextDocumentDidOpen            = "textDocument/didOpen"
	TextDocumentDidChange          = "textDocument/didChange"
	TextDocumentWillSave           = "textDocument/willSave"
	TextDocumentWillSaveWaitUntil  = "textDocument/willSaveWaitUntil"
	TextDocumentDidSave            = "textDocument/didSave"
	TextDocumentDidClose           = "textDocument/didClose"
	TextDocumentPublishDiagnostics = "textDocument/publishDiagnostics"
)

// Language features
const (
	Completion              = "textDocument/completion"
	CompletionItemResolve   = "completionItem/resolve"
	Hover                   = "textDocument/hover"
	SignatureHelp           = "textDocument/signatureHelp"
	Declaration             = "textDocument/declaration"
	Definition              = "textDocument/definition"
	TypeDefinition          = "textDocument/typeDefinition"
	Implementation          = "textDocument/implementation"
	References              = "textDocument/references"
	DocumentHighlight       = "textDocument/documentHighlight"
	DocumentSymbol          = "textDocument/documentSymbol"
	CodeAction              = "textDocument/codeAction"
	CodeActionResolve       = "codeAction/resolve"
	CodeLens                = "textDocument/codeLens"
	CodeLensResolve         = "codeLens/resolve"
	DocumentLink            = "textDocument/documentLink"
	DocumentLinkResolve     = "documentLink/resolve"
	DocumentColor           = "textDocument/documentColor"
	ColorPresentation       = "textDocument/colorPresentation"
	Formatting              = "textDocument/formatting"
	RangeFormatting         = "textDocument/rangeFormatting"
	OnTypeFormatting        = "textDocument/onTypeFormatting"
	Rename                  = "textDocument/rename"
	PrepareRename           = "textDocument/prepareRename"
	FoldingRange            = "textDocument/foldingRange"
	SelectionRange          = "textDocument/selectionRange"
	SemanticTokens          = "textDocument/semanticTokens"
	SemanticTokensFull      = "textDocument/semanticTokens/full"
	SemanticTokensFullDelta = "textDocument/semanticTokens/full/delta"
	SemanticTokensRange     = "textDocument/semanticTokens/range"
)
