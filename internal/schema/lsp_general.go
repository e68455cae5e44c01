package schema

func defineGeneral(b *CatalogBuilder) {
	b.Define("ClientInfo",
		req("name", String),
		opt("version", String),
	)
	b.Define("ServerInfo",
		req("name", String),
		opt("version", String),
	)
	b.Extend("InitializeParams", bases("WorkDoneProgressParams"),
		nullable("processId", Integer),
		opt("clientInfo", ref("ClientInfo")),
		opt("locale", String),
		opt("rootPath", String),
		nullable("rootUri", documentURI),
		opt("initializationOptions", Any()),
		req("capabilities", ref("ClientCapabilities")),
		optDefault("trace", String, "off"),
		opt("workspaceFolders", list(ref("WorkspaceFolder"))),
	)
	b.Define("InitializeResult",
		req("capabilities", ref("ServerCapabilities")),
		opt("serverInfo", ref("ServerInfo")),
	)
	b.Define("InitializedParams")

	b.Define("CancelParams",
		req("id", Union(Integer, String)),
	)
	b.Define("ProgressParams",
		req("token", progressToken),
		req("value", Any()),
	)
	b.Define("SetTraceParams",
		req("value", String),
	)
	b.Define("LogTraceParams",
		req("message", String),
		opt("verbose", String),
	)

	b.Define("Registration",
		req("id", String),
		req("method", String),
		opt("registerOptions", Any()),
	)
	b.Define("RegistrationParams",
		req("registrations", list(ref("Registration"))),
	)
	b.Define("Unregistration",
		req("id", String),
		req("method", String),
	)
	// The misspelled property name is part of the protocol
	b.Define("UnregistrationParams",
		req("unregisterations", list(ref("Unregistration"))),
	)
}

func defineWindow(b *CatalogBuilder) {
	b.Define("ShowMessageParams",
		req("type", Integer),
		req("message", String),
	)
	b.Define("MessageActionItem",
		req("title", String),
	)
	b.Define("ShowMessageRequestParams",
		req("type", Integer),
		req("message", String),
		opt("actions", list(ref("MessageActionItem"))),
	)
	b.Define("LogMessageParams",
		req("type", Integer),
		req("message", String),
	)
	b.Define("WorkDoneProgressCreateParams",
		req("token", progressToken),
	)
	b.Define("WorkDoneProgressCancelParams",
		req("token", progressToken),
	)
}

func defineWorkspace(b *CatalogBuilder) {
	b.Define("WorkspaceFolder",
		req("uri", documentURI),
		req("name", String),
	)
	b.Define("WorkspaceFoldersChangeEvent",
		req("added", list(ref("WorkspaceFolder"))),
		req("removed", list(ref("WorkspaceFolder"))),
	)
	b.Define("DidChangeWorkspaceFoldersParams",
		req("event", ref("WorkspaceFoldersChangeEvent")),
	)
	b.Define("DidChangeConfigurationParams",
		req("settings", Any()),
	)
	b.Define("ConfigurationItem",
		opt("scopeUri", documentURI),
		opt("section", String),
	)
	b.Define("ConfigurationParams",
		req("items", list(ref("ConfigurationItem"))),
	)

	b.Define("FileEvent",
		req("uri", documentURI),
		req("type", Integer),
	)
	b.Define("DidChangeWatchedFilesParams",
		req("changes", list(ref("FileEvent"))),
	)
	b.Define("FileSystemWatcher",
		req("globPattern", String),
		opt("kind", Integer),
	)
	b.Define("DidChangeWatchedFilesRegistrationOptions",
		req("watchers", list(ref("FileSystemWatcher"))),
	)

	b.Extend("WorkspaceSymbolOptions", bases("WorkDoneProgressOptions"))
	b.Extend("WorkspaceSymbolParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("query", String),
	)
	b.Define("SymbolInformation",
		req("name", String),
		req("kind", Integer),
		opt("tags", integerList),
		opt("deprecated", Bool),
		req("location", ref("Location")),
		opt("containerName", String),
	)

	b.Extend("ExecuteCommandOptions", bases("WorkDoneProgressOptions"),
		req("commands", stringList),
	)
	b.Extend("ExecuteCommandParams", bases("WorkDoneProgressParams"),
		req("command", String),
		opt("arguments", list(Any())),
	)

	b.Define("ApplyWorkspaceEditParams",
		opt("label", String),
		req("edit", ref("WorkspaceEdit")),
	)
	b.Define("ApplyWorkspaceEditResponse",
		req("applied", Bool),
		opt("failureReason", String),
		opt("failedChange", Integer),
	)
}

func defineSynchronization(b *CatalogBuilder) {
	b.Define("DidOpenTextDocumentParams",
		req("textDocument", ref("TextDocumentItem")),
	)

	// Incremental changes carry a range; full changes carry only the text.
	// The incremental form is listed first in unions because a full change
	// payload would otherwise also accept incremental events.
	b.Define("TextDocumentContentChangeRangeEvent",
		req("range", ref("Range")),
		opt("rangeLength", Integer),
		req("text", String),
	)
	b.Define("TextDocumentContentChangeWholeEvent",
		req("text", String),
	)
	b.Define("DidChangeTextDocumentParams",
		req("textDocument", ref("VersionedTextDocumentIdentifier")),
		req("contentChanges", list(Union(
			ref("TextDocumentContentChangeRangeEvent"),
			ref("TextDocumentContentChangeWholeEvent"),
		))),
	)
	b.Extend("TextDocumentChangeRegistrationOptions", bases("TextDocumentRegistrationOptions"),
		req("syncKind", Integer),
	)

	b.Define("WillSaveTextDocumentParams",
		req("textDocument", ref("TextDocumentIdentifier")),
		req("reason", Integer),
	)
	b.Define("DidSaveTextDocumentParams",
		req("textDocument", ref("TextDocumentIdentifier")),
		opt("text", String),
	)
	b.Extend("TextDocumentSaveRegistrationOptions", bases("TextDocumentRegistrationOptions"),
		optDefault("includeText", Bool, false),
	)
	b.Define("DidCloseTextDocumentParams",
		req("textDocument", ref("TextDocumentIdentifier")),
	)

	b.Define("PublishDiagnosticsParams",
		req("uri", documentURI),
		opt("version", Integer),
		req("diagnostics", list(ref("Diagnostic"))),
	)
}
