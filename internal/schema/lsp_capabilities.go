package schema

func defineClientCapabilities(b *CatalogBuilder) {
	b.Define("DynamicRegistrationCapabilities",
		optDefault("dynamicRegistration", Bool, false),
	)
	b.Extend("LinkSupportCapabilities", bases("DynamicRegistrationCapabilities"),
		optDefault("linkSupport", Bool, false),
	)
	b.Define("IntegerValueSet",
		opt("valueSet", integerList),
	)

	// workspace
	b.Define("WorkspaceEditClientCapabilities",
		optDefault("documentChanges", Bool, false),
		opt("resourceOperations", stringList),
		opt("failureHandling", String),
		optDefault("normalizesLineEndings", Bool, false),
	)
	b.Extend("WorkspaceSymbolClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("symbolKind", ref("IntegerValueSet")),
		opt("tagSupport", ref("IntegerValueSet")),
	)
	b.Define("SemanticTokensWorkspaceClientCapabilities",
		optDefault("refreshSupport", Bool, false),
	)
	b.Define("CodeLensWorkspaceClientCapabilities",
		optDefault("refreshSupport", Bool, false),
	)
	b.Define("WorkspaceClientCapabilities",
		optDefault("applyEdit", Bool, false),
		opt("workspaceEdit", ref("WorkspaceEditClientCapabilities")),
		opt("didChangeConfiguration", ref("DynamicRegistrationCapabilities")),
		opt("didChangeWatchedFiles", ref("DynamicRegistrationCapabilities")),
		opt("symbol", ref("WorkspaceSymbolClientCapabilities")),
		opt("executeCommand", ref("DynamicRegistrationCapabilities")),
		optDefault("workspaceFolders", Bool, false),
		optDefault("configuration", Bool, false),
		opt("semanticTokens", ref("SemanticTokensWorkspaceClientCapabilities")),
		opt("codeLens", ref("CodeLensWorkspaceClientCapabilities")),
	)

	// textDocument
	b.Extend("TextDocumentSyncClientCapabilities", bases("DynamicRegistrationCapabilities"),
		optDefault("willSave", Bool, false),
		optDefault("willSaveWaitUntil", Bool, false),
		optDefault("didSave", Bool, false),
	)
	b.Define("CompletionItemClientCapabilities",
		optDefault("snippetSupport", Bool, false),
		optDefault("commitCharactersSupport", Bool, false),
		opt("documentationFormat", stringList),
		optDefault("deprecatedSupport", Bool, false),
		optDefault("preselectSupport", Bool, false),
		opt("tagSupport", ref("IntegerValueSet")),
		optDefault("insertReplaceSupport", Bool, false),
	)
	b.Extend("CompletionClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("completionItem", ref("CompletionItemClientCapabilities")),
		opt("completionItemKind", ref("IntegerValueSet")),
		optDefault("contextSupport", Bool, false),
	)
	b.Extend("HoverClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("contentFormat", stringList),
	)
	b.Define("ParameterInformationClientCapabilities",
		optDefault("labelOffsetSupport", Bool, false),
	)
	b.Define("SignatureInformationClientCapabilities",
		opt("documentationFormat", stringList),
		opt("parameterInformation", ref("ParameterInformationClientCapabilities")),
		optDefault("activeParameterSupport", Bool, false),
	)
	b.Extend("SignatureHelpClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("signatureInformation", ref("SignatureInformationClientCapabilities")),
		optDefault("contextSupport", Bool, false),
	)
	b.Extend("DocumentSymbolClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("symbolKind", ref("IntegerValueSet")),
		optDefault("hierarchicalDocumentSymbolSupport", Bool, false),
		opt("tagSupport", ref("IntegerValueSet")),
		optDefault("labelSupport", Bool, false),
	)
	b.Define("CodeActionKindValueSet",
		req("valueSet", stringList),
	)
	b.Define("CodeActionLiteralSupport",
		req("codeActionKind", ref("CodeActionKindValueSet")),
	)
	b.Extend("CodeActionClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("codeActionLiteralSupport", ref("CodeActionLiteralSupport")),
		optDefault("isPreferredSupport", Bool, false),
		optDefault("disabledSupport", Bool, false),
		optDefault("dataSupport", Bool, false),
	)
	b.Extend("DocumentLinkClientCapabilities", bases("DynamicRegistrationCapabilities"),
		optDefault("tooltipSupport", Bool, false),
	)
	b.Extend("RenameClientCapabilities", bases("DynamicRegistrationCapabilities"),
		optDefault("prepareSupport", Bool, false),
		opt("prepareSupportDefaultBehavior", Integer),
		optDefault("honorsChangeAnnotations", Bool, false),
	)
	b.Define("PublishDiagnosticsClientCapabilities",
		optDefault("relatedInformation", Bool, false),
		opt("tagSupport", ref("IntegerValueSet")),
		optDefault("versionSupport", Bool, false),
		optDefault("codeDescriptionSupport", Bool, false),
		optDefault("dataSupport", Bool, false),
	)
	b.Extend("FoldingRangeClientCapabilities", bases("DynamicRegistrationCapabilities"),
		opt("rangeLimit", Integer),
		optDefault("lineFoldingOnly", Bool, false),
	)
	b.Define("TextDocumentClientCapabilities",
		opt("synchronization", ref("TextDocumentSyncClientCapabilities")),
		opt("completion", ref("CompletionClientCapabilities")),
		opt("hover", ref("HoverClientCapabilities")),
		opt("signatureHelp", ref("SignatureHelpClientCapabilities")),
		opt("declaration", ref("LinkSupportCapabilities")),
		opt("definition", ref("LinkSupportCapabilities")),
		opt("typeDefinition", ref("LinkSupportCapabilities")),
		opt("implementation", ref("LinkSupportCapabilities")),
		opt("references", ref("DynamicRegistrationCapabilities")),
		opt("documentHighlight", ref("DynamicRegistrationCapabilities")),
		opt("documentSymbol", ref("DocumentSymbolClientCapabilities")),
		opt("codeAction", ref("CodeActionClientCapabilities")),
		opt("codeLens", ref("DynamicRegistrationCapabilities")),
		opt("documentLink", ref("DocumentLinkClientCapabilities")),
		opt("colorProvider", ref("DynamicRegistrationCapabilities")),
		opt("formatting", ref("DynamicRegistrationCapabilities")),
		opt("rangeFormatting", ref("DynamicRegistrationCapabilities")),
		opt("onTypeFormatting", ref("DynamicRegistrationCapabilities")),
		opt("rename", ref("RenameClientCapabilities")),
		opt("publishDiagnostics", ref("PublishDiagnosticsClientCapabilities")),
		opt("foldingRange", ref("FoldingRangeClientCapabilities")),
		opt("selectionRange", ref("DynamicRegistrationCapabilities")),
		opt("semanticTokens", ref("SemanticTokensClientCapabilities")),
	)

	// window and general
	b.Define("WindowClientCapabilities",
		optDefault("workDoneProgress", Bool, false),
		opt("showMessage", Mapping(Any())),
		opt("showDocument", Mapping(Any())),
	)
	b.Define("GeneralClientCapabilities",
		opt("regularExpressions", Mapping(Any())),
		opt("markdown", Mapping(Any())),
	)

	b.Define("ClientCapabilities",
		opt("workspace", ref("WorkspaceClientCapabilities")),
		opt("textDocument", ref("TextDocumentClientCapabilities")),
		opt("window", ref("WindowClientCapabilities")),
		opt("general", ref("GeneralClientCapabilities")),
		opt("experimental", Any()),
	)
}

func defineServerCapabilities(b *CatalogBuilder) {
	b.Define("SaveOptions",
		optDefault("includeText", Bool, false),
	)
	b.Define("TextDocumentSyncOptions",
		optDefault("openClose", Bool, false),
		opt("change", Integer),
		optDefault("willSave", Bool, false),
		optDefault("willSaveWaitUntil", Bool, false),
		opt("save", Union(Bool, ref("SaveOptions"))),
	)
	b.Define("WorkspaceFoldersServerCapabilities",
		optDefault("supported", Bool, false),
		opt("changeNotifications", Union(String, Bool)),
	)
	b.Define("ServerWorkspaceCapabilities",
		opt("workspaceFolders", ref("WorkspaceFoldersServerCapabilities")),
	)

	// Provider options are referenced by name before they are defined; the
	// catalog resolves names only when it is built.
	b.Define("ServerCapabilities",
		opt("textDocumentSync", Union(ref("TextDocumentSyncOptions"), Integer)),
		opt("completionProvider", ref("CompletionOptions")),
		opt("hoverProvider", Union(Bool, ref("HoverOptions"))),
		opt("signatureHelpProvider", ref("SignatureHelpOptions")),
		opt("declarationProvider", Union(Bool, ref("DeclarationOptions"), ref("DeclarationRegistrationOptions"))),
		opt("definitionProvider", Union(Bool, ref("DefinitionOptions"))),
		opt("typeDefinitionProvider", Union(Bool, ref("TypeDefinitionOptions"), ref("TypeDefinitionRegistrationOptions"))),
		opt("implementationProvider", Union(Bool, ref("ImplementationOptions"), ref("ImplementationRegistrationOptions"))),
		opt("referencesProvider", Union(Bool, ref("ReferenceOptions"))),
		opt("documentHighlightProvider", Union(Bool, ref("DocumentHighlightOptions"))),
		opt("documentSymbolProvider", Union(Bool, ref("DocumentSymbolOptions"))),
		opt("codeActionProvider", Union(Bool, ref("CodeActionOptions"))),
		opt("codeLensProvider", ref("CodeLensOptions")),
		opt("documentLinkProvider", ref("DocumentLinkOptions")),
		opt("colorProvider", Union(Bool, ref("DocumentColorOptions"), ref("DocumentColorRegistrationOptions"))),
		opt("documentFormattingProvider", Union(Bool, ref("DocumentFormattingOptions"))),
		opt("documentRangeFormattingProvider", Union(Bool, ref("DocumentRangeFormattingOptions"))),
		opt("documentOnTypeFormattingProvider", ref("DocumentOnTypeFormattingOptions")),
		opt("renameProvider", Union(Bool, ref("RenameOptions"))),
		opt("foldingRangeProvider", Union(Bool, ref("FoldingRangeOptions"), ref("FoldingRangeRegistrationOptions"))),
		opt("executeCommandProvider", ref("ExecuteCommandOptions")),
		opt("selectionRangeProvider", Union(Bool, ref("SelectionRangeOptions"), ref("SelectionRangeRegistrationOptions"))),
		opt("semanticTokensProvider", Union(ref("SemanticTokensOptions"), ref("SemanticTokensRegistrationOptions"))),
		opt("workspaceSymbolProvider", Union(Bool, ref("WorkspaceSymbolOptions"))),
		opt("workspace", ref("ServerWorkspaceCapabilities")),
		opt("experimental", Any()),
	)
}
