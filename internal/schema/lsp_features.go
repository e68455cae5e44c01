package schema

var stringOrMarkup = Union(String, ref("MarkupContent"))

func defineCompletion(b *CatalogBuilder) {
	b.Extend("CompletionOptions", bases("WorkDoneProgressOptions"),
		opt("triggerCharacters", stringList),
		opt("allCommitCharacters", stringList),
		optDefault("resolveProvider", Bool, false),
	)
	b.Define("CompletionContext",
		req("triggerKind", Integer),
		opt("triggerCharacter", String),
	)
	b.Extend("CompletionParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams", "PartialResultParams"),
		opt("context", ref("CompletionContext")),
	)
	b.Define("CompletionItem",
		req("label", String),
		opt("kind", Integer),
		opt("tags", integerList),
		opt("detail", String),
		opt("documentation", stringOrMarkup),
		opt("deprecated", Bool),
		opt("preselect", Bool),
		opt("sortText", String),
		opt("filterText", String),
		opt("insertText", String),
		opt("insertTextFormat", Integer),
		opt("insertTextMode", Integer),
		opt("textEdit", Union(ref("TextEdit"), ref("InsertReplaceEdit"))),
		opt("additionalTextEdits", list(ref("TextEdit"))),
		opt("commitCharacters", stringList),
		opt("command", ref("Command")),
		opt("data", Any()),
	)
	b.Define("CompletionList",
		req("isIncomplete", Bool),
		req("items", list(ref("CompletionItem"))),
	)

	b.Extend("HoverOptions", bases("WorkDoneProgressOptions"))
	b.Extend("HoverParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams"))
	markedString := Union(String, ref("MarkedStringWithLanguage"))
	b.Define("Hover",
		req("contents", Union(ref("MarkupContent"), markedString, list(markedString))),
		opt("range", ref("Range")),
	)

	b.Extend("SignatureHelpOptions", bases("WorkDoneProgressOptions"),
		opt("triggerCharacters", stringList),
		opt("retriggerCharacters", stringList),
	)
	b.Define("ParameterInformation",
		req("label", Union(String, integerList)),
		opt("documentation", stringOrMarkup),
	)
	b.Define("SignatureInformation",
		req("label", String),
		opt("documentation", stringOrMarkup),
		opt("parameters", list(ref("ParameterInformation"))),
		opt("activeParameter", Integer),
	)
	b.Define("SignatureHelp",
		req("signatures", list(ref("SignatureInformation"))),
		opt("activeSignature", Integer),
		opt("activeParameter", Integer),
	)
	b.Define("SignatureHelpContext",
		req("triggerKind", Integer),
		opt("triggerCharacter", String),
		req("isRetrigger", Bool),
		opt("activeSignatureHelp", ref("SignatureHelp")),
	)
	b.Extend("SignatureHelpParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams"),
		opt("context", ref("SignatureHelpContext")),
	)
}

func defineNavigation(b *CatalogBuilder) {
	// declaration, definition, typeDefinition and implementation share a shape
	for _, name := range []string{"Declaration", "Definition", "TypeDefinition", "Implementation"} {
		b.Extend(name+"Options", bases("WorkDoneProgressOptions"))
		b.Extend(name+"Params", bases("TextDocumentPositionParams", "WorkDoneProgressParams", "PartialResultParams"))
	}
	for _, name := range []string{"Declaration", "TypeDefinition", "Implementation"} {
		b.Extend(name+"RegistrationOptions",
			bases(name+"Options", "TextDocumentRegistrationOptions", "StaticRegistrationOptions"))
	}

	b.Extend("ReferenceOptions", bases("WorkDoneProgressOptions"))
	b.Define("ReferenceContext",
		req("includeDeclaration", Bool),
	)
	b.Extend("ReferenceParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams", "PartialResultParams"),
		req("context", ref("ReferenceContext")),
	)

	b.Extend("DocumentHighlightOptions", bases("WorkDoneProgressOptions"))
	b.Extend("DocumentHighlightParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams", "PartialResultParams"))
	b.Define("DocumentHighlight",
		req("range", ref("Range")),
		optDefault("kind", Integer, 1),
	)
}

func defineSymbols(b *CatalogBuilder) {
	b.Extend("DocumentSymbolOptions", bases("WorkDoneProgressOptions"),
		opt("label", String),
	)
	b.Extend("DocumentSymbolParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("DocumentSymbol",
		req("name", String),
		opt("detail", String),
		req("kind", Integer),
		opt("tags", integerList),
		opt("deprecated", Bool),
		req("range", ref("Range")),
		req("selectionRange", ref("Range")),
		opt("children", list(ref("DocumentSymbol"))),
	)
}

func defineCodeActions(b *CatalogBuilder) {
	b.Extend("CodeActionOptions", bases("WorkDoneProgressOptions"),
		opt("codeActionKinds", stringList),
		optDefault("resolveProvider", Bool, false),
	)
	b.Define("CodeActionContext",
		req("diagnostics", list(ref("Diagnostic"))),
		opt("only", stringList),
	)
	b.Extend("CodeActionParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("range", ref("Range")),
		req("context", ref("CodeActionContext")),
	)
	b.Define("CodeActionDisabled",
		req("reason", String),
	)
	b.Define("CodeAction",
		req("title", String),
		opt("kind", String),
		opt("diagnostics", list(ref("Diagnostic"))),
		opt("isPreferred", Bool),
		opt("disabled", ref("CodeActionDisabled")),
		opt("edit", ref("WorkspaceEdit")),
		opt("command", ref("Command")),
		opt("data", Any()),
	)

	b.Extend("CodeLensOptions", bases("WorkDoneProgressOptions"),
		optDefault("resolveProvider", Bool, false),
	)
	b.Extend("CodeLensParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("CodeLens",
		req("range", ref("Range")),
		opt("command", ref("Command")),
		opt("data", Any()),
	)
}

func defineDocumentLinks(b *CatalogBuilder) {
	b.Extend("DocumentLinkOptions", bases("WorkDoneProgressOptions"),
		optDefault("resolveProvider", Bool, false),
	)
	b.Extend("DocumentLinkParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("DocumentLink",
		req("range", ref("Range")),
		opt("target", String),
		opt("tooltip", String),
		opt("data", Any()),
	)
}

func defineColors(b *CatalogBuilder) {
	b.Extend("DocumentColorOptions", bases("WorkDoneProgressOptions"))
	b.Extend("DocumentColorRegistrationOptions",
		bases("TextDocumentRegistrationOptions", "StaticRegistrationOptions", "DocumentColorOptions"))
	b.Extend("DocumentColorParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("Color",
		req("red", Float),
		req("green", Float),
		req("blue", Float),
		req("alpha", Float),
	)
	b.Define("ColorInformation",
		req("range", ref("Range")),
		req("color", ref("Color")),
	)
	b.Extend("ColorPresentationParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("color", ref("Color")),
		req("range", ref("Range")),
	)
	b.Define("ColorPresentation",
		req("label", String),
		opt("textEdit", ref("TextEdit")),
		opt("additionalTextEdits", list(ref("TextEdit"))),
	)
}

func defineFormatting(b *CatalogBuilder) {
	b.Define("FormattingOptions",
		req("tabSize", Integer),
		req("insertSpaces", Bool),
		opt("trimTrailingWhitespace", Bool),
		opt("insertFinalNewline", Bool),
		opt("trimFinalNewlines", Bool),
	)
	b.Extend("DocumentFormattingOptions", bases("WorkDoneProgressOptions"))
	b.Extend("DocumentFormattingParams", bases("WorkDoneProgressParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("options", ref("FormattingOptions")),
	)
	b.Extend("DocumentRangeFormattingOptions", bases("WorkDoneProgressOptions"))
	b.Extend("DocumentRangeFormattingParams", bases("WorkDoneProgressParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("range", ref("Range")),
		req("options", ref("FormattingOptions")),
	)
	b.Define("DocumentOnTypeFormattingOptions",
		req("firstTriggerCharacter", String),
		opt("moreTriggerCharacter", stringList),
	)
	b.Extend("DocumentOnTypeFormattingParams", bases("TextDocumentPositionParams"),
		req("ch", String),
		req("options", ref("FormattingOptions")),
	)
}

func defineRename(b *CatalogBuilder) {
	b.Extend("RenameOptions", bases("WorkDoneProgressOptions"),
		optDefault("prepareProvider", Bool, false),
	)
	b.Extend("RenameParams", bases("TextDocumentPositionParams", "WorkDoneProgressParams"),
		req("newName", String),
	)
	b.Extend("PrepareRenameParams", bases("TextDocumentPositionParams"))
	b.Define("PrepareRename",
		req("range", ref("Range")),
		req("placeholder", String),
	)
}

func defineRanges(b *CatalogBuilder) {
	b.Extend("FoldingRangeOptions", bases("WorkDoneProgressOptions"))
	b.Extend("FoldingRangeRegistrationOptions",
		bases("TextDocumentRegistrationOptions", "FoldingRangeOptions", "StaticRegistrationOptions"))
	b.Extend("FoldingRangeParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("FoldingRange",
		req("startLine", Integer),
		opt("startCharacter", Integer),
		req("endLine", Integer),
		opt("endCharacter", Integer),
		opt("kind", String),
	)

	b.Extend("SelectionRangeOptions", bases("WorkDoneProgressOptions"))
	b.Extend("SelectionRangeRegistrationOptions",
		bases("SelectionRangeOptions", "TextDocumentRegistrationOptions", "StaticRegistrationOptions"))
	b.Extend("SelectionRangeParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("positions", list(ref("Position"))),
	)
	b.Define("SelectionRange",
		req("range", ref("Range")),
		opt("parent", ref("SelectionRange")),
	)
}
