package schema

func defineBasic(b *CatalogBuilder) {
	b.Define("Position",
		req("line", Integer),
		req("character", Integer),
	)
	b.Define("Range",
		req("start", ref("Position")),
		req("end", ref("Position")),
	)
	b.Define("Location",
		req("uri", documentURI),
		req("range", ref("Range")),
	)
	b.Define("LocationLink",
		opt("originSelectionRange", ref("Range")),
		req("targetUri", documentURI),
		req("targetRange", ref("Range")),
		req("targetSelectionRange", ref("Range")),
	)

	b.Define("CodeDescription",
		req("href", String),
	)
	b.Define("DiagnosticRelatedInformation",
		req("location", ref("Location")),
		req("message", String),
	)
	b.Define("Diagnostic",
		req("range", ref("Range")),
		opt("severity", Integer),
		opt("code", Union(Integer, String)),
		opt("codeDescription", ref("CodeDescription")),
		opt("source", String),
		req("message", String),
		opt("tags", integerList),
		opt("relatedInformation", list(ref("DiagnosticRelatedInformation"))),
		opt("data", Any()),
	)

	b.Define("Command",
		req("title", String),
		req("command", String),
		opt("arguments", list(Any())),
	)
	b.Define("TextEdit",
		req("range", ref("Range")),
		req("newText", String),
	)
	b.Define("InsertReplaceEdit",
		req("newText", String),
		req("insert", ref("Range")),
		req("replace", ref("Range")),
	)

	b.Define("TextDocumentIdentifier",
		req("uri", documentURI),
	)
	b.Extend("VersionedTextDocumentIdentifier", bases("TextDocumentIdentifier"),
		req("version", Integer),
	)
	b.Extend("OptionalVersionedTextDocumentIdentifier", bases("TextDocumentIdentifier"),
		nullable("version", Integer),
	)
	b.Define("TextDocumentItem",
		req("uri", documentURI),
		req("languageId", String),
		req("version", Integer),
		req("text", String),
	)
	b.Define("TextDocumentPositionParams",
		req("textDocument", ref("TextDocumentIdentifier")),
		req("position", ref("Position")),
	)

	b.Define("DocumentFilter",
		opt("language", String),
		opt("scheme", String),
		opt("pattern", String),
	)
	b.Define("TextDocumentRegistrationOptions",
		nullable("documentSelector", list(ref("DocumentFilter"))),
	)
	b.Define("StaticRegistrationOptions",
		opt("id", String),
	)

	b.Define("WorkDoneProgressParams",
		opt("workDoneToken", progressToken),
	)
	b.Define("PartialResultParams",
		opt("partialResultToken", progressToken),
	)
	b.Define("WorkDoneProgressOptions",
		optDefault("workDoneProgress", Bool, false),
	)

	b.Define("MarkupContent",
		req("kind", String),
		req("value", String),
	)
	b.Define("MarkedStringWithLanguage",
		req("language", String),
		req("value", String),
	)
}

func defineWorkspaceEdit(b *CatalogBuilder) {
	b.Define("TextDocumentEdit",
		req("textDocument", ref("OptionalVersionedTextDocumentIdentifier")),
		req("edits", list(ref("TextEdit"))),
	)

	b.Define("CreateFileOptions",
		opt("overwrite", Bool),
		opt("ignoreIfExists", Bool),
	)
	b.Define("CreateFile",
		req("kind", String),
		req("uri", documentURI),
		opt("options", ref("CreateFileOptions")),
	)
	b.Define("RenameFileOptions",
		opt("overwrite", Bool),
		opt("ignoreIfExists", Bool),
	)
	b.Define("RenameFile",
		req("kind", String),
		req("oldUri", documentURI),
		req("newUri", documentURI),
		opt("options", ref("RenameFileOptions")),
	)
	b.Define("DeleteFileOptions",
		opt("recursive", Bool),
		opt("ignoreIfNotExists", Bool),
	)
	b.Define("DeleteFile",
		req("kind", String),
		req("uri", documentURI),
		opt("options", ref("DeleteFileOptions")),
	)

	documentChange := Union(ref("TextDocumentEdit"), ref("CreateFile"), ref("RenameFile"), ref("DeleteFile"))
	b.Define("WorkspaceEdit",
		opt("changes", Mapping(list(ref("TextEdit")))),
		opt("documentChanges", Union(list(ref("TextDocumentEdit")), list(documentChange))),
	)
}
