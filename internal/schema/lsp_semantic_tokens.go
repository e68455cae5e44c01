package schema

// Predefined semantic token types
const (
	TokenTypeNamespace     = "namespace"
	TokenTypeType          = "type"
	TokenTypeClass         = "class"
	TokenTypeEnum          = "enum"
	TokenTypeInterface     = "interface"
	TokenTypeStruct        = "struct"
	TokenTypeTypeParameter = "typeParameter"
	TokenTypeParameter     = "parameter"
	TokenTypeVariable      = "variable"
	TokenTypeProperty      = "property"
	TokenTypeEnumMember    = "enumMember"
	TokenTypeEvent         = "event"
	TokenTypeFunction      = "function"
	TokenTypeMethod        = "method"
	TokenTypeMacro         = "macro"
	TokenTypeKeyword       = "keyword"
	TokenTypeModifier      = "modifier"
	TokenTypeComment       = "comment"
	TokenTypeString        = "string"
	TokenTypeNumber        = "number"
	TokenTypeRegexp        = "regexp"
	TokenTypeOperator      = "operator"
)

// Predefined semantic token modifiers
const (
	TokenModifierDeclaration    = "declaration"
	TokenModifierDefinition     = "definition"
	TokenModifierReadonly       = "readonly"
	TokenModifierStatic         = "static"
	TokenModifierDeprecated     = "deprecated"
	TokenModifierAbstract       = "abstract"
	TokenModifierAsync          = "async"
	TokenModifierModification   = "modification"
	TokenModifierDocumentation  = "documentation"
	TokenModifierDefaultLibrary = "defaultLibrary"
)

// TokenFormatRelative is the only token format defined by the protocol
const TokenFormatRelative = "relative"

func defineSemanticTokens(b *CatalogBuilder) {
	b.Define("SemanticTokensLegend",
		req("tokenTypes", stringList),
		req("tokenModifiers", stringList),
	)
	b.Define("SemanticTokensFullOptions",
		optDefault("delta", Bool, false),
	)

	// range may be true or an empty literal object reserved for future use
	rangeOption := Union(Bool, Mapping(Any()))
	fullOption := Union(Bool, ref("SemanticTokensFullOptions"))

	b.Define("SemanticTokensRequests",
		optDefault("range", rangeOption, false),
		optDefault("full", fullOption, false),
	)
	b.Extend("SemanticTokensClientCapabilities", bases("DynamicRegistrationCapabilities"),
		req("requests", ref("SemanticTokensRequests")),
		req("tokenTypes", stringList),
		req("tokenModifiers", stringList),
		req("formats", stringList),
		optDefault("overlappingTokenSupport", Bool, false),
		optDefault("multilineTokenSupport", Bool, false),
	)

	b.Extend("SemanticTokensOptions", bases("WorkDoneProgressOptions"),
		req("legend", ref("SemanticTokensLegend")),
		optDefault("range", rangeOption, false),
		optDefault("full", fullOption, false),
	)
	b.Extend("SemanticTokensRegistrationOptions",
		bases("TextDocumentRegistrationOptions", "SemanticTokensOptions", "StaticRegistrationOptions"))

	b.Extend("SemanticTokensParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
	)
	b.Define("SemanticTokens",
		opt("resultId", String),
		req("data", integerList),
	)
	b.Define("SemanticTokensPartialResult",
		req("data", integerList),
	)

	b.Extend("SemanticTokensDeltaParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("previousResultId", String),
	)
	b.Define("SemanticTokensEdit",
		req("start", Integer),
		req("deleteCount", Integer),
		opt("data", integerList),
	)
	b.Define("SemanticTokensDelta",
		opt("resultId", String),
		req("edits", list(ref("SemanticTokensEdit"))),
	)
	b.Define("SemanticTokensDeltaPartialResult",
		req("edits", list(ref("SemanticTokensEdit"))),
	)

	b.Extend("SemanticTokensRangeParams", bases("WorkDoneProgressParams", "PartialResultParams"),
		req("textDocument", ref("TextDocumentIdentifier")),
		req("range", ref("Range")),
	)
}
