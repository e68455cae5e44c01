package schema

import "sync"

// Version is the Language Server Protocol version the LSP catalog describes
const Version = "3.16"

var (
	lspOnce    sync.Once
	lspCatalog *Catalog
	lspErr     error
)

// LSP returns the catalog of Language Server Protocol structures. It is built
// on first use and shared afterwards. A definition error is a programming
// defect, so LSP panics rather than returning it.
func LSP() *Catalog {
	lspOnce.Do(func() {
		lspCatalog, lspErr = BuildLSP()
	})
	if lspErr != nil {
		panic(lspErr)
	}
	return lspCatalog
}

// BuildLSP builds a fresh copy of the LSP catalog
func BuildLSP() (*Catalog, error) {
	b := NewCatalogBuilder()
	defineBasic(b)
	defineWorkspaceEdit(b)
	defineClientCapabilities(b)
	defineServerCapabilities(b)
	defineGeneral(b)
	defineWindow(b)
	defineWorkspace(b)
	defineSynchronization(b)
	defineCompletion(b)
	defineNavigation(b)
	defineSymbols(b)
	defineCodeActions(b)
	defineDocumentLinks(b)
	defineColors(b)
	defineFormatting(b)
	defineRename(b)
	defineRanges(b)
	defineSemanticTokens(b)
	return b.Build()
}

// Shorthands used by the catalog definitions

func ref(name string) Type {
	return Composite(name)
}

func list(t Type) Type {
	return Sequence(t)
}

func req(wireName string, t Type) FieldSpec {
	return Field(wireName, t)
}

// opt declares an omittable property that also tolerates an explicit null
func opt(wireName string, t Type) FieldSpec {
	return OptionalField(wireName, Optional(t), nil)
}

func optDefault(wireName string, t Type, def any) FieldSpec {
	return OptionalField(wireName, Optional(t), def)
}

// nullable declares a property that must be present but may be null
func nullable(wireName string, t Type) FieldSpec {
	return Field(wireName, Optional(t))
}

func bases(names ...string) []string {
	return names
}

var (
	documentURI   = String
	progressToken = Union(Integer, String)
	stringList    = list(String)
	integerList   = list(Integer)
)
