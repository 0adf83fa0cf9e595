package langsupport

// Module describes pluggable language support.
// Adding a language means adding one registry entry in the traverse package;
// no other code needs to change.
type Module interface {
	Name() string
	Tag() string
	Extensions() []string
	ParseImports(source []byte) []string
	Resolution() Resolution
}

// Resolution describes how a language's raw import references map onto
// candidate file paths during resolution.
type Resolution struct {
	// RelativeMarkers are lexical prefixes (e.g. "./", "../") that select
	// resolution against the importing file's directory instead of the
	// configured roots.
	RelativeMarkers []string

	// DottedPaths translates '.' separators in references to path
	// separators (Python, Java). A leading dot then marks a relative
	// package reference.
	DottedPaths bool

	// Extensions are the candidate extensions probed in order after the
	// exact name. Order is part of the resolution contract.
	Extensions []string

	// IndexNames are default files probed inside a same-named directory
	// (e.g. "__init__.py", "index.ts"). A directory without one of these
	// is not a match.
	IndexNames []string
}
