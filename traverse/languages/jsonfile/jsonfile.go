package jsonfile

import "github.com/CodeContextHQ/ccc/traverse/langsupport"

// Module makes JSON files resolvable leaves: they can be reached as
// dependencies (e.g. require('./config.json')) but never expand further.
type Module struct{}

func (Module) Name() string {
	return "JSON"
}

func (Module) Tag() string {
	return "json"
}

func (Module) Extensions() []string {
	return []string{".json"}
}

func (Module) ParseImports(_ []byte) []string {
	return nil
}

func (Module) Resolution() langsupport.Resolution {
	return langsupport.Resolution{
		Extensions: []string{".json"},
	}
}
