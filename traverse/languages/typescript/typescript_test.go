package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImports_TypeOnlyImports(t *testing.T) {
	src := []byte(`import type { Config } from './config';
import { runtime } from './runtime';
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"./config", "./runtime"}, imports)
}

func TestParseImports_SharesJavaScriptForms(t *testing.T) {
	src := []byte(`import * as path from 'path';
export { helper } from './helper';
const legacy = require('./legacy');
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"path", "./helper", "./legacy"}, imports)
}

func TestResolution_TypeScriptExtensionOrder(t *testing.T) {
	res := Module{}.Resolution()
	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, res.Extensions)
	assert.Equal(t, []string{"index.ts", "index.tsx", "index.js"}, res.IndexNames)
}
