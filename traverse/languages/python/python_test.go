package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImports_PlainAndFromForms(t *testing.T) {
	src := []byte(`import os
import sys, json
from collections import OrderedDict

def main():
    pass
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"os", "sys", "json", "collections"}, imports)
}

func TestParseImports_DottedModulePaths(t *testing.T) {
	src := []byte(`import package.module.helper
from package.other import thing
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"package.module.helper", "package.other"}, imports)
}

func TestParseImports_RelativeForms(t *testing.T) {
	src := []byte(`from . import sibling
from .utils import helper
from ..shared import base
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{".", ".utils", "..shared"}, imports)
}

func TestParseImports_StripsAliases(t *testing.T) {
	src := []byte(`import numpy as np
import os.path as p, sys
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"numpy", "os.path", "sys"}, imports)
}

func TestParseImports_WildcardResolvesBaseModule(t *testing.T) {
	src := []byte(`from helpers import *
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"helpers"}, imports)
}

func TestParseImports_PreservesTextualOrder(t *testing.T) {
	src := []byte(`from zlib import compress
import abc
from first import x
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"zlib", "abc", "first"}, imports)
}

func TestParseImports_DeduplicatesFirstOccurrence(t *testing.T) {
	src := []byte(`import os
from os import path
import os
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"os"}, imports)
}

func TestParseImports_IgnoresCommentsAndStrings(t *testing.T) {
	src := []byte(`# import commented
x = "import quoted"
`)
	imports := Module{}.ParseImports(src)
	assert.Empty(t, imports)
}

func TestParseImports_AcceptsIndentedImports(t *testing.T) {
	src := []byte(`def lazy():
    import heavy_module
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"heavy_module"}, imports)
}
