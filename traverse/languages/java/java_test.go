package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImports_PlainImports(t *testing.T) {
	src := []byte(`package com.example.app;

import com.example.util.Helper;
import java.util.List;
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"com.example.util.Helper", "java.util.List"}, imports)
}

func TestParseImports_StaticImportStripsMember(t *testing.T) {
	src := []byte(`import static com.example.util.Math.max;
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"com.example.util.Math"}, imports)
}

func TestParseImports_WildcardResolvesBasePackage(t *testing.T) {
	src := []byte(`import com.example.util.*;
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"com.example.util"}, imports)
}

func TestParseImports_IgnoresPackageDeclarationAndComments(t *testing.T) {
	src := []byte(`package com.example;

// import com.example.Commented;
public class App {}
`)
	imports := Module{}.ParseImports(src)
	assert.Empty(t, imports)
}

func TestParseImports_PreservesTextualOrder(t *testing.T) {
	src := []byte(`import zzz.Last;
import static aaa.First.thing;
import mmm.Middle;
`)
	imports := Module{}.ParseImports(src)
	assert.Equal(t, []string{"zzz.Last", "aaa.First", "mmm.Middle"}, imports)
}
