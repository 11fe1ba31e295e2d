package tuplegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

var parseConfigTests = []struct {
	testName    string
	data        string
	want        Config
	expectError string
}{{
	testName: "empty",
	data:     "",
	want:     DefaultConfig(),
}, {
	testName: "max-arity",
	data:     "max_arity: 16\n",
	want: Config{
		MaxArity: 16,
		Module:   DefaultModule,
		Root:     ".",
	},
}, {
	testName: "all",
	data: `
max_arity: 4
module: example.com/mytuples
root: gen
`,
	want: Config{
		MaxArity: 4,
		Module:   "example.com/mytuples",
		Root:     "gen",
	},
}, {
	testName:    "unknown-field",
	data:        "maxarity: 4\n",
	expectError: `(?s)yaml: unmarshal errors:.*field maxarity not found in type tuplegen.Config`,
}, {
	testName:    "arity-too-large",
	data:        "max_arity: 65\n",
	expectError: `max arity 65 out of range \[1, 64\]`,
}, {
	testName:    "negative-arity",
	data:        "max_arity: -1\n",
	expectError: `max arity -1 out of range \[1, 64\]`,
}, {
	testName:    "empty-module",
	data:        "module: ''\n",
	expectError: `no module path configured`,
}}

func TestParseConfig(t *testing.T) {
	for _, test := range parseConfigTests {
		t.Run(test.testName, func(t *testing.T) {
			cfg, err := parseConfig([]byte(test.data))
			if test.expectError != "" {
				qt.Assert(t, qt.ErrorMatches(err, test.expectError))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(cfg, test.want))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tuplegen.yaml")
	err := os.WriteFile(p, []byte("max_arity: 5\n"), 0o644)
	qt.Assert(t, qt.IsNil(err))

	cfg, err := LoadConfig(p)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.MaxArity, 5))
	qt.Assert(t, qt.Equals(cfg.Module, DefaultModule))
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}
