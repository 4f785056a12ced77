package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

var fixturePath = filepath.Join("..", "..", "testdata", "candidates.json")

// execute runs the root command in-process and captures both streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}
