package main

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func testLogger() *charmlog.Logger {
	return charmlog.NewWithOptions(bytes.NewBuffer(nil), charmlog.Options{Level: charmlog.DebugLevel})
}

func TestDecomposeThreeLineContract(t *testing.T) {
	in := strings.NewReader("0 1\n0 2\n1 2\n")
	var out bytes.Buffer
	err := decompose(in, &out, defaultRunConfig(), testLogger(), "test-run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "0", lines[0]) // K_3 has no PRIME node
	require.Equal(t, "(J(0)(1)(2))", lines[2])
}

func TestDecomposeRejectsEmptyInput(t *testing.T) {
	// An edge list with no lines carries no vertices at all (ReadEdgeList
	// infers n from the largest endpoint seen); Compute rejects n=0.
	in := strings.NewReader("")
	var out bytes.Buffer
	err := decompose(in, &out, defaultRunConfig(), testLogger(), "test-run")
	require.Error(t, err)
}

func TestDecomposeRejectsMalformedInput(t *testing.T) {
	in := strings.NewReader("not an edge")
	var out bytes.Buffer
	err := decompose(in, &out, defaultRunConfig(), testLogger(), "test-run")
	require.ErrorIs(t, err, ErrBadInput)
}

func TestDecomposeHonorsDenseMaxNConfig(t *testing.T) {
	in := strings.NewReader("0 1\n1 2\n2 3\n")
	var out bytes.Buffer
	cfg := runConfig{DenseMaxN: 2}
	err := decompose(in, &out, cfg, testLogger(), "test-run")
	require.NoError(t, err)
	require.NotEmpty(t, out.String())
}
