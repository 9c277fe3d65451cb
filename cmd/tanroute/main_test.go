package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `StopArea:CDPA
StopArea:COLO
4
StopArea:CDPA,"Cité des Papillons",,47.20460931,-1.51870336,,,1,
StopArea:COLO,"Colombes",,47.21086178,-1.52087062,,,1,
StopArea:COMB,"Comberie",,47.21330093,-1.52442101,,,1,
StopArea:CYRA,"Cyrano",,47.20750893,-1.51586203,,,1,
4
StopArea:CDPA StopArea:CYRA
StopArea:CYRA StopArea:COLO
StopArea:CDPA StopArea:COMB
StopArea:COMB StopArea:COLO
`

func runWith(t *testing.T, input, strat string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(file, []byte(input), 0o600))

	*in, *strategy = file, strat
	t.Cleanup(func() { *in, *strategy = "", "linear" })

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(context.Background(), logger, &out))

	return out.String()
}

func TestRun(t *testing.T) {
	for _, s := range []string{"linear", "heap"} {
		got := runWith(t, doc, s)
		assert.Equal(t, "Cité des Papillons\nCyrano\nColombes\n", got, s)
	}
}

func TestRun_Impossible(t *testing.T) {
	reversed := "StopArea:COLO\nStopArea:CDPA\n" + doc[len("StopArea:CDPA\nStopArea:COLO\n"):]
	assert.Equal(t, "IMPOSSIBLE\n", runWith(t, reversed, "linear"))
}
