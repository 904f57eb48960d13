package main

import (
	"bytes"
	"fmt"
	errs "hashlens/errors"
	"hashlens/hashing"
	"hashlens/repositories"
	"hashlens/services"
	"hashlens/unhash"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BADGER_FILEPATH", filepath.Join(dir, "store"))
	t.Setenv("UNHASH_N_FEATURES", "8")
	t.Setenv("UNHASH_SPLIT", "line")
	t.Setenv("LOG_LEVEL", "ERROR")

	var lines []string
	for i := 1; i <= 16; i++ {
		lines = append(lines, strings.TrimSpace(strings.Repeat(fmt.Sprintf("word_%d ", i), i)))
	}
	corpusPath := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpusPath, []byte(strings.Join(lines, "\n")), 0o644))
	return corpusPath
}

// newTestCommandLine wires a command line from the environment the way run does,
// keeping the store open until the test ends.
func newTestCommandLine(t *testing.T, out io.Writer) commandLine {
	t.Helper()
	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	require.NoError(t, err)
	log := logs.GetLoggerFromString(config.LogLevel)

	vec, err := hashing.New(config.HashingOptions())
	require.NoError(t, err)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	service := services.NewUnhashService(log, unhash.New(vec),
		repositories.NewTermCountRepository(db, log),
		repositories.NewFitRunRepository(db, log))
	return commandLine{config: config, log: log, service: service, out: out}
}

func TestRun_FitThenQuery(t *testing.T) {
	req := require.New(t)
	corpusPath := setupEnv(t)

	var out bytes.Buffer
	code, err := run([]string{"fit", corpusPath}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "16 documents, 16 distinct terms")
	req.Contains(out.String(), "word_16")

	out.Reset()
	code, err = run([]string{"names", "-grep", "word_16"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "word_16")

	out.Reset()
	code, err = run([]string{"transform", "word_3"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "word_3")

	out.Reset()
	code, err = run([]string{"runs"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "false")

	out.Reset()
	code, err = run([]string{"fit", "-resume", corpusPath}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "16 documents, 16 distinct terms")

	out.Reset()
	code, err = run([]string{"reset"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)

	out.Reset()
	code, err = run([]string{"names", "-column", "0"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Equal("FEATURE[0]\n", out.String())
}

func TestRun_NamesListsKnownColumnsOnly(t *testing.T) {
	req := require.New(t)
	corpusPath := setupEnv(t)
	t.Setenv("UNHASH_N_FEATURES", strconv.Itoa(hashing.DefaultNFeatures))

	var out bytes.Buffer
	_, err := run([]string{"fit", corpusPath}, &out)
	req.NoError(err)

	out.Reset()
	code, err := run([]string{"names"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "word_16")
	req.NotContains(out.String(), "FEATURE[")

	out.Reset()
	cli := newTestCommandLine(t, &out)
	req.NoError(cli.service.Restore())
	names := cli.service.Vectorizer().FeatureNames(false)
	cli.printNames(names, false, "")
	for _, column := range names.KnownColumns() {
		req.Contains(out.String(), strconv.Itoa(column))
	}
}

func TestRun_Explain(t *testing.T) {
	req := require.New(t)
	corpusPath := setupEnv(t)
	weightsPath := filepath.Join(filepath.Dir(corpusPath), "weights.txt")
	req.NoError(os.WriteFile(weightsPath, []byte("1 -2 3 -4\n5 -6 7 -8"), 0o644))

	var out bytes.Buffer
	_, err := run([]string{"fit", corpusPath}, &out)
	req.NoError(err)

	out.Reset()
	code, err := run([]string{"explain", "-weights", weightsPath, "-k", "0"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "word_16")

	req.NoError(os.WriteFile(weightsPath, []byte("1 2 3"), 0o644))
	code, err = run([]string{"explain", "-weights", weightsPath}, &out)
	req.ErrorIs(err, errs.ErrWeightsLength)
	req.Equal(exitRuntime, code)
}

func TestRun_Errors(t *testing.T) {
	req := require.New(t)
	setupEnv(t)
	var out bytes.Buffer

	code, err := run(nil, &out)
	req.ErrorIs(err, errs.ErrUnknownCommand)
	req.Equal(exitConfig, code)

	code, err = run([]string{"frobnicate"}, &out)
	req.ErrorIs(err, errs.ErrUnknownCommand)
	req.Equal(exitConfig, code)

	code, err = run([]string{"fit"}, &out)
	req.ErrorIs(err, errs.ErrNoDocuments)
	req.Equal(exitRuntime, code)

	t.Setenv("UNHASH_NORM", "l7")
	code, err = run([]string{"runs"}, &out)
	req.ErrorIs(err, errs.ErrInvalidOptions)
	req.Equal(exitConfig, code)
}

func TestInspectHandler_ListsKnownColumns(t *testing.T) {
	req := require.New(t)
	corpusPath := setupEnv(t)

	var out bytes.Buffer
	_, err := run([]string{"fit", corpusPath}, &out)
	req.NoError(err)
	out.Reset()

	cli := newTestCommandLine(t, &out)
	req.NoError(cli.service.Restore())

	server := httptest.NewServer(cli.inspectHandler())
	defer server.Close()
	resp, err := http.Get(server.URL + "/inspect?grep=word_16")
	req.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)

	req.Contains(string(body), "word_16")
	req.Contains(string(body), "known_columns")
}
