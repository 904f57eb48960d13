package main

import (
	"errors"
	"fmt"
	errs "hashlens/errors"
	"hashlens/hashing"
	"hashlens/repositories"
	"hashlens/services"
	"hashlens/unhash"
	"io"
	"os"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unhash terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, store and service, then dispatches the subcommand.
// Returning instead of exiting lets the deferred store close run first.
func run(args []string, stdout io.Writer) (int, error) {
	if len(args) == 0 {
		usage(stdout)
		return exitConfig, errs.ErrUnknownCommand
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	vec, err := hashing.New(config.HashingOptions())
	if err != nil {
		return exitConfig, fmt.Errorf("vectorizer config error: %w", err)
	}

	// 2. Store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Service
	ivec := unhash.New(vec, unhash.WithUnknownTemplate(config.UnknownTemplate))
	service := services.NewUnhashService(log, ivec,
		repositories.NewTermCountRepository(db, log),
		repositories.NewFitRunRepository(db, log))

	cli := commandLine{config: config, log: log, service: service, out: stdout}
	if err = cli.dispatch(args[0], args[1:]); err != nil {
		if errors.Is(err, errs.ErrUnknownCommand) {
			usage(stdout)
			return exitConfig, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: unhash <command> [flags] [args]

commands:
  fit [-resume] [-always-signed] PATH...   learn which terms hash to which column
  names [-always-signed] [-all] [-grep S] [-column N]
                                           list the candidate terms of each column
  transform TEXT...                        hash texts and name the non-zero columns
  explain -weights FILE [-k N]             attribute model weights to terms
  runs [-limit N]                          list previous fits
  reset                                    forget every stored term count
  serve [-port N]                          browse the feature names over HTTP

configuration is read from the environment (and a local .env file),
see UNHASH_* variables and BADGER_FILEPATH.
`)
}
