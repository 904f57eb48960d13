package e2e

import (
	"fmt"
	"hashlens/hashing"
	"hashlens/repositories"
	"hashlens/services"
	"hashlens/unhash"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type BaseSuite struct {
	suite.Suite
	Config  Config
	DB      *badger.DB
	Log     *slog.Logger
	Service *services.UnhashService
	dbPath  string
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromString("ERROR")
}

// SetupTest opens a fresh store and service for every scenario.
func (s *BaseSuite) SetupTest() {
	s.dbPath = filepath.Join(s.T().TempDir(), "badger")
	s.open()
}

func (s *BaseSuite) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
		s.DB = nil
	}
}

// Reopen closes the store and builds a new service on top of it, as a second process would.
func (s *BaseSuite) Reopen() {
	s.Require().NoError(s.DB.Close())
	s.open()
}

func (s *BaseSuite) open() {
	db, err := badger.Open(badger.DefaultOptions(s.dbPath).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.DB = db

	opts := hashing.DefaultOptions()
	opts.NFeatures = s.Config.NFeatures
	vec, err := hashing.New(opts)
	s.Require().NoError(err)

	s.Service = services.NewUnhashService(s.Log, unhash.New(vec),
		repositories.NewTermCountRepository(db, s.Log),
		repositories.NewFitRunRepository(db, s.Log))
}

// Step prints a colorized header then runs fn as a subtest.
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// Dump logs fields as JSON when E2E_DEBUG_JSON is enabled.
func (s *BaseSuite) Dump(label string, fields map[string]any) {
	if !s.Config.DebugJSON {
		return
	}
	value, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}
	s.T().Logf("%s:\n%s", label, marshaler.Format(value))
}

// CorpusPaths returns the configured corpus directory, or writes lines into a temp file.
func (s *BaseSuite) CorpusPaths(lines []string) []string {
	if s.Config.CorpusDir != "" {
		return []string{s.Config.CorpusDir}
	}
	path := filepath.Join(s.T().TempDir(), "corpus.txt")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return []string{path}
}
