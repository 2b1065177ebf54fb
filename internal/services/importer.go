package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/ecomload/internal/files/csvsource"
	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/internal/insert"
	"github.com/vvka-141/ecomload/internal/schema"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Stage is a step of an import run.
type Stage int

const (
	StageStart Stage = iota
	StageValidateDataDir
	StageRecreateSchema
	StageInsertAll
	StageCommit
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageValidateDataDir:
		return "validate_data_dir"
	case StageRecreateSchema:
		return "recreate_schema"
	case StageInsertAll:
		return "insert_all"
	case StageCommit:
		return "commit"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ImportService implements the Importer interface.
// Thread-Safety: NOT safe for concurrent Import() calls against the same target.
type ImportService struct {
	openStore ecomload.StoreOpener
	fs        filesystem.FileSystemProvider
	logger    ecomload.Logger
	schema    *schema.Manager
	newRunID  func() uuid.UUID
	now       func() time.Time
}

// NewImportService creates an ImportService with all dependencies injected.
// Panics on nil dependencies: they are wiring mistakes, not runtime conditions.
func NewImportService(
	openStore ecomload.StoreOpener,
	fsProvider filesystem.FileSystemProvider,
	logger ecomload.Logger,
) *ImportService {
	if openStore == nil {
		panic("openStore cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &ImportService{
		openStore: openStore,
		fs:        fsProvider,
		logger:    logger,
		schema:    schema.New(logger),
		newRunID:  uuid.New,
		now:       time.Now,
	}
}

// Import runs start -> validate_data_dir -> recreate_schema -> insert_all ->
// commit -> done. Any failure ends the run immediately; there is no retry and
// no cleanup, so a failed run can leave some tables loaded and others empty.
// The store is closed on every path.
func (s *ImportService) Import(ctx context.Context, config ecomload.ImportConfig) (report *ecomload.ImportReport, err error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	runID := s.newRunID()
	started := s.now()
	stage := StageStart
	s.logger.Verbose("Import %s: %s", runID, stage)

	enter := func(next Stage) {
		stage = next
		s.logger.Verbose("Import %s: %s", runID, stage)
	}
	defer func() {
		if err != nil {
			s.logger.Verbose("Import %s failed during %s", runID, stage)
		}
	}()

	enter(StageValidateDataDir)
	if err := s.validateDataDir(config.DataDir); err != nil {
		return nil, err
	}

	store, err := s.openStore(ctx, config.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			s.logger.Error("failed to close database: %v", closeErr)
		}
	}()
	s.logger.Verbose("Target: %s", store.Location())

	enter(StageRecreateSchema)
	if err := s.schema.Recreate(ctx, store, config.Tables); err != nil {
		return nil, fmt.Errorf("schema recreation failed: %w", err)
	}

	enter(StageInsertAll)
	inserter := insert.New(csvsource.New(s.fs, config.DataDir), s.logger)
	results, err := inserter.InsertAll(ctx, store, config.Tables)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	// Each table commits as it is inserted; reaching this stage means every
	// table transaction has committed.
	enter(StageCommit)

	enter(StageDone)
	return &ecomload.ImportReport{
		RunID:    runID,
		Location: store.Location(),
		Tables:   results,
		Started:  started,
		Duration: s.now().Sub(started),
	}, nil
}

func (s *ImportService) validateDataDir(dir string) error {
	isDir, err := filesystem.IsDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ecomload.ErrDataDirNotFound, dir)
		}
		return fmt.Errorf("failed to access data directory %s: %w", dir, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s is not a directory", ecomload.ErrDataDirNotFound, dir)
	}
	return nil
}

var _ ecomload.Importer = (*ImportService)(nil)
