package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"go.uber.org/zap"
)

const fileExt = ".json"

var errUnsafeConversationID = errors.New("conversation id is not a valid file name")

// Lookup returns the first record of conversationID's command file whose
// command equals commandName. A missing file, malformed content and an
// absent command are all reported the same way: false.
func Lookup(conversationID, commandName, baseDir string) (domain.CommandRecord, bool) {
	records, err := readRecords(baseDir, conversationID)
	if err != nil {
		return domain.CommandRecord{}, false
	}

	return findRecord(records, commandName)
}

// Repository is the command store bound to one base directory.
type Repository struct {
	baseDir string
	logger  *zap.Logger
}

var _ ports.CommandRepository = (*Repository)(nil)

func NewRepository(baseDir string, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Repository{baseDir: filepath.Clean(baseDir), logger: logger}
}

func (r *Repository) BaseDir() string {
	return r.baseDir
}

func (r *Repository) Lookup(ctx context.Context, conversationID, command string) (domain.CommandRecord, bool) {
	if ctx.Err() != nil {
		return domain.CommandRecord{}, false
	}

	records, err := readRecords(r.baseDir, conversationID)
	if err != nil {
		r.logger.Debug("command lookup degraded to no match",
			zap.String("conversation", conversationID),
			zap.String("command", command),
			zap.Error(err))
		return domain.CommandRecord{}, false
	}

	return findRecord(records, command)
}

// List returns every record stored for the conversation. Unlike Lookup it
// reports read failures; a missing file is an empty list.
func (r *Repository) List(ctx context.Context, conversationID string) ([]domain.CommandRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := readRecords(r.baseDir, conversationID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.CommandRecord{}, nil
		}
		return nil, err
	}

	return records, nil
}

func findRecord(records []domain.CommandRecord, command string) (domain.CommandRecord, bool) {
	for _, record := range records {
		if record.Command == command {
			return record, true
		}
	}

	return domain.CommandRecord{}, false
}

func readRecords(baseDir, conversationID string) ([]domain.CommandRecord, error) {
	path, err := pathForConversation(baseDir, conversationID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}

	var records []domain.CommandRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode command file %q: %w", filepath.Base(path), err)
	}

	return records, nil
}

func pathForConversation(baseDir, conversationID string) (string, error) {
	id := domain.ConversationFileID(conversationID)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", errUnsafeConversationID, conversationID)
	}

	return filepath.Join(baseDir, id+fileExt), nil
}
