package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xz-dev/telegram-file-uploader/internal/domain"
)

// Writer appends upload results to a GitHub Actions step-output file as
// key=value lines
type Writer struct {
	path   string
	logger zerolog.Logger
}

// NewWriter creates a writer for the given sink path; an empty path makes
// every Write a no-op
func NewWriter(path string, logger zerolog.Logger) *Writer {
	return &Writer{
		path:   path,
		logger: logger.With().Str("component", "github_output").Logger(),
	}
}

// Write appends the result to the sink file. Lines are emitted in a fixed
// order: message_urls, message_ids, then the single-value convenience keys
// message_url and message_id. The convenience keys are omitted for an empty
// result. The file is opened in append mode: earlier step outputs survive.
func (w *Writer) Write(result *domain.UploadResult) error {
	if w.path == "" {
		w.logger.Debug().Msg("no output file configured, skipping")
		return nil
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	ids := make([]string, 0, len(result.MessageIDs))
	for _, id := range result.MessageIDs {
		ids = append(ids, strconv.Itoa(id))
	}

	var b strings.Builder
	b.WriteString("message_urls=" + strings.Join(result.MessageURLs, ",") + "\n")
	b.WriteString("message_ids=" + strings.Join(ids, ",") + "\n")
	if len(result.MessageURLs) > 0 {
		b.WriteString("message_url=" + result.MessageURLs[0] + "\n")
	}
	if len(ids) > 0 {
		b.WriteString("message_id=" + ids[0] + "\n")
	}

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.logger.Debug().Str("path", w.path).Msg("step outputs written")
	return nil
}
