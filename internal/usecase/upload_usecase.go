package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xz-dev/telegram-file-uploader/internal/domain"
)

// UploadUseCase drives the upload-then-send flow against a TelegramClient
type UploadUseCase struct {
	client domain.TelegramClient
	logger zerolog.Logger
}

// NewUploadUseCase creates a new upload use case
func NewUploadUseCase(client domain.TelegramClient, logger zerolog.Logger) *UploadUseCase {
	return &UploadUseCase{
		client: client,
		logger: logger.With().Str("component", "upload_usecase").Logger(),
	}
}

// Run uploads all files sequentially, sends them as one grouped message and
// builds a shareable URL per returned message.
//
// Upload and send failures propagate unchanged so callers can inspect the
// platform's error classification. Entity resolution for the public username
// is best effort only and never fails the run.
func (u *UploadUseCase) Run(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if req.To == "" {
		return nil, domain.ErrNoDestination
	}
	if len(req.Files) == 0 {
		return nil, domain.ErrNoFiles
	}

	uploaded := make([]domain.UploadedFile, 0, len(req.Files))
	for _, path := range req.Files {
		u.logger.Info().Str("file", path).Msg("uploading file")

		file, err := u.client.UploadFile(ctx, path, u.progressFor(path))
		if err != nil {
			return nil, err
		}

		u.logger.Info().Str("file", path).Msg("uploaded file")
		uploaded = append(uploaded, file)
	}

	captions := buildCaptions(req.Caption, len(uploaded))

	u.logger.Info().
		Int("files", len(uploaded)).
		Str("to", req.To).
		Msg("sending message")

	messages, err := u.client.SendAlbum(ctx, req.To, uploaded, captions, u.progressFor("album"))
	if err != nil {
		return nil, err
	}

	u.logger.Info().Int("messages", len(messages)).Msg("sent message")

	username := ""
	if info, err := u.client.ResolveEntity(ctx, req.To); err == nil {
		username = info.Username
	} else {
		u.logger.Debug().
			Err(err).
			Str("to", req.To).
			Msg("could not resolve destination entity, using ID-based links")
	}

	// One entry per returned message, not per input file: the platform may
	// coalesce a grouped send into fewer messages.
	result := &domain.UploadResult{
		MessageURLs: make([]string, 0, len(messages)),
		MessageIDs:  make([]int, 0, len(messages)),
	}
	for _, msg := range messages {
		result.MessageIDs = append(result.MessageIDs, msg.ID)
		result.MessageURLs = append(result.MessageURLs, domain.BuildMessageURL(msg.Peer, msg.ID, username))
	}

	return result, nil
}

// buildCaptions places the caption on the last album item only; Telegram
// shows a single caption for a grouped send, attached to the final item
func buildCaptions(caption string, count int) []string {
	captions := make([]string, count)
	captions[count-1] = caption
	return captions
}

func (u *UploadUseCase) progressFor(name string) domain.ProgressFunc {
	return func(uploaded, total int64) {
		if total <= 0 {
			return
		}
		u.logger.Info().
			Str("file", name).
			Int64("uploaded", uploaded).
			Int64("total", total).
			Float64("percent", float64(uploaded)/float64(total)*100).
			Msg("upload progress")
	}
}
