package domain

import "context"

// ProgressFunc reports cumulative transfer progress. Purely informational:
// callers must behave identically whether or not it is ever invoked.
type ProgressFunc func(uploaded, total int64)

// TelegramClient is the capability surface this tool needs from a Telegram
// client library. The real implementation lives in
// internal/infrastructure/telegram; tests substitute a fake.
type TelegramClient interface {
	// UploadFile transfers a local file and returns a reusable handle.
	UploadFile(ctx context.Context, path string, onProgress ProgressFunc) (UploadedFile, error)

	// SendAlbum sends all files as one grouped message. captions must be
	// index-aligned with files; an empty string means no caption for that
	// item. Returns one SentMessage per message the platform created.
	SendAlbum(ctx context.Context, to string, files []UploadedFile, captions []string, onProgress ProgressFunc) ([]SentMessage, error)

	// ResolveEntity looks up destination metadata, notably its public
	// username. Callers treat any error as "no username available".
	ResolveEntity(ctx context.Context, to string) (EntityInfo, error)
}
