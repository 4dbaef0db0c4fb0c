package telegram

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/styling"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/xz-dev/telegram-file-uploader/internal/domain"
	"github.com/xz-dev/telegram-file-uploader/internal/utils"
)

// Client implements domain.TelegramClient using the gotd/td library
type Client struct {
	apiID       int
	apiHash     string
	botToken    string
	sessionFile string
	logger      zerolog.Logger

	// Populated by Run once the connection is up
	api      *tg.Client
	uploader *uploader.Uploader
	sender   *message.Sender

	// Paces entity-resolution calls; bulk upload traffic is chunked and
	// paced by the uploader itself
	rateLimiter *rate.Limiter
}

// Config holds configuration for the MTProto client
type Config struct {
	APIID       int
	APIHash     string
	BotToken    string
	SessionFile string
	Logger      zerolog.Logger
}

// NewClient creates a new MTProto client instance
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIID == 0 {
		return nil, fmt.Errorf("APIID is required")
	}
	if cfg.APIHash == "" {
		return nil, fmt.Errorf("APIHash is required")
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BotToken is required")
	}

	return &Client{
		apiID:       cfg.APIID,
		apiHash:     cfg.APIHash,
		botToken:    cfg.BotToken,
		sessionFile: cfg.SessionFile,
		logger:      cfg.Logger.With().Str("component", "mtproto_client").Logger(),
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
	}, nil
}

// Run connects to Telegram, ensures the bot is authorized and hands a ready
// client to fn. The connection is torn down when fn returns; the session is
// persisted to the session file so reruns skip the login exchange.
func (c *Client) Run(ctx context.Context, fn func(ctx context.Context, client domain.TelegramClient) error) error {
	tgClient := telegram.NewClient(c.apiID, c.apiHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: c.sessionFile},
	})

	return tgClient.Run(ctx, func(ctx context.Context) error {
		status, err := tgClient.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to check auth status: %w", err)
		}

		if !status.Authorized {
			c.logger.Info().
				Str("token", utils.MaskToken(c.botToken)).
				Msg("not authorized, logging in as bot")
			if _, err := tgClient.Auth().Bot(ctx, c.botToken); err != nil {
				return fmt.Errorf("bot authorization failed: %w", err)
			}
		} else {
			c.logger.Info().Msg("session restored from storage")
		}

		c.api = tgClient.API()
		c.uploader = uploader.NewUploader(c.api)
		c.sender = message.NewSender(c.api).WithUploader(c.uploader)

		return fn(ctx, c)
	})
}

// UploadFile transfers a local file to Telegram in chunks and returns the
// resulting handle. Progress is reported per chunk through onProgress.
func (c *Client) UploadFile(ctx context.Context, path string, onProgress domain.ProgressFunc) (domain.UploadedFile, error) {
	up := uploader.NewUploader(c.api)
	if onProgress != nil {
		up = up.WithProgress(progressAdapter(onProgress))
	}

	ref, err := up.FromPath(ctx, path)
	if err != nil {
		return domain.UploadedFile{}, fmt.Errorf("failed to upload %s: %w", path, err)
	}

	return domain.UploadedFile{
		Name: filepath.Base(path),
		Ref:  ref,
	}, nil
}

// SendAlbum sends all uploaded files as a single grouped message via
// messages.sendMultiMedia and reports the messages the platform created
func (c *Client) SendAlbum(ctx context.Context, to string, files []domain.UploadedFile, captions []string, onProgress domain.ProgressFunc) ([]domain.SentMessage, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}
	if len(captions) != len(files) {
		return nil, fmt.Errorf("caption count %d does not match file count %d", len(captions), len(files))
	}

	peer, err := c.resolvePeer(ctx, to)
	if err != nil {
		return nil, err
	}

	album := make([]message.MultiMediaOption, 0, len(files))
	for i, file := range files {
		doc := message.UploadedDocument(file.Ref, captionText(captions[i])...).
			Filename(file.Name).
			ForceFile(true)
		album = append(album, doc)
	}

	sender := c.sender
	if onProgress != nil {
		up := uploader.NewUploader(c.api).WithProgress(progressAdapter(onProgress))
		sender = message.NewSender(c.api).WithUploader(up)
	}

	updates, err := sender.To(peer).Album(ctx, album[0], album[1:]...)
	if err != nil {
		return nil, fmt.Errorf("failed to send album: %w", err)
	}

	messages := collectSentMessages(updates)
	if len(messages) == 0 {
		return nil, domain.ErrNoMessages
	}
	return messages, nil
}

// ResolveEntity looks up the destination's public username. Errors are
// expected to be swallowed by the caller; ID-based links work without one.
func (c *Client) ResolveEntity(ctx context.Context, to string) (domain.EntityInfo, error) {
	kind, id, username := classifyDestination(to)

	switch kind {
	case destSelf:
		self, err := c.selfUser(ctx)
		if err != nil {
			return domain.EntityInfo{}, err
		}
		return domain.EntityInfo{Username: self.Username}, nil

	case destUsername:
		resolved, err := c.resolveUsername(ctx, username)
		if err != nil {
			return domain.EntityInfo{}, err
		}
		return entityFromResolved(resolved), nil

	case destChannelID:
		channel, err := c.channelByID(ctx, id)
		if err != nil {
			return domain.EntityInfo{}, err
		}
		return domain.EntityInfo{Username: channel.Username}, nil

	case destChatID:
		// Legacy group chats have no public usernames
		return domain.EntityInfo{}, nil

	default:
		user, err := c.userByID(ctx, id)
		if err != nil {
			return domain.EntityInfo{}, err
		}
		return domain.EntityInfo{Username: user.Username}, nil
	}
}

// captionText converts a caption string into styled-text options; an empty
// caption means the album item carries no text at all
func captionText(caption string) []message.StyledTextOption {
	if caption == "" {
		return nil
	}
	return []message.StyledTextOption{styling.Plain(caption)}
}

// progressAdapter adapts a domain callback to the gotd uploader interface
type progressAdapter domain.ProgressFunc

func (p progressAdapter) Chunk(_ context.Context, state uploader.ProgressState) error {
	p(state.Uploaded, state.Total)
	return nil
}

// Ensure Client implements domain.TelegramClient interface
var _ domain.TelegramClient = (*Client)(nil)
