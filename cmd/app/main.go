package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/xz-dev/telegram-file-uploader/config"
	"github.com/xz-dev/telegram-file-uploader/internal/domain"
	"github.com/xz-dev/telegram-file-uploader/internal/infrastructure/logger"
	"github.com/xz-dev/telegram-file-uploader/internal/infrastructure/output"
	"github.com/xz-dev/telegram-file-uploader/internal/infrastructure/telegram"
	"github.com/xz-dev/telegram-file-uploader/internal/usecase"
	"github.com/xz-dev/telegram-file-uploader/internal/utils"
)

func main() {
	if err := newRootCmd(run).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI surface around the given run function
func newRootCmd(runFn func(ctx context.Context, to, caption string, files []string) error) *cobra.Command {
	var (
		to      string
		caption string
		files   []string
	)

	rootCmd := &cobra.Command{
		Use:   "telegram-file-uploader",
		Short: "Upload files to a Telegram chat as a single grouped message",
		Long: "Authenticates as a bot, uploads the given files, sends them as one " +
			"grouped message with a caption and reports the resulting message IDs " +
			"and shareable t.me URLs.",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Paths after the first --files value arrive as positionals;
			// they belong to the file list, not on the floor
			return runFn(cmd.Context(), to, caption, append(files, args...))
		},
	}

	rootCmd.Flags().StringVar(&to, "to", "", "Chat ID or username")
	rootCmd.Flags().StringVar(&caption, "message", "", "Message caption")
	rootCmd.Flags().StringArrayVar(&files, "files", nil,
		"File to upload (repeatable; a value may hold newline-separated paths)")

	return rootCmd
}

func run(ctx context.Context, to, caption string, rawFiles []string) error {
	// 1. Load and validate configuration
	cfg := config.Load()

	// 2. Initialize logger
	log := logger.New(cfg.Logging.Level)

	// 3. Clean up the file list; CI multi-line inputs arrive as one value
	files := utils.NormalizeFileList(rawFiles)

	// 4. Create the MTProto client
	client, err := telegram.NewClient(telegram.Config{
		APIID:       cfg.Telegram.APIID,
		APIHash:     cfg.Telegram.APIHash,
		BotToken:    cfg.Telegram.BotToken,
		SessionFile: cfg.Telegram.SessionFile,
		Logger:      log,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create Telegram client")
		return err
	}

	// 5. Connect and drive the upload inside the client session
	var result *domain.UploadResult
	err = client.Run(ctx, func(ctx context.Context, tc domain.TelegramClient) error {
		res, err := usecase.NewUploadUseCase(tc, log).Run(ctx, domain.UploadRequest{
			To:      to,
			Caption: caption,
			Files:   files,
		})
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("upload failed")
		return err
	}

	// 6. Report results
	for _, url := range result.MessageURLs {
		log.Info().Str("url", url).Msg("message URL")
	}

	if err := output.NewWriter(cfg.Output.GitHubOutputPath, log).Write(result); err != nil {
		log.Error().Err(err).Msg("failed to write step outputs")
		return err
	}

	return nil
}
