package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/xz-dev/telegram-file-uploader/internal/domain"
)

func testResult() *domain.UploadResult {
	return &domain.UploadResult{
		MessageURLs: []string{"https://t.me/c/123456/100", "https://t.me/c/123456/101"},
		MessageIDs:  []int{100, 101},
	}
}

func TestWrite_AppendsLinesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o644))

	w := NewWriter(path, zerolog.Nop())
	require.NoError(t, w.Write(testResult()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "existing=1\n" +
		"message_urls=https://t.me/c/123456/100,https://t.me/c/123456/101\n" +
		"message_ids=100,101\n" +
		"message_url=https://t.me/c/123456/100\n" +
		"message_id=100\n"
	require.Equal(t, expected, string(content))
}

func TestWrite_RoundTripIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")

	w := NewWriter(path, zerolog.Nop())
	require.NoError(t, w.Write(testResult()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var idsLine string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "message_ids=") {
			idsLine = strings.TrimPrefix(line, "message_ids=")
		}
	}
	require.Equal(t, []string{"100", "101"}, strings.Split(idsLine, ","))
}

func TestWrite_NoSinkIsNoOp(t *testing.T) {
	w := NewWriter("", zerolog.Nop())
	require.NoError(t, w.Write(testResult()))
}

func TestWrite_EmptyResultOmitsConvenienceKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")

	w := NewWriter(path, zerolog.Nop())
	require.NoError(t, w.Write(&domain.UploadResult{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, "message_urls=\nmessage_ids=\n", string(content))
}
