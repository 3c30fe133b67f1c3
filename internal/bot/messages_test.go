package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/fplboard/internal/api/fpl"
	"github.com/omarshaarawi/fplboard/internal/config"
	"github.com/omarshaarawi/fplboard/internal/repository/memory"
	"github.com/omarshaarawi/fplboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, SplitMessage("short", 10))

	chunks := SplitMessage("aaaa\nbbbb\ncccc\n", 10)
	assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)

	chunks = SplitMessage("abcdefghijkl", 5)
	assert.Equal(t, []string{"abcde", "fghij", "kl"}, chunks)

	// Emoji outside the BMP count as two units.
	chunks = SplitMessage("🟢🟢🟢", 4)
	assert.Equal(t, []string{"🟢🟢", "🟢"}, chunks)
}

func TestHandleCommandSplitsLongSeason(t *testing.T) {
	var fixtures []string
	for i := 1; i <= 380; i++ {
		fixtures = append(fixtures, fmt.Sprintf(`{"id":%d,"event":%d,"team_h":%d,"team_a":%d,"team_h_difficulty":3,"team_a_difficulty":2,"finished":false}`, i, (i-1)/10+1, i%20+1, (i+7)%20+1))
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fixtures/":
			assert.Empty(t, r.URL.Query().Get("event"))
			w.Write([]byte("[" + strings.Join(fixtures, ",") + "]"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	api := fpl.NewAPI(fpl.NewClient(config.FPLAPI{Base: srv.URL}))
	h := NewHandler(service.NewFPLService(api, memory.NewRepository()))

	update := tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     "/fixtures",
		Chat:     &tgbotapi.Chat{ID: 7},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 9}},
	}}
	msgs := h.HandleCommand(context.Background(), update)

	require.Greater(t, len(msgs), 1)
	rows := 0
	for _, msg := range msgs {
		assert.LessOrEqual(t, textLength(msg.Text), MaxMessageLength)
		assert.Equal(t, "Markdown", msg.ParseMode)
		rows += strings.Count(msg.Text, " FDR 3 v ")
	}
	assert.Equal(t, 380, rows)
}
