package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/fplboard/internal/api/fpl"
	"github.com/omarshaarawi/fplboard/internal/controller"
	"github.com/omarshaarawi/fplboard/internal/render"
	"github.com/omarshaarawi/fplboard/internal/service"
)

const helpText = "Available commands:\n" +
	"/fixtures - Upcoming fixtures for the next gameweek\n" +
	"/fixtures <team id> - Remaining fixtures for one team\n" +
	"/rank <manager id> - Live rank card for a manager\n" +
	"/bonus <gameweek> [player] - Bonus points for a gameweek"

type Handler struct {
	fplService *service.FPLService
}

func NewHandler(fplService *service.FPLService) *Handler {
	return &Handler{fplService: fplService}
}

// HandleCommand answers one command. Replies longer than a single Telegram
// message are split across several.
func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) []tgbotapi.MessageConfig {
	reply := h.Respond(ctx, update.Message.Command(), update.Message.CommandArguments())

	var msgs []tgbotapi.MessageConfig
	for _, chunk := range SplitMessage(reply, MaxMessageLength) {
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, chunk)
		msg.ParseMode = "Markdown"
		msgs = append(msgs, msg)
	}
	return msgs
}

// Respond runs one command and returns the reply text.
func (h *Handler) Respond(ctx context.Context, command, args string) string {
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "start":
		return "Welcome to FPL Board! Use /help to see available commands."
	case "help":
		return helpText
	case "fixtures":
		return h.handleFixtures(ctx, args)
	case "rank":
		return h.handleRank(ctx, args)
	case "bonus":
		return h.handleBonus(ctx, args)
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func (h *Handler) handleFixtures(ctx context.Context, args string) string {
	teamID := 0
	if args != "" {
		id, err := controller.ParseID("team ID", args, 1, controller.MaxTeamID)
		if err != nil {
			return err.Error() + " Usage: /fixtures <team id>"
		}
		teamID = id
	}

	fixtures, err := h.fplService.UpcomingFixtures(ctx, 0, teamID)
	if err != nil {
		return failure(err)
	}
	return render.FixturesMarkdown(fixtures, h.fplService.Teams())
}

func (h *Handler) handleRank(ctx context.Context, args string) string {
	managerID, err := controller.ParseID("manager ID", args, 1, controller.MaxManagerID)
	if err != nil {
		return err.Error() + " Usage: /rank <manager id>"
	}

	summary, err := h.fplService.ManagerCard(ctx, managerID)
	if err != nil {
		return failure(err)
	}
	return render.ManagerCardMarkdown(summary)
}

func (h *Handler) handleBonus(ctx context.Context, args string) string {
	gwArg, query, _ := strings.Cut(args, " ")
	gw, err := controller.ParseID("gameweek", gwArg, 1, controller.MaxGameweek)
	if err != nil {
		return err.Error() + " Usage: /bonus <gameweek> [player]"
	}

	entries, err := h.fplService.BonusTable(ctx, gw, query)
	if err != nil {
		return failure(err)
	}
	return render.BonusMarkdown(gw, entries, h.fplService.Teams())
}

func failure(err error) string {
	if fpl.IsFetchError(err) {
		return fpl.UserMessage
	}
	return fmt.Sprintf("Error: %v", err)
}
