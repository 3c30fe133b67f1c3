package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/omarshaarawi/fplboard/internal/api/fpl"
	"github.com/omarshaarawi/fplboard/internal/bot"
	"github.com/omarshaarawi/fplboard/internal/config"
	"github.com/omarshaarawi/fplboard/internal/controller"
	"github.com/omarshaarawi/fplboard/internal/render"
	"github.com/omarshaarawi/fplboard/internal/repository/memory"
	"github.com/omarshaarawi/fplboard/internal/service"
	"github.com/spf13/cobra"
)

type app struct {
	cfg      *config.Config
	svc      *service.FPLService
	page     *render.Page
	fixtures *controller.Fixtures
	rank     *controller.LiveRank
	bonus    *controller.Bonus
	out      string
}

func newApp(stderr io.Writer) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	client := fpl.NewClient(cfg.FPLAPI)
	slog.Info("Using FPL API", "base", client.BaseURL())
	svc := service.NewFPLService(fpl.NewAPI(client), memory.NewRepository())

	page, err := render.NewPage()
	if err != nil {
		return nil, err
	}

	alerter := controller.AlerterFunc(func(message string) {
		fmt.Fprintln(stderr, message)
	})

	return &app{
		cfg:      cfg,
		svc:      svc,
		page:     page,
		fixtures: controller.NewFixtures(svc, page, alerter),
		rank:     controller.NewLiveRank(svc, page, alerter),
		bonus:    controller.NewBonus(svc, page, alerter),
	}, nil
}

// finish writes the page unless the action was rejected before it ran.
func (a *app) finish(w io.Writer, actionErr error) error {
	var inputErr *controller.InputError
	if errors.As(actionErr, &inputErr) {
		return actionErr
	}

	html, err := a.page.HTML()
	if err != nil {
		return err
	}

	if a.out == "" || a.out == "-" {
		_, err = io.WriteString(w, html+"\n")
	} else {
		err = os.WriteFile(a.out, []byte(html+"\n"), 0o644)
	}
	if err != nil {
		return fmt.Errorf("error writing page: %w", err)
	}
	return actionErr
}

func newRootCmd() *cobra.Command {
	var a *app
	var out string

	root := &cobra.Command{
		Use:           "fplboard",
		Short:         "fplboard renders Fantasy Premier League fixtures, live rank and bonus points.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.out = out
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&out, "out", "o", "-", "Where to write the rendered page.")

	var team string
	var gameweek int
	var exclude []string
	fixturesCmd := &cobra.Command{
		Use:   "fixtures [--team <id>] [--gameweek <n>] [--exclude <team name>]",
		Short: "Renders upcoming fixtures with difficulty ratings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cmd.Flags().Changed("team") {
				if err = a.page.SetValue(render.TeamIDInput, team); err != nil {
					return err
				}
				err = a.fixtures.Submit(cmd.Context())
			} else {
				err = a.fixtures.Load(cmd.Context(), gameweek)
			}
			if err == nil {
				for _, name := range exclude {
					a.fixtures.RemoveTeam(name)
				}
			}
			return a.finish(cmd.OutOrStdout(), err)
		},
	}
	fixturesCmd.Flags().StringVar(&team, "team", "", "Only show fixtures for this team id.")
	fixturesCmd.Flags().IntVar(&gameweek, "gameweek", 0, "Gameweek to show (0 = next gameweek).")
	fixturesCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Remove rows for these team names.")

	rankCmd := &cobra.Command{
		Use:   "rank <manager id>",
		Short: "Renders a manager's live rank card.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.page.SetValue(render.ManagerIDInput, args[0]); err != nil {
				return err
			}
			return a.finish(cmd.OutOrStdout(), a.rank.Submit(cmd.Context()))
		},
	}

	var player string
	bonusCmd := &cobra.Command{
		Use:   "bonus <gameweek> [--player <name>]",
		Short: "Renders the bonus points table for a gameweek.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.page.SetValue(render.GameweekInput, args[0]); err != nil {
				return err
			}
			if err := a.page.SetValue(render.PlayerSearchInput, player); err != nil {
				return err
			}
			return a.finish(cmd.OutOrStdout(), a.bonus.Submit(cmd.Context()))
		},
	}
	bonusCmd.Flags().StringVar(&player, "player", "", "Filter the table by player name.")

	botCmd := &cobra.Command{
		Use:   "bot",
		Short: "Answers fixtures, rank and bonus commands over Telegram.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			telegramBot, err := bot.NewTelegramBot(a.cfg.TelegramBot.Token, a.cfg.TelegramBot.ChatID, a.svc)
			if err != nil {
				return err
			}
			err = telegramBot.Start(cmd.Context())
			slog.Info("Shutting down gracefully...")
			return err
		},
	}

	root.AddCommand(fixturesCmd, rankCmd, bonusCmd, botCmd)
	return root
}
