package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameInfoCmd())
	cmd.AddCommand(newGameFinishedCmd())
	cmd.AddCommand(newGamePlayersCountCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGamePlayersCmd())
	cmd.AddCommand(newGameSuggestCmd())
	cmd.AddCommand(newGameTurnCmd())
	cmd.AddCommand(newGameAskCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameAnswerCmd())
	cmd.AddCommand(newGameAnswerGuessCmd())
	cmd.AddCommand(newGameHistoryCmd())
	cmd.AddCommand(newGameLeaveCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <capacity>",
		Short: "Join an open game of the given capacity, creating one if none exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid capacity: %w", err)
			}

			req := map[string]int{"capacity": capacity}
			var result GameDetails

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games waiting for players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List all live games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games/info", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameFinishedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finished",
		Short: "List archived finished games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameSummary

			if err := client.Get("/api/v1/games/finished", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayersCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players-count",
		Short: "Count players across all live games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayersCount

			if err := client.Get("/api/v1/games/all-players-count", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Get game details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameDetails

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <game-id>",
		Short: "Join a specific game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/players", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players <game-id>",
		Short: "List players in a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/players", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSuggestCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "suggest <game-id> <character>",
		Short: "Suggest a character for another player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"displayName": displayName,
				"character":   args[1],
			}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/characters", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Character suggested")
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name to use in this game")

	return cmd
}

func newGameTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn <game-id>",
		Short: "Show whose turn it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TurnInfo

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/turn", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <game-id> <question>",
		Short: "Ask a question on your turn",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"question": args[1]}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/question", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Question asked")
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <game-id> <character>",
		Short: "Guess your character on your turn",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"guess": args[1]}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guess", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Guess submitted")
			return nil
		},
	}
}

func newGameAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <game-id> <yes|no|not_sure>",
		Short: "Answer the open question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"answer": args[1]}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/question/answer", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Answer recorded")
			return nil
		},
	}
}

func newGameAnswerGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer-guess <game-id> <yes|no>",
		Short: "Answer the open guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"answer": args[1]}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guess/answer", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Answer recorded")
			return nil
		},
	}
}

func newGameHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <game-id>",
		Short: "Show asked questions and answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []HistoryRecord

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/history", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <game-id>",
		Short: "Leave a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s/leave", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left game")
			return nil
		},
	}
}
