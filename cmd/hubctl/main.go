// Command hubctl is the World Cup Hub operations CLI.
//
// Usage:
//
//	hubctl preview missing11 --difficulty easy --puzzle-id 2026-06-15
//	hubctl preview wordlecup --difficulty hard
//	hubctl poolsize --difficulty easy
//	hubctl play missing11 submit --slot <player_id> --guess Kane
//	hubctl play missing11 hint --slot <player_id>
//	hubctl play missing11 status
//	hubctl play wordlecup guess SPEED
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/worldcuphub/hub-data/internal/config"
	"github.com/worldcuphub/hub-data/internal/dataset"
	"github.com/worldcuphub/hub-data/internal/game"
	"github.com/worldcuphub/hub-data/internal/puzzle"
	"github.com/worldcuphub/hub-data/internal/storage"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "hubctl",
		Short: "World Cup Hub puzzle CLI",
	}

	root.AddCommand(previewCmd())
	root.AddCommand(poolsizeCmd())
	root.AddCommand(playCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newProvider() (dataset.Provider, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return dataset.NewDir(cfg.DatasetDir), cfg, nil
}

// --------------------------------------------------------------------------
// preview command
// --------------------------------------------------------------------------

func previewCmd() *cobra.Command {
	var difficulty, puzzleID string
	cmd := &cobra.Command{
		Use:       "preview {missing11|whoscored|wordlecup}",
		Short:     "Print the selected daily puzzle as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: puzzle.GameTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameType, ok := puzzle.ParseGameType(args[0])
			if !ok {
				return fmt.Errorf("unknown game type %q", args[0])
			}
			d, ok := puzzle.ParseDifficulty(difficulty)
			if !ok {
				return fmt.Errorf("unknown difficulty %q", difficulty)
			}

			provider, _, err := newProvider()
			if err != nil {
				return err
			}

			view, err := puzzle.Get(provider, gameType, d, puzzleID)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty tier (easy or hard)")
	cmd.Flags().StringVar(&puzzleID, "puzzle-id", "", "Puzzle date key YYYY-MM-DD (defaults to today UTC)")
	return cmd
}

// --------------------------------------------------------------------------
// poolsize command
// --------------------------------------------------------------------------

func poolsizeCmd() *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "poolsize",
		Short: "Report candidate pool sizes per game for a difficulty tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := puzzle.ParseDifficulty(difficulty)
			if !ok {
				return fmt.Errorf("unknown difficulty %q", difficulty)
			}

			provider, _, err := newProvider()
			if err != nil {
				return err
			}
			apps, err := provider.Appearances()
			if err != nil {
				return err
			}
			goals, err := provider.Goals()
			if err != nil {
				return err
			}

			lineups := puzzle.BuildLineupCandidates(apps)
			matches := puzzle.BuildMatchCandidates(goals)

			missing11 := puzzle.FilterLineupsForMissing11(lineups, d)
			wordlecup := puzzle.FilterLineupsForWordleCup(lineups, d)
			whoscored := puzzle.FilterMatches(matches, d)

			fmt.Printf("difficulty: %s\n", d)
			fmt.Printf("missing11:  %d lineups (of %d total)\n", len(missing11), len(lineups))
			fmt.Printf("whoscored:  %d matches (of %d total)\n", len(whoscored), len(matches))
			fmt.Printf("wordlecup:  %d lineups (of %d total)\n", len(wordlecup), len(lineups))

			stages := make(map[string]int)
			for _, m := range whoscored {
				stages[m.StageName]++
			}
			names := make([]string, 0, len(stages))
			for s := range stages {
				names = append(names, s)
			}
			sort.Strings(names)
			fmt.Println("whoscored stage breakdown:")
			for _, s := range names {
				fmt.Printf("  %-32s %d\n", s, stages[s])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty tier (easy or hard)")
	return cmd
}

// --------------------------------------------------------------------------
// play command
// --------------------------------------------------------------------------

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's puzzles locally, state saved under STATE_DIR",
	}
	cmd.AddCommand(playSlotGameCmd(puzzle.GameMissing11))
	cmd.AddCommand(playSlotGameCmd(puzzle.GameWhoScored))
	cmd.AddCommand(playWordleCmd())
	return cmd
}

// playSession binds today's puzzle for a slot game to its persisted state.
func playSession(gameType, difficulty, puzzleID string) (*game.Session, *config.Config, error) {
	d, ok := puzzle.ParseDifficulty(difficulty)
	if !ok {
		return nil, nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	provider, cfg, err := newProvider()
	if err != nil {
		return nil, nil, err
	}

	id := puzzle.EffectivePuzzleID(puzzleID)
	view, err := puzzle.Get(provider, gameType, d, id)
	if err != nil {
		return nil, nil, err
	}

	var slots []game.Slot
	switch p := view.(type) {
	case *puzzle.LineupPuzzle:
		for _, row := range puzzle.FormationRows {
			for _, pl := range p.Formation[row] {
				slots = append(slots, game.Slot{ID: pl.PlayerID, Answer: pl.FamilyName})
			}
		}
	case *puzzle.WhoScoredPuzzle:
		for _, g := range p.HomeGoals {
			slots = append(slots, game.Slot{ID: g.PlayerID, Answer: g.FamilyName})
		}
		for _, g := range p.AwayGoals {
			slots = append(slots, game.Slot{ID: g.PlayerID, Answer: g.FamilyName})
		}
	default:
		return nil, nil, fmt.Errorf("game %q has no slot state", gameType)
	}

	store := storage.NewFS(cfg.StateDir)
	return game.NewSession(store, gameType, string(d), id, slots), cfg, nil
}

func playSlotGameCmd(gameType string) *cobra.Command {
	var difficulty, puzzleID string
	cmd := &cobra.Command{
		Use:   gameType,
		Short: fmt.Sprintf("Play today's %s puzzle", gameType),
	}
	cmd.PersistentFlags().StringVar(&difficulty, "difficulty", "easy", "Difficulty tier (easy or hard)")
	cmd.PersistentFlags().StringVar(&puzzleID, "puzzle-id", "", "Puzzle date key YYYY-MM-DD (defaults to today UTC)")

	var slot, guess string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit a guess for one slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := playSession(gameType, difficulty, puzzleID)
			if err != nil {
				return err
			}
			sess.Dispatch(slot, game.Action{Type: game.ActionSetValue, Value: guess})
			effect := sess.Dispatch(slot, game.Action{Type: game.ActionSubmit})
			st := sess.Slot(slot)
			switch {
			case st.Status == game.StatusCorrect:
				fmt.Printf("correct! +%d points\n", st.Points())
			case effect.Shake:
				fmt.Println("wrong, try again")
			default:
				fmt.Println("no change")
			}
			printSummary(sess)
			return nil
		},
	}
	submit.Flags().StringVar(&slot, "slot", "", "Slot (player) id")
	submit.Flags().StringVar(&guess, "guess", "", "Guessed surname")
	_ = submit.MarkFlagRequired("slot")
	_ = submit.MarkFlagRequired("guess")

	hint := &cobra.Command{
		Use:   "hint",
		Short: "Reveal the first letter of one slot (halves its score)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := playSession(gameType, difficulty, puzzleID)
			if err != nil {
				return err
			}
			sess.Dispatch(slot, game.Action{Type: game.ActionHint})
			st := sess.Slot(slot)
			if st.FirstLetterRevealed != "" {
				fmt.Printf("starts with %q\n", st.FirstLetterRevealed)
			}
			return nil
		},
	}
	hint.Flags().StringVar(&slot, "slot", "", "Slot (player) id")
	_ = hint.MarkFlagRequired("slot")

	reveal := &cobra.Command{
		Use:   "reveal",
		Short: "Give up on one slot and reveal its answer for zero points",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := playSession(gameType, difficulty, puzzleID)
			if err != nil {
				return err
			}
			sess.Dispatch(slot, game.Action{Type: game.ActionReveal})
			if answer, ok := sess.Answer(slot); ok {
				fmt.Printf("the answer was %s\n", answer)
			}
			printSummary(sess)
			return nil
		},
	}
	reveal.Flags().StringVar(&slot, "slot", "", "Slot (player) id")
	_ = reveal.MarkFlagRequired("slot")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show per-slot progress and the running score",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := playSession(gameType, difficulty, puzzleID)
			if err != nil {
				return err
			}
			for _, id := range sess.SlotIDs() {
				st := sess.Slot(id)
				answer, _ := sess.Answer(id)
				switch {
				case st.Status == game.StatusCorrect:
					fmt.Printf("  %-12s %s (+%d)\n", id, answer, st.Points())
				case st.Revealed:
					fmt.Printf("  %-12s %s (revealed)\n", id, answer)
				default:
					fmt.Printf("  %-12s %s\n", id, game.MaskName(answer))
				}
			}
			printSummary(sess)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Wipe saved state for today's puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := playSession(gameType, difficulty, puzzleID)
			if err != nil {
				return err
			}
			sess.Reset()
			logger.Info("state reset", "key", sess.Key())
			return nil
		},
	}

	cmd.AddCommand(submit, hint, reveal, status, reset)
	return cmd
}

func printSummary(sess *game.Session) {
	sum := sess.Summary()
	fmt.Printf("progress: %d/%d, score %d\n", sum.Locked, sum.Total, sum.Points)
	if sum.Complete {
		fmt.Printf("puzzle complete! final score %d\n", sum.Points)
	}
}

func playWordleCmd() *cobra.Command {
	var difficulty, puzzleID string
	cmd := &cobra.Command{
		Use:   "wordlecup",
		Short: "Play today's surname word game",
	}
	cmd.PersistentFlags().StringVar(&difficulty, "difficulty", "easy", "Difficulty tier (easy or hard)")
	cmd.PersistentFlags().StringVar(&puzzleID, "puzzle-id", "", "Puzzle date key YYYY-MM-DD (defaults to today UTC)")

	newWordle := func() (*game.Wordle, *puzzle.WordlePuzzle, error) {
		d, ok := puzzle.ParseDifficulty(difficulty)
		if !ok {
			return nil, nil, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		provider, cfg, err := newProvider()
		if err != nil {
			return nil, nil, err
		}
		id := puzzle.EffectivePuzzleID(puzzleID)
		p, err := puzzle.WordleCup(provider, d, id)
		if err != nil {
			return nil, nil, err
		}
		store := storage.NewFS(cfg.StateDir)
		return game.NewWordle(store, string(d), id, p.Answer), p, nil
	}

	guess := &cobra.Command{
		Use:   "guess WORD",
		Short: "Submit one guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, p, err := newWordle()
			if err != nil {
				return err
			}
			row, ok := w.Submit(args[0])
			if !ok {
				if w.Complete() {
					fmt.Println("today's game is already over")
					return nil
				}
				return fmt.Errorf("guess must be %d letters", len(p.Answer))
			}
			for _, t := range row.Tiles {
				fmt.Printf("%s:%s ", t.Letter, t.State)
			}
			fmt.Println()
			if w.Complete() {
				if w.Won() {
					fmt.Printf("solved in %d/%d! %s of %s, %s\n",
						len(w.Guesses()), game.MaxGuesses, p.Answer, p.TeamName, p.MatchName)
				} else {
					fmt.Printf("out of guesses. The answer was %s (%s)\n", p.Answer, p.TeamName)
				}
				streak := w.Streak()
				fmt.Printf("streak: %d (best %d)\n", streak.Current, streak.Best)
				fmt.Println(w.ShareGrid())
			}
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the grid so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, p, err := newWordle()
			if err != nil {
				return err
			}
			fmt.Printf("word length %d, %s, guesses %d/%d\n",
				len(p.Answer), p.Difficulty, len(w.Guesses()), game.MaxGuesses)
			for _, row := range w.Guesses() {
				fmt.Println(row.Guess)
			}
			if len(w.Guesses()) > 0 {
				fmt.Println(w.ShareGrid())
			}
			return nil
		},
	}

	cmd.AddCommand(guess, status)
	return cmd
}
