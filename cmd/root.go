package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gess/internal/game"

	"github.com/spf13/cobra"
)

var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "gess",
	Short: "Play Gess in the terminal",
	Long: `gess runs a local two-player game of Gess on one terminal.

Moves name the 3x3 cluster's center and its destination:
	black> c3 c6

Other commands: targets <anchor>, save <file>, resign, quit.
Use --snapshot to resume from a previously saved position.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGame()
		if err != nil {
			return err
		}
		play(g)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "resume from a saved position file")
}

func loadGame() (*game.Game, error) {
	if snapshotPath == "" {
		return game.NewGame(), nil
	}
	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	g, err := game.RestoreGame(string(data))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return g, nil
}

func play(g *game.Game) {
	scanner := bufio.NewScanner(os.Stdin)
	for g.Status() == game.Unfinished {
		fmt.Println()
		printBoard(g.Board())
		fmt.Printf("%s> ", g.Current())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return
		case "resign":
			_ = g.Resign(g.Current())
		case "save":
			if len(fields) != 2 {
				fmt.Println("usage: save <file>")
				continue
			}
			out := game.TakeSnapshot(g).Serialize()
			if err := os.WriteFile(fields[1], []byte(out), 0o644); err != nil {
				fmt.Println("save failed:", err)
				continue
			}
			fmt.Println("saved to", fields[1])
		case "targets":
			if len(fields) != 2 {
				fmt.Println("usage: targets <anchor>")
				continue
			}
			showTargets(g, fields[1])
		default:
			if len(fields) != 2 {
				fmt.Println("enter a move as: <from> <to>, e.g. c3 c6")
				continue
			}
			applyMove(g, fields[0], fields[1])
		}
	}

	fmt.Println()
	printBoard(g.Board())
	switch g.Status() {
	case game.BlackWon:
		fmt.Println("Black wins!")
	case game.WhiteWon:
		fmt.Println("White wins!")
	}
}

func applyMove(g *game.Game, from, to string) {
	fromC, err := game.ParseCoord(from)
	if err != nil {
		fmt.Println(err)
		return
	}
	toC, err := game.ParseCoord(to)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := g.MakeMove(fromC, toC); err != nil {
		fmt.Println("illegal move:", err)
	}
}

func showTargets(g *game.Game, from string) {
	fromC, err := game.ParseCoord(from)
	if err != nil {
		fmt.Println(err)
		return
	}
	targets, err := g.Targets(fromC)
	if err != nil {
		fmt.Println(err)
		return
	}
	parts := make([]string, len(targets))
	for i, c := range targets {
		parts[i] = c.String()
	}
	fmt.Println("targets:", strings.Join(parts, " "))
}

func printBoard(b *game.Board) {
	rows := b.Rows()
	for r := game.BoardSize - 1; r >= 0; r-- {
		fmt.Printf("%2d  ", r+1)
		for _, cell := range rows[r] {
			fmt.Printf("%c ", cell)
		}
		fmt.Println()
	}
	fmt.Print("    ")
	for c := 0; c < game.BoardSize; c++ {
		fmt.Printf("%c ", 'a'+c)
	}
	fmt.Println()
}
