// Package game orchestrates the interactive multiplayer session: players,
// turns, reroll prompts, and the end-of-session statistics. All scoring logic
// lives in the score package; this one only drives the console protocol.
package game

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mlopes/yahtzee/internal/dice"
	"github.com/mlopes/yahtzee/internal/input"
	"github.com/mlopes/yahtzee/internal/score"
	"github.com/mlopes/yahtzee/internal/stats"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#874BFD"))

	statsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))
)

// Player pairs a display name with the classification of every game played,
// in the order they were played.
type Player struct {
	Name    string
	Results []score.Classification
}

// Session drives one interactive sitting: a fixed set of players taking turns
// in rounds until someone declines to continue. Reads and writes go through
// the injected streams so the whole loop can be scripted in tests.
type Session struct {
	ID      uuid.UUID
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
	players []*Player
}

// NewSession wires a session to its console streams and logger.
func NewSession(in io.Reader, out io.Writer, log *slog.Logger) *Session {
	return &Session{
		ID:  uuid.New(),
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Players returns the session's players in creation order.
func (s *Session) Players() []*Player {
	return s.players
}

// Run plays the full session: greet, gather players, loop rounds until the
// continue prompt gets anything other than "y", then print every player's
// statistics. The only errors are console read failures; all malformed
// answers are handled by re-prompting.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, bannerStyle.Render("Welcome to Yahtzee!"))
	fmt.Fprintln(s.out, strings.Repeat("=", 80))

	numPlayers, err := s.promptPlayerCount()
	if err != nil {
		return err
	}

	s.players = make([]*Player, numPlayers)
	for i := range s.players {
		s.players[i] = &Player{Name: fmt.Sprintf("Player %d", i+1)}
	}
	s.log.Info("session started", "session_id", s.ID, "players", numPlayers)

	for {
		for _, p := range s.players {
			if err := s.playTurn(p); err != nil {
				return err
			}
		}

		answer, err := s.readLine("Do you want to play another game? (y/n): ")
		if err != nil {
			return err
		}
		// Anything other than a literal "y" ends the session. The inner
		// replace prompt is strict about y/n; this one is not.
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			break
		}
	}

	for _, p := range s.players {
		fmt.Fprintf(s.out, "\n%s\n", statsStyle.Render(fmt.Sprintf("Statistics for %s:", p.Name)))
		stats.Tally(p.Results).Render(s.out)
	}
	s.log.Info("session finished", "session_id", s.ID)
	return nil
}

// playTurn rolls for one player, offers a single reroll pass, classifies the
// final hand, and appends the result to the player's record.
func (s *Session) playTurn(p *Player) error {
	fmt.Fprintf(s.out, "\n%s\n\n", strings.Repeat("-", 80))
	fmt.Fprintf(s.out, "%s\n\n", turnStyle.Render(p.Name+"'s Turn"))

	hand := dice.Roll()
	fmt.Fprintf(s.out, "You rolled: %v\n\n", hand)

	replace, err := s.promptYesNo("Do you want to replace any dice? (y/n): ")
	if err != nil {
		return err
	}
	if replace {
		positions, err := s.promptSelection()
		if err != nil {
			return err
		}
		dice.Reroll(hand, positions)
		fmt.Fprintf(s.out, "New roll: %v\n\n", hand)
	}

	result := score.Classify(hand)
	p.Results = append(p.Results, result)
	s.log.Info("turn completed",
		"session_id", s.ID,
		"player", p.Name,
		"hand", fmt.Sprint(hand),
		"yahtzee", result.Yahtzee,
		"full_house", result.FullHouse,
		"low_straight", result.LowStraight,
		"high_straight", result.HighStraight,
		"four_of_a_kind", result.FourOfAKind,
		"three_of_a_kind", result.ThreeOfAKind,
	)
	return nil
}

// promptPlayerCount keeps asking until it gets a positive whole number.
func (s *Session) promptPlayerCount() (int, error) {
	for {
		answer, err := s.readLine("Enter the number of players: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr != nil || n < 1 {
			fmt.Fprintln(s.out, "Incorrect input. Please enter a positive whole number.")
			s.log.Warn("invalid player count", "session_id", s.ID, "input", answer)
			continue
		}
		return n, nil
	}
}

// promptYesNo keeps asking until the answer is exactly "y" or "n",
// case-insensitive and trimmed.
func (s *Session) promptYesNo(label string) (bool, error) {
	for {
		answer, err := s.readLine(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(s.out, "Incorrect input. Please enter 'y' for yes or 'n' for no.")
		s.log.Warn("invalid yes/no answer", "session_id", s.ID, "input", answer)
	}
}

// promptSelection keeps asking until the reroll selection validates.
func (s *Session) promptSelection() ([]int, error) {
	for {
		answer, err := s.readLine("Type the values of each die you want to replace (1-5), separate with a comma: ")
		if err != nil {
			return nil, err
		}
		ok, positions := input.ParseSelection(answer)
		if ok {
			return positions, nil
		}
		fmt.Fprintln(s.out, "Incorrect input. Please enter values between 1 and 5, separated by commas.")
		s.log.Warn("invalid reroll selection", "session_id", s.ID, "input", answer)
	}
}

// readLine prints a prompt and blocks for one line of input. Input running
// out mid-prompt is an error: the interactive protocol has no way to recover
// from a closed stdin.
func (s *Session) readLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input ended before the session finished: %w", io.ErrUnexpectedEOF)
	}
	return s.in.Text(), nil
}
