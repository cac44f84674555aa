// Package day02 solves "Cube Conundrum".
package day02

import (
	"io"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

// Bag contents queried by part 1.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

// Game is one recorded game and the cube sets revealed during it.
type Game struct {
	ID    int
	Picks []Pick
}

// Pick is one handful of cubes.
type Pick struct {
	Red, Green, Blue int
}

// Possible reports whether the game could have been played with the
// part 1 bag.
func (g Game) Possible() bool {
	for _, p := range g.Picks {
		if p.Red > maxRed || p.Green > maxGreen || p.Blue > maxBlue {
			return false
		}
	}
	return true
}

// Power is the product of the minimum cube counts that make the game possible.
func (g Game) Power() int {
	var need Pick
	for _, p := range g.Picks {
		need.Red = max(need.Red, p.Red)
		need.Green = max(need.Green, p.Green)
		need.Blue = max(need.Blue, p.Blue)
	}
	return need.Red * need.Green * need.Blue
}

// ParseGame parses a line of the form "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(lineNo int, line string) (Game, error) {
	idPart, dataPart, err := puzzle.Cut(lineNo, line, line, ": ", "data part")
	if err != nil {
		return Game{}, err
	}
	idText, ok := strings.CutPrefix(idPart, "Game ")
	if !ok {
		return Game{}, puzzle.NewParseError(lineNo, line, "unable to read ID part")
	}
	id, err := puzzle.Atoi(lineNo, line, idText, "ID")
	if err != nil {
		return Game{}, err
	}

	game := Game{ID: id}
	for _, hand := range strings.Split(dataPart, "; ") {
		var pick Pick
		for _, cubes := range strings.Split(hand, ", ") {
			amountText, color, err := puzzle.Cut(lineNo, line, cubes, " ", "color part")
			if err != nil {
				return Game{}, err
			}
			amount, err := puzzle.Atoi(lineNo, line, amountText, "amount")
			if err != nil {
				return Game{}, err
			}
			switch color {
			case "red":
				pick.Red += amount
			case "green":
				pick.Green += amount
			case "blue":
				pick.Blue += amount
			default:
				return Game{}, puzzle.Errorf(lineNo, line, "invalid color %q", color)
			}
		}
		game.Picks = append(game.Picks, pick)
	}

	return game, nil
}

func parseGames(r io.Reader) ([]Game, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(i+1, line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Part1 sums the IDs of possible games.
func Part1(r io.Reader) (string, error) {
	games, err := parseGames(r)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		if g.Possible() {
			sum += g.ID
		}
	}
	return strconv.Itoa(sum), nil
}

// Part2 sums the power of every game.
func Part2(r io.Reader) (string, error) {
	games, err := parseGames(r)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		sum += g.Power()
	}
	return strconv.Itoa(sum), nil
}
