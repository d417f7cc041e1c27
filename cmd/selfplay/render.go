package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"unobot/internal/app"
	"unobot/internal/bot"
	"unobot/internal/domain"
)

var cardColors = map[domain.Color]*color.Color{
	domain.ColorRed:    color.New(color.FgRed),
	domain.ColorGreen:  color.New(color.FgGreen),
	domain.ColorBlue:   color.New(color.FgBlue),
	domain.ColorYellow: color.New(color.FgYellow),
	domain.ColorWild:   color.New(color.FgMagenta, color.Bold),
}

var header = color.New(color.FgWhite, color.Bold)

func colorizeCard(c domain.Card) string {
	if p, ok := cardColors[c.Color]; ok {
		return p.Sprint(c.String())
	}
	return c.String()
}

// colorizeHand lists a sorted copy of the hand.
func colorizeHand(hand []domain.Card) string {
	sorted := domain.CloneHand(hand)
	domain.SortHand(sorted)
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = colorizeCard(c)
	}
	return strings.Join(parts, ", ")
}

func colorizeColor(c domain.Color) string {
	if p, ok := cardColors[c]; ok {
		return p.Sprint(string(c))
	}
	return string(c)
}

// seat is one configured player.
type seat struct {
	ID    string
	Name  string
	Level bot.BotLevel
}

// seatPlayers builds the two seats from the level flags, taking IDs, names
// and levels from the roster when one is loaded.
func seatPlayers(one, two string, roster []bot.BotIdentity) ([]seat, error) {
	seats := make([]seat, 0, app.PlayersPerGame)
	for i, name := range []string{one, two} {
		level, err := bot.ParseBotLevel(name)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		s := seat{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("P%d (%s)", i+1, level), Level: level}
		if i < len(roster) {
			identity, _ := bot.IdentityFor(roster[i].UserID)
			s.ID, s.Name = identity.UserID, identity.DisplayName
			if l, ok := bot.LevelFor(identity.UserID); ok {
				s.Level = l
			}
		}
		seats = append(seats, s)
	}
	if seats[0].ID == seats[1].ID {
		return nil, fmt.Errorf("both players share id %q", seats[0].ID)
	}
	return seats, nil
}

// printer writes a play-by-play of one match.
type printer struct {
	out   io.Writer
	names map[string]string
}

func newPrinter(out io.Writer, seats []seat) *printer {
	names := make(map[string]string, len(seats))
	for _, s := range seats {
		names[s.ID] = s.Name
	}
	return &printer{out: out, names: names}
}

func (p *printer) name(id string) string {
	if n, ok := p.names[id]; ok {
		return n
	}
	return id
}

func (p *printer) Print(game *domain.Game, ev app.Event) {
	switch pl := ev.Payload.(type) {
	case app.HandDealtPayload:
		fmt.Fprintf(p.out, "%s is dealt %s\n", p.name(pl.UserID), colorizeHand(pl.Hand))
	case app.GameStartedPayload:
		header.Fprintf(p.out, "\n--- Match %s ---\n", pl.GameID)
		fmt.Fprintf(p.out, "Top card %s, %s starts\n", colorizeCard(pl.TopCard), p.name(pl.FirstTurnUserID))
	case app.CardPlayedPayload:
		line := fmt.Sprintf("%s plays %s", p.name(pl.UserID), colorizeCard(pl.Card))
		if pl.Card.IsWildCard() {
			line += " and calls " + colorizeColor(pl.CurrentColor)
		}
		fmt.Fprintf(p.out, "%s (%d left)\n", line, pl.CardsLeft)
	case app.CardsDrawnPayload:
		verb := "draws"
		if pl.Penalty {
			verb = "takes a penalty of"
		}
		fmt.Fprintf(p.out, "%s %s %d\n", p.name(pl.UserID), verb, len(pl.Cards))
	case app.GameEndedPayload:
		if pl.Winner == "" {
			header.Fprintf(p.out, "No winner (%s)\n", pl.Reason)
			return
		}
		header.Fprintf(p.out, "%s wins\n", p.name(pl.Winner))
	}
}

// summary accumulates match results per seat.
type summary struct {
	seats   []seat
	wins    map[string]int
	reasons map[app.EndReason]int

	Matches int
	Turns   int
	Draws   int
}

func newSummary(seats []seat) *summary {
	return &summary{seats: seats, wins: make(map[string]int), reasons: make(map[app.EndReason]int)}
}

func (s *summary) Add(res app.MatchResult) {
	s.Matches++
	s.Turns += res.Turns
	s.Draws += res.Draws
	s.reasons[res.Reason]++
	if res.Winner != "" {
		s.wins[res.Winner]++
	}
}

func (s *summary) rate(n int) string {
	if s.Matches == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(s.Matches))
}

func (s *summary) Render(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("Self-play: %d matches", s.Matches))
	t.AppendHeader(table.Row{"Player", "Level", "Wins", "Win rate"})
	for _, seat := range s.seats {
		t.AppendRow(table.Row{seat.Name, seat.Level.String(), s.wins[seat.ID], s.rate(s.wins[seat.ID])})
	}
	t.AppendSeparator()
	noWinner := s.reasons[app.EndReasonDeckExhausted] + s.reasons[app.EndReasonTurnLimit] + s.reasons[app.EndReasonCancelled]
	t.AppendRow(table.Row{"No winner", "", noWinner, s.rate(noWinner)})

	avg := "-"
	if s.Matches > 0 {
		avg = fmt.Sprintf("%.1f", float64(s.Turns)/float64(s.Matches))
	}
	t.AppendFooter(table.Row{"Avg turns", avg, "Draws", s.Draws})

	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

// String renders the summary without a writer, for logs and tests.
func (s *summary) String() string {
	var b strings.Builder
	s.Render(&b)
	return b.String()
}
