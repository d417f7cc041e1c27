package nakama

import (
	"fmt"

	"unobot/internal/bot"
	"unobot/internal/domain"
)

// wireCard is the JSON form of a card. Names are matched case-insensitively.
type wireCard struct {
	Color string `json:"color"`
	Value string `json:"value"`
}

type botMoveRequest struct {
	Hand         []wireCard `json:"hand"`
	TopCard      wireCard   `json:"top_card"`
	CurrentColor string     `json:"current_color"`
	Level        string     `json:"level"`
}

type botMoveResponse struct {
	Draw          bool      `json:"draw"`
	Card          *wireCard `json:"card,omitempty"`
	DeclaredColor string    `json:"declared_color,omitempty"`
}

type chooseColorRequest struct {
	Hand []wireCard `json:"hand"`
}

type chooseColorResponse struct {
	Color string `json:"color"`
}

type simulateRequest struct {
	Levels []string `json:"levels"`
	Seed   *int64   `json:"seed"`
}

type simulateResponse struct {
	MatchID string `json:"match_id"`
	Winner  string `json:"winner"`
	Reason  string `json:"reason"`
	Turns   int    `json:"turns"`
	Draws   int    `json:"draws"`
}

func cardFromWire(c wireCard) (domain.Card, error) {
	color, err := domain.ParseColor(c.Color)
	if err != nil {
		return domain.Card{}, err
	}
	value, err := domain.ParseValue(c.Value)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.NewCard(color, value)
}

func cardsFromWire(cards []wireCard) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(cards))
	for i, c := range cards {
		card, err := cardFromWire(c)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, card)
	}
	return out, nil
}

func cardToWire(c domain.Card) *wireCard {
	return &wireCard{Color: string(c.Color), Value: string(c.Value)}
}

func viewFromRequest(req botMoveRequest) (bot.TurnView, error) {
	hand, err := cardsFromWire(req.Hand)
	if err != nil {
		return bot.TurnView{}, err
	}
	top, err := cardFromWire(req.TopCard)
	if err != nil {
		return bot.TurnView{}, fmt.Errorf("top card: %w", err)
	}
	view := bot.TurnView{Hand: hand, TopCard: top}
	if req.CurrentColor != "" {
		color, err := domain.ParseColor(req.CurrentColor)
		if err != nil {
			return bot.TurnView{}, err
		}
		view.CurrentColor = color
	}
	return view, nil
}

func moveToResponse(m bot.Move) botMoveResponse {
	if m.Draw {
		return botMoveResponse{Draw: true}
	}
	return botMoveResponse{Card: cardToWire(m.Card), DeclaredColor: string(m.DeclaredColor)}
}
