package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Color is the color printed on a card, or Wild for the two wild kinds.
type Color string

const (
	ColorRed    Color = "Red"
	ColorGreen  Color = "Green"
	ColorBlue   Color = "Blue"
	ColorYellow Color = "Yellow"
	// ColorWild marks Wild and +4 cards; it is never a declarable color.
	ColorWild Color = "Wild"
)

// BaseColors lists the four declarable colors in deck order.
var BaseColors = []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}

// IsBase reports whether c is one of the four declarable colors.
func (c Color) IsBase() bool {
	switch c {
	case ColorRed, ColorGreen, ColorBlue, ColorYellow:
		return true
	}
	return false
}

// ParseColor accepts a color name in any letter case.
func ParseColor(s string) (Color, error) {
	for _, c := range []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorWild} {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalidCard, s)
}

// Value is the face of a card.
type Value string

const (
	ValueSkip     Value = "Skip"
	ValueReverse  Value = "Reverse"
	ValuePlusTwo  Value = "+2"
	ValueWild     Value = "Wild"
	ValuePlusFour Value = "+4"
)

// ColoredValues lists every face that appears in the four colored suits.
var ColoredValues = []Value{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ValueSkip, ValueReverse, ValuePlusTwo}

// WildValues lists the faces of the colorless cards.
var WildValues = []Value{ValueWild, ValuePlusFour}

// ParseValue accepts a card face in any letter case.
func ParseValue(s string) (Value, error) {
	for _, values := range [][]Value{ColoredValues, WildValues} {
		for _, v := range values {
			if strings.EqualFold(s, string(v)) {
				return v, nil
			}
		}
	}
	return "", fmt.Errorf("%w: unknown value %q", ErrInvalidCard, s)
}

// ErrInvalidCard is returned when a card falls outside the known color/value vocabulary.
var ErrInvalidCard = errors.New("invalid card")

// Card is an immutable playing card. It is a comparable value type, so copies
// never alias and cards can key maps directly.
type Card struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

// NewCard builds a validated card.
func NewCard(color Color, value Value) (Card, error) {
	c := Card{Color: color, Value: value}
	if err := c.Validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Validate checks the card against the deck vocabulary.
func (c Card) Validate() error {
	if c.Color == ColorWild {
		for _, v := range WildValues {
			if c.Value == v {
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidCard, c)
	}
	if !c.Color.IsBase() {
		return fmt.Errorf("%w: %s", ErrInvalidCard, c)
	}
	for _, v := range ColoredValues {
		if c.Value == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidCard, c)
}

func (c Card) IsSkip() bool     { return c.Value == ValueSkip }
func (c Card) IsReverse() bool  { return c.Value == ValueReverse }
func (c Card) IsPlusTwo() bool  { return c.Value == ValuePlusTwo }
func (c Card) IsWild() bool     { return c.Value == ValueWild }
func (c Card) IsPlusFour() bool { return c.Value == ValuePlusFour }

// IsWildCard reports whether the card is a Wild or a +4.
func (c Card) IsWildCard() bool { return c.IsWild() || c.IsPlusFour() }

// IsSpecial reports whether the card is an action or wild card.
func (c Card) IsSpecial() bool {
	return c.IsSkip() || c.IsReverse() || c.IsPlusTwo() || c.IsWildCard()
}

// Matches reports whether c may be played on other, ignoring any declared color.
func (c Card) Matches(other Card) bool {
	if c.IsWildCard() {
		return true
	}
	return c.Color == other.Color || c.Value == other.Value
}

// PlayableOn reports whether c may be played given the discard top and the active color.
func (c Card) PlayableOn(top Card, activeColor Color) bool {
	return c.Color == activeColor || c.Value == top.Value || c.IsWildCard()
}

// Compare orders cards by color then value using plain string comparison.
// The order carries no gameplay meaning; it only makes search states comparable.
func (c Card) Compare(other Card) int {
	if c.Color != other.Color {
		return strings.Compare(string(c.Color), string(other.Color))
	}
	return strings.Compare(string(c.Value), string(other.Value))
}

// Less is Compare(other) < 0.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}
