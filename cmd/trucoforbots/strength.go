package main

import (
	"fmt"
	"os"

	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/display"
)

type StrengthCmd struct {
	Vira string `required:"" help:"Vira card, e.g. 5h"`
}

func (c *StrengthCmd) Run(g *Globals) error {
	vira, err := deck.ParseCard(c.Vira)
	if err != nil {
		return fmt.Errorf("invalid vira: %w", err)
	}
	display.NewPrinter(os.Stdout, !g.NoColor).StrengthTable(vira)
	return nil
}
