package main

import (
	"fmt"

	"github.com/lox/trucoforbots/internal/bot"
)

type BotsCmd struct{}

func (c *BotsCmd) Run(*Globals) error {
	for _, name := range bot.Names() {
		description, err := bot.Describe(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", name, description)
	}
	return nil
}
