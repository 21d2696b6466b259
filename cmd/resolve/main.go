package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"holdem-dealer/internal/game"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Action     string `arg:"" help:"Declared action: fold, check, call, rise or allin."`
	Amount     int64  `short:"a" help:"Rise amount; 0 asks for the default raise." default:"0"`
	Balance    int64  `short:"b" help:"Player balance." default:"1000" env:"COINS_AT_START"`
	Bet        int64  `help:"Player's current bet this round." default:"0"`
	CallValue  int64  `short:"c" name:"call-value" help:"Table call value." default:"0"`
	SmallBlind int64  `short:"s" name:"small-blind" help:"Small blind; the minimum raise is twice this." default:"20" env:"SMALL_BLIND"`
}

func (c *CLI) Run(out io.Writer) error {
	at, err := game.ParseActionType(c.Action)
	if err != nil {
		return err
	}
	r := game.NewResolver(nil, nil, c.SmallBlind)
	outcome := r.Decide(game.Action{Type: at, RiseAmount: c.Amount}, game.Stake{Balance: c.Balance, Bet: c.Bet}, c.CallValue)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Declared game.Action  `json:"declared"`
		MinRaise int64        `json:"min_raise"`
		Outcome  game.Outcome `json:"outcome"`
	}{game.Action{Type: at, RiseAmount: c.Amount}, r.MinRaise(), outcome})
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("resolve"),
		kong.Description("Resolve one Hold'em betting action and print the outcome"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
