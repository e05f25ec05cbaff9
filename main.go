package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/config"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/lifecycle"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/match"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/recorder"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/render"
)

var (
	configFile  = flag.String("f", "etc/boxes.yaml", "the config file")
	rowsConf    = flag.Int("rows", 0, "default board rows")
	colsConf    = flag.Int("cols", 0, "default board columns")
	hintsConf   = flag.Int("hints", 0, "hints per player")
	playersConf = flag.String("players", "", "comma separated player names")
	recordsConf = flag.Int("records", 0, "print the last N recorded records per match and exit")
	colorConf   = model.On
)

func main() {
	flag.Var(&colorConf, "color", "coloured output (on/off)")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	c := config.MustLoad(*configFile)
	applyFlags(&c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	if err := c.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// A second interrupt falls back to the default handler and kills the process.
		<-ctx.Done()
		stop()
	}()

	if *recordsConf > 0 {
		return printRecords(ctx, c.Record, *recordsConf)
	}

	if srv := pprof.Start(c.Pprof.Addr); srv != nil {
		defer srv.Close()
	}

	roster, err := c.Roster()
	if err != nil {
		return err
	}

	rec := recorder.MustNew(c.Record)
	defer func() {
		if err := rec.Close(); err != nil {
			logx.Errorf("close recorder: %v", err)
		}
	}()

	r := render.New(os.Stdout, c.ColorSwitch())
	defer r.Close()

	in := lifecycle.NewLinePrompter(os.Stdin, os.Stdout)
	m := match.New(roster, in, r, match.Options{
		Hints:         c.Hints,
		AskDifficulty: c.AskDifficulty,
		Recorder:      rec,
	})
	d := lifecycle.NewDriver(m, in, os.Stdout).WithDefaultSize(c.Board.Rows, c.Board.Cols)

	for {
		if err = d.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
		if !d.Quit() || !backToMenu(ctx, in) {
			break
		}
	}

	fmt.Println("Bye!")
	return nil
}

// applyFlags lets explicitly passed flags win over the config file.
func applyFlags(c *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			c.Board.Rows = *rowsConf
		case "cols":
			c.Board.Cols = *colsConf
		case "hints":
			c.Hints = *hintsConf
		case "players":
			c.Players = strings.Split(*playersConf, ",")
			c.Teams = nil
		case "color":
			c.Color = colorConf.String()
		}
	})
}

func backToMenu(ctx context.Context, in lifecycle.Prompter) bool {
	line, err := in.Prompt(ctx, "Match abandoned. Start another? (y/N): ")
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printRecords(ctx context.Context, c recorder.Conf, limit int) error {
	records, err := recorder.Load(ctx, c, limit)
	if err != nil {
		return err
	}

	for _, s := range recorder.Summarize(records) {
		fmt.Println(s)
	}
	return nil
}
