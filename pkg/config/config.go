package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/lifecycle"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/recorder"
)

var DefaultPlayers = []string{"Player1", "Player2"}

type TeamConf struct {
	Name    string   `json:",optional"`
	Members []string
}

type Config struct {
	Log   logx.LogConf
	Board struct {
		Rows int `json:",default=3,range=[2:20]"`
		Cols int `json:",default=3,range=[2:20]"`
	}
	Hints         int        `json:",default=2"`
	Players       []string   `json:",optional"`
	Teams         []TeamConf `json:",optional"`
	AskDifficulty bool       `json:",default=true"`
	Color         string     `json:",default=on"`
	Record        recorder.Conf
	Pprof         struct {
		Addr string `json:",optional"`
	}
}

// Load reads .env into the environment, then the yaml file at path with
// ${VAR} expansion. A missing file yields the defaults.
func Load(path string) (Config, error) {
	var c Config
	_ = godotenv.Load()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = conf.FillDefault(&c); err != nil {
			return c, err
		}
		c.Log.Level = "error"
	} else if err = conf.Load(path, &c, conf.UseEnv()); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

func MustLoad(path string) Config {
	c, err := Load(path)
	logx.Must(err)
	return c
}

func (c Config) ColorSwitch() model.Config {
	return model.NewConfig(c.Color)
}

// Roster builds teams when any are configured, free-for-all players otherwise.
func (c Config) Roster() (*chess.Roster, error) {
	if len(c.Teams) > 0 {
		specs := make([]chess.TeamSpec, len(c.Teams))
		for i, t := range c.Teams {
			specs[i] = chess.TeamSpec{Name: t.Name, Members: t.Members}
		}
		return chess.NewTeamRoster(specs...)
	}

	players := c.Players
	if len(players) == 0 {
		players = DefaultPlayers
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: %d configured", chess.ErrTooFewPlayers, len(players))
	}
	return chess.NewRoster(players...), nil
}

// Validate checks the board size against the limits the size prompt uses
// and that the players can form a match.
func (c Config) Validate() error {
	if err := lifecycle.ValidateSize(c.Board.Rows, c.Board.Cols); err != nil {
		return err
	}
	_, err := c.Roster()
	return err
}
