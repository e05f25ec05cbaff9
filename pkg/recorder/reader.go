package recorder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
)

var ErrNotReadable = errors.New("record mode cannot be read back")

// ReadLines parses one record per non-empty line.
func ReadLines(r io.Reader) ([]message.Record, error) {
	var records []message.Record
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := message.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}

func ReadFile(path string) ([]message.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLines(f)
}

// ReadRedis returns up to limit of the newest records in the list, oldest
// first. A limit of zero or less reads the whole list.
func ReadRedis(ctx context.Context, rds *redis.Redis, key string, limit int) ([]message.Record, error) {
	stop := -1
	if limit > 0 {
		stop = limit - 1
	}

	values, err := rds.LrangeCtx(ctx, key, 0, stop)
	if err != nil {
		return nil, err
	}

	records := make([]message.Record, 0, len(values))
	for _, v := range values {
		rec, err := message.ParseRecord(v)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	slices.Reverse(records)
	return records, nil
}

// Load reads back what the recorder configured by c has written.
func Load(ctx context.Context, c Conf, limit int) ([]message.Record, error) {
	switch c.Mode {
	case ModeFile:
		records, err := ReadFile(c.File)
		if err != nil {
			return nil, err
		}
		if limit > 0 && len(records) > limit {
			records = records[len(records)-limit:]
		}
		return records, nil
	case ModeRedis:
		rds := redis.MustNewRedis(redis.RedisConf{Host: c.Redis.Host, Type: c.Redis.Type, Pass: c.Redis.Pass})
		return ReadRedis(ctx, rds, c.Redis.ListKey, limit)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotReadable, c.Mode)
}

// Summary condenses the records of one match.
type Summary struct {
	GameUid  message.GameUid
	BoxRows  int
	BoxCols  int
	Players  []string
	Moves    int
	Undos    int
	Winner   string
	Finished bool
}

func (s Summary) String() string {
	status := "unfinished"
	if s.Finished {
		status = "winner " + s.Winner
	}
	return fmt.Sprintf("%s %dx%d %v moves=%d undos=%d %s",
		s.GameUid.Short(), s.BoxRows, s.BoxCols, s.Players, s.Moves, s.Undos, status)
}

// Summarize groups records by match, in order of first appearance.
func Summarize(records []message.Record) []Summary {
	var summaries []Summary
	index := make(map[message.GameUid]int)

	for _, r := range records {
		i, ok := index[r.GameUid]
		if !ok {
			i = len(summaries)
			index[r.GameUid] = i
			summaries = append(summaries, Summary{GameUid: r.GameUid})
		}

		s := &summaries[i]
		switch r.Kind {
		case message.KindGameStart:
			s.BoxRows, s.BoxCols, s.Players = r.BoxRows, r.BoxCols, r.Players
		case message.KindMove:
			s.Moves++
		case message.KindUndo:
			s.Undos++
		case message.KindGameEnd:
			s.Winner, s.Finished = r.Winner, true
		}
	}
	return summaries
}
