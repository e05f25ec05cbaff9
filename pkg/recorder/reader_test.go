package recorder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
)

func TestReadLinesAndSummarize(t *testing.T) {
	a, b := message.NewGameUid(), message.NewGameUid()
	var lines []string
	for _, r := range records(a) {
		lines = append(lines, r.String())
	}
	lines = append(lines, "", message.NewRecord(b, message.KindGameStart, time.Now()).String())
	undo := message.NewRecord(a, message.KindUndo, time.Now())
	lines = append(lines, undo.String())

	got, err := ReadLines(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, got, 5)

	s := Summarize(got)
	require.Len(t, s, 2)
	assert.Equal(t, a, s[0].GameUid)
	assert.Equal(t, 1, s[0].Moves)
	assert.Equal(t, 1, s[0].Undos)
	assert.True(t, s[0].Finished)
	assert.Equal(t, "alice", s[0].Winner)
	assert.Contains(t, s[0].String(), "winner alice")
	assert.False(t, s[1].Finished)
	assert.Contains(t, s[1].String(), "unfinished")
}

func TestReadLinesBadJSON(t *testing.T) {
	_, err := ReadLines(strings.NewReader("{\"kind\":\"move\"}\nnot json\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadNotReadable(t *testing.T) {
	_, err := Load(context.Background(), Conf{Mode: ModeNone}, 0)
	assert.ErrorIs(t, err, ErrNotReadable)
}
