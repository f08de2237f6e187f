package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRoom() *Room {
	return NewRoom("ABC123", &Player{ID: "alice", Name: "Alice"})
}

func TestRoom_NewRoom_CreatorIsSoleHost(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	req.Equal("alice", room.HostID)
	req.Len(room.Players, 1)
	req.Equal(RoomStateLobby, room.State)
	req.Nil(room.CurrentQuestion)
	req.False(room.Closed())
}

func TestRoom_AddPlayer_KeepsJoinOrderAndRejectsDuplicates(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	req.True(room.AddPlayer(&Player{ID: "bob"}))
	req.True(room.AddPlayer(&Player{ID: "carol"}))
	req.False(room.AddPlayer(&Player{ID: "bob", Name: "Bobby"}))

	ids := []string{}
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	req.Equal([]string{"alice", "bob", "carol"}, ids)
}

func TestRoom_RemovePlayer_PromotesEarliestJoinerWhenHostLeaves(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.AddPlayer(&Player{ID: "bob"})
	room.AddPlayer(&Player{ID: "carol"})

	req.True(room.RemovePlayer("alice"))

	req.Equal("bob", room.HostID)
	req.Len(room.Players, 2)
}

func TestRoom_RemovePlayer_NonHostKeepsHost(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.AddPlayer(&Player{ID: "bob"})

	req.True(room.RemovePlayer("bob"))
	req.False(room.RemovePlayer("bob"))

	req.Equal("alice", room.HostID)
}

func TestRoom_RemovePlayer_LastPlayerLeavesNoHost(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	req.True(room.RemovePlayer("alice"))

	req.True(room.IsEmpty())
	req.Empty(room.HostID)
	req.False(room.IsHost(""))
}

func TestRoom_Snapshot_HidesCorrectIndex(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.StartQuestion(Question{ID: "q1", Text: "2+2?", Choices: []string{"3", "4"}, CorrectIndex: 1, Duration: 5})

	snapshot := room.Snapshot()

	req.Equal(RoomStateRunning, snapshot.State)
	req.NotNil(snapshot.CurrentQuestion)
	req.Equal("q1", snapshot.CurrentQuestion.ID)
	req.Equal([]string{"3", "4"}, snapshot.CurrentQuestion.Choices)
}

func TestRoom_StartQuestion_ResetsAnswered(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.StartQuestion(Question{ID: "q1"})
	room.MarkAnswered("alice")
	req.True(room.HasAnswered("alice"))

	room.ClearQuestion()
	room.StartQuestion(Question{ID: "q2"})

	req.False(room.HasAnswered("alice"))
	req.Equal(RoomStateRunning, room.State)
}

func TestPlayer_Award_NeverDecreases(t *testing.T) {
	req := require.New(t)
	p := &Player{ID: "alice"}

	p.Award(100)
	p.Award(-50)
	p.Award(0)

	req.Equal(100, p.Score)
}

func TestQuestion_Validate(t *testing.T) {
	valid := Question{Text: "?", Choices: []string{"a", "b"}, CorrectIndex: 1, Duration: 10}

	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{name: "valid", mutate: func(q *Question) {}, ok: true},
		{name: "no text", mutate: func(q *Question) { q.Text = "" }},
		{name: "one choice", mutate: func(q *Question) { q.Choices = []string{"a"} }},
		{name: "correct index out of range", mutate: func(q *Question) { q.CorrectIndex = 2 }},
		{name: "negative correct index", mutate: func(q *Question) { q.CorrectIndex = -1 }},
		{name: "zero duration", mutate: func(q *Question) { q.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Choices = append([]string(nil), valid.Choices...)
			tt.mutate(&q)
			err := q.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrQuestionUnavailable))
		})
	}
}
