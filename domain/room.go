package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
)

type RoomState string

const (
	RoomStateLobby   RoomState = "lobby"
	RoomStateRunning RoomState = "running"
)

type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Award adds points to the player's score. Non-positive awards are ignored so
// a score can never go down.
func (p *Player) Award(points int) {
	if points > 0 {
		p.Score += points
	}
}

type Question struct {
	ID           string
	Text         string
	Choices      []string
	CorrectIndex int
	Duration     int // seconds
}

func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: question has no text", ErrQuestionUnavailable)
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("%w: question needs at least two choices", ErrQuestionUnavailable)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return fmt.Errorf("%w: correct index %d out of range", ErrQuestionUnavailable, q.CorrectIndex)
	}
	if q.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrQuestionUnavailable)
	}
	return nil
}

func (q Question) Timeout() time.Duration {
	return time.Duration(q.Duration) * time.Second
}

// Public strips the correct index.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Text:     q.Text,
		Choices:  append([]string(nil), q.Choices...),
		Duration: q.Duration,
	}
}

// Room is a single game session. It is not safe for concurrent use on its
// own: callers hold Lock for the whole of every read-modify-broadcast step.
type Room struct {
	ID              string
	HostID          string
	Players         []*Player
	State           RoomState
	CurrentQuestion *Question

	answered map[string]struct{}
	closed   bool
	mu       sync.Mutex
}

func NewRoom(id string, host *Player) *Room {
	return &Room{
		ID:       id,
		HostID:   host.ID,
		Players:  []*Player{host},
		State:    RoomStateLobby,
		answered: make(map[string]struct{}),
	}
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// Closed reports whether the room was destroyed. A closed room may still be
// referenced by callers that fetched it before destruction.
func (r *Room) Closed() bool { return r.closed }

func (r *Room) Close() {
	r.closed = true
	r.CurrentQuestion = nil
	r.answered = make(map[string]struct{})
}

func (r *Room) IsEmpty() bool { return len(r.Players) == 0 }

func (r *Room) Player(id string) (*Player, bool) {
	return lo.Find(r.Players, func(p *Player) bool { return p.ID == id })
}

func (r *Room) HasPlayer(id string) bool {
	_, ok := r.Player(id)
	return ok
}

// AddPlayer appends p in join order. It returns false when a player with the
// same id is already present.
func (r *Room) AddPlayer(p *Player) bool {
	if r.HasPlayer(p.ID) {
		return false
	}
	r.Players = append(r.Players, p)
	return true
}

// RemovePlayer drops the player and, when it held the host role, hands the
// role to the earliest remaining joiner. An emptied room has no host.
func (r *Room) RemovePlayer(id string) bool {
	_, idx, ok := lo.FindIndexOf(r.Players, func(p *Player) bool { return p.ID == id })
	if !ok {
		return false
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	delete(r.answered, id)

	switch {
	case len(r.Players) == 0:
		r.HostID = ""
	case r.HostID == id:
		r.HostID = r.Players[0].ID
	}
	return true
}

func (r *Room) IsHost(id string) bool {
	return r.HostID != "" && r.HostID == id
}

func (r *Room) HasActiveQuestion() bool { return r.CurrentQuestion != nil }

func (r *Room) StartQuestion(q Question) {
	r.State = RoomStateRunning
	r.CurrentQuestion = &q
	r.answered = make(map[string]struct{})
}

func (r *Room) ClearQuestion() {
	r.CurrentQuestion = nil
	r.answered = make(map[string]struct{})
}

func (r *Room) HasAnswered(playerID string) bool {
	_, ok := r.answered[playerID]
	return ok
}

func (r *Room) MarkAnswered(playerID string) {
	r.answered[playerID] = struct{}{}
}

func (r *Room) PlayerViews() []Player {
	return lo.Map(r.Players, func(p *Player, _ int) Player { return *p })
}

func (r *Room) Snapshot() RoomSnapshot {
	snapshot := RoomSnapshot{
		RoomID:  r.ID,
		HostID:  r.HostID,
		Players: r.PlayerViews(),
		State:   r.State,
	}
	if r.CurrentQuestion != nil {
		public := r.CurrentQuestion.Public()
		snapshot.CurrentQuestion = &public
	}
	return snapshot
}
