package domain

import "time"

// Broadcast event names.
const (
	EventRoomUpdate    = "room_update"
	EventQuestionStart = "question_start"
	EventQuestionEnd   = "question_end"
	EventScoreUpdate   = "score_update"
)

// Direct, per-connection frames.
const (
	EventConnected = "connected"
	EventAck       = "ack"
)

// Client intents.
const (
	IntentCreateRoom = "create_room"
	IntentJoinRoom   = "join_room"
	IntentLeaveRoom  = "leave_room"
	IntentStartGame  = "start_game"
	IntentAnswer     = "answer"
)

// Message is the envelope every frame pushed to a client travels in.
type Message struct {
	Type    string `json:"type"`
	AckID   string `json:"ackId,omitempty"`
	Content any    `json:"content"`
}

type PublicQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Choices  []string `json:"choices"`
	Duration int      `json:"duration"`
}

type RoomSnapshot struct {
	RoomID          string          `json:"roomId"`
	HostID          string          `json:"hostId"`
	Players         []Player        `json:"players"`
	State           RoomState       `json:"state"`
	CurrentQuestion *PublicQuestion `json:"currentQuestion"`
}

type QuestionStartPayload struct {
	Question PublicQuestion `json:"question"`
}

type QuestionEndPayload struct {
	QuestionID   string `json:"questionId"`
	CorrectIndex int    `json:"correctIndex"`
}

type ScoreUpdatePayload struct {
	Players []Player `json:"players"`
}

func NewRoomUpdate(r *Room) Message {
	return Message{Type: EventRoomUpdate, Content: r.Snapshot()}
}

func NewQuestionStart(q Question) Message {
	return Message{Type: EventQuestionStart, Content: QuestionStartPayload{Question: q.Public()}}
}

func NewQuestionEnd(q Question) Message {
	return Message{Type: EventQuestionEnd, Content: QuestionEndPayload{QuestionID: q.ID, CorrectIndex: q.CorrectIndex}}
}

func NewScoreUpdate(r *Room) Message {
	return Message{Type: EventScoreUpdate, Content: ScoreUpdatePayload{Players: r.PlayerViews()}}
}

// RoomEvent is a broadcast as mirrored to external observers.
type RoomEvent struct {
	RoomID    string    `json:"roomId"`
	Type      string    `json:"type"`
	Content   any       `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConnectedPayload struct {
	ConnID string `json:"connId"`
}

// AckPayload answers one intent. RoomID is set on create, Room on join.
type AckPayload struct {
	OK     bool          `json:"ok"`
	Error  string        `json:"error,omitempty"`
	RoomID string        `json:"roomId,omitempty"`
	Room   *RoomSnapshot `json:"room,omitempty"`
}

func NewAck(ackID string, payload AckPayload) Message {
	return Message{Type: EventAck, AckID: ackID, Content: payload}
}

func NewConnected(connID string) Message {
	return Message{Type: EventConnected, Content: ConnectedPayload{ConnID: connID}}
}
