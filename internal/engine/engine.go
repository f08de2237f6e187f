package engine

import (
	"context"
	"fmt"
	"quiz-service/domain"
	"quiz-service/internal/registry"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	Award             int
	DefaultHostName   string
	DefaultPlayerName string
	MaxNameLength     int
	DefaultDuration   int // seconds, used when a provider returns none
	ProviderTimeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Award:             100,
		DefaultHostName:   "Host",
		DefaultPlayerName: "Player",
		MaxNameLength:     32,
		DefaultDuration:   10,
		ProviderTimeout:   2 * time.Second,
	}
}

type Option func(*RoomEngine)

func WithScheduler(s Scheduler) Option {
	return func(e *RoomEngine) { e.scheduler = s }
}

func WithNameCensor(c NameCensor) Option {
	return func(e *RoomEngine) { e.censor = c }
}

// RoomEngine applies client intents to rooms. Every mutation of a room,
// including question expiry, happens under that room's lock, and the
// broadcasts describing it are published before the lock is released.
type RoomEngine struct {
	cfg         Config
	rooms       *registry.RoomRegistry
	broadcaster Broadcaster
	questions   QuestionProvider
	scheduler   Scheduler
	censor      NameCensor

	timers   map[roundKey]Timer
	timersMu sync.Mutex
}

func NewRoomEngine(cfg Config, rooms *registry.RoomRegistry, broadcaster Broadcaster, questions QuestionProvider, opts ...Option) *RoomEngine {
	e := &RoomEngine{
		cfg:         cfg,
		rooms:       rooms,
		broadcaster: broadcaster,
		questions:   questions,
		scheduler:   clockScheduler{},
		timers:      make(map[roundKey]Timer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *RoomEngine) CreateRoom(ctx context.Context, connID, name string) (domain.RoomSnapshot, error) {
	host := &domain.Player{ID: connID, Name: e.displayName(name, e.cfg.DefaultHostName)}

	room, err := e.rooms.Create(func(id string) *domain.Room {
		room := domain.NewRoom(id, host)
		// Locked before it becomes visible so nobody acts on it before the
		// creator is subscribed.
		room.Lock()
		return room
	})
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	defer room.Unlock()

	e.broadcaster.Join(room.ID, connID)
	e.broadcaster.Publish(room.ID, domain.NewRoomUpdate(room))

	zap.L().Info("room opened", zap.String("room_id", room.ID), zap.String("host_id", connID))
	return room.Snapshot(), nil
}

func (e *RoomEngine) JoinRoom(ctx context.Context, connID, roomID, name string) (domain.RoomSnapshot, error) {
	room, err := e.lockRoom(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	defer room.Unlock()

	player := &domain.Player{ID: connID, Name: e.displayName(name, e.cfg.DefaultPlayerName)}
	if !room.AddPlayer(player) {
		e.broadcaster.Join(room.ID, connID)
		return room.Snapshot(), nil
	}

	e.broadcaster.Join(room.ID, connID)
	e.broadcaster.Publish(room.ID, domain.NewRoomUpdate(room))

	zap.L().Info("player joined", zap.String("room_id", room.ID), zap.String("player_id", connID), zap.Int("players", len(room.Players)))
	return room.Snapshot(), nil
}

// LeaveRoom removes connID from the room. Leaving a room one is not part of
// is a no-op.
func (e *RoomEngine) LeaveRoom(ctx context.Context, connID, roomID string) error {
	room, err := e.lockRoom(roomID)
	if err != nil {
		return err
	}
	defer room.Unlock()

	e.removeLocked(room, connID)
	return nil
}

func (e *RoomEngine) StartGame(ctx context.Context, connID, roomID string) error {
	room, err := e.lockRoom(roomID)
	if err != nil {
		return err
	}
	defer room.Unlock()

	if !room.IsHost(connID) {
		return domain.ErrNotHost
	}
	if room.HasActiveQuestion() {
		return domain.ErrQuestionInProgress
	}

	question, err := e.nextQuestion(ctx, room.ID)
	if err != nil {
		zap.L().Warn("could not start round", zap.String("room_id", room.ID), zap.Error(err))
		return err
	}

	room.StartQuestion(question)
	e.armRound(room.ID, question.ID, question.Timeout())
	e.broadcaster.Publish(room.ID, domain.NewQuestionStart(question))

	zap.L().Info("question started",
		zap.String("room_id", room.ID),
		zap.String("question_id", question.ID),
		zap.Int("duration", question.Duration))
	return nil
}

// SubmitAnswer scores the first submission of a player for the active
// question. Wrong answers are accepted and score nothing.
func (e *RoomEngine) SubmitAnswer(ctx context.Context, connID, roomID, questionID string, choiceIndex int) error {
	room, err := e.lockRoom(roomID)
	if err != nil {
		return domain.ErrNoActiveQuestion
	}
	defer room.Unlock()

	if room.CurrentQuestion == nil || room.CurrentQuestion.ID != questionID {
		return domain.ErrNoActiveQuestion
	}
	player, ok := room.Player(connID)
	if !ok {
		return domain.ErrNotInRoom
	}
	if room.HasAnswered(connID) {
		return domain.ErrAlreadyAnswered
	}

	room.MarkAnswered(connID)
	correct := choiceIndex == room.CurrentQuestion.CorrectIndex
	if correct {
		player.Award(e.cfg.Award)
	}
	e.broadcaster.Publish(room.ID, domain.NewScoreUpdate(room))

	zap.L().Debug("answer accepted",
		zap.String("room_id", room.ID),
		zap.String("player_id", connID),
		zap.Bool("correct", correct),
		zap.Int("score", player.Score))
	return nil
}

// Disconnect drops connID from every room it plays in, with the same host
// hand-over and destruction rules as LeaveRoom. It returns the affected room
// ids.
func (e *RoomEngine) Disconnect(ctx context.Context, connID string) []string {
	var affected []string
	for _, room := range e.rooms.Rooms() {
		room.Lock()
		if !room.Closed() && e.removeLocked(room, connID) {
			affected = append(affected, room.ID)
		}
		room.Unlock()
	}
	if len(affected) > 0 {
		zap.L().Info("connection dropped from rooms", zap.String("conn_id", connID), zap.Strings("rooms", affected))
	}
	return affected
}

func (e *RoomEngine) Room(roomID string) (domain.RoomSnapshot, error) {
	room, err := e.lockRoom(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	defer room.Unlock()
	return room.Snapshot(), nil
}

func (e *RoomEngine) RoomCount() int {
	return e.rooms.Len()
}

func (e *RoomEngine) expire(roomID, questionID string) {
	room, err := e.lockRoom(roomID)
	if err != nil {
		e.forgetRound(roomID, questionID)
		zap.L().Debug("question timer fired for a destroyed room", zap.String("room_id", roomID), zap.String("question_id", questionID))
		return
	}
	defer room.Unlock()
	// armRound registers under the room lock, so the entry exists by now.
	e.forgetRound(roomID, questionID)

	if room.CurrentQuestion == nil || room.CurrentQuestion.ID != questionID {
		return
	}
	question := *room.CurrentQuestion

	e.broadcaster.Publish(room.ID, domain.NewQuestionEnd(question))
	room.ClearQuestion()
	e.broadcaster.Publish(room.ID, domain.NewScoreUpdate(room))

	zap.L().Info("question ended", zap.String("room_id", room.ID), zap.String("question_id", question.ID))
}

// lockRoom returns the live room locked, or ErrRoomNotFound. A room destroyed
// between lookup and lock counts as not found.
func (e *RoomEngine) lockRoom(roomID string) (*domain.Room, error) {
	room, ok := e.rooms.Get(roomID)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	room.Lock()
	if room.Closed() {
		room.Unlock()
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (e *RoomEngine) removeLocked(room *domain.Room, connID string) bool {
	if !room.RemovePlayer(connID) {
		return false
	}
	e.broadcaster.Leave(room.ID, connID)

	if room.IsEmpty() {
		e.destroyLocked(room)
		return true
	}
	e.broadcaster.Publish(room.ID, domain.NewRoomUpdate(room))
	return true
}

func (e *RoomEngine) destroyLocked(room *domain.Room) {
	if q := room.CurrentQuestion; q != nil {
		e.cancelRound(room.ID, q.ID)
	}
	room.Close()
	e.rooms.Remove(room.ID)
	if f, ok := e.questions.(RoomForgetter); ok {
		f.Forget(room.ID)
	}
}

func (e *RoomEngine) nextQuestion(ctx context.Context, roomID string) (domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
	defer cancel()

	question, err := e.questions.NextQuestion(ctx, roomID)
	if err != nil {
		return domain.Question{}, fmt.Errorf("%w: %v", domain.ErrQuestionUnavailable, err)
	}
	question.ID = uuid.NewString()
	question.Choices = append([]string(nil), question.Choices...)
	if question.Duration <= 0 {
		question.Duration = e.cfg.DefaultDuration
	}
	if err := question.Validate(); err != nil {
		return domain.Question{}, err
	}
	return question, nil
}

func (e *RoomEngine) displayName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if e.cfg.MaxNameLength > 0 && utf8.RuneCountInString(name) > e.cfg.MaxNameLength {
		name = string([]rune(name)[:e.cfg.MaxNameLength])
	}
	if name == "" {
		return fallback
	}
	if e.censor != nil {
		name = e.censor.Censor(name)
	}
	return name
}
