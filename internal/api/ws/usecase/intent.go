package wsUsecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quiz-service/domain"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Intent is one inbound frame.
type Intent struct {
	Type    string          `json:"type" validate:"required,max=32"`
	AckID   string          `json:"ackId" validate:"max=64"`
	Content json.RawMessage `json:"content"`
}

// Content fields never fail to decode: a value of the wrong type falls back
// to the field's default, which the engine then treats like a missing value.

type CreateRoomContent struct {
	Name LooseString `json:"name"`
}

type JoinRoomContent struct {
	RoomID LooseString `json:"roomId"`
	Name   LooseString `json:"name"`
}

type RoomContent struct {
	RoomID LooseString `json:"roomId"`
}

type AnswerContent struct {
	RoomID      LooseString `json:"roomId"`
	QuestionID  LooseString `json:"questionId"`
	ChoiceIndex ChoiceIndex `json:"choiceIndex"`
}

// IntentUseCase turns one inbound frame into an engine call and the ack that
// answers it.
type IntentUseCase interface {
	Execute(ctx context.Context, connID string, frame []byte, limiter Limiter) domain.Message
}

type intentUseCase struct {
	engine RoomEngine
}

func NewIntentUseCase(engine RoomEngine) IntentUseCase {
	return &intentUseCase{engine: engine}
}

func (u *intentUseCase) Execute(ctx context.Context, connID string, frame []byte, limiter Limiter) domain.Message {
	var intent Intent
	if err := json.Unmarshal(frame, &intent); err != nil {
		return failure("", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	if err := validate.Struct(intent); err != nil {
		return failure(intent.AckID, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	if limiter != nil && !limiter.Allow() {
		return failure(intent.AckID, domain.ErrRateLimited)
	}

	ack, err := u.dispatch(ctx, connID, intent)
	if err != nil {
		zap.L().Debug("intent rejected",
			zap.String("conn_id", connID),
			zap.String("intent", intent.Type),
			zap.Error(err))
		return failure(intent.AckID, err)
	}
	ack.OK = true
	return domain.NewAck(intent.AckID, ack)
}

func (u *intentUseCase) dispatch(ctx context.Context, connID string, intent Intent) (domain.AckPayload, error) {
	switch intent.Type {
	case domain.IntentCreateRoom:
		var c CreateRoomContent
		if err := decode(intent.Content, &c); err != nil {
			return domain.AckPayload{}, err
		}
		room, err := u.engine.CreateRoom(ctx, connID, string(c.Name))
		if err != nil {
			return domain.AckPayload{}, err
		}
		return domain.AckPayload{RoomID: room.RoomID}, nil

	case domain.IntentJoinRoom:
		var c JoinRoomContent
		if err := decode(intent.Content, &c); err != nil {
			return domain.AckPayload{}, err
		}
		room, err := u.engine.JoinRoom(ctx, connID, string(c.RoomID), string(c.Name))
		if err != nil {
			return domain.AckPayload{}, err
		}
		return domain.AckPayload{RoomID: room.RoomID, Room: &room}, nil

	case domain.IntentLeaveRoom:
		var c RoomContent
		if err := decode(intent.Content, &c); err != nil {
			return domain.AckPayload{}, err
		}
		return domain.AckPayload{}, u.engine.LeaveRoom(ctx, connID, string(c.RoomID))

	case domain.IntentStartGame:
		var c RoomContent
		if err := decode(intent.Content, &c); err != nil {
			return domain.AckPayload{}, err
		}
		return domain.AckPayload{}, u.engine.StartGame(ctx, connID, string(c.RoomID))

	case domain.IntentAnswer:
		// A missing choice can never be the right one.
		c := AnswerContent{ChoiceIndex: NoChoice}
		if err := decode(intent.Content, &c); err != nil {
			return domain.AckPayload{}, err
		}
		return domain.AckPayload{}, u.engine.SubmitAnswer(ctx, connID, string(c.RoomID), string(c.QuestionID), int(c.ChoiceIndex))

	default:
		return domain.AckPayload{}, fmt.Errorf("%w: %q", domain.ErrUnknownIntent, intent.Type)
	}
}

// decode fills dst from raw. Content that is missing, null or not an object
// leaves dst at its defaults.
func decode(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func failure(ackID string, err error) domain.Message {
	return domain.NewAck(ackID, domain.AckPayload{OK: false, Error: AckError(err)})
}

// AckError maps an error to the text clients see.
func AckError(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return "Room not found"
	case errors.Is(err, domain.ErrNotHost):
		return "Only host"
	case errors.Is(err, domain.ErrNoActiveQuestion):
		return "No active question"
	case errors.Is(err, domain.ErrNotInRoom):
		return "Not in room"
	case errors.Is(err, domain.ErrQuestionInProgress):
		return "Question in progress"
	case errors.Is(err, domain.ErrAlreadyAnswered):
		return "Already answered"
	case errors.Is(err, domain.ErrQuestionUnavailable):
		return "No question available"
	case errors.Is(err, domain.ErrUnknownIntent):
		return "Unknown intent"
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid payload"
	case errors.Is(err, domain.ErrRateLimited):
		return "Rate limit exceeded"
	default:
		zap.L().Error("intent failed", zap.Error(err))
		return "Internal error"
	}
}
