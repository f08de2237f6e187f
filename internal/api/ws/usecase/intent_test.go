package wsUsecase

import (
	"context"
	"errors"
	"quiz-service/domain"
	"quiz-service/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ackOf(t *testing.T, msg domain.Message) domain.AckPayload {
	t.Helper()
	require.Equal(t, domain.EventAck, msg.Type)
	payload, ok := msg.Content.(domain.AckPayload)
	require.True(t, ok)
	return payload
}

func TestIntentUseCase_CreateRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockRoomEngine(ctrl)
	engine.EXPECT().CreateRoom(gomock.Any(), "conn-1", "Alice").Return(domain.RoomSnapshot{RoomID: "ABC123"}, nil)
	uc := NewIntentUseCase(engine)

	msg := uc.Execute(context.Background(), "conn-1", []byte(`{"type":"create_room","ackId":"a1","content":{"name":"Alice"}}`), nil)

	req.Equal("a1", msg.AckID)
	req.Equal(domain.AckPayload{OK: true, RoomID: "ABC123"}, ackOf(t, msg))
}

func TestIntentUseCase_JoinRoomReturnsSnapshot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshot := domain.RoomSnapshot{RoomID: "ABC123", HostID: "host", State: domain.RoomStateLobby}
	engine := mocks.NewMockRoomEngine(ctrl)
	engine.EXPECT().JoinRoom(gomock.Any(), "conn-2", "ABC123", "").Return(snapshot, nil)
	uc := NewIntentUseCase(engine)

	msg := uc.Execute(context.Background(), "conn-2", []byte(`{"type":"join_room","ackId":"a2","content":{"roomId":"ABC123"}}`), nil)

	ack := ackOf(t, msg)
	req.True(ack.OK)
	req.Equal(&snapshot, ack.Room)
}

func TestIntentUseCase_AnswerDefaults(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockRoomEngine(ctrl)
	gomock.InOrder(
		engine.EXPECT().SubmitAnswer(gomock.Any(), "conn-1", "ABC123", "q1", 2).Return(nil),
		engine.EXPECT().SubmitAnswer(gomock.Any(), "conn-1", "ABC123", "q1", -1).Return(domain.ErrAlreadyAnswered),
	)
	uc := NewIntentUseCase(engine)
	ctx := context.Background()

	ok := uc.Execute(ctx, "conn-1", []byte(`{"type":"answer","content":{"roomId":"ABC123","questionId":"q1","choiceIndex":2}}`), nil)
	req.True(ackOf(t, ok).OK)
	req.Empty(ok.AckID)

	dup := uc.Execute(ctx, "conn-1", []byte(`{"type":"answer","ackId":"x","content":{"roomId":"ABC123","questionId":"q1"}}`), nil)
	req.Equal(domain.AckPayload{OK: false, Error: "Already answered"}, ackOf(t, dup))
}

func TestIntentUseCase_MissingContentReachesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockRoomEngine(ctrl)
	engine.EXPECT().StartGame(gomock.Any(), "conn-1", "").Return(domain.ErrRoomNotFound)
	uc := NewIntentUseCase(engine)

	msg := uc.Execute(context.Background(), "conn-1", []byte(`{"type":"start_game","ackId":"s"}`), nil)

	require.Equal(t, "Room not found", ackOf(t, msg).Error)
}

func TestIntentUseCase_EnvelopeFailures(t *testing.T) {
	cases := []struct {
		name  string
		frame string
		err   string
		ackID string
	}{
		{name: "not json", frame: `hello`, err: "Invalid payload"},
		{name: "missing type", frame: `{"ackId":"a"}`, err: "Invalid payload", ackID: "a"},
		{name: "unknown type", frame: `{"type":"explode","ackId":"b"}`, err: "Unknown intent", ackID: "b"},
		{name: "ack id too long", frame: `{"type":"leave_room","ackId":"` + strings.Repeat("a", 65) + `"}`, err: "Invalid payload", ackID: strings.Repeat("a", 65)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := NewIntentUseCase(mocks.NewMockRoomEngine(ctrl))

			msg := uc.Execute(context.Background(), "conn-1", []byte(tc.frame), nil)

			require.Equal(t, tc.ackID, msg.AckID)
			require.Equal(t, domain.AckPayload{OK: false, Error: tc.err}, ackOf(t, msg))
		})
	}
}

func TestIntentUseCase_CreateRoomToleratesOddNames(t *testing.T) {
	long := strings.Repeat("a", 65)
	cases := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "long name is passed on for truncation", content: `{"name":"` + long + `"}`, expected: long},
		{name: "numeric name", content: `{"name":5}`, expected: ""},
		{name: "object name", content: `{"name":{"first":"Al"}}`, expected: ""},
		{name: "null name", content: `{"name":null}`, expected: ""},
		{name: "content is a string", content: `"oops"`, expected: ""},
		{name: "content is an array", content: `["Alice"]`, expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := mocks.NewMockRoomEngine(ctrl)
			engine.EXPECT().CreateRoom(gomock.Any(), "conn-1", tc.expected).Return(domain.RoomSnapshot{RoomID: "ABC123"}, nil)
			uc := NewIntentUseCase(engine)

			msg := uc.Execute(context.Background(), "conn-1", []byte(`{"type":"create_room","ackId":"c","content":`+tc.content+`}`), nil)

			require.Equal(t, domain.AckPayload{OK: true, RoomID: "ABC123"}, ackOf(t, msg))
		})
	}
}

func TestIntentUseCase_JoinRoomWithNonStringRoomID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockRoomEngine(ctrl)
	engine.EXPECT().JoinRoom(gomock.Any(), "conn-1", "", "Bob").Return(domain.RoomSnapshot{}, domain.ErrRoomNotFound)
	uc := NewIntentUseCase(engine)

	msg := uc.Execute(context.Background(), "conn-1", []byte(`{"type":"join_room","ackId":"j","content":{"roomId":42,"name":"Bob"}}`), nil)

	require.Equal(t, domain.AckPayload{OK: false, Error: "Room not found"}, ackOf(t, msg))
}

func TestIntentUseCase_AnswerChoiceIndexDecoding(t *testing.T) {
	cases := []struct {
		name     string
		choice   string
		expected int
	}{
		{name: "integer", choice: `1`, expected: 1},
		{name: "integral float", choice: `1.0`, expected: 1},
		{name: "exponent", choice: `2e0`, expected: 2},
		{name: "fraction", choice: `1.5`, expected: -1},
		{name: "numeric string", choice: `"1"`, expected: -1},
		{name: "boolean", choice: `true`, expected: -1},
		{name: "null", choice: `null`, expected: -1},
		{name: "huge", choice: `1e300`, expected: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := mocks.NewMockRoomEngine(ctrl)
			engine.EXPECT().SubmitAnswer(gomock.Any(), "conn-1", "ABC123", "q1", tc.expected).Return(nil)
			uc := NewIntentUseCase(engine)

			frame := `{"type":"answer","ackId":"n","content":{"roomId":"ABC123","questionId":"q1","choiceIndex":` + tc.choice + `}}`
			msg := uc.Execute(context.Background(), "conn-1", []byte(frame), nil)

			require.True(t, ackOf(t, msg).OK)
		})
	}
}

func TestIntentUseCase_RateLimited(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockRoomEngine(ctrl)
	engine.EXPECT().LeaveRoom(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	limiter := mocks.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow().Return(false)
	uc := NewIntentUseCase(engine)

	msg := uc.Execute(context.Background(), "conn-1", []byte(`{"type":"leave_room","ackId":"r","content":{"roomId":"ABC123"}}`), limiter)

	req.Equal("r", msg.AckID)
	req.Equal("Rate limit exceeded", ackOf(t, msg).Error)
}

func TestAckError(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{domain.ErrRoomNotFound, "Room not found"},
		{domain.ErrNotHost, "Only host"},
		{domain.ErrNoActiveQuestion, "No active question"},
		{domain.ErrNotInRoom, "Not in room"},
		{domain.ErrQuestionInProgress, "Question in progress"},
		{domain.ErrAlreadyAnswered, "Already answered"},
		{errors.Join(errors.New("db down"), domain.ErrQuestionUnavailable), "No question available"},
		{domain.ErrCodeSpaceExhausted, "Internal error"},
		{errors.New("boom"), "Internal error"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, AckError(tc.err), tc.err.Error())
	}
}
