package engine

import (
	"time"

	"go.uber.org/zap"
)

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// roundKey identifies one activation of a question in one room.
type roundKey struct {
	roomID     string
	questionID string
}

func (e *RoomEngine) armRound(roomID, questionID string, d time.Duration) {
	key := roundKey{roomID: roomID, questionID: questionID}
	timer := e.scheduler.AfterFunc(d, func() { e.expire(roomID, questionID) })

	e.timersMu.Lock()
	e.timers[key] = timer
	e.timersMu.Unlock()
}

func (e *RoomEngine) cancelRound(roomID, questionID string) {
	key := roundKey{roomID: roomID, questionID: questionID}

	e.timersMu.Lock()
	timer, ok := e.timers[key]
	delete(e.timers, key)
	e.timersMu.Unlock()

	if ok && timer.Stop() {
		zap.L().Debug("question timer cancelled", zap.String("room_id", roomID), zap.String("question_id", questionID))
	}
}

func (e *RoomEngine) forgetRound(roomID, questionID string) {
	e.timersMu.Lock()
	delete(e.timers, roundKey{roomID: roomID, questionID: questionID})
	e.timersMu.Unlock()
}

// PendingRounds reports how many question timers are armed.
func (e *RoomEngine) PendingRounds() int {
	e.timersMu.Lock()
	defer e.timersMu.Unlock()
	return len(e.timers)
}

// Close stops every armed question timer.
func (e *RoomEngine) Close() {
	e.timersMu.Lock()
	defer e.timersMu.Unlock()
	for key, timer := range e.timers {
		timer.Stop()
		delete(e.timers, key)
	}
}
