package registry

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"quiz-service/domain"
	"sync"

	"go.uber.org/zap"
)

const (
	DefaultCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultCodeLength   = 6
	defaultMaxAttempts  = 64
)

// CodeGenerator returns a candidate room code. Candidates may collide; the
// registry retries.
type CodeGenerator func() (string, error)

// RoomRegistry owns every live room, keyed by its short code.
type RoomRegistry struct {
	rooms       map[string]*domain.Room
	generate    CodeGenerator
	maxAttempts int
	mu          sync.RWMutex
}

func NewRoomRegistry(generate CodeGenerator) *RoomRegistry {
	if generate == nil {
		generate = RandomCode(DefaultCodeAlphabet, DefaultCodeLength)
	}
	return &RoomRegistry{
		rooms:       make(map[string]*domain.Room),
		generate:    generate,
		maxAttempts: defaultMaxAttempts,
	}
}

// RandomCode draws length characters uniformly from alphabet.
func RandomCode(alphabet string, length int) CodeGenerator {
	return randomCode(rand.Reader, alphabet, length)
}

func randomCode(entropy io.Reader, alphabet string, length int) CodeGenerator {
	symbols := []rune(alphabet)
	limit := big.NewInt(int64(len(symbols)))
	return func() (string, error) {
		code := make([]rune, length)
		for i := range code {
			n, err := rand.Int(entropy, limit)
			if err != nil {
				return "", fmt.Errorf("room code entropy unavailable: %w", err)
			}
			code[i] = symbols[n.Int64()]
		}
		return string(code), nil
	}
}

// Create picks a code no live room uses and stores the room build returns for
// it. The room becomes visible to Get only once fully built.
func (r *RoomRegistry) Create(build func(id string) *domain.Room) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		id, err := r.generate()
		if err != nil {
			return nil, err
		}
		if _, taken := r.rooms[id]; taken {
			zap.L().Debug("room code collision", zap.String("room_id", id), zap.Int("attempt", attempt))
			continue
		}
		room := build(id)
		r.rooms[id] = room
		zap.L().Info("room created", zap.String("room_id", id), zap.Int("live_rooms", len(r.rooms)))
		return room, nil
	}
	return nil, fmt.Errorf("%w: %d attempts", domain.ErrCodeSpaceExhausted, r.maxAttempts)
}

func (r *RoomRegistry) Get(id string) (*domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	return room, ok
}

// Remove is idempotent.
func (r *RoomRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return
	}
	delete(r.rooms, id)
	zap.L().Info("room removed", zap.String("room_id", id), zap.Int("live_rooms", len(r.rooms)))
}

// Rooms returns the live rooms at the time of the call.
func (r *RoomRegistry) Rooms() []*domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rooms := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

func (r *RoomRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
