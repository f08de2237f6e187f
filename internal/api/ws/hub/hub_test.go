package hub

import (
	"encoding/json"
	"quiz-service/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(id string, buffer int) *domain.Client {
	return domain.NewClient(id, nil, buffer)
}

func drain(c *domain.Client) []domain.Message {
	var out []domain.Message
	for {
		select {
		case raw, ok := <-c.Send:
			if !ok {
				return out
			}
			var msg domain.Message
			if err := json.Unmarshal(raw, &msg); err == nil {
				out = append(out, msg)
			}
		default:
			return out
		}
	}
}

func TestHub_PublishReachesOnlyRoomMembers(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	alice, bob, carol := newTestClient("alice", 8), newTestClient("bob", 8), newTestClient("carol", 8)
	for _, c := range []*domain.Client{alice, bob, carol} {
		h.RegisterClient(c)
	}
	h.Join("ROOM01", "alice")
	h.Join("ROOM01", "bob")
	h.Join("ROOM02", "carol")

	h.Publish("ROOM01", domain.Message{Type: domain.EventScoreUpdate, Content: map[string]int{"n": 1}})

	req.Len(drain(alice), 1)
	got := drain(bob)
	req.Len(got, 1)
	req.Equal(domain.EventScoreUpdate, got[0].Type)
	req.Empty(drain(carol))
	req.Equal(2, h.GetRoomClientCount("ROOM01"))
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	alice := newTestClient("alice", 8)
	h.RegisterClient(alice)
	h.Join("ROOM01", "alice")

	h.Leave("ROOM01", "alice")
	h.Publish("ROOM01", domain.Message{Type: domain.EventRoomUpdate})

	req.Empty(drain(alice))
	req.Equal(0, h.GetRoomClientCount("ROOM01"))
}

func TestHub_JoinIgnoresUnknownConnections(t *testing.T) {
	h := NewHub()

	h.Join("ROOM01", "ghost")

	require.Equal(t, 0, h.GetRoomClientCount("ROOM01"))
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	slow := newTestClient("slow", 1)
	h.RegisterClient(slow)
	h.Join("ROOM01", "slow")

	h.Publish("ROOM01", domain.Message{Type: "first"})
	h.Publish("ROOM01", domain.Message{Type: "second"})
	err := h.SendMessageToClient(slow, domain.Message{Type: "third"})

	req.Error(err)
	got := drain(slow)
	req.Len(got, 1)
	req.Equal("first", got[0].Type)
}

func TestHub_UnregisterClosesSendAndForgetsRooms(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	alice := newTestClient("alice", 8)
	h.RegisterClient(alice)
	h.Join("ROOM01", "alice")
	h.Join("ROOM02", "alice")

	h.UnregisterClient(alice)
	h.UnregisterClient(alice)

	_, open := <-alice.Send
	req.False(open)
	req.Equal(0, h.ClientCount())
	req.Equal(0, h.GetRoomClientCount("ROOM01"))
	req.Equal(0, h.GetRoomClientCount("ROOM02"))
	req.Error(h.SendMessageToClient(alice, domain.Message{Type: "late"}))

	h.Publish("ROOM01", domain.Message{Type: "late"})
}

func TestHub_ReRegisterReplacesOldClient(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	old := newTestClient("alice", 8)
	h.RegisterClient(old)

	fresh := newTestClient("alice", 8)
	h.RegisterClient(fresh)
	h.UnregisterClient(old)

	_, open := <-old.Send
	req.False(open)
	req.Equal(1, h.ClientCount())
	req.NoError(h.SendMessageToClient(fresh, domain.Message{Type: "hello"}))
}
