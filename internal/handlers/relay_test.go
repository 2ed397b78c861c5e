package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillbarter/backend/internal/handlers/dto"
	ws "github.com/skillbarter/backend/internal/websocket"
)

func sendEvent(roomID string, payload dto.SendMessagePayload) *ws.Message {
	data, _ := json.Marshal(payload)
	return &ws.Message{
		Type:      ws.TypeSendMessage,
		RoomID:    &roomID,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func receiveFrame(t *testing.T, c *ws.Client) (*ws.Message, dto.MessageResponse) {
	t.Helper()

	select {
	case frame := <-c.Send:
		var envelope ws.Message
		require.NoError(t, json.Unmarshal(frame, &envelope))
		var record dto.MessageResponse
		require.NoError(t, json.Unmarshal(envelope.Data, &record))
		return &envelope, record
	default:
		t.Fatal("no frame delivered")
		return nil, dto.MessageResponse{}
	}
}

func TestRelay_PersistsThenBroadcasts(t *testing.T) {
	db := openTestDB(t)
	hub := ws.NewHub()
	relay := NewRelayHandler(db, hub)

	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	room := ws.DirectRoomID(alice.ID.String(), bob.ID.String())

	aliceConn := ws.NewClient(hub, nil, alice.ID)
	bobConn := ws.NewClient(hub, nil, bob.ID)
	hub.JoinRoom(aliceConn, room)
	hub.JoinRoom(bobConn, room)

	err := relay.HandleMessage(aliceConn, sendEvent(room, dto.SendMessagePayload{
		SenderID:   alice.ID.String(),
		ReceiverID: bob.ID.String(),
		Text:       "Hi Bob",
	}))
	require.NoError(t, err)

	// Persisted...
	history, err := db.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Hi Bob", history[0].Text)

	// ...and fanned out to every member, sender included, with the full
	// stored record.
	envelope, record := receiveFrame(t, bobConn)
	require.Equal(t, ws.TypeReceiveMessage, envelope.Type)
	require.Equal(t, room, *envelope.RoomID)
	require.Equal(t, history[0].ID, record.ID)
	require.Equal(t, alice.ID, record.SenderID)
	require.Equal(t, bob.ID, record.ReceiverID)
	require.Equal(t, "Hi Bob", record.Text)

	_, echo := receiveFrame(t, aliceConn)
	require.Equal(t, record, echo)
}

func TestRelay_DropsInvalidEventsSilently(t *testing.T) {
	db := openTestDB(t)
	hub := ws.NewHub()
	relay := NewRelayHandler(db, hub)

	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	room := ws.DirectRoomID(alice.ID.String(), bob.ID.String())

	aliceConn := ws.NewClient(hub, nil, alice.ID)
	bobConn := ws.NewClient(hub, nil, bob.ID)
	hub.JoinRoom(aliceConn, room)
	hub.JoinRoom(bobConn, room)

	events := []*ws.Message{
		sendEvent(room, dto.SendMessagePayload{SenderID: alice.ID.String(), ReceiverID: bob.ID.String(), Text: "   "}),
		sendEvent(room, dto.SendMessagePayload{ReceiverID: bob.ID.String(), Text: "no sender"}),
		sendEvent(room, dto.SendMessagePayload{SenderID: alice.ID.String(), Text: "no receiver"}),
		sendEvent(room, dto.SendMessagePayload{SenderID: "not-a-uuid", ReceiverID: bob.ID.String(), Text: "hi"}),
		{Type: ws.TypeSendMessage, Data: []byte(`{"text":"no room"}`)},
		{Type: ws.TypeSendMessage, RoomID: &room, Data: []byte(`not json`)},
	}

	for _, event := range events {
		// Drop policy: no error surfaces to the read pump.
		require.NoError(t, relay.HandleMessage(aliceConn, event))
	}

	history, err := db.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Empty(t, history)

	select {
	case <-bobConn.Send:
		t.Fatal("dropped event must not be delivered")
	default:
	}
}

func TestRelay_DeliveryStopsAfterDisconnect(t *testing.T) {
	db := openTestDB(t)
	hub := ws.NewHub()
	relay := NewRelayHandler(db, hub)

	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	room := ws.DirectRoomID(alice.ID.String(), bob.ID.String())

	aliceConn := ws.NewClient(hub, nil, alice.ID)
	bobConn := ws.NewClient(hub, nil, bob.ID)
	hub.JoinRoom(aliceConn, room)
	hub.JoinRoom(bobConn, room)
	hub.LeaveRoom(bobConn, room)

	err := relay.HandleMessage(aliceConn, sendEvent(room, dto.SendMessagePayload{
		SenderID:   alice.ID.String(),
		ReceiverID: bob.ID.String(),
		Text:       "anyone there?",
	}))
	require.NoError(t, err)

	// Still persisted, still delivered to remaining members, absent from
	// the departed one.
	history, err := db.History(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	_, record := receiveFrame(t, aliceConn)
	require.Equal(t, "anyone there?", record.Text)

	select {
	case <-bobConn.Send:
		t.Fatal("departed member must not receive the message")
	default:
	}
}

func TestRelay_IgnoresUnknownEventTypes(t *testing.T) {
	db := openTestDB(t)
	hub := ws.NewHub()
	relay := NewRelayHandler(db, hub)

	alice := createTestUser(t, db, "alice", "password123")
	conn := ws.NewClient(hub, nil, alice.ID)

	require.NoError(t, relay.HandleMessage(conn, &ws.Message{Type: "typing_indicator"}))
}
