package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillbarter/backend/internal/handlers/dto"
)

func chatRouter(h *ChatHandler, callerID *uuid.UUID) *gin.Engine {
	r := gin.New()
	group := r.Group("/api")
	if callerID != nil {
		group.Use(identityMiddleware(*callerID))
	}
	group.GET("/chat/:receiverId", h.GetChatHistory)
	return r
}

func TestGetChatHistory_RequiresIdentity(t *testing.T) {
	h := NewChatHandler(openTestDB(t))
	r := chatRouter(h, nil)

	w := doJSON(t, r, http.MethodGet, "/api/chat/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetChatHistory_RejectsBadPeerID(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice", "password123")
	r := chatRouter(NewChatHandler(db), &alice.ID)

	w := doJSON(t, r, http.MethodGet, "/api/chat/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChatHistory_ReturnsOrderedConversation(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")

	_, err := db.AppendMessage(alice.ID, bob.ID, "Hi Bob")
	require.NoError(t, err)
	_, err = db.AppendMessage(bob.ID, alice.ID, "Hi Alice")
	require.NoError(t, err)

	// Both sides see the same conversation.
	for _, caller := range []struct {
		id   uuid.UUID
		peer uuid.UUID
	}{
		{alice.ID, bob.ID},
		{bob.ID, alice.ID},
	} {
		r := chatRouter(NewChatHandler(db), &caller.id)
		w := doJSON(t, r, http.MethodGet, "/api/chat/"+caller.peer.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var messages []dto.MessageResponse
		decodeJSON(t, w, &messages)
		require.Len(t, messages, 2)
		require.Equal(t, "Hi Bob", messages[0].Text)
		require.Equal(t, "Hi Alice", messages[1].Text)
	}
}
