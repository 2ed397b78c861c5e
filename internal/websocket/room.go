package websocket

import "strings"

// DirectRoomID derives the conversation room for two users: sort the IDs
// lexicographically and join with "-". Both participants compute the same
// value independently, so no room-allocation handshake is needed. The
// frontend computes the identical string, keep the format stable.
func DirectRoomID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return strings.Join([]string{userA, userB}, "-")
}
