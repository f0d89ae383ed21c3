package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationusecases "campusdesk/internal/application/notification/usecases"
	realtimeusecases "campusdesk/internal/application/realtime/usecases"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/realtime"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/services"
	"campusdesk/internal/interfaces/http/handlers/testutil"
	"campusdesk/internal/shared/constants"
)

type fakePresenceRepo struct {
	online  map[uint]bool
	lastSet time.Time
}

func newFakePresenceRepo() *fakePresenceRepo {
	return &fakePresenceRepo{online: make(map[uint]bool)}
}

func (f *fakePresenceRepo) UpsertOnline(_ context.Context, userID uint, _ string) error {
	f.online[userID] = true
	f.lastSet = time.Now()
	return nil
}

func (f *fakePresenceRepo) SetOffline(_ context.Context, userID uint) error {
	f.online[userID] = false
	return nil
}

func (f *fakePresenceRepo) ListOnline(_ context.Context, _ time.Time) ([]*realtime.OnlineUser, error) {
	var rows []*realtime.OnlineUser
	for id, on := range f.online {
		if on {
			rows = append(rows, realtime.ReconstructOnlineUser(id, id, true, time.Now(), "notifications"))
		}
	}
	return rows, nil
}

type fakeTypingRepo struct {
	typing map[uint]bool
}

func newFakeTypingRepo() *fakeTypingRepo {
	return &fakeTypingRepo{typing: make(map[uint]bool)}
}

func (f *fakeTypingRepo) Upsert(_ context.Context, _, userID uint, isTyping bool) error {
	f.typing[userID] = isTyping
	return nil
}

func (f *fakeTypingRepo) ListTyping(_ context.Context, issueID uint, _ time.Time, excludeUserID uint) ([]*realtime.TypingStatus, error) {
	var rows []*realtime.TypingStatus
	for id, on := range f.typing {
		if on && id != excludeUserID {
			rows = append(rows, realtime.ReconstructTypingStatus(id, issueID, id, true, time.Now()))
		}
	}
	return rows, nil
}

type fakeActivityRepo struct {
	viewerIDs []uint
}

func (f *fakeActivityRepo) Append(_ context.Context, activity *realtime.IssueActivity) error {
	f.viewerIDs = append(f.viewerIDs, activity.UserID())
	return nil
}

func (f *fakeActivityRepo) ListViewerIDs(_ context.Context, _ uint, _ time.Time) ([]uint, error) {
	return f.viewerIDs, nil
}

type fakeNotificationRepo struct {
	unread int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ *notification.Notification) error {
	return nil
}

func (f *fakeNotificationRepo) BulkCreate(_ context.Context, _ []*notification.Notification) error {
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, _ uint) (*notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) ListByRecipient(_ context.Context, _ uint, _, _ int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) ListRecent(_ context.Context, _ uint, _ int) ([]*notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, _ uint) (int64, error) {
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, _, _ uint) error { return nil }

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context, _ uint) error { return nil }

type fakeUserRepo struct{}

func (f *fakeUserRepo) Save(_ context.Context, _ *user.User) error         { return nil }
func (f *fakeUserRepo) Update(_ context.Context, _ *user.User) error       { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, _ uint) (*user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByIDs(_ context.Context, _ []uint) ([]*user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListByRole(_ context.Context, _ vo.Role) ([]*user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) CountCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	return 0, nil
}

type wsTestEnv struct {
	server   *httptest.Server
	hub      *services.Hub
	presence *fakePresenceRepo
	typing   *fakeTypingRepo
}

func newWSTestEnv(t *testing.T, userID uint) *wsTestEnv {
	t.Helper()

	log := testutil.NewMockLogger()
	hub := services.NewHub(log)
	presence := newFakePresenceRepo()
	typing := newFakeTypingRepo()
	activity := &fakeActivityRepo{}
	notifications := &fakeNotificationRepo{unread: 3}
	users := &fakeUserRepo{}

	handler := NewWSHandler(
		hub,
		realtimeusecases.NewMarkOnlineUseCase(presence, log),
		realtimeusecases.NewMarkOfflineUseCase(presence, log),
		realtimeusecases.NewListOnlineUsersUseCase(presence, users, log),
		realtimeusecases.NewRecordViewUseCase(activity, log),
		realtimeusecases.NewListViewersUseCase(activity, users, log),
		realtimeusecases.NewSetTypingUseCase(typing, log),
		realtimeusecases.NewListTypingUseCase(typing, users, log),
		notificationusecases.NewMarkAsReadUseCase(notifications, log),
		notificationusecases.NewMarkAllAsReadUseCase(notifications, log),
		notificationusecases.NewGetUnreadCountUseCase(notifications, log),
		[]string{"*"},
		log,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, "STUDENT")
	})
	r.GET("/ws/notifications", handler.Notifications)
	r.GET("/ws/issues/:id", handler.Issue)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &wsTestEnv{server: server, hub: hub, presence: presence, typing: typing}
}

func (env *wsTestEnv) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(env.server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) (string, map[string]interface{}) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var env struct {
		Type    string                 `json:"type"`
		Payload map[string]interface{} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.Type, env.Payload
}

func TestWSHandler_NotificationsConnectSequence(t *testing.T) {
	env := newWSTestEnv(t, 7)

	conn := env.dial(t, "/ws/notifications")

	// Connecting joins the global group, so the client sees its own
	// online announcement first, then the connect-time replies.
	msgType, payload := readEnvelope(t, conn)
	assert.Equal(t, "user_status", msgType)
	assert.Equal(t, float64(7), payload["user_id"])
	assert.Equal(t, true, payload["is_online"])

	msgType, payload = readEnvelope(t, conn)
	assert.Equal(t, "online_users", msgType)
	users, ok := payload["users"].([]interface{})
	require.True(t, ok)
	require.Len(t, users, 1)

	msgType, payload = readEnvelope(t, conn)
	assert.Equal(t, "unread_count", msgType)
	assert.Equal(t, float64(3), payload["count"])

	assert.True(t, env.presence.online[7])
}

func TestWSHandler_NotificationsDisconnectMarksOffline(t *testing.T) {
	env := newWSTestEnv(t, 7)

	conn := env.dial(t, "/ws/notifications")
	readEnvelope(t, conn) // user_status
	readEnvelope(t, conn) // online_users
	readEnvelope(t, conn) // unread_count

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return !env.presence.online[7]
	}, 2*time.Second, 10*time.Millisecond, "disconnect should mark the user offline")
}

func TestWSHandler_IssueConnectSequence(t *testing.T) {
	env := newWSTestEnv(t, 7)
	env.typing.typing[9] = true // another user is composing

	conn := env.dial(t, "/ws/issues/42")

	msgType, payload := readEnvelope(t, conn)
	assert.Equal(t, "typing_users", msgType)
	typingUsers, ok := payload["users"].([]interface{})
	require.True(t, ok)
	require.Len(t, typingUsers, 1, "caller is excluded from the typing list")

	msgType, payload = readEnvelope(t, conn)
	assert.Equal(t, "viewing_update", msgType)
	viewers, ok := payload["viewers"].([]interface{})
	require.True(t, ok)
	require.Len(t, viewers, 1)
}

func TestWSHandler_IssueTypingBroadcastsTypingUpdate(t *testing.T) {
	env := newWSTestEnv(t, 7)

	conn := env.dial(t, "/ws/issues/42")
	readEnvelope(t, conn) // typing_users
	readEnvelope(t, conn) // viewing_update

	frame := map[string]interface{}{
		"type":    "typing_status",
		"payload": map[string]interface{}{"is_typing": true},
	}
	require.NoError(t, conn.WriteJSON(frame))

	msgType, payload := readEnvelope(t, conn)
	assert.Equal(t, "typing_update", msgType)
	assert.Equal(t, float64(42), payload["issue_id"])
	assert.Equal(t, float64(7), payload["user_id"])
	assert.Equal(t, true, payload["is_typing"])

	assert.True(t, env.typing.typing[7])
}
