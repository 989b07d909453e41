package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const SigningSecret = "test-signing-secret"

// CreateSlackRequest builds a request signed the way Slack signs it
func CreateSlackRequest(t *testing.T, path, contentType, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", contentType)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

// CreateSlashCommandRequest creates a properly signed Slack slash command request
func CreateSlashCommandRequest(t *testing.T, text, channelID, channelName, userID, teamID string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/maprotation"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return CreateSlackRequest(t, "/slack/commands", "application/x-www-form-urlencoded", form.Encode(), SigningSecret)
}

// CreateInteractionRequest wraps an interaction payload the way Slack posts it
func CreateInteractionRequest(t *testing.T, payload string) *http.Request {
	t.Helper()

	form := url.Values{"payload": {payload}}
	return CreateSlackRequest(t, "/slack/interactions", "application/x-www-form-urlencoded", form.Encode(), SigningSecret)
}

func CreateEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	return CreateSlackRequest(t, "/slack/events", "application/json", body, SigningSecret)
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
