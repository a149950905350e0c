package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/alimgiray/showcase/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie   = "session"
	sessionLifetime = 24 * time.Hour
)

type SessionData struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionMiddleware reads the signed session cookie into the request context.
// Sessions past half their lifetime are re-issued.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData := getSessionFromCookie(c)

		if sessionData != nil && time.Until(sessionData.ExpiresAt) < sessionLifetime/2 {
			if refreshed, err := writeSession(c, sessionData.UserID, sessionData.Username, sessionData.Name); err == nil {
				sessionData = refreshed
			}
		}

		c.Set("session", sessionData)
		c.Next()
	}
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	// signature.data
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}
	signature, data := parts[0], parts[1]

	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if time.Now().After(sessionData.ExpiresAt) || sessionData.UserID == "" {
		return nil
	}

	return &sessionData
}

// SetSession creates a new session cookie
func SetSession(c *gin.Context, userID, username, name string) error {
	sessionData, err := writeSession(c, userID, username, name)
	if err != nil {
		return err
	}
	c.Set("session", sessionData)
	return nil
}

func writeSession(c *gin.Context, userID, username, name string) (*SessionData, error) {
	sessionData := &SessionData{
		UserID:    userID,
		Username:  username,
		Name:      name,
		ExpiresAt: time.Now().Add(sessionLifetime),
	}

	data, err := json.Marshal(sessionData)
	if err != nil {
		return nil, err
	}
	encodedData := base64.URLEncoding.EncodeToString(data)

	c.SetCookie(sessionCookie, createSignature(encodedData)+"."+encodedData, int(sessionLifetime.Seconds()), "/", "", false, true)
	return sessionData, nil
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.AppConfig.Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

func verifySignature(data, signature string) bool {
	return hmac.Equal([]byte(signature), []byte(createSignature(data)))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get("session")
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}
