package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

func GenerateUserID() string {
	return fmt.Sprintf("user_%d", time.Now().UnixNano()%1_000_000)
}

// GenerateSessionToken génère un token de session aléatoire (hex, 64 chars)
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
