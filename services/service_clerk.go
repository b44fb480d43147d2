package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ClerkService resolves user display names against the Clerk REST API.
// Authentication itself is Clerk's job; this only reads profile data.
type ClerkService struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewClerkService(baseURL, secretKey string) *ClerkService {
	return &ClerkService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetUserName returns "First Last" for a Clerk user id. Any failure is
// reported as ErrUserNameUnavailable, mirroring how little the frontend
// can do about it.
func (s *ClerkService) GetUserName(ctx context.Context, clerkUserID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/users/"+clerkUserID, nil)
	if err != nil {
		return "", ErrUserNameUnavailable
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("clerk: fetching user %s: %v", clerkUserID, err)
		return "", ErrUserNameUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("clerk: fetching user %s: status %d", clerkUserID, resp.StatusCode)
		return "", ErrUserNameUnavailable
	}

	var user struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		log.Printf("clerk: decoding user %s: %v", clerkUserID, err)
		return "", ErrUserNameUnavailable
	}

	return fmt.Sprintf("%s %s", user.FirstName, user.LastName), nil
}
