package auth

import (
	"testing"
	"time"

	"github.com/Arss011/network-toolkit-management-api/models"
)

func testUser() *models.User {
	return &models.User{ID: 42, Username: "jdoe", Role: models.RoleUser}
}

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, jti, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if jti == "" {
		t.Fatal("Issue returned empty jti")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "jdoe" || claims.Role != models.RoleUser {
		t.Errorf("claims = %+v; want user 42 jdoe/user", claims)
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q; want %q", claims.ID, jti)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Error("Parse accepted a token signed with a different secret")
	}
}

func TestParse_Expired(t *testing.T) {
	token, _, err := NewManager("test-secret", -time.Minute).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewManager("test-secret", -time.Minute).Parse(token); err == nil {
		t.Error("Parse accepted an expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := NewManager("test-secret", time.Hour).Parse("not.a.token"); err == nil {
		t.Error("Parse accepted garbage input")
	}
}
