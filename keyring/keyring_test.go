package keyring

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vpncman/vpnc-manager/common"
)

func TestStore_SecretRoundtrip(t *testing.T) {
	s := newLocalStore(t.TempDir())

	if err := s.SetSecret("profile-1", "group-secret"); err != nil {
		t.Fatalf("SetSecret() error = %v", err)
	}

	got, err := s.Secret("profile-1")
	if err != nil {
		t.Fatalf("Secret() error = %v", err)
	}
	if got != "group-secret" {
		t.Errorf("Secret() = %q, want %q", got, "group-secret")
	}
}

func TestStore_PasswordRoundtrip(t *testing.T) {
	s := newLocalStore(t.TempDir())

	if err := s.SetPassword("profile-1", "hunter2"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}

	got, err := s.Password("profile-1")
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if got != "hunter2" {
		t.Errorf("Password() = %q, want %q", got, "hunter2")
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	s := newLocalStore(t.TempDir())

	if err := s.SetSecret("profile-1", "group-secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Password("profile-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Password() error = %v, want ErrNotFound when only the secret is set", err)
	}
	if s.Exists("profile-1") {
		t.Error("Exists() should require both slots")
	}

	if err := s.SetPassword("profile-1", "hunter2"); err != nil {
		t.Fatal(err)
	}
	if !s.Exists("profile-1") {
		t.Error("Exists() should be true with both slots set")
	}
}

func TestStore_NotFound(t *testing.T) {
	s := newLocalStore(t.TempDir())

	if _, err := s.Secret("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Secret() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := newLocalStore(t.TempDir())

	s.SetSecret("profile-1", "group-secret")
	s.SetPassword("profile-1", "hunter2")

	if err := s.Delete("profile-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Secret("profile-1"); !errors.Is(err, ErrNotFound) {
		t.Error("Secret() should be gone after Delete")
	}
	if _, err := s.Password("profile-1"); !errors.Is(err, ErrNotFound) {
		t.Error("Password() should be gone after Delete")
	}
}

func TestStore_EmptyValuesRejected(t *testing.T) {
	s := newLocalStore(t.TempDir())

	if err := s.SetSecret("profile-1", ""); err == nil {
		t.Error("SetSecret() should reject an empty value")
	}
	if err := s.SetPassword("", "hunter2"); err == nil {
		t.Error("SetPassword() should reject an empty profile ID")
	}
}

func TestStore_FileIsEncrypted(t *testing.T) {
	dir := t.TempDir()
	s := newLocalStore(dir)

	if err := s.SetPassword("profile-1", "very-secret-password"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, common.CredentialsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "very-secret-password") {
		t.Error("credentials file should not contain the plaintext password")
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s1 := newLocalStore(dir)
	if err := s1.SetSecret("profile-1", "group-secret"); err != nil {
		t.Fatal(err)
	}

	s2 := newLocalStore(dir)
	got, err := s2.Secret("profile-1")
	if err != nil {
		t.Fatalf("Secret() from fresh store error = %v", err)
	}
	if got != "group-secret" {
		t.Errorf("Secret() = %q, want %q", got, "group-secret")
	}
}
