// Package keyring provides secure credential storage for VPNC Manager.
// It uses the system keyring when available, falling back to encrypted
// local file storage when not. Each profile owns two credential slots:
// the IPSec group secret and the Xauth password.
package keyring

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/vpncman/vpnc-manager/common"
)

// serviceName is the identifier used in the system keyring.
const serviceName = "vpnc-manager"

// Common errors returned by credential operations.
var (
	ErrNotFound    = errors.New("credential not found")
	ErrAccess      = errors.New("keyring access denied")
	ErrUnavailable = errors.New("keyring service unavailable")
)

// Store holds per-profile credentials. It probes the system keyring at
// construction and transparently falls back to an AES-GCM encrypted
// local file when the keyring is unavailable.
type Store struct {
	service string

	mu        sync.RWMutex
	useLocal  bool
	local     map[string]string
	localFile string
	key       []byte
}

// New creates a credential store backed by the system keyring where
// possible, with the encrypted file fallback under the application
// configuration directory.
func New() *Store {
	s := &Store{service: serviceName}

	probe := serviceName + "-probe"
	if err := keyring.Set(s.service, probe, "probe"); err == nil {
		keyring.Delete(s.service, probe)
	} else {
		s.enableLocal(defaultLocalDir())
	}
	return s
}

// newLocalStore creates a store that only uses the encrypted file in dir.
func newLocalStore(dir string) *Store {
	s := &Store{service: serviceName}
	s.enableLocal(dir)
	return s
}

func defaultLocalDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", common.ConfigDirName)
}

func (s *Store) enableLocal(dir string) {
	os.MkdirAll(dir, 0700)
	s.useLocal = true
	s.localFile = filepath.Join(dir, common.CredentialsFileName)

	// Derive the encryption key from machine-specific data.
	hostname, _ := os.Hostname()
	keyData := fmt.Sprintf("%s-%s-%s-%d", serviceName, hostname, machineID(), os.Getuid())
	hash := sha256.Sum256([]byte(keyData))
	s.key = hash[:]

	s.local = make(map[string]string)
	s.loadLocal()
}

func machineID() string {
	data, err := os.ReadFile("/etc/machine-id")
	if err == nil {
		return strings.TrimSpace(string(data))
	}
	return "default-machine-id"
}

// Credential slot keys. The profile ID namespaces both slots.
func secretKey(profileID string) string   { return profileID + "/ipsec-secret" }
func passwordKey(profileID string) string { return profileID + "/xauth-password" }

// SetSecret saves the IPSec group secret for a profile.
func (s *Store) SetSecret(profileID, secret string) error {
	return s.set(secretKey(profileID), secret)
}

// Secret retrieves the IPSec group secret for a profile.
func (s *Store) Secret(profileID string) (string, error) {
	return s.get(secretKey(profileID))
}

// SetPassword saves the Xauth password for a profile.
func (s *Store) SetPassword(profileID, password string) error {
	return s.set(passwordKey(profileID), password)
}

// Password retrieves the Xauth password for a profile.
func (s *Store) Password(profileID string) (string, error) {
	return s.get(passwordKey(profileID))
}

// Delete removes both credential slots for a profile.
func (s *Store) Delete(profileID string) error {
	for _, key := range []string{secretKey(profileID), passwordKey(profileID)} {
		if err := s.delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Exists checks whether both credential slots are present for a profile.
func (s *Store) Exists(profileID string) bool {
	if _, err := s.Secret(profileID); err != nil {
		return false
	}
	_, err := s.Password(profileID)
	return err == nil
}

func (s *Store) set(key, value string) error {
	if key == "" {
		return errors.New("credential key cannot be empty")
	}
	if value == "" {
		return errors.New("credential value cannot be empty")
	}

	if s.useLocal {
		s.mu.Lock()
		s.local[key] = value
		s.mu.Unlock()
		return s.saveLocal()
	}

	if err := keyring.Set(s.service, key, value); err != nil {
		// Fallback to local storage
		s.enableLocal(defaultLocalDir())
		s.mu.Lock()
		s.local[key] = value
		s.mu.Unlock()
		return s.saveLocal()
	}
	return nil
}

func (s *Store) get(key string) (string, error) {
	if key == "" {
		return "", errors.New("credential key cannot be empty")
	}

	if s.useLocal {
		s.mu.RLock()
		value, exists := s.local[key]
		s.mu.RUnlock()
		if !exists {
			return "", ErrNotFound
		}
		return value, nil
	}

	value, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", ErrNotFound
	}
	return value, nil
}

func (s *Store) delete(key string) error {
	if s.useLocal {
		s.mu.Lock()
		delete(s.local, key)
		s.mu.Unlock()
		return s.saveLocal()
	}

	keyring.Delete(s.service, key)
	return nil
}

func (s *Store) loadLocal() {
	data, err := os.ReadFile(s.localFile)
	if err != nil {
		return
	}

	decrypted, err := s.decrypt(data)
	if err != nil {
		return
	}

	json.Unmarshal(decrypted, &s.local)
}

func (s *Store) saveLocal() error {
	s.mu.RLock()
	data, err := json.Marshal(s.local)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(data)
	if err != nil {
		return err
	}

	return os.WriteFile(s.localFile, encrypted, 0600)
}

func (s *Store) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return []byte(base64.StdEncoding.EncodeToString(ciphertext)), nil
}

func (s *Store) decrypt(data []byte) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
