package sshkey

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// CommandRunner is the subset of the command capability needed here.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr string, err error)
}

// Key describes the deploy key the service authenticates to the git host with.
type Key struct {
	PrivateKeyPath string
	PublicKey      string // authorized_keys line
	Fingerprint    string // SHA256:...
}

const keyFileName = "id_ed25519"

// Ensure makes sure an ed25519 deploy key exists under dir, generating one
// with ssh-keygen on first run, and returns its public half with the SHA256
// fingerprint so an operator can register it with the forge.
func Ensure(ctx context.Context, runner CommandRunner, dir string) (*Key, error) {
	keyPath := filepath.Join(dir, keyFileName)
	pubPath := keyPath + ".pub"

	if _, err := os.Stat(pubPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create key directory: %w", err)
		}
		_, stderr, err := runner.Run(ctx, dir, "ssh-keygen",
			"-t", "ed25519", "-f", keyPath, "-N", "", "-C", "repo-mirror")
		if err != nil {
			return nil, fmt.Errorf("ssh-keygen failed: %w (%s)", err, strings.TrimSpace(stderr))
		}
	}

	pub, err := os.ReadFile(pubPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	fingerprint, err := FingerprintOf(string(pub))
	if err != nil {
		return nil, err
	}

	return &Key{
		PrivateKeyPath: keyPath,
		PublicKey:      strings.TrimSpace(string(pub)),
		Fingerprint:    fingerprint,
	}, nil
}

// FingerprintOf returns the SHA256 fingerprint of an authorized_keys line.
func FingerprintOf(authorizedKey string) (string, error) {
	parsed, _, _, _, err := ssh.ParseAuthorizedKey([]byte(authorizedKey))
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}
	return ssh.FingerprintSHA256(parsed), nil
}
