package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// defaultPassphrase obfuscates stored blobs against casual inspection.
// Anyone with the source can decrypt; this is not access control.
const defaultPassphrase = "laa-royba-hris-secure-key"

const (
	codecSaltSize       = 16
	codecKeySize        = 32
	codecKDFIterations  = 4096
	codecMinPayloadSize = codecSaltSize + 12
)

var ErrMalformedBlob = errors.New("malformed encrypted blob")

// Codec serializes a record collection to canonical JSON and seals it
// with AES-256-GCM under a key derived from a fixed passphrase. The
// round-trip law Decode(Encode(v)) == v holds for any JSON-serializable
// value; decoding anything else fails with ErrMalformedBlob.
type Codec struct {
	passphrase []byte
}

func NewCodec() *Codec {
	return NewCodecWithPassphrase(defaultPassphrase)
}

func NewCodecWithPassphrase(passphrase string) *Codec {
	return &Codec{passphrase: []byte(passphrase)}
}

func (codec *Codec) Encode(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal record collection: %w", err)
	}

	salt := make([]byte, codecSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	sealer, err := codec.sealer(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, sealer.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	payload := append(salt, nonce...)
	payload = sealer.Seal(payload, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(payload), nil
}

func (codec *Codec) Decode(encoded string, target any) error {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ErrMalformedBlob
	}

	if len(payload) < codecMinPayloadSize {
		return ErrMalformedBlob
	}

	sealer, err := codec.sealer(payload[:codecSaltSize])
	if err != nil {
		return err
	}
	if len(payload) < codecSaltSize+sealer.NonceSize() {
		return ErrMalformedBlob
	}

	nonce := payload[codecSaltSize : codecSaltSize+sealer.NonceSize()]
	ciphertext := payload[codecSaltSize+sealer.NonceSize():]

	plaintext, err := sealer.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrMalformedBlob
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return ErrMalformedBlob
	}
	return nil
}

func (codec *Codec) sealer(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(codec.passphrase, salt, codecKDFIterations, codecKeySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	sealer, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init sealer: %w", err)
	}
	return sealer, nil
}
