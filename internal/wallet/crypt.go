package wallet

import (
	"bytes"
	"io"

	"filippo.io/age"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// encrypt encrypts plaintext using age with a password-based recipient.
func encrypt(plaintext, password []byte) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(string(password))
	if err != nil {
		return nil, signeterr.Wrap(err, "creating scrypt recipient")
	}

	buf := &bytes.Buffer{}
	w, err := age.Encrypt(buf, recipient)
	if err != nil {
		return nil, signeterr.Wrap(err, "initializing encryption")
	}

	if _, err := w.Write(plaintext); err != nil {
		return nil, signeterr.Wrap(err, "writing encrypted data")
	}

	if err := w.Close(); err != nil {
		return nil, signeterr.Wrap(err, "finalizing encryption")
	}

	return buf.Bytes(), nil
}

// decrypt decrypts ciphertext using age with a password-based identity.
func decrypt(ciphertext, password []byte) ([]byte, error) {
	identity, err := age.NewScryptIdentity(string(password))
	if err != nil {
		return nil, signeterr.Wrap(err, "creating scrypt identity")
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, signeterr.ErrDecryptionFailed
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, signeterr.ErrDecryptionFailed
	}

	return plaintext, nil
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
