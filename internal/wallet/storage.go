package wallet

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mrz1836/signet/internal/fileutil"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

const (
	// storeFileName is the wallet store file within the home directory.
	storeFileName = "wallets.age"

	storeFilePermissions = 0o600
	storeDirPermissions  = 0o750
)

// Def is the serializable definition of one wallet. Secret material
// (mnemonics, raw keys) only ever touches disk inside the encrypted
// store.
type Def struct {
	Name       string   `json:"name"`
	Kind       Kind     `json:"kind"`
	Dev        bool     `json:"dev,omitempty"`
	Mnemonic   string   `json:"mnemonic,omitempty"`
	Passphrase string   `json:"passphrase,omitempty"`
	Count      int      `json:"count,omitempty"`
	Keys       []string `json:"keys,omitempty"`
	Paths      []string `json:"paths,omitempty"`
	Addresses  []string `json:"addresses,omitempty"`
}

// storeFile is the on-disk (pre-encryption) store layout.
type storeFile struct {
	Version int    `json:"version"`
	Current string `json:"current,omitempty"`
	Wallets []Def  `json:"wallets"`
}

// Store persists wallet definitions as one age-encrypted file.
type Store struct {
	path string
}

// NewStore creates a store rooted at the given home directory.
func NewStore(home string) *Store {
	return &Store{path: filepath.Join(home, storeFileName)}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the store file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save encrypts and writes the wallet definitions. The password should
// be zeroed by the caller after this call returns.
func (s *Store) Save(defs []Def, current string, password []byte) error {
	plaintext, err := json.Marshal(storeFile{
		Version: 1,
		Current: current,
		Wallets: defs,
	})
	if err != nil {
		return signeterr.Wrap(err, "marshaling wallet store")
	}
	defer zeroBytes(plaintext)
	lockMemory(plaintext)
	defer unlockMemory(plaintext)

	ciphertext, err := encrypt(plaintext, password)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirPermissions); err != nil {
		return signeterr.Wrap(err, "creating store directory")
	}

	if err := fileutil.WriteAtomic(s.path, ciphertext, storeFilePermissions); err != nil {
		return signeterr.Wrap(err, "writing wallet store")
	}
	return nil
}

// Load decrypts and parses the wallet definitions. The password should
// be zeroed by the caller after this call returns.
func (s *Store) Load(password []byte) ([]Def, string, error) {
	ciphertext, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", signeterr.WithDetails(signeterr.ErrStoreNotFound, map[string]string{
				"path": s.path,
			})
		}
		return nil, "", signeterr.Wrap(err, "reading wallet store")
	}

	plaintext, err := decrypt(ciphertext, password)
	if err != nil {
		return nil, "", err
	}
	defer zeroBytes(plaintext)
	lockMemory(plaintext)
	defer unlockMemory(plaintext)

	var sf storeFile
	if err := json.Unmarshal(plaintext, &sf); err != nil {
		return nil, "", signeterr.Wrap(signeterr.ErrDecryptionFailed, "parsing wallet store")
	}

	return sf.Wallets, sf.Current, nil
}

// BuildDirectory instantiates a Directory from stored definitions.
func BuildDirectory(defs []Def, current string) (*Directory, error) {
	dir := NewDirectory()

	for _, def := range defs {
		w, err := buildWallet(def)
		if err != nil {
			return nil, signeterr.Wrap(err, "building wallet %q", def.Name)
		}
		dir.Add(w)
	}

	if current != "" {
		if err := dir.SetCurrent(current); err != nil {
			return nil, err
		}
	}
	return dir, nil
}

func buildWallet(def Def) (Wallet, error) {
	switch def.Kind {
	case KindHD:
		return NewHDWallet(def.Name, def.Mnemonic, def.Passphrase, def.Count, def.Dev)
	case KindPlaintext:
		return NewPlaintextWallet(def.Name, def.Keys)
	case KindLedger:
		addrs := make([]common.Address, len(def.Addresses))
		for i, a := range def.Addresses {
			addrs[i] = common.HexToAddress(a)
		}
		return NewLedgerWallet(def.Name, def.Paths, addrs)
	default:
		return nil, signeterr.WithDetails(signeterr.ErrInvalidInput, map[string]string{
			"kind": string(def.Kind),
		})
	}
}
