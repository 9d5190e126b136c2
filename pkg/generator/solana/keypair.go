// Package solana provides the Solana keypair source for the vanity search.
// A Solana address is the Base58-encoded ed25519 public key.
package solana

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/Amr-9/MintHunter/pkg/generator"
)

// KeypairSize is the length of an exported Solana keypair (seed + pubkey).
const KeypairSize = 64

// Source generates random Solana keypairs. The zero value is ready to use
// and safe for concurrent use by many workers.
type Source struct{}

// NewSource returns a Solana keypair source.
func NewSource() *Source {
	return &Source{}
}

// Generate returns a fresh random keypair.
func (s *Source) Generate() (generator.Keypair, error) {
	privKey, err := solanago.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	return generator.Keypair(privKey), nil
}

// Address returns the Base58 public address of the keypair.
func (s *Source) Address(kp generator.Keypair) string {
	return solanago.PrivateKey(kp).PublicKey().String()
}

// EncodePrivateKey returns the Base58 encoding of the full 64-byte keypair,
// the format accepted by Solana CLI and wallet imports.
func EncodePrivateKey(kp generator.Keypair) string {
	return base58.Encode(kp)
}
