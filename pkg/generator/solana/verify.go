package solana

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrAddressMismatch   = errors.New("private key does not derive the stored address")
	ErrSignatureInvalid  = errors.New("signature check failed")
)

// verifyMessage is signed and verified to prove the keypair is usable.
var verifyMessage = []byte("minthunter keypair check")

// VerifyKeypair checks that a stored Base58 private key derives pubKey and
// produces signatures that verify under it.
func VerifyKeypair(pubKey, privateKey string) error {
	raw, err := base58.Decode(privateKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if len(raw) != KeypairSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(raw), KeypairSize)
	}

	key := solanago.PrivateKey(raw)
	derived := key.PublicKey()
	if derived.String() != pubKey {
		return fmt.Errorf("%w: derived %s, stored %s", ErrAddressMismatch, derived, pubKey)
	}

	stored, err := solanago.PublicKeyFromBase58(pubKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAddressMismatch, err)
	}

	sig, err := key.Sign(verifyMessage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	if !sig.Verify(stored, verifyMessage) {
		return ErrSignatureInvalid
	}
	return nil
}
