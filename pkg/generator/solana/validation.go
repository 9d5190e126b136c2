package solana

import (
	"fmt"
	"strings"

	"github.com/Amr-9/MintHunter/pkg/generator"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MaxAddressLen is the longest Base58 encoding of a 32-byte public key.
const MaxAddressLen = 44

// InvalidBase58Chars returns any invalid Base58 characters in the input.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// ValidateSuffix rejects suffixes no Solana address can ever end with.
// Such a suffix would make the search run forever.
func ValidateSuffix(suffix string) error {
	if suffix == "" {
		return generator.ErrEmptySuffix
	}
	if len(suffix) > MaxAddressLen {
		return fmt.Errorf("suffix %q is longer than a Solana address (%d chars)", suffix, MaxAddressLen)
	}
	if invalid := InvalidBase58Chars(suffix); len(invalid) > 0 {
		return fmt.Errorf("suffix %q has invalid Base58 character(s) %q (not allowed: 0, O, I, l)", suffix, string(invalid))
	}
	return nil
}
