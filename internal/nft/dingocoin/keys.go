// Package dingocoin provides the Dingocoin chain bindings: key and
// address handling, RPC access, and normalization of node transactions
// into the marketplace protocol's view.
package dingocoin

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// Dingocoin mainnet version bytes. Address decoding also accepts the
// legacy 0x16 prefix still found in old wallets.
const (
	addressVersion       = 0x1e
	legacyAddressVersion = 0x16
	wifVersion           = 0x9e
)

// Address derives the Dingocoin P2PKH address of a public key.
func Address(pub *btcec.PublicKey) string {
	return base58.CheckEncode(btcutil.Hash160(pub.SerializeCompressed()), addressVersion)
}

// PrivateKeyAddress derives the address of a private key.
func PrivateKeyAddress(priv *btcec.PrivateKey) string {
	return Address(priv.PubKey())
}

// IsAddress reports whether s is a well-formed Dingocoin address.
func IsAddress(s string) bool {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return false
	}
	if version != addressVersion && version != legacyAddressVersion {
		return false
	}
	return len(payload) == 20
}

// ToWIF encodes a private key in Dingocoin WIF with the compressed
// public key flag, the form the node wallet understands.
func ToWIF(priv *btcec.PrivateKey) string {
	payload := append(priv.Serialize(), 0x01)
	return base58.CheckEncode(payload, wifVersion)
}

// FromWIF decodes a Dingocoin WIF private key. Both the compressed
// (33 byte payload) and legacy uncompressed (32 byte) forms are
// accepted.
func FromWIF(wif string) (*btcec.PrivateKey, error) {
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	if version != wifVersion {
		return nil, fmt.Errorf("wif version %#x is not a dingocoin key", version)
	}
	if len(payload) != 32 && len(payload) != 33 {
		return nil, fmt.Errorf("wif payload length %d", len(payload))
	}
	priv, _ := btcec.PrivKeyFromBytes(payload[:32])
	return priv, nil
}

// Keychain derives asset keys from content hashes. Every asset address
// on the platform is the address of a key only the platform can
// recompute, which lets it co-sign spends of asset link outputs.
type Keychain struct {
	secret []byte
}

// NewKeychain creates a Keychain over the addressing secret.
func NewKeychain(secret []byte) Keychain {
	return Keychain{secret: secret}
}

// ContentKey derives the private key controlling the asset address of
// a content hash.
func (k Keychain) ContentKey(contentHash []byte) *btcec.PrivateKey {
	mac := hmac.New(sha256.New, k.secret)
	mac.Write(contentHash)
	priv, _ := btcec.PrivKeyFromBytes(mac.Sum(nil))
	return priv
}

// ContentAddress derives the asset address of a content hash.
func (k Keychain) ContentAddress(contentHash []byte) string {
	return PrivateKeyAddress(k.ContentKey(contentHash))
}

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// RecoverAddress recovers the signer address from a 65-byte compact
// signature over hash.
func RecoverAddress(hash, signature []byte) (string, error) {
	pub, compressed, err := ecdsa.RecoverCompact(signature, hash)
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}
	serialized := pub.SerializeCompressed()
	if !compressed {
		serialized = pub.SerializeUncompressed()
	}
	return base58.CheckEncode(btcutil.Hash160(serialized), addressVersion), nil
}

// SignCompact produces a 65-byte compact signature over hash,
// recoverable with RecoverAddress.
func SignCompact(priv *btcec.PrivateKey, hash []byte) []byte {
	return ecdsa.SignCompact(priv, hash, true)
}
