// Package protocol implements the on-chain NFT sub-protocol: payload
// grammar, inference of List/Reprice/Buy transactions from normalized
// chain transactions, construction of unsigned protocol transactions,
// and history-dependent verification (nonces, price ceilings, payment
// splits).
package protocol

import (
	"errors"

	"lukechampine.com/uint128"
)

// Protocol amounts, in koinu (1 coin = 1e8 koinu).
var (
	// LinkAmount anchors an asset address output.
	LinkAmount = uint128.From64(100_000_000)
	// PlatformFee is paid to the platform on List and Reprice.
	PlatformFee = uint128.From64(10_000_000_000)
	// Dust is the minimum economical output value. Computed fee shares
	// below it are raised to exactly this value, at the buyer's expense.
	Dust = uint128.From64(100_000_000)
	// MinPrice is the absolute listing price floor.
	MinPrice = uint128.From64(100_000_000)
	// MaxPrice is the absolute listing price ceiling (1e12 coins).
	MaxPrice = uint128.From64(10_000_000_000).Mul64(10_000_000_000)
)

const (
	// TaxPerMille is the platform tax taken on every sale (2.5%).
	TaxPerMille = 25
	// MinRoyaltyPerMille and MaxRoyaltyPerMille bound the creator
	// royalty declared in a listing (2.5% to 10%).
	MinRoyaltyPerMille = 25
	MaxRoyaltyPerMille = 100
	// MaxPriceMultiply caps a declared price relative to the last sale
	// price in Buy and pre-revision Reprice transactions.
	MaxPriceMultiply = 10
)

// ErrVerification marks a structurally valid protocol transaction that
// violates a history-dependent invariant (nonce, price ceiling, payment
// split). The indexer skips such transactions silently.
var ErrVerification = errors.New("protocol verification failed")

// Kind discriminates the protocol transaction variants.
type Kind int

const (
	KindList Kind = iota + 1
	KindReprice
	KindBuy
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindReprice:
		return "reprice"
	case KindBuy:
		return "buy"
	default:
		return "unknown"
	}
}

// Output is a resolved transaction input or spendable output.
type Output struct {
	Address string
	Value   uint128.Uint128
}

// OutPoint references a spendable output of a prior transaction.
type OutPoint struct {
	TxID string
	Vout uint32
}

// Normalized is the uniform view of a decoded chain transaction:
// resolved inputs and spendable outputs in on-chain order, plus the raw
// payload of the data-carrier output when present. It is derived per
// transaction and never persisted.
type Normalized struct {
	TxID    string
	Vins    []Output
	Vouts   []Output
	Payload []byte
}

// Transaction is a recognized protocol transaction. Exactly one of the
// three kinds ever matches a given normalized transaction; inference is
// attempted in List, Reprice, Buy order.
type Transaction struct {
	Kind    Kind
	TxID    string
	Address string
	Owner   string
	Nonce   uint64
	Price   uint128.Uint128
	// Royalty is the creator royalty in per-mille. List only.
	Royalty uint64
	// Payments are the non-protocol outputs of a Buy (royalty/seller
	// split), in vout order.
	Payments []Output
	// Vouts retains the normalized spendable outputs so that follow-up
	// transactions can locate the asset link output to spend.
	Vouts []Output
}

// Unsigned is the input/output set of a protocol transaction to be
// funded and signed by the client wallet.
type Unsigned struct {
	Vins    []OutPoint
	Vouts   []Output
	Payload []byte
}

// Protocol recognizes and builds protocol transactions for one platform
// identity.
type Protocol struct {
	platform string
}

// New returns a Protocol bound to the platform fee address.
func New(platformAddress string) Protocol {
	return Protocol{platform: platformAddress}
}

// Platform returns the platform fee address.
func (p Protocol) Platform() string {
	return p.platform
}

// Infer attempts inference in the fixed List, Reprice, Buy order and
// returns the first match, or nil when the transaction is not a
// protocol transaction.
func (p Protocol) Infer(tx *Normalized) *Transaction {
	if t := p.InferList(tx); t != nil {
		return t
	}
	if t := p.InferReprice(tx); t != nil {
		return t
	}
	return p.InferBuy(tx)
}

// InferSale matches only the sale-establishing variants (List and Buy),
// used when reconstructing the last sale price from history.
func (p Protocol) InferSale(tx *Normalized) *Transaction {
	if t := p.InferList(tx); t != nil {
		return t
	}
	return p.InferBuy(tx)
}

// priceInBounds reports whether a declared price lies in
// [MinPrice, MaxPrice].
func priceInBounds(price uint128.Uint128) bool {
	return price.Cmp(MinPrice) >= 0 && price.Cmp(MaxPrice) <= 0
}

// uniqueAddresses reports whether all outputs carry pairwise-distinct
// addresses. Duplicate addresses make payment attribution ambiguous, so
// such transactions never match any variant.
func uniqueAddresses(vouts []Output) bool {
	seen := make(map[string]struct{}, len(vouts))
	for _, v := range vouts {
		if _, ok := seen[v.Address]; ok {
			return false
		}
		seen[v.Address] = struct{}{}
	}
	return true
}

// singleVinAddress returns the shared address of vins[from:], or false
// when the slice is empty or addresses differ.
func singleVinAddress(vins []Output, from int) (string, bool) {
	if len(vins) <= from {
		return "", false
	}
	addr := vins[from].Address
	for _, v := range vins[from+1:] {
		if v.Address != addr {
			return "", false
		}
	}
	return addr, true
}

// findExactOutput reports whether exactly one output pays value to
// address.
func findExactOutput(vouts []Output, address string, value uint128.Uint128) bool {
	count := 0
	for _, v := range vouts {
		if v.Address == address && v.Value.Equals(value) {
			count++
		}
	}
	return count == 1
}

// remainingOutputs returns the outputs whose address is not in exclude.
func remainingOutputs(vouts []Output, exclude ...string) []Output {
	rest := make([]Output, 0, len(vouts))
	for _, v := range vouts {
		excluded := false
		for _, e := range exclude {
			if v.Address == e {
				excluded = true
				break
			}
		}
		if !excluded {
			rest = append(rest, v)
		}
	}
	return rest
}
