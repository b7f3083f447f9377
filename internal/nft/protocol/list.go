package protocol

import (
	"fmt"

	"lukechampine.com/uint128"
)

// InferList recognizes a List transaction: all inputs from one address
// (the creator), a platform fee output, and after removing the fee and
// the creator's change exactly one remaining output paying the link
// amount, whose address becomes the asset address.
func (p Protocol) InferList(tx *Normalized) *Transaction {
	if tx.Payload == nil {
		return nil
	}
	pl, ok := parseListPayload(tx.Payload)
	if !ok {
		return nil
	}
	if !priceInBounds(pl.price) {
		return nil
	}
	if pl.royalty < MinRoyaltyPerMille || pl.royalty > MaxRoyaltyPerMille {
		return nil
	}

	owner, ok := singleVinAddress(tx.Vins, 0)
	if !ok {
		return nil
	}
	if !uniqueAddresses(tx.Vouts) {
		return nil
	}
	if !findExactOutput(tx.Vouts, p.platform, PlatformFee) {
		return nil
	}

	candidates := remainingOutputs(tx.Vouts, p.platform, owner)
	if len(candidates) != 1 {
		return nil
	}
	asset := candidates[0]
	if !asset.Value.Equals(LinkAmount) {
		return nil
	}

	return &Transaction{
		Kind:    KindList,
		TxID:    tx.TxID,
		Address: asset.Address,
		Owner:   owner,
		Nonce:   pl.nonce,
		Price:   pl.price,
		Royalty: pl.royalty,
		Vouts:   tx.Vouts,
	}
}

// CreateList builds the unsigned output set of a new listing: the
// platform fee, the asset link output and the List payload. The wallet
// funds the transaction and adds its own change.
func (p Protocol) CreateList(address string, price uint128.Uint128, royalty uint64) (*Unsigned, error) {
	if !priceInBounds(price) {
		return nil, fmt.Errorf("listing price %s not in accepted range", price)
	}
	if royalty < MinRoyaltyPerMille || royalty > MaxRoyaltyPerMille {
		return nil, fmt.Errorf("royalty %d not in accepted range", royalty)
	}
	return &Unsigned{
		Vouts: []Output{
			{Address: p.platform, Value: PlatformFee},
			{Address: address, Value: LinkAmount},
		},
		Payload: formatListPayload(price, royalty),
	}, nil
}
