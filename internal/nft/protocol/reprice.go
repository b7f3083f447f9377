package protocol

import (
	"fmt"

	"lukechampine.com/uint128"
)

// InferReprice recognizes a Reprice transaction: input[0] spends the
// asset's own link output, the remaining inputs share the owner's
// address, and the outputs mirror the List shape (platform fee plus a
// single link-amount output re-anchoring the asset).
func (p Protocol) InferReprice(tx *Normalized) *Transaction {
	if tx.Payload == nil {
		return nil
	}
	pl, ok := parseActionPayload(tx.Payload, tagReprice)
	if !ok {
		return nil
	}
	if !priceInBounds(pl.price) {
		return nil
	}

	if len(tx.Vins) < 2 {
		return nil
	}
	assetVin := tx.Vins[0]
	owner, ok := singleVinAddress(tx.Vins, 1)
	if !ok {
		return nil
	}
	if assetVin.Address == owner || assetVin.Address == p.platform || owner == p.platform {
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
		Kind:    KindReprice,
		TxID:    tx.TxID,
		Address: asset.Address,
		Owner:   owner,
		Nonce:   pl.nonce,
		Price:   pl.price,
		Vouts:   tx.Vouts,
	}
}

// repriceCeiling returns the maximum price a reprice may declare. Before
// the NFTP1 revision the caller passes the last sale transaction and the
// ceiling is MaxPriceMultiply times its price; at and after the revision
// the caller passes nil and a reprice may only hold or lower the price.
func repriceCeiling(sellTx, lastTx *Transaction) uint128.Uint128 {
	if sellTx == nil {
		return lastTx.Price
	}
	return sellTx.Price.Mul64(MaxPriceMultiply)
}

// CreateReprice builds the unsigned transaction that respends the
// asset's current link output with a new declared price.
func (p Protocol) CreateReprice(sellTx, lastTx *Transaction, address string, nonce uint64, price uint128.Uint128) (*Unsigned, error) {
	if price.Cmp(MinPrice) < 0 || price.Cmp(MaxPrice) > 0 {
		return nil, fmt.Errorf("reprice price %s not in accepted range", price)
	}
	if price.Cmp(repriceCeiling(sellTx, lastTx)) > 0 {
		return nil, fmt.Errorf("reprice price %s above ceiling", price)
	}

	assetVin, err := assetOutPoint(lastTx, address)
	if err != nil {
		return nil, err
	}

	return &Unsigned{
		Vins: []OutPoint{assetVin},
		Vouts: []Output{
			{Address: p.platform, Value: PlatformFee},
			{Address: address, Value: LinkAmount},
		},
		Payload: formatActionPayload(tagReprice, nonce, price),
	}, nil
}

// VerifyReprice checks a recognized Reprice against the asset's history:
// the nonce must extend the chain by one, the owner must be unchanged
// and the declared price must respect the phase-dependent ceiling.
func (p Protocol) VerifyReprice(sellTx, lastTx, tx *Transaction) error {
	if tx.Nonce != lastTx.Nonce+1 {
		return fmt.Errorf("%w: nonce %d does not follow %d", ErrVerification, tx.Nonce, lastTx.Nonce)
	}
	if tx.Price.Cmp(repriceCeiling(sellTx, lastTx)) > 0 {
		return fmt.Errorf("%w: price %s above ceiling", ErrVerification, tx.Price)
	}
	if tx.Owner != lastTx.Owner {
		return fmt.Errorf("%w: owner %s is not the holder", ErrVerification, tx.Owner)
	}
	return nil
}

// assetOutPoint locates the unique output of tx anchoring the asset
// address. The prior transaction was verified to carry exactly one such
// output, so anything else is an internal invariant breach.
func assetOutPoint(tx *Transaction, address string) (OutPoint, error) {
	found := -1
	for i, v := range tx.Vouts {
		if v.Address != address {
			continue
		}
		if found >= 0 {
			return OutPoint{}, fmt.Errorf("transaction %s anchors asset %s more than once", tx.TxID, address)
		}
		found = i
	}
	if found < 0 {
		return OutPoint{}, fmt.Errorf("transaction %s does not anchor asset %s", tx.TxID, address)
	}
	return OutPoint{TxID: tx.TxID, Vout: uint32(found)}, nil
}
