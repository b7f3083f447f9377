package protocol

import (
	"fmt"

	"lukechampine.com/uint128"
)

// PaymentDetails reports the platform tax and creator royalty settled by
// a verified Buy, after dust flooring.
type PaymentDetails struct {
	Tax     uint128.Uint128
	Royalty uint128.Uint128
}

// perMille computes floor(value * rate / 1000).
func perMille(value uint128.Uint128, rate uint64) uint128.Uint128 {
	return value.Mul64(rate).Div64(1000)
}

// paymentSplit computes the tax/royalty/seller settlement for a sale at
// price. A share below the dust threshold is not deducted from the
// seller but its output is raised to exactly the dust threshold, so the
// total outflow can exceed the sale price by up to two dust amounts;
// the buyer absorbs the surplus.
func paymentSplit(price uint128.Uint128, royaltyPerMille uint64) (tax, royalty, seller uint128.Uint128) {
	tax = perMille(price, TaxPerMille)
	royalty = perMille(price, royaltyPerMille)

	seller = price
	if tax.Cmp(Dust) >= 0 {
		seller = seller.Sub(tax)
	} else {
		tax = Dust
	}
	if royalty.Cmp(Dust) >= 0 {
		seller = seller.Sub(royalty)
	} else {
		royalty = Dust
	}
	return tax, royalty, seller
}

// InferBuy recognizes a Buy transaction: the same input shape as
// Reprice, a platform output of at least the link amount (the tax), an
// exact link-amount output back to the asset address, and one or two
// remaining payment outputs.
func (p Protocol) InferBuy(tx *Normalized) *Transaction {
	if tx.Payload == nil {
		return nil
	}
	pl, ok := parseActionPayload(tx.Payload, tagBuy)
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

	// A creator or current holder buying their own asset collides on
	// output addresses and is rejected here.
	if !uniqueAddresses(tx.Vouts) {
		return nil
	}

	platformCount := 0
	for _, v := range tx.Vouts {
		if v.Address == p.platform && v.Value.Cmp(LinkAmount) >= 0 {
			platformCount++
		}
	}
	if platformCount != 1 {
		return nil
	}
	if !findExactOutput(tx.Vouts, assetVin.Address, LinkAmount) {
		return nil
	}

	payments := remainingOutputs(tx.Vouts, p.platform, assetVin.Address, owner)
	if len(payments) != 1 && len(payments) != 2 {
		return nil
	}

	return &Transaction{
		Kind:     KindBuy,
		TxID:     tx.TxID,
		Address:  assetVin.Address,
		Owner:    owner,
		Nonce:    pl.nonce,
		Price:    pl.price,
		Payments: payments,
		Vouts:    tx.Vouts,
	}
}

// CreateBuy builds the unsigned transaction purchasing the asset from
// its current holder. Settlement is always at sellTx.Price; the declared
// price is only an upper-bound hint checked against the ceiling.
func (p Protocol) CreateBuy(listTx, sellTx *Transaction, address string, nonce uint64, price uint128.Uint128) (*Unsigned, error) {
	if price.Cmp(MinPrice) < 0 || price.Cmp(MaxPrice) > 0 {
		return nil, fmt.Errorf("buy price %s not in accepted range", price)
	}
	if price.Cmp(sellTx.Price.Mul64(MaxPriceMultiply)) > 0 {
		return nil, fmt.Errorf("buy price %s above ceiling", price)
	}

	assetVin, err := assetOutPoint(sellTx, address)
	if err != nil {
		return nil, err
	}

	tax, royalty, seller := paymentSplit(sellTx.Price, listTx.Royalty)

	vouts := []Output{
		{Address: p.platform, Value: tax},
		{Address: address, Value: LinkAmount},
	}
	if listTx.Owner == sellTx.Owner {
		// First sale: the creator still holds, royalty and proceeds
		// are combined into one output.
		vouts = append(vouts, Output{Address: listTx.Owner, Value: royalty.Add(seller)})
	} else {
		vouts = append(vouts,
			Output{Address: listTx.Owner, Value: royalty},
			Output{Address: sellTx.Owner, Value: seller},
		)
	}

	return &Unsigned{
		Vins:    []OutPoint{assetVin},
		Vouts:   vouts,
		Payload: formatActionPayload(tagBuy, nonce, price),
	}, nil
}

// VerifyBuyPayments checks a recognized Buy against the listing and the
// last sale-establishing transaction. The payment outputs must match the
// computed split exactly; with two outputs both orderings are tried. On
// success the settled tax and royalty are returned.
func (p Protocol) VerifyBuyPayments(listTx, sellTx, tx *Transaction) (*PaymentDetails, error) {
	if tx.Nonce != sellTx.Nonce+1 {
		return nil, fmt.Errorf("%w: nonce %d does not follow %d", ErrVerification, tx.Nonce, sellTx.Nonce)
	}
	if tx.Price.Cmp(sellTx.Price.Mul64(MaxPriceMultiply)) > 0 {
		return nil, fmt.Errorf("%w: price %s above ceiling", ErrVerification, tx.Price)
	}

	tax, royalty, seller := paymentSplit(sellTx.Price, listTx.Royalty)
	details := &PaymentDetails{Tax: tax, Royalty: royalty}

	if listTx.Owner == sellTx.Owner {
		// First sale: inference guarantees at most two payment
		// outputs, a combined payout means exactly one.
		if len(tx.Payments) != 1 {
			return nil, fmt.Errorf("expected one combined payment output in %s, got %d", tx.TxID, len(tx.Payments))
		}
		pay := tx.Payments[0]
		if pay.Address != listTx.Owner || !pay.Value.Equals(royalty.Add(seller)) {
			return nil, fmt.Errorf("%w: combined payment mismatch", ErrVerification)
		}
		return details, nil
	}

	if len(tx.Payments) != 2 {
		return nil, fmt.Errorf("expected two payment outputs in %s, got %d", tx.TxID, len(tx.Payments))
	}
	for i := 0; i < 2; i++ {
		if tx.Payments[i].Address == listTx.Owner && tx.Payments[i].Value.Equals(royalty) &&
			tx.Payments[1-i].Address == sellTx.Owner && tx.Payments[1-i].Value.Equals(seller) {
			return details, nil
		}
	}
	return nil, fmt.Errorf("%w: payment split mismatch", ErrVerification)
}
