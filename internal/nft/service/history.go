package service

import (
	"context"
	"fmt"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
)

// inferRecord fetches the chain transaction behind a ledger record and
// re-infers it. Every stored record was inferred once before, so a
// failure here means the node and the ledger disagree.
func inferRecord(ctx context.Context, source ChainSource, p protocol.Protocol, txid string) (*protocol.Transaction, error) {
	norm, err := source.NFTTransaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("fetch ledger transaction %s: %w", txid, err)
	}
	tx := p.Infer(norm)
	if tx == nil {
		return nil, fmt.Errorf("ledger transaction %s no longer infers", txid)
	}
	return tx, nil
}

// saleHistory reconstructs the two reference points of an asset's
// ledger: the most recent transaction of any kind, and the most recent
// sale-establishing transaction (the listing or the last completed
// buy). The ledger always starts with a listing, so a sale is always
// found.
func saleHistory(ctx context.Context, source ChainSource, p protocol.Protocol, records []model.TransactionRecord) (lastTx, sellTx *protocol.Transaction, err error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty asset ledger")
	}

	lastTx, err = inferRecord(ctx, source, p, records[len(records)-1].TxID)
	if err != nil {
		return nil, nil, err
	}

	for i := len(records) - 1; i >= 0; i-- {
		norm, err := source.NFTTransaction(ctx, records[i].TxID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch ledger transaction %s: %w", records[i].TxID, err)
		}
		if tx := p.InferSale(norm); tx != nil {
			return lastTx, tx, nil
		}
	}
	return nil, nil, fmt.Errorf("no sale transaction in ledger of %s", records[0].Address)
}

// listingOf re-infers the asset's listing from the first ledger record.
func listingOf(ctx context.Context, source ChainSource, p protocol.Protocol, records []model.TransactionRecord) (*protocol.Transaction, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty asset ledger")
	}
	norm, err := source.NFTTransaction(ctx, records[0].TxID)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", records[0].TxID, err)
	}
	listTx := p.InferList(norm)
	if listTx == nil {
		return nil, fmt.Errorf("first ledger transaction %s is not a listing", records[0].TxID)
	}
	return listTx, nil
}
