package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dingocoin/nft-marketplace-backend/internal/clock"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
)

const (
	// protocolGenesisHeight is the first block the protocol can appear
	// in; indexing never starts earlier.
	protocolGenesisHeight = 430000
	// repriceRevisionHeight activates the revised reprice rule: from
	// this height a repricing is bounded by the previous declared price
	// instead of ten times the last sale price.
	repriceRevisionHeight = 511272

	chainPollInterval = time.Second
)

// IndexerService folds confirmed protocol transactions into the
// repository, one block at a time in transaction-id order, and publishes
// the resulting asset state.
type IndexerService struct {
	repo      Repository
	source    ChainSource
	publisher Publisher
	protocol  protocol.Protocol
	metrics   IndexerMetrics
	logger    *zap.Logger

	height atomic.Uint64
}

func NewIndexerService(
	repo Repository,
	source ChainSource,
	publisher Publisher,
	p protocol.Protocol,
	metrics IndexerMetrics,
	logger *zap.Logger,
) *IndexerService {
	return &IndexerService{
		repo:      repo,
		source:    source,
		publisher: publisher,
		protocol:  p,
		metrics:   metrics,
		logger:    logger,
	}
}

// Height returns the last fully indexed block height. Run seeds it
// from the resumed ledger position before the first poll; it is zero
// only before Run starts.
func (s *IndexerService) Height() uint64 {
	return s.height.Load()
}

// Run indexes from the block after the highest recorded transaction, or
// from the protocol genesis on an empty repository, and then follows the
// chain tip.
func (s *IndexerService) Run(ctx context.Context) error {
	next := uint64(protocolGenesisHeight)
	maxHeight, err := s.repo.MaxTransactionHeight(ctx)
	if err != nil {
		return err
	}
	if maxHeight != nil {
		next = *maxHeight + 1
	}
	// Seed the height cursor before serving: phase decisions made
	// between startup and the first new block must see the resumed
	// position, not zero.
	s.height.Store(next - 1)
	if s.metrics != nil {
		s.metrics.SetHeight(next - 1)
	}
	s.logger.Info("starting indexer", zap.Uint64("height", next))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		latest, err := s.source.LatestHeight(ctx)
		if err != nil {
			return err
		}
		if next > latest {
			if err := clock.Sleep(ctx, chainPollInterval); err != nil {
				return err
			}
			continue
		}

		if err := s.indexBlock(ctx, next); err != nil {
			return fmt.Errorf("index block %d: %w", next, err)
		}
		s.height.Store(next)
		if s.metrics != nil {
			s.metrics.SetHeight(next)
		}
		next++
	}
}

// indexBlock processes one confirmed block. Within a block transactions
// are folded in lexicographic txid order.
func (s *IndexerService) indexBlock(ctx context.Context, height uint64) error {
	txids, err := s.source.BlockTxIDs(ctx, height)
	if err != nil {
		return err
	}
	sort.Strings(txids)

	for _, txid := range txids {
		if err := s.indexTransaction(ctx, height, txid); err != nil {
			return err
		}
	}
	return nil
}

func (s *IndexerService) indexTransaction(ctx context.Context, height uint64, txid string) error {
	norm, err := s.source.NFTTransaction(ctx, txid)
	if err != nil {
		return err
	}
	tx := s.protocol.Infer(norm)
	if tx == nil {
		return nil
	}

	logger := s.logger.With(
		zap.Uint64("height", height),
		zap.String("txid", txid),
		zap.Stringer("kind", tx.Kind),
	)

	switch tx.Kind {
	case protocol.KindList:
		err = s.applyList(ctx, height, tx)
	case protocol.KindReprice:
		err = s.applyReprice(ctx, height, tx)
	case protocol.KindBuy:
		err = s.applyBuy(ctx, height, tx)
	}
	if err != nil {
		if errors.Is(err, errSkipTransaction) {
			logger.Debug("skipping transaction", zap.Error(err))
			return nil
		}
		return err
	}

	logger.Info("indexed transaction", zap.String("address", tx.Address))
	if s.metrics != nil {
		s.metrics.ObserveTransaction(tx.Kind.String())
	}
	return nil
}

// errSkipTransaction marks inferred transactions that do not extend any
// asset ledger (stale nonce, failed verification). They are ignored, not
// fatal.
var errSkipTransaction = errors.New("transaction does not extend ledger")

func (s *IndexerService) applyList(ctx context.Context, height uint64, tx *protocol.Transaction) error {
	nonce, err := s.repo.AssetNonce(ctx, tx.Address)
	if err != nil {
		return err
	}
	if nonce != tx.Nonce {
		return fmt.Errorf("%w: listing nonce %d at ledger position %d", errSkipTransaction, tx.Nonce, nonce)
	}

	price := tx.Price
	stats := model.NftStats{
		Address:    tx.Address,
		Creator:    tx.Owner,
		Owner:      tx.Owner,
		ListHeight: &height,
		Price:      &price,
	}

	dbtx, err := s.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	err = dbtx.AddTransaction(ctx, model.TransactionRecord{
		Address: tx.Address, Owner: tx.Owner, TxID: tx.TxID, Height: height,
	})
	if err != nil {
		return err
	}
	if err := dbtx.SetNftStats(ctx, stats); err != nil {
		return err
	}
	err = updateProfileStats(ctx, dbtx, tx.Owner, func(ps *model.ProfileStats) {
		if ps.FirstListHeight == nil {
			ps.FirstListHeight = &height
		}
		ps.LastListHeight = &height
		ps.ListCount++
	})
	if err != nil {
		return err
	}
	if err := dbtx.Commit(); err != nil {
		return err
	}

	s.publishState(ctx, tx.Address, stats)
	return nil
}

func (s *IndexerService) applyReprice(ctx context.Context, height uint64, tx *protocol.Transaction) error {
	records, err := s.repo.Transactions(ctx, tx.Address)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: reprice of unknown asset", errSkipTransaction)
	}
	lastTx, sellTx, err := saleHistory(ctx, s.source, s.protocol, records)
	if err != nil {
		return err
	}
	if height >= repriceRevisionHeight {
		sellTx = nil
	}
	if err := s.protocol.VerifyReprice(sellTx, lastTx, tx); err != nil {
		return fmt.Errorf("%w: %w", errSkipTransaction, err)
	}

	dbtx, err := s.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	err = dbtx.AddTransaction(ctx, model.TransactionRecord{
		Address: tx.Address, Owner: tx.Owner, TxID: tx.TxID, Height: height,
	})
	if err != nil {
		return err
	}
	stats, err := dbtx.NftStats(ctx, tx.Address)
	if err != nil {
		return err
	}
	price := tx.Price
	stats.Price = &price
	if err := dbtx.SetNftStats(ctx, stats); err != nil {
		return err
	}
	if err := dbtx.Commit(); err != nil {
		return err
	}

	s.publishState(ctx, tx.Address, stats)
	return nil
}

func (s *IndexerService) applyBuy(ctx context.Context, height uint64, tx *protocol.Transaction) error {
	nonce, err := s.repo.AssetNonce(ctx, tx.Address)
	if err != nil {
		return err
	}
	if nonce != tx.Nonce {
		return fmt.Errorf("%w: buy nonce %d at ledger position %d", errSkipTransaction, tx.Nonce, nonce)
	}
	records, err := s.repo.Transactions(ctx, tx.Address)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: buy of unknown asset", errSkipTransaction)
	}
	listTx, err := listingOf(ctx, s.source, s.protocol, records)
	if err != nil {
		return err
	}
	// The last ledger transaction carries the current sale terms; a
	// reprice both re-anchors the asset and moves the price.
	sellTx, err := inferRecord(ctx, s.source, s.protocol, records[len(records)-1].TxID)
	if err != nil {
		return err
	}
	details, err := s.protocol.VerifyBuyPayments(listTx, sellTx, tx)
	if err != nil {
		if errors.Is(err, protocol.ErrVerification) {
			return fmt.Errorf("%w: %w", errSkipTransaction, err)
		}
		return err
	}

	dbtx, err := s.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	err = dbtx.AddTransaction(ctx, model.TransactionRecord{
		Address: tx.Address, Owner: tx.Owner, TxID: tx.TxID, Height: height,
	})
	if err != nil {
		return err
	}

	stats, err := dbtx.NftStats(ctx, tx.Address)
	if err != nil {
		return err
	}
	stats.Owner = tx.Owner
	if stats.TradeHeight != nil {
		factor := DecayFactor(*stats.TradeHeight, height)
		stats.TradeCountScaled *= factor
		stats.TradeVolumeScaled *= factor
	}
	stats.TradeHeight = &height
	stats.TradeCount++
	stats.TradeVolume = stats.TradeVolume.Add(sellTx.Price)
	price := tx.Price
	stats.Price = &price
	stats.TradeCountScaled++
	stats.TradeVolumeScaled += coinsFloat(sellTx.Price)
	if err := dbtx.SetNftStats(ctx, stats); err != nil {
		return err
	}

	// Profile updates run sequentially so that the lister, seller and
	// buyer roles compose when held by the same wallet.
	err = updateProfileStats(ctx, dbtx, listTx.Owner, func(ps *model.ProfileStats) {
		ps.ListSoldCount++
		ps.RoyaltyVolume = ps.RoyaltyVolume.Add(details.Royalty)
	})
	if err != nil {
		return err
	}
	err = updateProfileStats(ctx, dbtx, sellTx.Owner, func(ps *model.ProfileStats) {
		ps.TradeHeight = &height
		ps.TradeCount++
		ps.SellVolume = ps.SellVolume.Add(sellTx.Price)
	})
	if err != nil {
		return err
	}
	err = updateProfileStats(ctx, dbtx, tx.Owner, func(ps *model.ProfileStats) {
		ps.TradeHeight = &height
		ps.TradeCount++
		ps.BuyVolume = ps.BuyVolume.Add(sellTx.Price)
	})
	if err != nil {
		return err
	}
	if err := dbtx.Commit(); err != nil {
		return err
	}

	s.publishState(ctx, tx.Address, stats)
	return nil
}

func updateProfileStats(ctx context.Context, dbtx RepositoryTx, owner string, update func(*model.ProfileStats)) error {
	ps, err := dbtx.ProfileStats(ctx, owner)
	if err != nil {
		return err
	}
	update(&ps)
	return dbtx.SetProfileStats(ctx, ps)
}

// publishState is best-effort; a delivery failure never blocks
// indexing.
func (s *IndexerService) publishState(ctx context.Context, address string, stats model.NftStats) {
	state := model.AssetState{Creator: stats.Creator, Owner: stats.Owner, Stats: stats}
	if err := s.publisher.PublishState(ctx, address, state); err != nil {
		s.logger.Warn("publishing asset state", zap.String("address", address), zap.Error(err))
	}
}
