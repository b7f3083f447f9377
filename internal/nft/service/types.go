package service

import (
	"context"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/repository/sqlite"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository is the persistent marketplace state. Begin opens a
	// database transaction; all writes of one indexed event go through
	// it.
	Repository interface {
		Begin(ctx context.Context) (RepositoryTx, error)

		AddTransaction(ctx context.Context, rec model.TransactionRecord) error
		Transactions(ctx context.Context, address string) ([]model.TransactionRecord, error)
		FirstTransaction(ctx context.Context, address string) (*model.TransactionRecord, error)
		LastTransaction(ctx context.Context, address string) (*model.TransactionRecord, error)
		AssetNonce(ctx context.Context, address string) (uint64, error)
		MaxTransactionHeight(ctx context.Context) (*uint64, error)
		HistoricalAssets(ctx context.Context, owner string) ([]string, error)
		IsHistoricalAsset(ctx context.Context, owner, address string) (bool, error)
		HistoricalAssetCount(ctx context.Context, owner string) (uint64, error)

		AddAsset(ctx context.Context, asset model.Asset) error
		HasAsset(ctx context.Context, address string) (bool, error)
		Asset(ctx context.Context, address string) (*model.Asset, error)
		NewestAssets(ctx context.Context, beforeID *int64) ([]model.Asset, error)
		SearchAssets(ctx context.Context, terms []string) ([]string, error)
		SetAssetCollection(ctx context.Context, address, handle string) error
		CollectionItems(ctx context.Context, handle string) ([]string, error)
		ItemCollection(ctx context.Context, address string) (*string, error)
		UnassignedAssetsByCreator(ctx context.Context, owner string) ([]string, error)

		NftStats(ctx context.Context, address string) (model.NftStats, error)
		SetNftStats(ctx context.Context, stats model.NftStats) error
		RankedAssets(ctx context.Context, key string, descending bool, offset, limit int) ([]string, error)
		CreatedAssets(ctx context.Context, owner string) ([]string, error)
		OwnedAssets(ctx context.Context, owner string) ([]string, error)
		CreatedAssetCount(ctx context.Context, owner string) (uint64, error)
		PlatformStats(ctx context.Context) (model.PlatformStats, error)

		Profile(ctx context.Context, owner string) (*model.Profile, error)
		SetProfile(ctx context.Context, profile model.Profile) error
		SearchProfiles(ctx context.Context, terms []string) ([]string, error)
		ProfileStats(ctx context.Context, owner string) (model.ProfileStats, error)
		SetProfileStats(ctx context.Context, stats model.ProfileStats) error
		ProfilesByTradeCount(ctx context.Context) ([]string, error)
		ProfilesByEarnings(ctx context.Context) ([]string, error)

		Collection(ctx context.Context, handle string) (*model.Collection, error)
		SetCollection(ctx context.Context, collection model.Collection) error
		CollectionsByOwner(ctx context.Context, owner string) ([]string, error)
		CollectionCount(ctx context.Context, owner string) (uint64, error)
		SearchCollections(ctx context.Context, terms []string) ([]string, error)
		CollectionStats(ctx context.Context, handle string) (model.CollectionStats, error)
		CollectionsByActivity(ctx context.Context, key string, decay float64, height uint64, limit int) ([]string, error)
		CollectionsByValuable(ctx context.Context) ([]string, error)
	}
	// RepositoryTx is one open database transaction.
	RepositoryTx interface {
		AddTransaction(ctx context.Context, rec model.TransactionRecord) error
		NftStats(ctx context.Context, address string) (model.NftStats, error)
		SetNftStats(ctx context.Context, stats model.NftStats) error
		ProfileStats(ctx context.Context, owner string) (model.ProfileStats, error)
		SetProfileStats(ctx context.Context, stats model.ProfileStats) error
		Commit() error
		Rollback() error
	}
	// ChainSource reads and submits transactions through a Dingocoin
	// node.
	ChainSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		BlockTxIDs(ctx context.Context, height uint64) ([]string, error)
		MempoolTxIDs(ctx context.Context) ([]string, error)
		NFTTransaction(ctx context.Context, txid string) (*protocol.Normalized, error)
		NormalizeRaw(ctx context.Context, serialized []byte) (*protocol.Normalized, error)
		Sign(ctx context.Context, serialized []byte, wif string) (signed []byte, complete bool, err error)
		Broadcast(ctx context.Context, serialized []byte) (string, error)
	}
	// Publisher pushes derived asset state and registered content to the
	// delivery store.
	Publisher interface {
		PublishState(ctx context.Context, address string, state model.AssetState) error
		PublishMeta(ctx context.Context, address string, meta model.AssetMeta) error
		PublishContent(ctx context.Context, address string, content []byte) error
		PublishPreview(ctx context.Context, address string, preview []byte) error
		PublishProfile(ctx context.Context, owner string, profile model.Profile) error
		PublishCollection(ctx context.Context, handle string, collection model.Collection) error
		Content(ctx context.Context, address string) ([]byte, error)
	}
	// IndexerMetrics observes indexing progress.
	IndexerMetrics interface {
		SetHeight(height uint64)
		ObserveTransaction(kind string)
	}
)

type sqliteRepository struct {
	*sqlite.Repository
}

// NewSqliteRepository adapts the sqlite repository to the Repository
// interface.
func NewSqliteRepository(repo *sqlite.Repository) Repository {
	return sqliteRepository{repo}
}

func (r sqliteRepository) Begin(ctx context.Context) (RepositoryTx, error) {
	return r.Repository.Begin(ctx)
}
