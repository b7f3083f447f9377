// Package model defines domain models for the NFT marketplace.
package model

import "lukechampine.com/uint128"

// TransactionRecord is a verified protocol transaction in an asset's
// ledger. Records are append-only and ordered by insertion; an asset's
// nonce is the number of its records.
type TransactionRecord struct {
	Address string
	Owner   string
	TxID    string
	Height  uint64
}

// Asset is the off-chain registration of a listed NFT: the content hash
// behind the asset address plus searchable metadata.
type Asset struct {
	ID          int64
	ContentHash string
	Address     string
	Name        string
	Tags        string
	Description string
	// Collection is the handle of the collection the asset is assigned
	// to, if any.
	Collection *string
}

// Profile is the display metadata of a wallet address.
type Profile struct {
	Owner     string
	Name      string
	Thumbnail *string
}

// Collection groups assets of one creator under a handle.
type Collection struct {
	Handle      string
	Owner       string
	Name        string
	Thumbnail   *string
	Description string
}

// NftStats is the per-asset aggregate maintained by the indexer.
// Heights are nil until the corresponding event first happens. The
// scaled counters decay exponentially with block height and power the
// activity rankings.
type NftStats struct {
	Address           string
	Creator           string
	Owner             string
	ListHeight        *uint64
	TradeHeight       *uint64
	TradeCount        uint64
	TradeVolume       uint128.Uint128
	Price             *uint128.Uint128
	TradeCountScaled  float64
	TradeVolumeScaled float64
}

// ProfileStats is the per-wallet aggregate maintained by the indexer.
type ProfileStats struct {
	Owner           string
	FirstListHeight *uint64
	LastListHeight  *uint64
	ListCount       uint64
	TradeHeight     *uint64
	TradeCount      uint64
	SellVolume      uint128.Uint128
	BuyVolume       uint128.Uint128
	ListSoldCount   uint64
	RoyaltyVolume   uint128.Uint128
}

// CollectionStats aggregates the assets assigned to a collection.
// TradeVolume is reported in whole coins.
type CollectionStats struct {
	Count       uint64
	TradeCount  uint64
	TradeVolume uint64
}

// PlatformStats is the marketplace-wide aggregate. TotalVolume is
// reported in whole coins.
type PlatformStats struct {
	TotalVolume uint64
}

// AssetState is the published snapshot of an asset after each indexed
// protocol event.
type AssetState struct {
	Creator string
	Owner   string
	Stats   NftStats
}

// AssetMeta is the published display metadata of a listed asset.
type AssetMeta struct {
	Name        string
	Description string
	Tags        string
}
