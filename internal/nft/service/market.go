package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"lukechampine.com/uint128"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/dingocoin"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
)

const (
	maxContentSize = 10 << 20
	maxPreviewSize = 1 << 20

	maxNameLength        = 40
	maxDescriptionLength = 500
	maxTagsLength        = 100
	maxHandleLength      = 40

	// signatureWindow bounds the age of signed API messages.
	signatureWindow = time.Minute
)

var (
	pngMagic      = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	handlePattern = regexp.MustCompile(`^[a-z0-9]+$`)

	errStale        = errors.New("Stale timestamp")
	errNotListed    = errors.New("Asset is not listed")
	errAssetBusy    = errors.New("Asset is busy")
	errBadSignature = errors.New("Signature does not match owner")
)

// HeightSource reports the indexer's current chain position.
type HeightSource interface {
	Height() uint64
}

// MarketService is the write side of the marketplace API: it prepares
// unsigned protocol transactions, validates and co-signs submissions,
// and maintains the signed off-chain metadata (profiles, collections,
// content registration). Submissions are serialized under one lock so
// that history checks and broadcasts cannot interleave.
type MarketService struct {
	repo      Repository
	source    ChainSource
	publisher Publisher
	protocol  protocol.Protocol
	keychain  dingocoin.Keychain
	heights   HeightSource
	logger    *zap.Logger

	mu sync.Mutex
}

func NewMarketService(
	repo Repository,
	source ChainSource,
	publisher Publisher,
	p protocol.Protocol,
	keychain dingocoin.Keychain,
	heights HeightSource,
	logger *zap.Logger,
) *MarketService {
	return &MarketService{
		repo:      repo,
		source:    source,
		publisher: publisher,
		protocol:  p,
		keychain:  keychain,
		heights:   heights,
		logger:    logger,
	}
}

// Busy reports whether a protocol transaction for the asset is already
// waiting in the node mempool. Mempool entries that vanish mid-scan are
// ignored.
func (s *MarketService) Busy(ctx context.Context, address string) (bool, error) {
	txids, err := s.source.MempoolTxIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, txid := range txids {
		norm, err := s.source.NFTTransaction(ctx, txid)
		if err != nil {
			continue
		}
		if tx := s.protocol.Infer(norm); tx != nil && tx.Address == address {
			return true, nil
		}
	}
	return false, nil
}

// BuildListTransaction prepares the unsigned listing of new content.
// The asset address is derived from the content hash, so the eventual
// submission must register exactly this content.
func (s *MarketService) BuildListTransaction(ctx context.Context, contentHash []byte, price uint128.Uint128, royalty uint64) (*protocol.Unsigned, error) {
	address := s.keychain.ContentAddress(contentHash)
	has, err := s.repo.HasAsset(ctx, address)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, errors.New("Content already registered")
	}
	return s.protocol.CreateList(address, price, royalty)
}

// ListSubmission is a signed listing transaction together with the
// content it registers.
type ListSubmission struct {
	Tx          []byte
	Content     []byte
	Preview     []byte
	Name        string
	Description string
	Tags        string
}

// SubmitListTransaction validates, broadcasts and registers a listing.
func (s *MarketService) SubmitListTransaction(ctx context.Context, sub ListSubmission) (string, error) {
	if len(sub.Content) == 0 || len(sub.Content) > maxContentSize {
		return "", errors.New("Content is empty or too large")
	}
	if err := validatePreview(sub.Preview); err != nil {
		return "", err
	}
	if err := validateAssetMeta(sub.Name, sub.Description, sub.Tags); err != nil {
		return "", err
	}

	norm, err := s.source.NormalizeRaw(ctx, sub.Tx)
	if err != nil {
		return "", fmt.Errorf("decode transaction: %w", err)
	}
	listTx := s.protocol.InferList(norm)
	if listTx == nil {
		return "", errors.New("Not a valid list transaction")
	}
	contentHash := dingocoin.Sha256(sub.Content)
	if s.keychain.ContentAddress(contentHash) != listTx.Address {
		return "", errors.New("Content does not match the listed address")
	}

	busy, err := s.Busy(ctx, listTx.Address)
	if err != nil {
		return "", err
	}
	if busy {
		return "", errAssetBusy
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	has, err := s.repo.HasAsset(ctx, listTx.Address)
	if err != nil {
		return "", err
	}
	if has {
		return "", errors.New("Content already registered")
	}

	txid, err := s.source.Broadcast(ctx, sub.Tx)
	if err != nil {
		return "", fmt.Errorf("broadcast: %w", err)
	}
	err = s.repo.AddAsset(ctx, model.Asset{
		ContentHash: hex.EncodeToString(contentHash),
		Address:     listTx.Address,
		Name:        sub.Name,
		Tags:        sub.Tags,
		Description: sub.Description,
	})
	if err != nil {
		return "", err
	}

	meta := model.AssetMeta{Name: sub.Name, Description: sub.Description, Tags: sub.Tags}
	if err := s.publisher.PublishMeta(ctx, listTx.Address, meta); err != nil {
		return "", err
	}
	if err := s.publisher.PublishContent(ctx, listTx.Address, sub.Content); err != nil {
		return "", err
	}
	if err := s.publisher.PublishPreview(ctx, listTx.Address, sub.Preview); err != nil {
		return "", err
	}
	return txid, nil
}

// BuildRepriceTransaction prepares the unsigned repricing of a listed
// asset at the next nonce.
func (s *MarketService) BuildRepriceTransaction(ctx context.Context, address string, price uint128.Uint128) (*protocol.Unsigned, error) {
	records, err := s.repo.Transactions(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNotListed
	}
	lastTx, sellTx, err := s.saleTerms(ctx, records)
	if err != nil {
		return nil, err
	}
	return s.protocol.CreateReprice(sellTx, lastTx, address, uint64(len(records)), price)
}

// SubmitRepriceTransaction verifies a signed repricing against the
// asset's history, completes the asset input signature with the derived
// asset key and broadcasts.
func (s *MarketService) SubmitRepriceTransaction(ctx context.Context, raw []byte) (string, error) {
	norm, err := s.source.NormalizeRaw(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("decode transaction: %w", err)
	}
	tx := s.protocol.InferReprice(norm)
	if tx == nil {
		return "", errors.New("Not a valid reprice transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Transactions(ctx, tx.Address)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errNotListed
	}
	lastTx, sellTx, err := s.saleTerms(ctx, records)
	if err != nil {
		return "", err
	}
	if err := s.protocol.VerifyReprice(sellTx, lastTx, tx); err != nil {
		return "", err
	}
	return s.countersignAndBroadcast(ctx, tx.Address, raw)
}

// BuildBuyTransaction prepares the unsigned purchase of a listed asset
// at the next nonce. Settlement amounts reflect the current sale terms;
// price is the buyer's declared ceiling.
func (s *MarketService) BuildBuyTransaction(ctx context.Context, address string, price uint128.Uint128) (*protocol.Unsigned, error) {
	records, err := s.repo.Transactions(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNotListed
	}
	listTx, err := listingOf(ctx, s.source, s.protocol, records)
	if err != nil {
		return nil, err
	}
	sellTx, err := inferRecord(ctx, s.source, s.protocol, records[len(records)-1].TxID)
	if err != nil {
		return nil, err
	}
	return s.protocol.CreateBuy(listTx, sellTx, address, uint64(len(records)), price)
}

// SubmitBuyTransaction verifies a signed purchase, completes the asset
// input signature and broadcasts.
func (s *MarketService) SubmitBuyTransaction(ctx context.Context, raw []byte) (string, error) {
	norm, err := s.source.NormalizeRaw(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("decode transaction: %w", err)
	}
	tx := s.protocol.InferBuy(norm)
	if tx == nil {
		return "", errors.New("Not a valid buy transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Transactions(ctx, tx.Address)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errNotListed
	}
	listTx, err := listingOf(ctx, s.source, s.protocol, records)
	if err != nil {
		return "", err
	}
	sellTx, err := inferRecord(ctx, s.source, s.protocol, records[len(records)-1].TxID)
	if err != nil {
		return "", err
	}
	if _, err := s.protocol.VerifyBuyPayments(listTx, sellTx, tx); err != nil {
		return "", err
	}
	return s.countersignAndBroadcast(ctx, tx.Address, raw)
}

// saleTerms reconstructs the reprice reference points for the current
// phase: after the reprice revision the sale-price ceiling no longer
// applies and only the previous declared price bounds a repricing.
func (s *MarketService) saleTerms(ctx context.Context, records []model.TransactionRecord) (lastTx, sellTx *protocol.Transaction, err error) {
	lastTx, sellTx, err = saleHistory(ctx, s.source, s.protocol, records)
	if err != nil {
		return nil, nil, err
	}
	if s.heights.Height() >= repriceRevisionHeight {
		sellTx = nil
	}
	return lastTx, sellTx, nil
}

// countersignAndBroadcast signs the asset input with the derived asset
// key and submits the transaction. The busy check runs after signing so
// that nothing is broadcast for an asset that acquired a mempool
// transaction while this one was being prepared.
func (s *MarketService) countersignAndBroadcast(ctx context.Context, address string, raw []byte) (string, error) {
	asset, err := s.repo.Asset(ctx, address)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", errors.New("Unknown asset")
	}
	contentHash, err := hex.DecodeString(asset.ContentHash)
	if err != nil {
		return "", fmt.Errorf("decode content hash of %s: %w", address, err)
	}
	key := s.keychain.ContentKey(contentHash)
	if dingocoin.PrivateKeyAddress(key) != address {
		return "", fmt.Errorf("derived key does not control asset %s", address)
	}

	signed, complete, err := s.source.Sign(ctx, raw, dingocoin.ToWIF(key))
	if err != nil {
		return "", fmt.Errorf("sign asset input: %w", err)
	}
	if !complete {
		return "", errors.New("Transaction signatures are incomplete")
	}

	busy, err := s.Busy(ctx, address)
	if err != nil {
		return "", err
	}
	if busy {
		return "", errAssetBusy
	}
	txid, err := s.source.Broadcast(ctx, signed)
	if err != nil {
		return "", fmt.Errorf("broadcast: %w", err)
	}
	return txid, nil
}

// AuthorizeContent returns the registered content of an asset to its
// current owner, proven by a fresh compact signature over
// "address|timestamp".
func (s *MarketService) AuthorizeContent(ctx context.Context, address string, timestamp int64, signature []byte) ([]byte, error) {
	if !timestampFresh(timestamp) {
		return nil, errStale
	}
	hash := dingocoin.Sha256([]byte(fmt.Sprintf("%s|%d", address, timestamp)))
	signer, err := dingocoin.RecoverAddress(hash, signature)
	if err != nil {
		return nil, errBadSignature
	}
	last, err := s.repo.LastTransaction(ctx, address)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, errNotListed
	}
	if signer != last.Owner {
		return nil, errors.New("Not the current owner")
	}
	return s.publisher.Content(ctx, address)
}

// ProfileUpdate is a signed request to change a wallet's display
// profile.
type ProfileUpdate struct {
	Timestamp int64
	Owner     string
	Name      string
	Thumbnail *string
	Signature []byte
}

// UpdateProfile applies a signed profile change. The thumbnail must be
// an asset the wallet held at some point.
func (s *MarketService) UpdateProfile(ctx context.Context, req ProfileUpdate) error {
	if !timestampFresh(req.Timestamp) {
		return errStale
	}
	message, err := json.Marshal(struct {
		Timestamp int64   `json:"timestamp"`
		Owner     string  `json:"owner"`
		Name      string  `json:"name"`
		Thumbnail *string `json:"thumbnail"`
	}{req.Timestamp, req.Owner, req.Name, req.Thumbnail})
	if err != nil {
		return err
	}
	signer, err := dingocoin.RecoverAddress(dingocoin.Sha256(message), req.Signature)
	if err != nil || signer != req.Owner {
		return errBadSignature
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxNameLength {
		return errors.New("Invalid profile name")
	}
	if req.Thumbnail != nil {
		held, err := s.repo.IsHistoricalAsset(ctx, req.Owner, *req.Thumbnail)
		if err != nil {
			return err
		}
		if !held {
			return errors.New("Thumbnail is not an asset of this profile")
		}
	}

	profile := model.Profile{Owner: req.Owner, Name: name, Thumbnail: req.Thumbnail}
	if err := s.repo.SetProfile(ctx, profile); err != nil {
		return err
	}
	if err := s.publisher.PublishProfile(ctx, req.Owner, profile); err != nil {
		s.logger.Warn("publishing profile", zap.String("owner", req.Owner), zap.Error(err))
	}
	return nil
}

// CollectionUpdate is a signed request to create or change a
// collection. Owner is only part of the creation message; updates are
// authorized against the recorded owner.
type CollectionUpdate struct {
	Timestamp   int64
	Owner       string
	Handle      string
	Name        string
	Thumbnail   *string
	Description string
	Signature   []byte
}

// CreateCollection registers a new collection handle for a wallet.
func (s *MarketService) CreateCollection(ctx context.Context, req CollectionUpdate) error {
	if !timestampFresh(req.Timestamp) {
		return errStale
	}
	message, err := json.Marshal(struct {
		Timestamp   int64   `json:"timestamp"`
		Owner       string  `json:"owner"`
		Handle      string  `json:"handle"`
		Name        string  `json:"name"`
		Thumbnail   *string `json:"thumbnail"`
		Description string  `json:"description"`
	}{req.Timestamp, req.Owner, req.Handle, req.Name, req.Thumbnail, req.Description})
	if err != nil {
		return err
	}
	signer, err := dingocoin.RecoverAddress(dingocoin.Sha256(message), req.Signature)
	if err != nil || signer != req.Owner {
		return errBadSignature
	}

	if err := s.validateCollectionFields(ctx, req, req.Owner); err != nil {
		return err
	}
	existing, err := s.repo.Collection(ctx, req.Handle)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("Handle already taken")
	}

	collection := model.Collection{
		Handle:      req.Handle,
		Owner:       req.Owner,
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
	}
	if err := s.repo.SetCollection(ctx, collection); err != nil {
		return err
	}
	if err := s.publisher.PublishCollection(ctx, req.Handle, collection); err != nil {
		s.logger.Warn("publishing collection", zap.String("handle", req.Handle), zap.Error(err))
	}
	return nil
}

// UpdateCollection applies a signed change to an existing collection,
// authorized by its recorded owner.
func (s *MarketService) UpdateCollection(ctx context.Context, req CollectionUpdate) error {
	if !timestampFresh(req.Timestamp) {
		return errStale
	}
	existing, err := s.repo.Collection(ctx, req.Handle)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("Unknown collection")
	}

	message, err := json.Marshal(struct {
		Timestamp   int64   `json:"timestamp"`
		Handle      string  `json:"handle"`
		Name        string  `json:"name"`
		Thumbnail   *string `json:"thumbnail"`
		Description string  `json:"description"`
	}{req.Timestamp, req.Handle, req.Name, req.Thumbnail, req.Description})
	if err != nil {
		return err
	}
	signer, err := dingocoin.RecoverAddress(dingocoin.Sha256(message), req.Signature)
	if err != nil || signer != existing.Owner {
		return errBadSignature
	}

	if err := s.validateCollectionFields(ctx, req, existing.Owner); err != nil {
		return err
	}
	collection := model.Collection{
		Handle:      req.Handle,
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
	}
	if err := s.repo.SetCollection(ctx, collection); err != nil {
		return err
	}
	collection.Owner = existing.Owner
	if err := s.publisher.PublishCollection(ctx, req.Handle, collection); err != nil {
		s.logger.Warn("publishing collection", zap.String("handle", req.Handle), zap.Error(err))
	}
	return nil
}

// ItemAssignment is a signed request to place an asset into a
// collection.
type ItemAssignment struct {
	Timestamp int64
	Address   string
	Handle    string
	Signature []byte
}

// SetCollectionItem assigns an asset to a collection. Only assets the
// collection owner originally listed are assignable.
func (s *MarketService) SetCollectionItem(ctx context.Context, req ItemAssignment) error {
	if !timestampFresh(req.Timestamp) {
		return errStale
	}
	collection, err := s.repo.Collection(ctx, req.Handle)
	if err != nil {
		return err
	}
	if collection == nil {
		return errors.New("Unknown collection")
	}

	message, err := json.Marshal(struct {
		Timestamp int64  `json:"timestamp"`
		Address   string `json:"address"`
		Handle    string `json:"handle"`
	}{req.Timestamp, req.Address, req.Handle})
	if err != nil {
		return err
	}
	signer, err := dingocoin.RecoverAddress(dingocoin.Sha256(message), req.Signature)
	if err != nil || signer != collection.Owner {
		return errBadSignature
	}

	first, err := s.repo.FirstTransaction(ctx, req.Address)
	if err != nil {
		return err
	}
	if first == nil {
		return errNotListed
	}
	if first.Owner != collection.Owner {
		return errors.New("Asset was not listed by the collection owner")
	}
	return s.repo.SetAssetCollection(ctx, req.Address, req.Handle)
}

func (s *MarketService) validateCollectionFields(ctx context.Context, req CollectionUpdate, owner string) error {
	if req.Handle == "" || len(req.Handle) > maxHandleLength || !handlePattern.MatchString(req.Handle) {
		return errors.New("Invalid collection handle")
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Name) > maxNameLength {
		return errors.New("Invalid collection name")
	}
	if len(req.Description) > maxDescriptionLength {
		return errors.New("Invalid collection description")
	}
	if req.Thumbnail != nil {
		first, err := s.repo.FirstTransaction(ctx, *req.Thumbnail)
		if err != nil {
			return err
		}
		if first == nil || first.Owner != owner {
			return errors.New("Thumbnail was not listed by the collection owner")
		}
	}
	return nil
}

func validateAssetMeta(name, description, tags string) error {
	if strings.TrimSpace(name) == "" || len(name) > maxNameLength {
		return errors.New("Invalid name")
	}
	if len(description) > maxDescriptionLength {
		return errors.New("Invalid description")
	}
	if len(tags) > maxTagsLength {
		return errors.New("Invalid tags")
	}
	return nil
}

// validatePreview accepts a square PNG or WEBP of bounded size.
func validatePreview(data []byte) error {
	if len(data) == 0 || len(data) > maxPreviewSize {
		return errors.New("Preview is empty or too large")
	}
	isPNG := bytes.HasPrefix(data, pngMagic)
	isWEBP := len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
	if !isPNG && !isWEBP {
		return errors.New("Preview must be PNG or WEBP")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return errors.New("Cannot decode preview")
	}
	if cfg.Width <= 0 || cfg.Width != cfg.Height {
		return errors.New("Preview must be square")
	}
	return nil
}

func timestampFresh(timestamp int64) bool {
	age := time.Now().UnixMilli() - timestamp
	if age < 0 {
		age = -age
	}
	return age <= signatureWindow.Milliseconds()
}
