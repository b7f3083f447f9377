package dingocoin

import (
	"bytes"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
	"github.com/dingocoin/nft-marketplace-backend/pkg/safe"
	"github.com/dingocoin/nft-marketplace-backend/pkg/workerpool"
)

// NodeSource reads the chain through the node RPC and normalizes
// transactions into the protocol view. Input resolution fans out over a
// worker pool since every input costs one RPC round trip.
type NodeSource struct {
	rpc        *RPCClient
	vinWorkers int
}

// NewNodeSource creates a NodeSource resolving inputs with the given
// concurrency.
func NewNodeSource(rpc *RPCClient, vinWorkers int) *NodeSource {
	if vinWorkers < 1 {
		vinWorkers = 1
	}
	return &NodeSource{rpc: rpc, vinWorkers: vinWorkers}
}

// LatestHeight returns the node's best block height.
func (s *NodeSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count: %w", err)
	}
	return height, nil
}

// BlockTxIDs returns the transaction ids of the block at height, in
// block order.
func (s *NodeSource) BlockTxIDs(ctx context.Context, height uint64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height: %w", err)
	}
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := s.rpc.GetBlockVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block.Tx, nil
}

// MempoolTxIDs returns the transaction ids currently in the mempool.
func (s *NodeSource) MempoolTxIDs(_ context.Context) ([]string, error) {
	hashes, err := s.rpc.GetRawMempool()
	if err != nil {
		return nil, err
	}
	txids := make([]string, 0, len(hashes))
	for _, h := range hashes {
		txids = append(txids, h.String())
	}
	return txids, nil
}

// NFTTransaction fetches a confirmed or mempool transaction and
// normalizes it.
func (s *NodeSource) NFTTransaction(ctx context.Context, txid string) (*protocol.Normalized, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %s: %w", txid, err)
	}
	raw, err := s.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	return s.normalize(ctx, raw)
}

// NormalizeRaw decodes a serialized transaction on the node and
// normalizes it. Used for client-submitted transactions that are not
// known to the node yet.
func (s *NodeSource) NormalizeRaw(ctx context.Context, serialized []byte) (*protocol.Normalized, error) {
	raw, err := s.rpc.DecodeRawTransaction(serialized)
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return s.normalize(ctx, raw)
}

// Sign signs a serialized transaction with the given WIF key on the
// node and returns the signed serialization. complete reports whether
// all inputs are now signed.
func (s *NodeSource) Sign(_ context.Context, serialized []byte, wif string) (signed []byte, complete bool, err error) {
	tx, err := decodeWireTx(serialized)
	if err != nil {
		return nil, false, err
	}
	signedTx, complete, err := s.rpc.SignRawTransaction(tx, []string{wif})
	if err != nil {
		return nil, false, fmt.Errorf("sign transaction: %w", err)
	}
	var buf bytes.Buffer
	if err := signedTx.Serialize(&buf); err != nil {
		return nil, false, fmt.Errorf("serialize signed transaction: %w", err)
	}
	return buf.Bytes(), complete, nil
}

// Broadcast submits a serialized transaction and returns its txid.
func (s *NodeSource) Broadcast(_ context.Context, serialized []byte) (string, error) {
	tx, err := decodeWireTx(serialized)
	if err != nil {
		return "", err
	}
	hash, err := s.rpc.SendRawTransaction(tx)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return hash.String(), nil
}

func (s *NodeSource) normalize(ctx context.Context, raw *btcjson.TxRawResult) (*protocol.Normalized, error) {
	vinRefs := make([]btcjson.Vin, 0, len(raw.Vin))
	for _, vin := range raw.Vin {
		if vin.IsCoinBase() {
			continue
		}
		vinRefs = append(vinRefs, vin)
	}

	vins := make([]protocol.Output, len(vinRefs))
	indexes := make([]int, len(vinRefs))
	for i := range indexes {
		indexes[i] = i
	}
	err := workerpool.Process(ctx, s.vinWorkers, indexes, func(ctx context.Context, i int) error {
		resolved, err := s.resolveVin(vinRefs[i])
		if err != nil {
			return err
		}
		vins[i] = resolved
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve inputs of %s: %w", raw.Txid, err)
	}

	var payload []byte
	vouts := make([]protocol.Output, 0, len(raw.Vout))
	for _, vout := range raw.Vout {
		if vout.ScriptPubKey.Type == nulldataScriptType {
			payload, err = PayloadFromScript(vout.ScriptPubKey.Hex)
			if err != nil {
				return nil, fmt.Errorf("payload of %s: %w", raw.Txid, err)
			}
			continue
		}
		address := VoutAddress(vout)
		if address == "" {
			continue
		}
		value, err := KoinuFromCoins(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("output %d of %s: %w", vout.N, raw.Txid, err)
		}
		vouts = append(vouts, protocol.Output{Address: address, Value: value})
	}

	return &protocol.Normalized{
		TxID:    raw.Txid,
		Vins:    vins,
		Vouts:   vouts,
		Payload: payload,
	}, nil
}

func (s *NodeSource) resolveVin(vin btcjson.Vin) (protocol.Output, error) {
	hash, err := chainhash.NewHashFromStr(vin.Txid)
	if err != nil {
		return protocol.Output{}, fmt.Errorf("parse input txid %s: %w", vin.Txid, err)
	}
	prev, err := s.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return protocol.Output{}, fmt.Errorf("get input transaction %s: %w", vin.Txid, err)
	}
	if vin.Vout >= uint32(len(prev.Vout)) {
		return protocol.Output{}, fmt.Errorf("input %s:%d out of range", vin.Txid, vin.Vout)
	}
	vout := prev.Vout[vin.Vout]
	value, err := KoinuFromCoins(vout.Value)
	if err != nil {
		return protocol.Output{}, fmt.Errorf("input %s:%d: %w", vin.Txid, vin.Vout, err)
	}
	return protocol.Output{Address: VoutAddress(vout), Value: value}, nil
}
