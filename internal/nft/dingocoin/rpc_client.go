package dingocoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// RPCMetrics records metrics for RPC calls.
type RPCMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// RPCClient wraps the node rpcclient with metrics instrumentation.
// Dingocoin descends from the Bitcoin RPC surface, so the btcd client
// speaks its protocol unchanged.
type RPCClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *RPCClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerbose returns a verbose block with transaction ids.
func (r *RPCClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return r.client.GetBlockVerbose(blockHash)
}

// GetRawTransactionVerbose returns a decoded transaction by id.
func (r *RPCClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}

// DecodeRawTransaction decodes a serialized transaction on the node.
// The node resolves script types and addresses with its own chain
// parameters, which keeps address encoding authoritative.
func (r *RPCClient) DecodeRawTransaction(serialized []byte) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("decode_raw_transaction", err, started)
	}()
	return r.client.DecodeRawTransaction(serialized)
}

// GetRawMempool returns the transaction ids in the node mempool.
func (r *RPCClient) GetRawMempool() (txids []*chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_mempool", err, started)
	}()
	return r.client.GetRawMempool()
}

// SignRawTransaction signs tx inputs with the provided WIF keys.
func (r *RPCClient) SignRawTransaction(tx *wire.MsgTx, privKeysWIF []string) (signed *wire.MsgTx, complete bool, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("sign_raw_transaction", err, started)
	}()
	return r.client.SignRawTransaction3(tx, nil, privKeysWIF)
}

// SendRawTransaction broadcasts a signed transaction.
func (r *RPCClient) SendRawTransaction(tx *wire.MsgTx) (txHash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	return r.client.SendRawTransaction(tx, false)
}
