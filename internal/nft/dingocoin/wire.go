package dingocoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// decodeWireTx deserializes a transaction in the legacy (pre-segwit)
// wire format Dingocoin uses.
func decodeWireTx(serialized []byte) (*wire.MsgTx, error) {
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(serialized)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return tx, nil
}
