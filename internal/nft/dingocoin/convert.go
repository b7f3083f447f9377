package dingocoin

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/txscript"
	"lukechampine.com/uint128"
)

const nulldataScriptType = "nulldata"

// KoinuFromCoins converts a node-reported coin amount into koinu.
// Node amounts are JSON floats with eight decimal places; conversion
// goes through the decimal rendering to avoid binary rounding, and must
// stay exact because protocol inference compares values for equality.
func KoinuFromCoins(value float64) (uint128.Uint128, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return uint128.Zero, fmt.Errorf("invalid coin amount: %v", value)
	}
	rendered := strconv.FormatFloat(value, 'f', 8, 64)
	whole, frac, ok := strings.Cut(rendered, ".")
	if !ok || len(frac) != 8 {
		return uint128.Zero, fmt.Errorf("unexpected coin amount rendering %q", rendered)
	}
	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return uint128.Zero, nil
	}
	koinu, err := uint128.FromString(digits)
	if err != nil {
		return uint128.Zero, fmt.Errorf("coin amount %q: %w", rendered, err)
	}
	return koinu, nil
}

// PayloadFromScript extracts the pushed data of a nulldata output
// script.
func PayloadFromScript(scriptHex string) ([]byte, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("decode script hex: %w", err)
	}
	pushes, err := txscript.PushedData(script)
	if err != nil {
		return nil, fmt.Errorf("parse data script: %w", err)
	}
	if len(pushes) == 0 {
		return nil, nil
	}
	return pushes[0], nil
}

// VoutAddress returns the single address of a standard output, or ""
// for outputs the node could not attribute. Older Dingocoin nodes
// report an addresses array, newer ones a single address field.
func VoutAddress(vout btcjson.Vout) string {
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return vout.ScriptPubKey.Addresses[0]
	}
	return vout.ScriptPubKey.Address
}
