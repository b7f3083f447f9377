package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// Payload tags of the pipe-delimited data-carrier grammar:
//
//	List:    "0|LIST|<price>|<royalty>|"
//	Reprice: "<nonce>|REPRICE|<price>"
//	Buy:     "<nonce>|BUY|<price>"
const (
	tagList    = "LIST"
	tagReprice = "REPRICE"
	tagBuy     = "BUY"
)

type payload struct {
	nonce   uint64
	price   uint128.Uint128
	royalty uint64
}

// parseListPayload parses the List grammar. The embedded nonce is fixed
// to zero by the grammar itself.
func parseListPayload(data []byte) (payload, bool) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 5 || parts[4] != "" {
		return payload{}, false
	}
	if parts[0] != "0" || parts[1] != tagList {
		return payload{}, false
	}
	price, ok := parseAmount(parts[2])
	if !ok {
		return payload{}, false
	}
	royalty, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return payload{}, false
	}
	return payload{nonce: 0, price: price, royalty: royalty}, true
}

// parseActionPayload parses the Reprice/Buy grammar for the given tag.
func parseActionPayload(data []byte, tag string) (payload, bool) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return payload{}, false
	}
	if parts[1] != tag {
		return payload{}, false
	}
	nonce, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return payload{}, false
	}
	price, ok := parseAmount(parts[2])
	if !ok {
		return payload{}, false
	}
	return payload{nonce: nonce, price: price}, true
}

// parseAmount parses an unsigned decimal koinu amount. Only plain digit
// strings are accepted.
func parseAmount(s string) (uint128.Uint128, bool) {
	if s == "" || len(s) > 39 {
		return uint128.Zero, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return uint128.Zero, false
		}
	}
	v, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, false
	}
	return v, true
}

func formatListPayload(price uint128.Uint128, royalty uint64) []byte {
	return []byte(fmt.Sprintf("0|%s|%s|%d|", tagList, price, royalty))
}

func formatActionPayload(tag string, nonce uint64, price uint128.Uint128) []byte {
	return []byte(fmt.Sprintf("%d|%s|%s", nonce, tag, price))
}
