package transport

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"lukechampine.com/uint128"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
)

// respond writes a success payload.
func respond(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// respondErr reports a failure in the body. The status stays 200; the
// frontend dispatches on the presence of the error field.
func respondErr(c *gin.Context, err error) {
	c.JSON(200, gin.H{"error": err.Error()})
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondErr(c, errors.New("Malformed request"))
		return false
	}
	return true
}

func parseAmount(s string) (uint128.Uint128, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, errors.New("Invalid amount")
	}
	return v, nil
}

func parseHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.New("Invalid hex encoding")
	}
	return data, nil
}

// searchTerms splits a free-text query into lower-cased terms.
func searchTerms(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// unsignedResponse serializes an unsigned protocol transaction the way
// wallet integrations consume it: inputs as outpoints, outputs as an
// address-to-amount map with the payload under the "data" key.
func unsignedResponse(u *protocol.Unsigned) gin.H {
	vins := make([]gin.H, 0, len(u.Vins))
	for _, vin := range u.Vins {
		vins = append(vins, gin.H{"txid": vin.TxID, "vout": vin.Vout})
	}
	vouts := make(map[string]string, len(u.Vouts)+1)
	for _, vout := range u.Vouts {
		vouts[vout.Address] = vout.Value.String()
	}
	vouts["data"] = hex.EncodeToString(u.Payload)
	return gin.H{"vins": vins, "vouts": vouts}
}

type profileStatsDTO struct {
	Owner           string  `json:"owner"`
	FirstListHeight *uint64 `json:"firstListHeight"`
	LastListHeight  *uint64 `json:"lastListHeight"`
	ListCount       uint64  `json:"listCount"`
	TradeHeight     *uint64 `json:"tradeHeight"`
	TradeCount      uint64  `json:"tradeCount"`
	SellVolume      string  `json:"sellVolume"`
	BuyVolume       string  `json:"buyVolume"`
	RoyaltyVolume   string  `json:"royaltyVolume"`
	ListSoldCount   uint64  `json:"listSoldCount"`
}

func newProfileStatsDTO(stats model.ProfileStats) profileStatsDTO {
	return profileStatsDTO{
		Owner:           stats.Owner,
		FirstListHeight: stats.FirstListHeight,
		LastListHeight:  stats.LastListHeight,
		ListCount:       stats.ListCount,
		TradeHeight:     stats.TradeHeight,
		TradeCount:      stats.TradeCount,
		SellVolume:      stats.SellVolume.String(),
		BuyVolume:       stats.BuyVolume.String(),
		RoyaltyVolume:   stats.RoyaltyVolume.String(),
		ListSoldCount:   stats.ListSoldCount,
	}
}
