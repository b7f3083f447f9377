package redis

import (
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/model"
)

// Published JSON shapes. Koinu amounts are decimal strings since they
// can exceed the integer range of JSON consumers.
type (
	statePayload struct {
		Creator string       `json:"creator"`
		Owner   string       `json:"owner"`
		Stats   statsPayload `json:"stats"`
	}
	statsPayload struct {
		ListHeight        *uint64 `json:"listHeight"`
		TradeHeight       *uint64 `json:"tradeHeight"`
		TradeCount        uint64  `json:"tradeCount"`
		TradeVolume       string  `json:"tradeVolume"`
		Price             *string `json:"price"`
		TradeCountScaled  float64 `json:"tradeCountScaled"`
		TradeVolumeScaled float64 `json:"tradeVolumeScaled"`
	}
	metaPayload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Tags        string `json:"tags"`
	}
	profilePayload struct {
		Owner     string  `json:"owner"`
		Name      string  `json:"name"`
		Thumbnail *string `json:"thumbnail"`
	}
	collectionPayload struct {
		Handle      string  `json:"handle"`
		Owner       string  `json:"owner"`
		Name        string  `json:"name"`
		Thumbnail   *string `json:"thumbnail"`
		Description string  `json:"description"`
	}
)

func newStatePayload(state model.AssetState) statePayload {
	stats := statsPayload{
		ListHeight:        state.Stats.ListHeight,
		TradeHeight:       state.Stats.TradeHeight,
		TradeCount:        state.Stats.TradeCount,
		TradeVolume:       state.Stats.TradeVolume.String(),
		TradeCountScaled:  state.Stats.TradeCountScaled,
		TradeVolumeScaled: state.Stats.TradeVolumeScaled,
	}
	if state.Stats.Price != nil {
		price := state.Stats.Price.String()
		stats.Price = &price
	}
	return statePayload{
		Creator: state.Creator,
		Owner:   state.Owner,
		Stats:   stats,
	}
}
