package transport

import (
	"context"
	"encoding/base64"
	"errors"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/dingocoin"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/service"
)

func (h *Handler) updateProfile(c *gin.Context) {
	var req struct {
		Timestamp int64   `json:"timestamp"`
		Owner     string  `json:"owner"`
		Name      string  `json:"name"`
		Thumbnail *string `json:"thumbnail"`
		Signature string  `json:"signature"`
	}
	if !bind(c, &req) {
		return
	}
	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		respondErr(c, errors.New("Invalid signature encoding"))
		return
	}
	err = h.market.UpdateProfile(c.Request.Context(), service.ProfileUpdate{
		Timestamp: req.Timestamp,
		Owner:     req.Owner,
		Name:      req.Name,
		Thumbnail: req.Thumbnail,
		Signature: signature,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{})
}

func (h *Handler) getProfileStats(c *gin.Context) {
	var req struct {
		Owner string `json:"owner"`
	}
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	stats, err := h.repo.ProfileStats(ctx, req.Owner)
	if err != nil {
		respondErr(c, err)
		return
	}
	profile, err := h.repo.Profile(ctx, req.Owner)
	if err != nil {
		respondErr(c, err)
		return
	}
	response := gin.H{"stats": newProfileStatsDTO(stats)}
	if profile != nil {
		response["name"] = profile.Name
		response["thumbnail"] = profile.Thumbnail
	}
	respond(c, response)
}

func (h *Handler) ownerQuery(c *gin.Context, query func(ctx context.Context, owner string) ([]string, error)) {
	var req struct {
		Owner string `json:"owner"`
	}
	if !bind(c, &req) {
		return
	}
	addresses, err := query(c.Request.Context(), req.Owner)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, addresses)
}

func (h *Handler) getCreatedNfts(c *gin.Context) {
	h.ownerQuery(c, h.repo.CreatedAssets)
}

func (h *Handler) getOwnedNfts(c *gin.Context) {
	h.ownerQuery(c, h.repo.OwnedAssets)
}

func (h *Handler) getHistoricalNfts(c *gin.Context) {
	h.ownerQuery(c, h.repo.HistoricalAssets)
}

func (h *Handler) ownerCount(c *gin.Context, count func(ctx context.Context, owner string) (uint64, error)) {
	var req struct {
		Owner string `json:"owner"`
	}
	if !bind(c, &req) {
		return
	}
	n, err := count(c.Request.Context(), req.Owner)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"count": n})
}

func (h *Handler) getCreatedCount(c *gin.Context) {
	h.ownerCount(c, h.repo.CreatedAssetCount)
}

func (h *Handler) getCollectionCount(c *gin.Context) {
	h.ownerCount(c, h.repo.CollectionCount)
}

func (h *Handler) getHistoricalCount(c *gin.Context) {
	h.ownerCount(c, h.repo.HistoricalAssetCount)
}

// queryProfilesBySearch matches display names; a query that is itself a
// well-formed address is always included so pasting an address finds
// the profile even before it has a name.
func (h *Handler) queryProfilesBySearch(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if !bind(c, &req) {
		return
	}
	owners, err := h.repo.SearchProfiles(c.Request.Context(), searchTerms(req.Text))
	if err != nil {
		respondErr(c, err)
		return
	}
	if dingocoin.IsAddress(req.Text) && !slices.Contains(owners, req.Text) {
		owners = append(owners, req.Text)
	}
	respond(c, owners)
}

func (h *Handler) queryProfilesByTradeCount(c *gin.Context) {
	owners, err := h.repo.ProfilesByTradeCount(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, owners)
}

func (h *Handler) queryProfilesByEarnings(c *gin.Context) {
	owners, err := h.repo.ProfilesByEarnings(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, owners)
}
