package transport

import (
	"encoding/base64"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/service"
)

const collectionRankLimit = 100

func (h *Handler) collectionUpdateRequest(c *gin.Context) (service.CollectionUpdate, bool) {
	var req struct {
		Timestamp   int64   `json:"timestamp"`
		Owner       string  `json:"owner"`
		Handle      string  `json:"handle"`
		Name        string  `json:"name"`
		Thumbnail   *string `json:"thumbnail"`
		Description string  `json:"description"`
		Signature   string  `json:"signature"`
	}
	if !bind(c, &req) {
		return service.CollectionUpdate{}, false
	}
	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		respondErr(c, errors.New("Invalid signature encoding"))
		return service.CollectionUpdate{}, false
	}
	return service.CollectionUpdate{
		Timestamp:   req.Timestamp,
		Owner:       req.Owner,
		Handle:      req.Handle,
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		Signature:   signature,
	}, true
}

func (h *Handler) createCollection(c *gin.Context) {
	req, ok := h.collectionUpdateRequest(c)
	if !ok {
		return
	}
	if err := h.market.CreateCollection(c.Request.Context(), req); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{})
}

func (h *Handler) updateCollection(c *gin.Context) {
	req, ok := h.collectionUpdateRequest(c)
	if !ok {
		return
	}
	if err := h.market.UpdateCollection(c.Request.Context(), req); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{})
}

func (h *Handler) setCollectionItem(c *gin.Context) {
	var req struct {
		Timestamp int64  `json:"timestamp"`
		Address   string `json:"address"`
		Handle    string `json:"handle"`
		Signature string `json:"signature"`
	}
	if !bind(c, &req) {
		return
	}
	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		respondErr(c, errors.New("Invalid signature encoding"))
		return
	}
	err = h.market.SetCollectionItem(c.Request.Context(), service.ItemAssignment{
		Timestamp: req.Timestamp,
		Address:   req.Address,
		Handle:    req.Handle,
		Signature: signature,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{})
}

func (h *Handler) getCollectionStats(c *gin.Context) {
	var req struct {
		Handle string `json:"handle"`
	}
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	collection, err := h.repo.Collection(ctx, req.Handle)
	if err != nil {
		respondErr(c, err)
		return
	}
	if collection == nil {
		respondErr(c, errors.New("Unknown collection"))
		return
	}
	stats, err := h.repo.CollectionStats(ctx, req.Handle)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{
		"handle":      collection.Handle,
		"owner":       collection.Owner,
		"name":        collection.Name,
		"thumbnail":   collection.Thumbnail,
		"description": collection.Description,
		"count":       stats.Count,
		"tradeCount":  stats.TradeCount,
		"tradeVolume": stats.TradeVolume,
	})
}

func (h *Handler) getCollectionItems(c *gin.Context) {
	var req struct {
		Handle string `json:"handle"`
	}
	if !bind(c, &req) {
		return
	}
	items, err := h.repo.CollectionItems(c.Request.Context(), req.Handle)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, items)
}

func (h *Handler) getItemCollection(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if !bind(c, &req) {
		return
	}
	handle, err := h.repo.ItemCollection(c.Request.Context(), req.Address)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"handle": handle})
}

func (h *Handler) queryCollectionsByOwner(c *gin.Context) {
	h.ownerQuery(c, h.repo.CollectionsByOwner)
}

func (h *Handler) queryUnassignedNftsByOwner(c *gin.Context) {
	h.ownerQuery(c, h.repo.UnassignedAssetsByCreator)
}

func (h *Handler) queryCollectionsBySearch(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if !bind(c, &req) {
		return
	}
	handles, err := h.repo.SearchCollections(c.Request.Context(), searchTerms(req.Text))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, handles)
}

func (h *Handler) queryCollectionsByTradeCountScaled(c *gin.Context) {
	var req struct {
		Limit int `json:"limit"`
	}
	if !bind(c, &req) {
		return
	}
	if req.Limit <= 0 || req.Limit > collectionRankLimit {
		req.Limit = collectionRankLimit
	}
	h.collectionActivityQuery(c, "trade_count_scaled", service.ActivityDecay, req.Limit)
}

func (h *Handler) queryCollectionsByTradeVolumeScaled(c *gin.Context) {
	h.collectionActivityQuery(c, "trade_volume_scaled", service.ActivityDecay, collectionRankLimit)
}

func (h *Handler) queryCollectionsByTradeVolume(c *gin.Context) {
	h.collectionActivityQuery(c, "trade_volume", 1, collectionRankLimit)
}

func (h *Handler) collectionActivityQuery(c *gin.Context, key string, decay float64, limit int) {
	handles, err := h.repo.CollectionsByActivity(c.Request.Context(), key, decay, h.heights.Height(), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, handles)
}

func (h *Handler) queryCollectionsByValuable(c *gin.Context) {
	handles, err := h.repo.CollectionsByValuable(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, handles)
}
