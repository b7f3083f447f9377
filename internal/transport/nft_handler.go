package transport

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/service"
)

func (h *Handler) getListTransaction(c *gin.Context) {
	var req struct {
		ContentHash string `json:"contentHash"`
		Price       string `json:"price"`
		Royalty     uint64 `json:"royalty"`
	}
	if !bind(c, &req) {
		return
	}
	contentHash, err := parseHex(req.ContentHash)
	if err != nil {
		respondErr(c, err)
		return
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		respondErr(c, err)
		return
	}
	unsigned, err := h.market.BuildListTransaction(c.Request.Context(), contentHash, price, req.Royalty)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, unsignedResponse(unsigned))
}

func (h *Handler) sendListTransaction(c *gin.Context) {
	var req struct {
		Tx          string `json:"tx"`
		Content     string `json:"content"`
		Preview     string `json:"preview"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Tags        string `json:"tags"`
	}
	if !bind(c, &req) {
		return
	}
	tx, err := parseHex(req.Tx)
	if err != nil {
		respondErr(c, err)
		return
	}
	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		respondErr(c, errors.New("Invalid content encoding"))
		return
	}
	preview, err := base64.StdEncoding.DecodeString(req.Preview)
	if err != nil {
		respondErr(c, errors.New("Invalid preview encoding"))
		return
	}
	txid, err := h.market.SubmitListTransaction(c.Request.Context(), service.ListSubmission{
		Tx:          tx,
		Content:     content,
		Preview:     preview,
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"txid": txid})
}

func (h *Handler) getRepriceTransaction(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
		Price   string `json:"price"`
	}
	if !bind(c, &req) {
		return
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		respondErr(c, err)
		return
	}
	unsigned, err := h.market.BuildRepriceTransaction(c.Request.Context(), req.Address, price)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, unsignedResponse(unsigned))
}

func (h *Handler) sendRepriceTransaction(c *gin.Context) {
	h.sendSignedTransaction(c, h.market.SubmitRepriceTransaction)
}

func (h *Handler) getBuyTransaction(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
		Price   string `json:"price"`
	}
	if !bind(c, &req) {
		return
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		respondErr(c, err)
		return
	}
	unsigned, err := h.market.BuildBuyTransaction(c.Request.Context(), req.Address, price)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, unsignedResponse(unsigned))
}

func (h *Handler) sendBuyTransaction(c *gin.Context) {
	h.sendSignedTransaction(c, h.market.SubmitBuyTransaction)
}

func (h *Handler) sendSignedTransaction(c *gin.Context, submit func(ctx context.Context, raw []byte) (string, error)) {
	var req struct {
		Tx string `json:"tx"`
	}
	if !bind(c, &req) {
		return
	}
	tx, err := parseHex(req.Tx)
	if err != nil {
		respondErr(c, err)
		return
	}
	txid, err := submit(c.Request.Context(), tx)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"txid": txid})
}

func (h *Handler) getBusy(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if !bind(c, &req) {
		return
	}
	busy, err := h.market.Busy(c.Request.Context(), req.Address)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"busy": busy})
}

func (h *Handler) getContent(c *gin.Context) {
	var req struct {
		Address   string `json:"address"`
		Timestamp int64  `json:"timestamp"`
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
	content, err := h.market.AuthorizeContent(c.Request.Context(), req.Address, req.Timestamp, signature)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"content": base64.StdEncoding.EncodeToString(content)})
}

func (h *Handler) queryNfts(c *gin.Context) {
	var req struct {
		Key        string `json:"key"`
		Descending bool   `json:"descending"`
		Offset     int    `json:"offset"`
		Limit      int    `json:"limit"`
	}
	if !bind(c, &req) {
		return
	}
	addresses, err := h.repo.RankedAssets(c.Request.Context(), req.Key, req.Descending, req.Offset, req.Limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, addresses)
}

func (h *Handler) queryNftsBySearch(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if !bind(c, &req) {
		return
	}
	addresses, err := h.repo.SearchAssets(c.Request.Context(), searchTerms(req.Text))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, addresses)
}

func (h *Handler) queryNftsByNewest(c *gin.Context) {
	var req struct {
		BeforeID *int64 `json:"beforeId"`
	}
	if !bind(c, &req) {
		return
	}
	assets, err := h.repo.NewestAssets(c.Request.Context(), req.BeforeID)
	if err != nil {
		respondErr(c, err)
		return
	}
	results := make([]gin.H, 0, len(assets))
	for _, asset := range assets {
		results = append(results, gin.H{"id": asset.ID, "address": asset.Address})
	}
	respond(c, results)
}

func (h *Handler) getPlatformStats(c *gin.Context) {
	stats, err := h.repo.PlatformStats(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, gin.H{"totalVolume": stats.TotalVolume})
}
