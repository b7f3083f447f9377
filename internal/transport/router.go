// Package transport exposes the marketplace HTTP API.
package transport

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dingocoin/nft-marketplace-backend/internal/nft/service"
)

// Handler serves the marketplace endpoints. Every endpoint is a POST
// with a JSON body; failures are reported as {"error": "..."} with a
// 200 status, which is what the marketplace frontend expects.
type Handler struct {
	repo    service.Repository
	market  *service.MarketService
	heights service.HeightSource
	logger  *zap.Logger
}

func NewHandler(
	repo service.Repository,
	market *service.MarketService,
	heights service.HeightSource,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		repo:    repo,
		market:  market,
		heights: heights,
		logger:  logger,
	}
}

// NewRouter builds the gin engine serving the marketplace API.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	nft := router.Group("/nft")
	{
		nft.POST("/getListTransaction", h.getListTransaction)
		nft.POST("/sendListTransaction", h.sendListTransaction)
		nft.POST("/getRepriceTransaction", h.getRepriceTransaction)
		nft.POST("/sendRepriceTransaction", h.sendRepriceTransaction)
		nft.POST("/getBuyTransaction", h.getBuyTransaction)
		nft.POST("/sendBuyTransaction", h.sendBuyTransaction)
		nft.POST("/getBusy", h.getBusy)
		nft.POST("/getContent", h.getContent)
		nft.POST("/query", h.queryNfts)
		nft.POST("/queryBySearch", h.queryNftsBySearch)
		nft.POST("/queryByNewest", h.queryNftsByNewest)
	}

	profile := router.Group("/profile")
	{
		profile.POST("/update", h.updateProfile)
		profile.POST("/getStats", h.getProfileStats)
		profile.POST("/getCreatedNfts", h.getCreatedNfts)
		profile.POST("/getOwnedNfts", h.getOwnedNfts)
		profile.POST("/getHistoricalNfts", h.getHistoricalNfts)
		profile.POST("/getCreatedCount", h.getCreatedCount)
		profile.POST("/getCollectionCount", h.getCollectionCount)
		profile.POST("/getHistoricalCount", h.getHistoricalCount)
		profile.POST("/queryBySearch", h.queryProfilesBySearch)
		profile.POST("/queryByTradeCount", h.queryProfilesByTradeCount)
		profile.POST("/queryByEarnings", h.queryProfilesByEarnings)
	}

	collection := router.Group("/collection")
	{
		collection.POST("/create", h.createCollection)
		collection.POST("/update", h.updateCollection)
		collection.POST("/setItem", h.setCollectionItem)
		collection.POST("/getStats", h.getCollectionStats)
		collection.POST("/getItems", h.getCollectionItems)
		collection.POST("/getItemCollection", h.getItemCollection)
		collection.POST("/queryByOwner", h.queryCollectionsByOwner)
		collection.POST("/queryUnassignedNftsByOwner", h.queryUnassignedNftsByOwner)
		collection.POST("/queryBySearch", h.queryCollectionsBySearch)
		collection.POST("/queryByTradeCountScaled", h.queryCollectionsByTradeCountScaled)
		collection.POST("/queryByTradeVolumeScaled", h.queryCollectionsByTradeVolumeScaled)
		collection.POST("/queryByTradeVolume", h.queryCollectionsByTradeVolume)
		collection.POST("/queryByValuable", h.queryCollectionsByValuable)
	}

	router.POST("/getPlatformStats", h.getPlatformStats)

	return router
}
