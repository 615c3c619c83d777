package handlers

import (
	"net/http"
	"time"

	"github.com/gigconnect/marketplace-api/internal/apierrors"
	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gigconnect/marketplace-api/internal/dto"
	"github.com/gigconnect/marketplace-api/internal/middleware"
	"github.com/gigconnect/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bids *services.BidService
}

func NewBidHandler(bids *services.BidService) *BidHandler {
	return &BidHandler{bids: bids}
}

// SubmitBid places a bid on a task for the authenticated user
func (h *BidHandler) SubmitBid(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type submitBidRequest struct {
		BidAmount        float64 `json:"bidAmount"`
		ProposedDeadline string  `json:"proposedDeadline" binding:"required"`
		ProposalText     string  `json:"proposalText"`
	}

	var req submitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	proposedDeadline, err := time.Parse(constants.DateLayout, req.ProposedDeadline)
	if err != nil {
		apierrors.BadRequest(c, "Proposed deadline must be a valid date (YYYY-MM-DD)")
		return
	}

	bid, err := h.bids.SubmitBid(c.Param("id"), services.SubmitBidInput{
		BidAmount:        req.BidAmount,
		ProposedDeadline: proposedDeadline,
		ProposalText:     req.ProposalText,
	}, ident)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bid placed successfully",
		"bid":     dto.ToBidDTO(*bid),
	})
}

// ListBidsForTask returns the bids on a task in the order received
func (h *BidHandler) ListBidsForTask(c *gin.Context) {
	bids, err := h.bids.ListBidsForTask(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBidDTOs(bids))
}

// ListMyBids returns every bid placed by the authenticated user
func (h *BidHandler) ListMyBids(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	bidderEmail := c.DefaultQuery("bidderEmail", ident.Email)

	bids, err := h.bids.ListBidsByBidder(bidderEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBidDTOs(bids))
}
