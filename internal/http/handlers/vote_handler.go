// Vote HTTP handlers.
//
//   - GET    /prints/{number}/votes   (stats plus the caller's vote)
//   - POST   /prints/{number}/votes   (like or dislike)
//   - DELETE /prints/{number}/votes   (withdraw)
//   - GET    /votes/stats?numbers=    (batch stats)
//   - GET    /votes/mine?numbers=     (batch of the caller's votes)
//
// The caller is identified by middleware.Identity (X-User-ID or a resolved
// X-Device-ID). Mutations and /votes/mine require an identity.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/services"
	"github.com/tbourn/sejm-prints-backend/internal/utils"
)

// SubmitVoteRequest is the JSON payload for POST /prints/{number}/votes.
type SubmitVoteRequest struct {
	VoteType string `json:"voteType" binding:"required" enums:"like,dislike" example:"like"`
}

// VoteResultResponse is the body of vote mutations.
type VoteResultResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    services.VoteResult `json:"data"`
}

// VoteSummaryResponse is the body of GET /prints/{number}/votes.
type VoteSummaryResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    services.VoteSummary `json:"data"`
}

// VoteStatsMapResponse maps print numbers to their stats.
type VoteStatsMapResponse struct {
	Success bool                          `json:"success" example:"true"`
	Data    map[string]domain.VotingStats `json:"data"`
}

// UserVotesResponse maps print numbers to the caller's vote.
type UserVotesResponse struct {
	Success bool                       `json:"success" example:"true"`
	Data    map[string]domain.VoteType `json:"data"`
}

// GetVotes godoc
// @ID          getVotes
// @Summary     Vote summary of a print
// @Description Returns like/dislike counts and, when the caller is identified, their own vote.
// @Tags        Votes
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User id"
// @Param       X-Device-ID  header  string  false "Device id, resolved to an anonymous user"
// @Param       number       path    string  true  "Print number"  example(1234)
//
// @Success     200  {object}  handlers.VoteSummaryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid print number"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /prints/{number}/votes [get]
func (h *Handlers) GetVotes(c *gin.Context) {
	s, err := h.votes.Summary(c.Request.Context(), userID(c), c.Param("number"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, s)
}

// SubmitVote godoc
// @ID          submitVote
// @Summary     Vote on a print
// @Description Creates or replaces the caller's vote. The action is "created" or "updated".
// @Tags        Votes
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User id"
// @Param       X-Device-ID  header  string  false "Device id, resolved to an anonymous user"
// @Param       number       path    string  true  "Print number"  example(1234)
// @Param       body         body    handlers.SubmitVoteRequest  true  "Vote"
//
// @Success     200  {object}  handlers.VoteResultResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /prints/{number}/votes [post]
func (h *Handlers) SubmitVote(c *gin.Context) {
	var req SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	vt := domain.VoteType(strings.ToLower(strings.TrimSpace(req.VoteType)))

	res, err := h.votes.Submit(c.Request.Context(), userID(c), c.Param("number"), vt)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// RemoveVote godoc
// @ID          removeVote
// @Summary     Withdraw a vote
// @Description Deletes the caller's vote on a print. Removing a missing vote succeeds.
// @Tags        Votes
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User id"
// @Param       X-Device-ID  header  string  false "Device id, resolved to an anonymous user"
// @Param       number       path    string  true  "Print number"  example(1234)
//
// @Success     200  {object}  handlers.VoteResultResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid print number"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /prints/{number}/votes [delete]
func (h *Handlers) RemoveVote(c *gin.Context) {
	res, err := h.votes.Remove(c.Request.Context(), userID(c), c.Param("number"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// BatchStats godoc
// @ID          batchVoteStats
// @Summary     Vote stats for several prints
// @Description Returns stats for every requested print; prints without votes are zeroed.
// @Tags        Votes
// @Produce     json
//
// @Param       numbers  query  string  true  "Comma-separated print numbers (max 100)"  example(1234,1235)
//
// @Success     200  {object}  handlers.VoteStatsMapResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid numbers"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /votes/stats [get]
func (h *Handlers) BatchStats(c *gin.Context) {
	numbers := utils.SplitList(c.QueryArray("numbers")...)
	if len(numbers) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "numbers query parameter is required")
		return
	}
	stats, err := h.votes.MultipleStats(c.Request.Context(), numbers)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

// MyVotes godoc
// @ID          myVotes
// @Summary     The caller's votes on several prints
// @Description Returns the caller's vote for each requested print they voted on.
// @Tags        Votes
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User id"
// @Param       X-Device-ID  header  string  false "Device id, resolved to an anonymous user"
// @Param       numbers      query   string  true  "Comma-separated print numbers (max 100)"  example(1234,1235)
//
// @Success     200  {object}  handlers.UserVotesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid numbers"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /votes/mine [get]
func (h *Handlers) MyVotes(c *gin.Context) {
	numbers := utils.SplitList(c.QueryArray("numbers")...)
	if len(numbers) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "numbers query parameter is required")
		return
	}
	votes, err := h.votes.MultipleUserVotes(c.Request.Context(), userID(c), numbers)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, votes)
}
