// Print HTTP handlers.
//
//   - GET /prints            (filtered, paginated list)
//   - GET /prints/{number}   (single print with document links)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/services"
	"github.com/tbourn/sejm-prints-backend/internal/utils"
)

// PrintListResponse is the body of GET /prints.
type PrintListResponse struct {
	Success    bool                   `json:"success" example:"true"`
	Data       []domain.EnrichedPrint `json:"data"`
	Pagination domain.Pagination      `json:"pagination"`
}

// PrintDetailsResponse is the body of GET /prints/{number}.
type PrintDetailsResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    domain.PrintDetails `json:"data"`
}

// printQuery reads list parameters. Non-numeric limit or offset fall back to
// the defaults; range clamping is left to the service.
func printQuery(c *gin.Context) services.PrintQuery {
	search := c.Query("q")
	if search == "" {
		search = c.Query("search")
	}
	return services.PrintQuery{
		Limit:  utils.AtoiDefault(c.Query("limit"), services.DefaultLimit),
		Offset: utils.AtoiDefault(c.Query("offset"), 0),
		Type:   strings.TrimSpace(c.Query("type")),
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(search),
	}
}

// ListPrints godoc
// @ID          listPrints
// @Summary     List legislative prints
// @Description Returns enriched prints of the current term, newest first, filtered and paginated.
// @Tags        Prints
// @Produce     json
//
// @Param       limit   query  int     false "Page size"                  minimum(1) maximum(100) default(20)
// @Param       offset  query  int     false "Items to skip"              minimum(0) default(0)
// @Param       type    query  string  false "Print type or alias, or all" example(rządowy_projekt_ustawy)
// @Param       status  query  string  false "Print status, or all"       example(nowe)
// @Param       q       query  string  false "Title search"               example(budżet)
//
// @Success     200  {object}  handlers.PrintListResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid filter"
// @Failure     502  {object}  handlers.ErrorResponse  "Sejm API unavailable"
// @Router      /prints [get]
func (h *Handlers) ListPrints(c *gin.Context) {
	page, err := h.prints.FetchPrints(c.Request.Context(), printQuery(c))
	if err != nil {
		failErr(c, err)
		return
	}
	data := page.Prints
	if data == nil {
		data = []domain.EnrichedPrint{}
	}
	c.JSON(http.StatusOK, PrintListResponse{Success: true, Data: data, Pagination: page.Pagination})
}

// GetPrint godoc
// @ID          getPrint
// @Summary     Get a legislative print
// @Description Returns one enriched print with links to its PDF and legislative process.
// @Tags        Prints
// @Produce     json
//
// @Param       number  path  string  true  "Print number"  example(1234)
//
// @Success     200  {object}  handlers.PrintDetailsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid print number"
// @Failure     404  {object}  handlers.ErrorResponse  "Print not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Sejm API unavailable"
// @Router      /prints/{number} [get]
func (h *Handlers) GetPrint(c *gin.Context) {
	d, err := h.prints.FetchPrintDetails(c.Request.Context(), c.Param("number"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}
