package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ligaoffice/backend/internal/httputil"
	"github.com/ligaoffice/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Providers        string `json:"providers" example:"https://example.com/api/v1/providers"`                // URL of Provider collection endpoint
	Invoices         string `json:"invoices" example:"https://example.com/api/v1/invoices"`                  // URL of Invoice collection endpoint
	CashMovements    string `json:"cashMovements" example:"https://example.com/api/v1/cash-movements"`       // URL of Cash Movement collection endpoint
	SettlementSheets string `json:"settlementSheets" example:"https://example.com/api/v1/settlement-sheets"` // URL of Settlement Sheet collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Providers:        url + "/v1/providers",
			Invoices:         url + "/v1/invoices",
			CashMovements:    url + "/v1/cash-movements",
			SettlementSheets: url + "/v1/settlement-sheets",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
