package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/ligaoffice/backend/internal/httputil"
	"github.com/ligaoffice/backend/internal/models"
)

// RegisterCashMovementRoutes registers the routes for cash movements with
// the RouterGroup that is passed.
func RegisterCashMovementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCashMovementList)
		r.GET("", GetCashMovements)
		r.POST("", CreateCashMovements)
	}

	// Cash movement with ID
	{
		r.OPTIONS("/:id", OptionsCashMovementDetail)
		r.GET("/:id", GetCashMovement)
		r.PATCH("/:id", UpdateCashMovement)
		r.DELETE("/:id", DeleteCashMovement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashMovements
// @Success		204
// @Router			/v1/cash-movements [options]
func OptionsCashMovementList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashMovements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-movements/{id} [options]
func OptionsCashMovementDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CashMovement{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create cash movements
// @Description	Creates new cash movements and applies their allocations to the referenced invoices. A movement is only created when all its allocations succeed.
// @Tags			CashMovements
// @Produce		json
// @Success		201			{object}	CashMovementCreateResponse
// @Failure		400			{object}	CashMovementCreateResponse
// @Failure		404			{object}	CashMovementCreateResponse
// @Failure		409			{object}	CashMovementCreateResponse
// @Failure		500			{object}	CashMovementCreateResponse
// @Param			movements	body		[]CashMovementEditable	true	"Cash Movements"
// @Router			/v1/cash-movements [post]
func CreateCashMovements(c *gin.Context) {
	var editables []CashMovementEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashMovementCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CashMovementCreateResponse{}

	for _, editable := range editables {
		movement := editable.model()

		err = models.CreateCashMovement(models.DB, &movement)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCashMovement(c.GetString(string(models.DBContextURL)), movement)
		r.Data = append(r.Data, CashMovementResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get cash movements
// @Description	Returns a list of cash movements
// @Tags			CashMovements
// @Produce		json
// @Success		200	{object}	CashMovementListResponse
// @Failure		400	{object}	CashMovementListResponse
// @Failure		500	{object}	CashMovementListResponse
// @Router			/v1/cash-movements [get]
// @Param			provider	query	string	false	"Filter by provider ID"
// @Param			direction	query	string	false	"Filter by direction"
// @Param			note		query	string	false	"Filter by note"
// @Param			fromDate	query	string	false	"Only movements on or after this date"
// @Param			untilDate	query	string	false	"Only movements on or before this date"
// @Param			offset		query	uint	false	"The offset of the first Cash Movement returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Cash Movements to return. Defaults to 50."
func GetCashMovements(c *gin.Context) {
	var filter CashMovementQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Preload("Allocations").
		Order("datetime(cash_movements.origin_date) DESC, datetime(cash_movements.created_at) DESC").
		Where(filter.model(), queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("datetime(cash_movements.origin_date) >= datetime(?)", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("datetime(cash_movements.origin_date) <= datetime(?)", filter.UntilDate)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Cash Movements and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var movements []models.CashMovement
	err := q.Find(&movements).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashMovementListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]CashMovement, 0, len(movements))
	for _, movement := range movements {
		data = append(data, newCashMovement(url, movement))
	}

	c.JSON(http.StatusOK, CashMovementListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get cash movement
// @Description	Returns a specific cash movement with its allocations
// @Tags			CashMovements
// @Produce		json
// @Success		200	{object}	CashMovementResponse
// @Failure		400	{object}	CashMovementResponse
// @Failure		404	{object}	CashMovementResponse
// @Failure		500	{object}	CashMovementResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-movements/{id} [get]
func GetCashMovement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementResponse{
			Error: &s,
		})
		return
	}

	var movement models.CashMovement
	err = models.DB.Preload("Allocations").First(&movement, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementResponse{
			Error: &s,
		})
		return
	}

	data := newCashMovement(c.GetString(string(models.DBContextURL)), movement)
	c.JSON(http.StatusOK, CashMovementResponse{Data: &data})
}

// @Summary		Update cash movement
// @Description	Replaces a cash movement and its allocations. The old allocations are reversed and the new ones applied in one unit of work.
// @Tags			CashMovements
// @Accept			json
// @Produce		json
// @Success		200			{object}	CashMovementResponse
// @Failure		400			{object}	CashMovementResponse
// @Failure		404			{object}	CashMovementResponse
// @Failure		409			{object}	CashMovementResponse
// @Failure		500			{object}	CashMovementResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			movement	body		CashMovementEditable	true	"Cash Movement"
// @Router			/v1/cash-movements/{id} [patch]
func UpdateCashMovement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementResponse{
			Error: &s,
		})
		return
	}

	var editable CashMovementEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementResponse{
			Error: &s,
		})
		return
	}

	movement := editable.model()
	err = models.UpdateCashMovement(models.DB, uri.ID.UUID, &movement)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashMovementResponse{
			Error: &s,
		})
		return
	}

	data := newCashMovement(c.GetString(string(models.DBContextURL)), movement)
	c.JSON(http.StatusOK, CashMovementResponse{Data: &data})
}

// @Summary		Delete cash movement
// @Description	Deletes a cash movement. Its allocations are reversed, restoring the pending amounts of the settled invoices.
// @Tags			CashMovements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-movements/{id} [delete]
func DeleteCashMovement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteCashMovement(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
