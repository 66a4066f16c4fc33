package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/ligaoffice/backend/internal/httputil"
	"github.com/ligaoffice/backend/internal/models"
)

// RegisterInvoiceRoutes registers the routes for invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvoiceList)
		r.GET("", GetInvoices)
		r.POST("", CreateInvoices)
	}

	// Invoice with ID
	{
		r.OPTIONS("/:id", OptionsInvoiceDetail)
		r.GET("/:id", GetInvoice)
		r.PATCH("/:id", UpdateInvoice)
		r.DELETE("/:id", DeleteInvoice)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Invoice{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create invoices
// @Description	Creates new invoices with their pending amount set to the total
// @Tags			Invoices
// @Produce		json
// @Success		201			{object}	InvoiceCreateResponse
// @Failure		400			{object}	InvoiceCreateResponse
// @Failure		404			{object}	InvoiceCreateResponse
// @Failure		500			{object}	InvoiceCreateResponse
// @Param			invoices	body		[]InvoiceEditable	true	"Invoices"
// @Router			/v1/invoices [post]
func CreateInvoices(c *gin.Context) {
	var editables []InvoiceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvoiceCreateResponse{}

	for _, editable := range editables {
		invoice := editable.model()

		if !invoice.TotalAmount.IsPositive() {
			status = r.appendError(models.ErrInvalidAmount, status)
			continue
		}

		err = models.DB.Create(&invoice).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInvoice(c.GetString(string(models.DBContextURL)), invoice)
		r.Data = append(r.Data, InvoiceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get invoices
// @Description	Returns a list of invoices
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceListResponse
// @Failure		400	{object}	InvoiceListResponse
// @Failure		500	{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
// @Param			provider	query	string	false	"Filter by provider ID"
// @Param			direction	query	string	false	"Filter by direction"
// @Param			number		query	string	false	"Filter by invoice number"
// @Param			pending		query	bool	false	"Only return invoices with an outstanding balance"
// @Param			offset		query	uint	false	"The offset of the first Invoice returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Invoices to return. Defaults to 50."
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("datetime(invoices.due_date) ASC, datetime(invoices.created_at) ASC").
		Where(filter.model(), queryFields...)

	if filter.Number != "" {
		q = q.Where("number LIKE ?", fmt.Sprintf("%%%s%%", filter.Number))
	} else if slices.Contains(setFields, "Number") {
		q = q.Where("number = ''")
	}

	if filter.Pending {
		q = q.Where("pending_amount > 0")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Invoices and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var invoices []models.Invoice
	err := q.Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(url, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	InvoiceResponse
// @Failure		404	{object}	InvoiceResponse
// @Failure		500	{object}	InvoiceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	data := newInvoice(c.GetString(string(models.DBContextURL)), invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// @Summary		Update invoice
// @Description	Update the number and dates of an invoice. Amounts are fixed at creation, the pending amount only changes through cash movement allocations.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	InvoiceResponse
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice	body		InvoiceUpdateable	true	"Invoice"
// @Router			/v1/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvoiceUpdateable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	var data InvoiceUpdateable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&invoice).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	r := newInvoice(c.GetString(string(models.DBContextURL)), invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &r})
}

// @Summary		Delete invoice
// @Description	Deletes an invoice. Invoices that are partially or fully settled cannot be deleted.
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
