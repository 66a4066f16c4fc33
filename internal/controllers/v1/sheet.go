package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/ligaoffice/backend/internal/httputil"
	"github.com/ligaoffice/backend/internal/models"
)

// RegisterSettlementSheetRoutes registers the routes for settlement sheets
// with the RouterGroup that is passed.
func RegisterSettlementSheetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettlementSheetList)
		r.GET("", GetSettlementSheets)
		r.POST("", CreateSettlementSheets)
	}

	// Settlement sheet with ID
	{
		r.OPTIONS("/:id", OptionsSettlementSheetDetail)
		r.GET("/:id", GetSettlementSheet)
		r.PATCH("/:id", UpdateSettlementSheet)
		r.DELETE("/:id", DeleteSettlementSheet)
	}

	// Lifecycle transitions
	{
		r.OPTIONS("/:id/close", OptionsSheetTransition)
		r.POST("/:id/close", CloseSettlementSheet)
		r.OPTIONS("/:id/account", OptionsSheetTransition)
		r.POST("/:id/account", AccountSettlementSheet)
		r.OPTIONS("/:id/reopen", OptionsSheetTransition)
		r.POST("/:id/reopen", ReopenSettlementSheet)
	}

	RegisterTeamRowRoutes(r)
	RegisterExpenseRowRoutes(r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Router			/v1/settlement-sheets [options]
func OptionsSettlementSheetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id} [options]
func OptionsSettlementSheetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SettlementSheet{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id}/close [options]
func OptionsSheetTransition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SettlementSheet{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create settlement sheets
// @Description	Creates new settlement sheets in the open state. There can only be one sheet per match day.
// @Tags			SettlementSheets
// @Produce		json
// @Success		201		{object}	SettlementSheetResponse
// @Failure		400		{object}	SettlementSheetResponse
// @Failure		500		{object}	SettlementSheetResponse
// @Param			sheet	body		SettlementSheetEditable	true	"Settlement Sheet"
// @Router			/v1/settlement-sheets [post]
func CreateSettlementSheets(c *gin.Context) {
	var editable SettlementSheetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	sheet := editable.model()
	err = models.DB.Create(&sheet).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	data := newSettlementSheet(c.GetString(string(models.DBContextURL)), sheet)
	c.JSON(http.StatusCreated, SettlementSheetResponse{Data: &data})
}

// @Summary		Get settlement sheets
// @Description	Returns a list of settlement sheets, newest match day first
// @Tags			SettlementSheets
// @Produce		json
// @Success		200	{object}	SettlementSheetListResponse
// @Failure		400	{object}	SettlementSheetListResponse
// @Failure		500	{object}	SettlementSheetListResponse
// @Router			/v1/settlement-sheets [get]
// @Param			state		query	string	false	"Filter by lifecycle state"
// @Param			fromDay		query	string	false	"Only sheets on or after this match day"
// @Param			untilDay	query	string	false	"Only sheets on or before this match day"
// @Param			offset		query	uint	false	"The offset of the first Settlement Sheet returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Settlement Sheets to return. Defaults to 50."
func GetSettlementSheets(c *gin.Context) {
	var filter SettlementSheetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("datetime(settlement_sheets.match_day) DESC")

	switch filter.State {
	case models.SheetOpen:
		q = q.Where("closed_at IS NULL")
	case models.SheetClosed:
		q = q.Where("closed_at IS NOT NULL AND accounted_at IS NULL")
	case models.SheetAccounted:
		q = q.Where("accounted_at IS NOT NULL")
	}

	if !filter.FromDay.IsZero() {
		q = q.Where("datetime(settlement_sheets.match_day) >= datetime(?)", filter.FromDay)
	}

	if !filter.UntilDay.IsZero() {
		q = q.Where("datetime(settlement_sheets.match_day) <= datetime(?)", filter.UntilDay)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Settlement Sheets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var sheets []models.SettlementSheet
	err := q.Find(&sheets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementSheetListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]SettlementSheet, 0, len(sheets))
	for _, sheet := range sheets {
		data = append(data, newSettlementSheet(url, sheet))
	}

	c.JSON(http.StatusOK, SettlementSheetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get settlement sheet
// @Description	Returns a specific settlement sheet with its rows and totals. Totals are computed from the rows on every read.
// @Tags			SettlementSheets
// @Produce		json
// @Success		200	{object}	SettlementSheetDetailResponse
// @Failure		400	{object}	SettlementSheetDetailResponse
// @Failure		404	{object}	SettlementSheetDetailResponse
// @Failure		500	{object}	SettlementSheetDetailResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id} [get]
func GetSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetDetailResponse{
			Error: &s,
		})
		return
	}

	sheet, teams, expenses, totals, err := models.LoadSheet(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetDetailResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	detail := SettlementSheetDetail{
		SettlementSheet: newSettlementSheet(url, sheet),
		TeamRows:        make([]TeamRow, 0, len(teams)),
		Expenses:        make([]ExpenseRow, 0, len(expenses)),
		Totals:          totals,
	}

	for _, row := range teams {
		detail.TeamRows = append(detail.TeamRows, newTeamRow(row))
	}

	for _, row := range expenses {
		detail.Expenses = append(detail.Expenses, newExpenseRow(row))
	}

	c.JSON(http.StatusOK, SettlementSheetDetailResponse{Data: &detail})
}

// @Summary		Update settlement sheet
// @Description	Corrects the counted cash and the closing note. These stay editable in every state, including accounted.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettlementSheetResponse
// @Failure		400		{object}	SettlementSheetResponse
// @Failure		404		{object}	SettlementSheetResponse
// @Failure		409		{object}	SettlementSheetResponse
// @Failure		500		{object}	SettlementSheetResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sheet	body		SettlementSheetUpdateable	true	"Settlement Sheet"
// @Router			/v1/settlement-sheets/{id} [patch]
func UpdateSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var sheet models.SettlementSheet
	err = models.DB.First(&sheet, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var data SettlementSheetUpdateable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	if data.Version != sheet.Version {
		s := models.ErrConflict.Error()
		c.JSON(status(models.ErrConflict), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	err = sheet.SetClosingDetails(models.DB, data.ActualCashCounted, data.ClosingNote)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	r := newSettlementSheet(c.GetString(string(models.DBContextURL)), sheet)
	c.JSON(http.StatusOK, SettlementSheetResponse{Data: &r})
}

// @Summary		Delete settlement sheet
// @Description	Deletes an open settlement sheet with all its rows. Closed and accounted sheets have to be reopened first.
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id} [delete]
func DeleteSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteSettlementSheet(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Close settlement sheet
// @Description	Closes an open sheet. The responsible instructor is mandatory and must be a provider of the instructor type. Closing freezes the rows.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettlementSheetResponse
// @Failure		400		{object}	SettlementSheetResponse
// @Failure		404		{object}	SettlementSheetResponse
// @Failure		409		{object}	SettlementSheetResponse
// @Failure		500		{object}	SettlementSheetResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			close	body		SheetCloseRequest	true	"Closing data"
// @Router			/v1/settlement-sheets/{id}/close [post]
func CloseSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var sheet models.SettlementSheet
	err = models.DB.First(&sheet, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var request SheetCloseRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	err = sheet.Close(models.DB, request.ResponsibleInstructorID, request.ActualCashCounted, request.ClosingNote)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	data := newSettlementSheet(c.GetString(string(models.DBContextURL)), sheet)
	c.JSON(http.StatusOK, SettlementSheetResponse{Data: &data})
}

// @Summary		Account settlement sheet
// @Description	Marks a closed sheet as booked into the accounting system. The booking actor is mandatory.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettlementSheetResponse
// @Failure		400		{object}	SettlementSheetResponse
// @Failure		404		{object}	SettlementSheetResponse
// @Failure		409		{object}	SettlementSheetResponse
// @Failure		500		{object}	SettlementSheetResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		SheetActorRequest	true	"Booking actor"
// @Router			/v1/settlement-sheets/{id}/account [post]
func AccountSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var sheet models.SettlementSheet
	err = models.DB.First(&sheet, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var request SheetActorRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	err = sheet.Account(models.DB, request.Actor)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	data := newSettlementSheet(c.GetString(string(models.DBContextURL)), sheet)
	c.JSON(http.StatusOK, SettlementSheetResponse{Data: &data})
}

// @Summary		Reopen settlement sheet
// @Description	Puts a closed or accounted sheet back into the open state so its rows can be corrected. The actor is mandatory and the reopening is logged. Reopening an already open sheet succeeds without changing or recording anything.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettlementSheetResponse
// @Failure		400		{object}	SettlementSheetResponse
// @Failure		404		{object}	SettlementSheetResponse
// @Failure		409		{object}	SettlementSheetResponse
// @Failure		500		{object}	SettlementSheetResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reopen	body		SheetActorRequest	true	"Reopening actor"
// @Router			/v1/settlement-sheets/{id}/reopen [post]
func ReopenSettlementSheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var sheet models.SettlementSheet
	err = models.DB.First(&sheet, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	var request SheetActorRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	err = sheet.Reopen(models.DB, request.Actor)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementSheetResponse{
			Error: &s,
		})
		return
	}

	data := newSettlementSheet(c.GetString(string(models.DBContextURL)), sheet)
	c.JSON(http.StatusOK, SettlementSheetResponse{Data: &data})
}
