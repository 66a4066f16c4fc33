package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ligaoffice/backend/internal/httputil"
	"github.com/ligaoffice/backend/internal/models"
)

// RegisterTeamRowRoutes registers the routes for the team rows of a
// settlement sheet with the RouterGroup that is passed.
func RegisterTeamRowRoutes(r *gin.RouterGroup) {
	// Row collection
	{
		r.OPTIONS("/:id/team-rows", OptionsTeamRowList)
		r.GET("/:id/team-rows", GetTeamRows)
		r.POST("/:id/team-rows", CreateTeamRow)
		r.PUT("/:id/team-rows", ReplaceTeamRows)
	}

	// Row with sequence number
	{
		r.OPTIONS("/:id/team-rows/:sequence", OptionsTeamRowDetail)
		r.PATCH("/:id/team-rows/:sequence", UpdateTeamRow)
		r.DELETE("/:id/team-rows/:sequence", DeleteTeamRow)
	}
}

// RegisterExpenseRowRoutes registers the routes for the expense rows of a
// settlement sheet with the RouterGroup that is passed.
func RegisterExpenseRowRoutes(r *gin.RouterGroup) {
	// All expenses of the sheet
	{
		r.OPTIONS("/:id/expenses", OptionsExpenseList)
		r.GET("/:id/expenses", GetExpenseRows)
	}

	// Row collection per category
	{
		r.OPTIONS("/:id/expenses/:category", OptionsExpenseCategoryList)
		r.GET("/:id/expenses/:category", GetExpenseCategoryRows)
		r.POST("/:id/expenses/:category", CreateExpenseRow)
		r.PUT("/:id/expenses/:category", ReplaceExpenseRows)
	}

	// Row with sequence number
	{
		r.OPTIONS("/:id/expenses/:category/:sequence", OptionsExpenseRowDetail)
		r.PATCH("/:id/expenses/:category/:sequence", UpdateExpenseRow)
		r.DELETE("/:id/expenses/:category/:sequence", DeleteExpenseRow)
	}
}

// bindSheet binds the sheet ID from the URI and loads the sheet.
func bindSheet(c *gin.Context) (models.SettlementSheet, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.SettlementSheet{}, err
	}

	var sheet models.SettlementSheet
	err = models.DB.First(&sheet, uri.ID).Error
	if err != nil {
		return models.SettlementSheet{}, err
	}

	return sheet, nil
}

// bindCategory binds and validates the expense category from the URI.
func bindCategory(c *gin.Context) (models.ExpenseCategory, error) {
	return models.ParseExpenseCategory(c.Param("category"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id}/team-rows [options]
func OptionsTeamRowList(c *gin.Context) {
	_, err := bindSheet(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPostPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sequence	path	uint	true	"Sequence number of the row"
// @Router			/v1/settlement-sheets/{id}/team-rows/{sequence} [options]
func OptionsTeamRowDetail(c *gin.Context) {
	_, _, err := teamRowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// teamRowFromURI loads the sheet and the team row addressed by the URI.
func teamRowFromURI(c *gin.Context) (models.SettlementSheet, models.TeamRow, error) {
	sheet, err := bindSheet(c)
	if err != nil {
		return models.SettlementSheet{}, models.TeamRow{}, err
	}

	var uri URISequence
	err = c.ShouldBindUri(&uri)
	if err != nil {
		return models.SettlementSheet{}, models.TeamRow{}, err
	}

	var row models.TeamRow
	err = models.DB.
		Where("team_rows.sheet_id = ? AND team_rows.sequence = ?", sheet.ID, uri.Sequence).
		First(&row).Error
	if err != nil {
		return models.SettlementSheet{}, models.TeamRow{}, err
	}

	return sheet, row, nil
}

// @Summary		Get team rows
// @Description	Returns the team rows of a settlement sheet, ordered by sequence
// @Tags			SettlementSheets
// @Produce		json
// @Success		200	{object}	TeamRowListResponse
// @Failure		400	{object}	TeamRowListResponse
// @Failure		404	{object}	TeamRowListResponse
// @Failure		500	{object}	TeamRowListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id}/team-rows [get]
func GetTeamRows(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowListResponse{
			Error: &s,
		})
		return
	}

	var rows []models.TeamRow
	err = models.DB.
		Where("team_rows.sheet_id = ?", sheet.ID).
		Order("team_rows.sequence ASC").
		Find(&rows).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowListResponse{
			Error: &s,
		})
		return
	}

	data := make([]TeamRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, newTeamRow(row))
	}

	c.JSON(http.StatusOK, TeamRowListResponse{Data: data})
}

// @Summary		Create team row
// @Description	Adds a single team row to an open settlement sheet. Without a sequence number the row is appended.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		201	{object}	TeamRowResponse
// @Failure		400	{object}	TeamRowResponse
// @Failure		404	{object}	TeamRowResponse
// @Failure		500	{object}	TeamRowResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			row	body		TeamRowEditable	true	"Team Row"
// @Router			/v1/settlement-sheets/{id}/team-rows [post]
func CreateTeamRow(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	var editable TeamRowEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	row := editable.model(sheet.ID)
	err = models.DB.Create(&row).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	data := newTeamRow(row)
	c.JSON(http.StatusCreated, TeamRowResponse{Data: &data})
}

// @Summary		Replace team rows
// @Description	Replaces the full team row set of an open sheet in one unit of work: rows missing from the working set are deleted, changed rows are updated and rows without an ID are inserted. Fails entirely on the first error.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	TeamRowListResponse
// @Failure		400		{object}	TeamRowListResponse
// @Failure		404		{object}	TeamRowListResponse
// @Failure		409		{object}	TeamRowListResponse
// @Failure		500		{object}	TeamRowListResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rows	body		TeamRowBatchRequest	true	"Working set"
// @Router			/v1/settlement-sheets/{id}/team-rows [put]
func ReplaceTeamRows(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowListResponse{
			Error: &s,
		})
		return
	}

	var request TeamRowBatchRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowListResponse{
			Error: &s,
		})
		return
	}

	working := make([]models.TeamRow, 0, len(request.Rows))
	for _, row := range request.Rows {
		model := row.TeamRowEditable.model(sheet.ID)
		model.ID = row.ID
		working = append(working, model)
	}

	err = models.ReplaceTeamRows(models.DB, sheet.ID, request.Version, working)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowListResponse{
			Error: &s,
		})
		return
	}

	GetTeamRows(c)
}

// @Summary		Update team row
// @Description	Updates a single team row of an open sheet. Only values to be updated need to be specified.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200			{object}	TeamRowResponse
// @Failure		400			{object}	TeamRowResponse
// @Failure		404			{object}	TeamRowResponse
// @Failure		500			{object}	TeamRowResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sequence	path		uint			true	"Sequence number of the row"
// @Param			row			body		TeamRowEditable	true	"Team Row"
// @Router			/v1/settlement-sheets/{id}/team-rows/{sequence} [patch]
func UpdateTeamRow(c *gin.Context) {
	sheet, row, err := teamRowFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TeamRowEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	var data TeamRowEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&row).Select("", updateFields...).Updates(data.model(sheet.ID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamRowResponse{
			Error: &s,
		})
		return
	}

	r := newTeamRow(row)
	c.JSON(http.StatusOK, TeamRowResponse{Data: &r})
}

// @Summary		Delete team row
// @Description	Deletes a single team row of an open sheet
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sequence	path	uint	true	"Sequence number of the row"
// @Router			/v1/settlement-sheets/{id}/team-rows/{sequence} [delete]
func DeleteTeamRow(c *gin.Context) {
	_, row, err := teamRowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&row).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id}/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	_, err := bindSheet(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path	string	true	"Expense category"
// @Router			/v1/settlement-sheets/{id}/expenses/{category} [options]
func OptionsExpenseCategoryList(c *gin.Context) {
	_, err := bindSheet(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if _, err := bindCategory(c); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPostPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path	string	true	"Expense category"
// @Param			sequence	path	uint	true	"Sequence number of the row"
// @Router			/v1/settlement-sheets/{id}/expenses/{category}/{sequence} [options]
func OptionsExpenseRowDetail(c *gin.Context) {
	_, _, err := expenseRowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// expenseRowFromURI loads the sheet and the expense row addressed by the URI.
func expenseRowFromURI(c *gin.Context) (models.SettlementSheet, models.ExpenseRow, error) {
	sheet, err := bindSheet(c)
	if err != nil {
		return models.SettlementSheet{}, models.ExpenseRow{}, err
	}

	category, err := bindCategory(c)
	if err != nil {
		return models.SettlementSheet{}, models.ExpenseRow{}, err
	}

	var uri URICategorySequence
	err = c.ShouldBindUri(&uri)
	if err != nil {
		return models.SettlementSheet{}, models.ExpenseRow{}, err
	}

	var row models.ExpenseRow
	err = models.DB.
		Where("expense_rows.sheet_id = ? AND expense_rows.category = ? AND expense_rows.sequence = ?", sheet.ID, category, uri.Sequence).
		First(&row).Error
	if err != nil {
		return models.SettlementSheet{}, models.ExpenseRow{}, err
	}

	return sheet, row, nil
}

// @Summary		Get expense rows
// @Description	Returns all expense rows of a settlement sheet, grouped by category and ordered by sequence
// @Tags			SettlementSheets
// @Produce		json
// @Success		200	{object}	ExpenseRowListResponse
// @Failure		400	{object}	ExpenseRowListResponse
// @Failure		404	{object}	ExpenseRowListResponse
// @Failure		500	{object}	ExpenseRowListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlement-sheets/{id}/expenses [get]
func GetExpenseRows(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	var rows []models.ExpenseRow
	err = models.DB.
		Where("expense_rows.sheet_id = ?", sheet.ID).
		Order("expense_rows.category ASC, expense_rows.sequence ASC").
		Find(&rows).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ExpenseRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, newExpenseRow(row))
	}

	c.JSON(http.StatusOK, ExpenseRowListResponse{Data: data})
}

// @Summary		Get expense rows of a category
// @Description	Returns the expense rows of one category of a settlement sheet, ordered by sequence
// @Tags			SettlementSheets
// @Produce		json
// @Success		200	{object}	ExpenseRowListResponse
// @Failure		400	{object}	ExpenseRowListResponse
// @Failure		404	{object}	ExpenseRowListResponse
// @Failure		500	{object}	ExpenseRowListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path	string	true	"Expense category"
// @Router			/v1/settlement-sheets/{id}/expenses/{category} [get]
func GetExpenseCategoryRows(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	category, err := bindCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	var rows []models.ExpenseRow
	err = models.DB.
		Where("expense_rows.sheet_id = ? AND expense_rows.category = ?", sheet.ID, category).
		Order("expense_rows.sequence ASC").
		Find(&rows).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ExpenseRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, newExpenseRow(row))
	}

	c.JSON(http.StatusOK, ExpenseRowListResponse{Data: data})
}

// @Summary		Create expense row
// @Description	Adds a single expense row to an open settlement sheet. Without a sequence number the row is appended to its category.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		201	{object}	ExpenseRowResponse
// @Failure		400	{object}	ExpenseRowResponse
// @Failure		404	{object}	ExpenseRowResponse
// @Failure		500	{object}	ExpenseRowResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path		string				true	"Expense category"
// @Param			row			body		ExpenseRowEditable	true	"Expense Row"
// @Router			/v1/settlement-sheets/{id}/expenses/{category} [post]
func CreateExpenseRow(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	category, err := bindCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	var editable ExpenseRowEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	row := editable.model(sheet.ID, category)
	err = models.DB.Create(&row).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	data := newExpenseRow(row)
	c.JSON(http.StatusCreated, ExpenseRowResponse{Data: &data})
}

// @Summary		Replace expense rows
// @Description	Replaces the expense rows of one category of an open sheet in one unit of work, leaving the other categories untouched. Fails entirely on the first error.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseRowListResponse
// @Failure		400		{object}	ExpenseRowListResponse
// @Failure		404		{object}	ExpenseRowListResponse
// @Failure		409		{object}	ExpenseRowListResponse
// @Failure		500		{object}	ExpenseRowListResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path		string					true	"Expense category"
// @Param			rows		body		ExpenseRowBatchRequest	true	"Working set"
// @Router			/v1/settlement-sheets/{id}/expenses/{category} [put]
func ReplaceExpenseRows(c *gin.Context) {
	sheet, err := bindSheet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	category, err := bindCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	var request ExpenseRowBatchRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	working := make([]models.ExpenseRow, 0, len(request.Rows))
	for _, row := range request.Rows {
		model := row.ExpenseRowEditable.model(sheet.ID, category)
		model.ID = row.ID
		working = append(working, model)
	}

	err = models.ReplaceExpenseRows(models.DB, sheet.ID, category, request.Version, working)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowListResponse{
			Error: &s,
		})
		return
	}

	GetExpenseCategoryRows(c)
}

// @Summary		Update expense row
// @Description	Updates a single expense row of an open sheet. Only values to be updated need to be specified.
// @Tags			SettlementSheets
// @Accept			json
// @Produce		json
// @Success		200			{object}	ExpenseRowResponse
// @Failure		400			{object}	ExpenseRowResponse
// @Failure		404			{object}	ExpenseRowResponse
// @Failure		500			{object}	ExpenseRowResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path		string				true	"Expense category"
// @Param			sequence	path		uint				true	"Sequence number of the row"
// @Param			row			body		ExpenseRowEditable	true	"Expense Row"
// @Router			/v1/settlement-sheets/{id}/expenses/{category}/{sequence} [patch]
func UpdateExpenseRow(c *gin.Context) {
	sheet, row, err := expenseRowFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseRowEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseRowEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&row).Select("", updateFields...).Updates(data.model(sheet.ID, row.Category)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseRowResponse{
			Error: &s,
		})
		return
	}

	r := newExpenseRow(row)
	c.JSON(http.StatusOK, ExpenseRowResponse{Data: &r})
}

// @Summary		Delete expense row
// @Description	Deletes a single expense row of an open sheet
// @Tags			SettlementSheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path	string	true	"Expense category"
// @Param			sequence	path	uint	true	"Sequence number of the row"
// @Router			/v1/settlement-sheets/{id}/expenses/{category}/{sequence} [delete]
func DeleteExpenseRow(c *gin.Context) {
	_, row, err := expenseRowFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&row).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
