package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/pkg/response"
)

// Create godoc
// @Summary     Create a task from natural language
// @Description Parses the free-text description and stores the resulting task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Caller identity (defaults to a shared scope)"
// @Param       body      body   createReq true  "Task description"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Parse godoc
// @Summary     Preview a parse
// @Description Runs the parser on the text and returns the extracted attributes without storing anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task description"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns stored tasks with optional status/category filters and sorting.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       status    query  string false "all (default), active or completed"
// @Param       category  query  string false "Filter by category"
// @Param       sort_by   query  string false "created (default), due or priority"
// @Param       order     query  string false "asc (default) or desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Edits a task. A non-empty text triggers a full re-parse; completed toggles the flag.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Caller identity"
// @Param       id        path   string    true  "Task ID"
// @Param       body      body   updateReq true  "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
