package http

import (
	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/parser"
	"smart-task-manager/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{RawText: r.Text}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=all active completed"`
	Category string `form:"category"`
	SortBy   string `form:"sort_by"`
	Order    string `form:"order"    binding:"omitempty,oneof=asc desc"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   task.Status(r.Status),
		Category: parser.Category(r.Category),
		SortBy:   r.SortBy,
		Desc:     r.Order == "desc",
	}
}

// ---

type updateReq struct {
	ID        string `json:"-"` // populated from URI param
	Text      string `json:"text"      binding:"omitempty,max=1000"`
	Completed *bool  `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		RawText:   r.Text,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	RawText   string `json:"raw_text"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
	DueTime   string `json:"due_time,omitempty"`
	Recurring string `json:"recurring"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		RawText:   t.RawText,
		Category:  string(t.Category),
		Priority:  string(t.Priority),
		Recurring: string(t.Recurring),
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt: t.UpdatedAt.Format(response.DateTimeFormat),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(response.DateFormat)
	}
	if t.DueTime != nil {
		resp.DueTime = t.DueTime.String()
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type parseResp struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
	DueTime   string `json:"due_time,omitempty"`
	Recurring string `json:"recurring"`
}

func (h *handler) newParseResp(out task.PreviewOutput) parseResp {
	resp := parseResp{
		Title:     out.Result.Title,
		Category:  string(out.Result.Category),
		Priority:  string(out.Result.Priority),
		Recurring: string(out.Result.Recurring),
	}
	if out.Result.DueDate != nil {
		resp.DueDate = out.Result.DueDate.Format(response.DateFormat)
	}
	if out.Result.DueTime != nil {
		resp.DueTime = out.Result.DueTime.String()
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
