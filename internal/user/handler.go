package user

import (
	"strconv"

	"mindmeter/internal/dto"
	"mindmeter/packages/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers 用户列表
// @Summary 用户列表
// @Description 传入 page 或 size 时分页返回，否则返回全部用户
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，从 0 开始"
// @Param size query int false "每页数量"
// @Success 200 {object} response.Response{data=PagedUsers}
// @Router /auth/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pageRaw, hasPage := c.GetQuery("page")
	sizeRaw, hasSize := c.GetQuery("size")

	if !hasPage && !hasSize {
		users, err := h.service.List(c.Request.Context())
		if err != nil {
			dto.ErrorResponse(c, err)
			return
		}
		dto.SuccessResponse(c, users)
		return
	}

	page, ok := queryInt(c, "page", pageRaw, 0)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", sizeRaw, 10)
	if !ok {
		return
	}

	result, err := h.service.ListPaged(c.Request.Context(), page, size)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// ListByRole 按角色筛选用户
// @Summary 按角色筛选用户
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Param role path string true "STUDENT / EXPERT / ADMIN"
// @Success 200 {object} response.Response{data=[]UserDTO}
// @Router /admin/users/role/{role} [get]
func (h *UserHandler) ListByRole(c *gin.Context) {
	users, err := h.service.ListByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	u, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateStatus 修改账号状态
// @Summary 修改账号状态
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param status query string true "ACTIVE / INACTIVE / BANNED"
// @Success 200 {object} response.Response{data=UserDTO}
// @Router /admin/users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}

	u, err := h.service.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateRole 修改角色
// @Summary 修改角色
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param role query string true "STUDENT / EXPERT / ADMIN"
// @Success 200 {object} response.Response{data=UserDTO}
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id, c.Query("role"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "deleted")
}

// GetProfile 当前用户资料
// @Summary 当前用户资料
// @Tags 个人资料
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=UserDTO}
// @Router /student/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}

	u, err := h.service.Profile(c.Request.Context(), current)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateProfile 更新当前用户资料，只修改传入的字段
// @Summary 更新当前用户资料
// @Tags 个人资料
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "资料"
// @Success 200 {object} response.Response{data=UserDTO}
// @Router /student/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), current, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// queryInt 解析查询参数，空值取默认值
func queryInt(c *gin.Context, name, raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid "+name),
		))
		return 0, false
	}
	return v, true
}
