package user

import (
	"context"
	"errors"

	"mindmeter/internal/identity"
	userModel "mindmeter/internal/model/user"
	"mindmeter/internal/pkg"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// UserService 用户管理与个人资料
type UserService interface {
	List(ctx context.Context) ([]UserDTO, *response.BusinessError)
	ListPaged(ctx context.Context, page, size int) (*PagedUsers, *response.BusinessError)
	ListByRole(ctx context.Context, role string) ([]UserDTO, *response.BusinessError)
	Create(ctx context.Context, req *CreateUserRequest) (*UserDTO, *response.BusinessError)
	Update(ctx context.Context, id uint, req *UpdateUserRequest) (*UserDTO, *response.BusinessError)
	UpdateStatus(ctx context.Context, id uint, status string) (*UserDTO, *response.BusinessError)
	UpdateRole(ctx context.Context, id uint, role string) (*UserDTO, *response.BusinessError)
	Delete(ctx context.Context, id uint) *response.BusinessError

	Profile(ctx context.Context, current *identity.AuthenticatedUser) (*UserDTO, *response.BusinessError)
	UpdateProfile(ctx context.Context, current *identity.AuthenticatedUser, req *UpdateProfileRequest) (*UserDTO, *response.BusinessError)
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]UserDTO, *response.BusinessError) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to list users", err)
	}
	return toDTOs(users), nil
}

func (s *userService) ListPaged(ctx context.Context, page, size int) (*PagedUsers, *response.BusinessError) {
	if page < 0 {
		return nil, response.NewValidationError("page must not be negative")
	}
	if size < 1 {
		return nil, response.NewValidationError("size must be at least 1")
	}

	users, total, err := s.repo.ListPaged(ctx, page, size)
	if err != nil {
		return nil, response.NewInternalError("failed to list users", err)
	}

	return &PagedUsers{
		Users:       toDTOs(users),
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  int((total + int64(size) - 1) / int64(size)),
	}, nil
}

func (s *userService) ListByRole(ctx context.Context, role string) ([]UserDTO, *response.BusinessError) {
	r, bizErr := userModel.ParseRole(role)
	if bizErr != nil {
		return nil, bizErr
	}
	users, err := s.repo.ListByRole(ctx, r)
	if err != nil {
		return nil, response.NewInternalError("failed to list users", err)
	}
	return toDTOs(users), nil
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*UserDTO, *response.BusinessError) {
	email := userModel.NormalizeEmail(req.Email)

	role := userModel.RoleStudent
	if req.Role != "" {
		r, bizErr := userModel.ParseRole(req.Role)
		if bizErr != nil {
			return nil, bizErr
		}
		role = r
	}
	status := userModel.StatusActive
	if req.Status != "" {
		st, bizErr := userModel.ParseStatus(req.Status)
		if bizErr != nil {
			return nil, bizErr
		}
		status = st
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, response.NewInternalError("failed to check email", err)
	}
	if exists {
		return nil, response.NewConflictError("Email already exists")
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, response.NewInternalError("failed to hash password", err)
	}

	u := &userModel.User{
		Email:        &email,
		PasswordHash: &hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        optional(req.Phone),
		Role:         role,
		Status:       status,
		Plan:         userModel.PlanFree,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, WriteError(err, "failed to create user")
	}

	dto := ToDTO(u)
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *UpdateUserRequest) (*UserDTO, *response.BusinessError) {
	role, bizErr := userModel.ParseRole(req.Role)
	if bizErr != nil {
		return nil, bizErr
	}
	status, bizErr := userModel.ParseStatus(req.Status)
	if bizErr != nil {
		return nil, bizErr
	}

	u, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	// 匿名账号没有邮箱和密码，只能通过 /auth/anonymous/upgrade 升级
	if u.Anonymous {
		return nil, response.NewValidationError("Anonymous account must be upgraded via /auth/anonymous/upgrade")
	}

	email := userModel.NormalizeEmail(req.Email)
	if email != u.EmailValue() {
		exists, err := s.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, response.NewInternalError("failed to check email", err)
		}
		if exists {
			return nil, response.NewConflictError("Email already exists")
		}
	}

	u.Email = &email
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = optional(req.Phone)
	u.Role = role
	u.Status = status

	return s.save(ctx, u)
}

func (s *userService) UpdateStatus(ctx context.Context, id uint, status string) (*UserDTO, *response.BusinessError) {
	st, bizErr := userModel.ParseStatus(status)
	if bizErr != nil {
		return nil, bizErr
	}
	u, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	u.Status = st
	return s.save(ctx, u)
}

func (s *userService) UpdateRole(ctx context.Context, id uint, role string) (*UserDTO, *response.BusinessError) {
	r, bizErr := userModel.ParseRole(role)
	if bizErr != nil {
		return nil, bizErr
	}
	u, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	u.Role = r
	return s.save(ctx, u)
}

func (s *userService) Delete(ctx context.Context, id uint) *response.BusinessError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return response.NewInternalError("failed to delete user", err)
	}
	if !deleted {
		return response.NewNotFoundError("User not found")
	}
	return nil
}

// Profile 按当前请求解析出的用户 ID 读取，匿名用户同样适用
func (s *userService) Profile(ctx context.Context, current *identity.AuthenticatedUser) (*UserDTO, *response.BusinessError) {
	u, bizErr := s.load(ctx, current.ID)
	if bizErr != nil {
		return nil, bizErr
	}
	dto := ToDTO(u)
	return &dto, nil
}

func (s *userService) UpdateProfile(ctx context.Context, current *identity.AuthenticatedUser, req *UpdateProfileRequest) (*UserDTO, *response.BusinessError) {
	u, bizErr := s.load(ctx, current.ID)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = optional(*req.Phone)
	}

	return s.save(ctx, u)
}

func (s *userService) load(ctx context.Context, id uint) (*userModel.User, *response.BusinessError) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewInternalError("failed to load user", err)
	}
	return u, nil
}

func (s *userService) save(ctx context.Context, u *userModel.User) (*UserDTO, *response.BusinessError) {
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, WriteError(err, "failed to save user")
	}
	dto := ToDTO(u)
	return &dto, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// WriteError 写入用户时邮箱唯一索引冲突按 Conflict 返回，其余为内部错误
func WriteError(err error, msg string) *response.BusinessError {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.NewConflictError("Email already exists")
	}
	return response.NewInternalError(msg, err)
}
