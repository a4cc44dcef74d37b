package user

import (
	"context"

	userModel "mindmeter/internal/model/user"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口，未找到时返回 gorm.ErrRecordNotFound
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*userModel.User, error)
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *userModel.User) error
	Save(ctx context.Context, u *userModel.User) error
	Delete(ctx context.Context, id uint) (bool, error)

	List(ctx context.Context) ([]userModel.User, error)
	ListPaged(ctx context.Context, page, size int) ([]userModel.User, int64, error)
	ListByRole(ctx context.Context, role userModel.Role) ([]userModel.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail 邮箱需已规范化
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) Save(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Delete 返回是否确实删除了记录
func (r *userRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&userModel.User{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *userRepository) List(ctx context.Context) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

// ListPaged page 从 0 开始
func (r *userRepository) ListPaged(ctx context.Context, page, size int) ([]userModel.User, int64, error) {
	var (
		users []userModel.User
		total int64
	)

	if err := r.db.WithContext(ctx).Model(&userModel.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Order("id ASC").Offset(page * size).Limit(size).Find(&users).Error
	return users, total, err
}

func (r *userRepository) ListByRole(ctx context.Context, role userModel.Role) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("id ASC").Find(&users).Error
	return users, err
}
