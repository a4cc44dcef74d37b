package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const (
	// 验证码有效期（分钟）
	DefaultExpireMinutes = 5
	resetKeyPrefix       = "reset:"
)

// Service 找回密码验证码
type Service struct {
	store Store
	ttl   time.Duration
	gen   func() (string, error)
}

func NewService(store Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultExpireMinutes * time.Minute
	}
	return &Service{store: store, ttl: ttl, gen: generateCode}
}

// TTL 验证码有效期
func (s *Service) TTL() time.Duration {
	return s.ttl
}

var codeSpace = big.NewInt(1000000)

// generateCode 6 位数字，不足补零
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue 生成并保存验证码，覆盖该邮箱之前的验证码
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.gen()
	if err != nil {
		return "", fmt.Errorf("生成验证码失败: %w", err)
	}
	if err := s.store.Put(ctx, resetKeyPrefix+email, code, s.ttl); err != nil {
		return "", fmt.Errorf("存储验证码失败: %w", err)
	}
	return code, nil
}

// Verify 匹配成功后删除验证码，同一验证码只能使用一次
func (s *Service) Verify(ctx context.Context, email, code string) (bool, error) {
	key := resetKeyPrefix + email
	stored, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("读取验证码失败: %w", err)
	}
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return false, fmt.Errorf("删除验证码失败: %w", err)
	}
	return true, nil
}
