package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"mindmeter/internal/otp"
)

const (
	// StateExpiration OAuth state 有效期
	StateExpiration = 10 * time.Minute
	statePrefix     = "oauth_state:"
)

// generateState OAuth2 流程中防 CSRF 的随机串
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// stateStore 复用验证码存储保存 state
type stateStore struct {
	store otp.Store
}

func (s stateStore) save(ctx context.Context, state string) error {
	return s.store.Put(ctx, statePrefix+state, "1", StateExpiration)
}

// consume 校验并删除 state，防止重复使用
func (s stateStore) consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	key := statePrefix + state
	_, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return true, s.store.Delete(ctx, key)
}
