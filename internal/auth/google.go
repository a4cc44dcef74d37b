package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"mindmeter/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// OAuthProfile 第三方账号信息
type OAuthProfile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// SplitName 优先使用 given/family，否则按最后一个空格拆分全名
func (p *OAuthProfile) SplitName() (string, string) {
	if p.GivenName != "" || p.FamilyName != "" {
		return p.GivenName, p.FamilyName
	}
	name := strings.TrimSpace(p.Name)
	if i := strings.LastIndex(name, " "); i > 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// OAuthProvider 第三方登录
type OAuthProvider interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*OAuthProfile, error)
}

type googleProvider struct {
	cfg *oauth2.Config
}

// NewGoogleProvider 未配置 client id 时返回 nil
func NewGoogleProvider(c config.GoogleConfig) OAuthProvider {
	if c.ClientID == "" {
		return nil
	}
	return &googleProvider{cfg: &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     endpoints.Google,
		Scopes:       []string{"openid", "email", "profile"},
	}}
}

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile 用 code 换取令牌后读取用户信息
func (g *googleProvider) FetchProfile(ctx context.Context, code string) (*OAuthProfile, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("换取 Google access token 失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取 Google 用户信息失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("获取 Google 用户信息失败: status %d", resp.StatusCode)
	}

	var profile OAuthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("解析 Google 用户信息失败: %w", err)
	}
	return &profile, nil
}
