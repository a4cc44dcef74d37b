package auth

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"mindmeter/internal/identity"
	"mindmeter/internal/mailer"
	userModel "mindmeter/internal/model/user"
	"mindmeter/internal/otp"
	"mindmeter/internal/pkg"
	"mindmeter/internal/user"
	"mindmeter/packages/email"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

const (
	defaultFirstName   = "Người dùng"
	anonymousLastName  = "Ẩn danh"
	otpSentMessage     = "OTP đã được gửi về email. Vui lòng kiểm tra hộp thư."
	invalidCredentials = "Invalid email or password"
)

// AuthService 账号相关操作
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, *response.BusinessError)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, *response.BusinessError)
	CreateAnonymous(ctx context.Context) (*AuthResponse, *response.BusinessError)
	UpgradeAnonymous(ctx context.Context, id uint, req *UpgradeRequest) (*AuthResponse, *response.BusinessError)
	ForgotPassword(ctx context.Context, email string) (string, *response.BusinessError)
	ResetPassword(ctx context.Context, req *VerifyOTPRequest) *response.BusinessError

	GoogleLoginURL(ctx context.Context) (string, *response.BusinessError)
	GoogleCallback(ctx context.Context, state, code string) (string, *response.BusinessError)
}

// Dependencies 构造 AuthService 所需的协作者，Google 可以为 nil
type Dependencies struct {
	Users       user.UserRepository
	OTP         *otp.Service
	States      otp.Store
	Mailer      mailer.Mailer
	Google      OAuthProvider
	FrontendURL string
}

type authService struct {
	users       user.UserRepository
	otp         *otp.Service
	states      stateStore
	mailer      mailer.Mailer
	google      OAuthProvider
	frontendURL string
}

func NewAuthService(deps Dependencies) AuthService {
	return &authService{
		users:       deps.Users,
		otp:         deps.OTP,
		states:      stateStore{store: deps.States},
		mailer:      deps.Mailer,
		google:      deps.Google,
		frontendURL: strings.TrimRight(deps.FrontendURL, "/"),
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, *response.BusinessError) {
	addr := userModel.NormalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, addr)
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

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		firstName = defaultFirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		lastName = strconv.Itoa(10000 + rand.IntN(90000))
	}

	u := &userModel.User{
		Email:        &addr,
		PasswordHash: &hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        optional(req.Phone),
		Role:         userModel.RoleStudent,
		Status:       userModel.StatusActive,
		Plan:         userModel.PlanFree,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, user.WriteError(err, "failed to create user")
	}

	s.sendWelcome(ctx, u)
	return s.issue(u)
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, *response.BusinessError) {
	u, err := s.users.GetByEmail(ctx, userModel.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorizedError(invalidCredentials)
		}
		return nil, response.NewInternalError("failed to load user", err)
	}

	// OAuth 或匿名账号没有密码，不能用密码登录
	if u.PasswordHash == nil || !pkg.CheckPassword(*u.PasswordHash, req.Password) {
		return nil, response.NewUnauthorizedError(invalidCredentials)
	}
	if !u.Enabled() {
		return nil, response.NewForbiddenError("Account is disabled")
	}

	return s.issue(u)
}

func (s *authService) CreateAnonymous(ctx context.Context) (*AuthResponse, *response.BusinessError) {
	u := &userModel.User{
		FirstName: defaultFirstName,
		LastName:  anonymousLastName,
		Role:      userModel.RoleStudent,
		Status:    userModel.StatusActive,
		Anonymous: true,
		Plan:      userModel.PlanFree,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, response.NewInternalError("failed to create anonymous user", err)
	}
	return s.issue(u)
}

func (s *authService) UpgradeAnonymous(ctx context.Context, id uint, req *UpgradeRequest) (*AuthResponse, *response.BusinessError) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Anonymous account not found")
		}
		return nil, response.NewInternalError("failed to load user", err)
	}
	if !u.Anonymous {
		return nil, response.NewValidationError("Account is not anonymous")
	}

	addr := userModel.NormalizeEmail(req.Email)
	exists, err := s.users.ExistsByEmail(ctx, addr)
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

	u.Email = &addr
	u.PasswordHash = &hash
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = optional(req.Phone)
	u.Anonymous = false

	if err := s.users.Save(ctx, u); err != nil {
		return nil, user.WriteError(err, "failed to upgrade user")
	}

	s.sendWelcome(ctx, u)
	return s.issue(u)
}

// ForgotPassword 生成验证码并发送邮件。邮件发送失败时验证码无意义，直接返回错误
func (s *authService) ForgotPassword(ctx context.Context, addr string) (string, *response.BusinessError) {
	addr = userModel.NormalizeEmail(addr)
	u, bizErr := s.loadByEmail(ctx, addr)
	if bizErr != nil {
		return "", bizErr
	}

	code, err := s.otp.Issue(ctx, addr)
	if err != nil {
		return "", response.NewInternalError("failed to store OTP", err)
	}

	err = mailer.SendTemplate(s.mailer, u.EmailValue(), email.SubjectOTP, email.OTPTemplate, email.OTPData{
		Code:          code,
		ExpireMinutes: int(s.otp.TTL().Minutes()),
	})
	if err != nil {
		return "", response.NewInternalError("failed to send OTP email", err)
	}

	return otpSentMessage, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *VerifyOTPRequest) *response.BusinessError {
	addr := userModel.NormalizeEmail(req.Email)
	u, bizErr := s.loadByEmail(ctx, addr)
	if bizErr != nil {
		return bizErr
	}

	ok, err := s.otp.Verify(ctx, addr, strings.TrimSpace(req.OTP))
	if err != nil {
		return response.NewInternalError("failed to verify OTP", err)
	}
	if !ok {
		return response.NewValidationError("OTP invalid or expired")
	}

	hash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return response.NewInternalError("failed to hash password", err)
	}
	u.PasswordHash = &hash
	if err := s.users.Save(ctx, u); err != nil {
		return response.NewInternalError("failed to save password", err)
	}

	err = mailer.SendTemplate(s.mailer, u.EmailValue(), email.SubjectPasswordChanged, email.PasswordChangedTemplate,
		email.PasswordChangedData{Name: displayName(u)})
	if err != nil {
		slog.WarnContext(ctx, "密码修改通知邮件发送失败", "user_id", u.ID, "error", err)
	}
	return nil
}

// GoogleLoginURL 生成 state 并返回 Google 授权地址
func (s *authService) GoogleLoginURL(ctx context.Context) (string, *response.BusinessError) {
	if s.google == nil {
		return "", response.NewNotFoundError("Google login is not configured")
	}

	state, err := generateState()
	if err != nil {
		return "", response.NewInternalError("failed to generate state", err)
	}
	if err := s.states.save(ctx, state); err != nil {
		return "", response.NewInternalError("failed to save state", err)
	}
	return s.google.AuthCodeURL(state), nil
}

// GoogleCallback 完成 Google 登录，返回带令牌的前端回调地址
func (s *authService) GoogleCallback(ctx context.Context, state, code string) (string, *response.BusinessError) {
	if s.google == nil {
		return "", response.NewNotFoundError("Google login is not configured")
	}
	if code == "" {
		return "", response.NewValidationError("code is required")
	}

	valid, err := s.states.consume(ctx, state)
	if err != nil {
		return "", response.NewInternalError("failed to verify state", err)
	}
	if !valid {
		return "", response.NewValidationError("invalid or expired state")
	}

	profile, err := s.google.FetchProfile(ctx, code)
	if err != nil {
		return "", response.NewInternalError("failed to fetch Google profile", err)
	}

	addr := userModel.NormalizeEmail(profile.Email)
	if addr == "" {
		return "", response.NewValidationError("Google account has no email")
	}

	u, err := s.users.GetByEmail(ctx, addr)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u, err = s.createOAuthUser(ctx, addr, profile)
		if err != nil {
			return "", user.WriteError(err, "failed to create user")
		}
	case err != nil:
		return "", response.NewInternalError("failed to load user", err)
	case !u.Enabled():
		return "", response.NewForbiddenError("Account is disabled")
	}

	resp, bizErr := s.issue(u)
	if bizErr != nil {
		return "", bizErr
	}
	return s.frontendURL + "/auth/callback?token=" + url.QueryEscape(resp.Token), nil
}

func (s *authService) createOAuthUser(ctx context.Context, addr string, profile *OAuthProfile) (*userModel.User, error) {
	first, last := profile.SplitName()
	if first == "" {
		first = defaultFirstName
	}
	u := &userModel.User{
		Email:     &addr,
		FirstName: first,
		LastName:  last,
		AvatarURL: optional(profile.Picture),
		Role:      userModel.RoleStudent,
		Status:    userModel.StatusActive,
		Plan:      userModel.PlanFree,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) loadByEmail(ctx context.Context, addr string) (*userModel.User, *response.BusinessError) {
	u, err := s.users.GetByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Email not found")
		}
		return nil, response.NewInternalError("failed to load user", err)
	}
	return u, nil
}

// issue 签发访问令牌，主体为邮箱或 anonymous_<id>
func (s *authService) issue(u *userModel.User) (*AuthResponse, *response.BusinessError) {
	token, err := pkg.GenerateAccessToken(pkg.TokenUser{
		Subject:   identity.SubjectOf(u),
		UserID:    u.ID,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Anonymous: u.Anonymous,
	})
	if err != nil {
		return nil, response.NewInternalError("failed to generate token", err)
	}

	return &AuthResponse{
		Token:     token,
		Email:     u.EmailValue(),
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Anonymous: u.Anonymous,
		UserID:    u.ID,
	}, nil
}

// sendWelcome 欢迎邮件失败只记录日志
func (s *authService) sendWelcome(ctx context.Context, u *userModel.User) {
	err := mailer.SendTemplate(s.mailer, u.EmailValue(), email.SubjectWelcome, email.WelcomeTemplate, email.WelcomeData{
		Name:      displayName(u),
		Email:     u.EmailValue(),
		ActionURL: s.frontendURL,
	})
	if err != nil {
		slog.WarnContext(ctx, "欢迎邮件发送失败", "user_id", u.ID, "error", err)
	}
}

func displayName(u *userModel.User) string {
	if u.FirstName == "" {
		return defaultFirstName
	}
	return u.FirstName
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
