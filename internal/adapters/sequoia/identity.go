package sequoia

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/yuzawa-san/wawona/internal/domain"
)

const (
	verifyIdentityPath = "/idm/v1/contacts/verify-email"
	loginPath          = "/idm/users/login"
	verifyMFAPath      = "/idm/users/login/verify-mfa"
)

func (c *Client) VerifyIdentity(ctx context.Context, identity string) error {
	if strings.TrimSpace(identity) == "" {
		return errors.New("identity is required")
	}
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   verifyIdentityPath,
		body:   verifyIdentityRequest{Email: identity},
	}, nil)
}

func (c *Client) Login(ctx context.Context, identity, password string) (domain.LoginResult, error) {
	var data loginData
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   loginPath,
		body: loginRequest{
			Email:       identity,
			Password:    password,
			BrowserHash: browserHash,
			UserType:    "employee",
		},
	}, &data)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if data.UserDetails.APIToken == "" {
		return domain.LoginResult{}, &domain.TransportError{Method: http.MethodPost, URL: loginPath, StatusCode: http.StatusOK, Message: "response missing api token"}
	}

	result := domain.LoginResult{
		Token:  data.UserDetails.APIToken,
		Status: domain.AuthStatus(data.UserDetails.OktaStatus),
	}
	for _, factor := range data.Factors {
		result.Factors = append(result.Factors, domain.MFAFactor{
			Type:        factor.FactorType,
			PhoneNumber: factor.Profile.PhoneNumber,
		})
	}
	return result, nil
}

// VerifyMFA completes a challenged login. The pre-MFA token becomes the session token on success.
func (c *Client) VerifyMFA(ctx context.Context, preMFAToken, code string) error {
	return c.do(ctx, call{
		method:  http.MethodPost,
		path:    verifyMFAPath,
		headers: map[string]string{"Apitoken": preMFAToken},
		body:    verifyMFARequest{PassCode: code, BrowserHash: browserHash},
	}, nil)
}
