package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/rule"
)

// GetCompanySettings 读取公司配置.
func (c *Client) GetCompanySettings(ctx context.Context) (*model.CompanySettings, error) {
	var s model.CompanySettings
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings/company", nil, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// UpdateCompanySettings 提交公司配置. 本地校验不通过时不发请求.
func (c *Client) UpdateCompanySettings(ctx context.Context, s *model.CompanySettings) error {
	if err := rule.ValidateStruct(s); err != nil {
		return fmt.Errorf("validate company settings: %w", err)
	}

	return c.doJSON(ctx, http.MethodPut, "/api/settings/company", s, nil)
}

// GetDispatchSettings 读取派单偏好.
func (c *Client) GetDispatchSettings(ctx context.Context) (*model.DispatchSettings, error) {
	var s model.DispatchSettings
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings/dispatch", nil, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// UpdateDispatchSettings 提交派单偏好. 本地校验不通过时不发请求.
func (c *Client) UpdateDispatchSettings(ctx context.Context, s *model.DispatchSettings) error {
	if err := rule.ValidateStruct(s); err != nil {
		return fmt.Errorf("validate dispatch settings: %w", err)
	}

	return c.doJSON(ctx, http.MethodPut, "/api/settings/dispatch", s, nil)
}
