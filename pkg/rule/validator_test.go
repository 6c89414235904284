package rule_test

import (
	"testing"

	"github.com/profieldmanager/mediavault/pkg/rule"
)

// annotationRequest 用于测试 ValidateStruct 的标注请求样例.
type annotationRequest struct {
	FileID            int64  `rule:"required,min=1"`
	AnnotatedImageURL string `rule:"omitempty,max=2048"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := annotationRequest{FileID: 7}

	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 FileID
	invalid := annotationRequest{}

	if err := rule.ValidateStruct(invalid); err == nil {
		t.Error("Expected error for invalid struct (missing file id), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 URL
	if err := rule.ValidateVar("https://api.example.com", "required,url"); err != nil {
		t.Errorf("Expected no error for valid url, got %v", err)
	}

	// 无效 URL
	if err := rule.ValidateVar("not a url", "required,url"); err == nil {
		t.Error("Expected error for invalid url, got nil")
	}
}

// TestRegisterAlias 测试别名规则注册.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("displayname", "required,min=1,max=200")

	if err := rule.ValidateVar("Acme Field Services", "displayname"); err != nil {
		t.Errorf("Expected no error for valid display name, got %v", err)
	}

	if err := rule.ValidateVar("", "displayname"); err == nil {
		t.Error("Expected error for empty display name, got nil")
	}
}
