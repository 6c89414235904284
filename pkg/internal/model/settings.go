package model

// CompanySettings 公司基础配置（/api/settings/company）.
// 写入前用 rule 标签做本地校验，不合法时不发请求.
type CompanySettings struct {
	CompanyName   string `json:"companyName"   rule:"required,max=200"`
	Email         string `json:"email"         rule:"omitempty,email"`
	Phone         string `json:"phone"         rule:"omitempty,max=40"`
	Address       string `json:"address"       rule:"omitempty,max=500"`
	Timezone      string `json:"timezone"      rule:"omitempty,max=64"`
	EmailEnabled  bool   `json:"emailEnabled"`
	SMSEnabled    bool   `json:"smsEnabled"`
	InvoiceFooter string `json:"invoiceFooter" rule:"omitempty,max=2000"`
}

// DispatchSettings 派单路由偏好（/api/settings/dispatch）.
type DispatchSettings struct {
	AutoAssign        bool     `json:"autoAssign"`
	MaxJobsPerTech    int      `json:"maxJobsPerTech"    rule:"min=0,max=100"`
	RoutePreference   string   `json:"routePreference"   rule:"omitempty,oneof=fastest shortest balanced"`
	NotifyChannels    []string `json:"notifyChannels"    rule:"dive,oneof=email sms push"`
	WorkdayStartHour  int      `json:"workdayStartHour"  rule:"min=0,max=23"`
	WorkdayEndHour    int      `json:"workdayEndHour"    rule:"min=0,max=23"`
}
