package model

import "strings"

// 上传文件约定的列名（缺失任意一列都不影响展示）
const (
	ColVendorCode      = "Vendor Code"
	ColVendorName      = "Vendor Name"
	ColOwnerName       = "Name"
	ColEmail           = "Email"
	ColPhone           = "Phone Number"
	ColCategory        = "Category"
	ColCuisine1        = "Cuisine type 1"
	ColCuisine2        = "Cuisine Type 2"
	ColServiceModel    = "Service Model"
	ColServingCapacity = "Serving Capacity"
	ColState           = "State"
	ColCity            = "City"
	ColArea            = "Area"
	ColOtherCity       = "Other City 1"
	ColArea1           = "Area 1"
	ColCertification1  = "Certification 1"
	ColCertification2  = "Certification 2"
	ColCertification3  = "Certification 3"
)

// Schema 识别的全部列
// 认证列（Certification 1-3）目前只识别不展示
var Schema = []string{
	ColVendorCode,
	ColVendorName,
	ColOwnerName,
	ColEmail,
	ColPhone,
	ColCategory,
	ColCuisine1,
	ColCuisine2,
	ColServiceModel,
	ColServingCapacity,
	ColState,
	ColCity,
	ColArea,
	ColOtherCity,
	ColArea1,
	ColCertification1,
	ColCertification2,
	ColCertification3,
}

// LocationColumns 组成地址的列，按拼接顺序排列
var LocationColumns = []string{ColArea, ColArea1, ColCity, ColOtherCity, ColState}

// Placeholder 缺失字段的占位符
const Placeholder = "-"

// VendorRecord 单个供应商的展示字段
// 每个字段都有值：真实数据或占位符
type VendorRecord struct {
	VendorCode      string `json:"vendor_code"`
	VendorName      string `json:"vendor_name"`
	OwnerName       string `json:"owner_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	CuisineText     string `json:"cuisine_text"`
	ServiceModel    string `json:"service_model"`
	ServingCapacity string `json:"serving_capacity"`
}

// HasCode 供应商编码是否有效
func (r VendorRecord) HasCode() bool {
	return r.VendorCode != "" && r.VendorCode != Placeholder
}

// Title 卡片标题: "{code} · {name}"，无编码时只显示名称
func (r VendorRecord) Title() string {
	if r.HasCode() {
		return r.VendorCode + " · " + r.VendorName
	}
	return r.VendorName
}

const (
	// AllVendors 供应商下拉框默认项
	AllVendors = "All Vendors"
	// AllCapacities 接待能力下拉框默认项
	AllCapacities = "All"
)

// FilterState 一次渲染的筛选条件，不做持久化
type FilterState struct {
	Vendor   string `form:"vendor" json:"vendor"`
	Advanced bool   `form:"advanced" json:"advanced"`
	Query    string `form:"q" json:"q"`
	Capacity string `form:"capacity" json:"capacity"`
}

// Normalize 补齐默认值；基础模式下忽略搜索与接待能力筛选
func (f FilterState) Normalize() FilterState {
	if strings.TrimSpace(f.Vendor) == "" {
		f.Vendor = AllVendors
	}
	if f.Capacity == "" {
		f.Capacity = AllCapacities
	}
	if !f.Advanced {
		f.Query = ""
		f.Capacity = AllCapacities
	}
	return f
}
