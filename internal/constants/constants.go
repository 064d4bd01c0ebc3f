package constants

// 会话相关常量
const (
	// SessionCookieName 会话 Cookie 名称
	SessionCookieName = "sc_session"
	// CartSessionKey 购物车在会话存储中的键
	CartSessionKey = "cart"
)

// 分页常量
const (
	// DefaultCatalogPageSize 书城首页默认每页书籍数
	DefaultCatalogPageSize = 4
)

// 时间格式常量
const (
	// OrderTimeLayout 订单时间展示格式
	OrderTimeLayout = "2006-01-02 15:04:05"
	// OrderNoTimeLayout 订单号时间前缀格式
	OrderNoTimeLayout = "20060102150405"
)
