package service

import "errors"

// 业务错误定义
var (
	// ErrBookSnDuplicate 书籍编号已存在
	ErrBookSnDuplicate = errors.New("book sn duplicate")
	// ErrBookNotFound 书籍不存在
	ErrBookNotFound = errors.New("book not found")
	// ErrBookInvalid 书籍输入不合法
	ErrBookInvalid = errors.New("book invalid")
	// ErrCartEmpty 购物车为空
	ErrCartEmpty = errors.New("cart empty")
	// ErrOrderInsertFailed 订单写入未影响任何行
	ErrOrderInsertFailed = errors.New("order insert failed")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
)
