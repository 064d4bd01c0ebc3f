package main

import (
	"github.com/shucheng-next/internal/config"
	"github.com/shucheng-next/internal/logger"
	"github.com/shucheng-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	remark := func(s string) *string { return &s }

	// 示例书籍
	books := []models.Book{
		{Sn: "B001", Name: "三体", Price: money("23.00"), Remark: remark("科幻")},
		{Sn: "B002", Name: "活着", Price: money("18.50")},
		{Sn: "B003", Name: "围城", Price: money("21.00")},
		{Sn: "B004", Name: "平凡的世界", Price: money("56.00"), Remark: remark("三卷本")},
		{Sn: "B005", Name: "百年孤独", Price: money("39.50")},
		{Sn: "B006", Name: "红楼梦", Price: money("45.00")},
		{Sn: "B007", Name: "小王子", Price: money("15.00")},
		{Sn: "B008", Name: "编程珠玑", Price: money("49.00"), Remark: remark("计算机")},
		{Sn: "B009", Name: "史记", Price: money("88.00")},
	}

	created := 0
	for _, book := range books {
		var count int64
		if err := models.DB.Model(&models.Book{}).Where("sn = ?", book.Sn).Count(&count).Error; err != nil {
			stdLog.Fatalf("Failed to check book %s: %v", book.Sn, err)
		}
		if count > 0 {
			continue
		}
		if err := models.DB.Create(&book).Error; err != nil {
			stdLog.Fatalf("Failed to seed book %s: %v", book.Sn, err)
		}
		created++
	}
	stdLog.Printf("Seed finished, %d books created", created)
}

func money(s string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(s))
}
