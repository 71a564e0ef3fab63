package main

import (
	"context"
	"log"

	"cashbook-be/internal/config"
	"cashbook-be/internal/dto"
	"cashbook-be/internal/model"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/memory"
	"cashbook-be/internal/repository/specification"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/internal/service"
	"cashbook-be/pkg/database"
	"cashbook-be/pkg/ledger/access"
	"cashbook-be/pkg/ledger/pagination"
	"cashbook-be/pkg/ledger/totals"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const (
	demoName     = "Demo User"
	demoEmail    = "demo@cashbook.local"
	demoPassword = "demo1234"
)

type seedRecord struct {
	category string
	kind     string
	amount   string
	date     string
	remarks  string
}

var demoRecords = []seedRecord{
	{category: "Salary", kind: "in", amount: "100", date: "2024-01-05", remarks: "January salary"},
	{category: "Groceries", kind: "out", amount: "40", date: "2024-01-10", remarks: "Weekly groceries"},
	{category: "Salary", kind: "in", amount: "10", date: "2024-01-15", remarks: "Cashback"},
}

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	ctx := context.Background()
	nop := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	resolver := access.NewResolver()

	// No bus here: seeded rows do not produce activity
	authService := service.NewAuthService(uowFactory, memory.NewTokenDenylist(), cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, nop)
	bookService := service.NewBookService(uowFactory, resolver, nil, nop)
	categoryService := service.NewCategoryService(uowFactory, resolver, nil, nop)
	recordService := service.NewRecordService(uowFactory, resolver, totals.NewAggregator(), pagination.NewPaginator(), nil, nop)

	color.Cyan("🌱 Seeding demo cashbook\n")

	// 1. User
	color.Yellow("\n1. Demo user")
	_, err = authService.Register(ctx, &dto.RegisterRequest{Name: demoName, Email: demoEmail, Password: demoPassword})
	switch {
	case apperror.Is(err, apperror.KindConflict):
		color.Green("User %s already exists, reusing it", demoEmail)
	case err != nil:
		color.Red("Failed: %v", err)
		return
	default:
		color.Green("Created %s / %s", demoEmail, demoPassword)
	}

	user, err := uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByEmail{Email: demoEmail})
	if err != nil || user == nil {
		color.Red("Failed to load demo user: %v", err)
		return
	}

	// 2. Book
	color.Yellow("\n2. Book")
	book, err := bookService.Create(ctx, user.Id, &dto.CreateBookRequest{Title: "Household", Description: "Demo cashbook"})
	if err != nil {
		color.Red("Failed: %v", err)
		return
	}
	color.Green("Created book %s", book.Id)

	// 3. Categories
	color.Yellow("\n3. Categories")
	categoryIds := make(map[string]string)
	for _, name := range []string{"Salary", "Groceries"} {
		category, err := categoryService.Create(ctx, user.Id, book.Id, &dto.CreateCategoryRequest{Name: name})
		if err != nil {
			color.Red("Failed to create category %s: %v", name, err)
			return
		}
		categoryIds[name] = category.Id.String()
		color.Green("Created category %s", name)
	}

	// 4. Records
	color.Yellow("\n4. Records")
	for _, r := range demoRecords {
		categoryId := categoryIds[r.category]
		amount := decimal.RequireFromString(r.amount)
		date := r.date
		remarks := r.remarks

		if _, err := recordService.Add(ctx, user.Id, book.Id, &dto.CreateRecordRequest{
			CategoryId: &categoryId,
			Type:       r.kind,
			Amount:     &amount,
			Date:       &date,
			Remarks:    &remarks,
		}); err != nil {
			color.Red("Failed to add record %s: %v", r.remarks, err)
			return
		}
		color.Green("Added %s %s on %s", r.kind, r.amount, r.date)
	}

	list, err := recordService.List(ctx, user.Id, book.Id, &dto.ListRecordsRequest{})
	if err != nil {
		color.Red("Failed to list records: %v", err)
		return
	}
	color.Cyan("\n✅ Done. cashIn=%s cashOut=%s net=%s",
		list.Totals.CashIn, list.Totals.CashOut, list.Totals.NetAmount)
}
