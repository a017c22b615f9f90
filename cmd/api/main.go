package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"coffee-checkout/internal/core/cache"
	"coffee-checkout/internal/core/config"
	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/core/server"
	cartadapters "coffee-checkout/internal/features/cart/adapters"
	carthandler "coffee-checkout/internal/features/cart/handler"
	cartservice "coffee-checkout/internal/features/cart/service"
	checkoutadapters "coffee-checkout/internal/features/checkout/adapters"
	checkoutdomain "coffee-checkout/internal/features/checkout/domain"
	checkouthandler "coffee-checkout/internal/features/checkout/handler"
	checkoutservice "coffee-checkout/internal/features/checkout/service"
	loyaltyadapter "coffee-checkout/internal/features/loyalty/adapters"
	loyaltyhandler "coffee-checkout/internal/features/loyalty/handler"
	loyaltyports "coffee-checkout/internal/features/loyalty/ports"
	loyaltyservice "coffee-checkout/internal/features/loyalty/service"
	menuadapter "coffee-checkout/internal/features/menu/adapters"
	menuhandler "coffee-checkout/internal/features/menu/handler"
	menuports "coffee-checkout/internal/features/menu/ports"
	menuservice "coffee-checkout/internal/features/menu/service"
	shopdomain "coffee-checkout/internal/features/shop/domain"
	shophandler "coffee-checkout/internal/features/shop/handler"
	shopservice "coffee-checkout/internal/features/shop/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Coffee Checkout API
// @version 1.0
// @description Cart, checkout wizard, draft persistence and order submission for the coffee shop mini-app.
// @contact.name API Support
// @contact.email support@coffee-checkout.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	decimal.MarshalJSONWithoutQuotes = true

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store", cfg.Store.Driver),
	)

	store, err := openStore(cfg.Store)
	if err != nil {
		l.Fatal("Store unavailable", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		l.Fatal("Store health check failed", zap.Error(err))
	}
	cancelPing()
	l.Info("Store connection verified")

	loc, err := cfg.Shop.Location()
	if err != nil {
		l.Fatal("Invalid shop timezone", zap.Error(err))
	}
	hours, err := shopdomain.ParseHours(cfg.Shop.OpeningTime, cfg.Shop.ClosingTime, loc)
	if err != nil {
		l.Fatal("Invalid opening hours", zap.Error(err))
	}

	// Menu
	var menuProvider menuports.MenuProvider
	if cfg.Endpoints.MenuURL != "" {
		menuProvider = menuadapter.NewHTTPMenuAdapter(cfg.Endpoints.MenuURL)
	} else {
		l.Warn("MENU_API_URL not set, serving the built-in menu")
	}
	menuSvc := menuservice.NewMenuService(menuProvider, store, cfg.Endpoints.MenuCacheTTL)
	menuHdl := menuhandler.NewMenuHandler(menuSvc)

	// Loyalty
	var balanceProvider loyaltyports.BalanceProvider
	if cfg.Endpoints.LoyaltyURL != "" {
		balanceProvider = loyaltyadapter.NewHTTPLoyaltyAdapter(cfg.Endpoints.LoyaltyURL)
	} else {
		l.Warn("LOYALTY_API_URL not set, balances are zero")
	}
	loyaltySvc := loyaltyservice.NewLoyaltyService(balanceProvider)
	loyaltyHdl := loyaltyhandler.NewLoyaltyHandler(loyaltySvc, cfg.Shop.PointsPerUnit)

	// Shop
	shopSvc := shopservice.NewShopService(cfg.Shop.Name, cfg.Shop.Address, hours)
	shopHdl := shophandler.NewShopHandler(shopSvc)

	// Cart
	cartSvc := cartservice.NewCartService(cartadapters.NewCacheCartRepository(store), menuSvc)
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Checkout
	checkoutSvc := checkoutservice.NewCheckoutService(checkoutservice.Settings{
		Pricing:       checkoutdomain.NewPricing(cfg.Shop.DeliveryFee, cfg.Shop.FreeDeliveryFrom, cfg.Shop.MinOrder),
		Hours:         hours,
		PointsPerUnit: cfg.Shop.PointsPerUnit,
		PickupAddress: cfg.Shop.Address,
		DraftTTL:      cfg.Checkout.DraftTTL,
		SaveInterval:  cfg.Checkout.DraftSaveInterval,
		IdleTTL:       cfg.Checkout.SessionIdleTTL,
		HistoryLimit:  cfg.Checkout.HistoryLimit,
		LockTTL:       time.Duration(cfg.Endpoints.SubmitAttempts+1) * (cfg.Endpoints.SubmitTimeout + 2*time.Second),
	}, checkoutservice.Dependencies{
		Carts:     cartSvc,
		Drafts:    checkoutadapters.NewCacheDraftRepository(store),
		Contacts:  checkoutadapters.NewCacheContactRepository(store),
		History:   checkoutadapters.NewCacheHistoryRepository(store),
		Loyalty:   loyaltySvc,
		Submitter: checkoutadapters.NewWebhookSubmitter(cfg.Endpoints.OrderWebhookURL, cfg.Endpoints.SubmitAttempts, cfg.Endpoints.SubmitTimeout),
		Locker:    checkoutadapters.NewCacheLocker(store),
	})
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutSvc)

	srv := server.New(cfg, store)

	// Register Routes
	srv.App.Get("/shop", shopHdl.Status)
	srv.App.Get("/menu", menuHdl.List)
	srv.App.Get("/menu/categories", menuHdl.Categories)

	auth := identity.Middleware(identity.NewVerifier(cfg.Host.BotToken, cfg.Host.InitDataMaxAge))
	srv.App.Get("/loyalty", auth, loyaltyHdl.Balance)

	srv.App.Get("/cart", auth, cartHdl.Get)
	srv.App.Delete("/cart", auth, cartHdl.Clear)
	srv.App.Post("/cart/items/:id", auth, cartHdl.AddItem)
	srv.App.Patch("/cart/items/:id", auth, cartHdl.ChangeQuantity)
	srv.App.Delete("/cart/items/:id", auth, cartHdl.RemoveItem)

	srv.App.Post("/checkout", auth, checkoutHdl.Begin)
	srv.App.Get("/checkout", auth, checkoutHdl.Get)
	srv.App.Put("/checkout/contact", auth, checkoutHdl.UpdateContact)
	srv.App.Put("/checkout/delivery", auth, checkoutHdl.UpdateDelivery)
	srv.App.Put("/checkout/payment", auth, checkoutHdl.SetPaymentMethod)
	srv.App.Put("/checkout/loyalty", auth, checkoutHdl.UsePoints)
	srv.App.Put("/checkout/notes", auth, checkoutHdl.SetNotes)
	srv.App.Put("/checkout/agreements", auth, checkoutHdl.SetAgreements)
	srv.App.Post("/checkout/next", auth, checkoutHdl.Next)
	srv.App.Post("/checkout/back", auth, checkoutHdl.Back)
	srv.App.Post("/checkout/submit", auth, checkoutHdl.Submit)
	srv.App.Get("/orders/history", auth, checkoutHdl.History)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		return checkoutSvc.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		l.Error("Server stopped with error", zap.Error(err))
	}
	l.Info("Application stopped")
}

// openStore opens the key-value store selected by STORE_DRIVER.
func openStore(cfg config.StoreConfig) (cache.Cache, error) {
	if cfg.Driver == "sqlite" {
		return cache.NewSQLiteAdapter(cfg.SQLitePath)
	}
	return cache.NewRedisAdapter(cfg.RedisURL)
}
