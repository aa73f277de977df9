package main

import (
	"fmt"
	"os"
	"time"

	"bidwars/internal/auth"
	bidding "bidwars/internal/biddingService"
	catalog "bidwars/internal/catalogService"
	"bidwars/internal/config"
	"bidwars/internal/itemlock"
	lifecycle "bidwars/internal/lifecycleService"
	model "bidwars/internal/models"
	"bidwars/internal/repository"
	"bidwars/internal/server"
	"bidwars/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Log.Level)

	store := repository.NewMemoryStore()
	locks := itemlock.NewLocker()
	authManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	biddingSvc := bidding.NewBiddingService(store, locks).
		WithRetryBudgets(cfg.Engine.CommitRetries, cfg.Engine.StorageRetries)
	lifecycleSvc := lifecycle.NewService(store, locks)
	catalogSvc := catalog.NewService(store)

	if cfg.Seed.Demo {
		seedDemoData(catalogSvc, authManager)
	}

	router := server.SetupRouter(server.Services{
		Bidding:   biddingSvc,
		Catalog:   catalogSvc,
		Lifecycle: lifecycleSvc,
	}, authManager)

	addr := cfg.Server.Addr()
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoData populates the store with sample lots and logs ready-to-use
// bearer tokens for a demo admin and two players.
func seedDemoData(catalogSvc *catalog.Service, authManager *auth.Manager) {
	admin := model.User{UserID: "demo_admin", Username: "demo_admin", Role: model.RoleAdmin}

	items := []struct {
		title, description, startingPrice, maxAmount string
	}{
		{"Vintage Guitar", "A beautiful 1960s Fender Stratocaster in excellent condition.", "500.00", "5000.00"},
		{"Rare Painting", "An original oil painting from a famous local artist.", "200.00", ""},
		{"Antique Watch", "A mechanical wristwatch from the 1940s, recently serviced.", "150.00", "1500.00"},
	}

	for _, it := range items {
		if _, err := catalogSvc.CreateItem(it.title, it.description, admin.UserID, it.startingPrice, it.maxAmount); err != nil {
			utils.Warn("seed: failed to create demo item", map[string]any{"title": it.title, "error": err.Error()})
		}
	}

	users := []model.User{
		admin,
		{UserID: "bidder1", Username: "bidder1", Role: model.RolePlayer},
		{UserID: "bidder2", Username: "bidder2", Role: model.RolePlayer},
	}
	for _, u := range users {
		token, err := authManager.Issue(u, 24*time.Hour)
		if err != nil {
			utils.Warn("seed: failed to issue demo token", map[string]any{"user": u.Username, "error": err.Error()})
			continue
		}
		utils.Info("seed: demo token issued", map[string]any{
			"user":  u.Username,
			"role":  u.Role,
			"token": token,
		})
	}
}
