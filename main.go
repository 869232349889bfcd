package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"service-booking-client/client"
	"service-booking-client/config"
	"service-booking-client/jobs"
	"service-booking-client/mockapi"
	"service-booking-client/store"
	ws "service-booking-client/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()
	cfg := config.AppConfig

	token := cfg.Auth.Token

	// Start the in-memory mock backend when requested, so the client can be
	// exercised without the production API
	if cfg.MockAPI.Enabled {
		backend := mockapi.NewServer(cfg.Auth.JWTSecret)
		go func() {
			if err := backend.Run(cfg.MockAPI.Port); err != nil {
				log.Fatal("Failed to start mock API:", err)
			}
		}()

		issued, err := mockapi.IssueToken(1, cfg.Auth.JWTSecret, 24*time.Hour)
		if err != nil {
			log.Fatal("Failed to issue mock token:", err)
		}
		token = issued

		// give the mock a moment to bind before the first fetch
		time.Sleep(200 * time.Millisecond)
	}

	// Wire the order state core
	api := client.New(cfg.API.BaseURL, token, cfg.API.Timeout)
	notifier := store.NewChannelNotifier(32)
	orderStore := store.New(api, store.WithNotifier(notifier))

	unsubscribe := orderStore.Subscribe(func(state store.State) {
		log.Printf("📊 Orders: accepted=%d upcoming=%d completed=%d cancelled=%d refreshing=%v",
			len(state.AcceptedOrders), len(state.UpcomingOrders),
			len(state.CompletedOrders), len(state.CancelledOrders), state.Refreshing)
	})
	defer unsubscribe()

	go func() {
		for notification := range notifier.C {
			log.Printf("🔔 [%s] %s", notification.Level, notification.Message)
		}
	}()

	// Initial load of all four buckets
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout*4)
	result := orderStore.RefreshOrders(ctx)
	cancel()
	if !result.Success {
		log.Printf("❌ Initial refresh failed: %s", result.Message)
	}

	// Live status pushes
	if cfg.Realtime.Enabled || cfg.MockAPI.Enabled {
		listener := ws.NewStatusListener(cfg.Realtime.WebSocketURL, orderStore)
		listener.Start()
		defer listener.Stop()
	}

	// Periodic background refresh
	if cfg.Refresh.Enabled {
		refreshJob := jobs.NewRefreshJob(orderStore, cfg.Refresh.Interval)
		refreshJob.Start()
		defer refreshJob.Stop()
	}

	log.Println("✅ Order state core running, press Ctrl+C to exit")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("👋 Shutting down")
}
