package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"review-mine/internal/app"
	"review-mine/internal/config"
	"review-mine/internal/domain"
	"review-mine/internal/seed"
	"review-mine/internal/service"
)

// seed_check descarga el seed configurado, lo valida e imprime un resumen por perfil.
// Con -insight tambien genera el insight de cada perfil con reviews.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ds, err := app.NewSeedSource(cfg).Fetch(ctx)
	if err != nil {
		log.Fatalf("fetch seed: %v", err)
	}

	fmt.Printf("users=%d posts=%d\n", len(ds.Users), len(ds.Posts))
	for _, u := range ds.Users {
		fmt.Printf("- %-6s %-20s trust=%5.1f weekly=%2d reviews=%d constructive=%.2f\n",
			u.ID, u.Name, u.TrustScore, u.WeeklyReviewCount(), len(u.Reviews),
			service.TagRatio(u.Reviews, domain.TagConstructive))
	}

	var all []domain.Review
	for _, u := range ds.Users {
		all = append(all, u.Reviews...)
	}
	fmt.Println("per domain:")
	for _, st := range service.DomainBreakdown(all) {
		fmt.Printf("  %-14s count=%d avg=%.2f\n", st.Domain, st.Count, st.Average)
	}

	problems := seed.Check(ds)
	for _, p := range problems {
		fmt.Printf("PROBLEM %s\n", p)
	}

	if len(os.Args) > 1 && os.Args[1] == "-insight" {
		logger, _ := zap.NewDevelopment()
		defer logger.Sync()

		a, err := app.Build(ctx, cfg, logger)
		if err != nil {
			log.Fatalf("build app: %v", err)
		}
		defer a.Close()

		for _, u := range ds.Users {
			if len(u.Reviews) == 0 {
				continue
			}
			start := time.Now()
			text := a.Insights.RequestInsight(ctx, u.Reviews)
			fmt.Printf("\n=== insight %s (%s) ===\n%s\n", u.ID, time.Since(start).Round(time.Millisecond), text)
		}
	}

	if len(problems) > 0 {
		os.Exit(1)
	}
	fmt.Println("OK")
}
