// Command migrate applies the embedded SQL migrations.
//
//	DB_ADDR=postgres://... go run ./cmd/migrate
//	go run ./cmd/migrate -list
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"storefront/internal/db"
)

func main() {
	list := flag.Bool("list", false, "print the embedded migrations and exit")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	_ = godotenv.Load()

	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	logger := zl.Sugar()
	defer logger.Sync()

	if *list {
		migrations, err := db.Migrations()
		if err != nil {
			logger.Fatal(err)
		}
		for _, m := range migrations {
			fmt.Println(m.Version)
		}
		return
	}

	addr := os.Getenv("DB_ADDR")
	if addr == "" {
		logger.Fatal("DB_ADDR is not set")
	}

	conn, err := sql.Open("postgres", addr)
	if err != nil {
		logger.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		logger.Fatalw("database unreachable", "error", err)
	}

	applied, err := db.Migrate(ctx, conn)
	if err != nil {
		logger.Fatalw("migration failed", "error", err)
	}
	if len(applied) == 0 {
		logger.Info("database is up to date")
		return
	}
	logger.Infow("migrations applied", "versions", applied)
}
