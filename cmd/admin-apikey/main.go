// Command admin-apikey issues, lists and revokes admin API keys. The
// plaintext of a new key is printed exactly once; only its hash is
// stored.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub.backend/internal/config"
	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/internal/infrastructure/repositories"
	"talenthub.backend/internal/usecases"
	"talenthub.backend/pkg/logger"
)

var openDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

func main() {
	os.Exit(run())
}

func run() int {
	name := flag.String("name", "", "name for the new key")
	perms := flag.String("permissions", entities.PermCatalogRead, "comma-separated permissions (catalog:read, catalog:write, admin)")
	expiry := flag.Duration("expires", 0, "optional validity window, e.g. 8760h; zero means no expiry")
	list := flag.Bool("list", false, "list stored keys and exit")
	deactivate := flag.String("deactivate", "", "deactivate the key with this id and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	ctx := context.Background()

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	uc := usecases.NewAPIKeyUsecase(repositories.NewAPIKeyRepository(db))

	switch {
	case *list:
		keys, err := uc.ListAPIKeys(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "listing keys failed: %v\n", err)
			return 1
		}
		for _, k := range keys {
			state := "active"
			if !k.IsActive {
				state = "inactive"
			}
			fmt.Printf("%s  %s  %s  %s  [%s]\n", k.ID, k.Name, k.KeyMasked, state, strings.Join(k.Permissions, ","))
		}
		return 0

	case *deactivate != "":
		if err := uc.DeactivateAPIKey(ctx, *deactivate); err != nil {
			fmt.Fprintf(os.Stderr, "deactivating key failed: %v\n", err)
			return 1
		}
		fmt.Printf("key %s deactivated\n", *deactivate)
		return 0
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: admin-apikey -name <name> [-permissions catalog:read,catalog:write] [-expires 8760h]")
		return 1
	}

	input := &entities.CreateAPIKeyInput{Name: *name}
	for _, p := range strings.Split(*perms, ",") {
		if p = strings.TrimSpace(p); p != "" {
			input.Permissions = append(input.Permissions, p)
		}
	}
	if *expiry > 0 {
		at := time.Now().Add(*expiry)
		input.ExpiresAt = &at
	}

	resp, err := uc.CreateAPIKey(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating key failed: %v\n", err)
		return 1
	}

	fmt.Printf("id:          %s\n", resp.Key.ID)
	fmt.Printf("name:        %s\n", resp.Key.Name)
	fmt.Printf("permissions: %s\n", strings.Join(resp.Key.Permissions, ","))
	if resp.Key.ExpiresAt != nil {
		fmt.Printf("expires:     %s\n", resp.Key.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Printf("key:         %s\n", resp.Secret)
	fmt.Println("store the key now; it cannot be recovered later")
	return 0
}
