package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	emailPkg "assosite/internal/adapters/email"
	web "assosite/internal/adapters/http"
	"assosite/internal/adapters/storage"
	catalogStorePkg "assosite/internal/adapters/storage/catalog"
	contactStorePkg "assosite/internal/adapters/storage/contact"
	eventStorePkg "assosite/internal/adapters/storage/event"
	orderStorePkg "assosite/internal/adapters/storage/order"
	registrationStorePkg "assosite/internal/adapters/storage/registration"
	userStorePkg "assosite/internal/adapters/storage/user"
	volunteerStorePkg "assosite/internal/adapters/storage/volunteer"
	"assosite/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	driver := envOrDefault("ASSO_DB_DRIVER", storage.DriverSQLite)
	dsn := envOrDefault("ASSO_DB_DSN", "asso.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)")

	db, err := storage.Open(driver, dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.InitDB(db, driver); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Printf("Database initialized (%s)", driver)

	var stores *web.Stores
	if driver == storage.DriverPostgres {
		stores = &web.Stores{
			UserStore:         userStorePkg.NewPostgresStore(db),
			EventStore:        eventStorePkg.NewPostgresStore(db),
			RegistrationStore: registrationStorePkg.NewPostgresStore(db),
			VolunteerStore:    volunteerStorePkg.NewPostgresStore(db),
			ContactStore:      contactStorePkg.NewPostgresStore(db),
			CatalogStore:      catalogStorePkg.NewPostgresStore(db),
			OrderStore:        orderStorePkg.NewPostgresStore(db),
		}
	} else {
		stores = &web.Stores{
			UserStore:         userStorePkg.NewSQLiteStore(db),
			EventStore:        eventStorePkg.NewSQLiteStore(db),
			RegistrationStore: registrationStorePkg.NewSQLiteStore(db),
			VolunteerStore:    volunteerStorePkg.NewSQLiteStore(db),
			ContactStore:      contactStorePkg.NewSQLiteStore(db),
			CatalogStore:      catalogStorePkg.NewSQLiteStore(db),
			OrderStore:        orderStorePkg.NewSQLiteStore(db),
		}
	}

	// Seed roles, the default admin and the starter catalog. A failure
	// here leaves the site read-only but still serving, so log and
	// continue.
	bootstrapDeps := orchestrators.BootstrapDeps{
		UserStore:     stores.UserStore,
		CatalogStore:  stores.CatalogStore,
		AdminUsername: os.Getenv("ASSO_ADMIN_USER"),
		AdminPassword: os.Getenv("ASSO_ADMIN_PASSWORD"),
	}
	if err := orchestrators.ExecuteBootstrap(context.Background(), bootstrapDeps); err != nil {
		log.Printf("WARNING: bootstrap failed: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("ASSO_RESEND_KEY")
	emailFrom := envOrDefault("ASSO_RESEND_FROM", "Les Ateliers du Canal <noreply@ateliersducanal.fr>")
	notifyTo := envOrDefault("ASSO_NOTIFY_TO", "contact@ateliersducanal.fr")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		if os.Getenv("ASSO_ENV") == "production" {
			log.Println("WARNING: ASSO_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set ASSO_RESEND_KEY for real delivery)")
		}
	}

	web.SetOrderMailbox(envOrDefault("ASSO_ORDER_MAILBOX", "commandes@ateliersducanal.fr"))

	mux := web.NewMux("internal/adapters/http/static", stores)

	addr := envOrDefault("ASSO_ADDR", ":8080")
	log.Printf("assosite %s starting on %s (env=%s)", version, addr, envOrDefault("ASSO_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
