package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"assosite/internal/adapters/email"
	"assosite/internal/adapters/http/middleware"
	catalogStore "assosite/internal/adapters/storage/catalog"
	contactStore "assosite/internal/adapters/storage/contact"
	eventStore "assosite/internal/adapters/storage/event"
	orderStore "assosite/internal/adapters/storage/order"
	registrationStore "assosite/internal/adapters/storage/registration"
	userStore "assosite/internal/adapters/storage/user"
	volunteerStore "assosite/internal/adapters/storage/volunteer"
)

// Stores holds all storage dependencies.
type Stores struct {
	UserStore         userStore.Store
	EventStore        eventStore.Store
	RegistrationStore registrationStore.Store
	VolunteerStore    volunteerStore.Store
	ContactStore      contactStore.Store
	CatalogStore      catalogStore.Store
	OrderStore        orderStore.Store
}

// loadCSRFKey reads the CSRF secret from ASSO_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("ASSO_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ASSO_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("ASSO_ENV") == "production" {
		log.Fatal("ASSO_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set ASSO_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Address notified on new registrations and contact messages
var notifyTo string

// Mailbox the cart checkout mailto link addresses
var orderMailbox string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, notify string) {
	emailSender = sender
	notifyTo = notify
}

// SetOrderMailbox sets the mailbox cart checkouts are addressed to.
func SetOrderMailbox(mailbox string) {
	orderMailbox = mailbox
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
