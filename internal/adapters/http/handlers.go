package web

import (
	"bytes"
	"encoding/base64"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"assosite/internal/adapters/http/middleware"
	"assosite/internal/application/orchestrators"
	"assosite/internal/application/projections"
	"assosite/internal/domain/cart"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	username := ""
	if ok {
		role = sess.Role
		username = sess.Username
	}

	funcMap := template.FuncMap{
		"currentRole":     func() string { return role },
		"currentUsername": func() string { return username },
		"isLoggedIn":      func() bool { return role != "" },
		"csrfToken":       func() string { return csrf.Token(r) },
		"formatEuro":      cart.FormatEuro,
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// registerRoutes wires every route on the mux. Admin pages go through
// RequireAdmin; everything else is public.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("POST /events/register", handleEventRegister)
	mux.HandleFunc("POST /contact", handleContact)

	mux.HandleFunc("GET /login", handleLoginPage)
	mux.HandleFunc("POST /login", handleLogin)
	mux.HandleFunc("GET /logout", handleLogout)

	mux.Handle("GET /admin", middleware.RequireAdmin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("POST /admin/events/add", middleware.RequireAdmin(http.HandlerFunc(handleAdminEventAdd)))
	mux.Handle("POST /admin/volunteers/add", middleware.RequireAdmin(http.HandlerFunc(handleAdminVolunteerAdd)))

	mux.HandleFunc("POST /cart/add", handleCartAdd)
	mux.HandleFunc("POST /cart/increment", handleCartIncrement)
	mux.HandleFunc("POST /cart/decrement", handleCartDecrement)
	mux.HandleFunc("POST /cart/remove", handleCartRemove)
	mux.HandleFunc("POST /cart/clear", handleCartClear)
	mux.HandleFunc("GET /cart/checkout", handleCartCheckout)
}

// handleHome handles GET /
func handleHome(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetHomeDeps{
		EventStore:     stores.EventStore,
		VolunteerStore: stores.VolunteerStore,
		CatalogStore:   stores.CatalogStore,
	}
	data, err := projections.QueryGetHome(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	c := cartFromRequest(r)
	renderTemplate(w, r, "home.html", map[string]any{
		"UpcomingEvents": data.UpcomingEvents,
		"PastEvents":     data.PastEvents,
		"Volunteers":     data.Volunteers,
		"Products":       data.Products,
		"Categories":     data.Categories,
		"Cart":           c.Lines(),
		"CartCount":      c.Count(),
		"CartTotal":      c.Total(),
		"Submitted":      r.URL.Query().Get("submitted"),
		"CartEmpty":      r.URL.Query().Get("cart") == "empty",
	})
}

// handleEventRegister handles POST /events/register
func handleEventRegister(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.RegisterForEventInput{
		EventID: r.FormValue("event_id"),
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
	}
	deps := orchestrators.RegisterForEventDeps{
		EventStore:        stores.EventStore,
		RegistrationStore: stores.RegistrationStore,
		Sender:            emailSender,
		NotifyTo:          notifyTo,
	}
	if _, err := orchestrators.ExecuteRegisterForEvent(r.Context(), input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/?submitted=registration#evenements", http.StatusSeeOther)
}

// handleContact handles POST /contact
func handleContact(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.SubmitContactInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}
	deps := orchestrators.SubmitContactDeps{
		ContactStore: stores.ContactStore,
		Sender:       emailSender,
		NotifyTo:     notifyTo,
	}
	if _, err := orchestrators.ExecuteSubmitContact(r.Context(), input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/?submitted=contact#contact", http.StatusSeeOther)
}

// handleLoginPage handles GET /login
func handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "login.html", map[string]any{})
}

// handleLogin handles POST /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.LoginInput{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{UserStore: stores.UserStore})
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"Error":    orchestrators.ErrInvalidCredentials.Error(),
			"Username": input.Username,
		})
		return
	}

	token, err := sessions.Create(result.UserID, result.Username, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleLogout handles GET /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("asso_session"); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdminDashboard handles GET /admin
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetAdminDashboardDeps{
		EventStore:        stores.EventStore,
		VolunteerStore:    stores.VolunteerStore,
		RegistrationStore: stores.RegistrationStore,
		ContactStore:      stores.ContactStore,
		OrderStore:        stores.OrderStore,
	}
	data, err := projections.QueryGetAdminDashboard(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin.html", map[string]any{
		"Events":        data.Events,
		"Volunteers":    data.Volunteers,
		"Registrations": data.Registrations,
		"Contacts":      data.Contacts,
		"Orders":        data.Orders,
	})
}

// handleAdminEventAdd handles POST /admin/events/add
func handleAdminEventAdd(w http.ResponseWriter, r *http.Request) {
	cost, _ := strconv.Atoi(r.FormValue("cost"))
	capacity, _ := strconv.Atoi(r.FormValue("capacity"))
	input := orchestrators.CreateEventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
		Location:    r.FormValue("location"),
		Cost:        cost,
		Capacity:    capacity,
	}
	if _, err := orchestrators.ExecuteCreateEvent(r.Context(), input, orchestrators.CreateEventDeps{EventStore: stores.EventStore}); err != nil {
		if errors.Is(err, orchestrators.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/admin#events", http.StatusSeeOther)
}

// handleAdminVolunteerAdd handles POST /admin/volunteers/add
func handleAdminVolunteerAdd(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.CreateVolunteerInput{
		Name:     r.FormValue("name"),
		Position: r.FormValue("position"),
		Bio:      r.FormValue("bio"),
		Photo:    r.FormValue("photo"),
	}
	if _, err := orchestrators.ExecuteCreateVolunteer(r.Context(), input, orchestrators.CreateVolunteerDeps{VolunteerStore: stores.VolunteerStore}); err != nil {
		if errors.Is(err, orchestrators.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/admin#volunteers", http.StatusSeeOther)
}

// cartFromRequest decodes the cart cookie. Missing or corrupt cookies
// yield an empty cart, never an error.
func cartFromRequest(r *http.Request) *cart.Cart {
	cookie, err := r.Cookie(cart.StorageKey)
	if err != nil {
		return cart.New()
	}
	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return cart.New()
	}
	return cart.Decode(data)
}

// saveCart writes the cart back to its cookie.
func saveCart(w http.ResponseWriter, c *cart.Cart) {
	http.SetCookie(w, &http.Cookie{
		Name:     cart.StorageKey,
		Value:    base64.URLEncoding.EncodeToString(c.Encode()),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 30,
	})
}

// handleCartAdd handles POST /cart/add. Product identity and price come
// from the catalog, never from the form.
func handleCartAdd(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}
	p, err := stores.CatalogStore.GetProductByID(r.Context(), productID)
	if err != nil {
		http.Error(w, "produit introuvable", http.StatusBadRequest)
		return
	}

	c := cartFromRequest(r)
	c.Add(p.ID, p.Name, p.Price, p.Image, r.FormValue("variant"))
	saveCart(w, c)
	http.Redirect(w, r, "/#boutique", http.StatusSeeOther)
}

// handleCartIncrement handles POST /cart/increment
func handleCartIncrement(w http.ResponseWriter, r *http.Request) {
	c := cartFromRequest(r)
	c.Increment(r.FormValue("key"))
	saveCart(w, c)
	http.Redirect(w, r, "/#panier", http.StatusSeeOther)
}

// handleCartDecrement handles POST /cart/decrement
func handleCartDecrement(w http.ResponseWriter, r *http.Request) {
	c := cartFromRequest(r)
	c.Decrement(r.FormValue("key"))
	saveCart(w, c)
	http.Redirect(w, r, "/#panier", http.StatusSeeOther)
}

// handleCartRemove handles POST /cart/remove
func handleCartRemove(w http.ResponseWriter, r *http.Request) {
	c := cartFromRequest(r)
	c.Remove(r.FormValue("key"))
	saveCart(w, c)
	http.Redirect(w, r, "/#panier", http.StatusSeeOther)
}

// handleCartClear handles POST /cart/clear
func handleCartClear(w http.ResponseWriter, r *http.Request) {
	c := cartFromRequest(r)
	c.Clear()
	saveCart(w, c)
	http.Redirect(w, r, "/#panier", http.StatusSeeOther)
}

// handleCartCheckout handles GET /cart/checkout. Checkout is a
// mail-client handoff: the cart becomes a prefilled mailto link and no
// order is written server side. An empty cart goes back to the shop
// section with a warning flag instead.
func handleCartCheckout(w http.ResponseWriter, r *http.Request) {
	c := cartFromRequest(r)
	u := c.MailtoURL(orderMailbox)
	if u == "" {
		http.Redirect(w, r, "/?cart=empty#panier", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, u, http.StatusSeeOther)
}
