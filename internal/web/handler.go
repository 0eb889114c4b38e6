package web

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/account"
	"github.com/poolpass/pool-booking-gateway/internal/availability"
	"github.com/poolpass/pool-booking-gateway/internal/booking"
	"github.com/poolpass/pool-booking-gateway/internal/pool"
	"github.com/poolpass/pool-booking-gateway/internal/session"
)

const (
	themeCookieName = "theme"
	themeTTLDays    = 365
)

type Handler struct {
	accounts account.Service
	pools    pool.Service
	avail    availability.Service
	bookings booking.Service
	sessions session.Manager
	log      *zap.Logger
}

func NewHandler(
	accounts account.Service,
	pools pool.Service,
	avail availability.Service,
	bookings booking.Service,
	sessions session.Manager,
	log *zap.Logger,
) *Handler {
	return &Handler{
		accounts: accounts,
		pools:    pools,
		avail:    avail,
		bookings: bookings,
		sessions: sessions,
		log:      log,
	}
}

// pageBase carries the state every page shares: theme, nav highlight and the
// result of the auth probe.
type pageBase struct {
	Theme         string
	Active        string
	Year          int
	Authenticated bool
	UserName      string
}

func (h *Handler) base(c *gin.Context, active string) pageBase {
	b := pageBase{
		Active: active,
		Year:   time.Now().Year(),
	}

	if theme, ok := session.Get(c, themeCookieName); ok && (theme == "light" || theme == "dark") {
		b.Theme = theme
	}

	if token := session.Token(c); token != "" {
		u, err := h.accounts.CurrentUser(c.Request.Context(), token)
		if err == nil {
			b.Authenticated = true
			b.UserName = u.Name
		} else {
			h.log.Debug("auth probe failed on page load", zap.Error(err))
		}
	}

	return b
}

// HomeView renders the catalog page with the inline login panel.
type HomeView struct {
	pageBase
	Pools      []PoolCard
	LoadError  bool
	ShowLogin  bool
	LoginError string
}

// Home renders the pool catalog.
func (h *Handler) Home(c *gin.Context) {
	view := HomeView{
		pageBase:  h.base(c, "home"),
		ShowLogin: c.Query("login") != "",
	}

	pools, err := h.pools.List(c.Request.Context(), session.Token(c))
	if err != nil {
		h.log.Warn("catalog load failed", zap.Error(err))
		view.LoadError = true
	} else {
		view.Pools = NewPoolCards(pools)
	}

	c.HTML(http.StatusOK, "home", view)
}

// Login handles the login form. Success redirects home with the cookie set;
// failure re-renders the page with the portal's message inline.
func (h *Handler) Login(c *gin.Context) {
	emailOrAadhar := c.PostForm("email_or_aadhar")
	password := c.PostForm("password")

	token, _, err := h.accounts.Login(c.Request.Context(), emailOrAadhar, password)
	if err != nil {
		h.log.Warn("login failed", zap.Error(err))

		view := HomeView{
			pageBase:   h.base(c, "home"),
			ShowLogin:  true,
			LoginError: err.Error(),
		}
		if pools, perr := h.pools.List(c.Request.Context(), session.Token(c)); perr == nil {
			view.Pools = NewPoolCards(pools)
		}
		c.HTML(http.StatusUnauthorized, "home", view)
		return
	}

	h.sessions.Issue(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie and lands on the public catalog, which
// also covers leaving an auth-only page.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// PoolDetailView renders one pool's page with the embedded map.
type PoolDetailView struct {
	pageBase
	Pool     pool.Pool
	ImageURL string
}

// PoolDetail renders a pool's detail page. A failed fetch falls back to the
// catalog with the error flagged.
func (h *Handler) PoolDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	p, err := h.pools.GetByID(c.Request.Context(), session.Token(c), id)
	if err != nil {
		h.log.Warn("pool detail page failed", zap.Int("id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	view := PoolDetailView{
		pageBase: h.base(c, "home"),
		Pool:     *p,
		ImageURL: PlaceholderImage,
	}
	if p.ImageURL != "" {
		view.ImageURL = "/api/pool/" + strconv.Itoa(p.ID) + "/image?w=800&h=500"
	}

	c.HTML(http.StatusOK, "pooldetail", view)
}

// SearchView renders the availability form and, after submission, its result.
type SearchView struct {
	pageBase
	Pools          []pool.Pool
	SelectedPoolID int
	BookingDate    string
	MinDate        string
	Submitted      bool
	LoginRequired  bool
	ResultTitle    string
	Message        string
	Cards          []SlotCard
}

// Search renders the availability page. The form submits back here via GET.
func (h *Handler) Search(c *gin.Context) {
	today := time.Now().Format(availability.DateFormat)

	view := SearchView{
		pageBase:    h.base(c, "search"),
		MinDate:     today,
		BookingDate: today,
	}

	if pools, err := h.pools.List(c.Request.Context(), session.Token(c)); err != nil {
		h.log.Warn("pool list for search failed", zap.Error(err))
	} else {
		view.Pools = pools
	}

	poolID, _ := strconv.Atoi(c.Query("pool_id"))
	view.SelectedPoolID = poolID
	if d := c.Query("booking_date"); d != "" {
		view.BookingDate = d
	}

	// Only a full (pool, date) pair counts as a submission.
	if poolID <= 0 || c.Query("booking_date") == "" {
		c.HTML(http.StatusOK, "search", view)
		return
	}
	view.Submitted = true

	// A visitor without a session gets the login prompt; the availability
	// endpoint is never called on their behalf.
	if session.Token(c) == "" {
		view.LoginRequired = true
		c.HTML(http.StatusOK, "search", view)
		return
	}

	result, err := h.avail.Check(c.Request.Context(), session.Token(c), poolID, view.BookingDate)
	if err != nil {
		h.log.Warn("availability check failed", zap.Int("pool_id", poolID), zap.Error(err))
		view.Message = "An error occurred while checking availability. Please try again."
		c.HTML(http.StatusOK, "search", view)
		return
	}

	displayDate := FormatDisplayDate(view.BookingDate)
	switch {
	case result.Message != "":
		view.Message = result.Message
	case len(result.Batches) == 0:
		view.Message = "No available batches found for " + displayDate + "."
	default:
		view.ResultTitle = "Available Batches for " + poolName(view.Pools, poolID) + " on " + displayDate
		view.Cards = NewSlotCards(result.Batches, view.Authenticated)
	}

	c.HTML(http.StatusOK, "search", view)
}

func poolName(pools []pool.Pool, id int) string {
	for _, p := range pools {
		if p.ID == id {
			return p.Name
		}
	}
	return "Pool #" + strconv.Itoa(id)
}

// DashboardView renders the member's booking table.
type DashboardView struct {
	pageBase
	Rows          []BookingRow
	NoBookings    bool
	Pagination    PaginationView
	StatusOptions []booking.StatusOption
	Status        string
	SortField     string
	SortOrder     string
	// ExtraQuery keeps filter and sort across page-link navigation.
	ExtraQuery   string
	ErrorMessage string
}

// Dashboard renders the member's bookings. Visitors without a session are
// sent back to the public catalog.
func (h *Handler) Dashboard(c *gin.Context) {
	token := session.Token(c)
	if token == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	filter := booking.Filter{
		Page:      page,
		Status:    c.Query("status"),
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
	}

	view := DashboardView{
		pageBase:   h.base(c, "dashboard"),
		Status:     filter.Status,
		SortField:  filter.SortField,
		SortOrder:  filter.SortOrder,
		ExtraQuery: extraQuery(filter),
	}

	result, err := h.bookings.List(c.Request.Context(), token, filter)
	if err != nil {
		h.log.Warn("dashboard load failed", zap.Error(err))
		view.ErrorMessage = "Error loading bookings. Please try again."
		view.Pagination = PaginationView{Hidden: true}
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	view.Rows = NewBookingRows(result.Bookings)
	view.NoBookings = len(result.Bookings) == 0
	view.Pagination = NewPaginationView(result.Pagination.CurrentPage, result.Pagination.TotalPages)
	view.StatusOptions = statusOptions(result.StatusOptions, filter.Status)

	c.HTML(http.StatusOK, "dashboard", view)
}

// extraQuery serializes filter and sort so page links preserve them.
func extraQuery(f booking.Filter) string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.SortField != "" && f.SortOrder != "" {
		params.Set("sortField", f.SortField)
		params.Set("sortOrder", f.SortOrder)
	}
	if len(params) == 0 {
		return ""
	}
	return "&" + params.Encode()
}

// statusOptions falls back to the standard statuses when the portal page
// didn't include the dropdown, and marks the active filter selected.
func statusOptions(options []booking.StatusOption, active string) []booking.StatusOption {
	if len(options) == 0 {
		options = []booking.StatusOption{
			{Value: "", Text: "All Status"},
			{Value: "Completed", Text: "Completed"},
			{Value: "Pending", Text: "Pending"},
			{Value: "Cancelled", Text: "Cancelled"},
		}
	}
	for i := range options {
		options[i].Selected = options[i].Value == active && active != ""
	}
	return options
}

// ToggleTheme persists the light/dark preference and returns to the
// referring page.
func (h *Handler) ToggleTheme(c *gin.Context) {
	theme := c.PostForm("theme")
	if theme != "light" && theme != "dark" {
		// Flip whatever is currently saved; absent means the client was
		// following its OS preference and an explicit choice starts at dark.
		if current, _ := session.Get(c, themeCookieName); current == "dark" {
			theme = "light"
		} else {
			theme = "dark"
		}
	}
	session.Set(c, themeCookieName, theme, themeTTLDays)

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}
