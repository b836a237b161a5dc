package moco

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Client talks to the Moco REST API. Every operation goes through Do,
// which resolves the endpoint template, authenticates and hands the
// request to the configured Requestor.
//
// A Client is safe for concurrent use.
type Client struct {
	config    *Config
	requestor Requestor
	logger    hclog.Logger
	baseURL   string

	httpClient *http.Client

	mu                sync.Mutex
	apiKey            string
	impersonateUserID int

	Activities               *ActivityService
	Presences                *PresenceService
	Holidays                 *HolidayService
	Employments              *EmploymentService
	Users                    *UserService
	Units                    *UnitService
	Schedules                *ScheduleService
	PlanningEntries          *PlanningEntryService
	Purchases                *PurchaseService
	PurchaseCategories       *PurchaseCategoryService
	Invoices                 *InvoiceService
	InvoicePayments          *InvoicePaymentService
	Offers                   *OfferService
	Projects                 *ProjectService
	ProjectTasks             *ProjectTaskService
	ProjectExpenses          *ProjectExpenseService
	ProjectContracts         *ProjectContractService
	ProjectRecurringExpenses *ProjectRecurringExpenseService
	ProjectPaymentSchedules  *ProjectPaymentScheduleService
	Companies                *CompanyService
	Contacts                 *ContactService
	Deals                    *DealService
	DealCategories           *DealCategoryService
	Comments                 *CommentService
	Taggings                 *TaggingService
	HourlyRates              *HourlyRateService
	FixedCosts               *FixedCostService
	Session                  *SessionService
}

// Option configures a Client.
type Option func(*Client)

// WithRequestor replaces the HTTP requestor, e.g. with a recording stub.
func WithRequestor(r Requestor) Option {
	return func(c *Client) {
		c.requestor = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets the http.Client used by the default requestor.
// Ignored when WithRequestor is given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the account described by cfg.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	// Defaults are filled on a copy; the caller's config is left as given.
	copied := *cfg
	cfg = &copied
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid moco config: %w", err)
	}

	c := &Client{
		config:            cfg,
		logger:            hclog.NewNullLogger(),
		baseURL:           cfg.APIBaseURL(),
		apiKey:            cfg.APIKey,
		impersonateUserID: cfg.ImpersonateUserID,
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.requestor == nil {
		httpClient := c.httpClient
		if httpClient == nil {
			httpClient = cfg.NewHTTPClient()
		}
		c.requestor = c.newRequestor(httpClient)
	}

	c.Activities = &ActivityService{c}
	c.Presences = &PresenceService{c}
	c.Holidays = &HolidayService{c}
	c.Employments = &EmploymentService{c}
	c.Users = &UserService{c}
	c.Units = &UnitService{c}
	c.Schedules = &ScheduleService{c}
	c.PlanningEntries = &PlanningEntryService{c}
	c.Purchases = &PurchaseService{c}
	c.PurchaseCategories = &PurchaseCategoryService{c}
	c.Invoices = &InvoiceService{c}
	c.InvoicePayments = &InvoicePaymentService{c}
	c.Offers = &OfferService{c}
	c.Projects = &ProjectService{c}
	c.ProjectTasks = &ProjectTaskService{c}
	c.ProjectExpenses = &ProjectExpenseService{c}
	c.ProjectContracts = &ProjectContractService{c}
	c.ProjectRecurringExpenses = &ProjectRecurringExpenseService{c}
	c.ProjectPaymentSchedules = &ProjectPaymentScheduleService{c}
	c.Companies = &CompanyService{c}
	c.Contacts = &ContactService{c}
	c.Deals = &DealService{c}
	c.DealCategories = &DealCategoryService{c}
	c.Comments = &CommentService{c}
	c.Taggings = &TaggingService{c}
	c.HourlyRates = &HourlyRateService{c}
	c.FixedCosts = &FixedCostService{c}
	c.Session = &SessionService{c}

	return c, nil
}

func (c *Client) newRequestor(httpClient *http.Client) Requestor {
	delay := c.config.RequestDelay
	if delay < 0 {
		delay = 0
	}
	return NewHTTPRequestor(httpClient,
		WithDelay(delay),
		WithRateLimitRetries(c.config.RateLimitRetries, c.config.RetryDelay),
		WithRequestorLogger(c.logger.Named("requestor")),
	)
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Impersonate sends all following requests on behalf of userID.
func (c *Client) Impersonate(userID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.impersonateUserID = userID
}

// StopImpersonation reverts Impersonate.
func (c *Client) StopImpersonation() {
	c.Impersonate(0)
}

// Authenticate logs in with the configured email and password and keeps
// the returned api key. It is called implicitly by the first request when
// the client was configured without an api key.
func (c *Client) Authenticate(ctx context.Context) (*models.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) (*models.Session, error) {
	if c.config.Email == "" || c.config.Password == "" {
		return nil, &ValidationError{Field: "email/password", Err: validation.ErrRequired}
	}

	body := Params{}.
		Put("email", c.config.Email).
		Put("password", c.config.Password)

	resp, err := c.send(ctx, "session_authenticate", nil, nil, body, "")
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	session, err := decodeObject[models.Session](resp)
	if err != nil {
		return nil, err
	}

	c.apiKey = session.APIKey
	c.logger.Debug("authenticated via session", "user_id", session.UserID)
	return session, nil
}

// credentials returns the api key and impersonated user for the next call,
// logging in first when needed.
func (c *Client) credentials(ctx context.Context) (string, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.apiKey == "" && c.config.Email != "" {
		if _, err := c.authenticateLocked(ctx); err != nil {
			return "", 0, err
		}
	}
	return c.apiKey, c.impersonateUserID, nil
}

// Do calls the endpoint registered under name. pathParams fill the path
// template, query is sent as the query string and body as JSON.
func (c *Client) Do(ctx context.Context, name string, pathParams, query Params, body any) (*Response, error) {
	return c.do(ctx, name, pathParams, query, body, "")
}

// do is Do with an explicit Accept header, used for file downloads.
func (c *Client) do(ctx context.Context, name string, pathParams, query Params, body any, accept string) (*Response, error) {
	apiKey, impersonate, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if apiKey != "" {
		header.Set("Authorization", "Token token="+apiKey)
	}
	if impersonate > 0 {
		header.Set("X-IMPERSONATE-USER-ID", strconv.Itoa(impersonate))
	}

	return c.send(ctx, name, pathParams, query, body, accept, header)
}

func (c *Client) send(ctx context.Context, name string, pathParams, query Params, body any, accept string, headers ...http.Header) (*Response, error) {
	endpoint, ok := LookupEndpoint(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}

	path, err := endpoint.Expand(pathParams)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Endpoint: endpoint.Name,
		Method:   endpoint.Method,
		URL:      c.baseURL + path,
		Header:   http.Header{},
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header[k] = v
		}
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if len(query) > 0 {
		req.Query = query.Values()
	}
	if p, isParams := body.(Params); !isParams || len(p) > 0 {
		req.Body = body
	}

	raw, err := c.requestor.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}

	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		apiErr := newAPIError(endpoint.Method, path, raw.StatusCode, raw.Body)
		c.logger.Debug("request failed",
			"endpoint", endpoint.Name,
			"status", raw.StatusCode,
			"message", apiErr.Message,
		)
		return nil, apiErr
	}

	return &Response{
		Endpoint:   endpoint.Name,
		StatusCode: raw.StatusCode,
		Header:     raw.Header,
		Body:       raw.Body,
	}, nil
}
