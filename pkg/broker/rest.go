package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

// tagNotFound marks a 404 from the broker API
var tagNotFound = goerr.NewTag("not_found")

// REST implements BrokerClient against the broker admin HTTP API
type REST struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// RESTOption is a functional option for configuring REST
type RESTOption func(*REST)

// WithHTTPClient sets the HTTP client used for broker calls
func WithHTTPClient(client *http.Client) RESTOption {
	return func(r *REST) {
		r.httpClient = client
	}
}

// NewREST creates a broker client for the admin API at baseURL. The token is
// sent as a bearer credential on every request.
func NewREST(baseURL, token string, opts ...RESTOption) *REST {
	r := &REST{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type machineResponse struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	DesktopGroup string `json:"desktop_group"`
}

type userResponse struct {
	Name string `json:"name"`
}

type assignRequest struct {
	User string `json:"user"`
}

// Ping checks the broker admin API is reachable and the credential is
// accepted. Called once before a run; a failure here is a precondition
// failure, not a per-record one.
func (r *REST) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := r.get(ctx, "/api/v1/ping", nil, &resp); err != nil {
		return goerr.Wrap(err, "broker ping failed", goerr.V("url", r.baseURL))
	}
	return nil
}

// FindMachine resolves a machine by name via GET /api/v1/machines
func (r *REST) FindMachine(ctx context.Context, name types.MachineName) (*model.Machine, error) {
	query := url.Values{"name": []string{name.String()}}

	var resp machineResponse
	if err := r.get(ctx, "/api/v1/machines", query, &resp); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(model.ErrMachineNotFound, "broker has no machine matching name", goerr.V("machine", name))
		}
		return nil, goerr.Wrap(err, "failed to query machine", goerr.V("machine", name))
	}

	return &model.Machine{
		UID:          types.MachineUID(resp.UID),
		Name:         types.MachineName(resp.Name),
		DesktopGroup: types.GroupName(resp.DesktopGroup),
	}, nil
}

// FindUser resolves a user account via GET /api/v1/users
func (r *REST) FindUser(ctx context.Context, account types.AccountName) (*model.User, error) {
	query := url.Values{"name": []string{account.String()}}

	var resp userResponse
	if err := r.get(ctx, "/api/v1/users", query, &resp); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(model.ErrUserNotFound, "broker has no user matching account", goerr.V("account", account))
		}
		return nil, goerr.Wrap(err, "failed to query user", goerr.V("account", account))
	}

	return &model.User{Name: types.AccountName(resp.Name)}, nil
}

// ListAssignedUsers returns accounts assigned to a machine via
// GET /api/v1/machines/{uid}/users
func (r *REST) ListAssignedUsers(ctx context.Context, uid types.MachineUID) ([]types.AccountName, error) {
	var resp []string
	if err := r.get(ctx, "/api/v1/machines/"+url.PathEscape(uid.String())+"/users", nil, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to list assigned users", goerr.V("uid", uid))
	}

	accounts := make([]types.AccountName, 0, len(resp))
	for _, account := range resp {
		accounts = append(accounts, types.AccountName(account))
	}
	return accounts, nil
}

// AssignUser binds an account to a machine via
// POST /api/v1/machines/{uid}/users
func (r *REST) AssignUser(ctx context.Context, account types.AccountName, uid types.MachineUID) error {
	body, err := json.Marshal(assignRequest{User: account.String()})
	if err != nil {
		return goerr.Wrap(err, "failed to encode assignment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/machines/"+url.PathEscape(uid.String())+"/users", bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build assignment request")
	}
	req.Header.Set("Content-Type", "application/json")
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "broker assignment request failed",
			goerr.V("account", account),
			goerr.V("uid", uid),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.Wrap(statusError(resp), "broker rejected assignment",
			goerr.V("account", account),
			goerr.V("uid", uid),
		)
	}
	return nil
}

// Close is a no-op; the underlying HTTP client holds no sticky connection
// state worth tearing down explicitly
func (r *REST) Close() error {
	return nil
}

func (r *REST) authorize(req *http.Request) {
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
}

func isNotFound(err error) bool {
	return goerr.HasTag(err, tagNotFound)
}

func (r *REST) get(ctx context.Context, path string, query url.Values, out any) error {
	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build broker request", goerr.V("url", u))
	}
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "broker request failed", goerr.V("url", u))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return goerr.New("broker returned 404", goerr.V("url", u), goerr.T(tagNotFound))
	}
	if resp.StatusCode != http.StatusOK {
		return goerr.Wrap(statusError(resp), "broker request rejected", goerr.V("url", u))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode broker response", goerr.V("url", u))
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return goerr.New("unexpected broker status",
		goerr.V("status", resp.StatusCode),
		goerr.V("body", strings.TrimSpace(string(body))),
	)
}
