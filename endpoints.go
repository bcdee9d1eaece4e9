package splitwise

import (
	"net/http"
	"strconv"
)

const (
	DefaultBaseURL = "https://secure.splitwise.com/"
	APIVersion     = "v3.0"

	apiPrefix    = "api/" + APIVersion + "/"
	authorizeURL = "authorize"
)

// endpoint is one remote operation: a path under the API prefix and the HTTP
// method it is called with. The table below is fixed at compile time.
type endpoint struct {
	Path   string
	Method string
}

var (
	requestTokenEndpoint  = endpoint{Path: "get_request_token", Method: http.MethodPost}
	accessTokenEndpoint   = endpoint{Path: "get_access_token", Method: http.MethodPost}
	currentUserEndpoint   = endpoint{Path: "get_current_user", Method: http.MethodGet}
	userEndpoint          = endpoint{Path: "get_user", Method: http.MethodGet}
	friendsEndpoint       = endpoint{Path: "get_friends", Method: http.MethodGet}
	groupsEndpoint        = endpoint{Path: "get_groups", Method: http.MethodGet}
	groupEndpoint         = endpoint{Path: "get_group", Method: http.MethodGet}
	currenciesEndpoint    = endpoint{Path: "get_currencies", Method: http.MethodGet}
	categoriesEndpoint    = endpoint{Path: "get_categories", Method: http.MethodGet}
	expensesEndpoint      = endpoint{Path: "get_expenses", Method: http.MethodGet}
	expenseEndpoint       = endpoint{Path: "get_expense", Method: http.MethodGet}
	createExpenseEndpoint = endpoint{Path: "create_expense", Method: http.MethodPost}
	createGroupEndpoint   = endpoint{Path: "create_group", Method: http.MethodPost}
	deleteGroupEndpoint   = endpoint{Path: "delete_group", Method: http.MethodGet}
)

// endpointURL returns the absolute URL of e, with id appended as a path
// segment for endpoints addressing a single resource.
func (c *Client) endpointURL(e endpoint, id ...int64) string {
	u := c.baseURL + apiPrefix + e.Path
	for _, v := range id {
		u += "/" + strconv.FormatInt(v, 10)
	}
	return u
}
