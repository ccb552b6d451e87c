package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ResourceProperties = "properties"
	ResourceUsers      = "users"
	ResourceSearches   = "searches"
	ResourceContacts   = "contacts"
	ResourceFavorites  = "favorites"
)

const (
	// SearchIndexProperties is the Meilisearch index holding property documents.
	SearchIndexProperties = "properties"

	// PropertyReindexQueue is the durable queue carrying reindex triggers.
	PropertyReindexQueue = "property_reindex_queue"
)

const (
	DefaultPageSize = 10

	// NewRecordWindowInDays is the lookback window for the admin "new" counters.
	NewRecordWindowInDays = 30
)

const (
	// PassedContactTimeLayout is the precision used when comparing a contact's
	// desired date against now. Seconds are deliberately dropped.
	PassedContactTimeLayout = "2006-01-02 15:04"
)
