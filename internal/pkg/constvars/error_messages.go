package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must be a valid timestamp",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientNotAuthorizedResource         = "You are not authorized to access this resource."
	ErrClientNotAuthorizedView             = "You are not authorized to view this resource."
	ErrClientInvalidImageFormat            = "invalid image format"

	ErrClientUserNotFound     = "user not found"
	ErrClientPropertyNotFound = "property not found"
	ErrClientSearchNotFound   = "search not found"
	ErrClientContactNotFound  = "contact not found"
	ErrClientFavoriteNotFound = "favorite not found"
)

// OwnershipDeniedMessageFormat mirrors the per-action denial wording of the
// resource endpoints, e.g. "You are not authorized to update this property."
const OwnershipDeniedMessageFormat = "You are not authorized to %s this %s."

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevCannotParseDate            = "failed to parse date value"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevInvalidCredentials         = "credentials do not match any user"
	ErrDevEmailAlreadyExists         = "email already exists in the users table"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalid           = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevNotResourceOwner           = "principal is not the owner of the resource"
	ErrDevNotResourceViewer          = "principal may not view another user's records"
	ErrDevAdminOnly                  = "endpoint is restricted to administrators"
	ErrDevRecordNotFound             = "record not found"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevDBFailedToFindData         = "database failed to find data"
	ErrDevDBFailedToIterateDataset   = "database failed to iterate dataset"
	ErrDevDBFailedToInsertData       = "database failed to insert data"
	ErrDevDBFailedToUpdateData       = "database failed to update data"
	ErrDevDBFailedToDeleteData       = "database failed to delete data"
	ErrDevDBFailedToCountData        = "database failed to count data"
	ErrDevRedisGetData               = "redis failed to get data"
	ErrDevRedisSetData               = "redis failed to set data"
	ErrDevRedisDeleteData            = "redis failed to delete data"
	ErrDevMinioFailedToCreateObject  = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "minio failed to presign object in bucket %s"
	ErrDevSearchEngineQuery          = "search engine query failed"
	ErrDevSearchEngineIndex          = "search engine indexing failed"
	ErrDevRabbitMQPublish            = "rabbitmq failed to publish message to queue %s"
	ErrDevInvalidInput               = "invalid input"
)
