package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Menu error codes (MENU_*)
const (
	MenuNotFound        ErrorCode = "MENU_001"
	MenuAlreadyExists   ErrorCode = "MENU_002"
	MenuInvalidID       ErrorCode = "MENU_003"
	MenuInvalidPrice    ErrorCode = "MENU_004"
	MenuAlreadyVerified ErrorCode = "MENU_005"
)

// Standard menu error codes (STANDARD_MENU_*)
const (
	StandardMenuNotFound      ErrorCode = "STANDARD_MENU_001"
	StandardMenuAlreadyExists ErrorCode = "STANDARD_MENU_002"
	StandardMenuInvalidID     ErrorCode = "STANDARD_MENU_003"
	StandardMenuInactive      ErrorCode = "STANDARD_MENU_004"
)

// Restaurant error codes (RESTAURANT_*)
const (
	RestaurantNotFound      ErrorCode = "RESTAURANT_001"
	RestaurantAlreadyExists ErrorCode = "RESTAURANT_002"
	RestaurantInvalidID     ErrorCode = "RESTAURANT_003"
	RestaurantInactive      ErrorCode = "RESTAURANT_004"
)

// Matching error codes (MATCHING_*)
const (
	MatchingNoMatch        ErrorCode = "MATCHING_001"
	MatchingInvalidName    ErrorCode = "MATCHING_002"
	MatchingHistoryMissing ErrorCode = "MATCHING_003"
	MatchingInvalidMethod  ErrorCode = "MATCHING_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid username or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Menu errors
	MenuNotFound:        "Menu not found",
	MenuAlreadyExists:   "This restaurant already has a menu with this name",
	MenuInvalidID:       "Invalid menu ID format",
	MenuInvalidPrice:    "Invalid menu price",
	MenuAlreadyVerified: "Menu match is already verified",

	// Standard menu errors
	StandardMenuNotFound:      "Standard menu not found",
	StandardMenuAlreadyExists: "A standard menu with this name already exists",
	StandardMenuInvalidID:     "Invalid standard menu ID format",
	StandardMenuInactive:      "Standard menu is inactive",

	// Restaurant errors
	RestaurantNotFound:      "Restaurant not found",
	RestaurantAlreadyExists: "A restaurant with this name already exists",
	RestaurantInvalidID:     "Invalid restaurant ID format",
	RestaurantInactive:      "Restaurant is inactive",

	// Matching errors
	MatchingNoMatch:        "No standard menu matched this menu name",
	MatchingInvalidName:    "Menu name is empty after normalization",
	MatchingHistoryMissing: "No matching history found",
	MatchingInvalidMethod:  "Invalid match method",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
