package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Resource messages, kept verbatim from the public API contract.
	PropertyAddedSuccessMessage   = "Property added successfully!"
	PropertyUpdatedSuccessMessage = "Property updated successfully!"
	SearchAddedSuccessMessage     = "Search added successfully!"
	SearchUpdatedSuccessMessage   = "Search updated successfully!"
	UserAddedSuccessMessage       = "User added successfully!"
	UserUpdatedSuccessMessage     = "User updated successfully!"
	UserDeletedSuccessMessage     = "User deleted successfully!"
	ContactAddedSuccessMessage    = "Contact added successfully!"
	ContactUpdatedSuccessMessage  = "Contact updated successfully!"
	FavoriteAddedSuccessMessage   = "Favorite added successfully!"
	FavoriteUpdatedSuccessMessage = "Favorite updated successfully!"

	// Auth messages
	RegisterSuccessMessage = "User registered successfully!"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"
)
