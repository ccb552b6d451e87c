package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
)

// ImageAllowedPropertyFormats lists the accepted property image extensions.
var ImageAllowedPropertyFormats = []string{".jpg", ".jpeg", ".png", ".webp"}
