package constant

// Session cookie parameters. The cookie max-age mirrors the token expiry
// configured for the token service; both default to one hour.
const (
	CookieName         = "access_token"
	CookieMaxAgeSecond = 3600
)

// CurrentUserKey is the fiber.Ctx locals key under which the CurrentUser
// middleware stores the resolved user.
const CurrentUserKey = "currentUser"
